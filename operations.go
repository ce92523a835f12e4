package hashtable

import (
	"fmt"

	"github.com/gostonefire/hashtable/internal/chain"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/sirupsen/logrus"
)

// Insert - Updates the value of an existing key or adds the key/value pair if the key is not present.
//   - key is a string, an integer or a finite floating-point number
//   - value is any value, nil included
//
// It returns:
//   - err is of type UnsupportedKeyType if the key can not be hashed, the table is then left untouched
func (T *Table) Insert(key, value any) (err error) {
	sum, err := T.sum(key)
	if err != nil {
		return
	}

	T.insert(model.Record{Key: key, Value: value, Hash: sum})
	T.autoRebalance()

	return
}

// Retrieve - Gets the value stored with key. A missing key is not an error.
//   - key is a string, an integer or a finite floating-point number
//
// It returns:
//   - value is the stored value, nil if not found
//   - found is true if the key is present
//   - err is of type UnsupportedKeyType if the key can not be hashed
func (T *Table) Retrieve(key any) (value any, found bool, err error) {
	sum, err := T.sum(key)
	if err != nil {
		return
	}

	value, found = T.buckets[sum.BucketNo(T.capacity)].Get(key)

	return
}

// Remove - Removes the key and its value from the table.
//   - key is a string, an integer or a finite floating-point number
//
// It returns:
//   - err is either of type KeyNotFound or UnsupportedKeyType, in both cases the table is left untouched
func (T *Table) Remove(key any) (err error) {
	_, err = T.Pop(key)
	return
}

// Pop - Returns the value stored with key and removes the key from the table.
//   - key is a string, an integer or a finite floating-point number
//
// It returns:
//   - value is the value that was stored with key
//   - err is either of type KeyNotFound or UnsupportedKeyType, in both cases the table is left untouched
func (T *Table) Pop(key any) (value any, err error) {
	sum, err := T.sum(key)
	if err != nil {
		return
	}

	record, found := T.buckets[sum.BucketNo(T.capacity)].Delete(key)
	if !found {
		err = KeyNotFound{msg: fmt.Sprintf("key %v (%T) not found", key, key)}
		return
	}

	T.size--
	T.autoRebalance()

	value = record.Value

	return
}

// Grow - Doubles the number of buckets and rehashes all records. The first resize, explicit or not, turns on
// load factor enforcement, so the table may continue to grow or shrink until the load factor is within bounds.
func (T *Table) Grow() {
	T.growTo(T.capacity * 2)
}

// Shrink - Halves the number of buckets (rounding down) and rehashes all records. A single bucket table is left
// as is. As with Grow the table may continue to resize until the load factor is within bounds.
func (T *Table) Shrink() {
	if T.capacity > 1 {
		T.shrinkTo(T.capacity / 2)
	}
}

// insert - Adds or updates a record without checking the load factor. It is used as is while rehashing.
func (T *Table) insert(record model.Record) {
	if T.buckets[record.Hash.BucketNo(T.capacity)].Set(record) {
		T.size++
	}
}

// autoRebalance - Doubles or halves the number of buckets if the load factor is out of bounds.
// Does nothing until the table has been resized once.
func (T *Table) autoRebalance() {
	if !T.balanced {
		return
	}

	loadFactor := T.LoadFactor()
	if loadFactor > T.maxLoad {
		T.growTo(T.capacity * 2)
	} else if loadFactor < T.minLoad && T.capacity > 1 {
		T.shrinkTo(T.capacity / 2)
	}
}

// growTo - Rehashes into capacity buckets, capacity is expected to be larger than the current
func (T *Table) growTo(capacity int64) {
	T.log.WithFields(logrus.Fields{"from": T.capacity, "to": capacity, "records": T.size}).Debug("growing table")
	T.rehash(capacity)
}

// shrinkTo - Rehashes into capacity buckets, capacity is expected to be smaller than the current and at least 1
func (T *Table) shrinkTo(capacity int64) {
	T.log.WithFields(logrus.Fields{"from": T.capacity, "to": capacity, "records": T.size}).Debug("shrinking table")
	T.rehash(capacity)
}

// rehash - Moves every record, bucket by bucket in chain order, into a new bucket array of the given capacity.
// The old array is dropped as a whole. Afterwards the load factor is checked again, which may trigger further
// resizing.
func (T *Table) rehash(capacity int64) {
	old := T.buckets

	T.capacity = capacity
	T.buckets = make([]chain.Bucket, capacity)
	T.size = 0

	var record model.Record
	var err error
	for i := range old {
		iter := old[i].Records()
		for iter.HasNext() {
			record, err = iter.Next()
			if err != nil {
				break
			}
			T.insert(record)
		}
	}

	if !T.balanced {
		T.log.WithField("capacity", capacity).Debug("load factor bounds now enforced")
		T.balanced = true
	}

	T.autoRebalance()
}
