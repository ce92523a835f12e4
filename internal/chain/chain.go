package chain

import (
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/gostonefire/hashtable/internal/model"
)

// entry - One link in a chain, owned exclusively by the previous link or by the bucket head
type entry struct {
	key   any
	value any
	hash  hash.Value
	next  *entry
}

// Bucket - A singly linked chain of entries whose keys map to the same bucket number.
// Entries are kept in insertion order; an update of an existing key keeps its position.
// Keys are compared with keyEqual, numeric keys of different Go types are the same key when their values are equal.
type Bucket struct {
	head *entry
	len  int64
}

// Len - Returns the number of entries in the chain
func (B *Bucket) Len() int64 {
	return B.len
}

// Get - Returns the value stored with key.
// It returns:
//   - value is the value of the matching entry, nil if not found
//   - found is true if a matching entry was found
func (B *Bucket) Get(key any) (value any, found bool) {
	for e := B.head; e != nil; e = e.next {
		if keyEqual(e.key, key) {
			return e.value, true
		}
	}

	return nil, false
}

// Set - Updates the value of an existing entry with same key or appends a new entry to the tail of the chain.
//   - record is the record to set, Hash has to be the hash value of Key
//
// It returns:
//   - added is true if a new entry was appended, false if an existing entry was updated in place
func (B *Bucket) Set(record model.Record) (added bool) {
	link := &B.head
	for *link != nil {
		if keyEqual((*link).key, record.Key) {
			(*link).value = record.Value
			return false
		}
		link = &(*link).next
	}

	*link = &entry{key: record.Key, value: record.Value, hash: record.Hash}
	B.len++

	return true
}

// Delete - Unlinks the entry with matching key from the chain.
// It returns:
//   - record is the removed key/value pair
//   - found is false if no entry matched, the chain is then left untouched
func (B *Bucket) Delete(key any) (record model.Record, found bool) {
	for link := &B.head; *link != nil; link = &(*link).next {
		if keyEqual((*link).key, key) {
			e := *link
			*link = e.next
			e.next = nil
			B.len--

			record = model.Record{Key: e.key, Value: e.value, Hash: e.hash}
			return record, true
		}
	}

	return
}

// Records - Returns an iterator over the entries of the chain, in chain order
func (B *Bucket) Records() *Records {
	return newRecords(B.head)
}
