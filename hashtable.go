package hashtable

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/chain"
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultMaxLoad - Load factor above which a balanced table doubles its number of buckets
const DefaultMaxLoad float64 = 0.7

// DefaultMinLoad - Load factor below which a balanced table halves its number of buckets
const DefaultMinLoad float64 = 0.2

// Options - Is a struct used in the call to New holding optional configuration for the table.
// Fields left at their Go zero value get the default.
//   - MaxLoad is the load factor above which the table grows, default DefaultMaxLoad
//   - MinLoad is the load factor below which the table shrinks, default DefaultMinLoad. MaxLoad must be at least twice MinLoad.
//   - Algorithm selects one of the internal string hash algorithms, default hashfunc.DJB2
//   - HashAlgorithm is an optional custom string hash algorithm, it takes precedence over Algorithm
//   - Logger receives resize events at debug level, default is the logrus standard logger
type Options struct {
	MaxLoad       float64
	MinLoad       float64
	Algorithm     hashfunc.Algorithm
	HashAlgorithm hashfunc.HashAlgorithm
	Logger        logrus.FieldLogger
}

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of key/value pairs stored
//   - Capacity is the current number of buckets
//   - LoadFactor is Records divided by Capacity
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the most populated bucket
//   - BucketDistribution is the number of records stored in each bucket, nil unless asked for
type TableStat struct {
	Records            int64
	Capacity           int64
	LoadFactor         float64
	UsedBuckets        int64
	LongestChain       int64
	BucketDistribution []int64
}

// Table - A hash table with separate chaining and load factor driven resizing.
//
// Load factor bounds are not enforced until the table has been resized once through Grow or Shrink, so a new
// table keeps its initial capacity however many records are inserted. From then on every Insert and Remove
// leaves the load factor within [MinLoad, MaxLoad], except for a single bucket table whose load factor is below
// MinLoad.
//
// A Table is not safe for concurrent use.
type Table struct {
	buckets       []chain.Bucket
	capacity      int64
	size          int64
	balanced      bool
	maxLoad       float64
	minLoad       float64
	hashAlgorithm hashfunc.HashAlgorithm
	log           logrus.FieldLogger
}

// New - Returns a new table with initialCapacity buckets.
//   - initialCapacity is the initial number of buckets, it must be at least 1
//   - options is optional configuration, nil gives all defaults
//
// It returns:
//   - table is a pointer to a Table struct
//   - err is a normal Go Error which should be nil if everything went ok
func New(initialCapacity int64, options *Options) (table *Table, err error) {
	// Check if initialCapacity is valid
	if initialCapacity < 1 {
		err = errors.Errorf("initialCapacity must be a positive value higher than 0 (zero), got %d", initialCapacity)
		return
	}

	var opts Options
	if options != nil {
		opts = *options
	}
	if opts.MaxLoad == 0 {
		opts.MaxLoad = DefaultMaxLoad
	}
	if opts.MinLoad == 0 {
		opts.MinLoad = DefaultMinLoad
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	// Check that the load factor bounds can always be met
	if opts.MinLoad < 0 || opts.MaxLoad < 0 {
		err = errors.Errorf("load factors must be positive, got min %v and max %v", opts.MinLoad, opts.MaxLoad)
		return
	}
	if opts.MinLoad*2 > opts.MaxLoad {
		err = errors.Errorf("max load (%v) must be at least twice the min load (%v), otherwise a resize can undo the previous one", opts.MaxLoad, opts.MinLoad)
		return
	}

	// If no HashAlgorithm was given then use the selected internal
	hashAlgorithm := opts.HashAlgorithm
	if hashAlgorithm == nil {
		hashAlgorithm, err = hash.NewHashAlgorithm(opts.Algorithm)
		if err != nil {
			err = errors.Wrap(err, "error while selecting hash algorithm")
			return
		}
	}

	table = &Table{
		buckets:       make([]chain.Bucket, initialCapacity),
		capacity:      initialCapacity,
		maxLoad:       opts.MaxLoad,
		minLoad:       opts.MinLoad,
		hashAlgorithm: hashAlgorithm,
		log:           opts.Logger,
	}

	return
}

// Size - Returns the number of key/value pairs stored
func (T *Table) Size() int64 {
	return T.size
}

// Capacity - Returns the current number of buckets
func (T *Table) Capacity() int64 {
	return T.capacity
}

// LoadFactor - Returns Size divided by Capacity
func (T *Table) LoadFactor() float64 {
	return float64(T.size) / float64(T.capacity)
}

// IsBalanced - Returns true once the table has been resized and load factor bounds are enforced
func (T *Table) IsBalanced() bool {
	return T.balanced
}

// BucketNo - Returns which bucket number the given key maps to at the current capacity
//   - key is a string, an integer or a finite floating-point number
func (T *Table) BucketNo(key any) (bucketNo int64, err error) {
	sum, err := T.sum(key)
	if err != nil {
		return
	}
	bucketNo = sum.BucketNo(T.capacity)

	return
}

// Stat - Goes through all buckets and produces a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of records per bucket, false will set TableStat.BucketDistribution to nil.
func (T *Table) Stat(includeDistribution bool) (tableStat *TableStat) {
	ts := TableStat{
		Capacity:   T.capacity,
		LoadFactor: T.LoadFactor(),
	}

	if includeDistribution {
		ts.BucketDistribution = make([]int64, T.capacity)
	}

	// Iterate over every bucket
	for i := range T.buckets {
		n := T.buckets[i].Len()

		ts.Records += n
		if n > 0 {
			ts.UsedBuckets++
		}
		if n > ts.LongestChain {
			ts.LongestChain = n
		}
		if includeDistribution {
			ts.BucketDistribution[i] = n
		}
	}

	tableStat = &ts
	return
}

// sum - Hashes the key, wrapping any error with the key type for context
func (T *Table) sum(key any) (value hash.Value, err error) {
	value, err = hash.Sum(key, T.hashAlgorithm)
	if err != nil {
		err = errors.Wrapf(err, "error while hashing key of type %T", key)
	}

	return
}
