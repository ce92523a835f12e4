package hash

import (
	"fmt"
	"math"
	"math/big"

	"github.com/gostonefire/hashtable/hashfunc"
)

// twoTo64 - 2 to the power of 64 as a float, the first magnitude that does not fit in an uint64
const twoTo64 float64 = 1 << 64

// Value - A hash value represented as a magnitude and a sign.
// String hashes are never negative, integer keys and truncated floats keep the sign of the key.
// Magnitudes of 2^64 and above, which only floats can have, are held in wide and Magnitude is then 0.
type Value struct {
	Magnitude uint64
	Negative  bool
	wide      *big.Int
}

// BucketNo - Returns the mathematical (floor) modulo of the value and tableSize, i.e. a bucket number between
// 0 and tableSize - 1 also for negative values.
//   - tableSize is the number of buckets, it must be at least 1
func (V Value) BucketNo(tableSize int64) int64 {
	n := uint64(tableSize)

	var r uint64
	if V.wide != nil {
		r = new(big.Int).Mod(V.wide, new(big.Int).SetUint64(n)).Uint64()
	} else {
		r = V.Magnitude % n
	}
	if V.Negative && r != 0 {
		r = n - r
	}

	return int64(r)
}

// Sum - Returns the hash value of key.
//   - key is a string, any Go integer type or a finite float32/float64
//   - hashAlgorithm is used for string keys only, numeric keys hash to themselves
//
// It returns:
//   - value is the hash value
//   - err is of type hashfunc.UnsupportedKeyType if the key can not be hashed
func Sum(key any, hashAlgorithm hashfunc.HashAlgorithm) (value Value, err error) {
	switch k := key.(type) {
	case string:
		value = Value{Magnitude: hashAlgorithm.HashFunc([]byte(k))}
	case int:
		value = fromInt64(int64(k))
	case int8:
		value = fromInt64(int64(k))
	case int16:
		value = fromInt64(int64(k))
	case int32:
		value = fromInt64(int64(k))
	case int64:
		value = fromInt64(k)
	case uint:
		value = Value{Magnitude: uint64(k)}
	case uint8:
		value = Value{Magnitude: uint64(k)}
	case uint16:
		value = Value{Magnitude: uint64(k)}
	case uint32:
		value = Value{Magnitude: uint64(k)}
	case uint64:
		value = Value{Magnitude: k}
	case uintptr:
		value = Value{Magnitude: uint64(k)}
	case float32:
		value, err = fromFloat64(float64(k))
	case float64:
		value, err = fromFloat64(k)
	default:
		err = hashfunc.NewUnsupportedKeyType(fmt.Sprintf("unsupported key type %T, key must be a string, an integer or a floating-point number", key))
	}

	return
}

// fromInt64 - Integers hash to themselves
func fromInt64(v int64) Value {
	if v < 0 {
		// -(v+1) can not overflow, not even for math.MinInt64
		return Value{Magnitude: uint64(-(v + 1)) + 1, Negative: true}
	}

	return Value{Magnitude: uint64(v)}
}

// fromFloat64 - Floats hash to their value truncated toward zero, kept exactly also beyond 64 bits.
func fromFloat64(f float64) (value Value, err error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		err = hashfunc.NewUnsupportedKeyType(fmt.Sprintf("unsupported key value %v, floating-point keys must be finite", f))
		return
	}

	t := math.Trunc(f)
	a := math.Abs(t)
	value.Negative = t < 0

	if a < twoTo64 {
		value.Magnitude = uint64(a)
		return
	}

	value.wide, _ = new(big.Float).SetFloat64(a).Int(nil)

	return
}

// NewHashAlgorithm - Returns the internal implementation of the given algorithm
func NewHashAlgorithm(algorithm hashfunc.Algorithm) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch algorithm {
	case hashfunc.DJB2:
		hashAlgorithm = NewDJB2HashAlgorithm()
	case hashfunc.XXHash:
		hashAlgorithm = NewXXHashAlgorithm()
	case hashfunc.CRC32:
		hashAlgorithm = NewCRC32HashAlgorithm()
	case hashfunc.FNV1a:
		hashAlgorithm = NewFNV1aHashAlgorithm()
	default:
		err = fmt.Errorf("hash algorithm %d not implemented", algorithm)
	}

	return
}
