//go:build unit

package hash

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	t.Run("integer keys hash to themselves", func(t *testing.T) {
		// Prepare
		h := NewDJB2HashAlgorithm()

		// Execute
		vInt, errInt := Sum(42, h)
		vUint, errUint := Sum(uint16(42), h)
		vNeg, errNeg := Sum(int8(-7), h)

		// Check
		assert.NoError(t, errInt, "int key accepted")
		assert.NoError(t, errUint, "uint16 key accepted")
		assert.NoError(t, errNeg, "int8 key accepted")
		assert.Equal(t, Value{Magnitude: 42}, vInt, "int hashes to itself")
		assert.Equal(t, Value{Magnitude: 42}, vUint, "uint16 hashes to itself")
		assert.Equal(t, Value{Magnitude: 7, Negative: true}, vNeg, "negative int keeps its sign")
	})

	t.Run("min int64 does not overflow", func(t *testing.T) {
		// Execute
		v, err := Sum(int64(math.MinInt64), NewDJB2HashAlgorithm())

		// Check
		assert.NoError(t, err, "min int64 accepted")
		assert.Equal(t, Value{Magnitude: 1 << 63, Negative: true}, v, "magnitude is 2^63")
	})

	t.Run("float keys are truncated toward zero", func(t *testing.T) {
		// Prepare
		h := NewDJB2HashAlgorithm()

		// Execute
		vPos, errPos := Sum(3.7, h)
		vNeg, errNeg := Sum(float32(-3.7), h)
		vSmall, errSmall := Sum(-0.5, h)

		// Check
		assert.NoError(t, errPos, "float64 key accepted")
		assert.NoError(t, errNeg, "float32 key accepted")
		assert.NoError(t, errSmall, "small float key accepted")
		assert.Equal(t, Value{Magnitude: 3}, vPos, "3.7 truncates to 3")
		assert.Equal(t, Value{Magnitude: 3, Negative: true}, vNeg, "-3.7 truncates to -3")
		assert.Equal(t, uint64(0), vSmall.Magnitude, "-0.5 truncates to zero")
	})

	t.Run("huge float keys keep their full magnitude", func(t *testing.T) {
		// Execute
		vPos, errPos := Sum(1e20, NewDJB2HashAlgorithm())
		vNeg, errNeg := Sum(-1e20, NewDJB2HashAlgorithm())

		// Check
		assert.NoError(t, errPos, "huge float accepted")
		assert.NoError(t, errNeg, "huge negative float accepted")
		assert.False(t, vPos.Negative, "positive sign")
		assert.True(t, vNeg.Negative, "negative sign")
		assert.Equal(t, "100000000000000000000", vPos.wide.String(), "exact magnitude")
		assert.Equal(t, int64(2), vPos.BucketNo(7), "1e20 mod 7")
		assert.Equal(t, int64(5), vNeg.BucketNo(7), "-1e20 mod 7")
	})

	t.Run("string keys use the hash algorithm", func(t *testing.T) {
		// Execute
		v, err := Sum("ab", NewDJB2HashAlgorithm())

		// Check
		assert.NoError(t, err, "string key accepted")
		assert.Equal(t, Value{Magnitude: 5863208}, v, "djb2 of ab")
	})

	t.Run("unsupported key types are rejected", func(t *testing.T) {
		// Prepare
		h := NewDJB2HashAlgorithm()
		keys := []any{nil, true, []byte("a"), struct{}{}, complex(1, 2), math.NaN(), math.Inf(1), float32(math.Inf(-1))}

		for _, key := range keys {
			// Execute
			_, err := Sum(key, h)

			// Check
			assert.Error(t, err, "key rejected")
			assert.True(t, errors.Is(err, hashfunc.UnsupportedKeyType{}), "error of type UnsupportedKeyType")
		}
	})
}

func TestValue_BucketNo(t *testing.T) {
	t.Run("positive values use plain modulo", func(t *testing.T) {
		// Prepare
		v := Value{Magnitude: 42}

		// Execute and Check
		assert.Equal(t, int64(2), v.BucketNo(4), "42 mod 4")
		assert.Equal(t, int64(0), v.BucketNo(1), "42 mod 1")
		assert.Equal(t, int64(42), v.BucketNo(100), "42 mod 100")
	})

	t.Run("negative values use floor modulo", func(t *testing.T) {
		// Prepare
		tests := []struct {
			value     Value
			tableSize int64
			bucketNo  int64
		}{
			{value: Value{Magnitude: 1, Negative: true}, tableSize: 4, bucketNo: 3},
			{value: Value{Magnitude: 4, Negative: true}, tableSize: 4, bucketNo: 0},
			{value: Value{Magnitude: 3, Negative: true}, tableSize: 5, bucketNo: 2},
			{value: Value{Magnitude: 1 << 63, Negative: true}, tableSize: 10, bucketNo: 2},
		}

		for _, test := range tests {
			// Execute
			bucketNo := test.value.BucketNo(test.tableSize)

			// Check
			assert.Equal(t, test.bucketNo, bucketNo, "correct bucket number")
			assert.True(t, bucketNo >= 0 && bucketNo < test.tableSize, "bucket number within table")
		}
	})

	t.Run("magnitudes beyond 64 bits use exact modulo", func(t *testing.T) {
		// Prepare
		twoTo64, _ := new(big.Int).SetString("18446744073709551616", 10)
		tests := []struct {
			value     Value
			tableSize int64
			bucketNo  int64
		}{
			{value: Value{wide: twoTo64}, tableSize: 10, bucketNo: 6},
			{value: Value{wide: twoTo64, Negative: true}, tableSize: 10, bucketNo: 4},
			{value: Value{wide: twoTo64}, tableSize: 1 << 20, bucketNo: 0},
			{value: Value{wide: twoTo64}, tableSize: 3, bucketNo: 1},
		}

		for _, test := range tests {
			// Execute
			bucketNo := test.value.BucketNo(test.tableSize)

			// Check
			assert.Equal(t, test.bucketNo, bucketNo, "correct bucket number")
		}
	})
}

func TestNewHashAlgorithm(t *testing.T) {
	t.Run("returns internal implementations", func(t *testing.T) {
		// Prepare
		algorithms := []hashfunc.Algorithm{hashfunc.DJB2, hashfunc.XXHash, hashfunc.CRC32, hashfunc.FNV1a}

		for _, algorithm := range algorithms {
			// Execute
			h, err := NewHashAlgorithm(algorithm)

			// Check
			assert.NoError(t, err, "known algorithm %s", algorithm)
			assert.NotNil(t, h, "algorithm assigned")
		}
	})

	t.Run("error on unknown algorithm", func(t *testing.T) {
		// Execute
		_, err := NewHashAlgorithm(hashfunc.Algorithm(99))

		// Check
		assert.Error(t, err)
	})
}
