//go:build unit

package chain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEqual(t *testing.T) {
	t.Run("numbers compare by value", func(t *testing.T) {
		// Prepare
		tests := []struct {
			a, b  any
			equal bool
		}{
			{a: 42, b: int64(42), equal: true},
			{a: uint8(42), b: int16(42), equal: true},
			{a: 42, b: 42.0, equal: true},
			{a: float32(42), b: uint64(42), equal: true},
			{a: -1, b: -1.0, equal: true},
			{a: 0, b: math.Copysign(0, -1), equal: true},
			{a: int64(math.MinInt64), b: float64(math.MinInt64), equal: true},
			{a: uint64(math.MaxUint64), b: -1, equal: false},
			{a: 3, b: 3.5, equal: false},
			{a: 2.5, b: float32(2.5), equal: true},
			{a: 1e20, b: 1e20, equal: true},
			{a: 42, b: 43, equal: false},
		}

		for _, test := range tests {
			// Execute
			equal := keyEqual(test.a, test.b)

			// Check
			assert.Equal(t, test.equal, equal, "%v (%T) and %v (%T)", test.a, test.a, test.b, test.b)
			assert.Equal(t, equal, keyEqual(test.b, test.a), "symmetric")
		}
	})

	t.Run("strings compare by value only", func(t *testing.T) {
		// Execute and Check
		assert.True(t, keyEqual("line_1", "line_1"), "same string")
		assert.False(t, keyEqual("line_1", "line_2"), "other string")
		assert.False(t, keyEqual("3", 3), "string is not a number")
	})
}
