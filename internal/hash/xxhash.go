package hash

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - String hash algorithm using 64-bit xxHash (XXH64 with seed 0)
type XXHashAlgorithm struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// HashFunc - Given key it generates a 64-bit xxHash value
func (X *XXHashAlgorithm) HashFunc(key []byte) uint64 {
	return xxhash.Sum64(key)
}
