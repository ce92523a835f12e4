package hash

import "hash/fnv"

// FNV1aHashAlgorithm - String hash algorithm using 64-bit FNV-1a
type FNV1aHashAlgorithm struct{}

// NewFNV1aHashAlgorithm - Returns a pointer to a new FNV1aHashAlgorithm instance
func NewFNV1aHashAlgorithm() *FNV1aHashAlgorithm {
	return &FNV1aHashAlgorithm{}
}

// HashFunc - Given key it generates a 64-bit FNV-1a hash value
func (F *FNV1aHashAlgorithm) HashFunc(key []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(key)
	return h.Sum64()
}
