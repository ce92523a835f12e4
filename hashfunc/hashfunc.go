package hashfunc

// HashAlgorithm - Interface that permits an implementation using the Table to supply a custom string hash
// algorithm suited for its particular distribution of keys.
// Only string keys are passed to the algorithm, integer and floating-point keys always hash to themselves.
type HashAlgorithm interface {
	// HashFunc - Given the bytes of a string key it generates a 64-bit hash value.
	// The table reduces the value to a bucket number by taking it modulo the current number of buckets, so the
	// function must be deterministic and must not depend on the table size.
	HashFunc(key []byte) uint64
}

// Algorithm - Identifies one of the internally implemented string hash algorithms
type Algorithm int

const (
	// DJB2 - Dan Bernstein's multiply-by-33-and-add hash with seed 5381, 64-bit wraparound (default)
	DJB2 Algorithm = iota
	// XXHash - 64-bit xxHash (XXH64) with seed 0
	XXHash
	// CRC32 - IEEE CRC-32 checksum widened to 64 bits
	CRC32
	// FNV1a - 64-bit FNV-1a
	FNV1a
)

// String - Returns the name of the algorithm
func (A Algorithm) String() string {
	switch A {
	case DJB2:
		return "djb2"
	case XXHash:
		return "xxhash"
	case CRC32:
		return "crc32"
	case FNV1a:
		return "fnv1a"
	default:
		return "unknown"
	}
}
