package hash

// djb2Seed - Initial accumulator value of the DJB2 algorithm
const djb2Seed uint64 = 5381

// DJB2HashAlgorithm - The default string hash algorithm. For each byte of the key the accumulator is updated as
// h = h*33 + byte, starting from 5381. Arithmetic is done on an uint64 and wraps around on overflow.
type DJB2HashAlgorithm struct{}

// NewDJB2HashAlgorithm - Returns a pointer to a new DJB2HashAlgorithm instance
func NewDJB2HashAlgorithm() *DJB2HashAlgorithm {
	return &DJB2HashAlgorithm{}
}

// HashFunc - Given key it generates a 64-bit DJB2 hash value
func (D *DJB2HashAlgorithm) HashFunc(key []byte) uint64 {
	h := djb2Seed
	for _, b := range key {
		h = h*33 + uint64(b)
	}

	return h
}
