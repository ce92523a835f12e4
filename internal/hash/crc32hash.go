package hash

import "hash/crc32"

// CRC32HashAlgorithm - String hash algorithm using crc32.ChecksumIEEE. The 32-bit checksum is used as is,
// which limits the spread to 2^32 distinct values.
type CRC32HashAlgorithm struct{}

// NewCRC32HashAlgorithm - Returns a pointer to a new CRC32HashAlgorithm instance
func NewCRC32HashAlgorithm() *CRC32HashAlgorithm {
	return &CRC32HashAlgorithm{}
}

// HashFunc - Given key it generates the IEEE CRC-32 checksum widened to 64 bits
func (C *CRC32HashAlgorithm) HashFunc(key []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(key))
}
