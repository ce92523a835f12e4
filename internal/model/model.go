package model

import "github.com/gostonefire/hashtable/internal/hash"

// Record - Represents one key/value pair stored in a chain, together with the hash value of its key.
// The hash value does not depend on the table size, so it is kept when records are moved between bucket arrays.
type Record struct {
	Key   any
	Value any
	Hash  hash.Value
}
