package hashtable

import "github.com/gostonefire/hashtable/hashfunc"

// KeyNotFound - Custom error to inform that no entry was found for a key that was to be removed
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// Is - Makes errors.Is(err, KeyNotFound{}) match regardless of message
func (E KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// UnsupportedKeyType - Custom error to inform that a key is neither a string, an integer nor a finite
// floating-point number.
type UnsupportedKeyType = hashfunc.UnsupportedKeyType
