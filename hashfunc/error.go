package hashfunc

// UnsupportedKeyType - Custom error to inform that a key can not be hashed. Keys must be strings, integers or
// finite floating-point numbers.
type UnsupportedKeyType struct {
	msg string
}

// NewUnsupportedKeyType - Returns an UnsupportedKeyType error carrying the given message
func NewUnsupportedKeyType(msg string) UnsupportedKeyType {
	return UnsupportedKeyType{msg: msg}
}

// Error - Used to notify that the key type is not supported
func (U UnsupportedKeyType) Error() string {
	if U.msg == "" {
		return "unsupported key type"
	}
	return U.msg
}

// Is - Makes errors.Is(err, UnsupportedKeyType{}) match regardless of message
func (U UnsupportedKeyType) Is(target error) bool {
	_, ok := target.(UnsupportedKeyType)
	return ok
}
