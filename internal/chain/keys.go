package chain

import "math"

// twoTo64 - First float magnitude that no Go integer type can hold
const twoTo64 float64 = 1 << 64

// number - Comparable form of a numeric key. Integers, and floats with an integral value that fits a Go integer
// type, are kept as sign and magnitude so that int(3), uint8(3) and float64(3) compare equal. Other floats keep
// their value.
type number struct {
	integral bool
	negative bool
	mag      uint64
	f        float64
}

// keyEqual - Returns true if a and b are the same key. Strings compare by value, numbers by numeric value
// regardless of their Go type.
func keyEqual(a, b any) bool {
	na, aIsNumber := toNumber(a)
	nb, bIsNumber := toNumber(b)
	if !aIsNumber || !bIsNumber {
		return a == b
	}

	return na == nb
}

// toNumber - Returns the comparable form of key, ok is false if key is not numeric
func toNumber(key any) (n number, ok bool) {
	switch k := key.(type) {
	case int:
		return fromInt64(int64(k)), true
	case int8:
		return fromInt64(int64(k)), true
	case int16:
		return fromInt64(int64(k)), true
	case int32:
		return fromInt64(int64(k)), true
	case int64:
		return fromInt64(k), true
	case uint:
		return number{integral: true, mag: uint64(k)}, true
	case uint8:
		return number{integral: true, mag: uint64(k)}, true
	case uint16:
		return number{integral: true, mag: uint64(k)}, true
	case uint32:
		return number{integral: true, mag: uint64(k)}, true
	case uint64:
		return number{integral: true, mag: k}, true
	case uintptr:
		return number{integral: true, mag: uint64(k)}, true
	case float32:
		return fromFloat64(float64(k)), true
	case float64:
		return fromFloat64(k), true
	}

	return
}

func fromInt64(v int64) number {
	if v < 0 {
		return number{integral: true, negative: true, mag: uint64(-(v + 1)) + 1}
	}

	return number{integral: true, mag: uint64(v)}
}

func fromFloat64(f float64) number {
	a := math.Abs(f)
	if f != math.Trunc(f) || a >= twoTo64 {
		return number{f: f}
	}

	// -0.0 is the integer 0
	return number{integral: true, negative: f < 0, mag: uint64(a)}
}
