package conv

import (
	"fmt"
)

// Unsigned is the set of unsigned integer types usable as node indices.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// MaxOf returns the largest value representable by U.
func MaxOf[U Unsigned]() U {
	return ^U(0)
}

// BitsOf returns the width of U in bits.
func BitsOf[U Unsigned]() int {
	w := 0
	for m := MaxOf[U](); m != 0; m >>= 1 {
		w++
	}
	return w
}

// IntTo converts int to U safely.
func IntTo[U Unsigned](v int) (U, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint%d (negative)", v, BitsOf[U]())
	}
	if uint64(v) > uint64(MaxOf[U]()) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint%d (too large)", v, BitsOf[U]())
	}
	return U(v), nil
}
