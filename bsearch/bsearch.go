package bsearch

import (
	"fmt"
	"slices"
)

// LowerBound returns the first position in the sorted slice s whose element
// is not less than target, or len(s) if there is none.
func LowerBound[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) int {
	i, _ := slices.BinarySearchFunc(s, target, cmp)
	return i
}

// UpperBound returns the first position in the sorted slice s whose element
// is greater than target, or len(s) if there is none.
func UpperBound[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(s[mid], target) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// InsertSorted inserts v into the sorted slice s after any equal elements
// and returns the updated slice.
func InsertSorted[S ~[]E, E any](s S, v E, cmp func(E, E) int) S {
	return slices.Insert(s, UpperBound(s, v, cmp), v)
}

// LowerBoundRaw is LowerBound over buf viewed as consecutive records of
// stride bytes. key is compared against each record with cmp(record, key).
// A trailing partial record is ignored.
func LowerBoundRaw(buf []byte, stride int, key []byte, cmp func(record, key []byte) int) int {
	if stride <= 0 {
		panic(fmt.Sprintf("bsearch: invalid stride %d", stride))
	}
	lo, hi := 0, len(buf)/stride
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		off := mid * stride
		if cmp(buf[off:off+stride], key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
