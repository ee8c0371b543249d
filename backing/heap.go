package backing

import (
	"github.com/kang-sw/fslist"
)

// Heap allocates index-aligned value and link arrays of length capacity on
// the Go heap.
func Heap[T any, I fslist.Index](capacity int) ([]T, []fslist.Link[I]) {
	if capacity <= 0 {
		return nil, nil
	}
	return make([]T, capacity), make([]fslist.Link[I], capacity)
}
