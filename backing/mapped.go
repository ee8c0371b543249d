package backing

import (
	"fmt"
	"unsafe"

	"github.com/kang-sw/fslist"
	"github.com/kang-sw/fslist/internal/mmap"
)

// Links is an array of link records held in an anonymous memory mapping.
//
// The mapping must outlive every container built over Links(). Close
// releases it.
type Links[I fslist.Index] struct {
	m     *mmap.Mapping
	links []fslist.Link[I]
}

// MapLinks maps zero-filled storage for capacity link records.
func MapLinks[I fslist.Index](capacity int) (*Links[I], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("backing: invalid capacity %d", capacity)
	}

	var zero fslist.Link[I]
	size := int(unsafe.Sizeof(zero)) * capacity

	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("backing: map %d link records: %w", capacity, err)
	}
	// Link traversal jumps between arbitrary slots.
	_ = m.Advise(mmap.AccessRandom) //nolint:errcheck // advisory; the mapping works without it

	// Page-aligned mappings satisfy the alignment of any index width.
	ptr := unsafe.Pointer(&m.Bytes()[0]) //nolint:gosec // unsafe is required to view mapped memory as link records
	return &Links[I]{
		m:     m,
		links: unsafe.Slice((*fslist.Link[I])(ptr), capacity),
	}, nil
}

// Links returns the mapped link records. The slice is invalid after Close.
func (l *Links[I]) Links() []fslist.Link[I] {
	return l.links
}

// Len returns the number of link records.
func (l *Links[I]) Len() int {
	return len(l.links)
}

// SizeBytes returns the size of the mapping.
func (l *Links[I]) SizeBytes() int {
	return l.m.Size()
}

// Close unmaps the storage. It is idempotent.
func (l *Links[I]) Close() error {
	l.links = nil
	return l.m.Close()
}
