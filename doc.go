// Package fslist provides a fixed-capacity doubly linked list built over
// caller-supplied arrays, with no allocation performed by the container.
//
// The list is split in two layers:
//
//   - Arena manages index residency in a []Link[I]. It partitions [0, capacity)
//     into an ordered active list and a FIFO idle queue, with O(1) allocate,
//     release and splice operations. It knows nothing about payloads.
//   - List pairs an Arena with an index-aligned []T and mirrors every arena
//     operation that creates or destroys a node by writing or zeroing the
//     value slot at the same index.
//
// # Quick Start
//
//	values := make([]string, 16)
//	links := make([]fslist.Link[uint8], 16)
//	l := fslist.New(16, values, links)
//
//	l.PushBack("b")
//	l.PushFront("a")
//	c := l.Emplace(l.End(), "d")
//	l.Insert(c, "c")
//
//	for v := range l.All() {
//		fmt.Println(v) // a b c d
//	}
//
// # Index Width
//
// The index type I selects the per-node overhead (three I values per slot)
// and bounds the capacity: the maximum value of I is reserved as the
// sentinel, so an arena indexed by uint8 holds at most 255 nodes.
//
// # Reuse Order
//
// Allocation takes the front of the idle queue and release appends to its
// back, so freed indices are reused in the order they were freed.
//
// # Contract Violations
//
// Exhausting the capacity, touching a free index, dereferencing End and
// accessing the front or back of an empty list are programmer errors. They
// are not reported through error returns: the operation logs the violation
// through the configured Logger and panics with a *ContractError whose cause
// is one of the Err* sentinels. Callers uphold preconditions with Len, Cap,
// Empty and Cursor.Valid.
//
// Building with the fslist_release tag compiles every check out.
//
// # Thread Safety
//
// None. A List and its backing arrays must be used from one goroutine at a
// time; wrap it in a mutex if it has to be shared.
package fslist
