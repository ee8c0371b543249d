// Package backing provides caller-side storage for fslist containers.
//
// fslist never allocates; the arrays it manages are owned by the caller.
// This package offers the two common ways to obtain them:
//
//	// Go heap
//	values, links := backing.Heap[Job, uint16](1024)
//	jobs := fslist.New(1024, values, links)
//
//	// Link records off the Go heap, in an anonymous mapping
//	lm, err := backing.MapLinks[uint16](1024)
//	if err != nil { ... }
//	defer lm.Close()
//	jobs := fslist.New(1024, make([]Job, 1024), lm.Links())
//
// Only link records can live off-heap: they are plain integers. Payloads may
// hold Go pointers, which the garbage collector must be able to see, so they
// always stay on the Go heap.
package backing
