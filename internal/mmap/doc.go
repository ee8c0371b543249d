// Package mmap provides anonymous memory mappings for off-heap storage.
//
// # Overview
//
// An anonymous mapping is a read-write region obtained directly from the
// operating system, outside the Go garbage collector's control. fslist uses
// it to hold link records, which are plain integers and therefore safe to
// keep off the heap.
//
// # Usage
//
//	m, err := mmap.MapAnon(4096)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // zero-filled
//
//	// Provide kernel hints for access patterns
//	m.Advise(mmap.AccessRandom)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): Uses mmap(2) with madvise(2) for the random-access hint
//   - Windows: Uses VirtualAlloc/VirtualFree (advise is a no-op)
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. Callers must ensure
// nothing touches Bytes() after Close() returns.
package mmap
