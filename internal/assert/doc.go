// Package assert provides the invariant-check facility used by fslist.
//
// Checks are guarded by the Enabled constant so the compiler removes them
// entirely when the module is built with the fslist_release tag:
//
//	if assert.Enabled && size >= capacity {
//		assert.Fail(logger, err, "op", "allocate")
//	}
//
// A failed check is a programmer error. Fail logs the violation and panics
// with the supplied error; it never returns.
package assert
