//go:build !fslist_release

package assert

// Enabled reports whether contract checks are compiled in.
const Enabled = true
