// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between Go's int and the fixed-width unsigned types used as
// node indices.
//
// Use cases:
//   - Validating a requested capacity against the chosen index width
//   - Converting index values back to int for slice addressing
//
// For conversions that are provably safe by domain constraints (e.g. an index
// already known to be below capacity), use direct type casts instead to avoid
// overhead.
package conv
