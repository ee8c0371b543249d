// Package bsearch provides lower/upper bound binary search driven by a
// three-way comparison.
//
// cmp(a, b) returns a negative number when a < b, zero when a == b and a
// positive number when a > b, the same convention as cmp.Compare.
//
// LowerBoundRaw works on a raw buffer of fixed-size records, for data that
// is never decoded into Go values (mapped files, wire frames).
package bsearch
