// Package testutil provides testing utilities for fslist.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic RNG and a randomized model checker that
// drives a List through random operations and compares it step by step
// against container/list.
//
// # Model Checking
//
//	res, err := testutil.Check(seed, testutil.Config{Capacity: 64, Ops: 10_000})
//
// # Many Seeds in Parallel
//
//	results, err := testutil.RunMany(ctx, seeds, cfg, runtime.NumCPU(), nil)
package testutil
