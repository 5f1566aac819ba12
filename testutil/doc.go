// Package testutil provides testing utilities for the collection
// packages.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, thread-safe random source and small
// ground-truth helpers for property tests.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	vals := rng.IntsInRange(500, -100, 100)
//	rng.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
//
// # Ground Truth
//
//	want := testutil.SortedUnique(vals)
package testutil
