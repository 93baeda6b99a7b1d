// Package testutil provides testing utilities for bitreg.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for bit indices, including indices that fall
// outside a register's width.
//
// # Random Indices
//
//	rng := testutil.NewRNG(seed)
//	idx := rng.Indices(32, 8)        // 32 indices in [0, 8)
//	mixed := rng.MixedIndices(32, 8) // roughly a quarter in [8, 16)
package testutil
