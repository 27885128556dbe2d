// Package testutil provides testing utilities for the indexed module.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator, an index that records
// the operations it receives, and a randomized harness that drives a
// collection through random mutations while checking a query against a
// reference model after every step.
//
// # Random Number Generation
//
//	rng := testutil.NewRNG(seed)
//	n := rng.Intn(100)
//	s := rng.String(8)
//
// # Operation Recording
//
//	rec := testutil.NewRecorder[int]()
//	c := indexed.New[int, *testutil.Recorder[int]](rec)
//	// ... mutate c, then inspect rec.Ops()
//
// # Reference Checking
//
//	testutil.CheckAgainstReference(t, seed, rounds, c, mkValue, check)
package testutil
