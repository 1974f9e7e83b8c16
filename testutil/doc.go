// Package testutil provides testing utilities for momentdist.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating seeded random simulation draws:
// uniform and Gaussian vectors, perturbed model counterparts, and
// moment records.
//
// # Random Draw Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := make([]float64, 16)
//	rng.FillUniform(vec)       // uniform [0, 1)
//	rng.FillGaussian(vec)      // standard normal
//
// # Data/Model Pairs
//
//	data := rng.GaussianVectors(100, 16)
//	model := rng.NoisyCopies(data, 0.05)   // data + Gaussian noise
package testutil
