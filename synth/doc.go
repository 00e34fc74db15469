// Package synth builds deterministic synthetic datasets for mixture
// model tests, benchmarks and examples: ground-truth cluster labels
// plus per-cluster emitters in each model family's native domain.
//
// 🚀 What it generates
//
//	Labels(n, k)              - balanced ground-truth assignments.
//	Reals(labels, means, sds) - Gaussian observations per cluster.
//	Counts(labels, rates)     - Poisson count observations per cluster.
//	Categorical(labels, comps)- categorical draws per cluster.
//
// ✨ Determinism contract (same as the graph fixtures this package
// descends from): identical inputs, options and seed produce identical
// datasets; the RNG is resolved per call via WithSeed/WithRand, never
// ambient state.
//
// Errors (sentinel):
//
//	ErrBadShape  - n or k below 1, or mismatched parameter lengths.
//	ErrBadLabel  - a label outside [0, number of clusters).
package synth
