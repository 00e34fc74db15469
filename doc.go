// Package lvlbayes is your in-memory toolkit for Bayesian Monte-Carlo
// inference — conjugate model primitives plus a collapsed Gibbs
// clustering engine for Dirichlet-Process mixtures.
//
// 🚀 What is lvlbayes?
//
//	A focused, explicit-randomness library that brings together:
//		• Numeric kernel: exact and fast-approximate transcendentals,
//		  stable log-domain categorical sampling, variate generation
//		• Conjugate models: Dirichlet-Discrete, Gamma-Poisson,
//		  Normal-Inverse-Chi-Squared, Dirichlet-Process-Discrete —
//		  one shared sufficient-statistics contract
//		• Precision variants: exact float64 scoring, plus a batched
//		  float32 path with documented error bounds
//		• Mixture engine: partition state, collapsed Gibbs sweeps,
//		  CRP weighting, group lifecycle, concentration resampling
//
// ✨ Why choose lvlbayes?
//
//   - One contract, any model – the engine never special-cases a family
//   - Exactly reproducible – every draw flows through a seeded engine
//     you own; no ambient random state anywhere
//   - No silent repair – contract violations are sentinel errors, never
//     corrected behind your back
//   - Exact statistics – sufficient statistics always equal the true
//     aggregate of the assigned points
//
// Under the hood, everything is organized under these subpackages:
//
//	numeric/   — special functions, fast float32 kernels, variate draws
//	model/     — the conjugate-model contract & shared sentinel errors
//	dirichlet/ — Dirichlet-Discrete (categorical data)
//	gampois/   — Gamma-Poisson (count data)
//	nix/       — Normal-Inverse-Chi-Squared (real-valued data)
//	dpd/       — Dirichlet-Process-Discrete (growable categorical data)
//	mixture/   — the collapsed-Gibbs assignment engine
//	synth/     — deterministic synthetic datasets for tests & examples
//
// Quick sketch of one Gibbs step:
//
//	remove point → score every group + one fresh candidate
//	             → draw from the categorical → add point
//
// Dive into each package's doc.go for formulas, invariants and errors.
//
//	go get github.com/katalvlaran/lvlbayes
package lvlbayes
