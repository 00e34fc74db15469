// Package model declares the conjugate-model contract every lvlbayes
// model family implements, and the sentinel errors shared across them.
//
// 🚀 The contract
//
//	A model binds three types together: its Shared hyperparameters (the
//	implementing receiver), its per-cluster Group sufficient statistics
//	G, and its native observation type V. Five operations make any such
//	family pluggable into the generic mixture engine:
//
//	  GroupInit()               → zero-initialized sufficient statistics
//	  GroupAdd(g, v)            → incorporate one observation, O(1)/O(dim)
//	  GroupRemove(g, v)         → exact inverse of GroupAdd
//	  ScoreValue(g, v)          → log posterior-predictive of v joining g
//	  ScoreGroup(g)             → log marginal evidence of g's data
//
// ✨ Rules every implementation follows:
//   - Shared is immutable during a sweep; Groups mutate only through
//     GroupAdd/GroupRemove, so statistics always equal the exact
//     aggregate of the currently assigned observations.
//   - Removing a value never added, or removing from an empty group, is
//     a precondition violation reported through the sentinels below —
//     never silently clamped.
//   - ScoreValue is the full Bayesian predictive (prior integrated out),
//     not a bare likelihood; the engine relies on this for collapsed
//     Gibbs correctness.
//
// The optional BatchScorer extension is the low-precision variant's
// hook: models that can score one value against many groups in a single
// vectorized float32 pass implement it, and the engine's
// mixture.LowPrecision mode requires it at construction time.
//
// Errors:
//
//	ErrEmptyGroup       - remove from a group with no observations.
//	ErrValueNotInGroup  - remove of a value the group never absorbed.
//	ErrValueOutOfDomain - value outside the model's support.
//	ErrBadHyper         - invalid hyperparameters at construction.
package model
