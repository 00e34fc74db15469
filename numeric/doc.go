// Package numeric is the shared numeric kernel of lvlbayes: special
// functions, float32 fast approximations, and random-variate generation
// for the conjugate models and the mixture engine.
//
// 🚀 What lives here?
//
//	• Exact transcendentals: Lgamma, Digamma (double precision, the
//	  correctness reference for every model's closed-form score).
//	• Fast float32 approximations: FastLog, FastExp, FastLgamma,
//	  FastDigamma — polynomial/bit-level routines for the low-precision
//	  batched scoring path, each with a documented error bound.
//	• Log-domain helpers: LogSumExp over unnormalized log weights.
//	• Variate generation: Gamma, Beta, Dirichlet draws and the
//	  numerically stable CategoricalLog sampler used by the Gibbs loop.
//
// ✨ Design rules:
//   - No hidden randomness. Every sampling function takes an explicit
//     *rand.Rand engine created via NewEngine(seed); two runs with the
//     same seed and call order produce identical draws.
//   - No silent degradation. Degenerate inputs (empty weight vectors,
//     all -Inf weights, NaN) are sentinel errors, never a default index.
//   - Stability first. CategoricalLog subtracts the maximum log weight
//     before exponentiating, so arbitrarily shifted log weights never
//     overflow or underflow to a zero normalizer.
//
// Errors:
//
//	ErrNoWeights         - empty log-weight vector.
//	ErrImpossibleWeights - all weights -Inf, or a NaN weight.
//	ErrBadShape          - non-positive shape/rate/concentration.
package numeric
