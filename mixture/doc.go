// Package mixture runs collapsed Gibbs sampling for Dirichlet-Process
// mixture models over any conjugate family implementing the lvlbayes
// model contract.
//
// 🚀 One Gibbs step (for data point i)
//
//  1. If i is assigned, remove it from its group via GroupRemove; if
//     the group empties, destroy the group.
//  2. For every live group g plus one fresh candidate group, compute
//     log_weight(g) = log(size(g) or α) + ScoreValue(shared, g, vᵢ)
//     — the Chinese-Restaurant-Process prior term times the model's
//     posterior predictive.
//  3. Draw the new assignment from CategoricalLog(log_weights).
//  4. Add i to the chosen group (creating it if the fresh candidate
//     won), and record the assignment.
//
// A Sweep applies the step to every point in a fixed deterministic
// order, or a per-sweep shuffled order when configured — either way the
// partition invariant (every point in exactly one group, group sizes
// equal membership) holds after every step. The engine never decides
// convergence: callers run sweeps until their own stopping criterion.
//
// ✨ Design rules:
//   - Single-threaded per partition. A sweep mutates the group
//     statistics the next step reads, so parallelism lives across
//     independent Mixture instances, each with its own engine.
//   - Explicit randomness. The engine owns one *rand.Rand, injected by
//     seed or instance at construction; runs replay exactly.
//   - Precision is a construction choice. HighPrecision scores through
//     the exact ScoreValue; LowPrecision batches existing-group scores
//     through the model's float32 BatchScorer and is rejected at New
//     when the model lacks one.
//   - No silent repair. Any model-contract failure propagates wrapped;
//     the Mixture must then be discarded, since a partially applied
//     step leaves the point unassigned.
//
// Errors:
//
//	ErrNilModel             - nil model at construction.
//	ErrNoValues             - empty dataset.
//	ErrBadAlpha             - non-positive CRP concentration.
//	ErrPrecisionUnsupported - LowPrecision without a BatchScorer.
//	ErrBadWarmStart         - warm-start labels malformed.
//	ErrIndexOutOfRange      - Step index outside the dataset.
package mixture
