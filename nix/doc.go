// Package nix implements the Normal-Inverse-Chi-Squared conjugate model:
// real-valued observations under a Normal likelihood with unknown mean
// and variance, and the NIΧ² prior (μ0, κ0, σ0², ν0).
//
// 🚀 The math (closed form)
//
//	Group statistics: n, Σx, Σx² (the cophycollapse-style accumulators).
//	Posterior block, with x̄ = Σx/n and ssd = Σx² − (Σx)²/n:
//	  κn = κ0 + n
//	  μn = (κ0·μ0 + Σx) / κn
//	  νn = ν0 + n
//	  νn·σn² = ν0·σ0² + ssd + (κ0·n/κn)·(x̄ − μ0)²
//
//	Posterior predictive of x joining the group: Student-t with
//	  df = νn, loc = μn, scale² = σn²·(κn + 1)/κn.
//
//	Marginal evidence of the group's data:
//	  log p(D) = logΓ(νn/2) − logΓ(ν0/2) + ½·log(κ0/κn)
//	           + (ν0/2)·log(ν0σ0²) − (νn/2)·log(νnσn²) − (n/2)·log π
//
// ✨ Properties:
//   - GroupAdd/GroupRemove are O(1) accumulator updates. Statistics are
//     float64 sums; exactness is verified to 1e-12 relative over long
//     mixed add/remove sequences (continuous data admits no per-value
//     membership check — the partition owner guarantees remove pairs
//     with a prior add).
//   - SamplePosterior draws (μ, σ²) from the posterior: σ² from the
//     scaled inverse-χ², then μ | σ² from Normal(μn, σ²/κn).
//   - Shared and Group round-trip through MarshalBinary/UnmarshalBinary
//     with bit-identical statistics.
package nix
