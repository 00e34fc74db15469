// Package dpd implements the Dirichlet-Process-Discrete conjugate
// model: categorical observations over a growable support, where the
// component weights are themselves a draw from a Dirichlet process.
//
// 🚀 The structure
//
//	Shared: top-level concentration γ (governs support growth), coupling
//	concentration α, dense per-symbol base weights β, and the residual
//	mass β0 reserved for symbols not yet in the support
//	(β0 + Σβ = 1).
//	Group: sparse symbol→count map plus total.
//
//	Posterior predictive of symbol v joining the group:
//	  p(v | c, ...) = (α·β_v + c_v) / (α + n)
//	and the unseen-symbol mass (ScoreOther):
//	  p(other) = α·β0 / (α + n)
//
//	Marginal evidence of the group's data:
//	  log p(c) = logΓ(α) − logΓ(α + n)
//	          + Σ_{v: c_v>0} [ logΓ(α·β_v + c_v) − logΓ(α·β_v) ]
//
// ✨ Support growth
//
//	Grow performs one stick-breaking step between sweeps: draw
//	b ~ Beta(1, γ), carve β_new = b·β0 off the residual mass, and
//	return the new symbol's index. Shared is otherwise immutable during
//	a sweep.
//
// Errors:
//
//	ErrNoResidualMass - Grow with β0 = 0 (support is saturated).
//	Construction errors wrap model.ErrBadHyper; contract violations wrap
//	the shared model sentinels.
package dpd
