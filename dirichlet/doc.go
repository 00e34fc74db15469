// Package dirichlet implements the Dirichlet-Discrete conjugate model:
// categorical observations over a fixed finite support with a Dirichlet
// prior on the category probabilities.
//
// 🚀 The math (closed form)
//
//	Shared: concentration vector α ∈ R₊^D.
//	Group:  per-category counts c with total n (exact int64 statistics).
//
//	Posterior predictive of category v joining the group:
//	  p(v | c, α) = (α_v + c_v) / (Σα + n)
//
//	Marginal evidence of the group's data (Dirichlet-multinomial):
//	  log p(c | α) = logΓ(Σα) − logΓ(Σα + n)
//	              + Σ_v [ logΓ(α_v + c_v) − logΓ(α_v) ]
//
// ✨ Properties:
//   - GroupAdd/GroupRemove are O(1); sufficient statistics are integer
//     counters, so add-then-remove restores the group bit-for-bit.
//   - ScoreValueBatch provides the float32 low-precision path (≤ 5e-4
//     absolute log-probability error versus ScoreValue).
//   - Shared and Group round-trip through MarshalBinary/UnmarshalBinary
//     with bit-identical statistics.
//
// Construction errors wrap model.ErrBadHyper; contract violations wrap
// the shared model sentinels (ErrValueOutOfDomain, ErrEmptyGroup,
// ErrValueNotInGroup).
package dirichlet
