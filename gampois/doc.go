// Package gampois implements the Gamma-Poisson conjugate model: count
// observations with a Gamma prior on the Poisson rate.
//
// 🚀 The math (closed form)
//
//	Shared: shape α > 0, rate β > 0.
//	Group:  n observations with total Σx, kept as an exact sparse
//	        value→multiplicity counter (all int64).
//
//	Posterior: Gamma(α + Σx, β + n).
//
//	Posterior predictive of a new count x (negative binomial):
//	  log p(x) = logΓ(α'+x) − logΓ(α') − logΓ(x+1)
//	           + α'·log(β'/(β'+1)) + x·log(1/(β'+1))
//	  with α' = α + Σx, β' = β + n.
//
//	Marginal evidence of the group's data:
//	  log p(D) = logΓ(α') − logΓ(α) + α·log β − α'·log(β + n)
//	           − Σ_i logΓ(x_i + 1)
//	  where the last sum is recomputed from the sparse counter, so it
//	  carries no floating drift.
//
// ✨ Properties:
//   - GroupAdd/GroupRemove are O(1) map updates on integer statistics;
//     add-then-remove restores the group bit-for-bit.
//   - SamplePosterior draws the Poisson rate from the posterior Gamma.
//   - Shared and Group round-trip through MarshalBinary/UnmarshalBinary
//     with bit-identical statistics.
package gampois
