package dpd

// batch.go - the low-precision scoring path, mirroring the dense
// dirichlet batch scorer over the sparse group counters.

import "github.com/katalvlaran/lvlbayes/numeric"

// ScoreValueBatch writes an approximate log predictive of symbol v
// under each group into dst[i] (len(dst) ≥ len(groups)).
//
// Precondition: v is inside the current support; the mixture engine
// establishes this through the exact ScoreValue on the fresh-group
// candidate before any batch call.
//
// Error bound: ≤ 5e-4 absolute log-probability deviation from
// ScoreValue. Complexity: O(len(groups)).
func (s *Shared) ScoreValueBatch(groups []*Group, v int, dst []float64) {
	ab := float32(s.alpha * s.betas[v])
	alpha := float32(s.alpha)
	for i, g := range groups {
		num := numeric.FastLog(ab + float32(g.Counts[v]))
		den := numeric.FastLog(alpha + float32(g.Total))
		dst[i] = float64(num - den)
	}
}
