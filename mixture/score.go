package mixture

// score.go - partition-level scoring and concentration resampling: the
// diagnostics and between-sweep moves layered over the assignment loop.

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlbayes/numeric"
)

// ScorePartition returns the log probability of the current partition
// under the Chinese Restaurant Process prior with the engine's α:
//
//	K·log α + Σ_k logΓ(n_k) − [logΓ(α + n) − logΓ(α)]
//
// where K is the number of live groups and n the number of assigned
// points. O(K).
func (mx *Mixture[G, V]) ScorePartition() float64 {
	var n float64
	score := float64(len(mx.ids)) * math.Log(mx.alpha)
	for _, id := range mx.ids {
		size := float64(mx.groups[id].size)
		score += numeric.Lgamma(size)
		n += size
	}
	return score - (numeric.Lgamma(mx.alpha+n) - numeric.Lgamma(mx.alpha))
}

// ScoreData returns the total log marginal evidence of the assigned
// data: Σ ScoreGroup over live groups. Together with ScorePartition it
// gives the collapsed joint log probability the sampler targets.
// O(K·cost(ScoreGroup)).
func (mx *Mixture[G, V]) ScoreData() float64 {
	var score float64
	for _, id := range mx.ids {
		score += mx.m.ScoreGroup(mx.groups[id].stats)
	}
	return score
}

// ResampleAlpha draws a new CRP concentration from its conditional
// posterior under a Gamma(a, b) prior, using the Escobar-West
// auxiliary-variable scheme: η ~ Beta(α+1, n), then α from a two-Gamma
// mixture weighted by (a+K−1) versus n·(b − log η). The engine adopts
// and returns the draw. Call between sweeps only.
func (mx *Mixture[G, V]) ResampleAlpha(a, b float64) (float64, error) {
	if !(a > 0) || !(b > 0) {
		return 0, fmt.Errorf("mixture: gamma prior a=%v b=%v: %w", a, b, ErrBadAlpha)
	}
	var n int
	for _, id := range mx.ids {
		n += mx.groups[id].size
	}
	k := len(mx.ids)
	if n == 0 || k == 0 {
		// Nothing assigned: the conditional is the prior itself.
		draw, err := numeric.Gamma(mx.rng, a, b)
		if err != nil {
			return 0, err
		}
		mx.alpha = draw
		return draw, nil
	}

	eta, err := numeric.Beta(mx.rng, mx.alpha+1, float64(n))
	if err != nil {
		return 0, err
	}
	rate := b - math.Log(eta)
	odds := (a + float64(k) - 1) / (float64(n) * rate)

	shape := a + float64(k) - 1
	if mx.rng.Float64() < odds/(1+odds) {
		shape = a + float64(k)
	}
	draw, err := numeric.Gamma(mx.rng, shape, rate)
	if err != nil {
		return 0, err
	}
	mx.alpha = draw
	return draw, nil
}
