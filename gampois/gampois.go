package gampois

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlbayes/model"
	"github.com/katalvlaran/lvlbayes/numeric"
)

// Shared holds the immutable Gamma prior on the Poisson rate.
type Shared struct {
	alpha float64 // shape
	beta  float64 // rate
}

// Group holds one cluster's sufficient statistics. Counts maps each
// observed value to its multiplicity; N and Sum are the observation
// count and value total. Everything is int64, so incremental
// maintenance is exact and add-then-remove restores the group
// bit-for-bit.
type Group struct {
	Counts map[int64]int64
	N      int64
	Sum    int64
}

var _ model.Model[*Group, int64] = (*Shared)(nil)

// New constructs a Shared with shape alpha and rate beta (both > 0);
// violations wrap model.ErrBadHyper.
func New(alpha, beta float64) (*Shared, error) {
	if !(alpha > 0) || math.IsInf(alpha, 1) {
		return nil, fmt.Errorf("gampois: shape=%v must be positive and finite: %w",
			alpha, model.ErrBadHyper)
	}
	if !(beta > 0) || math.IsInf(beta, 1) {
		return nil, fmt.Errorf("gampois: rate=%v must be positive and finite: %w",
			beta, model.ErrBadHyper)
	}
	return &Shared{alpha: alpha, beta: beta}, nil
}

// Alpha returns the prior shape.
func (s *Shared) Alpha() float64 { return s.alpha }

// Beta returns the prior rate.
func (s *Shared) Beta() float64 { return s.beta }

// GroupInit returns zero-initialized sufficient statistics.
func (s *Shared) GroupInit() *Group {
	return &Group{Counts: make(map[int64]int64)}
}

// GroupAdd incorporates one count observation. O(1).
// Negative values wrap model.ErrValueOutOfDomain.
func (s *Shared) GroupAdd(g *Group, v int64) error {
	if v < 0 {
		return fmt.Errorf("gampois: add value=%d must be ≥ 0: %w", v, model.ErrValueOutOfDomain)
	}
	g.Counts[v]++
	g.N++
	g.Sum += v
	return nil
}

// GroupRemove is the exact inverse of GroupAdd. O(1).
func (s *Shared) GroupRemove(g *Group, v int64) error {
	if v < 0 {
		return fmt.Errorf("gampois: remove value=%d must be ≥ 0: %w", v, model.ErrValueOutOfDomain)
	}
	if g.N == 0 {
		return fmt.Errorf("gampois: remove value=%d: %w", v, model.ErrEmptyGroup)
	}
	if g.Counts[v] == 0 {
		return fmt.Errorf("gampois: remove value=%d: %w", v, model.ErrValueNotInGroup)
	}
	g.Counts[v]--
	if g.Counts[v] == 0 {
		delete(g.Counts, v)
	}
	g.N--
	g.Sum -= v
	return nil
}

// posterior returns the conjugate posterior parameters (α', β') implied
// by the prior and the group's statistics.
func (s *Shared) posterior(g *Group) (alpha, beta float64) {
	return s.alpha + float64(g.Sum), s.beta + float64(g.N)
}

// ScoreValue returns the negative-binomial log posterior-predictive
// probability of count v joining g. O(1).
func (s *Shared) ScoreValue(g *Group, v int64) (float64, error) {
	if v < 0 {
		return 0, fmt.Errorf("gampois: score value=%d must be ≥ 0: %w", v, model.ErrValueOutOfDomain)
	}
	a, b := s.posterior(g)
	x := float64(v)
	return numeric.Lgamma(a+x) - numeric.Lgamma(a) - numeric.Lgamma(x+1) +
		a*math.Log(b/(b+1)) - x*math.Log(b+1), nil
}

// ScoreGroup returns the log marginal evidence of the group's counts
// under the Shared prior. The Σ logΓ(x+1) term is recomputed from the
// sparse counter on every call, so it never drifts; summation runs in
// sorted key order so repeated calls are bit-identical.
// O(distinct values · log).
func (s *Shared) ScoreGroup(g *Group) float64 {
	a, b := s.posterior(g)
	score := numeric.Lgamma(a) - numeric.Lgamma(s.alpha) +
		s.alpha*math.Log(s.beta) - a*math.Log(b)

	keys := make([]int64, 0, len(g.Counts))
	for v := range g.Counts {
		keys = append(keys, v)
	}
	slices.Sort(keys)
	for _, v := range keys {
		score -= float64(g.Counts[v]) * numeric.Lgamma(float64(v)+1)
	}
	return score
}

// SamplePosterior draws one Poisson rate from the posterior
// Gamma(α + Σx, β + n). This is the hyperparameter-resampling entry
// point consumed by outer samplers.
func (s *Shared) SamplePosterior(rng *rand.Rand, g *Group) (float64, error) {
	a, b := s.posterior(g)
	return numeric.Gamma(rng, a, b)
}
