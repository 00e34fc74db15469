package dpd

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlbayes/model"
	"github.com/katalvlaran/lvlbayes/numeric"
)

// ErrNoResidualMass indicates a Grow call with no residual base mass
// left to break (β0 = 0).
var ErrNoResidualMass = errors.New("dpd: residual mass beta0 is zero")

// Shared holds one model instance's Dirichlet-process parameters:
// top-level concentration gamma, coupling concentration alpha, dense
// base weights betas and the residual unseen-symbol mass beta0.
// Immutable during a sweep; Grow extends the support between sweeps.
type Shared struct {
	gamma float64
	alpha float64
	beta0 float64
	betas []float64
}

// Group holds one cluster's sufficient statistics: a sparse
// symbol→count map plus the count total. All statistics are integers,
// so incremental maintenance is exact.
type Group struct {
	Counts map[int]int64
	Total  int64
}

var (
	_ model.Model[*Group, int]       = (*Shared)(nil)
	_ model.BatchScorer[*Group, int] = (*Shared)(nil)
)

// New constructs a Shared. gamma and alpha must be positive, beta0
// non-negative, every beta positive, and beta0 + Σβ must equal 1 to
// within 1e-6; violations wrap model.ErrBadHyper. betas is copied.
func New(gamma, alpha, beta0 float64, betas []float64) (*Shared, error) {
	if !(gamma > 0) || !(alpha > 0) {
		return nil, fmt.Errorf("dpd: gamma=%v alpha=%v must be positive: %w",
			gamma, alpha, model.ErrBadHyper)
	}
	if beta0 < 0 || math.IsNaN(beta0) {
		return nil, fmt.Errorf("dpd: beta0=%v must be ≥ 0: %w", beta0, model.ErrBadHyper)
	}
	if len(betas) == 0 {
		return nil, fmt.Errorf("dpd: empty base-weight vector: %w", model.ErrBadHyper)
	}
	total := beta0
	s := &Shared{gamma: gamma, alpha: alpha, beta0: beta0, betas: make([]float64, len(betas))}
	for i, b := range betas {
		if !(b > 0) {
			return nil, fmt.Errorf("dpd: beta[%d]=%v must be positive: %w", i, b, model.ErrBadHyper)
		}
		s.betas[i] = b
		total += b
	}
	if math.Abs(total-1) > 1e-6 {
		return nil, fmt.Errorf("dpd: beta0+Σβ=%v must equal 1: %w", total, model.ErrBadHyper)
	}
	return s, nil
}

// Uniform constructs a Shared whose dim base weights split 1−beta0
// evenly.
func Uniform(gamma, alpha, beta0 float64, dim int) (*Shared, error) {
	if dim < 1 {
		return nil, fmt.Errorf("dpd: dim=%d must be ≥ 1: %w", dim, model.ErrBadHyper)
	}
	betas := make([]float64, dim)
	for i := range betas {
		betas[i] = (1 - beta0) / float64(dim)
	}
	return New(gamma, alpha, beta0, betas)
}

// Dim returns the current support size.
func (s *Shared) Dim() int { return len(s.betas) }

// Beta0 returns the residual unseen-symbol mass.
func (s *Shared) Beta0() float64 { return s.beta0 }

// GroupInit returns zero-initialized sufficient statistics.
func (s *Shared) GroupInit() *Group {
	return &Group{Counts: make(map[int]int64)}
}

// GroupAdd incorporates one observation. O(1).
// Symbols outside the current support wrap model.ErrValueOutOfDomain;
// growing the support is an explicit Grow step, never a side effect.
func (s *Shared) GroupAdd(g *Group, v int) error {
	if v < 0 || v >= len(s.betas) {
		return fmt.Errorf("dpd: add symbol=%d outside [0,%d): %w",
			v, len(s.betas), model.ErrValueOutOfDomain)
	}
	g.Counts[v]++
	g.Total++
	return nil
}

// GroupRemove is the exact inverse of GroupAdd. O(1).
func (s *Shared) GroupRemove(g *Group, v int) error {
	if v < 0 || v >= len(s.betas) {
		return fmt.Errorf("dpd: remove symbol=%d outside [0,%d): %w",
			v, len(s.betas), model.ErrValueOutOfDomain)
	}
	if g.Total == 0 {
		return fmt.Errorf("dpd: remove symbol=%d: %w", v, model.ErrEmptyGroup)
	}
	if g.Counts[v] == 0 {
		return fmt.Errorf("dpd: remove symbol=%d: %w", v, model.ErrValueNotInGroup)
	}
	g.Counts[v]--
	if g.Counts[v] == 0 {
		delete(g.Counts, v)
	}
	g.Total--
	return nil
}

// ScoreValue returns the log posterior-predictive probability of
// symbol v joining g: log((α·β_v + c_v) / (α + n)). O(1).
func (s *Shared) ScoreValue(g *Group, v int) (float64, error) {
	if v < 0 || v >= len(s.betas) {
		return 0, fmt.Errorf("dpd: score symbol=%d outside [0,%d): %w",
			v, len(s.betas), model.ErrValueOutOfDomain)
	}
	num := s.alpha*s.betas[v] + float64(g.Counts[v])
	den := s.alpha + float64(g.Total)
	return math.Log(num) - math.Log(den), nil
}

// ScoreOther returns the log predictive mass of a symbol not yet in the
// support: log(α·β0 / (α + n)). -Inf when the support is saturated.
func (s *Shared) ScoreOther(g *Group) float64 {
	if s.beta0 == 0 {
		return math.Inf(-1)
	}
	return math.Log(s.alpha*s.beta0) - math.Log(s.alpha+float64(g.Total))
}

// ScoreGroup returns the log marginal evidence of the group's counts
// under the Shared base measure. Summation runs in sorted symbol order
// so repeated calls are bit-identical. O(distinct symbols · log).
func (s *Shared) ScoreGroup(g *Group) float64 {
	score := numeric.Lgamma(s.alpha) - numeric.Lgamma(s.alpha+float64(g.Total))
	keys := make([]int, 0, len(g.Counts))
	for v := range g.Counts {
		keys = append(keys, v)
	}
	slices.Sort(keys)
	for _, v := range keys {
		ab := s.alpha * s.betas[v]
		score += numeric.Lgamma(ab+float64(g.Counts[v])) - numeric.Lgamma(ab)
	}
	return score
}

// Grow performs one stick-breaking step: draws b ~ Beta(1, γ), carves
// β_new = b·β0 off the residual mass, appends it to the support and
// returns the new symbol's index. Call only between sweeps — Grow
// mutates Shared.
func (s *Shared) Grow(rng *rand.Rand) (int, error) {
	if s.beta0 == 0 {
		return 0, ErrNoResidualMass
	}
	b, err := numeric.Beta(rng, 1, s.gamma)
	if err != nil {
		return 0, err
	}
	s.betas = append(s.betas, b*s.beta0)
	s.beta0 *= 1 - b
	return len(s.betas) - 1, nil
}

// SamplePosterior fills dst (len Dim()+1) with one draw of the symbol
// probabilities from the posterior Dirichlet over (α·β + c), with the
// final entry carrying the unseen-symbol mass α·β0. This is the
// hyperparameter-resampling entry point consumed by outer samplers.
func (s *Shared) SamplePosterior(rng *rand.Rand, g *Group, dst []float64) error {
	if len(dst) != len(s.betas)+1 {
		return fmt.Errorf("dpd: posterior dst len=%d, want %d: %w",
			len(dst), len(s.betas)+1, model.ErrValueOutOfDomain)
	}
	post := make([]float64, len(s.betas)+1)
	for v, b := range s.betas {
		post[v] = s.alpha*b + float64(g.Counts[v])
	}
	// Zero residual mass would break the Gamma draw; fall back to a
	// vanishing concentration that keeps the draw on the simplex.
	post[len(s.betas)] = math.Max(s.alpha*s.beta0, 1e-12)
	return numeric.Dirichlet(rng, post, dst)
}
