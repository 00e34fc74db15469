package dirichlet

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlbayes/model"
	"github.com/katalvlaran/lvlbayes/numeric"
)

// Shared holds the immutable Dirichlet hyperparameters of one model
// instance: the concentration vector and its cached sum. Shared is
// read-only during a sweep; hyperparameter resampling between sweeps
// replaces it via New.
type Shared struct {
	alphas   []float64
	alphaSum float64
}

// Group holds one cluster's sufficient statistics: dense per-category
// counts plus their total. All statistics are integers, so incremental
// maintenance is exact.
type Group struct {
	Counts []int64
	Total  int64
}

// Compile-time contract check: Shared plugs into the generic engine.
var (
	_ model.Model[*Group, int]       = (*Shared)(nil)
	_ model.BatchScorer[*Group, int] = (*Shared)(nil)
)

// New constructs a Shared from an explicit concentration vector.
// Every α_v must be positive and the dimension at least 1; violations
// wrap model.ErrBadHyper. The slice is copied. Complexity: O(D).
func New(alphas []float64) (*Shared, error) {
	if len(alphas) == 0 {
		return nil, fmt.Errorf("dirichlet: empty concentration vector: %w", model.ErrBadHyper)
	}
	s := &Shared{alphas: make([]float64, len(alphas))}
	for i, a := range alphas {
		if !(a > 0) || math.IsInf(a, 1) {
			return nil, fmt.Errorf("dirichlet: concentration[%d]=%v must be positive and finite: %w",
				i, a, model.ErrBadHyper)
		}
		s.alphas[i] = a
		s.alphaSum += a
	}
	return s, nil
}

// Symmetric constructs a Shared with D equal concentrations alpha.
func Symmetric(dim int, alpha float64) (*Shared, error) {
	if dim < 1 {
		return nil, fmt.Errorf("dirichlet: dim=%d must be ≥ 1: %w", dim, model.ErrBadHyper)
	}
	alphas := make([]float64, dim)
	for i := range alphas {
		alphas[i] = alpha
	}
	return New(alphas)
}

// Dim returns the support size D.
func (s *Shared) Dim() int { return len(s.alphas) }

// Alphas returns a copy of the concentration vector.
func (s *Shared) Alphas() []float64 {
	out := make([]float64, len(s.alphas))
	copy(out, s.alphas)
	return out
}

// GroupInit returns zero-initialized sufficient statistics.
func (s *Shared) GroupInit() *Group {
	return &Group{Counts: make([]int64, len(s.alphas))}
}

// GroupAdd incorporates one observation. O(1).
// Values outside [0, D) wrap model.ErrValueOutOfDomain.
func (s *Shared) GroupAdd(g *Group, v int) error {
	if v < 0 || v >= len(s.alphas) {
		return fmt.Errorf("dirichlet: add value=%d outside [0,%d): %w",
			v, len(s.alphas), model.ErrValueOutOfDomain)
	}
	g.Counts[v]++
	g.Total++
	return nil
}

// GroupRemove is the exact inverse of GroupAdd. O(1).
// Removing from an empty group or removing a category the group never
// absorbed is a precondition violation, reported and never clamped.
func (s *Shared) GroupRemove(g *Group, v int) error {
	if v < 0 || v >= len(s.alphas) {
		return fmt.Errorf("dirichlet: remove value=%d outside [0,%d): %w",
			v, len(s.alphas), model.ErrValueOutOfDomain)
	}
	if g.Total == 0 {
		return fmt.Errorf("dirichlet: remove value=%d: %w", v, model.ErrEmptyGroup)
	}
	if g.Counts[v] == 0 {
		return fmt.Errorf("dirichlet: remove value=%d: %w", v, model.ErrValueNotInGroup)
	}
	g.Counts[v]--
	g.Total--
	return nil
}

// ScoreValue returns the log posterior-predictive probability of
// category v joining g: log((α_v + c_v) / (Σα + n)). O(1).
func (s *Shared) ScoreValue(g *Group, v int) (float64, error) {
	if v < 0 || v >= len(s.alphas) {
		return 0, fmt.Errorf("dirichlet: score value=%d outside [0,%d): %w",
			v, len(s.alphas), model.ErrValueOutOfDomain)
	}
	num := s.alphas[v] + float64(g.Counts[v])
	den := s.alphaSum + float64(g.Total)
	return math.Log(num) - math.Log(den), nil
}

// ScoreGroup returns the Dirichlet-multinomial log marginal evidence of
// the group's accumulated counts under the Shared prior. O(D).
func (s *Shared) ScoreGroup(g *Group) float64 {
	score := numeric.Lgamma(s.alphaSum) - numeric.Lgamma(s.alphaSum+float64(g.Total))
	for v, c := range g.Counts {
		if c != 0 {
			score += numeric.Lgamma(s.alphas[v]+float64(c)) - numeric.Lgamma(s.alphas[v])
		}
	}
	return score
}

// SamplePosterior fills dst (len D) with one draw of the category
// probabilities from the posterior Dirichlet(α + c). This is the
// hyperparameter-resampling entry point consumed by outer samplers.
func (s *Shared) SamplePosterior(rng *rand.Rand, g *Group, dst []float64) error {
	if len(dst) != len(s.alphas) {
		return fmt.Errorf("dirichlet: posterior dst len=%d, want %d: %w",
			len(dst), len(s.alphas), model.ErrValueOutOfDomain)
	}
	post := make([]float64, len(s.alphas))
	for v, a := range s.alphas {
		post[v] = a + float64(g.Counts[v])
	}
	return numeric.Dirichlet(rng, post, dst)
}
