package synth

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvlbayes/numeric"
)

// Sentinel errors for dataset construction.
var (
	// ErrBadShape indicates non-positive sizes or mismatched parameter
	// vector lengths.
	ErrBadShape = errors.New("synth: invalid dataset shape")

	// ErrBadLabel indicates a ground-truth label outside the cluster
	// parameter range.
	ErrBadLabel = errors.New("synth: label outside cluster range")
)

// Options configures dataset generation.
//
// Seed - seed for a private engine (ignored if Rand is set).
// Rand - explicit engine shared with the caller.
type Options struct {
	Seed uint64
	Rand *rand.Rand
}

// Option is a functional option for dataset generation.
type Option func(*Options)

// WithSeed seeds a private engine for this call.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects an explicit engine, overriding WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// resolve applies opts over defaults and returns the engine to draw
// from. Deterministic per (opts, seed).
func resolve(opts []Option) *rand.Rand {
	o := Options{Seed: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand != nil {
		return o.Rand
	}
	return numeric.NewEngine(o.Seed)
}

// Labels returns n balanced ground-truth labels over k clusters, in
// round-robin order (point i belongs to cluster i mod k). O(n).
func Labels(n, k int) ([]int, error) {
	if n < 1 || k < 1 {
		return nil, fmt.Errorf("synth: n=%d k=%d must be ≥ 1: %w", n, k, ErrBadShape)
	}
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i % k
	}
	return labels, nil
}

// Reals emits one Gaussian observation per label: point i draws from
// Normal(means[labels[i]], sds[labels[i]]²). Deterministic per seed.
// O(n).
func Reals(labels []int, means, sds []float64, opts ...Option) ([]float64, error) {
	if len(means) == 0 || len(means) != len(sds) {
		return nil, fmt.Errorf("synth: %d means, %d sds: %w", len(means), len(sds), ErrBadShape)
	}
	rng := resolve(opts)
	out := make([]float64, len(labels))
	for i, lbl := range labels {
		if lbl < 0 || lbl >= len(means) {
			return nil, fmt.Errorf("synth: label=%d at point %d: %w", lbl, i, ErrBadLabel)
		}
		out[i] = distuv.Normal{Mu: means[lbl], Sigma: sds[lbl], Src: rng}.Rand()
	}
	return out, nil
}

// Counts emits one Poisson count per label: point i draws from
// Poisson(rates[labels[i]]). Deterministic per seed. O(n).
func Counts(labels []int, rates []float64, opts ...Option) ([]int64, error) {
	if len(rates) == 0 {
		return nil, fmt.Errorf("synth: empty rate vector: %w", ErrBadShape)
	}
	for j, r := range rates {
		if !(r > 0) {
			return nil, fmt.Errorf("synth: rate[%d]=%v must be positive: %w", j, r, ErrBadShape)
		}
	}
	rng := resolve(opts)
	out := make([]int64, len(labels))
	for i, lbl := range labels {
		if lbl < 0 || lbl >= len(rates) {
			return nil, fmt.Errorf("synth: label=%d at point %d: %w", lbl, i, ErrBadLabel)
		}
		out[i] = int64(distuv.Poisson{Lambda: rates[lbl], Src: rng}.Rand())
	}
	return out, nil
}

// Categorical emits one categorical draw per label: point i draws a
// category from the probability row comps[labels[i]]. Rows must share
// one dimension and need not be normalized. Deterministic per seed.
// O(n·dim).
func Categorical(labels []int, comps [][]float64, opts ...Option) ([]int, error) {
	if len(comps) == 0 || len(comps[0]) == 0 {
		return nil, fmt.Errorf("synth: empty component table: %w", ErrBadShape)
	}
	dim := len(comps[0])
	for j, row := range comps {
		if len(row) != dim {
			return nil, fmt.Errorf("synth: component %d has dim %d, want %d: %w",
				j, len(row), dim, ErrBadShape)
		}
	}
	rng := resolve(opts)
	out := make([]int, len(labels))
	for i, lbl := range labels {
		if lbl < 0 || lbl >= len(comps) {
			return nil, fmt.Errorf("synth: label=%d at point %d: %w", lbl, i, ErrBadLabel)
		}
		out[i] = drawCategory(rng, comps[lbl])
	}
	return out, nil
}

// drawCategory samples an index proportional to the (linear-domain)
// weights in row.
func drawCategory(rng *rand.Rand, row []float64) int {
	var total float64
	for _, w := range row {
		total += w
	}
	u := rng.Float64() * total
	var cum float64
	for i, w := range row {
		cum += w
		if u < cum {
			return i
		}
	}
	return len(row) - 1
}
