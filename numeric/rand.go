// Package numeric: explicit random engines and variate generation.
//
// rand.go threads one rule through the whole module: randomness is a
// caller-owned resource. Engines are created from an explicit seed and
// passed by pointer into every sampling call; nothing here reads ambient
// global state, so a run is exactly reproducible from (seed, call order)
// and independent engines make concurrent multi-partition runs safe.

package numeric

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors for variate generation.
var (
	// ErrNoWeights indicates an empty categorical weight vector.
	ErrNoWeights = errors.New("numeric: empty log-weight vector")

	// ErrImpossibleWeights indicates that every log weight is -Inf (no
	// outcome has positive probability) or that a weight is NaN. Sampling
	// from such a vector is a precondition violation, never a default.
	ErrImpossibleWeights = errors.New("numeric: log weights admit no outcome")

	// ErrBadShape indicates a non-positive shape, rate or concentration
	// parameter passed to a variate generator.
	ErrBadShape = errors.New("numeric: distribution parameter must be positive")
)

// NewEngine returns a fresh pseudo-random engine seeded with seed.
// The engine is the single mutable resource of a sampling run; callers
// that process partitions concurrently must give each worker its own.
func NewEngine(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Gamma draws one Gamma(shape, rate) variate from rng.
// Returns ErrBadShape if shape ≤ 0 or rate ≤ 0. Complexity: O(1) expected.
func Gamma(rng *rand.Rand, shape, rate float64) (float64, error) {
	if shape <= 0 || rate <= 0 {
		return 0, ErrBadShape
	}
	return distuv.Gamma{Alpha: shape, Beta: rate, Src: rng}.Rand(), nil
}

// Beta draws one Beta(a, b) variate from rng.
// Returns ErrBadShape if a ≤ 0 or b ≤ 0. Complexity: O(1) expected.
func Beta(rng *rand.Rand, a, b float64) (float64, error) {
	if a <= 0 || b <= 0 {
		return 0, ErrBadShape
	}
	return distuv.Beta{Alpha: a, Beta: b, Src: rng}.Rand(), nil
}

// Dirichlet fills dst with one draw from Dirichlet(alphas), using the
// standard normalized-Gamma construction. dst must have len(alphas).
// Returns ErrNoWeights for an empty vector and ErrBadShape for any
// non-positive concentration. Complexity: O(len(alphas)).
func Dirichlet(rng *rand.Rand, alphas, dst []float64) error {
	if len(alphas) == 0 {
		return ErrNoWeights
	}
	var sum float64
	for i, a := range alphas {
		g, err := Gamma(rng, a, 1)
		if err != nil {
			return err
		}
		dst[i] = g
		sum += g
	}
	for i := range dst {
		dst[i] /= sum
	}
	return nil
}

// CategoricalLog draws an index i with probability proportional to
// exp(logw[i]) from the unnormalized log weights logw.
//
// Stability: the maximum log weight is subtracted before exponentiating,
// so the largest term is exactly 1 and the normalizer can neither
// overflow nor round to zero while any weight is finite.
//
// Errors:
//   - ErrNoWeights if logw is empty.
//   - ErrImpossibleWeights if every weight is -Inf or any weight is NaN.
//
// Complexity: O(len(logw)) time, O(1) extra space.
func CategoricalLog(rng *rand.Rand, logw []float64) (int, error) {
	if len(logw) == 0 {
		return 0, ErrNoWeights
	}

	// Locate the maximum finite weight; reject NaN outright.
	maxw := math.Inf(-1)
	for _, w := range logw {
		if math.IsNaN(w) {
			return 0, ErrImpossibleWeights
		}
		if w > maxw {
			maxw = w
		}
	}
	if math.IsInf(maxw, -1) {
		return 0, ErrImpossibleWeights
	}

	// Normalizer in the shifted domain: total ∈ [1, len(logw)].
	var total float64
	for _, w := range logw {
		total += math.Exp(w - maxw)
	}

	// Inverse-CDF walk over the shifted weights.
	u := rng.Float64() * total
	var cum float64
	for i, w := range logw {
		cum += math.Exp(w - maxw)
		if u < cum {
			return i, nil
		}
	}
	// Floating accumulation can leave u marginally above cum; the draw
	// then belongs to the last positive-probability outcome.
	for i := len(logw) - 1; i >= 0; i-- {
		if !math.IsInf(logw[i], -1) {
			return i, nil
		}
	}
	return 0, ErrImpossibleWeights
}
