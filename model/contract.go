package model

import "errors"

// Sentinel errors shared by every model family. Implementations wrap
// them with family/operation context via fmt.Errorf("...: %w", ...), so
// callers branch with errors.Is while still seeing where it happened.
var (
	// ErrEmptyGroup indicates a remove against a group holding no
	// observations.
	ErrEmptyGroup = errors.New("model: remove from empty group")

	// ErrValueNotInGroup indicates a remove of a value that was never
	// added to the group (the partition is corrupt; sampling must stop).
	ErrValueNotInGroup = errors.New("model: value not present in group")

	// ErrValueOutOfDomain indicates an observation outside the model's
	// support (e.g. a negative count, a category ≥ dimension).
	ErrValueOutOfDomain = errors.New("model: value outside model support")

	// ErrBadHyper indicates invalid hyperparameters at model
	// construction (non-positive concentration, shape, variance, ...).
	ErrBadHyper = errors.New("model: invalid hyperparameters")
)

// Model is the conjugate-model contract: the implementing value is the
// family's Shared hyperparameters, G its mutable per-cluster sufficient
// statistics, and V its native observation type.
//
// GroupAdd/GroupRemove maintain G incrementally — O(1) or O(dimension),
// never a rescan of prior observations — and GroupRemove is the exact
// inverse of GroupAdd. ScoreValue returns the log posterior-predictive
// probability (density or mass) of v joining g; ScoreGroup the log
// marginal evidence of g's accumulated data under the Shared prior.
type Model[G, V any] interface {
	GroupInit() G
	GroupAdd(g G, v V) error
	GroupRemove(g G, v V) error
	ScoreValue(g G, v V) (float64, error)
	ScoreGroup(g G) float64
}

// BatchScorer is the low-precision extension: score one value against
// every group in a single pass, writing one approximate log predictive
// per group into dst (len(dst) ≥ len(groups)).
//
// Implementations use the float32 fast kernels in package numeric and
// document their absolute log-probability error bound against the exact
// ScoreValue; 5e-4 is the bound the stock families guarantee.
type BatchScorer[G, V any] interface {
	ScoreValueBatch(groups []G, v V, dst []float64)
}
