package nix

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvlbayes/model"
	"github.com/katalvlaran/lvlbayes/numeric"
)

// Shared holds the immutable NIΧ² prior: prior mean μ0, prior mean
// pseudo-count κ0, prior variance σ0², prior variance pseudo-count ν0.
type Shared struct {
	mu0    float64
	kappa0 float64
	sigsq0 float64
	nu0    float64
}

// Group holds one cluster's sufficient statistics: observation count
// and the running Σx / Σx² accumulators.
type Group struct {
	Count int64
	Sum   float64
	SumSq float64
}

// Posterior is the conjugate posterior parameter block implied by a
// Shared prior and one Group's statistics.
type Posterior struct {
	MuN    float64
	KappaN float64
	NuN    float64
	SigsqN float64
}

var _ model.Model[*Group, float64] = (*Shared)(nil)

// New constructs a Shared prior. κ0, σ0² and ν0 must be positive and μ0
// finite; violations wrap model.ErrBadHyper.
func New(mu0, kappa0, sigsq0, nu0 float64) (*Shared, error) {
	if math.IsNaN(mu0) || math.IsInf(mu0, 0) {
		return nil, fmt.Errorf("nix: mu0=%v must be finite: %w", mu0, model.ErrBadHyper)
	}
	if !(kappa0 > 0) || !(sigsq0 > 0) || !(nu0 > 0) {
		return nil, fmt.Errorf("nix: kappa0=%v sigsq0=%v nu0=%v must all be positive: %w",
			kappa0, sigsq0, nu0, model.ErrBadHyper)
	}
	return &Shared{mu0: mu0, kappa0: kappa0, sigsq0: sigsq0, nu0: nu0}, nil
}

// Mu0 returns the prior mean.
func (s *Shared) Mu0() float64 { return s.mu0 }

// Kappa0 returns the prior mean pseudo-count.
func (s *Shared) Kappa0() float64 { return s.kappa0 }

// Sigsq0 returns the prior variance.
func (s *Shared) Sigsq0() float64 { return s.sigsq0 }

// Nu0 returns the prior variance pseudo-count.
func (s *Shared) Nu0() float64 { return s.nu0 }

// GroupInit returns zero-initialized sufficient statistics.
func (s *Shared) GroupInit() *Group { return &Group{} }

// GroupAdd incorporates one observation. O(1).
// NaN/Inf values wrap model.ErrValueOutOfDomain.
func (s *Shared) GroupAdd(g *Group, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("nix: add value=%v must be finite: %w", v, model.ErrValueOutOfDomain)
	}
	g.Count++
	g.Sum += v
	g.SumSq += v * v
	return nil
}

// GroupRemove is the inverse of GroupAdd. O(1).
// Removing from an empty group wraps model.ErrEmptyGroup; pairing each
// remove with a prior add of the same value is the partition owner's
// obligation (continuous statistics carry no per-value membership).
func (s *Shared) GroupRemove(g *Group, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("nix: remove value=%v must be finite: %w", v, model.ErrValueOutOfDomain)
	}
	if g.Count == 0 {
		return fmt.Errorf("nix: remove value=%v: %w", v, model.ErrEmptyGroup)
	}
	g.Count--
	g.Sum -= v
	g.SumSq -= v * v
	return nil
}

// PosteriorOf returns the conjugate posterior parameter block for g.
// With an empty group it reduces to the prior. O(1).
func (s *Shared) PosteriorOf(g *Group) Posterior {
	n := float64(g.Count)
	kappaN := s.kappa0 + n
	nuN := s.nu0 + n
	muN := (s.kappa0*s.mu0 + g.Sum) / kappaN

	nuSigsqN := s.nu0 * s.sigsq0
	if g.Count > 0 {
		xbar := g.Sum / n
		ssd := g.SumSq - g.Sum*xbar
		if ssd < 0 {
			ssd = 0 // cancellation guard for near-constant data
		}
		d := xbar - s.mu0
		nuSigsqN += ssd + (s.kappa0*n/kappaN)*d*d
	}
	return Posterior{MuN: muN, KappaN: kappaN, NuN: nuN, SigsqN: nuSigsqN / nuN}
}

// ScoreValue returns the Student-t log posterior-predictive density of
// v joining g: t(df=νn, loc=μn, scale²=σn²(κn+1)/κn). O(1).
func (s *Shared) ScoreValue(g *Group, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("nix: score value=%v must be finite: %w", v, model.ErrValueOutOfDomain)
	}
	p := s.PosteriorOf(g)
	t := distuv.StudentsT{
		Mu:    p.MuN,
		Sigma: math.Sqrt(p.SigsqN * (p.KappaN + 1) / p.KappaN),
		Nu:    p.NuN,
	}
	return t.LogProb(v), nil
}

// ScoreGroup returns the log marginal evidence of the group's data
// under the Shared prior. O(1).
func (s *Shared) ScoreGroup(g *Group) float64 {
	p := s.PosteriorOf(g)
	n := float64(g.Count)
	return numeric.Lgamma(p.NuN/2) - numeric.Lgamma(s.nu0/2) +
		0.5*math.Log(s.kappa0/p.KappaN) +
		(s.nu0/2)*math.Log(s.nu0*s.sigsq0) -
		(p.NuN/2)*math.Log(p.NuN*p.SigsqN) -
		(n/2)*numeric.LnPi
}

// SamplePosterior draws one (mean, variance) pair from the posterior:
// σ² ~ νnσn²/χ²(νn), then μ | σ² ~ Normal(μn, σ²/κn). This is the
// hyperparameter-resampling entry point consumed by outer samplers.
func (s *Shared) SamplePosterior(rng *rand.Rand, g *Group) (mean, variance float64, err error) {
	p := s.PosteriorOf(g)

	// Scaled inverse-chi-squared via the reciprocal Gamma draw.
	precision, err := numeric.Gamma(rng, p.NuN/2, p.NuN*p.SigsqN/2)
	if err != nil {
		return 0, 0, err
	}
	variance = 1 / precision

	mean = distuv.Normal{
		Mu:    p.MuN,
		Sigma: math.Sqrt(variance / p.KappaN),
		Src:   rng,
	}.Rand()
	return mean, variance, nil
}
