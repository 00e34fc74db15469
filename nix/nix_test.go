package nix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlbayes/model"
	"github.com/katalvlaran/lvlbayes/nix"
	"github.com/katalvlaran/lvlbayes/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logStudentT is the independent test oracle for the predictive density:
// the explicit log-gamma form of the location-scale Student-t pdf.
func logStudentT(x, nu, mu, sigsq float64) float64 {
	lg1, _ := math.Lgamma((nu + 1) / 2)
	lg2, _ := math.Lgamma(nu / 2)
	z := (x - mu) * (x - mu) / (nu * sigsq)
	return lg1 - lg2 - 0.5*math.Log(nu*math.Pi*sigsq) - (nu+1)/2*math.Log1p(z)
}

// TestNew_Validation verifies hyperparameter checks at construction.
func TestNew_Validation(t *testing.T) {
	_, err := nix.New(math.NaN(), 1, 1, 1)
	assert.ErrorIs(t, err, model.ErrBadHyper, "NaN mean")
	_, err = nix.New(0, 0, 1, 1)
	assert.ErrorIs(t, err, model.ErrBadHyper, "kappa0=0")
	_, err = nix.New(0, 1, -1, 1)
	assert.ErrorIs(t, err, model.ErrBadHyper, "negative variance")
	_, err = nix.New(0, 1, 1, 0)
	assert.ErrorIs(t, err, model.ErrBadHyper, "nu0=0")

	_, err = nix.New(0.5, 1, 2, 3)
	require.NoError(t, err)
}

// TestScoreValue_PriorPredictiveOracle pins the empty-group predictive
// to the analytic Student-t with df=ν0, loc=μ0, scale²=σ0²(κ0+1)/κ0.
func TestScoreValue_PriorPredictiveOracle(t *testing.T) {
	s, err := nix.New(0, 1, 1, 1)
	require.NoError(t, err)
	g := s.GroupInit()

	for _, x := range []float64{-3, -0.5, 0, 0.5, 1, 4.2} {
		got, errScore := s.ScoreValue(g, x)
		require.NoError(t, errScore)
		want := logStudentT(x, 1, 0, 2)
		assert.InDelta(t, want, got, 1e-10, "prior predictive at x=%v", x)
	}
}

// TestPosteriorOf_ClosedForm verifies the posterior block against the
// hand-computed update for a small dataset.
func TestPosteriorOf_ClosedForm(t *testing.T) {
	s, err := nix.New(0, 1, 1, 1)
	require.NoError(t, err)
	g := s.GroupInit()
	for _, x := range []float64{1, 2, 3} {
		require.NoError(t, s.GroupAdd(g, x))
	}

	p := s.PosteriorOf(g)
	// n=3, x̄=2, ssd=2: κn=4, μn=6/4, νn=4,
	// νnσn² = 1 + 2 + (1·3/4)·4 = 6 → σn² = 1.5.
	assert.InDelta(t, 4.0, p.KappaN, 1e-12)
	assert.InDelta(t, 1.5, p.MuN, 1e-12)
	assert.InDelta(t, 4.0, p.NuN, 1e-12)
	assert.InDelta(t, 1.5, p.SigsqN, 1e-12)
}

// TestScoreGroup_MatchesChainRule verifies the marginal evidence equals
// the chain of predictive scores over the ingestion order.
func TestScoreGroup_MatchesChainRule(t *testing.T) {
	s, err := nix.New(-0.3, 2, 0.8, 3)
	require.NoError(t, err)

	values := []float64{0.1, -1.2, 0.7, 2.4, -0.8, 0.05}
	g := s.GroupInit()
	var chain float64
	for _, v := range values {
		sv, errScore := s.ScoreValue(g, v)
		require.NoError(t, errScore)
		chain += sv
		require.NoError(t, s.GroupAdd(g, v))
	}
	assert.InDelta(t, chain, s.ScoreGroup(g), 1e-9,
		"evidence must equal the sequential predictive product")
}

// TestAddRemove_Exactness drives a long mixed add/remove sequence and
// checks the accumulators against a from-scratch recomputation over the
// surviving membership, to 1e-12 relative.
func TestAddRemove_Exactness(t *testing.T) {
	s, err := nix.New(0, 1, 1, 1)
	require.NoError(t, err)
	g := s.GroupInit()

	rng := numeric.NewEngine(31)
	live := make([]float64, 0, 256)
	for i := 0; i < 4000; i++ {
		if len(live) > 0 && rng.Float64() < 0.45 {
			j := rng.Intn(len(live))
			require.NoError(t, s.GroupRemove(g, live[j]))
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
		} else {
			x := rng.NormFloat64()*3 + 1
			require.NoError(t, s.GroupAdd(g, x))
			live = append(live, x)
		}
	}

	var sum, sumsq float64
	for _, x := range live {
		sum += x
		sumsq += x * x
	}
	require.Equal(t, int64(len(live)), g.Count, "count tracks membership")
	assert.InDelta(t, sum, g.Sum, 1e-12*math.Max(1, math.Abs(sum)), "Σx drift")
	assert.InDelta(t, sumsq, g.SumSq, 1e-12*math.Max(1, sumsq), "Σx² drift")
}

// TestRemove_PreconditionViolations verifies the failure taxonomy.
func TestRemove_PreconditionViolations(t *testing.T) {
	s, err := nix.New(0, 1, 1, 1)
	require.NoError(t, err)
	g := s.GroupInit()

	assert.ErrorIs(t, s.GroupRemove(g, 1.0), model.ErrEmptyGroup)
	assert.ErrorIs(t, s.GroupAdd(g, math.NaN()), model.ErrValueOutOfDomain)
	assert.ErrorIs(t, s.GroupAdd(g, math.Inf(1)), model.ErrValueOutOfDomain)
	_, err = s.ScoreValue(g, math.NaN())
	assert.ErrorIs(t, err, model.ErrValueOutOfDomain)
}

// TestSamplePosterior_Concentrates verifies posterior draws concentrate
// near the truth for a well-populated group.
func TestSamplePosterior_Concentrates(t *testing.T) {
	s, err := nix.New(0, 1, 1, 1)
	require.NoError(t, err)
	g := s.GroupInit()

	// 2000 points from N(5, 2²), fixed seed.
	gen := numeric.NewEngine(77)
	for i := 0; i < 2000; i++ {
		require.NoError(t, s.GroupAdd(g, gen.NormFloat64()*2+5))
	}

	rng := numeric.NewEngine(78)
	var meanAcc, varAcc float64
	const n = 5000
	for i := 0; i < n; i++ {
		m, v, errDraw := s.SamplePosterior(rng, g)
		require.NoError(t, errDraw)
		meanAcc += m
		varAcc += v
	}
	assert.InDelta(t, 5.0, meanAcc/n, 0.15, "posterior mean near truth")
	assert.InDelta(t, 4.0, varAcc/n, 0.4, "posterior variance near truth")
}

// TestCodec_BitIdenticalRoundTrip verifies decode(encode(x)) restores
// Shared and Group statistics exactly.
func TestCodec_BitIdenticalRoundTrip(t *testing.T) {
	s, err := nix.New(0.25, 1.5, 0.9, 2)
	require.NoError(t, err)
	g := s.GroupInit()
	for _, v := range []float64{0.3, -1.7, 2.2} {
		require.NoError(t, s.GroupAdd(g, v))
	}

	sb, err := s.MarshalBinary()
	require.NoError(t, err)
	var s2 nix.Shared
	require.NoError(t, s2.UnmarshalBinary(sb))
	assert.Equal(t, s.Mu0(), s2.Mu0())
	assert.Equal(t, s.Kappa0(), s2.Kappa0())
	assert.Equal(t, s.Sigsq0(), s2.Sigsq0())
	assert.Equal(t, s.Nu0(), s2.Nu0())

	gb, err := g.MarshalBinary()
	require.NoError(t, err)
	var g2 nix.Group
	require.NoError(t, g2.UnmarshalBinary(gb))
	assert.Equal(t, *g, g2, "group statistics bit-identical")

	assert.Equal(t, s.ScoreGroup(g), s2.ScoreGroup(&g2),
		"decoded statistics score identically")
}
