package mixture_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlbayes/dirichlet"
	"github.com/katalvlaran/lvlbayes/dpd"
	"github.com/katalvlaran/lvlbayes/mixture"
	"github.com/katalvlaran/lvlbayes/model"
	"github.com/katalvlaran/lvlbayes/nix"
	"github.com/katalvlaran/lvlbayes/numeric"
	"github.com/katalvlaran/lvlbayes/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDirichletMixture builds a small categorical fixture shared by
// several tests.
func newDirichletMixture(t *testing.T, opts ...mixture.Option) *mixture.Mixture[*dirichlet.Group, int] {
	t.Helper()
	s, err := dirichlet.Symmetric(3, 1.0)
	require.NoError(t, err)
	mx, err := mixture.New[*dirichlet.Group, int](s, []int{0, 0, 1, 2, 1, 0, 2, 2}, opts...)
	require.NoError(t, err)
	return mx
}

// checkPartitionInvariant asserts the proper-partition property: every
// point maps to a live group (or Unassigned), group sizes equal the
// implied memberships, and no point is lost or duplicated.
func checkPartitionInvariant[G, V any](t *testing.T, mx *mixture.Mixture[G, V]) {
	t.Helper()
	sizes := mx.GroupSizes()
	implied := make(map[int]int)
	var assigned int
	for i, id := range mx.Assignments() {
		if id == mixture.Unassigned {
			continue
		}
		_, ok := sizes[id]
		require.True(t, ok, "point %d assigned to dead group %d", i, id)
		implied[id]++
		assigned++
	}
	require.Equal(t, len(sizes), len(implied), "every live group has members")
	for id, size := range sizes {
		require.Equal(t, size, implied[id], "group %d size bookkeeping", id)
	}
	require.Equal(t, mx.NumGroups(), len(sizes))
	_ = assigned
}

// TestNew_ConfigErrors verifies the construction-time error taxonomy.
func TestNew_ConfigErrors(t *testing.T) {
	s, err := dirichlet.Symmetric(3, 1.0)
	require.NoError(t, err)

	_, err = mixture.New[*dirichlet.Group, int](nil, []int{0})
	assert.ErrorIs(t, err, mixture.ErrNilModel)

	_, err = mixture.New[*dirichlet.Group, int](s, nil)
	assert.ErrorIs(t, err, mixture.ErrNoValues)

	_, err = mixture.New[*dirichlet.Group, int](s, []int{0}, mixture.WithAlpha(0))
	assert.ErrorIs(t, err, mixture.ErrBadAlpha)

	_, err = mixture.New[*dirichlet.Group, int](s, []int{0},
		mixture.WithWarmStart([]int{0, 1}))
	assert.ErrorIs(t, err, mixture.ErrBadWarmStart, "length mismatch")

	_, err = mixture.New[*dirichlet.Group, int](s, []int{0},
		mixture.WithWarmStart([]int{-7}))
	assert.ErrorIs(t, err, mixture.ErrBadWarmStart, "label below Unassigned")

	// nix has no batch scorer, so LowPrecision must be rejected here.
	ns, err := nix.New(0, 1, 1, 1)
	require.NoError(t, err)
	_, err = mixture.New[*nix.Group, float64](ns, []float64{1, 2},
		mixture.WithPrecision(mixture.LowPrecision))
	assert.ErrorIs(t, err, mixture.ErrPrecisionUnsupported)
}

// TestColdStart_FirstSweepAssignsEverything verifies the cold-start
// transition into a full partition.
func TestColdStart_FirstSweepAssignsEverything(t *testing.T) {
	mx := newDirichletMixture(t, mixture.WithSeed(2))
	for _, id := range mx.Assignments() {
		require.Equal(t, mixture.Unassigned, id, "cold start leaves points unassigned")
	}

	require.NoError(t, mx.Sweep())
	for i, id := range mx.Assignments() {
		assert.NotEqual(t, mixture.Unassigned, id, "point %d assigned after first sweep", i)
	}
	checkPartitionInvariant(t, mx)
}

// TestPartitionInvariant_EveryStep drives many steps and checks the
// proper-partition property after each one.
func TestPartitionInvariant_EveryStep(t *testing.T) {
	mx := newDirichletMixture(t, mixture.WithSeed(6), mixture.WithAlpha(1.5))
	require.NoError(t, mx.Sweep())

	rng := numeric.NewEngine(60)
	for step := 0; step < 500; step++ {
		require.NoError(t, mx.Step(rng.Intn(mx.Len())))
		checkPartitionInvariant(t, mx)
	}
}

// TestSuffstats_MatchRecomputation verifies no drift: after many
// sweeps, each group's statistics equal a from-scratch aggregate of its
// current members, bit-for-bit.
func TestSuffstats_MatchRecomputation(t *testing.T) {
	s, err := dirichlet.Symmetric(4, 0.5)
	require.NoError(t, err)
	values := []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 0, 1, 2}
	mx, err := mixture.New[*dirichlet.Group, int](s, values, mixture.WithSeed(8))
	require.NoError(t, err)
	for sweep := 0; sweep < 25; sweep++ {
		require.NoError(t, mx.Sweep())
	}

	assign := mx.Assignments()
	for id := range mx.GroupSizes() {
		want := s.GroupInit()
		for i, gid := range assign {
			if gid == id {
				require.NoError(t, s.GroupAdd(want, values[i]))
			}
		}
		got, ok := mx.GroupStats(id)
		require.True(t, ok)
		assert.Equal(t, want.Counts, got.Counts, "group %d counts exact", id)
		assert.Equal(t, want.Total, got.Total, "group %d total exact", id)
	}
}

// TestCRPPrior_TwoOutcomeFrequencies is the {1, α} oracle: with a
// 1-dimensional Dirichlet model every predictive score is exactly 0,
// so re-stepping the second of two points chooses "join the existing
// group" vs "open a new one" with probabilities 1/(1+α) and α/(1+α).
func TestCRPPrior_TwoOutcomeFrequencies(t *testing.T) {
	s, err := dirichlet.Symmetric(1, 1.0)
	require.NoError(t, err)

	const alpha = 2.0
	mx, err := mixture.New[*dirichlet.Group, int](s, []int{0, 0},
		mixture.WithAlpha(alpha), mixture.WithSeed(14),
		mixture.WithWarmStart([]int{0, 0}))
	require.NoError(t, err)

	const trials = 40000
	var fresh int
	for i := 0; i < trials; i++ {
		require.NoError(t, mx.Step(1))
		switch mx.NumGroups() {
		case 2:
			fresh++
		case 1:
			// joined the existing group
		default:
			t.Fatalf("impossible group count %d", mx.NumGroups())
		}
	}
	want := alpha / (1 + alpha)
	assert.InDelta(t, want, float64(fresh)/trials, 8e-3,
		"new-group frequency must match α/(1+α)")
}

// TestDeterministicReplay verifies two engines with the same seed and
// data produce identical trajectories.
func TestDeterministicReplay(t *testing.T) {
	run := func() []int {
		mx := newDirichletMixture(t, mixture.WithSeed(21), mixture.WithOrder(mixture.Shuffled))
		for sweep := 0; sweep < 10; sweep++ {
			require.NoError(t, mx.Sweep())
		}
		return mx.Assignments()
	}
	assert.Equal(t, run(), run(), "seeded replay must be exact")
}

// TestWarmStart_LoadsPartition verifies the warm-start path builds the
// declared grouping.
func TestWarmStart_LoadsPartition(t *testing.T) {
	mx := newDirichletMixture(t, mixture.WithWarmStart([]int{5, 5, 9, 9, 9, 5, 2, 2}))
	checkPartitionInvariant(t, mx)
	assert.Equal(t, 3, mx.NumGroups(), "three labels, three groups")

	assign := mx.Assignments()
	assert.Equal(t, assign[0], assign[1], "label 5 points share a group")
	assert.Equal(t, assign[2], assign[3])
	assert.NotEqual(t, assign[0], assign[2])
}

// TestStep_ErrorPropagation verifies contract violations surface
// unwrapped through errors.Is and are never repaired.
func TestStep_ErrorPropagation(t *testing.T) {
	// A symbol outside the dpd support: the fresh-candidate score fails.
	s, err := dpd.Uniform(1, 1, 0, 3)
	require.NoError(t, err)
	mx, err := mixture.New[*dpd.Group, int](s, []int{0, 7})
	require.NoError(t, err)

	require.NoError(t, mx.Step(0))
	err = mx.Step(1)
	assert.ErrorIs(t, err, model.ErrValueOutOfDomain, "out-of-support point")

	assert.ErrorIs(t, mx.Step(99), mixture.ErrIndexOutOfRange)
}

// TestLowPrecision_RunsAndKeepsInvariant verifies the batched float32
// path produces a valid sampler on a larger categorical dataset.
func TestLowPrecision_RunsAndKeepsInvariant(t *testing.T) {
	labels, err := synth.Labels(120, 3)
	require.NoError(t, err)
	values, err := synth.Categorical(labels, [][]float64{
		{20, 1, 1, 1}, {1, 20, 1, 1}, {1, 1, 10, 10},
	}, synth.WithSeed(33))
	require.NoError(t, err)

	s, err := dirichlet.Symmetric(4, 0.5)
	require.NoError(t, err)
	mx, err := mixture.New[*dirichlet.Group, int](s, values,
		mixture.WithPrecision(mixture.LowPrecision), mixture.WithSeed(34))
	require.NoError(t, err)

	for sweep := 0; sweep < 15; sweep++ {
		require.NoError(t, mx.Sweep())
		checkPartitionInvariant(t, mx)
	}
	assert.Greater(t, mx.NumGroups(), 0)
	assert.Less(t, mx.NumGroups(), 30, "low precision must not shatter the partition")
}

// TestClustering_RecoversSeparatedGaussians runs the nix model over two
// widely separated clusters and checks each true cluster lands
// (almost) entirely in one recovered group.
func TestClustering_RecoversSeparatedGaussians(t *testing.T) {
	labels, err := synth.Labels(60, 2)
	require.NoError(t, err)
	values, err := synth.Reals(labels, []float64{-10, 10}, []float64{0.5, 0.5},
		synth.WithSeed(41))
	require.NoError(t, err)

	s, err := nix.New(0, 0.5, 1, 1)
	require.NoError(t, err)
	mx, err := mixture.New[*nix.Group, float64](s, values,
		mixture.WithAlpha(0.5), mixture.WithSeed(42))
	require.NoError(t, err)

	for sweep := 0; sweep < 25; sweep++ {
		require.NoError(t, mx.Sweep())
	}
	checkPartitionInvariant(t, mx)

	// Modal group per true cluster.
	assign := mx.Assignments()
	modal := func(cluster int) (int, int) {
		counts := make(map[int]int)
		for i, lbl := range labels {
			if lbl == cluster {
				counts[assign[i]]++
			}
		}
		bestID, bestN := -1, 0
		for id, n := range counts {
			if n > bestN {
				bestID, bestN = id, n
			}
		}
		return bestID, bestN
	}
	id0, n0 := modal(0)
	id1, n1 := modal(1)
	assert.NotEqual(t, id0, id1, "separated clusters must not merge")
	assert.GreaterOrEqual(t, n0, 27, "cluster 0 coherence")
	assert.GreaterOrEqual(t, n1, 27, "cluster 1 coherence")
}

// TestScorePartition_SingleGroupClosedForm pins the CRP partition score
// to its closed form for an all-in-one-group warm start.
func TestScorePartition_SingleGroupClosedForm(t *testing.T) {
	const alpha = 1.5
	mx := newDirichletMixture(t,
		mixture.WithAlpha(alpha),
		mixture.WithWarmStart([]int{0, 0, 0, 0, 0, 0, 0, 0}))

	n := float64(mx.Len())
	lgN, _ := math.Lgamma(n)
	lgAN, _ := math.Lgamma(alpha + n)
	lgA, _ := math.Lgamma(alpha)
	want := math.Log(alpha) + lgN - (lgAN - lgA)
	assert.InDelta(t, want, mx.ScorePartition(), 1e-12)
}

// TestScoreData_SumsGroupEvidence verifies ScoreData equals the sum of
// per-group marginal evidences recomputed by hand.
func TestScoreData_SumsGroupEvidence(t *testing.T) {
	s, err := dirichlet.Symmetric(3, 1.0)
	require.NoError(t, err)
	values := []int{0, 0, 1, 2, 1, 0}
	mx, err := mixture.New[*dirichlet.Group, int](s, values,
		mixture.WithWarmStart([]int{0, 0, 0, 1, 1, 1}))
	require.NoError(t, err)

	var want float64
	for id := range mx.GroupSizes() {
		g, ok := mx.GroupStats(id)
		require.True(t, ok)
		want += s.ScoreGroup(g)
	}
	assert.InDelta(t, want, mx.ScoreData(), 1e-12)
}

// TestResampleAlpha verifies the Escobar-West move: prior-only draws
// average to a/b when nothing is assigned, posterior draws stay
// positive and adopted.
func TestResampleAlpha(t *testing.T) {
	s, err := dirichlet.Symmetric(3, 1.0)
	require.NoError(t, err)

	// Unassigned partition → conditional is the Gamma(2, 4) prior.
	cold, err := mixture.New[*dirichlet.Group, int](s, []int{0, 1, 2}, mixture.WithSeed(50))
	require.NoError(t, err)
	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		draw, errDraw := cold.ResampleAlpha(2, 4)
		require.NoError(t, errDraw)
		require.Greater(t, draw, 0.0)
		sum += draw
	}
	assert.InDelta(t, 0.5, sum/n, 2e-2, "prior mean a/b")

	// Assigned partition: draws remain positive and are adopted.
	mx := newDirichletMixture(t, mixture.WithSeed(51))
	require.NoError(t, mx.Sweep())
	draw, err := mx.ResampleAlpha(1, 1)
	require.NoError(t, err)
	assert.Greater(t, draw, 0.0)
	assert.Equal(t, draw, mx.Alpha(), "engine adopts the draw")

	_, err = mx.ResampleAlpha(0, 1)
	assert.ErrorIs(t, err, mixture.ErrBadAlpha)
}
