package mixture

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlbayes/model"
	"github.com/katalvlaran/lvlbayes/numeric"
)

// group pairs one cluster's sufficient statistics with its membership
// size. The size is engine-owned bookkeeping: it always equals the
// number of points currently assigned to the group.
type group[G any] struct {
	stats G
	size  int
}

// Mixture owns one partition of the data under one conjugate model:
// the assignment of every point to a group, the live groups' sufficient
// statistics, and the engine-private RNG. Single writer per partition;
// run independent Mixtures for parallelism.
type Mixture[G, V any] struct {
	m     model.Model[G, V]
	batch model.BatchScorer[G, V] // non-nil iff LowPrecision

	values []V
	assign []int // point index → group id, or Unassigned

	ids    []int // live group ids in creation order (deterministic iteration)
	groups map[int]*group[G]
	nextID int

	alpha float64
	rng   *rand.Rand
	order SweepOrder

	// Per-step scratch, reused across the hot loop.
	logw  []float64
	gview []G
}

// New constructs a Mixture over values with a cold-started (or
// warm-started) partition. Configuration errors are rejected here,
// before any sweep: ErrNilModel, ErrNoValues, ErrBadAlpha,
// ErrPrecisionUnsupported, ErrBadWarmStart. Warm-start ingestion calls
// GroupAdd per point, so model contract violations surface here too.
func New[G, V any](m model.Model[G, V], values []V, opts ...Option) (*Mixture[G, V], error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if len(values) == 0 {
		return nil, ErrNoValues
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.Alpha > 0) || math.IsInf(o.Alpha, 1) {
		return nil, fmt.Errorf("mixture: alpha=%v: %w", o.Alpha, ErrBadAlpha)
	}

	mx := &Mixture[G, V]{
		m:      m,
		values: values,
		assign: make([]int, len(values)),
		groups: make(map[int]*group[G]),
		alpha:  o.Alpha,
		rng:    o.Rand,
		order:  o.Order,
	}
	if mx.rng == nil {
		mx.rng = numeric.NewEngine(o.Seed)
	}
	for i := range mx.assign {
		mx.assign[i] = Unassigned
	}

	if o.Precision == LowPrecision {
		batch, ok := m.(model.BatchScorer[G, V])
		if !ok {
			return nil, fmt.Errorf("mixture: %T: %w", m, ErrPrecisionUnsupported)
		}
		mx.batch = batch
	}

	if o.WarmStart != nil {
		if err := mx.loadWarmStart(o.WarmStart); err != nil {
			return nil, err
		}
	}
	return mx, nil
}

// loadWarmStart ingests a prior partition: labels are arbitrary
// non-negative ints (or Unassigned) and map onto fresh group ids in
// first-appearance order.
func (mx *Mixture[G, V]) loadWarmStart(labels []int) error {
	if len(labels) != len(mx.values) {
		return fmt.Errorf("mixture: %d labels for %d points: %w",
			len(labels), len(mx.values), ErrBadWarmStart)
	}
	byLabel := make(map[int]int)
	for i, lbl := range labels {
		if lbl == Unassigned {
			continue
		}
		if lbl < 0 {
			return fmt.Errorf("mixture: label=%d at point %d: %w", lbl, i, ErrBadWarmStart)
		}
		id, ok := byLabel[lbl]
		if !ok {
			id = mx.createGroup(mx.m.GroupInit())
			byLabel[lbl] = id
		}
		if err := mx.m.GroupAdd(mx.groups[id].stats, mx.values[i]); err != nil {
			return fmt.Errorf("mixture: warm start point %d: %w", i, err)
		}
		mx.groups[id].size++
		mx.assign[i] = id
	}
	return nil
}

// createGroup registers stats as a new live group and returns its id.
func (mx *Mixture[G, V]) createGroup(stats G) int {
	id := mx.nextID
	mx.nextID++
	mx.groups[id] = &group[G]{stats: stats}
	mx.ids = append(mx.ids, id)
	return id
}

// destroyGroup removes an emptied group from the live set.
func (mx *Mixture[G, V]) destroyGroup(id int) {
	delete(mx.groups, id)
	for k, gid := range mx.ids {
		if gid == id {
			mx.ids = append(mx.ids[:k], mx.ids[k+1:]...)
			return
		}
	}
}

// Step performs one collapsed-Gibbs transition for point i: remove from
// the current group (destroying it if emptied), score every live group
// plus one fresh candidate, draw the new assignment, add.
//
// On error the point is left Unassigned and the Mixture must be
// discarded: continuing to sample from a partially stepped partition
// would corrupt the sampler's statistics.
//
// Complexity: O(K·cost(ScoreValue) + dim) per step, K = live groups.
func (mx *Mixture[G, V]) Step(i int) error {
	if i < 0 || i >= len(mx.values) {
		return fmt.Errorf("mixture: point %d of %d: %w", i, len(mx.values), ErrIndexOutOfRange)
	}
	v := mx.values[i]

	// Phase 1: detach the point from its current group.
	if id := mx.assign[i]; id != Unassigned {
		g := mx.groups[id]
		if err := mx.m.GroupRemove(g.stats, v); err != nil {
			return fmt.Errorf("mixture: remove point %d from group %d: %w", i, id, err)
		}
		g.size--
		mx.assign[i] = Unassigned
		if g.size == 0 {
			mx.destroyGroup(id)
		}
	}

	// Phase 2: score the fresh candidate first — its exact ScoreValue
	// also validates v before any batch call may assume it.
	fresh := mx.m.GroupInit()
	freshScore, err := mx.m.ScoreValue(fresh, v)
	if err != nil {
		return fmt.Errorf("mixture: score point %d against new group: %w", i, err)
	}

	k := len(mx.ids)
	if cap(mx.logw) < k+1 {
		mx.logw = make([]float64, k+1)
	}
	logw := mx.logw[:k+1]

	if mx.batch != nil && k > 0 {
		mx.gview = mx.gview[:0]
		for _, id := range mx.ids {
			mx.gview = append(mx.gview, mx.groups[id].stats)
		}
		mx.batch.ScoreValueBatch(mx.gview, v, logw[:k])
		for j, id := range mx.ids {
			logw[j] += math.Log(float64(mx.groups[id].size))
		}
	} else {
		for j, id := range mx.ids {
			g := mx.groups[id]
			sv, errScore := mx.m.ScoreValue(g.stats, v)
			if errScore != nil {
				return fmt.Errorf("mixture: score point %d against group %d: %w", i, id, errScore)
			}
			logw[j] = math.Log(float64(g.size)) + sv
		}
	}
	logw[k] = math.Log(mx.alpha) + freshScore

	// Phase 3: draw and commit the new assignment.
	choice, err := numeric.CategoricalLog(mx.rng, logw)
	if err != nil {
		return fmt.Errorf("mixture: assign point %d: %w", i, err)
	}

	var id int
	if choice == k {
		id = mx.createGroup(fresh)
	} else {
		id = mx.ids[choice]
	}
	if err := mx.m.GroupAdd(mx.groups[id].stats, v); err != nil {
		return fmt.Errorf("mixture: add point %d to group %d: %w", i, id, err)
	}
	mx.groups[id].size++
	mx.assign[i] = id
	return nil
}

// Sweep applies Step to every point once, in the configured order.
// Shuffled order draws a fresh permutation from the engine's RNG, so
// trajectories stay reproducible per seed.
func (mx *Mixture[G, V]) Sweep() error {
	if mx.order == Shuffled {
		for _, i := range mx.rng.Perm(len(mx.values)) {
			if err := mx.Step(i); err != nil {
				return err
			}
		}
		return nil
	}
	for i := range mx.values {
		if err := mx.Step(i); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of data points.
func (mx *Mixture[G, V]) Len() int { return len(mx.values) }

// NumGroups returns the number of live groups.
func (mx *Mixture[G, V]) NumGroups() int { return len(mx.ids) }

// Alpha returns the current CRP concentration.
func (mx *Mixture[G, V]) Alpha() float64 { return mx.alpha }

// Assignments returns a copy of the point→group-id assignment vector
// (Unassigned for points not yet placed).
func (mx *Mixture[G, V]) Assignments() []int {
	return append([]int(nil), mx.assign...)
}

// GroupSizes returns a copy of the live id→size map.
func (mx *Mixture[G, V]) GroupSizes() map[int]int {
	sizes := make(map[int]int, len(mx.ids))
	for _, id := range mx.ids {
		sizes[id] = mx.groups[id].size
	}
	return sizes
}

// GroupStats returns the sufficient statistics of group id, read-only
// by convention (mutating them outside GroupAdd/GroupRemove corrupts
// the partition).
func (mx *Mixture[G, V]) GroupStats(id int) (G, bool) {
	g, ok := mx.groups[id]
	if !ok {
		var zero G
		return zero, false
	}
	return g.stats, true
}
