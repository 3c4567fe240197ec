package search

import (
	"container/heap"
	"fmt"
	"math/big"
	"slices"

	"go.uber.org/zap"

	"github.com/CamJeff/COMP-321-Problem-Development/problem"
)

// Search finds the subset of ps with the smallest Priority whose total points are
// at least target. topics is the preference ordering used to rank each problem's
// topic (first = most preferred).
//
// Returns:
//
//   - Result.Found == true with the chosen ids when a qualifying subset exists.
//   - Result.Found == false when none exists (the sum of all points is below the
//     target, or MaxCount forbids every qualifying subset).
//   - err for invalid input only.
//
// Preconditions and validation (in order):
//  1. target must be non-nil (ErrNilTarget) and non-negative (ErrNegativeTarget).
//  2. ps must pass problem.Validate.
//
// A zero target is met by the empty subset.
//
// Complexity:
//
//   - Time:  exponential in len(ps) in the worst case; see package doc.
//   - Space: proportional to the number of generated states.
func Search(target *big.Int, ps []problem.Problem, topics []string, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if target == nil {
		return Result{}, ErrNilTarget
	}
	if target.Sign() < 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrNegativeTarget, target)
	}
	if err := problem.Validate(ps); err != nil {
		return Result{}, err
	}

	// 3) Rank a private copy and fix the branching order.
	ranked := slices.Clone(ps)
	problem.Apply(problem.NewRanking(topics), ranked)

	return run(target, problem.Canonical(ranked), cfg), nil
}

// Run searches an already ranked slice that is in canonical order, as produced by
// problem.Apply followed by problem.Canonical. ordered is read but not modified.
//
// Run validates target and the problems like Search but does not check the
// ordering; an unsorted slice still yields a valid cover, though not
// necessarily the minimal one.
func Run(target *big.Int, ordered []problem.Problem, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if target == nil {
		return Result{}, ErrNilTarget
	}
	if target.Sign() < 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrNegativeTarget, target)
	}
	if err := problem.Validate(ordered); err != nil {
		return Result{}, err
	}

	return run(target, ordered, cfg), nil
}

func run(target *big.Int, ordered []problem.Problem, cfg Options) Result {
	r := &runner{
		target:  target,
		items:   ordered,
		options: cfg,
		seen:    newDominanceTable(cfg.Dominance),
		pq:      make(frontier, 0, len(ordered)+1),
		log:     cfg.Logger,
	}
	r.log.Debug("search started",
		zap.Stringer("target", target),
		zap.Int("problems", len(ordered)),
		zap.Int("maxCount", cfg.MaxCount),
		zap.Stringer("dominance", cfg.Dominance),
	)

	r.init()
	res := r.process()

	r.log.Debug("search finished",
		zap.Bool("found", res.Found),
		zap.Ints("ids", res.IDs),
		zap.Int("pushed", res.Stats.Pushed),
		zap.Int("popped", res.Stats.Popped),
		zap.Int("pruned", res.Stats.Pruned),
		zap.Int("capped", res.Stats.Capped),
		zap.Int("marks", r.seen.size()),
	)

	return res
}

// runner holds the mutable state for a single search execution.
type runner struct {
	target  *big.Int          // goal point total; read-only
	items   []problem.Problem // ranked problems in canonical order; read-only
	options Options           // configuration
	seen    *dominanceTable   // best points per Priority
	pq      frontier          // states waiting to be expanded
	seq     uint64            // next insertion number
	stats   Stats
	log     *zap.Logger
}

// init pushes the empty selection.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.push(&node{points: new(big.Int), last: -1})
}

// push stamps n with the next sequence number and inserts it.
func (r *runner) push(n *node) {
	n.seq = r.seq
	r.seq++
	r.stats.Pushed++
	heap.Push(&r.pq, n)
}

// process pops states in Priority order until one reaches the target or the
// frontier is empty.
func (r *runner) process() Result {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*node)
		r.stats.Popped++

		if cur.points.Cmp(r.target) >= 0 {
			return r.found(cur)
		}
		r.expand(cur)
	}

	return Result{Stats: r.stats}
}

// expand generates one child per problem after cur.last in canonical order.
func (r *runner) expand(cur *node) {
	if r.options.MaxCount > 0 && cur.key.Count >= int64(r.options.MaxCount) {
		r.stats.Capped += len(r.items) - (cur.last + 1)
		return
	}

	var (
		p   *problem.Problem
		key Priority
		pts *big.Int
	)
	for i := cur.last + 1; i < len(r.items); i++ {
		p = &r.items[i]
		key = Priority{
			Difficulty: cur.key.Difficulty + int64(p.Difficulty),
			Count:      cur.key.Count + 1,
			NegPref:    cur.key.NegPref - int64(p.Rank),
			Length:     cur.key.Length + int64(p.Length),
		}
		pts = new(big.Int).Add(cur.points, p.Points)

		if !r.seen.admit(key, i, pts) {
			r.stats.Pruned++
			continue
		}

		r.push(&node{
			key:    key,
			points: pts,
			last:   i,
			trail:  cur.trail.push(p.ID),
		})
	}
}

// found converts a goal state into a Result.
func (r *runner) found(n *node) Result {
	seq := n.trail.ids()
	ids := slices.Clone(seq)
	slices.Sort(ids)

	return Result{
		Found:    true,
		IDs:      ids,
		Sequence: seq,
		Priority: n.key,
		Points:   new(big.Int).Set(n.points),
		Stats:    r.stats,
	}
}
