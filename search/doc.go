// Package search selects a minimum-cost set of problems whose points reach a
// target, using best-first branch-and-bound with state-dominance pruning.
//
// Overview:
//
//   - Every partial selection is a state carrying its cumulative cost tuple
//     Priority{Difficulty, Count, NegPref, Length}, its cumulative points, the
//     canonical index of the last problem taken, and its path of problem ids.
//   - States are expanded in lexicographic Priority order from a min-heap. The
//     first state popped whose points reach the target is the answer.
//   - Problems are branched in canonical order (difficulty, length, id) and a
//     state only extends with problems after its last index, so every subset is
//     generated at most once (combinations, not permutations).
//   - Equal priorities are served in insertion order, which makes the result
//     deterministic and resolves ties toward the subset discovered first.
//
// Why best-first is exact here:
//
//   - Extending a state adds one to Count and a non-negative amount to
//     Difficulty, so a child always compares strictly greater than its parent,
//     even though NegPref can only decrease. Pop order is therefore monotone and
//     the first goal popped is minimal among all qualifying subsets.
//   - Negative difficulties would break this; problem.Validate rejects them.
//
// Dominance policies:
//
//   - DominanceReach (default): a child B is discarded when a previously admitted
//     state A has the same Priority, at least as many points, and a last index no
//     greater than B's. Every completion of B then has a completion of A with the
//     same Priority and no fewer points, so pruning never changes the optimum.
//   - DominanceShape: compares Priority and points only. This is the more
//     aggressive historical rule; it can discard the only state that leads to the
//     optimum (see TestSearch_ShapeDominanceCanMissOptimum).
//   - DominanceOff: no pruning. Exponential; intended for tests.
//
// Options:
//
//   - WithMaxCount(n):      never build subsets larger than n (0 = unlimited).
//   - WithDominance(d):     choose the pruning policy.
//   - WithLogger(l):        debug logging of the run (zap.NewNop by default).
//
// Error handling (sentinel errors):
//
//   - ErrNilTarget, ErrNegativeTarget: invalid target.
//   - ErrBadMaxCount: returned (via panic) by WithMaxCount for n < 0.
//   - ErrUnknownDominance: ParseDominance received an unknown name.
//   - problem.Err*: returned unchanged from problem.Validate.
//
// A search that exhausts the frontier is not an error: Result.Found is false.
//
// Complexity:
//
//   - Worst case exponential in N (2^N subsets). Each push/pop costs
//     O(log F) heap work plus O(P) big-integer addition, where F is the
//     frontier size and P the digit length of the points.
//   - Dominance lookups cost O(log K) per child, K being the number of
//     non-dominated states sharing that Priority.
//
// Thread safety:
//
//   - Search owns all of its state; concurrent calls on distinct inputs are safe.
//     The problem slice passed in is copied and never mutated.
package search
