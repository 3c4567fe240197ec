// Package problem models the selectable problems of a problem-set assignment and
// the topic preference ranking attached to them.
//
// Overview:
//
//   - A Problem is immutable once loaded: identifier, point value (arbitrary
//     precision), difficulty, topic and statement length.
//   - Rank is derived from a user-supplied topic ordering: with K listed topics the
//     first receives K, the next K−1, and so on; unlisted topics rank 0.
//   - Canonical returns the branching order used by the search package:
//     (difficulty, length, id) ascending.
//
// Error handling (sentinel errors):
//
//   - ErrNilPoints:          a problem carries a nil *big.Int.
//   - ErrNegativePoints:     a problem is worth fewer than zero points.
//   - ErrNegativeDifficulty: difficulty < 0 would let an extension lower the cost.
//   - ErrNegativeLength:     length < 0.
//   - ErrDuplicateID:        two problems share an identifier.
//
// Complexity:
//
//   - Canonical: O(N log N).
//   - Validate:  O(N) time, O(N) space for the id set.
package problem
