package problem

import (
	"cmp"
	"fmt"
	"math/big"
	"slices"
)

// Canonical returns a copy of ps sorted by (difficulty, length, id) ascending.
// The input slice is left untouched.
func Canonical(ps []Problem) []Problem {
	out := slices.Clone(ps)
	slices.SortFunc(out, func(a, b Problem) int {
		if c := cmp.Compare(a.Difficulty, b.Difficulty); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Length, b.Length); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return out
}

// Validate checks the invariants the search relies on. The first violation is
// returned, wrapped with the offending problem id.
func Validate(ps []Problem) error {
	seen := make(map[int]struct{}, len(ps))
	for _, p := range ps {
		switch {
		case p.Points == nil:
			return fmt.Errorf("%w: id %d", ErrNilPoints, p.ID)
		case p.Points.Sign() < 0:
			return fmt.Errorf("%w: id %d points=%s", ErrNegativePoints, p.ID, p.Points)
		case p.Difficulty < 0:
			return fmt.Errorf("%w: id %d difficulty=%d", ErrNegativeDifficulty, p.ID, p.Difficulty)
		case p.Length < 0:
			return fmt.Errorf("%w: id %d length=%d", ErrNegativeLength, p.ID, p.Length)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: id %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}

// Total returns the sum of all point values. Nil points count as zero.
func Total(ps []Problem) *big.Int {
	sum := new(big.Int)
	for _, p := range ps {
		if p.Points != nil {
			sum.Add(sum, p.Points)
		}
	}

	return sum
}
