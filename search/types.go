package search

import (
	"cmp"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// Sentinel errors returned by the search implementation.
var (
	// ErrNilTarget indicates that no target point total was supplied.
	ErrNilTarget = errors.New("search: target is nil")

	// ErrNegativeTarget indicates a target below zero.
	ErrNegativeTarget = errors.New("search: target must be non-negative")

	// ErrBadMaxCount indicates a negative subset-size cap.
	ErrBadMaxCount = errors.New("search: MaxCount must be non-negative")

	// ErrUnknownDominance indicates an unrecognised dominance policy name.
	ErrUnknownDominance = errors.New("search: unknown dominance policy")
)

// Priority is the cost tuple minimised by the search, compared lexicographically.
type Priority struct {
	Difficulty int64 // sum of difficulties
	Count      int64 // number of problems
	NegPref    int64 // negated sum of preference ranks
	Length     int64 // sum of statement lengths
}

// Compare returns -1, 0 or +1 as p is lexicographically before, equal to or
// after q.
func (p Priority) Compare(q Priority) int {
	if c := cmp.Compare(p.Difficulty, q.Difficulty); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Count, q.Count); c != 0 {
		return c
	}
	if c := cmp.Compare(p.NegPref, q.NegPref); c != 0 {
		return c
	}

	return cmp.Compare(p.Length, q.Length)
}

// Less reports whether p sorts strictly before q.
func (p Priority) Less(q Priority) bool { return p.Compare(q) < 0 }

// String renders the tuple as (difficulty,count,negPref,length).
func (p Priority) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", p.Difficulty, p.Count, p.NegPref, p.Length)
}

// Dominance selects how generated states are pruned against earlier ones.
type Dominance int

const (
	// DominanceReach prunes a state only when an earlier state with the same
	// Priority has at least as many points and can reach every extension it can.
	DominanceReach Dominance = iota

	// DominanceShape prunes on equal Priority and points alone.
	DominanceShape

	// DominanceOff disables pruning.
	DominanceOff
)

// String returns the policy name accepted by ParseDominance.
func (d Dominance) String() string {
	switch d {
	case DominanceReach:
		return "reach"
	case DominanceShape:
		return "shape"
	case DominanceOff:
		return "off"
	}

	return fmt.Sprintf("Dominance(%d)", int(d))
}

// ParseDominance maps "reach", "shape" or "off" to its policy.
func ParseDominance(s string) (Dominance, error) {
	switch s {
	case "reach", "":
		return DominanceReach, nil
	case "shape":
		return DominanceShape, nil
	case "off":
		return DominanceOff, nil
	}

	return DominanceReach, fmt.Errorf("%w: %q", ErrUnknownDominance, s)
}

// Options configures a search run.
//
// MaxCount  – largest subset size generated; 0 means unlimited.
// Dominance – pruning policy, DominanceReach by default.
// Logger    – receives debug events; never nil after DefaultOptions.
//
// MaxCount is range-checked only by WithMaxCount, which panics with the
// ErrBadMaxCount message string. A negative value set directly behaves as 0.
type Options struct {
	MaxCount  int
	Dominance Dominance
	Logger    *zap.Logger
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMaxCount caps the number of problems in any generated subset.
// Negative values panic with ErrBadMaxCount; 0 removes the cap.
func WithMaxCount(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxCount.Error())
		}
		o.MaxCount = n
	}
}

// WithDominance selects the pruning policy.
func WithDominance(d Dominance) Option {
	return func(o *Options) {
		o.Dominance = d
	}
}

// WithLogger routes debug events to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the configuration used when no Option is passed:
// no size cap, DominanceReach, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxCount:  0,
		Dominance: DominanceReach,
		Logger:    zap.NewNop(),
	}
}

// Stats counts the work done by one run.
type Stats struct {
	Pushed int // states inserted into the frontier, root included
	Popped int // states extracted from the frontier
	Pruned int // children discarded by the dominance table
	Capped int // children never built because of MaxCount
}

// Result is the outcome of Search.
//
// When Found is false the other fields except Stats are zero values.
type Result struct {
	Found    bool
	IDs      []int    // chosen problem ids, ascending
	Sequence []int    // chosen problem ids in canonical (branching) order
	Priority Priority // cost tuple of the chosen subset
	Points   *big.Int // total points of the chosen subset
	Stats    Stats
}
