package problem

import (
	"errors"
	"math/big"
)

// Sentinel errors returned by Validate.
var (
	// ErrNilPoints indicates a problem without a point value.
	ErrNilPoints = errors.New("problem: points are nil")

	// ErrNegativePoints indicates a problem worth a negative number of points.
	ErrNegativePoints = errors.New("problem: points must be non-negative")

	// ErrNegativeDifficulty indicates a negative difficulty.
	ErrNegativeDifficulty = errors.New("problem: difficulty must be non-negative")

	// ErrNegativeLength indicates a negative statement length.
	ErrNegativeLength = errors.New("problem: length must be non-negative")

	// ErrDuplicateID indicates two problems with the same identifier.
	ErrDuplicateID = errors.New("problem: duplicate problem id")
)

// Problem is one selectable item of an assignment.
//
// Points is never mutated after construction; callers that need a different value
// must allocate a new *big.Int.
type Problem struct {
	ID         int      // unique identifier, printed in the answer
	Points     *big.Int // point value, arbitrary precision
	Difficulty int      // contributes to the first priority component
	Topic      string   // matched against the preference ordering
	Length     int      // statement length, last priority component
	Rank       int      // preference rank derived from Topic (higher = preferred)
}

// New builds a Problem with Rank 0. Use Apply to rank a slice of problems.
func New(id int, points *big.Int, difficulty int, topic string, length int) Problem {
	return Problem{
		ID:         id,
		Points:     points,
		Difficulty: difficulty,
		Topic:      topic,
		Length:     length,
	}
}

// Ranking maps a topic to its preference rank.
type Ranking map[string]int
