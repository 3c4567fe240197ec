package format

import (
	"errors"
	"math/big"

	"github.com/CamJeff/COMP-321-Problem-Development/problem"
)

// DefaultSentinel is printed when no subset reaches the target.
const DefaultSentinel = "-1"

// Sentinel errors returned by the readers and the validator.
var (
	// ErrMalformed indicates a record with the wrong number of tokens or a bad number.
	ErrMalformed = errors.New("format: malformed input")

	// ErrTruncated indicates that the input ended early.
	ErrTruncated = errors.New("format: unexpected end of input")

	// ErrTrailingInput indicates extra content after the last problem.
	ErrTrailingInput = errors.New("format: unexpected trailing input")

	// ErrBadJSON indicates syntactically invalid JSON.
	ErrBadJSON = errors.New("format: invalid JSON")

	// ErrInvalid indicates a violation of the strict contest rules.
	ErrInvalid = errors.New("format: invalid instance")
)

// Instance is one complete search input.
type Instance struct {
	Target   *big.Int          // points required
	Topics   []string          // preference order, first = most preferred
	Problems []problem.Problem // in input order, Rank unset
}
