package gen

import (
	"errors"
	"math/big"

	"github.com/CamJeff/COMP-321-Problem-Development/format"
	"github.com/CamJeff/COMP-321-Problem-Development/problem"
)

// ErrBadConfig indicates inconsistent generator bounds.
var ErrBadConfig = errors.New("gen: invalid config")

// BaseTopics is the topic list used by random instances.
var BaseTopics = []string{
	"dp", "graphs", "trees", "stacks", "queues",
	"greedy", "arrays", "heaps", "math", "strings",
}

// Config bounds a random instance. All ranges are inclusive.
type Config struct {
	MinN, MaxN             int   // number of problems
	MinBase, MaxBase       int64 // base point value P
	MinDifficulty, MaxDiff int
	MinLength, MaxLength   int
}

// DefaultConfig mirrors the judge's random tests: 50–60 problems, P in
// [1e14, 5e14] so no problem exceeds 1e15 points, difficulty 5–10 and
// statement length 100–1000.
func DefaultConfig() Config {
	return Config{
		MinN:          50,
		MaxN:          60,
		MinBase:       100_000_000_000_000,
		MaxBase:       500_000_000_000_000,
		MinDifficulty: 5,
		MaxDiff:       10,
		MinLength:     100,
		MaxLength:     1000,
	}
}

func (c Config) validate() error {
	switch {
	case c.MinN < 1 || c.MaxN < c.MinN:
		return errors.Join(ErrBadConfig, errors.New("problem count range"))
	case c.MinBase < 1 || c.MaxBase < c.MinBase:
		return errors.Join(ErrBadConfig, errors.New("base point range"))
	case c.MinDifficulty < 0 || c.MaxDiff < c.MinDifficulty:
		return errors.Join(ErrBadConfig, errors.New("difficulty range"))
	case c.MinLength < 0 || c.MaxLength < c.MinLength:
		return errors.Join(ErrBadConfig, errors.New("length range"))
	}

	return nil
}

// Random builds one instance from seed. Problem ids are 1..N in input order and
// every topic is drawn from BaseTopics, which is also the preference order.
func Random(seed int64, cfg Config) (format.Instance, error) {
	if err := cfg.validate(); err != nil {
		return format.Instance{}, err
	}
	r := rngFromSeed(seed)

	n := int(between(r, int64(cfg.MinN), int64(cfg.MaxN)))
	base := between(r, cfg.MinBase, cfg.MaxBase)

	ps := make([]problem.Problem, n)
	for i := range ps {
		pts := between(r, base, 2*base)
		diff := int(between(r, int64(cfg.MinDifficulty), int64(cfg.MaxDiff)))
		topic := BaseTopics[r.Intn(len(BaseTopics))]
		length := int(between(r, int64(cfg.MinLength), int64(cfg.MaxLength)))
		ps[i] = problem.New(i+1, big.NewInt(pts), diff, topic, length)
	}
	target := big.NewInt(between(r, 5*base, 10*base))

	return format.Instance{
		Target:   target,
		Topics:   append([]string(nil), BaseTopics...),
		Problems: ps,
	}, nil
}
