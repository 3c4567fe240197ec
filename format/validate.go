package format

import (
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Contest limits enforced by Validate.
const (
	MinDifficulty = 1
	MaxDifficulty = 10
	MinLength     = 1
	MaxLength     = 10000
)

var (
	headerRe  = regexp.MustCompile(`^(0|[1-9][0-9]*) [1-9][0-9]*\n$`)
	topicsRe  = regexp.MustCompile(`^\S+( \S+)*\n$`)
	problemRe = regexp.MustCompile(`^[1-9][0-9]* (0|[1-9][0-9]*) (10|[1-9]) \S+ [1-9][0-9]{0,4}\n$`)
)

// Validate checks that r holds a judge-quality instance:
//
//   - every line uses single spaces and ends with '\n'; no leading zeros;
//   - N ≥ 1 and the topic list is non-empty with distinct entries;
//   - ids are a permutation of 1..N;
//   - 0 ≤ points ≤ M, difficulty in [1,10], length in [1,10000];
//   - every problem topic appears in the topic list;
//   - nothing follows the N-th problem line.
//
// The first violation is returned wrapped in ErrInvalid together with its line.
func Validate(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	lines := strings.SplitAfter(string(data), "\n")
	at := func(i int) string {
		if i < len(lines) {
			return lines[i]
		}

		return ""
	}
	fail := func(line int, format string, args ...any) error {
		return fmt.Errorf("%w: line %d: %s", ErrInvalid, line, fmt.Sprintf(format, args...))
	}

	// Header.
	head := at(0)
	if !headerRe.MatchString(head) {
		return fail(1, "bad format on first line")
	}
	fields := strings.Fields(head)
	target, _ := new(big.Int).SetString(fields[0], 10)
	count, err := strconv.Atoi(fields[1])
	if err != nil {
		return fail(1, "problem count: %v", err)
	}

	// Topics.
	topicLine := at(1)
	if topicLine == "\n" || topicLine == "" {
		return fail(2, "topic preference list cannot be empty")
	}
	if !topicsRe.MatchString(topicLine) {
		return fail(2, "bad format on topics line")
	}
	topics := make(map[string]struct{})
	for _, t := range strings.Fields(topicLine) {
		if _, dup := topics[t]; dup {
			return fail(2, "duplicate topic %q in preference list", t)
		}
		topics[t] = struct{}{}
	}

	// Problems.
	seen := make(map[int]struct{})
	for i := 0; i < count; i++ {
		ln := i + 3
		line := at(i + 2)
		if line == "" {
			return fail(ln, "unexpected end of input while reading problems")
		}
		if !problemRe.MatchString(line) {
			return fail(ln, "bad format in problem line")
		}
		f := strings.Fields(line)
		if _, ok := topics[f[3]]; !ok {
			return fail(ln, "topic %q not found in preference list", f[3])
		}
		id, _ := strconv.Atoi(f[0])
		if id < 1 || id > count {
			return fail(ln, "problem id %d out of range", id)
		}
		if _, dup := seen[id]; dup {
			return fail(ln, "duplicate problem id %d", id)
		}
		seen[id] = struct{}{}

		pts, _ := new(big.Int).SetString(f[1], 10)
		if pts.Cmp(target) > 0 {
			return fail(ln, "points %s exceed target %s", pts, target)
		}
		diff, _ := strconv.Atoi(f[2])
		if diff < MinDifficulty || diff > MaxDifficulty {
			return fail(ln, "difficulty %d out of range", diff)
		}
		length, _ := strconv.Atoi(f[4])
		if length < MinLength || length > MaxLength {
			return fail(ln, "text length %d out of range", length)
		}
	}

	// Trailing input.
	if rest := strings.Join(lines[min(count+2, len(lines)):], ""); rest != "" {
		return fail(count+3, "extra input detected")
	}

	return nil
}
