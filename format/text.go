package format

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/CamJeff/COMP-321-Problem-Development/problem"
)

// maxLine bounds a single input line; topic lists can be long.
const maxLine = 1 << 20

// lineReader yields whitespace-split lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	return &lineReader{sc: sc}
}

// next returns the fields of the next line. ok is false at end of input.
func (lr *lineReader) next() (fields []string, ok bool, err error) {
	if !lr.sc.Scan() {
		return nil, false, lr.sc.Err()
	}
	lr.line++

	return strings.Fields(lr.sc.Text()), true, nil
}

// nextRecord skips blank lines and returns the next non-blank one.
func (lr *lineReader) nextRecord() ([]string, bool, error) {
	for {
		fields, ok, err := lr.next()
		if !ok || err != nil || len(fields) > 0 {
			return fields, ok, err
		}
	}
}

// maxPrealloc bounds the problem slice reserved from the header count.
const maxPrealloc = 1024

// ReadText parses the text format described in the package documentation.
// Nothing is returned on error, so a malformed file never yields a partial Instance.
func ReadText(r io.Reader) (Instance, error) {
	lr := newLineReader(r)

	// 1) Header: M N.
	head, ok, err := lr.nextRecord()
	if err != nil {
		return Instance{}, err
	}
	if !ok {
		return Instance{}, fmt.Errorf("%w: missing header line", ErrTruncated)
	}
	if len(head) != 2 {
		return Instance{}, fmt.Errorf("%w: line %d: header needs 2 fields, got %d", ErrMalformed, lr.line, len(head))
	}
	target, err := parseNat(head[0])
	if err != nil {
		return Instance{}, fmt.Errorf("%w: line %d: target: %v", ErrMalformed, lr.line, err)
	}
	count, err := parseCount(head[1])
	if err != nil {
		return Instance{}, fmt.Errorf("%w: line %d: problem count: %v", ErrMalformed, lr.line, err)
	}

	// 2) Topic line; may be empty, and may be absent when there are no problems.
	topics, ok, err := lr.next()
	if err != nil {
		return Instance{}, err
	}
	if !ok && count > 0 {
		return Instance{}, fmt.Errorf("%w: missing topic line", ErrTruncated)
	}

	// 3) Problems. The header count is untrusted until the lines are read.
	ps := make([]problem.Problem, 0, min(count, maxPrealloc))
	for len(ps) < count {
		fields, ok, err := lr.nextRecord()
		if err != nil {
			return Instance{}, err
		}
		if !ok {
			return Instance{}, fmt.Errorf("%w: read %d of %d problems", ErrTruncated, len(ps), count)
		}
		p, err := parseProblem(fields)
		if err != nil {
			return Instance{}, fmt.Errorf("%w: line %d: %v", ErrMalformed, lr.line, err)
		}
		ps = append(ps, p)
	}

	// 4) Nothing but blank lines may follow.
	if _, ok, err = lr.nextRecord(); err != nil {
		return Instance{}, err
	} else if ok {
		return Instance{}, fmt.Errorf("%w: line %d", ErrTrailingInput, lr.line)
	}

	return Instance{Target: target, Topics: topics, Problems: ps}, nil
}

// parseProblem reads "id points difficulty topic length".
func parseProblem(fields []string) (problem.Problem, error) {
	if len(fields) != 5 {
		return problem.Problem{}, fmt.Errorf("problem needs 5 fields, got %d", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return problem.Problem{}, fmt.Errorf("id: %w", err)
	}
	pts, err := parseNat(fields[1])
	if err != nil {
		return problem.Problem{}, fmt.Errorf("points: %w", err)
	}
	diff, err := strconv.Atoi(fields[2])
	if err != nil {
		return problem.Problem{}, fmt.Errorf("difficulty: %w", err)
	}
	length, err := strconv.Atoi(fields[4])
	if err != nil {
		return problem.Problem{}, fmt.Errorf("length: %w", err)
	}

	return problem.New(id, pts, diff, fields[3], length), nil
}

// parseNat parses a non-negative decimal integer of any size.
func parseNat(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%q is not an integer", s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%q is negative", s)
	}

	return v, nil
}

// parseCount parses a non-negative int.
func parseCount(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%q is negative", s)
	}

	return v, nil
}

// WriteText renders in in the text format accepted by ReadText.
func WriteText(w io.Writer, in Instance) error {
	bw := bufio.NewWriter(w)
	target := "0"
	if in.Target != nil {
		target = in.Target.String()
	}
	fmt.Fprintf(bw, "%s %d\n", target, len(in.Problems))
	fmt.Fprintln(bw, strings.Join(in.Topics, " "))
	for _, p := range in.Problems {
		fmt.Fprintf(bw, "%d %s %d %s %d\n", p.ID, p.Points, p.Difficulty, p.Topic, p.Length)
	}

	return bw.Flush()
}
