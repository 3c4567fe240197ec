package format

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/CamJeff/COMP-321-Problem-Development/problem"
)

// ReadJSON parses the JSON instance format described in the package documentation.
func ReadJSON(data []byte) (Instance, error) {
	if !gjson.ValidBytes(data) {
		return Instance{}, ErrBadJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Instance{}, fmt.Errorf("%w: top level must be an object", ErrMalformed)
	}

	target, err := bigField(root, "target")
	if err != nil {
		return Instance{}, err
	}

	var topics []string
	if t := root.Get("topics"); t.Exists() {
		if !t.IsArray() {
			return Instance{}, fmt.Errorf("%w: topics must be an array", ErrMalformed)
		}
		for i, v := range t.Array() {
			if v.Type != gjson.String {
				return Instance{}, fmt.Errorf("%w: topics[%d] must be a string", ErrMalformed, i)
			}
			topics = append(topics, v.Str)
		}
	}

	list := root.Get("problems")
	if list.Exists() && !list.IsArray() {
		return Instance{}, fmt.Errorf("%w: problems must be an array", ErrMalformed)
	}
	items := list.Array()
	ps := make([]problem.Problem, 0, len(items))
	for i, v := range items {
		p, err := jsonProblem(v)
		if err != nil {
			return Instance{}, fmt.Errorf("problems[%d]: %w", i, err)
		}
		ps = append(ps, p)
	}

	return Instance{Target: target, Topics: topics, Problems: ps}, nil
}

func jsonProblem(v gjson.Result) (problem.Problem, error) {
	if !v.IsObject() {
		return problem.Problem{}, fmt.Errorf("%w: problem must be an object", ErrMalformed)
	}
	id, err := intField(v, "id")
	if err != nil {
		return problem.Problem{}, err
	}
	pts, err := bigField(v, "points")
	if err != nil {
		return problem.Problem{}, err
	}
	diff, err := intField(v, "difficulty")
	if err != nil {
		return problem.Problem{}, err
	}
	length, err := intField(v, "length")
	if err != nil {
		return problem.Problem{}, err
	}
	topic := v.Get("topic")
	if topic.Type != gjson.String {
		return problem.Problem{}, fmt.Errorf("%w: topic must be a string", ErrMalformed)
	}

	return problem.New(id, pts, diff, topic.Str, length), nil
}

// integerText returns the decimal text of a number or string field.
// Numbers are read from their raw text so no precision is lost to float64.
func integerText(obj gjson.Result, name string) (string, error) {
	v := obj.Get(name)
	switch v.Type {
	case gjson.Number:
		return v.Raw, nil
	case gjson.String:
		return v.Str, nil
	case gjson.Null:
		if !v.Exists() {
			return "", fmt.Errorf("%w: missing field %q", ErrMalformed, name)
		}
	}

	return "", fmt.Errorf("%w: field %q must be an integer", ErrMalformed, name)
}

func intField(obj gjson.Result, name string) (int, error) {
	s, err := integerText(obj, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: field %q: %v", ErrMalformed, name, err)
	}

	return n, nil
}

func bigField(obj gjson.Result, name string) (*big.Int, error) {
	s, err := integerText(obj, name)
	if err != nil {
		return nil, err
	}
	v, err := parseNat(s)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrMalformed, name, err)
	}

	return v, nil
}
