package gen

import (
	"math/big"

	"github.com/CamJeff/COMP-321-Problem-Development/format"
	"github.com/CamJeff/COMP-321-Problem-Development/problem"
)

// Sample is a published example together with its expected answer line.
type Sample struct {
	Name     string
	Instance format.Instance
	Answer   string
}

func mustInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("gen: bad sample literal " + s)
	}

	return v
}

// Samples returns the three sample cases from the problem statement.
// Each call allocates fresh values.
func Samples() []Sample {
	return []Sample{
		{
			Name: "sample-1",
			Instance: format.Instance{
				Target: big.NewInt(10),
				Topics: []string{"dp", "graphs", "arrays"},
				Problems: []problem.Problem{
					problem.New(1, big.NewInt(5), 3, "dp", 120),
					problem.New(2, big.NewInt(6), 5, "graphs", 200),
					problem.New(3, big.NewInt(4), 1, "arrays", 50),
					problem.New(4, big.NewInt(8), 4, "dp", 300),
				},
			},
			Answer: "3 4",
		},
		{
			Name: "sample-2",
			Instance: format.Instance{
				Target: big.NewInt(10),
				Topics: []string{"stacks", "queues", "trees"},
				Problems: []problem.Problem{
					problem.New(1, big.NewInt(2), 1, "stacks", 100),
					problem.New(2, big.NewInt(2), 1, "stacks", 100),
					problem.New(3, big.NewInt(10), 9, "trees", 100),
				},
			},
			Answer: "3",
		},
		{
			Name: "sample-3",
			Instance: format.Instance{
				Target: mustInt("100000000000000"),
				Topics: []string{"greedy", "dijkstra", "strings"},
				Problems: []problem.Problem{
					problem.New(1, mustInt("60000000000000"), 3, "greedy", 5000),
					problem.New(2, mustInt("50000000000000"), 2, "dijkstra", 8000),
					problem.New(3, mustInt("40000000000000"), 1, "strings", 2000),
					problem.New(4, mustInt("70000000000000"), 5, "greedy", 10000),
				},
			},
			Answer: "1 3",
		},
	}
}
