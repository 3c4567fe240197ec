// Package search_test provides runnable examples for the subset search.
package search_test

import (
	"fmt"
	"math/big"

	"github.com/CamJeff/COMP-321-Problem-Development/problem"
	"github.com/CamJeff/COMP-321-Problem-Development/search"
)

// ExampleSearch picks the cheapest pair of problems worth at least 10 points.
// Problems 3 and 4 cost difficulty 1+4 = 5, beating every other qualifying set.
func ExampleSearch() {
	ps := []problem.Problem{
		problem.New(1, big.NewInt(5), 3, "dp", 120),
		problem.New(2, big.NewInt(6), 5, "graphs", 200),
		problem.New(3, big.NewInt(4), 1, "arrays", 50),
		problem.New(4, big.NewInt(8), 4, "dp", 300),
	}

	res, err := search.Search(big.NewInt(10), ps, []string{"dp", "graphs", "arrays"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Found, res.IDs, res.Priority, res.Points)
	// Output: true [3 4] (5,2,-4,350) 12
}

// ExampleSearch_noSolution shows the result when the points cannot be reached.
func ExampleSearch_noSolution() {
	ps := []problem.Problem{problem.New(1, big.NewInt(5), 1, "dp", 10)}

	res, _ := search.Search(big.NewInt(100), ps, []string{"dp"})
	fmt.Println(res.Found, res.IDs)
	// Output: false []
}

// ExampleWithMaxCount limits answers to a single problem.
func ExampleWithMaxCount() {
	ps := []problem.Problem{
		problem.New(1, big.NewInt(4), 1, "dp", 10),
		problem.New(2, big.NewInt(4), 1, "dp", 10),
		problem.New(3, big.NewInt(8), 7, "dp", 10),
	}

	free, _ := search.Search(big.NewInt(8), ps, nil)
	capped, _ := search.Search(big.NewInt(8), ps, nil, search.WithMaxCount(1))
	fmt.Println(free.IDs, capped.IDs)
	// Output: [1 2] [3]
}
