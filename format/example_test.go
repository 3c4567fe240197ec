package format_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/CamJeff/COMP-321-Problem-Development/format"
	"github.com/CamJeff/COMP-321-Problem-Development/search"
)

// Example reads an instance, solves it and prints the answer line.
func Example() {
	src := `10 3
stacks queues trees
1 2 1 stacks 100
2 2 1 stacks 100
3 10 9 trees 100
`
	in, err := format.ReadText(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := search.Search(in.Target, in.Problems, in.Topics)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = format.WriteResult(os.Stdout, res, format.DefaultSentinel)
	// Output: 3
}
