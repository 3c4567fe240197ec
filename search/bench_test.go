package search_test

import (
	"fmt"
	"testing"

	"github.com/CamJeff/COMP-321-Problem-Development/gen"
	"github.com/CamJeff/COMP-321-Problem-Development/search"
)

// benchConfig keeps random instances small enough for every policy, including
// DominanceOff, to finish in benchmark time.
func benchConfig(n int) gen.Config {
	cfg := gen.DefaultConfig()
	cfg.MinN, cfg.MaxN = n, n

	return cfg
}

func BenchmarkSearch(b *testing.B) {
	for _, size := range []int{12, 16, 20} {
		in, err := gen.Random(int64(size), benchConfig(size))
		if err != nil {
			b.Fatal(err)
		}
		for _, d := range []search.Dominance{search.DominanceReach, search.DominanceShape, search.DominanceOff} {
			b.Run(fmt.Sprintf("n=%d/%s", size, d), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := search.Search(in.Target, in.Problems, in.Topics,
						search.WithDominance(d), search.WithMaxCount(12)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
