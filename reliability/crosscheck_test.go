package reliability_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/relnum/bddcheck"
	"github.com/katalvlaran/relnum/relio"
	"github.com/katalvlaran/relnum/reliability"
)

// TestCrossCheckAgainstExhaustiveEnumeration confirms that for small graphs,
// reliability.Solve's frontier DP matches bddcheck.Enumerate's independent
// 2^m subgraph enumeration within tolerance.
func TestCrossCheckAgainstExhaustiveEnumeration(t *testing.T) {
	cases := []struct {
		name string
		n    int
		e    []relio.Edge
		src  []int
		pi   []float64
	}{
		{
			name: "triangle",
			n:    3,
			e:    []relio.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}},
			src:  []int{1},
			pi:   []float64{0.5, 0.5, 0.5},
		},
		{
			name: "two_disjoint_sources",
			n:    4,
			e:    []relio.Edge{{U: 1, V: 2}, {U: 3, V: 4}},
			src:  []int{1, 3},
			pi:   []float64{0.4, 0.6},
		},
		{
			name: "house_graph",
			n:    5,
			e: []relio.Edge{
				{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4},
				{U: 4, V: 1}, {U: 1, V: 3}, {U: 4, V: 5},
			},
			src: []int{1, 5},
			pi:  []float64{0.3, 0.7, 0.4, 0.6, 0.9, 0.2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srcs := srcSet(tc.src...)
			isSrc := func(v int) bool { _, ok := srcs[v]; return ok }

			dp, err := reliability.Solve(tc.n, tc.e, tc.pi, srcs)
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}

			want, err := bddcheck.Enumerate(tc.n, tc.e, isSrc, tc.pi)
			if err != nil {
				t.Fatalf("Enumerate: %v", err)
			}

			for k := range want {
				if math.Abs(dp.Histogram[k]-want[k]) > 1e-9 {
					t.Errorf("bucket %d: Solve=%.15f Enumerate=%.15f", k, dp.Histogram[k], want[k])
				}
			}
		})
	}
}
