package bddcheck

import "github.com/katalvlaran/relnum/relio"

// Enumerate computes the exact reachable-vertex-count histogram for n
// vertices, edges with per-edge survival probabilities pi, and source set
// isSource, by summing over all 2^len(edges) edge-survival subsets.
//
// Complexity: O(2^m * (n + m)) time, O(n) memory per subset. Intended only
// for cross-checking reliability.Solve on small inputs.
func Enumerate(n int, edges []relio.Edge, isSource func(int) bool, pi []float64) ([]float64, error) {
	m := len(edges)
	if m > MaxEdges {
		return nil, ErrTooManyEdges
	}

	res := make([]float64, n+1)
	parent := make([]int, n+1)

	for mask := 0; mask < (1 << uint(m)); mask++ {
		for v := 1; v <= n; v++ {
			parent[v] = v
		}

		weight := 1.0
		for i, e := range edges {
			if mask&(1<<uint(i)) != 0 {
				weight *= pi[i]
				union(parent, e.U, e.V)
			} else {
				weight *= 1 - pi[i]
			}
		}

		srcRoots := make(map[int]struct{})
		for v := 1; v <= n; v++ {
			if isSource(v) {
				srcRoots[find(parent, v)] = struct{}{}
			}
		}

		reach := 0
		for v := 1; v <= n; v++ {
			if _, ok := srcRoots[find(parent, v)]; ok {
				reach++
			}
		}
		res[reach] += weight
	}

	return res, nil
}

func find(parent []int, v int) int {
	for parent[v] != v {
		parent[v] = parent[parent[v]]
		v = parent[v]
	}

	return v
}

func union(parent []int, a, b int) {
	ra, rb := find(parent, a), find(parent, b)
	if ra != rb {
		parent[ra] = rb
	}
}
