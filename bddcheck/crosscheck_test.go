package bddcheck_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/relnum/bddcheck"
	"github.com/katalvlaran/relnum/relio"
)

func isSrc(set map[int]struct{}) func(int) bool {
	return func(v int) bool {
		_, ok := set[v]
		return ok
	}
}

// TestTriangleMatchesHandComputed cross-checks Enumerate itself against the
// closed-form answer for a 3-cycle with uniform edge survival 0.5 and
// source {1}: res = [0, 0.25, 0.25, 0.5].
func TestTriangleMatchesHandComputed(t *testing.T) {
	edges := []relio.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}}
	res, err := bddcheck.Enumerate(3, edges, isSrc(map[int]struct{}{1: {}}), []float64{0.5, 0.5, 0.5})
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	want := []float64{0, 0.25, 0.25, 0.5}
	for k, w := range want {
		if math.Abs(res[k]-w) > 1e-12 {
			t.Errorf("res[%d] = %.15f; want %.15f", k, res[k], w)
		}
	}
}

// TestIsolatedVertexNeverReachable ensures a vertex absent from every edge
// never contributes to the reachable count regardless of edge outcomes.
func TestIsolatedVertexNeverReachable(t *testing.T) {
	edges := []relio.Edge{{U: 1, V: 2}}
	res, err := bddcheck.Enumerate(3, edges, isSrc(map[int]struct{}{1: {}}), []float64{0.5})
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	// Vertex 3 is isolated and not a source: reach is always 1 or 2, never 3.
	if res[3] != 0 {
		t.Errorf("res[3] = %v; want 0 (vertex 3 is isolated and not a source)", res[3])
	}
	if math.Abs((res[1]+res[2])-1.0) > 1e-12 {
		t.Errorf("res[1]+res[2] = %v; want 1", res[1]+res[2])
	}
}
