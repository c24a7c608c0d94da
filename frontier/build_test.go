package frontier_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/relnum/frontier"
	"github.com/katalvlaran/relnum/relio"
)

func isSrc(set map[int]struct{}) func(int) bool {
	return func(v int) bool {
		_, ok := set[v]
		return ok
	}
}

// TestBuild_Path covers a 3-vertex path: 1-2-3, source {1}.
func TestBuild_Path(t *testing.T) {
	edges := []relio.Edge{{U: 1, V: 2}, {U: 2, V: 3}}
	lay, err := frontier.Build(3, edges, isSrc(map[int]struct{}{1: {}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := [][]int{{}, {2}, {}}; !reflect.DeepEqual(lay.Fros, want) {
		t.Errorf("Fros = %v; want %v", lay.Fros, want)
	}
	if want := [][]int{{1, 2}, {2, 3}}; !reflect.DeepEqual(lay.MFros, want) {
		t.Errorf("MFros = %v; want %v", lay.MFros, want)
	}
	if want := [][]int{{0, 1}, {1}}; !reflect.DeepEqual(lay.FEnt, want) {
		t.Errorf("FEnt = %v; want %v", lay.FEnt, want)
	}
	if want := [][]int{{0}, {0, 1}}; !reflect.DeepEqual(lay.FLve, want) {
		t.Errorf("FLve = %v; want %v", lay.FLve, want)
	}
	if want := 2; lay.Width != want {
		t.Errorf("Width = %d; want %d", lay.Width, want)
	}
	// source 1's only incidence is edge 0, so first and last occurrence
	// coincide here.
	if want := 0; lay.SrcFinal != want {
		t.Errorf("SrcFinal = %d; want %d", lay.SrcFinal, want)
	}
}

// TestBuild_SrcFinalUsesLastOccurrence distinguishes SrcFinal from a source
// vertex's first occurrence: source 2 enters at edge 0 but stays on the
// frontier through edge 1, so SrcFinal must be 1, not 0.
func TestBuild_SrcFinalUsesLastOccurrence(t *testing.T) {
	edges := []relio.Edge{{U: 1, V: 2}, {U: 2, V: 3}}
	lay, err := frontier.Build(3, edges, isSrc(map[int]struct{}{2: {}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 1; lay.SrcFinal != want {
		t.Errorf("SrcFinal = %d; want %d", lay.SrcFinal, want)
	}
}

// TestBuild_SelfLoop ensures a self-loop occupies a single frontier slot.
func TestBuild_SelfLoop(t *testing.T) {
	edges := []relio.Edge{{U: 1, V: 1}}
	lay, err := frontier.Build(1, edges, isSrc(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := [][]int{{1}}; !reflect.DeepEqual(lay.MFros, want) {
		t.Errorf("MFros = %v; want %v", lay.MFros, want)
	}
	if got := lay.VPos[0]; got.Pos0 != 0 || got.Pos1 != 0 {
		t.Errorf("VPos = %+v; want {0 0}", got)
	}
}

// TestBuild_WidthExceeded ensures the frontier cap is enforced. Seventeen
// disjoint 2-edge paths a_i-b_i-c_i are ordered so every a_i-b_i edge is
// processed before any b_i-c_i edge: each b_i stays alive across the whole
// first phase, so the frontier accumulates all seventeen of them at once.
func TestBuild_WidthExceeded(t *testing.T) {
	const paths = 17
	n := paths * 3
	edges := make([]relio.Edge, 0, paths*2)
	for i := 1; i <= paths; i++ {
		a, b := 3*i-2, 3*i-1
		edges = append(edges, relio.Edge{U: a, V: b})
	}
	for i := 1; i <= paths; i++ {
		b, c := 3*i-1, 3*i
		edges = append(edges, relio.Edge{U: b, V: c})
	}
	_, err := frontier.Build(n, edges, isSrc(nil))
	if err != frontier.ErrWidthExceeded {
		t.Fatalf("err = %v; want ErrWidthExceeded", err)
	}
}

// TestBuild_WithWidthCap checks that a tightened WithWidthCap rejects a
// frontier that would otherwise fit under MaxFrontier, and that a cap above
// MaxFrontier clamps back down rather than loosening the hard ceiling.
func TestBuild_WithWidthCap(t *testing.T) {
	// Triangle 1-2-3: MFros[1] = {1,2,3} (edge (2,3) processed while vertex
	// 1 is still on the frontier awaiting edge (1,3)), so the true max
	// width is 3.
	edges := []relio.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}}

	if _, err := frontier.Build(3, edges, isSrc(nil)); err != nil {
		t.Fatalf("unexpected error with default cap: %v", err)
	}

	_, err := frontier.Build(3, edges, isSrc(nil), frontier.WithWidthCap(2))
	if err != frontier.ErrWidthExceeded {
		t.Fatalf("err = %v; want ErrWidthExceeded with a width cap of 2", err)
	}

	lay, err := frontier.Build(3, edges, isSrc(nil), frontier.WithWidthCap(1000))
	if err != nil {
		t.Fatalf("unexpected error with an oversized cap: %v", err)
	}
	if lay.Width > frontier.MaxFrontier {
		t.Fatalf("Width = %d; should never exceed MaxFrontier=%d", lay.Width, frontier.MaxFrontier)
	}
}
