package frontier

import "github.com/katalvlaran/relnum/relio"

// Build computes the six per-layer frontier arrays and SrcFinal for the
// ordered edge sequence edges over n vertices. isSource reports whether a
// 1-indexed vertex is a member of the source set S.
//
// Determinism: within a layer, vertices are ordered by first appearance in
// edges; when both endpoints of an edge enter the frontier at the same
// position, the edge's first endpoint is assigned the earlier slot.
//
// Complexity: O(n+m) time and memory.
func Build(n int, edges []relio.Edge, isSource func(int) bool, opts ...Option) (*Layout, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := len(edges)

	first := make([]int, n+1)
	last := make([]int, n+1)
	for v := 1; v <= n; v++ {
		first[v] = -1
		last[v] = -1
	}
	for i, e := range edges {
		if first[e.U] == -1 {
			first[e.U] = i
		}
		if first[e.V] == -1 {
			first[e.V] = i
		}
		last[e.U] = i
		last[e.V] = i
	}

	lay := &Layout{
		N:     n,
		M:     m,
		Fros:  make([][]int, m+1),
		MFros: make([][]int, m),
		FEnt:  make([][]int, m),
		FLve:  make([][]int, m),
		VPos:  make([]VPos, m),
	}

	cur := []int{}
	lay.Fros[0] = cur

	for i, e := range edges {
		mf := append([]int{}, cur...)
		posOf := make(map[int]int, len(mf)+2)
		for idx, v := range mf {
			posOf[v] = idx
		}

		var entering []int
		for _, v := range [2]int{e.U, e.V} {
			if first[v] != i {
				continue
			}
			if _, seen := posOf[v]; seen {
				continue // self-loop: both endpoints are the same vertex
			}
			posOf[v] = len(mf)
			entering = append(entering, len(mf))
			mf = append(mf, v)
		}

		lay.FEnt[i] = entering
		lay.MFros[i] = mf
		if len(mf) > lay.Width {
			lay.Width = len(mf)
		}
		lay.VPos[i] = VPos{Pos0: posOf[e.U], Pos1: posOf[e.V]}

		var leaving []int
		for idx, v := range mf {
			if last[v] == i {
				leaving = append(leaving, idx)
			}
		}
		lay.FLve[i] = leaving

		leavingAt := make(map[int]struct{}, len(leaving))
		for _, idx := range leaving {
			leavingAt[idx] = struct{}{}
		}
		next := make([]int, 0, len(mf)-len(leaving))
		for idx, v := range mf {
			if _, gone := leavingAt[idx]; !gone {
				next = append(next, v)
			}
		}
		lay.Fros[i+1] = next
		cur = next
	}

	if lay.Width > cfg.WidthCap {
		return nil, ErrWidthExceeded
	}

	// SrcFinal is the largest index i such that MFros[i] still contains a
	// source vertex. A vertex stays on the frontier from its first
	// occurrence through its last (FLve fires at i == last[v]), so the
	// governing index per source vertex is last[v], not first[v].
	lay.SrcFinal = 0
	for v := 1; v <= n; v++ {
		if isSource(v) && last[v] > lay.SrcFinal {
			lay.SrcFinal = last[v]
		}
	}

	return lay, nil
}
