package frontier

// VPos is the pair of in-layer positions (within MFros[i]) of an edge's two
// endpoints.
type VPos struct {
	Pos0, Pos1 int
}

// Layout holds the six per-layer frontier arrays computed once for an
// ordered edge sequence of length m, plus SrcFinal: the largest edge index i
// such that MFros[i] still contains at least one source vertex. Layout is
// read-only after Build returns.
type Layout struct {
	// N is the vertex count; M is the edge count (len(Fros)-1 == M).
	N, M int

	// Fros[i] is the frontier before processing edge i (vertex IDs, in
	// first-appearance order).
	Fros [][]int

	// MFros[i] is the frontier during processing of edge i: Fros[i] plus
	// any vertex whose first incidence is edge i.
	MFros [][]int

	// FEnt[i] holds positions within MFros[i] of vertices entering at i.
	FEnt [][]int

	// FLve[i] holds positions within MFros[i] of vertices leaving after i.
	FLve [][]int

	// VPos[i] gives the in-MFros[i] positions of edge i's two endpoints.
	VPos []VPos

	// SrcFinal is the last edge index at which a source vertex is still on
	// the frontier; it gates the pruning rule in dpstate.
	SrcFinal int

	// Width is the observed maximum |MFros[i]| across all i.
	Width int
}
