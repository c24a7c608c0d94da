package reliability

// Stats carries diagnostics cmd/relcount always prints: the total number
// of interned states across every layer of the frontier DP.
type Stats struct {
	// States is the sum of interned-state counts across all layers, one
	// (the root state alone) when the edge set is empty.
	States int64
}

// Result is Solve's return value: the n+1-bucket reachable-vertex-count
// histogram plus the diagnostics cmd/relcount reports on stderr.
type Result struct {
	Histogram []float64
	Stats     Stats
}
