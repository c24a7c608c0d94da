// Package frontier implements the Frontier Builder: a single pass over an
// ordered edge sequence that computes, for every edge position, the set of
// vertices still "live" on the frontier (vertices with at least one incident
// edge on each side of the current position), their compact in-layer
// positions, and which vertices enter or leave the frontier at that
// position.
//
// Complexity: O(n+m) time and memory, one pass to find first/last occurrence
// per vertex, one pass to materialise the six per-layer arrays.
package frontier
