// Package relnum computes the probability distribution of the number of
// vertices reachable from a designated set of source vertices in an
// undirected graph whose edges fail independently with given
// probabilities.
//
// Given a graph G=(V,E), a source set S⊆V and per-edge survival
// probabilities p_e∈[0,1], relnum computes, for every k∈{0,...,|V|}, the
// probability that exactly k vertices lie in the union of connected
// components containing S in the random subgraph where edge e survives
// independently with probability p_e.
//
// The core is a frontier-based dynamic program over a fixed edge order
// that tracks partial connectivity via a canonicalised frontier state,
// aggregates probability mass over decision-diagram edges, and prunes any
// state that has shed the source-connected label entirely from its live
// frontier (once every source vertex has permanently left the frontier,
// a state with no live source-connected slot can never regain one, so its
// final source-connected count is already fixed). Everything downstream
// of that DP — file I/O and the CLI wrapper — is peripheral.
//
// Under the hood, everything is organized into one package per concern:
//
//	relio/       — graph/probability/source/order file I/O
//	frontier/    — Frontier Builder: per-layer frontier metadata
//	dpstate/     — State Canonicaliser: canonical partial-partition states
//	reldp/       — DP Layer Builder + Probability Sweeper
//	reliability/ — Solve orchestration and histogram reporting
//	bddcheck/    — independent exhaustive cross-check for small graphs
//	cmd/relcount — CLI entry point
//
// Quick usage:
//
//	go run ./cmd/relcount graph.txt prob.txt sources.txt order.txt
package relnum
