// Package bddcheck provides an independent brute-force cross-check for
// reliability.Solve: it enumerates every one of the 2^m edge-survival
// subsets directly, weighting each by its probability and tallying the
// resulting source-reachable count with a union-find, rather than sharing
// any code path with the frontier DP. It produces an independently derived
// histogram the frontier DP must match, without vendoring a BDD library.
// Exponential in m, so it is only ever exercised against small graphs
// (m <= 20) in tests.
package bddcheck
