// Package relio implements the Input Loader half of the Input Loader /
// Reporter collaborator of the reliability solver (reporting lives in
// reliability.Report): reading the four plain-text input files (graph,
// probability, source, and elimination-order files) and mapping edges
// between the reference graph and the order graph by endpoint pair.
//
// File formats:
//
//   - graph_file / order_file: "n m" header, then m lines "u v" (1-indexed).
//   - probability_file: m whitespace-separated floats in [0,1].
//   - source_file: whitespace-separated vertex IDs in [1,n].
//
// All parsing errors are one of the sentinels in errors.go, so callers can
// classify failures with errors.Is without string matching.
package relio
