// Package reldp implements the DP Layer Builder and Probability Sweeper: it
// walks a frontier.Layout edge by edge, interning the canonical dpstate.State
// produced at each position into a flat per-layer table, then propagates
// probability mass forward through the resulting block graph to produce the
// final reachable-vertex-count histogram.
package reldp
