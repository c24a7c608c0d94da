package bddcheck

import "errors"

// ErrTooManyEdges guards the exponential enumeration: above this many
// edges, 2^m subsets is no longer a reasonable cross-check cost.
var ErrTooManyEdges = errors.New("bddcheck: too many edges for exhaustive enumeration")

// MaxEdges is the hard cap on m for Enumerate.
const MaxEdges = 20
