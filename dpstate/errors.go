// Package dpstate implements the State Canonicaliser: given a predecessor
// frontier state and the frontier metadata for one edge position, it
// produces the lo (edge excluded) and hi (edge included) successor states in
// canonical form, and detects when a successor is a pruned terminal.
package dpstate

import "errors"

var (
	// ErrCnumOverflow is an InternalError: cnum grew past the frontier
	// width cap, which can only happen if an invariant elsewhere (frontier
	// width, entry bookkeeping) was already violated.
	ErrCnumOverflow = errors.New("dpstate: cnum exceeds frontier capacity")

	// ErrWidthMismatch is an InternalError: the number of live slots a
	// successor (terminal or not) actually carries disagrees with
	// Transition.NextWidth (len(Fros[i+1]) as computed by frontier.Build),
	// which can only happen if the frontier metadata and the canonicaliser
	// disagree about which vertices survive edge i.
	ErrWidthMismatch = errors.New("dpstate: successor width disagrees with frontier metadata")
)
