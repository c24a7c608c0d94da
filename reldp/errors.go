package reldp

import "errors"

var (
	// ErrStateCapExceeded is a ConfigError: the number of interned states
	// across all layers exceeded the configured cap, a guard against
	// pathological inputs blowing up memory rather than a normal failure
	// mode for well-formed graphs within the frontier width cap.
	ErrStateCapExceeded = errors.New("reldp: interned state count exceeds cap")

	// ErrCnumOverflow mirrors dpstate.ErrCnumOverflow: it can only fire if
	// an upstream invariant (frontier width, entry bookkeeping) already
	// broke, since frontier.Build already bounds width to MaxFrontier.
	ErrCnumOverflow = errors.New("reldp: component count exceeds frontier capacity")

	// ErrBadLayers is an InternalError raised by Sweep when pi's length
	// does not match the layer count, or when handed a Layers value whose
	// block graph references an out-of-range successor id, which would
	// only happen if Layers was constructed by hand instead of via
	// BuildLayers.
	ErrBadLayers = errors.New("reldp: malformed layer graph")
)
