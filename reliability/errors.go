package reliability

import (
	"errors"
	"fmt"
)

// Sentinels wrapped by the structured error types below.
var (
	// ErrFrontierTooWide is a ConfigError: the input's elimination order
	// produces a frontier wider than the width cap (dpstate.MaxFrontier, or
	// a tighter Config.FrontierCap).
	ErrFrontierTooWide = errors.New("reliability: frontier width exceeds cap")

	// ErrNotNormalized is a NumericError: the final histogram's mass is
	// further from 1 than the configured epsilon.
	ErrNotNormalized = errors.New("reliability: histogram does not sum to 1 within tolerance")

	// ErrInvariant is the InternalError sentinel: something the pipeline's
	// own invariants guarantee could never happen, happened.
	ErrInvariant = errors.New("reliability: internal invariant violated")
)

// InputError wraps a malformed-input failure surfaced by relio, tagging it
// with the stage that produced it.
type InputError struct {
	Stage string
	Err   error
}

func (e InputError) Error() string {
	return fmt.Sprintf("reliability: input (%s): %v", e.Stage, e.Err)
}

func (e InputError) Unwrap() error {
	return e.Err
}

// ConfigError wraps a configuration-incompatible-with-input failure, e.g.
// the frontier width cap.
type ConfigError struct {
	Err error
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("reliability: config: %v", e.Err)
}

func (e ConfigError) Unwrap() error {
	return e.Err
}

// NumericError wraps a warn-only tolerance check failure; callers may
// choose to log and continue rather than abort, since it never indicates
// data corruption on its own.
type NumericError struct {
	Sum, Epsilon float64
}

func (e NumericError) Error() string {
	return fmt.Sprintf("reliability: numeric: histogram sums to %.15f, outside 1 +/- %g", e.Sum, e.Epsilon)
}

func (e NumericError) Unwrap() error {
	return ErrNotNormalized
}

// InternalError wraps a broken-invariant failure, reserved for conditions
// that signal a bug in this package rather than bad input or configuration.
type InternalError struct {
	Err error
}

func (e InternalError) Error() string {
	return fmt.Sprintf("reliability: internal: %v", e.Err)
}

func (e InternalError) Unwrap() error {
	return e.Err
}
