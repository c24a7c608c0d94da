package frontier

import "errors"

var (
	// ErrWidthExceeded is returned when the maximum frontier width exceeds
	// the configured cap; it is a ConfigError per spec §7, fatal to the run.
	ErrWidthExceeded = errors.New("frontier: maximum frontier width exceeds cap")
)

// MaxFrontier is the hard cap on simultaneous live frontier vertices F.
// States are encoded in fixed 16-byte arrays (dpstate.State); implementations
// that need a wider frontier must generalise that encoding and raise this
// cap accordingly.
const MaxFrontier = 16
