package reliability

// Config holds Solve's tunables, set via functional Options.
type Config struct {
	// Epsilon is the normalisation tolerance: the histogram must sum to 1
	// within this tolerance, or Solve returns a NumericError alongside the
	// (still usable) Result.
	Epsilon float64

	// StateCap bounds the total number of interned states across every
	// layer of the frontier DP; zero means unbounded. Forwarded to
	// reldp.WithStateCap.
	StateCap int64

	// FrontierCap bounds the maximum simultaneous frontier width Build will
	// accept; zero means the package default (frontier.MaxFrontier).
	// Forwarded to frontier.WithWidthCap. It can only tighten the
	// compiled-in ceiling, never loosen it.
	FrontierCap int
}

// Option configures a Config.
type Option func(*Config)

// DefaultOptions returns a 1e-9 normalisation tolerance, no state cap, and
// the package-default frontier width cap.
func DefaultOptions() Config {
	return Config{Epsilon: 1e-9}
}

// WithEpsilon overrides the normalisation tolerance.
func WithEpsilon(tol float64) Option {
	return func(c *Config) { c.Epsilon = tol }
}

// WithStateCap bounds the total interned-state count; see reldp.WithStateCap.
func WithStateCap(n int64) Option {
	return func(c *Config) { c.StateCap = n }
}

// WithFrontierCap bounds the maximum simultaneous frontier width; see
// frontier.WithWidthCap.
func WithFrontierCap(n int) Option {
	return func(c *Config) { c.FrontierCap = n }
}
