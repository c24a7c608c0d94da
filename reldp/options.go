package reldp

// Config holds BuildLayers' tunables, set via functional Options.
type Config struct {
	// StateCap bounds the total number of interned states across every
	// layer; BuildLayers returns ErrStateCapExceeded once it would be
	// crossed. Zero means unbounded.
	StateCap int64
}

// Option configures a Config.
type Option func(*Config)

// DefaultOptions returns a zero-value Config, i.e. no state cap.
func DefaultOptions() Config {
	return Config{}
}

// WithStateCap sets the total interned-state ceiling.
func WithStateCap(n int64) Option {
	return func(c *Config) { c.StateCap = n }
}
