package frontier

// Config holds Build's tunables, set via functional Options.
type Config struct {
	// WidthCap bounds the maximum simultaneous frontier width Build will
	// accept before returning ErrWidthExceeded. It can only tighten the
	// compiled-in MaxFrontier ceiling, never loosen it: dpstate.State packs
	// Comp/Numv into fixed MaxFrontier-length arrays, so a WidthCap above
	// MaxFrontier is clamped back down to MaxFrontier.
	WidthCap int
}

// Option configures a Config.
type Option func(*Config)

// DefaultOptions returns the compiled-in MaxFrontier as the width cap.
func DefaultOptions() Config {
	return Config{WidthCap: MaxFrontier}
}

// WithWidthCap overrides the frontier width cap Build enforces. Values
// above MaxFrontier are clamped to MaxFrontier; values <= 0 fall back to
// MaxFrontier as well.
func WithWidthCap(n int) Option {
	return func(c *Config) {
		if n <= 0 || n > MaxFrontier {
			n = MaxFrontier
		}
		c.WidthCap = n
	}
}
