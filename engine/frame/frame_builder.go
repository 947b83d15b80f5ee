package frame

// ClockBuilderOption is a functional option applied to a clock during construction via NewClock.
type ClockBuilderOption func(*clock)

// WithResolution sets the initial surface resolution for the clock.
// Non-positive dimensions are ignored and the default of 1x1 is kept.
//
// Parameters:
//   - width: the surface width in pixels
//   - height: the surface height in pixels
//
// Returns:
//   - ClockBuilderOption: a function that applies the resolution option to a clock
func WithResolution(width, height int) ClockBuilderOption {
	return func(c *clock) {
		if width <= 0 || height <= 0 {
			return
		}
		c.resolution[0] = float32(width)
		c.resolution[1] = float32(height)
	}
}

// WithStartTime sets the initial elapsed time for the clock. Useful for
// resuming a deterministic animation from a known point.
//
// Parameters:
//   - seconds: the initial elapsed time in seconds
//
// Returns:
//   - ClockBuilderOption: a function that applies the start time option to a clock
func WithStartTime(seconds float64) ClockBuilderOption {
	return func(c *clock) {
		if seconds < 0 {
			return
		}
		c.elapsed = seconds
	}
}
