package profiler

import "time"

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets the reporting interval. Non-positive values are ignored.
//
// Parameters:
//   - interval: time between log reports
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if interval <= 0 {
			return
		}
		p.interval = interval
	}
}
