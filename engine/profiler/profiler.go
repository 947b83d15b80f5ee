// Package profiler provides a lightweight render-loop monitor: call Tick once
// per frame and it periodically logs frame rate, frame time, and Go heap/GC
// statistics.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler accumulates per-frame samples and emits one log line per reporting
// interval. Not safe for concurrent use; drive it from the render goroutine.
type Profiler struct {
	frames      int
	windowStart time.Time
	interval    time.Duration

	mem            runtime.MemStats
	prevTotalAlloc uint64
}

// NewProfiler creates a Profiler with the provided options applied.
// The reporting interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		windowStart: time.Now(),
		interval:    time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Tick records one frame and, when a full reporting interval has elapsed,
// logs the interval's frames per second, mean frame time, live heap size,
// allocation rate, GC cycle count with the most recent pause, and the
// process memory footprint.
//
// Returns:
//   - bool: true if a report was logged this tick
func (p *Profiler) Tick() bool {
	p.frames++
	now := time.Now()
	elapsed := now.Sub(p.windowStart)
	if elapsed < p.interval {
		return false
	}

	fps := float64(p.frames) / elapsed.Seconds()
	frameMs := elapsed.Seconds() * 1000 / float64(p.frames)

	runtime.ReadMemStats(&p.mem)
	heapMB := float64(p.mem.Alloc) / (1 << 20)
	sysMB := float64(p.mem.Sys) / (1 << 20)

	// TotalAlloc only grows, so the delta over the window is the churn rate.
	allocRateMB := float64(p.mem.TotalAlloc-p.prevTotalAlloc) / (1 << 20) / elapsed.Seconds()

	var lastPauseUs uint64
	if p.mem.NumGC > 0 {
		// PauseNs is a 256-entry ring indexed by GC cycle.
		lastPauseUs = p.mem.PauseNs[(p.mem.NumGC-1)%256] / 1000
	}

	log.Printf("[Profiler] %.1f fps (%.2f ms/frame) | heap %.2f MB | alloc %.2f MB/s | GC %d (last %d µs) | sys %.2f MB",
		fps, frameMs, heapMB, allocRateMB, p.mem.NumGC, lastPauseUs, sysMB)

	p.frames = 0
	p.windowStart = now
	p.prevTotalAlloc = p.mem.TotalAlloc
	return true
}
