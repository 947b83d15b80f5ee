// Package frame tracks per-frame global state: elapsed time, a monotonically
// increasing frame counter, and the current surface resolution. A Clock is
// advanced once per frame by the scene and snapshotted into a GPUFrameUniform
// for upload to the frame globals uniform buffer.
package frame

import "sync"

// clock is the implementation of the Clock interface.
type clock struct {
	mu sync.Mutex

	elapsed    float64
	frameCount uint32
	resolution [2]float32
}

// Clock accumulates frame timing and resolution state for the frame globals uniform.
type Clock interface {
	// Advance adds the elapsed time since the previous frame and increments the frame counter.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous frame, negative values are ignored
	Advance(dt float64)

	// SetResolution updates the surface resolution. Non-positive dimensions are ignored.
	//
	// Parameters:
	//   - width: the surface width in pixels
	//   - height: the surface height in pixels
	SetResolution(width, height int)

	// Time returns the total elapsed seconds accumulated by Advance.
	//
	// Returns:
	//   - float64: the elapsed time in seconds
	Time() float64

	// FrameCount returns the number of times Advance has been called.
	//
	// Returns:
	//   - uint32: the frame counter
	FrameCount() uint32

	// Snapshot returns the current state as a GPU-ready uniform value.
	//
	// Returns:
	//   - GPUFrameUniform: the frame globals at the time of the call
	Snapshot() GPUFrameUniform
}

var _ Clock = &clock{}

// NewClock creates a new frame Clock starting at time zero and frame zero.
//
// Parameters:
//   - options: variadic list of ClockBuilderOption functions to configure the Clock
//
// Returns:
//   - Clock: a new Clock instance
func NewClock(options ...ClockBuilderOption) Clock {
	c := &clock{
		resolution: [2]float32{1, 1},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *clock) Advance(dt float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dt < 0 {
		dt = 0
	}
	c.elapsed += dt
	c.frameCount++
}

func (c *clock) SetResolution(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if width <= 0 || height <= 0 {
		return
	}
	c.resolution[0] = float32(width)
	c.resolution[1] = float32(height)
}

func (c *clock) Time() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

func (c *clock) FrameCount() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameCount
}

func (c *clock) Snapshot() GPUFrameUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUFrameUniform{
		Resolution: c.resolution,
		Time:       float32(c.elapsed),
		Frame:      c.frameCount,
	}
}
