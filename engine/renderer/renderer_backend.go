package renderer

// RendererBackendType selects which GPU API drives the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU renders through WebGPU.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls when a finished frame reaches the display.
type PresentMode int

const (
	// PresentModeVSync holds each frame until the next vertical blank.
	// Frame rate is capped at the monitor refresh rate and tearing cannot occur.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped hands frames to the display as soon as they finish.
	// Lowest latency, but tearing is possible.
	PresentModeUncapped
)

// MSAASampleCount is the sample count for multisample anti-aliasing.
// WebGPU guarantees 1 and 4 on every adapter; 8 and 16 depend on hardware.
type MSAASampleCount uint32

const (
	// MSAAOff renders single-sampled.
	MSAAOff MSAASampleCount = 1

	// MSAA4x is the default sample count.
	MSAA4x MSAASampleCount = 4

	// MSAA8x is adapter-dependent.
	MSAA8x MSAASampleCount = 8

	// MSAA16x is adapter-dependent.
	MSAA16x MSAASampleCount = 16
)

// Valid reports whether c is one of the sample counts the backend accepts.
//
// Returns:
//   - bool: true for 1, 4, 8, or 16
func (c MSAASampleCount) Valid() bool {
	switch c {
	case MSAAOff, MSAA4x, MSAA8x, MSAA16x:
		return true
	}
	return false
}

// RendererBackend is what the Renderer drives each frame. It embeds the
// interface of the selected GPU API so the frontend stays API-agnostic.
type RendererBackend interface {
	wgpuRendererBackend
}
