// Package background provides the drawable for the full-screen procedural
// pass: a single generated triangle with no vertex buffers, drawn before any
// mesh so it fills the frame behind the scene.
package background

type background struct {
	pipelineKey string
	enabled     bool
}

// Background defines the interface for the procedural background drawable.
type Background interface {
	// PipelineKey returns the key of the render pipeline the background draws with.
	//
	// Returns:
	//   - string: the render pipeline key
	PipelineKey() string

	// VertexCount returns the number of vertex invocations for the generated
	// triangle. Always 3.
	//
	// Returns:
	//   - uint32: the vertex count
	VertexCount() uint32

	// Enabled returns whether the background pass is drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the background pass is drawn.
	//
	// Parameters:
	//   - enabled: true to draw the background
	SetEnabled(enabled bool)
}

var _ Background = &background{}

// NewBackground creates a new Background drawable for the given pipeline key.
// The background starts enabled.
//
// Parameters:
//   - pipelineKey: the key of the registered background render pipeline
//
// Returns:
//   - Background: the new background drawable
func NewBackground(pipelineKey string) Background {
	return &background{
		pipelineKey: pipelineKey,
		enabled:     true,
	}
}

func (b *background) PipelineKey() string {
	return b.pipelineKey
}

func (b *background) VertexCount() uint32 {
	return 3
}

func (b *background) Enabled() bool {
	return b.enabled
}

func (b *background) SetEnabled(enabled bool) {
	b.enabled = enabled
}
