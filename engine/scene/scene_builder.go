package scene

import (
	"github.com/Carmen-Shannon/wgltf-go/engine/background"
	"github.com/Carmen-Shannon/wgltf-go/engine/frame"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithBackground sets the scene's procedural background drawable.
//
// Parameters:
//   - bg: the background drawable
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBackground(bg background.Background) SceneBuilderOption {
	return func(s *scene) {
		s.bg = bg
	}
}

// WithClock replaces the scene's default frame clock. Useful for starting
// a deterministic animation from a known time or resolution.
//
// Parameters:
//   - clock: the frame clock to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithClock(clock frame.Clock) SceneBuilderOption {
	return func(s *scene) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithUpdateWorkers sets the number of worker goroutines used during the
// parallel transform prep phase of Update. Defaults to runtime.NumCPU()-1.
// Higher values may improve throughput with many objects; lower values reduce
// scheduling overhead for simple scenes.
//
// Parameters:
//   - n: the number of update workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithUpdateWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.updateWorkers = n
	}
}
