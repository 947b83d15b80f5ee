package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithVertexLayout sets the vertex buffer layout for a specific slot.
// Only meaningful for vertex shaders; fragment shaders have no vertex inputs.
//
// Parameters:
//   - slot: the vertex buffer slot index
//   - layout: the vertex buffer layouts to bind at that slot
//
// Returns:
//   - ShaderBuilderOption: a function that sets the vertex layout for the slot
func WithVertexLayout(slot int, layout []wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts[slot] = layout
	}
}

// WithBindGroupLayoutDescriptor declares the bind group layout for a specific group index.
// Descriptors for the same group from the vertex and fragment stages of one pipeline are
// merged by the renderer during pipeline registration.
//
// Parameters:
//   - group: the bind group index
//   - descriptor: the layout descriptor for the group
//
// Returns:
//   - ShaderBuilderOption: a function that sets the descriptor for the group
func WithBindGroupLayoutDescriptor(group int, descriptor wgpu.BindGroupLayoutDescriptor) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = descriptor
	}
}
