package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVertexSource = `
@group(0) @binding(0)
var<uniform> globals: Globals;

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0);
}
`

const testFragmentSource = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0);
}
`

func TestNewShaderParsesEntryPoints(t *testing.T) {
	vs := NewShader("test_vs", ShaderTypeVertex, testVertexSource)
	assert.Equal(t, "vs_main", vs.EntryPoint())
	assert.Equal(t, ShaderTypeVertex, vs.ShaderType())

	fs := NewShader("test_fs", ShaderTypeFragment, testFragmentSource)
	assert.Equal(t, "fs_main", fs.EntryPoint())
	assert.Equal(t, ShaderTypeFragment, fs.ShaderType())
}

func TestNewShaderModuleDescriptor(t *testing.T) {
	s := NewShader("test_vs", ShaderTypeVertex, testVertexSource)
	require.NotNil(t, s.Module())
	assert.Equal(t, "test_vs", s.Module().Label)
	assert.Equal(t, testVertexSource, s.Module().WGSLDescriptor.Code)
	assert.Equal(t, testVertexSource, s.Source())
}

func TestNewShaderPanicsOnMissingEntryPoint(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("bad", ShaderTypeVertex, testFragmentSource)
	})
	assert.Panics(t, func() {
		NewShader("empty", ShaderTypeFragment, "")
	})
}

func TestWithBindGroupLayoutDescriptor(t *testing.T) {
	desc := wgpu.BindGroupLayoutDescriptor{
		Label: "Globals Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 16,
				},
			},
		},
	}
	s := NewShader("test_vs", ShaderTypeVertex, testVertexSource,
		WithBindGroupLayoutDescriptor(0, desc),
	)
	got := s.BindGroupLayoutDescriptor(0)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, uint64(16), got.Entries[0].Buffer.MinBindingSize)
	assert.Len(t, s.BindGroupLayoutDescriptors(), 1)
}

func TestWithVertexLayout(t *testing.T) {
	layout := []wgpu.VertexBufferLayout{
		{
			ArrayStride: 24,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			},
		},
	}
	s := NewShader("test_vs", ShaderTypeVertex, testVertexSource,
		WithVertexLayout(0, layout),
	)
	got := s.VertexLayout(0)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(24), got[0].ArrayStride)
	assert.Nil(t, s.VertexLayout(1))
}
