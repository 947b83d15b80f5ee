package model

import (
	"encoding/binary"
	stdmath "math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUVertexSize(t *testing.T) {
	var v GPUVertex
	assert.Equal(t, 24, v.Size())
}

func TestGPUVertexMarshal(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
	}

	buf := v.Marshal()
	require.Len(t, buf, 24)

	readFloat := func(offset int) float32 {
		return stdmath.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	assert.Equal(t, float32(1), readFloat(0))
	assert.Equal(t, float32(3), readFloat(8))
	assert.Equal(t, float32(0), readFloat(12))
	assert.Equal(t, float32(1), readFloat(16))
}

func TestMarshalVertices(t *testing.T) {
	vertices := []GPUVertex{
		{Position: [3]float32{1, 0, 0}},
		{Position: [3]float32{0, 2, 0}},
	}

	buf := MarshalVertices(vertices)
	require.Len(t, buf, 48)

	// second vertex starts at the 24-byte stride boundary
	y := stdmath.Float32frombits(binary.LittleEndian.Uint32(buf[28:]))
	assert.Equal(t, float32(2), y)
}

func TestMarshalVerticesMatchesPerVertexMarshal(t *testing.T) {
	vertices := []GPUVertex{
		{Position: [3]float32{0.5, -0.5, 0}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{-1, 2, 3}, Normal: [3]float32{0, 1, 0}},
	}

	buf := MarshalVertices(vertices)
	require.Len(t, buf, 48)

	// The reinterpreted slice must be byte-identical to the explicit
	// little-endian encoding.
	for i := range vertices {
		assert.Equal(t, vertices[i].Marshal(), buf[i*24:(i+1)*24], "vertex %d", i)
	}
}

func TestVertexBufferLayout(t *testing.T) {
	layout := VertexBufferLayout()

	assert.Equal(t, uint64(24), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout.StepMode)
	require.Len(t, layout.Attributes, 2)

	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[0].Format)
	assert.Equal(t, uint64(0), layout.Attributes[0].Offset)
	assert.Equal(t, uint32(0), layout.Attributes[0].ShaderLocation)

	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[1].Format)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset)
	assert.Equal(t, uint32(1), layout.Attributes[1].ShaderLocation)
}

func TestComputeBoundingRadius(t *testing.T) {
	vertices := []GPUVertex{
		{Position: [3]float32{0.5, -0.5, 0.5}},
		{Position: [3]float32{3, 4, 0}},
		{Position: [3]float32{0, 0, 0}},
	}
	assert.InDelta(t, 5.0, ComputeBoundingRadius(vertices), 1e-5)

	assert.Equal(t, float32(0), ComputeBoundingRadius(nil))
}

func TestGPUModelDataMarshal(t *testing.T) {
	var d GPUModelData
	for i := range 16 {
		d.Model[i] = float32(i)
	}

	buf := d.Marshal()
	require.Len(t, buf, 64)
	assert.Equal(t, 64, d.Size())

	last := stdmath.Float32frombits(binary.LittleEndian.Uint32(buf[60:]))
	assert.Equal(t, float32(15), last)
}

func TestModelBindGroupLayoutDescriptor(t *testing.T) {
	desc := BindGroupLayoutDescriptor(wgpu.ShaderStageVertex)
	require.Len(t, desc.Entries, 1)
	assert.Equal(t, uint32(0), desc.Entries[0].Binding)
	assert.Equal(t, uint64(64), desc.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, desc.Entries[0].Buffer.Type)
}

func TestNewModelWithVerticesAndIndices(t *testing.T) {
	vertices := []GPUVertex{
		{Position: [3]float32{0.5, -0.5, 0}},
		{Position: [3]float32{0, 0.5, 0}},
		{Position: [3]float32{-0.5, -0.5, 0}},
	}
	m := NewModel(
		WithName("tri"),
		WithPipelineKey("mesh"),
		WithVertices(vertices),
		WithIndices([]uint32{0, 1, 2}),
	)

	assert.Equal(t, "tri", m.Name())
	assert.Equal(t, "mesh", m.PipelineKey())
	assert.Len(t, m.VertexData(), 72)
	assert.Len(t, m.IndexData(), 12)
	assert.Equal(t, 3, m.IndexCount())
	assert.InDelta(t, float32(stdmath.Sqrt(0.5)), m.BoundingRadius(), 1e-5)

	// index data is little-endian uint32
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(m.IndexData()[4:]))
}

func TestEmbeddedSourcesDeclareLayoutFields(t *testing.T) {
	// The embedded WGSL snippets are the canonical declarations for the mesh
	// vertex input and the per-object uniform; keep them in lockstep with the
	// Go structs' layouts.
	assert.Contains(t, GPUVertexSource, "struct VertexInput")
	assert.Contains(t, GPUVertexSource, "@location(0) position: vec3<f32>")
	assert.Contains(t, GPUVertexSource, "@location(1) normal: vec3<f32>")

	assert.Contains(t, GPUModelDataSource, "struct ModelData")
	assert.Contains(t, GPUModelDataSource, "model: mat4x4<f32>")
}
