package frame

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUFrameUniformSource is the canonical WGSL definition of the Globals struct.
// Matches GPUFrameUniform layout exactly (16 bytes, std430 aligned).
//
//go:embed assets/frame_uniform.wgsl
var GPUFrameUniformSource string

// GPUFrameUniform is the GPU-aligned representation of the per-frame globals uniform buffer.
// Matches the WGSL Globals struct layout exactly (see GPUFrameUniformSource).
// Size: 16 bytes (std430 / WGSL aligned).
type GPUFrameUniform struct {
	Resolution [2]float32 // offset  0: surface size in pixels (vec2<f32>)
	Time       float32    // offset  8: elapsed seconds since start (f32)
	Frame      uint32     // offset 12: frame counter (u32)
}

// Size returns the size of the GPUFrameUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUFrameUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFrameUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUFrameUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(g.Resolution[0]))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(g.Resolution[1]))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[12:], g.Frame)
	return buf
}

// BindGroupLayoutDescriptor returns the bind group layout descriptor for the frame
// globals uniform: a single uniform buffer at binding 0.
//
// Parameters:
//   - visibility: the shader stages the uniform is visible to
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor for the frame uniform bind group
func BindGroupLayoutDescriptor(visibility wgpu.ShaderStage) wgpu.BindGroupLayoutDescriptor {
	var g GPUFrameUniform
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Frame Globals Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: visibility,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(g.Size()),
				},
			},
		},
	}
}
