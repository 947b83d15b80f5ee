package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUCameraUniformSource is the canonical WGSL definition of the Camera struct.
// Matches GPUCameraUniform layout exactly (272 bytes, std430 aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL Camera struct layout exactly (see GPUCameraUniformSource).
// Both the combined and the split view/projection forms are carried in one
// buffer so each pipeline reads whichever it needs.
// Size: 272 bytes (std430 / WGSL aligned).
type GPUCameraUniform struct {
	ViewProj     [16]float32 // offset   0: combined view-projection matrix (mat4x4<f32>)
	Projection   [16]float32 // offset  64: projection matrix (mat4x4<f32>)
	View         [16]float32 // offset 128: view matrix (mat4x4<f32>)
	InvProj      [16]float32 // offset 192: inverse projection matrix (mat4x4<f32>)
	ViewPosition [3]float32  // offset 256: world-space camera position (vec3<f32>)
	_pad         float32     // offset 268: padding to 272 bytes
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (272)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Projection[i]))
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.View[i]))
		binary.LittleEndian.PutUint32(buf[192+i*4:], math.Float32bits(g.InvProj[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[256+i*4:], math.Float32bits(g.ViewPosition[i]))
	}
	binary.LittleEndian.PutUint32(buf[268:], 0) // _pad
	return buf
}

// BindGroupLayoutDescriptor returns the bind group layout descriptor for the camera
// uniform: a single uniform buffer at binding 0.
//
// Parameters:
//   - visibility: the shader stages the uniform is visible to
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor for the camera bind group
func BindGroupLayoutDescriptor(visibility wgpu.ShaderStage) wgpu.BindGroupLayoutDescriptor {
	var g GPUCameraUniform
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Camera Bind Group Layout",
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
