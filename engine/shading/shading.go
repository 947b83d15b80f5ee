// Package shading holds the canonical WGSL sources for the two render
// pipelines (procedural background and lit mesh) together with a CPU
// reference implementation of their vertex and fragment stages. The Go
// functions mirror the WGSL stage-for-stage so the numeric contract of the
// shaders can be exercised without a GPU.
package shading

import (
	_ "embed"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// BackgroundShaderSource is the WGSL module for the procedural background
// pipeline. It draws a single index-generated triangle with no vertex buffer
// and shades it with a fixed gradient plus a time-animated blue channel.
//
//go:embed assets/background.wgsl
var BackgroundShaderSource string

// MeshShaderSource is the WGSL module for the mesh lighting pipeline.
// It transforms position/normal vertices through model, view, and projection
// and shades fragments with a single directional light plus an ambient term.
//
//go:embed assets/mesh.wgsl
var MeshShaderSource string

// LightParams is the immutable lighting configuration consumed by the mesh
// fragment stage. Color is carried in the contract but not folded into the
// output; it is reserved for future tinting.
type LightParams struct {
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Ambient   mgl32.Vec3
}

// DefaultLightParams returns the lighting configuration baked into the mesh
// shader module: a fixed directional light, white light color, and a flat
// 0.1 ambient term.
//
// Returns:
//   - LightParams: the default lighting configuration
func DefaultLightParams() LightParams {
	return LightParams{
		Direction: mgl32.Vec3{0.25, 0.5, 1.0},
		Color:     mgl32.Vec3{1.0, 1.0, 1.0},
		Ambient:   mgl32.Vec3{0.1, 0.1, 0.1},
	}
}

// Smoothstep performs cubic Hermite interpolation between two edges,
// matching the WGSL smoothstep builtin: 0 for x <= edge0, 1 for x >= edge1,
// and a smooth cubic ramp in between.
//
// Parameters:
//   - edge0: lower edge of the interpolation range
//   - edge1: upper edge of the interpolation range
//   - x: input value
//
// Returns:
//   - float32: interpolated value in [0, 1]
func Smoothstep(edge0, edge1, x float32) float32 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// Fract returns the fractional part of x, matching the WGSL fract builtin
// (x - floor(x)).
//
// Parameters:
//   - x: input value
//
// Returns:
//   - float32: fractional part in [0, 1)
func Fract(x float32) float32 {
	return x - float32(math.Floor(float64(x)))
}

// BackgroundVertexStage evaluates the background vertex shader for one
// invocation. Positions are generated from the vertex index alone: the three
// indices 0, 1, 2 yield the local positions (0.5, -0.5), (0, 0.5), and
// (-0.5, -0.5), which are then carried through the combined projection-view
// transform.
//
// The vertPos varying is the clip position's xyz without the homogeneous
// divide. Downstream shading consumes it exactly as produced.
//
// Parameters:
//   - index: vertex index in {0, 1, 2}
//   - projView: combined projection * view matrix
//
// Returns:
//   - mgl32.Vec4: clip-space position
//   - mgl32.Vec3: the vert_pos varying (clip xyz, undivided)
func BackgroundVertexStage(index uint32, projView mgl32.Mat4) (mgl32.Vec4, mgl32.Vec3) {
	x := (1 - float32(int32(index))) * 0.5
	y := float32(index&1) - 0.5
	clip := projView.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return clip, clip.Vec3()
}

// BackgroundFragmentStage evaluates the background fragment shader for one
// invocation. The red channel is fixed at 0.5, green ramps with the varying's
// y component, and blue is a sawtooth over time with period 1.
//
// Parameters:
//   - vertPos: the interpolated vert_pos varying
//   - time: elapsed time in seconds from the frame uniform block
//
// Returns:
//   - mgl32.Vec4: opaque RGBA color
func BackgroundFragmentStage(vertPos mgl32.Vec3, time float32) mgl32.Vec4 {
	green := 0.4 + Smoothstep(0, 0.5, vertPos.Y())
	blue := 0.4 + 0.25*Fract(time)
	return mgl32.Vec4{0.5, green, blue, 1}
}

// MeshVertexStage evaluates the mesh vertex shader for one invocation.
// The position is taken through model, then view, then projection. The
// normal is transformed by the linear part of view * model and renormalized;
// no inverse-transpose correction is applied, so lighting is only correct
// when model and view carry no non-uniform scale.
//
// Parameters:
//   - position: object-space vertex position
//   - normal: object-space vertex normal (need not be unit length)
//   - model: object-to-world transform
//   - view: world-to-view transform
//   - projection: view-to-clip transform
//
// Returns:
//   - mgl32.Vec4: clip-space position
//   - mgl32.Vec3: normalized view-space normal varying
func MeshVertexStage(position, normal mgl32.Vec3, model, view, projection mgl32.Mat4) (mgl32.Vec4, mgl32.Vec3) {
	worldPos := model.Mul4x1(position.Vec4(1))
	clip := projection.Mul4(view).Mul4x1(worldPos)
	viewNormal := view.Mul4(model).Mul4x1(normal.Vec4(0)).Vec3().Normalize()
	return clip, viewNormal
}

// MeshFragmentStage evaluates the mesh fragment shader for one invocation.
// The interpolated normal is renormalized, then a Lambertian term against
// the light direction is added uniformly to the ambient color. The result
// may exceed 1.0 per channel; clamping is the output target's concern.
//
// Parameters:
//   - normal: the interpolated view-space normal varying
//   - params: lighting configuration (see DefaultLightParams)
//
// Returns:
//   - mgl32.Vec4: opaque RGBA color
func MeshFragmentStage(normal mgl32.Vec3, params LightParams) mgl32.Vec4 {
	n := normal.Normalize()
	l := params.Direction.Normalize()
	nDotL := n.Dot(l)
	if nDotL < 0 {
		nDotL = 0
	}
	rgb := params.Ambient.Add(mgl32.Vec3{nDotL, nDotL, nDotL})
	return rgb.Vec4(1)
}
