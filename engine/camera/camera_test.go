package camera

import (
	"encoding/binary"
	stdmath "math"
	"testing"

	"github.com/Carmen-Shannon/wgltf-go/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraViewProjIsProjectionTimesView(t *testing.T) {
	cam := NewCamera(
		WithAspect(16.0/9.0),
		WithController(NewCameraController(WithRadius(5))),
	)

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	viewProj := cam.ViewProjectionMatrix()

	var expected [16]float32
	common.Mul4(expected[:], proj[:], view[:])

	for i := range 16 {
		assert.InDelta(t, expected[i], viewProj[i], 1e-5, "element %d", i)
	}
}

func TestCameraInverseProjectionRoundTrip(t *testing.T) {
	cam := NewCamera(
		WithAspect(1.5),
		WithController(NewCameraController()),
	)

	proj := cam.ProjectionMatrix()
	invProj := cam.InverseProjectionMatrix()

	var product [16]float32
	common.Mul4(product[:], invProj[:], proj[:])

	identity := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	for i := range 16 {
		assert.InDelta(t, identity[i], product[i], 1e-4, "element %d", i)
	}
}

func TestCameraUniformSnapshot(t *testing.T) {
	ctrl := NewCameraController(WithRadius(10), WithAzimuth(0), WithElevation(0))
	cam := NewCamera(WithController(ctrl))

	u := cam.Uniform()
	assert.Equal(t, cam.ViewProjectionMatrix(), u.ViewProj)
	assert.Equal(t, cam.ProjectionMatrix(), u.Projection)
	assert.Equal(t, cam.ViewMatrix(), u.View)
	assert.Equal(t, cam.InverseProjectionMatrix(), u.InvProj)

	px, py, pz := ctrl.Position()
	assert.Equal(t, [3]float32{px, py, pz}, u.ViewPosition)
}

func TestCameraSetAspectRecomputesMatrices(t *testing.T) {
	cam := NewCamera(WithController(NewCameraController()))
	before := cam.ProjectionMatrix()

	cam.SetAspect(2.0)
	after := cam.ProjectionMatrix()

	assert.NotEqual(t, before, after)
}

func TestGPUCameraUniformSize(t *testing.T) {
	var g GPUCameraUniform
	assert.Equal(t, 272, g.Size())
}

func TestGPUCameraUniformMarshalOffsets(t *testing.T) {
	g := GPUCameraUniform{}
	for i := range 16 {
		g.ViewProj[i] = float32(i)
		g.Projection[i] = float32(100 + i)
		g.View[i] = float32(200 + i)
		g.InvProj[i] = float32(300 + i)
	}
	g.ViewPosition = [3]float32{7, 8, 9}

	buf := g.Marshal()
	require.Len(t, buf, 272)

	readFloat := func(offset int) float32 {
		return stdmath.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}

	assert.Equal(t, float32(0), readFloat(0))
	assert.Equal(t, float32(15), readFloat(15*4))
	assert.Equal(t, float32(100), readFloat(64))
	assert.Equal(t, float32(200), readFloat(128))
	assert.Equal(t, float32(300), readFloat(192))
	assert.Equal(t, float32(7), readFloat(256))
	assert.Equal(t, float32(9), readFloat(264))
	assert.Equal(t, float32(0), readFloat(268)) // padding
}

func TestGPUCameraUniformMarshalIdempotent(t *testing.T) {
	g := GPUCameraUniform{ViewPosition: [3]float32{1, 2, 3}}
	assert.Equal(t, g.Marshal(), g.Marshal())
}

func TestControllerOrbitKeepsRadius(t *testing.T) {
	ctrl := NewCameraController(WithRadius(5), WithTarget(0, 0, 0))

	for range 10 {
		ctrl.OrbitLeft()
	}

	px, py, pz := ctrl.Position()
	dist := stdmath.Sqrt(float64(px*px + py*py + pz*pz))
	assert.InDelta(t, 5.0, dist, 1e-4)
}

func TestControllerZoomClampsToBounds(t *testing.T) {
	ctrl := NewCameraController(WithRadius(5), WithRadiusBounds(1, 10), WithZoomSpeed(1))

	ctrl.Zoom(100)
	assert.Equal(t, float32(1), ctrl.Radius())

	ctrl.Zoom(-100)
	assert.Equal(t, float32(10), ctrl.Radius())
}

func TestControllerElevationClamps(t *testing.T) {
	ctrl := NewCameraController()

	for range 1000 {
		ctrl.OrbitUp()
	}
	assert.InDelta(t, ctrl.MaxElevation(), ctrl.Elevation(), 1e-6)

	for range 1000 {
		ctrl.OrbitDown()
	}
	assert.InDelta(t, ctrl.MinElevation(), ctrl.Elevation(), 1e-6)
}

func TestControllerPanShiftsTargetAndPosition(t *testing.T) {
	ctrl := NewCameraController(WithRadius(5), WithElevation(0), WithAzimuth(0), WithPanSpeed(1))

	tx0, ty0, tz0 := ctrl.Target()
	px0, py0, pz0 := ctrl.Position()

	ctrl.PanRight(2)

	tx1, ty1, tz1 := ctrl.Target()
	px1, py1, pz1 := ctrl.Position()

	// target and position move by the same offset, preserving the orbit
	assert.InDelta(t, tx1-tx0, px1-px0, 1e-5)
	assert.InDelta(t, ty1-ty0, py1-py0, 1e-5)
	assert.InDelta(t, tz1-tz0, pz1-pz0, 1e-5)
	assert.NotEqual(t, [3]float32{tx0, ty0, tz0}, [3]float32{tx1, ty1, tz1})
}

func TestGPUCameraUniformSourceDeclaresLayoutFields(t *testing.T) {
	// The embedded WGSL is the canonical Camera declaration; keep its fields
	// in lockstep with the Go struct's layout.
	assert.Contains(t, GPUCameraUniformSource, "struct Camera")
	assert.Contains(t, GPUCameraUniformSource, "proj_view: mat4x4<f32>")
	assert.Contains(t, GPUCameraUniformSource, "projection: mat4x4<f32>")
	assert.Contains(t, GPUCameraUniformSource, "view: mat4x4<f32>")
	assert.Contains(t, GPUCameraUniformSource, "inv_proj: mat4x4<f32>")
	assert.Contains(t, GPUCameraUniformSource, "view_pos: vec3<f32>")
}
