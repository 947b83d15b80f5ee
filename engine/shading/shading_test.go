package shading

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBackgroundVertexLocalPositions(t *testing.T) {
	// With an identity proj_view the clip position is the generated local
	// position, so the index formula can be checked directly.
	want := [][2]float32{
		{0.5, -0.5},
		{0.0, 0.5},
		{-0.5, -0.5},
	}
	for index, pos := range want {
		clip, vertPos := BackgroundVertexStage(uint32(index), mgl32.Ident4())
		assert.InDelta(t, float64(pos[0]), float64(clip.X()), 1e-6, "index %d x", index)
		assert.InDelta(t, float64(pos[1]), float64(clip.Y()), 1e-6, "index %d y", index)
		assert.InDelta(t, 0.0, float64(clip.Z()), 1e-6, "index %d z", index)
		assert.InDelta(t, 1.0, float64(clip.W()), 1e-6, "index %d w", index)
		assert.Equal(t, clip.Vec3(), vertPos, "index %d varying", index)
	}
}

func TestBackgroundVertexVaryingIsUndividedClip(t *testing.T) {
	projView := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100).
		Mul4(mgl32.LookAtV(mgl32.Vec3{0, 1, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))

	clip, vertPos := BackgroundVertexStage(1, projView)
	// A perspective transform leaves w well away from 1, so an undivided
	// varying is distinguishable from a divided one.
	assert.Greater(t, math.Abs(float64(clip.W())-1.0), 1e-3)
	// The varying carries clip xyz as-is, with no divide by w.
	assert.Equal(t, clip.Vec3(), vertPos)
}

func TestBackgroundFragmentRedAndAlphaFixed(t *testing.T) {
	inputs := []struct {
		vertPos mgl32.Vec3
		time    float32
	}{
		{mgl32.Vec3{0, 0, 0}, 0},
		{mgl32.Vec3{-3, 7, 1}, 12.34},
		{mgl32.Vec3{100, -100, 50}, 0.999},
	}
	for _, in := range inputs {
		out := BackgroundFragmentStage(in.vertPos, in.time)
		assert.Equal(t, float32(0.5), out.X())
		assert.Equal(t, float32(1.0), out.W())
	}
}

func TestBackgroundFragmentGreenRamp(t *testing.T) {
	cases := []struct {
		y    float32
		want float64
	}{
		{-1.0, 0.4},
		{0.0, 0.4},
		{0.25, 0.9}, // smoothstep midpoint is exactly 0.5
		{0.5, 1.4},
		{2.0, 1.4},
	}
	for _, c := range cases {
		out := BackgroundFragmentStage(mgl32.Vec3{0, c.y, 0}, 0)
		assert.InDelta(t, c.want, float64(out.Y()), 1e-6, "y=%v", c.y)
	}
}

func TestBackgroundFragmentBluePeriodic(t *testing.T) {
	for _, time := range []float32{0.0, 1.0, 2.0} {
		out := BackgroundFragmentStage(mgl32.Vec3{}, time)
		assert.InDelta(t, 0.4, float64(out.Z()), 1e-6, "time=%v", time)
	}

	out := BackgroundFragmentStage(mgl32.Vec3{}, 0.5)
	assert.InDelta(t, 0.525, float64(out.Z()), 1e-6)

	// Period 1: the same phase at different whole offsets shades identically.
	a := BackgroundFragmentStage(mgl32.Vec3{}, 0.73)
	b := BackgroundFragmentStage(mgl32.Vec3{}, 3.73)
	assert.InDelta(t, float64(a.Z()), float64(b.Z()), 1e-5)
}

func TestMeshVertexIdentityPassThrough(t *testing.T) {
	pos := mgl32.Vec3{0.3, -0.7, 0.2}
	clip, _ := MeshVertexStage(pos, mgl32.Vec3{0, 0, 1}, mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4())
	assert.Equal(t, mgl32.Vec4{0.3, -0.7, 0.2, 1}, clip)
}

func TestMeshVertexNormalizesNormal(t *testing.T) {
	_, n := MeshVertexStage(mgl32.Vec3{}, mgl32.Vec3{0, 3, 0}, mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4())
	assert.InDelta(t, 0.0, float64(n.X()), 1e-6)
	assert.InDelta(t, 1.0, float64(n.Y()), 1e-6)
	assert.InDelta(t, 0.0, float64(n.Z()), 1e-6)
}

func TestMeshVertexNormalIgnoresTranslation(t *testing.T) {
	model := mgl32.Translate3D(10, -4, 2)
	_, n := MeshVertexStage(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, model, mgl32.Ident4(), mgl32.Ident4())
	assert.InDelta(t, 1.0, float64(n.X()), 1e-6)
	assert.InDelta(t, 0.0, float64(n.Y()), 1e-6)
	assert.InDelta(t, 0.0, float64(n.Z()), 1e-6)
}

func TestMeshFragmentParallelAndAntiParallel(t *testing.T) {
	params := DefaultLightParams()

	out := MeshFragmentStage(params.Direction, params)
	assert.InDelta(t, 1.1, float64(out.X()), 1e-6)
	assert.InDelta(t, 1.1, float64(out.Y()), 1e-6)
	assert.InDelta(t, 1.1, float64(out.Z()), 1e-6)
	assert.Equal(t, float32(1.0), out.W())

	out = MeshFragmentStage(params.Direction.Mul(-1), params)
	assert.InDelta(t, 0.1, float64(out.X()), 1e-6)
	assert.InDelta(t, 0.1, float64(out.Y()), 1e-6)
	assert.InDelta(t, 0.1, float64(out.Z()), 1e-6)
	assert.Equal(t, float32(1.0), out.W())
}

func TestMeshFragmentBackFacingClamp(t *testing.T) {
	params := DefaultLightParams()
	// Any normal in the hemisphere facing away from the light yields exactly
	// the ambient color.
	n := mgl32.Vec3{-0.25, -0.5, -1.0}.Add(mgl32.Vec3{0.1, 0, 0})
	out := MeshFragmentStage(n, params)
	if n.Normalize().Dot(params.Direction.Normalize()) < 0 {
		assert.InDelta(t, 0.1, float64(out.X()), 1e-6)
		assert.InDelta(t, 0.1, float64(out.Y()), 1e-6)
		assert.InDelta(t, 0.1, float64(out.Z()), 1e-6)
	}
}

func TestStagesAreIdempotent(t *testing.T) {
	projView := mgl32.Perspective(mgl32.DegToRad(45), 1.5, 0.1, 50).
		Mul4(mgl32.LookAtV(mgl32.Vec3{2, 2, 2}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))

	c1, v1 := BackgroundVertexStage(2, projView)
	c2, v2 := BackgroundVertexStage(2, projView)
	assert.Equal(t, c1, c2)
	assert.Equal(t, v1, v2)

	f1 := BackgroundFragmentStage(v1, 4.2)
	f2 := BackgroundFragmentStage(v1, 4.2)
	assert.Equal(t, f1, f2)

	params := DefaultLightParams()
	m1 := MeshFragmentStage(mgl32.Vec3{0.3, 0.3, 0.9}, params)
	m2 := MeshFragmentStage(mgl32.Vec3{0.3, 0.3, 0.9}, params)
	assert.Equal(t, m1, m2)
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, float32(0), Smoothstep(0, 1, -5))
	assert.Equal(t, float32(0), Smoothstep(0, 1, 0))
	assert.Equal(t, float32(0.5), Smoothstep(0, 1, 0.5))
	assert.Equal(t, float32(1), Smoothstep(0, 1, 1))
	assert.Equal(t, float32(1), Smoothstep(0, 1, 5))
}

func TestFract(t *testing.T) {
	assert.InDelta(t, 0.25, float64(Fract(3.25)), 1e-6)
	assert.InDelta(t, 0.0, float64(Fract(2.0)), 1e-6)
	assert.InDelta(t, 0.75, float64(Fract(-0.25)), 1e-6)
}
