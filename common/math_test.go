package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, m[i*4+j])
		}
	}
}

func TestMul4Identity(t *testing.T) {
	a := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	id := make([]float32, 16)
	Identity(id)

	out := make([]float32, 16)
	Mul4(out, a, id)
	assert.Equal(t, a, out)

	Mul4(out, id, a)
	assert.Equal(t, a, out)
}

func TestMul4Aliasing(t *testing.T) {
	a := []float32{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	}
	b := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		3, 4, 5, 1,
	}
	want := make([]float32, 16)
	Mul4(want, a, b)

	// Destination aliases the left operand.
	Mul4(a, a, b)
	assert.Equal(t, want, a)
}

func TestMulVec4Translation(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	m[12], m[13], m[14] = 1, 2, 3

	out := make([]float32, 4)
	MulVec4(out, m, []float32{5, 6, 7, 1})
	assert.InDelta(t, 6.0, out[0], 1e-6)
	assert.InDelta(t, 8.0, out[1], 1e-6)
	assert.InDelta(t, 10.0, out[2], 1e-6)
	assert.InDelta(t, 1.0, out[3], 1e-6)

	// Direction vectors (w=0) ignore translation.
	MulVec4(out, m, []float32{5, 6, 7, 0})
	assert.InDelta(t, 5.0, out[0], 1e-6)
	assert.InDelta(t, 6.0, out[1], 1e-6)
	assert.InDelta(t, 7.0, out[2], 1e-6)
	assert.InDelta(t, 0.0, out[3], 1e-6)
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 0.1, 100.0
	proj := make([]float32, 16)
	Perspective(proj, float32(math.Pi/4), 16.0/9.0, near, far)

	out := make([]float32, 4)

	// A point on the near plane maps to NDC depth 0.
	MulVec4(out, proj, []float32{0, 0, -near, 1})
	assert.InDelta(t, 0.0, float64(out[2]/out[3]), 1e-5)

	// A point on the far plane maps to NDC depth 1.
	MulVec4(out, proj, []float32{0, 0, -far, 1})
	assert.InDelta(t, 1.0, float64(out[2]/out[3]), 1e-4)
}

func TestInvert4RoundTrip(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 1, -2, 3, 0.3, 1.1, -0.7, 1, 1, 1)

	inv := make([]float32, 16)
	require.True(t, Invert4(inv, m))

	out := make([]float32, 16)
	Mul4(out, m, inv)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, float64(out[i*4+j]), 1e-5)
		}
	}
}

func TestInvert4Singular(t *testing.T) {
	m := make([]float32, 16) // all zeros
	out := make([]float32, 16)
	out[0] = 42
	assert.False(t, Invert4(out, m))
	assert.Equal(t, float32(42), out[0], "singular inverse must leave output untouched")
}

func TestLookAtTransformsEyeToOrigin(t *testing.T) {
	view := make([]float32, 16)
	LookAt(view, 3, 4, 5, 0, 0, 0, 0, 1, 0)

	out := make([]float32, 4)
	MulVec4(out, view, []float32{3, 4, 5, 1})
	assert.InDelta(t, 0.0, float64(out[0]), 1e-5)
	assert.InDelta(t, 0.0, float64(out[1]), 1e-5)
	assert.InDelta(t, 0.0, float64(out[2]), 1e-5)
}

func TestLookAtTargetOnNegativeZ(t *testing.T) {
	view := make([]float32, 16)
	LookAt(view, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	out := make([]float32, 4)
	MulVec4(out, view, []float32{0, 0, 0, 1})
	assert.InDelta(t, 0.0, float64(out[0]), 1e-5)
	assert.InDelta(t, 0.0, float64(out[1]), 1e-5)
	assert.InDelta(t, -5.0, float64(out[2]), 1e-5)
}

func TestBuildModelMatrixTranslationAndScale(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 1, 2, 3, 0, 0, 0, 2, 3, 4)

	out := make([]float32, 4)
	MulVec4(out, m, []float32{1, 1, 1, 1})
	assert.InDelta(t, 3.0, float64(out[0]), 1e-6)
	assert.InDelta(t, 5.0, float64(out[1]), 1e-6)
	assert.InDelta(t, 7.0, float64(out[2]), 1e-6)
}

func TestBuildModelMatrixRotationY(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, 0, float32(math.Pi/2), 0, 1, 1, 1)

	// A 90 degree yaw maps +X to -Z.
	out := make([]float32, 4)
	MulVec4(out, m, []float32{1, 0, 0, 1})
	assert.InDelta(t, 0.0, float64(out[0]), 1e-6)
	assert.InDelta(t, 0.0, float64(out[1]), 1e-6)
	assert.InDelta(t, -1.0, float64(out[2]), 1e-6)
}

func TestSliceToBytes(t *testing.T) {
	data := []uint32{0x04030201, 0x08070605}
	b := SliceToBytes(data)
	require.Len(t, b, 8)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b)

	assert.Nil(t, SliceToBytes([]uint32(nil)))
}
