package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/wgltf-go/common"
	"github.com/stretchr/testify/assert"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()

	assert.True(t, obj.Enabled())
	sx, sy, sz := obj.Scale()
	assert.Equal(t, [3]float32{1, 1, 1}, [3]float32{sx, sy, sz})

	// identity transform with default state
	m := obj.ModelMatrix()
	assert.Equal(t, [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, m)
}

func TestGameObjectUpdateAdvancesRotation(t *testing.T) {
	obj := NewGameObject(WithRotationSpeed(0, 1, 0))

	obj.Update(0.5)
	obj.Update(0.5)

	_, ry, _ := obj.Rotation()
	assert.InDelta(t, 1.0, ry, 1e-6)
}

func TestGameObjectUpdateWithZeroSpeedIsStable(t *testing.T) {
	obj := NewGameObject(WithRotation(0.1, 0.2, 0.3))
	obj.Update(10)

	rx, ry, rz := obj.Rotation()
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, [3]float32{rx, ry, rz})
}

func TestGameObjectModelMatrixMatchesBuildModelMatrix(t *testing.T) {
	obj := NewGameObject(
		WithPosition(1, 2, 3),
		WithRotation(0.4, 0.5, 0.6),
		WithScale(2, 2, 2),
	)

	var expected [16]float32
	common.BuildModelMatrix(expected[:], 1, 2, 3, 0.4, 0.5, 0.6, 2, 2, 2)

	assert.Equal(t, expected, obj.ModelMatrix())
}

func TestGameObjectModelData(t *testing.T) {
	obj := NewGameObject(WithPosition(5, 0, 0))

	data := obj.ModelData()
	assert.Equal(t, obj.ModelMatrix(), data.Model)

	// translation lands in the fourth column
	assert.Equal(t, float32(5), data.Model[12])
}

func TestGameObjectSetEnabled(t *testing.T) {
	obj := NewGameObject(WithEnabled(false))
	assert.False(t, obj.Enabled())

	obj.SetEnabled(true)
	assert.True(t, obj.Enabled())
}
