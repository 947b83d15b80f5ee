package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBackground(t *testing.T) {
	bg := NewBackground("background")

	assert.Equal(t, "background", bg.PipelineKey())
	assert.Equal(t, uint32(3), bg.VertexCount())
	assert.True(t, bg.Enabled())
}

func TestBackgroundSetEnabled(t *testing.T) {
	bg := NewBackground("background")

	bg.SetEnabled(false)
	assert.False(t, bg.Enabled())
}
