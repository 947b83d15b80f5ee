package frame

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockAdvanceAccumulates(t *testing.T) {
	c := NewClock()
	c.Advance(0.016)
	c.Advance(0.016)
	c.Advance(0.016)

	assert.InDelta(t, 0.048, c.Time(), 1e-9)
	assert.Equal(t, uint32(3), c.FrameCount())
}

func TestClockAdvanceIgnoresNegativeDelta(t *testing.T) {
	c := NewClock()
	c.Advance(1.0)
	c.Advance(-5.0)

	// Time never decreases, but the frame counter still advances.
	assert.InDelta(t, 1.0, c.Time(), 1e-9)
	assert.Equal(t, uint32(2), c.FrameCount())
}

func TestClockSetResolution(t *testing.T) {
	c := NewClock(WithResolution(800, 600))
	snap := c.Snapshot()
	assert.Equal(t, [2]float32{800, 600}, snap.Resolution)

	c.SetResolution(1920, 1080)
	snap = c.Snapshot()
	assert.Equal(t, [2]float32{1920, 1080}, snap.Resolution)

	// invalid dimensions leave the previous resolution intact
	c.SetResolution(0, -4)
	snap = c.Snapshot()
	assert.Equal(t, [2]float32{1920, 1080}, snap.Resolution)
}

func TestClockWithStartTime(t *testing.T) {
	c := NewClock(WithStartTime(10))
	c.Advance(0.5)
	assert.InDelta(t, 10.5, c.Time(), 1e-9)
}

func TestClockSnapshot(t *testing.T) {
	c := NewClock(WithResolution(640, 480))
	c.Advance(2.5)

	snap := c.Snapshot()
	assert.Equal(t, float32(2.5), snap.Time)
	assert.Equal(t, uint32(1), snap.Frame)
	assert.Equal(t, [2]float32{640, 480}, snap.Resolution)
}

func TestGPUFrameUniformSize(t *testing.T) {
	var g GPUFrameUniform
	assert.Equal(t, 16, g.Size())
}

func TestGPUFrameUniformMarshal(t *testing.T) {
	g := GPUFrameUniform{
		Resolution: [2]float32{1280, 720},
		Time:       3.25,
		Frame:      42,
	}

	buf := g.Marshal()
	require.Len(t, buf, 16)

	assert.Equal(t, float32(1280), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	assert.Equal(t, float32(720), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])))
	assert.Equal(t, float32(3.25), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])))
	assert.Equal(t, uint32(42), binary.LittleEndian.Uint32(buf[12:]))
}

func TestBindGroupLayoutDescriptor(t *testing.T) {
	desc := BindGroupLayoutDescriptor(wgpu.ShaderStageVertex | wgpu.ShaderStageFragment)
	require.Len(t, desc.Entries, 1)

	entry := desc.Entries[0]
	assert.Equal(t, uint32(0), entry.Binding)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, entry.Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entry.Buffer.Type)
	assert.Equal(t, uint64(16), entry.Buffer.MinBindingSize)
}

func TestGPUFrameUniformSourceDeclaresLayoutFields(t *testing.T) {
	// The embedded WGSL is the canonical Globals declaration; keep its fields
	// in lockstep with the Go struct's layout.
	assert.Contains(t, GPUFrameUniformSource, "struct Globals")
	assert.Contains(t, GPUFrameUniformSource, "resolution: vec2<f32>")
	assert.Contains(t, GPUFrameUniformSource, "time: f32")
	assert.Contains(t, GPUFrameUniformSource, "frame: u32")
}
