package scene

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/wgltf-go/engine/background"
	"github.com/Carmen-Shannon/wgltf-go/engine/camera"
	"github.com/Carmen-Shannon/wgltf-go/engine/game_object"
	"github.com/Carmen-Shannon/wgltf-go/engine/model"
	"github.com/Carmen-Shannon/wgltf-go/engine/renderer"
	"github.com/Carmen-Shannon/wgltf-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/wgltf-go/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRenderer is a renderer stub that records buffer writes and draw
// invocations so scene behavior can be verified without a GPU. Recording is
// mutex-guarded so scenes can be driven from multiple goroutines in tests.
type recordingRenderer struct {
	mu        sync.Mutex
	writes    [][]bind_group_provider.BufferWrite
	draws     []recordedDraw
	drawCalls []recordedDrawCall
	meshInits int
	bindInits int
}

type recordedDraw struct {
	pipelineKey   string
	vertexCount   uint32
	instanceCount uint32
	bindGroups    int
}

type recordedDrawCall struct {
	pipelineKey string
	bindGroups  int
}

var _ renderer.Renderer = &recordingRenderer{}

func (r *recordingRenderer) Pipeline(key string) pipeline.Pipeline      { return nil }
func (r *recordingRenderer) Pipelines() map[string]pipeline.Pipeline    { return nil }
func (r *recordingRenderer) RegisterPipelines(...pipeline.Pipeline) error { return nil }
func (r *recordingRenderer) SetPipeline(string, pipeline.Pipeline)      {}
func (r *recordingRenderer) SetPipelines(map[string]pipeline.Pipeline)  {}
func (r *recordingRenderer) Resize(int, int)                            {}
func (r *recordingRenderer) SetPresentMode(renderer.PresentMode)        {}
func (r *recordingRenderer) BeginFrame() error                          { return nil }
func (r *recordingRenderer) EndFrame()                                  {}
func (r *recordingRenderer) Present()                                   {}

func (r *recordingRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meshInits++
	provider.SetIndexCount(indexCount)
	return nil
}

func (r *recordingRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, usageOverrides map[int]wgpu.BufferUsage, sizeOverrides map[int]uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindInits++
	return nil
}

func (r *recordingRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := make([]bind_group_provider.BufferWrite, len(writes))
	copy(copied, writes)
	r.writes = append(r.writes, copied)
}

func (r *recordingRenderer) Draw(pipelineKey string, vertexCount, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draws = append(r.draws, recordedDraw{pipelineKey, vertexCount, instanceCount, len(bindGroups)})
	return nil
}

func (r *recordingRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drawCalls = append(r.drawCalls, recordedDrawCall{pipelineKey, len(bindGroups)})
	return nil
}

func newTestCamera() camera.Camera {
	return camera.NewCamera(
		camera.WithController(camera.NewCameraController()),
	)
}

func newTestObject(name string) game_object.GameObject {
	mdl := model.NewModel(
		model.WithName(name),
		model.WithPipelineKey("mesh"),
		model.WithMeshProvider(bind_group_provider.NewBindGroupProvider(name+"_mesh")),
		model.WithVertices([]model.GPUVertex{
			{Position: [3]float32{0.5, -0.5, 0}, Normal: [3]float32{0, 0, 1}},
			{Position: [3]float32{0, 0.5, 0}, Normal: [3]float32{0, 0, 1}},
			{Position: [3]float32{-0.5, -0.5, 0}, Normal: [3]float32{0, 0, 1}},
		}),
		model.WithIndices([]uint32{0, 1, 2}),
	)
	return game_object.NewGameObject(game_object.WithModel(mdl))
}

func TestNewSceneInitsFrameAndCameraBindGroups(t *testing.T) {
	r := &recordingRenderer{}
	NewScene("test", newTestCamera(), r)

	// one init for the frame globals, one for the camera uniform
	assert.Equal(t, 2, r.bindInits)
}

func TestSceneAddAssignsIDsAndCreatesResources(t *testing.T) {
	r := &recordingRenderer{}
	s := NewScene("test", newTestCamera(), r)

	id1, err := s.Add(newTestObject("a"))
	require.NoError(t, err)
	id2, err := s.Add(newTestObject("b"))
	require.NoError(t, err)

	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), id2)
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 2, r.meshInits)
	assert.NotNil(t, s.Get(id1).ModelProvider())
}

func TestSceneAddCreatesMeshProviderWhenMissing(t *testing.T) {
	r := &recordingRenderer{}
	s := NewScene("test", newTestCamera(), r)

	mdl := model.NewModel(
		model.WithName("bare"),
		model.WithPipelineKey("mesh"),
		model.WithVertices([]model.GPUVertex{
			{Position: [3]float32{0, 0.5, 0}, Normal: [3]float32{0, 0, 1}},
		}),
		model.WithIndices([]uint32{0}),
	)
	obj := game_object.NewGameObject(game_object.WithModel(mdl))

	_, err := s.Add(obj)
	require.NoError(t, err)

	assert.NotNil(t, mdl.MeshProvider())
	assert.Equal(t, 1, r.meshInits)
}

func TestSceneRemove(t *testing.T) {
	r := &recordingRenderer{}
	s := NewScene("test", newTestCamera(), r)

	id, err := s.Add(newTestObject("a"))
	require.NoError(t, err)

	s.Remove(id)
	assert.Equal(t, 0, s.Count())
	assert.Nil(t, s.Get(id))
}

func TestSceneUpdateWritesUniforms(t *testing.T) {
	r := &recordingRenderer{}
	s := NewScene("test", newTestCamera(), r)

	_, err := s.Add(newTestObject("a"))
	require.NoError(t, err)

	s.Update(0.016)

	// one coalesced submission: frame (16B) + camera (272B) + model (64B)
	require.Len(t, r.writes, 1)
	writes := r.writes[0]
	require.Len(t, writes, 3)
	assert.Len(t, writes[0].Data, 16)
	assert.Len(t, writes[1].Data, 272)
	assert.Len(t, writes[2].Data, 64)

	assert.InDelta(t, 0.016, s.Clock().Time(), 1e-9)
	assert.Equal(t, uint32(1), s.Clock().FrameCount())
}

func TestSceneUpdateAdvancesObjectRotation(t *testing.T) {
	r := &recordingRenderer{}
	s := NewScene("test", newTestCamera(), r)

	obj := newTestObject("spinner")
	obj.SetRotationSpeed(0, 1, 0)
	_, err := s.Add(obj)
	require.NoError(t, err)

	s.Update(0.5)

	_, ry, _ := obj.Rotation()
	assert.InDelta(t, 0.5, ry, 1e-6)
}

func TestSceneDrawCallsBackgroundFirst(t *testing.T) {
	r := &recordingRenderer{}
	s := NewScene("test", newTestCamera(), r,
		WithBackground(background.NewBackground("background")),
	)

	_, err := s.Add(newTestObject("a"))
	require.NoError(t, err)

	require.NoError(t, s.DrawCalls())

	require.Len(t, r.draws, 1)
	assert.Equal(t, "background", r.draws[0].pipelineKey)
	assert.Equal(t, uint32(3), r.draws[0].vertexCount)
	assert.Equal(t, 2, r.draws[0].bindGroups) // frame + camera

	require.Len(t, r.drawCalls, 1)
	assert.Equal(t, "mesh", r.drawCalls[0].pipelineKey)
	assert.Equal(t, 3, r.drawCalls[0].bindGroups) // frame + camera + model
}

func TestSceneDrawCallsSkipsDisabledObjects(t *testing.T) {
	r := &recordingRenderer{}
	s := NewScene("test", newTestCamera(), r)

	obj := newTestObject("hidden")
	obj.SetEnabled(false)
	_, err := s.Add(obj)
	require.NoError(t, err)

	require.NoError(t, s.DrawCalls())
	assert.Empty(t, r.drawCalls)
}

func TestSceneDrawCallsSkipsDisabledBackground(t *testing.T) {
	r := &recordingRenderer{}
	bg := background.NewBackground("background")
	s := NewScene("test", newTestCamera(), r, WithBackground(bg))

	bg.SetEnabled(false)
	require.NoError(t, s.DrawCalls())
	assert.Empty(t, r.draws)
}

// Update and DrawCalls run from different goroutines in the engine (tick vs
// render); interleaving them must not corrupt the scene's reused scratch state.
func TestSceneConcurrentUpdateAndDrawCalls(t *testing.T) {
	r := &recordingRenderer{}
	s := NewScene("test", newTestCamera(), r,
		WithBackground(background.NewBackground("background")),
	)
	_, err := s.Add(newTestObject("a"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			s.Update(0.016)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			assert.NoError(t, s.DrawCalls())
		}
	}()
	wg.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Len(t, r.writes, 50)
	assert.Len(t, r.drawCalls, 50)
}
