package scene

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/wgltf-go/engine/background"
	"github.com/Carmen-Shannon/wgltf-go/engine/camera"
	"github.com/Carmen-Shannon/wgltf-go/engine/frame"
	"github.com/Carmen-Shannon/wgltf-go/engine/game_object"
	"github.com/Carmen-Shannon/wgltf-go/engine/model"
	"github.com/Carmen-Shannon/wgltf-go/engine/renderer"
	"github.com/Carmen-Shannon/wgltf-go/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

// Scene defines the interface for the frame driver: it owns the camera, the
// frame clock, the optional background drawable, and the registry of
// GameObjects, and each frame writes their uniforms and issues their draws.
type Scene interface {
	// Name returns the scene's name.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Active returns whether the scene is active for rendering.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// SetActive sets whether the scene is active for rendering.
	//
	// Parameters:
	//   - active: true to activate the scene
	SetActive(active bool)

	// Camera returns the scene's camera.
	//
	// Returns:
	//   - camera.Camera: the attached camera
	Camera() camera.Camera

	// Renderer returns the scene's renderer.
	//
	// Returns:
	//   - renderer.Renderer: the attached renderer
	Renderer() renderer.Renderer

	// Clock returns the scene's frame clock.
	//
	// Returns:
	//   - frame.Clock: the frame clock
	Clock() frame.Clock

	// Background returns the scene's background drawable, or nil if none is set.
	//
	// Returns:
	//   - background.Background: the background or nil
	Background() background.Background

	// SetBackground sets the scene's background drawable.
	//
	// Parameters:
	//   - bg: the background drawable, or nil to remove it
	SetBackground(bg background.Background)

	// Add registers a GameObject with the scene, assigning it an ID if it has
	// none, uploading its model's mesh buffers, and creating its per-object
	// model matrix bind group.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	//   - error: an error if GPU resource creation fails
	Add(obj game_object.GameObject) (uint64, error)

	// Get returns the GameObject with the given ID, or nil if not found.
	//
	// Parameters:
	//   - id: the object ID to look up
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove removes the GameObject with the given ID from the scene.
	//
	// Parameters:
	//   - id: the object ID to remove
	Remove(id uint64)

	// Count returns the number of registered objects.
	//
	// Returns:
	//   - int: the object count
	Count() int

	// SetResolution updates the frame clock's surface resolution.
	// Call on window resize so the frame uniform stays accurate.
	//
	// Parameters:
	//   - width: the surface width in pixels
	//   - height: the surface height in pixels
	SetResolution(width, height int)

	// Update advances the frame clock and all object transforms by dt, then
	// writes the frame, camera, and per-object model uniforms to the GPU in a
	// single coalesced submission. Object transform updates are fanned out
	// across the scene's worker pool.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous update
	Update(dt float32)

	// DrawCalls issues the frame's draws within an open render pass: the
	// background's bufferless triangle first, then each enabled object's
	// indexed mesh draw with its [frame, camera, model] bind groups.
	//
	// Returns:
	//   - error: an error if a referenced pipeline is missing
	DrawCalls() error
}

// scene is the implementation of the Scene interface.
// Thread-safe for concurrent access.
type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	cam   camera.Camera
	r     renderer.Renderer
	clock frame.Clock
	bg    background.Background

	registry map[uint64]game_object.GameObject
	order    []uint64 // draw order, insertion-stable
	nextID   uint64

	frameBGP bind_group_provider.BindGroupProvider

	// Pre-allocated slice reused each frame to avoid per-frame allocations.
	// Guarded by mu's write lock in Update.
	writePool []bind_group_provider.BufferWrite

	// updatePool manages a bounded set of reusable goroutines for the parallel
	// transform prep phase of Update. Workers persist across frames, avoiding
	// per-frame goroutine spawn/teardown overhead.
	updatePool    worker.DynamicWorkerPool
	updateWorkers int
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and renderer. Both are
// required and NewScene panics if either is nil. The camera's and the frame
// clock's uniform bind groups are initialized on the GPU during construction.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	s := &scene{
		mu:                 &sync.RWMutex{},
		name:               name,
		active:             false,
		cam:                cam,
		r:                  r,
		clock:              frame.NewClock(),
		registry:      make(map[uint64]game_object.GameObject),
		nextID:        1,
		updateWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the worker pool after options so WithUpdateWorkers can override the default.
	// Queue size of 256 accommodates typical object counts with headroom.
	s.updatePool = worker.NewDynamicWorkerPool(s.updateWorkers, 256, 1*time.Second)

	// Frame globals uniform, shared by every pipeline at @group(0).
	if s.frameBGP == nil {
		s.frameBGP = bind_group_provider.NewBindGroupProvider(name + "_frame")
	}
	frameDesc := frame.BindGroupLayoutDescriptor(wgpu.ShaderStageVertex | wgpu.ShaderStageFragment)
	if err := r.InitBindGroup(s.frameBGP, frameDesc, nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init frame bind group: %v", err))
	}

	// Camera uniform at @group(1), owned by the camera itself.
	if bgp := cam.BindGroupProvider(); bgp != nil {
		cameraDesc := camera.BindGroupLayoutDescriptor(wgpu.ShaderStageVertex | wgpu.ShaderStageFragment)
		if err := r.InitBindGroup(bgp, cameraDesc, nil, nil); err != nil {
			panic(fmt.Sprintf("scene: failed to init camera bind group: %v", err))
		}
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) Clock() frame.Clock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clock
}

func (s *scene) Background() background.Background {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bg
}

func (s *scene) SetBackground(bg background.Background) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bg = bg
}

func (s *scene) Add(obj game_object.GameObject) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	}

	mdl := obj.Model()
	if mdl != nil && len(mdl.VertexData()) > 0 {
		// Upload mesh buffers once, the first time a model is seen. The mesh
		// provider lives on the model so objects sharing a model share buffers.
		if mdl.MeshProvider() == nil {
			mdl.SetMeshProvider(bind_group_provider.NewBindGroupProvider(fmt.Sprintf("%s_model_%s_mesh", s.name, mdl.Name())))
		}
		if mp := mdl.MeshProvider(); mp.VertexBuffer() == nil {
			if err := s.r.InitMeshBuffers(mp, mdl.VertexData(), mdl.IndexData(), mdl.IndexCount()); err != nil {
				return 0, fmt.Errorf("scene %q: failed to init mesh buffers for model %q: %w", s.name, mdl.Name(), err)
			}
		}
	}

	// Per-object model matrix uniform at @group(2).
	if obj.ModelProvider() == nil {
		provider := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("%s_object_%d_model", s.name, obj.ID()))
		desc := model.BindGroupLayoutDescriptor(wgpu.ShaderStageVertex)
		if err := s.r.InitBindGroup(provider, desc, nil, nil); err != nil {
			return 0, fmt.Errorf("scene %q: failed to init model bind group for object %d: %w", s.name, obj.ID(), err)
		}
		obj.SetModelProvider(provider)
	}

	s.registry[obj.ID()] = obj
	s.order = append(s.order, obj.ID())
	return obj.ID(), nil
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.registry[id]; !exists {
		return
	}
	delete(s.registry, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) SetResolution(width, height int) {
	s.mu.RLock()
	clock := s.clock
	s.mu.RUnlock()
	clock.SetResolution(width, height)
}

func (s *scene) Update(dt float32) {
	// Write lock: Update mutates object transforms and the reused write pool.
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		return
	}

	// Advance the frame clock and camera once per frame.
	s.clock.Advance(float64(dt))
	if s.cam != nil {
		s.cam.Update()
	}

	// Snapshot the enabled objects in draw order so the parallel phase
	// operates on a stable slice.
	objects := make([]game_object.GameObject, 0, len(s.order))
	for _, id := range s.order {
		obj := s.registry[id]
		if obj == nil || !obj.Enabled() {
			continue
		}
		objects = append(objects, obj)
	}

	// Parallel transform prep: advance each object's rotation and marshal its
	// model matrix across the worker pool. Workers are reused across frames.
	// A WaitGroup provides per-frame barrier sync since pool.Wait() blocks
	// until workers idle-exit which is unsuitable for frame-rate workloads.
	modelData := make([][]byte, len(objects))
	var wg sync.WaitGroup
	for i, obj := range objects {
		wg.Add(1)
		idx := i
		oCap := obj // capture for closure
		s.updatePool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				oCap.Update(dt)
				data := oCap.ModelData()
				modelData[idx] = data.Marshal()
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Coalesced GPU submission: frame globals, camera uniform, and every
	// per-object model matrix in a single WriteBuffers call.
	allWrites := s.writePool[:0]

	snap := s.clock.Snapshot()
	allWrites = append(allWrites, bind_group_provider.BufferWrite{
		Provider: s.frameBGP,
		Binding:  0,
		Offset:   0,
		Data:     snap.Marshal(),
	})

	if s.cam != nil {
		if camBGP := s.cam.BindGroupProvider(); camBGP != nil {
			camUniform := s.cam.Uniform()
			allWrites = append(allWrites, bind_group_provider.BufferWrite{
				Provider: camBGP,
				Binding:  0,
				Offset:   0,
				Data:     camUniform.Marshal(),
			})
		}
	}

	for i, obj := range objects {
		provider := obj.ModelProvider()
		if provider == nil {
			continue
		}
		allWrites = append(allWrites, bind_group_provider.BufferWrite{
			Provider: provider,
			Binding:  0,
			Offset:   0,
			Data:     modelData[i],
		})
	}
	s.writePool = allWrites

	if len(allWrites) > 0 {
		s.r.WriteBuffers(allWrites)
	}
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}

	var camBGP bind_group_provider.BindGroupProvider
	if s.cam != nil {
		camBGP = s.cam.BindGroupProvider()
	}

	// Background triangle draws first so every mesh renders over it.
	if s.bg != nil && s.bg.Enabled() {
		bindGroups := []bind_group_provider.BindGroupProvider{s.frameBGP, camBGP}
		if err := s.r.Draw(s.bg.PipelineKey(), s.bg.VertexCount(), 1, bindGroups); err != nil {
			return err
		}
	}

	for _, id := range s.order {
		obj := s.registry[id]
		if obj == nil || !obj.Enabled() {
			continue
		}

		mdl := obj.Model()
		if mdl == nil {
			continue
		}
		meshProvider := mdl.MeshProvider()
		if meshProvider == nil || mdl.PipelineKey() == "" {
			continue
		}
		modelProvider := obj.ModelProvider()
		if modelProvider == nil {
			continue
		}

		bindGroups := []bind_group_provider.BindGroupProvider{s.frameBGP, camBGP, modelProvider}
		if err := s.r.DrawCall(mdl.PipelineKey(), meshProvider, 1, bindGroups); err != nil {
			return err
		}
	}

	return nil
}
