package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/wgltf-go/engine/camera"
	"github.com/Carmen-Shannon/wgltf-go/engine/frame"
	"github.com/Carmen-Shannon/wgltf-go/engine/model"
	"github.com/Carmen-Shannon/wgltf-go/engine/renderer/shader"
	"github.com/Carmen-Shannon/wgltf-go/engine/shading"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeBindGroupLayoutsORsVisibility(t *testing.T) {
	vertexLayouts := map[int]wgpu.BindGroupLayoutDescriptor{
		0: frame.BindGroupLayoutDescriptor(wgpu.ShaderStageVertex),
	}
	fragmentLayouts := map[int]wgpu.BindGroupLayoutDescriptor{
		0: frame.BindGroupLayoutDescriptor(wgpu.ShaderStageFragment),
	}

	merged := mergeBindGroupLayouts(vertexLayouts, fragmentLayouts)

	require.Len(t, merged, 1)
	require.Len(t, merged[0].Entries, 1)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, merged[0].Entries[0].Visibility)
}

// The scene creates the frame (group 0) and camera (group 1) bind groups once
// with Vertex|Fragment visibility and binds them for every pipeline, so each
// pipeline's merged layout must resolve those groups to exactly the same
// entries or the draw fails layout compatibility validation.
func TestMergedPipelineLayoutsMatchSharedBindGroups(t *testing.T) {
	sharedStages := wgpu.ShaderStageVertex | wgpu.ShaderStageFragment
	frameDesc := frame.BindGroupLayoutDescriptor(sharedStages)
	cameraDesc := camera.BindGroupLayoutDescriptor(sharedStages)
	modelDesc := model.BindGroupLayoutDescriptor(wgpu.ShaderStageVertex)

	bgVert := shader.NewShader("background_vert", shader.ShaderTypeVertex, shading.BackgroundShaderSource,
		shader.WithBindGroupLayoutDescriptor(0, frameDesc),
		shader.WithBindGroupLayoutDescriptor(1, cameraDesc),
	)
	bgFrag := shader.NewShader("background_frag", shader.ShaderTypeFragment, shading.BackgroundShaderSource,
		shader.WithBindGroupLayoutDescriptor(0, frameDesc),
	)
	meshVert := shader.NewShader("mesh_vert", shader.ShaderTypeVertex, shading.MeshShaderSource,
		shader.WithVertexLayout(0, []wgpu.VertexBufferLayout{model.VertexBufferLayout()}),
		shader.WithBindGroupLayoutDescriptor(0, frameDesc),
		shader.WithBindGroupLayoutDescriptor(1, cameraDesc),
		shader.WithBindGroupLayoutDescriptor(2, modelDesc),
	)
	meshFrag := shader.NewShader("mesh_frag", shader.ShaderTypeFragment, shading.MeshShaderSource)

	bgMerged := mergeBindGroupLayouts(bgVert.BindGroupLayoutDescriptors(), bgFrag.BindGroupLayoutDescriptors())
	require.Len(t, bgMerged, 2)
	assert.Equal(t, frameDesc.Entries, bgMerged[0].Entries)
	assert.Equal(t, cameraDesc.Entries, bgMerged[1].Entries)

	meshMerged := mergeBindGroupLayouts(meshVert.BindGroupLayoutDescriptors(), meshFrag.BindGroupLayoutDescriptors())
	require.Len(t, meshMerged, 3)
	assert.Equal(t, frameDesc.Entries, meshMerged[0].Entries)
	assert.Equal(t, cameraDesc.Entries, meshMerged[1].Entries)
	assert.Equal(t, modelDesc.Entries, meshMerged[2].Entries)
}
