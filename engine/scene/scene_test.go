package scene

import (
	"testing"

	"github.com/kverity/ringfield/common"
	"github.com/kverity/ringfield/engine/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSceneDefaults(t *testing.T) {
	s := NewScene("Test Scene")
	assert.Equal(t, "Test Scene", s.Name())
	assert.True(t, s.Active())
	assert.Nil(t, s.Renderer())
}

func TestSceneBuilderOptions(t *testing.T) {
	quad := mesh.Quad()
	s := NewScene("Heatmap",
		WithActive(false),
		WithMesh(quad),
		WithTexture("heatmapTexture", common.TextureStagingData{Width: 4, Height: 4}),
		WithSampler("heatmapSampler", common.SamplerStagingData{}),
	)

	assert.False(t, s.Active())

	impl, ok := s.(*scene)
	require.True(t, ok)
	assert.Equal(t, quad, impl.mesh)
	require.Len(t, impl.textures, 1)
	assert.Equal(t, "heatmapTexture", impl.textures[0].varName)
	require.Len(t, impl.samplers, 1)
	assert.Equal(t, "heatmapSampler", impl.samplers[0].varName)
}

func TestSceneSetters(t *testing.T) {
	s := NewScene("Renamed")
	s.SetName("Other")
	assert.Equal(t, "Other", s.Name())
	s.SetActive(false)
	assert.False(t, s.Active())
}

func TestSceneInitRequiresRenderer(t *testing.T) {
	s := NewScene("No Renderer", WithMesh(mesh.Quad()))
	err := s.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no renderer")
}

func TestSceneDrawCallsRequiresInit(t *testing.T) {
	s := NewScene("Uninitialized")
	err := s.DrawCalls()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not been initialized")
}
