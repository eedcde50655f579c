package scene

import (
	"github.com/kverity/ringfield/common"
	"github.com/kverity/ringfield/engine/mesh"
	"github.com/kverity/ringfield/engine/renderer"
	"github.com/kverity/ringfield/engine/renderer/pipeline"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithRenderer attaches the renderer the scene creates its GPU resources on and draws with.
//
// Parameters:
//   - r: the renderer to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) SceneBuilderOption {
	return func(s *scene) {
		s.rend = r
	}
}

// WithPipeline attaches the render pipeline the scene draws with. The pipeline's fragment
// shader declares the bindings that textures and samplers staged on the scene resolve against.
//
// Parameters:
//   - p: the pipeline to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPipeline(p pipeline.Pipeline) SceneBuilderOption {
	return func(s *scene) {
		s.pipe = p
	}
}

// WithMesh attaches the mesh geometry the scene draws.
//
// Parameters:
//   - m: the mesh to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMesh(m *mesh.Mesh) SceneBuilderOption {
	return func(s *scene) {
		s.mesh = m
	}
}

// WithTexture stages texture data to upload during Init, bound to the fragment shader
// variable with the given name.
//
// Parameters:
//   - varName: the fragment shader variable name this texture binds to
//   - data: the texture staging data to upload
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTexture(varName string, data common.TextureStagingData) SceneBuilderOption {
	return func(s *scene) {
		s.textures = append(s.textures, stagedTexture{varName: varName, data: data})
	}
}

// WithSampler stages a sampler configuration to create during Init, bound to the fragment
// shader variable with the given name.
//
// Parameters:
//   - varName: the fragment shader variable name this sampler binds to
//   - data: the sampler staging data
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSampler(varName string, data common.SamplerStagingData) SceneBuilderOption {
	return func(s *scene) {
		s.samplers = append(s.samplers, stagedSampler{varName: varName, data: data})
	}
}
