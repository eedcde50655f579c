package scene

import (
	"fmt"
	"sync"

	"github.com/kverity/ringfield/common"
	"github.com/kverity/ringfield/engine/mesh"
	"github.com/kverity/ringfield/engine/renderer"
	"github.com/kverity/ringfield/engine/renderer/bind_group_provider"
	"github.com/kverity/ringfield/engine/renderer/pipeline"
	"github.com/kverity/ringfield/engine/renderer/shader"
)

// Scene manages a single textured mesh and the GPU resources required to draw it: a render
// pipeline, vertex and index buffers, and a bind group carrying the scene's texture and
// sampler. Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// SetRenderer replaces the scene's renderer.
	//
	// Parameters:
	//   - r: the new renderer
	SetRenderer(r renderer.Renderer)

	// Init registers the scene's render pipeline and creates all GPU resources: the mesh
	// vertex and index buffers, the texture and sampler, and the bind group tying them to
	// the fragment shader's declared bindings. Binding indices are resolved from the
	// fragment shader source by the variable names the texture and sampler were staged
	// under, so the scene and the shader stay in sync by name rather than by hard-coded
	// binding numbers.
	//
	// Init must be called once before DrawCalls, after the renderer is attached.
	//
	// Returns:
	//   - error: an error if pipeline registration or resource creation fails
	Init() error

	// DrawCalls issues the scene's indexed draw within the current render pass.
	// Must be called within a BeginFrame/EndFrame block on the renderer.
	//
	// Returns:
	//   - error: error if the draw call fails or the scene was not initialized
	DrawCalls() error

	// Release frees all GPU resources held by the scene. The scene can not be drawn
	// again after Release without another Init.
	Release()
}

// stagedTexture pairs texture staging data with the shader variable name it binds to.
type stagedTexture struct {
	varName string
	data    common.TextureStagingData
}

// stagedSampler pairs sampler staging data with the shader variable name it binds to.
type stagedSampler struct {
	varName string
	data    common.SamplerStagingData
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu sync.Mutex

	name   string
	active bool

	rend renderer.Renderer

	pipe pipeline.Pipeline
	mesh *mesh.Mesh

	textures []stagedTexture
	samplers []stagedSampler

	meshProvider    bind_group_provider.BindGroupProvider
	textureProvider bind_group_provider.BindGroupProvider

	initialized bool
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the given name and options. The pipeline, mesh,
// texture, and sampler are attached through builder options; GPU resources are not
// created until Init is called.
//
// Parameters:
//   - name: the scene's identifier, also used to label its GPU resources
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the configured scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		name:   name,
		active: true,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rend
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rend = r
}

func (s *scene) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rend == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}
	if s.pipe == nil {
		return fmt.Errorf("scene %q has no pipeline attached", s.name)
	}
	if s.mesh == nil || len(s.mesh.Vertices) == 0 || len(s.mesh.Indices) == 0 {
		return fmt.Errorf("scene %q has no mesh attached", s.name)
	}

	if err := s.rend.RegisterPipelines(s.pipe); err != nil {
		return fmt.Errorf("scene %q: %w", s.name, err)
	}

	s.meshProvider = bind_group_provider.NewBindGroupProvider(s.name + " Mesh")
	if err := s.rend.InitMeshBuffers(s.meshProvider, s.mesh.VertexBytes(), s.mesh.IndexBytes(), s.mesh.IndexCount()); err != nil {
		return fmt.Errorf("scene %q: %w", s.name, err)
	}

	fs := s.pipe.Shader(shader.ShaderTypeFragment)

	s.textureProvider = bind_group_provider.NewBindGroupProvider(s.name + " Resources")
	for _, st := range s.textures {
		binding, ok := fs.BindGroupFromVarName(0, st.varName)
		if !ok {
			return fmt.Errorf("scene %q: fragment shader declares no binding named %q", s.name, st.varName)
		}
		if err := s.rend.InitTextureView(s.textureProvider, binding, st.data); err != nil {
			return fmt.Errorf("scene %q: %w", s.name, err)
		}
	}
	for _, ss := range s.samplers {
		binding, ok := fs.BindGroupFromVarName(0, ss.varName)
		if !ok {
			return fmt.Errorf("scene %q: fragment shader declares no binding named %q", s.name, ss.varName)
		}
		if err := s.rend.InitSampler(s.textureProvider, binding, ss.data); err != nil {
			return fmt.Errorf("scene %q: %w", s.name, err)
		}
	}

	if err := s.rend.InitBindGroup(s.textureProvider, fs.BindGroupLayoutDescriptor(0), nil, nil); err != nil {
		return fmt.Errorf("scene %q: %w", s.name, err)
	}

	s.initialized = true
	return nil
}

func (s *scene) DrawCalls() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return fmt.Errorf("scene %q has not been initialized", s.name)
	}

	return s.rend.DrawCall(s.pipe.PipelineKey(), s.meshProvider, 1, []bind_group_provider.BindGroupProvider{s.textureProvider})
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.meshProvider != nil {
		s.meshProvider.Release()
		s.meshProvider = nil
	}
	if s.textureProvider != nil {
		s.textureProvider.Release()
		s.textureProvider = nil
	}
	s.initialized = false
}
