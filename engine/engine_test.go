package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/kverity/ringfield/common"
	"github.com/kverity/ringfield/engine/renderer"
	"github.com/kverity/ringfield/engine/renderer/bind_group_provider"
	"github.com/kverity/ringfield/engine/renderer/pipeline"
	"github.com/kverity/ringfield/engine/scene"
	"github.com/stretchr/testify/assert"
)

// stubRenderer satisfies renderer.Renderer without any GPU state so the loop
// lifecycle can be exercised headlessly. Counters are read only after Quit,
// which waits for the render goroutine, so plain fields are safe.
type stubRenderer struct {
	beginFrames int
	presents    int
}

var _ renderer.Renderer = &stubRenderer{}

func (r *stubRenderer) Pipeline(key string) pipeline.Pipeline        { return nil }
func (r *stubRenderer) Pipelines() map[string]pipeline.Pipeline      { return nil }
func (r *stubRenderer) RegisterPipelines(...pipeline.Pipeline) error { return nil }
func (r *stubRenderer) SetPipeline(key string, p pipeline.Pipeline)  {}
func (r *stubRenderer) Resize(width, height int)                     {}
func (r *stubRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return nil
}
func (r *stubRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	return nil
}
func (r *stubRenderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	return nil
}
func (r *stubRenderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	return nil
}
func (r *stubRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {}
func (r *stubRenderer) BeginFrame() error {
	r.beginFrames++
	return nil
}
func (r *stubRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	return nil
}
func (r *stubRenderer) EndFrame() {}
func (r *stubRenderer) Present()  { r.presents++ }
func (r *stubRenderer) SetPresentMode(mode renderer.PresentMode) {}

// stubScene satisfies scene.Scene with a controllable draw result.
type stubScene struct {
	name    string
	active  bool
	rend    renderer.Renderer
	drawErr error
	draws   int
}

var _ scene.Scene = &stubScene{}

func (s *stubScene) Name() string                     { return s.name }
func (s *stubScene) SetName(name string)              { s.name = name }
func (s *stubScene) Active() bool                     { return s.active }
func (s *stubScene) SetActive(active bool)            { s.active = active }
func (s *stubScene) Renderer() renderer.Renderer      { return s.rend }
func (s *stubScene) SetRenderer(r renderer.Renderer)  { s.rend = r }
func (s *stubScene) Init() error                      { return nil }
func (s *stubScene) Release()                         {}
func (s *stubScene) DrawCalls() error {
	s.draws++
	return s.drawErr
}

func TestRenderLoopContinuesWhenSceneDrawFails(t *testing.T) {
	r := &stubRenderer{}
	s := &stubScene{active: true, rend: r, drawErr: errors.New("scene has not been initialized")}
	e := NewEngine(WithScene(0, s)).(*engine)

	e.handle()
	time.Sleep(30 * time.Millisecond)
	e.Quit()

	// A failing scene draw does not stop the frame lifecycle: the loop keeps
	// clearing and presenting while the draw error is swallowed each frame.
	assert.Positive(t, s.draws)
	assert.Positive(t, r.beginFrames)
	assert.Positive(t, r.presents)
}

func TestRenderLoopSkipsInactiveScene(t *testing.T) {
	r := &stubRenderer{}
	s := &stubScene{active: false, rend: r}
	e := NewEngine(WithScene(0, s)).(*engine)

	frames := 0
	e.SetRenderCallback(func(deltaTime float32) { frames++ })

	e.handle()
	time.Sleep(30 * time.Millisecond)
	e.Quit()

	assert.Zero(t, s.draws)
	assert.Zero(t, r.beginFrames)
	assert.Positive(t, frames)
}

func TestQuitWaitsForLoops(t *testing.T) {
	e := NewEngine().(*engine)

	frames := 0
	e.SetRenderCallback(func(deltaTime float32) { frames++ })

	e.handle()
	time.Sleep(10 * time.Millisecond)
	e.Quit()

	// Quit blocks until the render goroutine has exited, so the frame count
	// must not advance afterwards.
	n := frames
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, frames)
}

func TestSetTickRateWhileRunning(t *testing.T) {
	e := NewEngine().(*engine)

	e.handle()
	assert.True(t, e.running)

	e.SetTickRate(240)
	time.Sleep(50 * time.Millisecond)
	e.Quit()

	assert.Equal(t, time.Second/240, e.engineTickRate)
}
