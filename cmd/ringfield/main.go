package main

import (
	"log"
	"os"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/kverity/ringfield/common"
	"github.com/kverity/ringfield/engine"
	"github.com/kverity/ringfield/engine/field"
	"github.com/kverity/ringfield/engine/mesh"
	"github.com/kverity/ringfield/engine/renderer"
	"github.com/kverity/ringfield/engine/renderer/pipeline"
	"github.com/kverity/ringfield/engine/renderer/shader"
	"github.com/kverity/ringfield/engine/scene"
	"github.com/kverity/ringfield/engine/window"
)

const (
	// windowSize is the fixed width and height of the display window in pixels.
	windowSize = 600
	// fieldSize is the width and height of the generated scalar field in texels.
	fieldSize = 256

	vertexShaderPath   = "shaders/heatmap_vertex.wgsl"
	fragmentShaderPath = "shaders/heatmap_fragment.wgsl"
)

func main() {
	// ── Window ──────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle("Ring Field"),
		window.WithWidth(windowSize),
		window.WithHeight(windowSize),
		window.WithResizable(false),
	)
	if err != nil {
		log.Printf("failed to create window: %v", err)
		os.Exit(-1)
	}

	// ── Renderer ────────────────────────────────────────────────────
	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win)
	if err != nil {
		log.Printf("failed to create renderer: %v", err)
		_ = win.Close()
		os.Exit(-1)
	}

	// ── Shaders + Pipeline ──────────────────────────────────────────
	// Shader compile failures are reported per stage and are not fatal here;
	// registration surfaces the collected diagnostics when the scene initializes.
	vertexShader := shader.NewShader("heatmap_vertex", shader.ShaderTypeVertex, vertexShaderPath)
	fragmentShader := shader.NewShader("heatmap_fragment", shader.ShaderTypeFragment, fragmentShaderPath)

	heatmapPipeline := pipeline.NewPipeline("heatmap",
		pipeline.WithVertexShader(vertexShader),
		pipeline.WithFragmentShader(fragmentShader),
		pipeline.WithDepthTestEnabled(false),
		pipeline.WithDepthWriteEnabled(false),
	)

	// ── Scalar Field ────────────────────────────────────────────────
	heatField := field.GenerateParallel(fieldSize, fieldSize, field.DefaultScale, runtime.NumCPU())

	// ── Scene ───────────────────────────────────────────────────────
	sc := scene.NewScene("Ring Field",
		scene.WithRenderer(r),
		scene.WithPipeline(heatmapPipeline),
		scene.WithMesh(mesh.Quad()),
		scene.WithTexture("heatmapTexture", heatField.StagingData()),
		scene.WithSampler("heatmapSampler", common.SamplerStagingData{
			AddressModeU: wgpu.AddressModeClampToEdge,
			AddressModeV: wgpu.AddressModeClampToEdge,
			MagFilter:    wgpu.FilterModeLinear,
			MinFilter:    wgpu.FilterModeLinear,
		}),
	)

	// Shader and resource failures surface here as scene-init errors. They are not
	// fatal: the render loop still runs and presents clear-only frames while the
	// scene's draw is skipped, the same way a broken GL program leaves a black window.
	// Exit -1 is reserved for window and GPU acquisition failures above.
	if err := sc.Init(); err != nil {
		log.Printf("failed to initialize scene: %v", err)
	}

	// ── Engine ──────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(0, sc),
	)

	eng.Run()

	// The message loop has exited; stop the render goroutine before tearing down GPU resources.
	eng.Quit()
	sc.Release()
	_ = win.Close()
}
