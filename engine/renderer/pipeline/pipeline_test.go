package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/kverity/ringfield/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vertexSource = `@vertex
fn vs_main(@location(0) pos: vec2<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(pos, 0.0, 1.0);
}
`

const fragmentSource = `@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

func loadShader(t *testing.T, key string, shaderType shader.ShaderType, source string) shader.Shader {
	t.Helper()
	path := filepath.Join(t.TempDir(), key+".wgsl")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return shader.NewShader(key, shaderType, path)
}

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("test")

	assert.Equal(t, "test", p.PipelineKey())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.NotNil(t, p.BlendState())
	assert.Nil(t, p.Pipeline())
}

func TestNewPipelineOptions(t *testing.T) {
	vs := loadShader(t, "vs", shader.ShaderTypeVertex, vertexSource)
	fs := loadShader(t, "fs", shader.ShaderTypeFragment, fragmentSource)

	p := NewPipeline("test",
		WithVertexShader(vs),
		WithFragmentShader(fs),
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithBlendEnabled(true),
		WithCullMode(wgpu.CullModeBack),
		WithFrontFace(wgpu.FrontFaceCW),
	)

	assert.Same(t, vs, p.Shader(shader.ShaderTypeVertex))
	assert.Same(t, fs, p.Shader(shader.ShaderTypeFragment))
	assert.False(t, p.DepthTestEnabled())
	assert.False(t, p.DepthWriteEnabled())
	assert.True(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
}

func TestStagesCompiled(t *testing.T) {
	vs := loadShader(t, "vs", shader.ShaderTypeVertex, vertexSource)
	fs := loadShader(t, "fs", shader.ShaderTypeFragment, fragmentSource)

	p := NewPipeline("test", WithVertexShader(vs), WithFragmentShader(fs))
	assert.True(t, p.StagesCompiled())
	assert.Empty(t, p.Diagnostics())
}

func TestStagesCompiledMissingStage(t *testing.T) {
	vs := loadShader(t, "vs", shader.ShaderTypeVertex, vertexSource)

	p := NewPipeline("test", WithVertexShader(vs))
	assert.False(t, p.StagesCompiled())
}

func TestDiagnosticsReportFailedStage(t *testing.T) {
	vs := loadShader(t, "vs", shader.ShaderTypeVertex, vertexSource)
	fs := loadShader(t, "fs_broken", shader.ShaderTypeFragment, "fn (((")

	p := NewPipeline("test", WithVertexShader(vs), WithFragmentShader(fs))
	assert.False(t, p.StagesCompiled())

	diags := p.Diagnostics()
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "fs_broken")
}
