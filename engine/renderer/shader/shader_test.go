package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVertexSource = `struct VertexInput {
    @location(0) aPos: vec2<f32>,
    @location(1) aTexCoord: vec2<f32>,
}

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) texCoord: vec2<f32>,
}

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(in.aPos, 0.0, 1.0);
    out.texCoord = in.aTexCoord;
    return out;
}
`

const testFragmentSource = `@group(0) @binding(0) var heatmapTexture: texture_2d<f32>;
@group(0) @binding(1) var heatmapSampler: sampler;

@fragment
fn fs_main(@location(0) texCoord: vec2<f32>) -> @location(0) vec4<f32> {
    let value = textureSample(heatmapTexture, heatmapSampler, texCoord).r;
    return vec4<f32>(value, value, value, 1.0);
}
`

func writeShaderFile(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestNewShaderVertex(t *testing.T) {
	path := writeShaderFile(t, "vertex.wgsl", testVertexSource)

	s := NewShader("test_vertex", ShaderTypeVertex, path)
	require.NotNil(t, s)

	assert.True(t, s.Compiled())
	assert.Empty(t, s.Diagnostic())
	assert.Equal(t, "test_vertex", s.Key())
	assert.Equal(t, ShaderTypeVertex, s.ShaderType())
	assert.Equal(t, "vs_main", s.EntryPoint())
	assert.Equal(t, testVertexSource, s.Source())

	require.NotNil(t, s.Module())
	require.NotNil(t, s.Module().WGSLDescriptor)
	assert.Equal(t, testVertexSource, s.Module().WGSLDescriptor.Code)

	layouts := s.VertexLayout(0)
	require.Len(t, layouts, 1)
	layout := layouts[0]
	assert.Equal(t, uint64(16), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout.StepMode)
	require.Len(t, layout.Attributes, 2)

	assert.Equal(t, wgpu.VertexFormatFloat32x2, layout.Attributes[0].Format)
	assert.Equal(t, uint64(0), layout.Attributes[0].Offset)
	assert.Equal(t, uint32(0), layout.Attributes[0].ShaderLocation)

	assert.Equal(t, wgpu.VertexFormatFloat32x2, layout.Attributes[1].Format)
	assert.Equal(t, uint64(8), layout.Attributes[1].Offset)
	assert.Equal(t, uint32(1), layout.Attributes[1].ShaderLocation)
}

func TestNewShaderFragment(t *testing.T) {
	path := writeShaderFile(t, "fragment.wgsl", testFragmentSource)

	s := NewShader("test_fragment", ShaderTypeFragment, path)
	require.NotNil(t, s)

	assert.True(t, s.Compiled())
	assert.Empty(t, s.Diagnostic())
	assert.Equal(t, "fs_main", s.EntryPoint())

	desc := s.BindGroupLayoutDescriptor(0)
	require.Len(t, desc.Entries, 2)

	texEntry := desc.Entries[0]
	assert.Equal(t, uint32(0), texEntry.Binding)
	assert.Equal(t, wgpu.ShaderStageFragment, texEntry.Visibility)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, texEntry.Texture.SampleType)
	assert.Equal(t, wgpu.TextureViewDimension2D, texEntry.Texture.ViewDimension)
	assert.False(t, texEntry.Texture.Multisampled)

	samplerEntry := desc.Entries[1]
	assert.Equal(t, uint32(1), samplerEntry.Binding)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, samplerEntry.Sampler.Type)

	assert.Equal(t, "heatmapTexture", s.BindGroupVarName(0, 0))
	assert.Equal(t, "heatmapSampler", s.BindGroupVarName(0, 1))

	binding, ok := s.BindGroupFromVarName(0, "heatmapSampler")
	require.True(t, ok)
	assert.Equal(t, 1, binding)

	_, ok = s.BindGroupFromVarName(0, "missing")
	assert.False(t, ok)
}

func TestNewShaderMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does_not_exist.wgsl")

	s := NewShader("missing", ShaderTypeVertex, path)
	require.NotNil(t, s)

	assert.False(t, s.Compiled())
	assert.NotEmpty(t, s.Diagnostic())
	assert.Empty(t, s.Source())
	assert.Empty(t, s.EntryPoint())
}

func TestNewShaderCompileFailure(t *testing.T) {
	path := writeShaderFile(t, "broken.wgsl", "@vertex fn vs_main( {{{ not wgsl")

	s := NewShader("broken", ShaderTypeVertex, path)
	require.NotNil(t, s)

	assert.False(t, s.Compiled())
	assert.NotEmpty(t, s.Diagnostic())
}

func TestNewShaderStagesCheckedIndependently(t *testing.T) {
	brokenPath := writeShaderFile(t, "broken_vertex.wgsl", "fn (((")
	fragmentPath := writeShaderFile(t, "fragment.wgsl", testFragmentSource)

	vs := NewShader("broken_vertex", ShaderTypeVertex, brokenPath)
	fs := NewShader("good_fragment", ShaderTypeFragment, fragmentPath)

	assert.False(t, vs.Compiled())
	assert.True(t, fs.Compiled())
	assert.Empty(t, fs.Diagnostic())
}

func TestNewShaderEmptyPathPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("no_path", ShaderTypeVertex, "")
	})
}

func TestParseEntryPoint(t *testing.T) {
	assert.Equal(t, "vs_main", parseEntryPoint(testVertexSource, ShaderTypeVertex))
	assert.Equal(t, "fs_main", parseEntryPoint(testFragmentSource, ShaderTypeFragment))
	assert.Empty(t, parseEntryPoint(testVertexSource, ShaderTypeFragment))
	assert.Empty(t, parseEntryPoint(testFragmentSource, ShaderTypeVertex))
}

func TestParseVertexLayoutsSkipsOutputStructs(t *testing.T) {
	layouts := parseVertexLayouts(testVertexSource)
	require.Len(t, layouts, 1)
	require.Len(t, layouts[0], 1)
	assert.Len(t, layouts[0][0].Attributes, 2)
}

func TestParseBindGroupLayoutsUniformBuffer(t *testing.T) {
	source := `struct Params {
    scale: f32,
}

@group(0) @binding(2) var<uniform> params: Params;
`
	descs, names := parseBindGroupLayouts(source, wgpu.ShaderStageFragment)
	require.Len(t, descs, 1)
	require.Len(t, descs[0].Entries, 1)

	entry := descs[0].Entries[0]
	assert.Equal(t, uint32(2), entry.Binding)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entry.Buffer.Type)
	assert.Equal(t, "params", names[0][2])
}

func TestStripComments(t *testing.T) {
	source := "// line comment\nfn main() {} /* block /* nested */ comment */\n"
	cleaned := stripComments(source)
	assert.NotContains(t, cleaned, "comment")
	assert.Contains(t, cleaned, "fn main() {}")
}

func TestSplitAtTopLevelCommas(t *testing.T) {
	parts := splitAtTopLevelCommas("a: vec2<f32>, b: array<f32, 4>, c: f32")
	require.Len(t, parts, 3)
	assert.Equal(t, " b: array<f32, 4>", parts[1])
}
