package field

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMatchesFormula(t *testing.T) {
	const w, h = 17, 9
	f := Generate(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float32(x)/float32(w) - 0.5
			dy := float32(y)/float32(h) - 0.5
			want := (math32.Sin(DefaultScale*math32.Sqrt(dx*dx+dy*dy)) + 1) / 2
			assert.InDelta(t, want, f.At(x, y), 1e-6, "pixel (%d, %d)", x, y)
		}
	}
}

func TestGenerateRange(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 7}, {64, 64}, {256, 256}} {
		f := GenerateScaled(dims[0], dims[1], DefaultScale)
		for i, v := range f.Samples() {
			require.GreaterOrEqual(t, v, float32(0), "sample %d", i)
			require.LessOrEqual(t, v, float32(1), "sample %d", i)
		}
	}
}

func TestGenerateCenterSample(t *testing.T) {
	// Even dimensions put a pixel exactly on the normalized center (0.5, 0.5),
	// where dist = 0 and sin(0) remaps to 0.5.
	f := Generate(4, 4)
	assert.Equal(t, float32(0.5), f.At(2, 2))

	f = Generate(256, 256)
	assert.Equal(t, float32(0.5), f.At(128, 128))
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(64, 48)
	b := Generate(64, 48)
	assert.Equal(t, a.Samples(), b.Samples())
}

func TestGenerateParallelMatchesSerial(t *testing.T) {
	serial := GenerateScaled(128, 96, DefaultScale)
	for _, workers := range []int{0, 1, 4, 16} {
		parallel := GenerateParallel(128, 96, DefaultScale, workers)
		assert.Equal(t, serial.Samples(), parallel.Samples(), "workers=%d", workers)
	}
}

func TestGenerateGolden4x4(t *testing.T) {
	// Regression grid for the default scale, computed from
	// (sin(30 * sqrt((x/4 - 0.5)^2 + (y/4 - 0.5)^2)) + 1) / 2 in single precision.
	want := []float32{
		0.85090852, 0.06320122, 0.82514393, 0.06320122,
		0.06320122, 0.03735042, 0.96899998, 0.03735042,
		0.82514393, 0.96899998, 0.50000000, 0.96899998,
		0.06320122, 0.03735042, 0.96899998, 0.03735042,
	}

	f := GenerateScaled(4, 4, 30.0)
	require.Len(t, f.Samples(), 16)
	for i, v := range f.Samples() {
		assert.InDelta(t, want[i], v, 1e-6, "pixel (%d, %d)", i%4, i/4)
	}
}

func TestFieldBytes(t *testing.T) {
	f := Generate(8, 8)
	b := f.Bytes()
	require.Len(t, b, 8*8*4)

	staging := f.StagingData()
	assert.Equal(t, uint32(8), staging.Width)
	assert.Equal(t, uint32(8), staging.Height)
	assert.Equal(t, uint32(4), staging.BytesPerTexel)
	assert.Len(t, staging.Pixels, 8*8*4)
}

func TestNewFieldRejectsNonPositiveDims(t *testing.T) {
	assert.Panics(t, func() { Generate(0, 4) })
	assert.Panics(t, func() { Generate(4, -1) })
}
