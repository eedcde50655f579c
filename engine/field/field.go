// Package field generates the 2D scalar fields the engine uploads as single-channel textures.
// A field is a pure function of pixel position, fully deterministic, with no cross-pixel dependency.
package field

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/kverity/ringfield/common"
)

// DefaultScale is the angular frequency applied to the center distance before the sine remap.
// Higher values produce tighter ring bands.
const DefaultScale float32 = 30.0

// Ring field center in normalized texture space.
const (
	centerX float32 = 0.5
	centerY float32 = 0.5
)

// Field is an immutable width x height grid of normalized float32 samples in [0, 1],
// stored row-major. It exists to stage scalar data for a single GPU texture upload;
// the engine drops it after the upload so the CPU copy does not outlive startup.
type Field struct {
	width  int
	height int
	data   []float32
}

// Generate produces a ring field of the given dimensions using DefaultScale.
//
// Parameters:
//   - width: field width in samples (must be positive)
//   - height: field height in samples (must be positive)
//
// Returns:
//   - *Field: the generated field
func Generate(width, height int) *Field {
	return GenerateScaled(width, height, DefaultScale)
}

// GenerateScaled produces a ring field of the given dimensions and angular frequency.
// Each sample is (sin(scale * dist) + 1) / 2 where dist is the Euclidean distance of the
// pixel's normalized coordinate (x/width, y/height) from the center (0.5, 0.5). Pixel
// indices are 0-based, so normalized coordinates lie in [0, 1) — this boundary detail is
// load-bearing for reproducibility and must not change.
//
// Parameters:
//   - width: field width in samples (must be positive)
//   - height: field height in samples (must be positive)
//   - scale: the angular frequency applied to the center distance
//
// Returns:
//   - *Field: the generated field
func GenerateScaled(width, height int, scale float32) *Field {
	f := newField(width, height)
	for y := 0; y < height; y++ {
		f.generateRow(y, scale)
	}
	return f
}

// GenerateParallel produces the same field as GenerateScaled by distributing rows across
// a worker pool. Samples have no cross-pixel dependency, so the output is bit-identical
// to the serial path regardless of worker count or scheduling.
//
// Parameters:
//   - width: field width in samples (must be positive)
//   - height: field height in samples (must be positive)
//   - scale: the angular frequency applied to the center distance
//   - workers: number of pool workers (values < 1 are clamped to 1)
//
// Returns:
//   - *Field: the generated field
func GenerateParallel(width, height int, scale float32, workers int) *Field {
	if workers < 1 {
		workers = 1
	}

	f := newField(width, height)
	pool := worker.NewDynamicWorkerPool(workers, height, 1*time.Second)

	var wg sync.WaitGroup
	for y := 0; y < height; y++ {
		wg.Add(1)
		row := y
		pool.SubmitTask(worker.Task{
			ID: row,
			Do: func() (any, error) {
				defer wg.Done()
				f.generateRow(row, scale)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return f
}

func newField(width, height int) *Field {
	if width <= 0 || height <= 0 {
		panic("field: width and height must be positive")
	}
	return &Field{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// generateRow fills one row of the field. Rows are independent, which is what makes
// GenerateParallel safe without locking.
func (f *Field) generateRow(y int, scale float32) {
	yNorm := float32(y) / float32(f.height)
	dy := yNorm - centerY
	for x := 0; x < f.width; x++ {
		xNorm := float32(x) / float32(f.width)
		dx := xNorm - centerX
		dist := math32.Sqrt(dx*dx + dy*dy)
		value := math32.Sin(scale * dist)
		f.data[y*f.width+x] = (value + 1) / 2
	}
}

// Width returns the field width in samples.
//
// Returns:
//   - int: width in samples
func (f *Field) Width() int {
	return f.width
}

// Height returns the field height in samples.
//
// Returns:
//   - int: height in samples
func (f *Field) Height() int {
	return f.height
}

// At returns the sample at pixel (x, y). Coordinates are 0-based and row-major.
//
// Parameters:
//   - x: pixel column, 0 <= x < Width()
//   - y: pixel row, 0 <= y < Height()
//
// Returns:
//   - float32: the normalized sample in [0, 1]
func (f *Field) At(x, y int) float32 {
	return f.data[y*f.width+x]
}

// Samples returns the backing sample slice, row-major. The slice is shared, not copied.
//
// Returns:
//   - []float32: all samples
func (f *Field) Samples() []float32 {
	return f.data
}

// Bytes returns the samples as little-endian float32 bytes suitable for an r32float
// texture upload. The returned slice views the field's backing array.
//
// Returns:
//   - []byte: the raw sample bytes, 4 bytes per sample
func (f *Field) Bytes() []byte {
	return common.SliceToBytes(f.data)
}

// StagingData packages the field for a single-channel float texture upload.
// The field itself should be discarded once the renderer has consumed the staging data.
//
// Returns:
//   - common.TextureStagingData: r32float staging data viewing the field's samples
func (f *Field) StagingData() common.TextureStagingData {
	return common.TextureStagingData{
		Pixels:        f.Bytes(),
		Width:         uint32(f.width),
		Height:        uint32(f.height),
		Format:        wgpu.TextureFormatR32Float,
		BytesPerTexel: 4,
	}
}
