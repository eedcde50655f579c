package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, Coalesce(0, 3, 5))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, float32(4), Coalesce[float32](0, 4))
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes[float32](nil))

	data := []float32{1.0}
	b := SliceToBytes(data)
	assert.Len(t, b, 4)
	// 1.0 in IEEE-754 single precision, little-endian
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, b)

	indices := []uint32{0, 1, 2}
	assert.Len(t, SliceToBytes(indices), 12)
}
