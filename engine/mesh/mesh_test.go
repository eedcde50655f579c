package mesh

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadGeometry(t *testing.T) {
	q := Quad()

	require.Len(t, q.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, q.Indices)
	assert.Equal(t, 6, q.IndexCount())

	// The two triangles together must cover the full [-1, 1] x [-1, 1] quad
	// with texture coordinates spanning [0, 1] x [0, 1].
	minX, minY, maxX, maxY := float32(1), float32(1), float32(-1), float32(-1)
	minU, minV, maxU, maxV := float32(1), float32(1), float32(0), float32(0)
	for _, v := range q.Vertices {
		minX = min(minX, v.Position[0])
		minY = min(minY, v.Position[1])
		maxX = max(maxX, v.Position[0])
		maxY = max(maxY, v.Position[1])
		minU = min(minU, v.TexCoord[0])
		minV = min(minV, v.TexCoord[1])
		maxU = max(maxU, v.TexCoord[0])
		maxV = max(maxV, v.TexCoord[1])
	}
	assert.Equal(t, [4]float32{-1, -1, 1, 1}, [4]float32{minX, minY, maxX, maxY})
	assert.Equal(t, [4]float32{0, 0, 1, 1}, [4]float32{minU, minV, maxU, maxV})

	// Each corner of the quad maps to the matching corner of texture space.
	for _, v := range q.Vertices {
		assert.Equal(t, (v.Position[0]+1)/2, v.TexCoord[0])
		assert.Equal(t, (v.Position[1]+1)/2, v.TexCoord[1])
	}
}

func TestVertexMarshalLayout(t *testing.T) {
	v := Vertex{Position: [2]float32{-1, 1}, TexCoord: [2]float32{0, 0.5}}
	assert.Equal(t, 16, v.Size())

	buf := v.Marshal()
	require.Len(t, buf, 16)
	assert.Equal(t, float32(-1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])))
	// Texcoord sits at byte offset 8, two floats into the vertex record.
	assert.Equal(t, float32(0), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])))
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[12:16])))
}

func TestMeshBytes(t *testing.T) {
	q := Quad()

	vb := q.VertexBytes()
	require.Len(t, vb, 4*16)
	assert.Equal(t, q.Vertices[0].Marshal(), vb[0:16])
	assert.Equal(t, q.Vertices[3].Marshal(), vb[48:64])

	ib := q.IndexBytes()
	require.Len(t, ib, 6*4)
	for i, want := range q.Indices {
		assert.Equal(t, want, binary.LittleEndian.Uint32(ib[i*4:i*4+4]))
	}
}
