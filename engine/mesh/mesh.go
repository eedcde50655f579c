// Package mesh provides the static geometry the engine uploads to GPU vertex and index buffers.
package mesh

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Vertex is the GPU-aligned representation of a single 2D vertex.
// Matches the WGSL VertexInput struct layout exactly: two float32 pairs,
// interleaved, 16-byte stride, texcoord at byte offset 8.
type Vertex struct {
	Position [2]float32 // offset 0: position in clip space (8 bytes)
	TexCoord [2]float32 // offset 8: UV texture coordinate (8 bytes)
}

// Size returns the size of the Vertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (v *Vertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// Marshal serializes the Vertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload.
func (v *Vertex) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.TexCoord[1]))
	return buf
}

// Mesh is a static set of vertices and triangle indices. Created once at startup,
// uploaded once, never mutated afterwards.
type Mesh struct {
	// Vertices is the interleaved vertex array.
	Vertices []Vertex

	// Indices is the triangle index list referencing Vertices.
	Indices []uint32
}

// Quad returns the unit quad spanning [-1, 1] on both axes with texture coordinates
// spanning [0, 1] on both axes: 4 vertices and 6 indices forming 2 triangles.
//
// Returns:
//   - *Mesh: the unit quad mesh
func Quad() *Mesh {
	return &Mesh{
		Vertices: []Vertex{
			{Position: [2]float32{-1, 1}, TexCoord: [2]float32{0, 1}},  // top-left
			{Position: [2]float32{-1, -1}, TexCoord: [2]float32{0, 0}}, // bottom-left
			{Position: [2]float32{1, -1}, TexCoord: [2]float32{1, 0}},  // bottom-right
			{Position: [2]float32{1, 1}, TexCoord: [2]float32{1, 1}},   // top-right
		},
		Indices: []uint32{
			0, 1, 2,
			0, 2, 3,
		},
	}
}

// IndexCount returns the number of indices, used for indexed draw calls.
//
// Returns:
//   - int: number of indices
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// VertexBytes serializes all vertices into a contiguous little-endian byte buffer
// for the GPU vertex buffer.
//
// Returns:
//   - []byte: the vertex buffer contents
func (m *Mesh) VertexBytes() []byte {
	buf := make([]byte, 0, len(m.Vertices)*16)
	for i := range m.Vertices {
		buf = append(buf, m.Vertices[i].Marshal()...)
	}
	return buf
}

// IndexBytes serializes all indices into a contiguous little-endian byte buffer
// for the GPU index buffer (uint32 indices).
//
// Returns:
//   - []byte: the index buffer contents
func (m *Mesh) IndexBytes() []byte {
	buf := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], idx)
	}
	return buf
}
