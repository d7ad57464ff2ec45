package model

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-spheres/common"
)

// GPUVertexSource is the canonical WGSL definition of the per-vertex VertexInput struct.
// Matches GPUVertex layout exactly (24 bytes, tightly packed vertex attributes).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertexStride is the byte stride of one GPUVertex in the vertex buffer.
const GPUVertexStride = 24

// GPUVertex is the GPU representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 24 bytes.
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 24-byte little-endian buffer
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexStride)
	g.put(buf)
	return buf
}

func (g *GPUVertex) put(buf []byte) {
	off := common.PutFloat32s(buf, 0, g.Position[:]...)
	common.PutFloat32s(buf, off, g.Normal[:]...)
}

// marshalVertices packs vertices back to back into one buffer.
func marshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, len(vertices)*GPUVertexStride)
	for i := range vertices {
		vertices[i].put(buf[i*GPUVertexStride:])
	}
	return buf
}
