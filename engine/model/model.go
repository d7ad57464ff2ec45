// Package model holds CPU-side mesh data ready for GPU upload, plus the procedural sphere generator.
package model

import "github.com/Carmen-Shannon/oxy-spheres/common"

// model is the implementation of the Model interface.
type model struct {
	name           string
	vertices       []GPUVertex
	indices        []uint32
	boundingRadius float32
}

// Model is an immutable indexed triangle mesh. Vertices are interleaved position+normal
// (see GPUVertex) and indices are u32 triangle lists.
type Model interface {
	// Name retrieves the model identifier, used as the GPU buffer label.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices returns the vertex list in emission order. Callers must not modify it.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices returns the triangle index list. Callers must not modify it.
	//
	// Returns:
	//   - []uint32: three indices per triangle
	Indices() []uint32

	// VertexCount returns the number of vertices.
	VertexCount() int

	// IndexCount returns the number of indices, used for indexed draw calls.
	IndexCount() int

	// VertexData serializes the vertices into the little-endian GPU vertex buffer layout.
	//
	// Returns:
	//   - []byte: VertexCount()*GPUVertexStride bytes
	VertexData() []byte

	// IndexData serializes the indices into a little-endian u32 index buffer.
	//
	// Returns:
	//   - []byte: IndexCount()*4 bytes
	IndexData() []byte

	// BoundingRadius returns the radius of a sphere centered at the origin enclosing every vertex.
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a Model from the given options. Without WithVertices and WithIndices the
// model is empty.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the new model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		name: "Model",
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexCount() int {
	return len(m.vertices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) VertexData() []byte {
	return marshalVertices(m.vertices)
}

func (m *model) IndexData() []byte {
	return common.Uint32sToBytes(m.indices)
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
