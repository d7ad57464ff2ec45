// Package bind_group_provider groups the GPU objects bound together for a draw: the vertex
// buffers per slot, the index buffer, and a bind group with its uniform buffers.
package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// bindGroupProvider is the implementation of the BindGroupProvider interface.
type bindGroupProvider struct {
	// label prefixes the labels of every GPU object created for this provider.
	label string

	// bindGroup is the GPU bind group created from bindGroupLayout and buffers.
	bindGroup *wgpu.BindGroup

	// bindGroupLayout describes the layout shared with the pipeline layout.
	bindGroupLayout *wgpu.BindGroupLayout

	// buffers maps binding index to the backing uniform or storage buffer.
	buffers map[int]*wgpu.Buffer

	// vertexBuffers maps vertex buffer slot to buffer.
	vertexBuffers map[int]*wgpu.Buffer

	indexBuffer *wgpu.Buffer
	indexCount  int
}

// BindGroupProvider owns a set of GPU buffers and the bind group referencing them. It only
// stores handles; the renderer backend creates the objects.
type BindGroupProvider interface {
	// Release frees the buffers and bind group held by the provider. The layout is left to its creator.
	Release()

	// Label retrieves the provider label.
	//
	// Returns:
	//   - string: the label
	Label() string

	// BindGroup returns the bind group, or nil if not created.
	BindGroup() *wgpu.BindGroup

	// BindGroupLayout returns the bind group layout, or nil if not created.
	BindGroupLayout() *wgpu.BindGroupLayout

	// Buffer returns the buffer at a binding index, or nil.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer or nil
	Buffer(binding int) *wgpu.Buffer

	// Buffers returns all bound buffers keyed by binding index.
	Buffers() map[int]*wgpu.Buffer

	// VertexBuffer returns the vertex buffer at a slot, or nil.
	//
	// Parameters:
	//   - slot: the vertex buffer slot
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer or nil
	VertexBuffer(slot int) *wgpu.Buffer

	// VertexBuffers returns all vertex buffers keyed by slot.
	VertexBuffers() map[int]*wgpu.Buffer

	// IndexBuffer returns the u32 index buffer, or nil.
	IndexBuffer() *wgpu.Buffer

	// IndexCount returns the number of indices in the index buffer.
	IndexCount() int

	SetBindGroup(bg *wgpu.BindGroup)

	SetBindGroupLayout(bgl *wgpu.BindGroupLayout)

	SetBuffer(binding int, buf *wgpu.Buffer)

	SetVertexBuffer(slot int, buf *wgpu.Buffer)

	SetIndexBuffer(buf *wgpu.Buffer)

	SetIndexCount(count int)
}

var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates an empty provider.
//
// Parameters:
//   - label: prefix for GPU object labels
//   - options: functional options
//
// Returns:
//   - BindGroupProvider: the provider
func NewBindGroupProvider(label string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{
		label:         label,
		buffers:       make(map[int]*wgpu.Buffer),
		vertexBuffers: make(map[int]*wgpu.Buffer),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *bindGroupProvider) Label() string {
	return p.label
}

func (p *bindGroupProvider) BindGroup() *wgpu.BindGroup {
	return p.bindGroup
}

func (p *bindGroupProvider) BindGroupLayout() *wgpu.BindGroupLayout {
	return p.bindGroupLayout
}

func (p *bindGroupProvider) Buffer(binding int) *wgpu.Buffer {
	return p.buffers[binding]
}

func (p *bindGroupProvider) Buffers() map[int]*wgpu.Buffer {
	return p.buffers
}

func (p *bindGroupProvider) VertexBuffer(slot int) *wgpu.Buffer {
	return p.vertexBuffers[slot]
}

func (p *bindGroupProvider) VertexBuffers() map[int]*wgpu.Buffer {
	return p.vertexBuffers
}

func (p *bindGroupProvider) IndexBuffer() *wgpu.Buffer {
	return p.indexBuffer
}

func (p *bindGroupProvider) IndexCount() int {
	return p.indexCount
}

func (p *bindGroupProvider) SetBindGroup(bg *wgpu.BindGroup) {
	p.bindGroup = bg
}

func (p *bindGroupProvider) SetBindGroupLayout(bgl *wgpu.BindGroupLayout) {
	p.bindGroupLayout = bgl
}

func (p *bindGroupProvider) SetBuffer(binding int, buf *wgpu.Buffer) {
	p.buffers[binding] = buf
}

func (p *bindGroupProvider) SetVertexBuffer(slot int, buf *wgpu.Buffer) {
	p.vertexBuffers[slot] = buf
}

func (p *bindGroupProvider) SetIndexBuffer(buf *wgpu.Buffer) {
	p.indexBuffer = buf
}

func (p *bindGroupProvider) SetIndexCount(count int) {
	p.indexCount = count
}

func (p *bindGroupProvider) Release() {
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	// the layout is shared with a pipeline layout and released by the backend
	p.bindGroupLayout = nil
	for i, buf := range p.buffers {
		if buf != nil {
			buf.Release()
		}
		delete(p.buffers, i)
	}
	for slot, buf := range p.vertexBuffers {
		if buf != nil {
			buf.Release()
		}
		delete(p.vertexBuffers, slot)
	}
	if p.indexBuffer != nil {
		p.indexBuffer.Release()
		p.indexBuffer = nil
	}
	p.indexCount = 0
}
