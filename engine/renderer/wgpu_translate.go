package renderer

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

var wgpuVertexFormats = map[shader.VertexFormat]wgpu.VertexFormat{
	shader.VertexFormatFloat32:   wgpu.VertexFormatFloat32,
	shader.VertexFormatFloat32x2: wgpu.VertexFormatFloat32x2,
	shader.VertexFormatFloat32x3: wgpu.VertexFormatFloat32x3,
	shader.VertexFormatFloat32x4: wgpu.VertexFormatFloat32x4,
	shader.VertexFormatSint32:    wgpu.VertexFormatSint32,
	shader.VertexFormatSint32x2:  wgpu.VertexFormatSint32x2,
	shader.VertexFormatSint32x3:  wgpu.VertexFormatSint32x3,
	shader.VertexFormatSint32x4:  wgpu.VertexFormatSint32x4,
	shader.VertexFormatUint32:    wgpu.VertexFormatUint32,
	shader.VertexFormatUint32x2:  wgpu.VertexFormatUint32x2,
	shader.VertexFormatUint32x3:  wgpu.VertexFormatUint32x3,
	shader.VertexFormatUint32x4:  wgpu.VertexFormatUint32x4,
}

var wgpuBufferBindingTypes = map[shader.BufferBindingType]wgpu.BufferBindingType{
	shader.BufferBindingTypeUniform:         wgpu.BufferBindingTypeUniform,
	shader.BufferBindingTypeReadOnlyStorage: wgpu.BufferBindingTypeReadOnlyStorage,
	shader.BufferBindingTypeStorage:         wgpu.BufferBindingTypeStorage,
}

// toWGPUVertexFormat returns the zero format for VertexFormatUndefined; ResolveLayouts
// rejects undefined formats before a layout reaches the backend.
func toWGPUVertexFormat(f shader.VertexFormat) wgpu.VertexFormat {
	return wgpuVertexFormats[f]
}

func toWGPUStepMode(m pipeline.StepMode) wgpu.VertexStepMode {
	if m == pipeline.StepModeInstance {
		return wgpu.VertexStepModeInstance
	}
	return wgpu.VertexStepModeVertex
}

func toWGPUCullMode(m pipeline.CullMode) wgpu.CullMode {
	switch m {
	case pipeline.CullModeFront:
		return wgpu.CullModeFront
	case pipeline.CullModeBack:
		return wgpu.CullModeBack
	}
	return wgpu.CullModeNone
}

func toWGPUFrontFace(f pipeline.FrontFace) wgpu.FrontFace {
	if f == pipeline.FrontFaceCW {
		return wgpu.FrontFaceCW
	}
	return wgpu.FrontFaceCCW
}

// toWGPUVertexBufferLayouts converts resolved layouts, already ordered by slot, to wgpu layouts.
func toWGPUVertexBufferLayouts(layouts []pipeline.VertexBufferLayout) []wgpu.VertexBufferLayout {
	out := make([]wgpu.VertexBufferLayout, 0, len(layouts))
	for _, l := range layouts {
		attrs := make([]wgpu.VertexAttribute, 0, len(l.Attributes))
		for _, a := range l.Attributes {
			attrs = append(attrs, wgpu.VertexAttribute{
				Format:         toWGPUVertexFormat(a.Format),
				Offset:         a.Offset,
				ShaderLocation: a.ShaderLocation,
			})
		}
		out = append(out, wgpu.VertexBufferLayout{
			ArrayStride: l.ArrayStride,
			StepMode:    toWGPUStepMode(l.StepMode),
			Attributes:  attrs,
		})
	}
	return out
}

// bindGroupLayoutDescriptors groups buffer bindings into one layout descriptor per group.
// Bindings that are not buffers are skipped.
func bindGroupLayoutDescriptors(bindings []shader.Binding, visibility wgpu.ShaderStage) map[int]wgpu.BindGroupLayoutDescriptor {
	entries := make(map[int][]wgpu.BindGroupLayoutEntry)
	for _, b := range bindings {
		bufferType, ok := wgpuBufferBindingTypes[b.Buffer]
		if !ok {
			continue
		}
		entry := wgpu.BindGroupLayoutEntry{
			Binding:    uint32(b.Binding),
			Visibility: visibility,
		}
		entry.Buffer.Type = bufferType
		entry.Buffer.MinBindingSize = b.MinSize
		entries[b.Group] = append(entries[b.Group], entry)
	}

	out := make(map[int]wgpu.BindGroupLayoutDescriptor, len(entries))
	for g, e := range entries {
		sort.Slice(e, func(i, j int) bool { return e[i].Binding < e[j].Binding })
		out[g] = wgpu.BindGroupLayoutDescriptor{
			Label:   fmt.Sprintf("Group %d Layout", g),
			Entries: e,
		}
	}
	return out
}
