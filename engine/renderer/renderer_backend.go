package renderer

import (
	"github.com/Carmen-Shannon/oxy-spheres/engine/frame"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/shader"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1). This is the default.
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is the GPU API specific half of the Renderer. The Renderer does the
// graphics-API-agnostic work (shader parsing, layout resolution, command dispatch) and
// delegates object creation and encoding here.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain and the depth and MSAA targets.
	ConfigureSurface(width, height int) error

	// SetPresentMode selects vsync or uncapped presentation for the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// RegisterRenderPipeline compiles both shader modules and creates the pipeline object,
	// storing it with p.SetHandle. Shader module failures wrap ErrShaderCompile.
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// InitMeshBuffers uploads write-once vertex and index data.
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, slot int, vertexData, indexData []byte, indexCount int) error

	// InitVertexBuffer uploads a write-once vertex buffer for a slot.
	InitVertexBuffer(provider bind_group_provider.BindGroupProvider, slot int, data []byte) error

	// InitBindGroup creates the uniform buffers and bind group for one group of bindings.
	InitBindGroup(provider bind_group_provider.BindGroupProvider, bindings []shader.Binding) error

	// WriteBuffers queues writes into bound buffers.
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the next surface texture and begins the render pass with the
	// given clear values.
	BeginFrame(clear frame.Clear) error

	// DrawCall records one indexed instanced draw.
	DrawCall(p pipeline.Pipeline, mesh bind_group_provider.BindGroupProvider, group uint32, bindGroup bind_group_provider.BindGroupProvider, indexCount, instanceCount uint32)

	// EndFrame ends the pass and submits the command buffer.
	EndFrame()

	// Present presents the acquired surface texture.
	Present()

	// Release frees the device, surface and every backend-owned object.
	Release()
}
