// Package pipeline describes render pipelines independently of the graphics API: the shader
// pair, the resolved vertex buffer layouts and fixed-function state. The renderer backend
// creates the API object and stores it back through SetHandle.
package pipeline

import (
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/shader"
)

// CullMode selects which triangle faces are discarded.
type CullMode int

const (
	CullModeNone CullMode = iota
	CullModeFront
	CullModeBack
)

// FrontFace selects the winding order of front-facing triangles.
type FrontFace int

const (
	FrontFaceCCW FrontFace = iota
	FrontFaceCW
)

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	pipelineKey string

	// vertexShader and fragmentShader are the two stages of the render pipeline.
	vertexShader, fragmentShader shader.Shader

	// vertexLayouts are indexed by vertex buffer slot.
	vertexLayouts []VertexBufferLayout

	// handle is the backend pipeline object, nil until the renderer registers the pipeline.
	handle any

	depthTestEnabled  bool
	depthWriteEnabled bool
	cullMode          CullMode
	frontFace         FrontFace
}

// Pipeline is a render pipeline description plus the backend object created from it.
type Pipeline interface {
	// PipelineKey retrieves the unique identifier for the pipeline.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// Shader returns the shader for a given stage.
	//
	// Parameters:
	//   - shaderType: the stage to look up
	//
	// Returns:
	//   - shader.Shader: the shader, or nil if not set
	Shader(shaderType shader.ShaderType) shader.Shader

	// VertexLayouts returns the resolved vertex buffer layouts indexed by slot.
	//
	// Returns:
	//   - []VertexBufferLayout: the layouts
	VertexLayouts() []VertexBufferLayout

	// Handle returns the backend pipeline object, or nil if not yet created.
	//
	// Returns:
	//   - any: the backend object
	Handle() any

	// SetHandle stores the backend pipeline object.
	//
	// Parameters:
	//   - h: the backend object
	SetHandle(h any)

	// DepthTestEnabled reports whether fragments are depth tested with a less-than compare.
	DepthTestEnabled() bool

	// DepthWriteEnabled reports whether passing fragments write depth.
	DepthWriteEnabled() bool

	// CullMode returns the face culling mode.
	CullMode() CullMode

	// FrontFace returns the front face winding.
	FrontFace() FrontFace
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a render pipeline description. Depth test and write are enabled and
// culling is disabled by default.
//
// Parameters:
//   - pipelineKey: unique identifier, used as the backend label
//   - opts: functional options
//
// Returns:
//   - Pipeline: the description
func NewPipeline(pipelineKey string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:       pipelineKey,
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		cullMode:          CullModeNone,
		frontFace:         FrontFaceCCW,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Shader(shaderType shader.ShaderType) shader.Shader {
	switch shaderType {
	case shader.ShaderTypeVertex:
		return p.vertexShader
	case shader.ShaderTypeFragment:
		return p.fragmentShader
	default:
		return nil
	}
}

func (p *pipeline) VertexLayouts() []VertexBufferLayout {
	return p.vertexLayouts
}

func (p *pipeline) Handle() any {
	return p.handle
}

func (p *pipeline) SetHandle(h any) {
	p.handle = h
}

func (p *pipeline) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *pipeline) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *pipeline) CullMode() CullMode {
	return p.cullMode
}

func (p *pipeline) FrontFace() FrontFace {
	return p.frontFace
}
