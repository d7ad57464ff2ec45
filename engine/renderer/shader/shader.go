// Package shader loads WGSL shaders, expands @oxy: annotations and extracts the vertex input
// and resource binding metadata needed to build a render pipeline. Nothing here depends on a
// graphics API; the renderer backend translates the parsed metadata.
package shader

import (
	"errors"
	"fmt"
)

// ShaderType identifies the pipeline stage a shader module is used for.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	}
	return fmt.Sprintf("ShaderType(%d)", int(t))
}

var (
	// ErrEmptySource is returned by NewShader when no WGSL source is supplied.
	ErrEmptySource = errors.New("shader: empty source")

	// ErrNoEntryPoint is returned by NewShader when the source has no entry point for its stage.
	ErrNoEntryPoint = errors.New("shader: no entry point")
)

// shader is the implementation of the Shader interface.
// It holds all of the persistent shader data required for pipeline creation.
type shader struct {
	key           string
	source        string
	shaderType    ShaderType
	entryPoint    string
	vertexStructs []VertexStruct
	bindings      []Binding

	pp PreProcessor
}

// Shader is a pre-processed and parsed WGSL shader module.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used as the module label.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the pre-processed WGSL source code.
	//
	// Returns:
	//   - string: the WGSL source with all annotations expanded
	Source() string

	// ShaderType returns the pipeline stage of the shader.
	//
	// Returns:
	//   - ShaderType: ShaderTypeVertex or ShaderTypeFragment
	ShaderType() ShaderType

	// EntryPoint returns the entry point name for this shader.
	//
	// Returns:
	//   - string: the entry point name (e.g. "vs_main")
	EntryPoint() string

	// VertexStructs returns the vertex input structs in source order. Fragment shaders
	// return nil.
	//
	// Returns:
	//   - []VertexStruct: the parsed vertex input structs
	VertexStructs() []VertexStruct

	// VertexInput looks up a @location field by name across every vertex input struct.
	//
	// Parameters:
	//   - name: the WGSL field name
	//
	// Returns:
	//   - VertexInput: the matching input
	//   - bool: false if no vertex input struct declares the field
	VertexInput(name string) (VertexInput, bool)

	// Bindings returns every @group/@binding resource, sorted by group then binding.
	//
	// Returns:
	//   - []Binding: the declared resources
	Bindings() []Binding

	// Declarations returns the @oxy:group annotations found during pre-processing.
	//
	// Returns:
	//   - []Annotation: the binding annotations in source order
	Declarations() []Annotation
}

var _ Shader = &shader{}

// NewShader pre-processes and parses WGSL source.
//
// Parameters:
//   - key: a unique identifier for the shader, used for labels and lookups
//   - shaderType: the pipeline stage
//   - source: the raw WGSL source, possibly containing @oxy: annotations
//
// Returns:
//   - Shader: the parsed shader
//   - error: if the source is empty, an annotation is malformed or no entry point exists
func NewShader(key string, shaderType ShaderType, source string) (Shader, error) {
	if source == "" {
		return nil, fmt.Errorf("%s: %w", key, ErrEmptySource)
	}
	s := &shader{
		key:        key,
		shaderType: shaderType,
		pp:         NewPreProcessor(),
	}
	if err := s.parseSource(source); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) VertexStructs() []VertexStruct {
	return s.vertexStructs
}

func (s *shader) VertexInput(name string) (VertexInput, bool) {
	for _, vs := range s.vertexStructs {
		for _, in := range vs.Inputs {
			if in.Name == name {
				return in, true
			}
		}
	}
	return VertexInput{}, false
}

func (s *shader) Bindings() []Binding {
	return s.bindings
}

func (s *shader) Declarations() []Annotation {
	return s.pp.Declarations()
}

// parseSource runs the pre-processor, then extracts the entry point, the bindings and, for
// vertex shaders, the vertex input structs.
func (s *shader) parseSource(raw string) error {
	var err error
	s.source, err = s.pp.Process(raw)
	if err != nil {
		return fmt.Errorf("shader: failed to pre-process %q: %w", s.key, err)
	}

	s.entryPoint = parseEntryPoint(s.source, s.shaderType)
	if s.entryPoint == "" {
		return fmt.Errorf("%s: %w for %s stage", s.key, ErrNoEntryPoint, s.shaderType)
	}
	if s.shaderType == ShaderTypeVertex {
		s.vertexStructs = parseVertexStructs(s.source)
	}
	s.bindings = parseBindings(s.source)
	return nil
}
