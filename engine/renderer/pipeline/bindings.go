package pipeline

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/shader"
)

var (
	// ErrUnknownSemantic is returned when a binding names a field no vertex input struct declares.
	ErrUnknownSemantic = errors.New("pipeline: unknown vertex semantic")

	// ErrFormatMismatch is returned when a binding's format differs from the shader field type.
	ErrFormatMismatch = errors.New("pipeline: vertex format mismatch")

	// ErrSlotConflict is returned when bindings sharing a slot disagree on step mode, or slots
	// are not contiguous from 0.
	ErrSlotConflict = errors.New("pipeline: vertex buffer slot conflict")
)

// StepMode selects whether a vertex buffer advances per vertex or per instance.
type StepMode int

const (
	StepModeVertex StepMode = iota
	StepModeInstance
)

func (m StepMode) String() string {
	if m == StepModeInstance {
		return "instance"
	}
	return "vertex"
}

// VertexBinding describes where one shader input lives in client-side buffers.
type VertexBinding struct {
	Semantic string              // WGSL field name of the vertex input
	Slot     int                 // vertex buffer slot
	Offset   uint64              // byte offset within one element of the buffer
	Format   shader.VertexFormat // expected attribute format
	StepMode StepMode
}

// VertexAttribute is a resolved binding: a shader location fed from a buffer offset.
type VertexAttribute struct {
	Semantic       string
	Format         shader.VertexFormat
	Offset         uint64
	ShaderLocation uint32
}

// VertexBufferLayout is the API-agnostic layout of one vertex buffer slot.
type VertexBufferLayout struct {
	Slot        int
	ArrayStride uint64
	StepMode    StepMode
	Attributes  []VertexAttribute
}

// ResolveLayouts looks every binding up in the shader by semantic and groups them into one
// layout per slot, ordered by slot. The stride of a slot is the end of its furthest attribute,
// so buffers must be tightly packed.
//
// Parameters:
//   - s: the parsed vertex shader
//   - bindings: the binding descriptors
//
// Returns:
//   - []VertexBufferLayout: layouts indexed by slot
//   - error: ErrUnknownSemantic, ErrFormatMismatch or ErrSlotConflict
func ResolveLayouts(s shader.Shader, bindings []VertexBinding) ([]VertexBufferLayout, error) {
	bySlot := make(map[int]*VertexBufferLayout)

	for _, b := range bindings {
		in, ok := s.VertexInput(b.Semantic)
		if !ok {
			return nil, fmt.Errorf("%w: %q not declared by shader %q", ErrUnknownSemantic, b.Semantic, s.Key())
		}
		if b.Format == shader.VertexFormatUndefined {
			return nil, fmt.Errorf("%w: %q has no vertex format", ErrFormatMismatch, b.Semantic)
		}
		if in.Format != b.Format {
			return nil, fmt.Errorf("%w: %q is %s in shader, binding declares %s", ErrFormatMismatch, b.Semantic, in.Format, b.Format)
		}

		layout, ok := bySlot[b.Slot]
		if !ok {
			layout = &VertexBufferLayout{Slot: b.Slot, StepMode: b.StepMode}
			bySlot[b.Slot] = layout
		} else if layout.StepMode != b.StepMode {
			return nil, fmt.Errorf("%w: slot %d mixes %s and %s step modes", ErrSlotConflict, b.Slot, layout.StepMode, b.StepMode)
		}

		layout.Attributes = append(layout.Attributes, VertexAttribute{
			Semantic:       b.Semantic,
			Format:         b.Format,
			Offset:         b.Offset,
			ShaderLocation: uint32(in.Location),
		})
		layout.ArrayStride = max(layout.ArrayStride, b.Offset+b.Format.Size())
	}

	layouts := make([]VertexBufferLayout, 0, len(bySlot))
	for _, l := range bySlot {
		sort.Slice(l.Attributes, func(i, j int) bool {
			return l.Attributes[i].ShaderLocation < l.Attributes[j].ShaderLocation
		})
		layouts = append(layouts, *l)
	}
	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].Slot < layouts[j].Slot
	})
	for i, l := range layouts {
		if l.Slot != i {
			return nil, fmt.Errorf("%w: slots must be contiguous from 0, found slot %d at position %d", ErrSlotConflict, l.Slot, i)
		}
	}

	return layouts, nil
}
