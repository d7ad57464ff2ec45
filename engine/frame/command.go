// Package frame turns elapsed time into the ordered list of draw commands for one frame.
// Commands carry plain data only, so a frame can be inspected without a GPU.
package frame

import "github.com/go-gl/mathgl/mgl32"

// CommandType identifies the kind of a Command.
type CommandType int

const (
	CommandTypeClear CommandType = iota
	CommandTypeSetUniform
	CommandTypeDrawIndexedInstanced
)

func (t CommandType) String() string {
	switch t {
	case CommandTypeClear:
		return "Clear"
	case CommandTypeSetUniform:
		return "SetUniform"
	case CommandTypeDrawIndexedInstanced:
		return "DrawIndexedInstanced"
	}
	return "Unknown"
}

// Command is one step of a frame.
type Command interface {
	Type() CommandType
}

// Uniform names understood by the renderer.
const (
	UniformView       = "view"
	UniformProjection = "projection"
)

// Clear clears the color and depth targets.
type Clear struct {
	Color mgl32.Vec4
	Depth float32
}

// SetUniform writes a 4x4 matrix uniform by name.
type SetUniform struct {
	Name  string
	Value mgl32.Mat4
}

// DrawIndexedInstanced draws the bound index buffer once per instance.
type DrawIndexedInstanced struct {
	IndexCount    uint32
	InstanceCount uint32
}

func (Clear) Type() CommandType { return CommandTypeClear }

func (SetUniform) Type() CommandType { return CommandTypeSetUniform }

func (DrawIndexedInstanced) Type() CommandType { return CommandTypeDrawIndexedInstanced }
