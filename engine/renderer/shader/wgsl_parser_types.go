package shader

// VertexFormat identifies the data type of a single vertex attribute.
// The renderer backend maps each value to its graphics API counterpart.
type VertexFormat int

const (
	VertexFormatUndefined VertexFormat = iota
	VertexFormatFloat32
	VertexFormatFloat32x2
	VertexFormatFloat32x3
	VertexFormatFloat32x4
	VertexFormatSint32
	VertexFormatSint32x2
	VertexFormatSint32x3
	VertexFormatSint32x4
	VertexFormatUint32
	VertexFormatUint32x2
	VertexFormatUint32x3
	VertexFormatUint32x4
)

var vertexFormatNames = map[VertexFormat]string{
	VertexFormatUndefined: "undefined",
	VertexFormatFloat32:   "float32",
	VertexFormatFloat32x2: "float32x2",
	VertexFormatFloat32x3: "float32x3",
	VertexFormatFloat32x4: "float32x4",
	VertexFormatSint32:    "sint32",
	VertexFormatSint32x2:  "sint32x2",
	VertexFormatSint32x3:  "sint32x3",
	VertexFormatSint32x4:  "sint32x4",
	VertexFormatUint32:    "uint32",
	VertexFormatUint32x2:  "uint32x2",
	VertexFormatUint32x3:  "uint32x3",
	VertexFormatUint32x4:  "uint32x4",
}

func (f VertexFormat) String() string {
	if name, ok := vertexFormatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Size returns the byte size of one attribute of this format, or 0 if undefined.
func (f VertexFormat) Size() uint64 {
	switch f {
	case VertexFormatFloat32, VertexFormatSint32, VertexFormatUint32:
		return 4
	case VertexFormatFloat32x2, VertexFormatSint32x2, VertexFormatUint32x2:
		return 8
	case VertexFormatFloat32x3, VertexFormatSint32x3, VertexFormatUint32x3:
		return 12
	case VertexFormatFloat32x4, VertexFormatSint32x4, VertexFormatUint32x4:
		return 16
	}
	return 0
}

// VertexInput is one @location field of a vertex input struct.
type VertexInput struct {
	Name     string       // field name, used as the semantic
	Struct   string       // name of the WGSL struct declaring the field
	Location int          // @location index
	Format   VertexFormat // attribute format derived from the WGSL type
	Offset   uint64       // byte offset within the tightly packed struct
}

// VertexStruct is a WGSL struct whose fields all carry @location, in declaration order.
type VertexStruct struct {
	Name   string
	Inputs []VertexInput
	Stride uint64 // sum of attribute sizes, no padding
}

// BufferBindingType classifies a @group/@binding buffer declaration.
type BufferBindingType int

const (
	BufferBindingTypeUndefined BufferBindingType = iota
	BufferBindingTypeUniform
	BufferBindingTypeReadOnlyStorage
	BufferBindingTypeStorage
)

// Binding is one @group/@binding resource declared by the shader.
type Binding struct {
	Group   int
	Binding int
	Name    string
	Type    string // WGSL type name
	Buffer  BufferBindingType
	MinSize uint64 // computed WGSL size of Type, 0 if unknown
}

// wgslTypeLayout holds the byte size and alignment for a WGSL type under WGSL host-shareable layout rules.
// Used to compute MinSize for buffer bindings.
type wgslTypeLayout struct {
	size  uint64
	align uint64
}

// parsedField represents a single field extracted from a WGSL struct during parsing
type parsedField struct {
	name      string
	typeName  string
	location  int
	isBuiltin bool
}

// parsedStruct represents a WGSL struct block extracted during parsing
type parsedStruct struct {
	name   string
	fields []parsedField
}
