// annotations.go defines the @oxy: annotation syntax understood by the pre-processor.
//
// Supported forms, each on its own line (usually behind a WGSL line comment):
//
//	//@oxy:include <struct type>
//	//@oxy:group <group> <binding> <address space> <var name> <struct type>
//
// include injects the WGSL source of a registered GPU struct. group emits a
// @group/@binding variable declaration whose type is the registered struct's WGSL name.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const annotationPrefix = "@oxy:"

// AnnotationType is the directive following the @oxy: prefix.
type AnnotationType string

const (
	// annotationTypeInclude injects a registered struct source.
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup declares a resource binding and is recorded in the
	// shader's declarations.
	AnnotationTypeBindingGroup AnnotationType = "group"
)

// Annotation is a parsed @oxy: directive.
type Annotation struct {
	// Type is the directive kind.
	Type AnnotationType

	// Args holds the non-numeric arguments. For include: [struct type]. For group:
	// [address space, var name, struct type].
	Args []AnnotationArg

	// Line is the 1-based source line the annotation was found on.
	Line int

	// Group and Binding are set for AnnotationTypeBindingGroup only.
	Group   *int
	Binding *int
}

// AnnotationArg is a single annotation argument token.
type AnnotationArg string

// Struct type arguments, keys into the pre-processor struct registry.
const (
	AnnotationArgCamera   AnnotationArg = "camera"
	AnnotationArgVertex   AnnotationArg = "vertex"
	AnnotationArgInstance AnnotationArg = "instance"
)

// Address space arguments.
const (
	annotationArgStorageTypeUniform   AnnotationArg = "storage_uniform"
	annotationArgStorageTypeRead      AnnotationArg = "storage_read"
	annotationArgStorageTypeReadWrite AnnotationArg = "storage_read_write"
)

var validStructTypes = []AnnotationArg{
	AnnotationArgCamera,
	AnnotationArgVertex,
	AnnotationArgInstance,
}

var validAddressSpaces = []AnnotationArg{
	annotationArgStorageTypeUniform,
	annotationArgStorageTypeRead,
	annotationArgStorageTypeReadWrite,
}

// parseAnnotation parses a single source line. It returns (nil, nil) when the line carries
// no @oxy: annotation.
//
// Parameters:
//   - line: the raw source line
//   - lineNum: 1-based line number for error messages
//
// Returns:
//   - *Annotation: the parsed annotation or nil
//   - error: if the annotation is malformed or names an unknown argument
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @oxy annotation", lineNum)
	}

	switch args[0] {
	case string(annotationTypeInclude):
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @oxy include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @oxy include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: annotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil
	case string(AnnotationTypeBindingGroup):
		if len(args) != 6 {
			return nil, fmt.Errorf("line %d: @oxy group annotation requires exactly five arguments (group number, binding number, address space, var name, struct type)", lineNum)
		}
		groupInt, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid group number %q in @oxy group annotation: %v", lineNum, args[1], err)
		}
		bindingInt, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid binding number %q in @oxy group annotation: %v", lineNum, args[2], err)
		}
		if !slices.Contains(validAddressSpaces, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown address space %q in @oxy group annotation", lineNum, args[3])
		}
		typeArg := args[5]
		if inner, ok := strings.CutPrefix(typeArg, "array<"); ok {
			typeArg = strings.TrimSuffix(inner, ">")
		}
		if !slices.Contains(validStructTypes, AnnotationArg(typeArg)) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @oxy group annotation", lineNum, typeArg)
		}
		return &Annotation{
			Type:    AnnotationTypeBindingGroup,
			Args:    []AnnotationArg{AnnotationArg(args[3]), AnnotationArg(args[4]), AnnotationArg(args[5])},
			Line:    lineNum,
			Group:   &groupInt,
			Binding: &bindingInt,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @oxy annotation type %q", lineNum, args[0])
	}
}
