package shader

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// wgslVertexFormatMap maps WGSL scalar and vector type names to vertex attribute formats.
var wgslVertexFormatMap = map[string]VertexFormat{
	"f32":       VertexFormatFloat32,
	"vec2f":     VertexFormatFloat32x2,
	"vec2<f32>": VertexFormatFloat32x2,
	"vec3f":     VertexFormatFloat32x3,
	"vec3<f32>": VertexFormatFloat32x3,
	"vec4f":     VertexFormatFloat32x4,
	"vec4<f32>": VertexFormatFloat32x4,
	"i32":       VertexFormatSint32,
	"vec2i":     VertexFormatSint32x2,
	"vec2<i32>": VertexFormatSint32x2,
	"vec3i":     VertexFormatSint32x3,
	"vec3<i32>": VertexFormatSint32x3,
	"vec4i":     VertexFormatSint32x4,
	"vec4<i32>": VertexFormatSint32x4,
	"u32":       VertexFormatUint32,
	"vec2u":     VertexFormatUint32x2,
	"vec2<u32>": VertexFormatUint32x2,
	"vec3u":     VertexFormatUint32x3,
	"vec3<u32>": VertexFormatUint32x3,
	"vec4u":     VertexFormatUint32x4,
	"vec4<u32>": VertexFormatUint32x4,
}

var (
	// structBlockRegex matches a WGSL struct declaration and captures its name and body.
	structBlockRegex = regexp.MustCompile(`struct\s+(\w+)\s*\{([^}]*)\}`)

	locationRegex = regexp.MustCompile(`@location\((\d+)\)`)

	builtinRegex = regexp.MustCompile(`@builtin\(\w+\)`)

	// fieldRegex captures the field name and type after any leading attributes.
	fieldRegex = regexp.MustCompile(`(?:(?:@\w+\([^)]*\)\s*)*)*\s*(\w+)\s*:\s*(.+)`)

	vertexEntryRegex = regexp.MustCompile(`(?s)@vertex\b.*?\bfn\s+(\w+)`)

	fragmentEntryRegex = regexp.MustCompile(`(?s)@fragment\b.*?\bfn\s+(\w+)`)

	// bindGroupDeclRegex captures group, binding, optional address space, variable name and type.
	bindGroupDeclRegex = regexp.MustCompile(`@group\((\d+)\)\s*@binding\((\d+)\)\s*var(?:<([^>]*)>)?\s+(\w+)\s*:\s*([^;]+?)\s*;`)
)

// parseVertexStructs extracts every vertex input struct from the source, in source order.
// Structs containing a @builtin field or a type with no vertex format are skipped.
//
// Parameters:
//   - source: pre-processed WGSL source
//
// Returns:
//   - []VertexStruct: the vertex input structs
func parseVertexStructs(source string) []VertexStruct {
	cleaned := stripComments(source)
	structs := parseStructBlocks(cleaned)

	result := make([]VertexStruct, 0, len(structs))
	for _, ps := range structs {
		if !isVertexInputStruct(ps) {
			continue
		}
		vs, ok := buildVertexStruct(ps)
		if !ok {
			continue
		}
		result = append(result, vs)
	}
	return result
}

// parseBindings extracts every @group/@binding declaration, sorted by group then binding.
//
// Parameters:
//   - source: pre-processed WGSL source
//
// Returns:
//   - []Binding: the declared resources
func parseBindings(source string) []Binding {
	cleaned := stripComments(source)
	structSizes := computeStructSizes(parseStructBlocks(cleaned))

	matches := bindGroupDeclRegex.FindAllStringSubmatch(cleaned, -1)
	bindings := make([]Binding, 0, len(matches))
	for _, match := range matches {
		group, _ := strconv.Atoi(match[1])
		binding, _ := strconv.Atoi(match[2])
		typeName := strings.TrimSpace(match[5])

		b := Binding{
			Group:   group,
			Binding: binding,
			Name:    strings.TrimSpace(match[4]),
			Type:    typeName,
			Buffer:  classifyBuffer(strings.TrimSpace(match[3])),
		}
		if b.Buffer != BufferBindingTypeUndefined {
			if layout, ok := resolveTypeLayout(typeName, structSizes); ok {
				b.MinSize = layout.size
			}
		}
		bindings = append(bindings, b)
	}

	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].Group != bindings[j].Group {
			return bindings[i].Group < bindings[j].Group
		}
		return bindings[i].Binding < bindings[j].Binding
	})
	return bindings
}

// parseEntryPoint returns the name of the first function tagged with the stage attribute
// matching shaderType, or "" if there is none.
func parseEntryPoint(source string, shaderType ShaderType) string {
	cleaned := stripComments(source)

	var re *regexp.Regexp
	switch shaderType {
	case ShaderTypeVertex:
		re = vertexEntryRegex
	case ShaderTypeFragment:
		re = fragmentEntryRegex
	default:
		return ""
	}

	if match := re.FindStringSubmatch(cleaned); match != nil {
		return match[1]
	}
	return ""
}

// parseStructBlocks extracts all struct blocks from comment-free source.
func parseStructBlocks(source string) []parsedStruct {
	matches := structBlockRegex.FindAllStringSubmatch(source, -1)
	structs := make([]parsedStruct, 0, len(matches))

	for _, match := range matches {
		structs = append(structs, parsedStruct{
			name:   match[1],
			fields: parseStructFields(match[2]),
		})
	}

	return structs
}

// parseStructFields splits a struct body into fields. Fields without @location get location -1.
func parseStructFields(body string) []parsedField {
	lines := splitAtTopLevelCommas(body)
	fields := make([]parsedField, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		field := parsedField{location: -1}
		if builtinRegex.MatchString(line) {
			field.isBuiltin = true
		}
		if locMatch := locationRegex.FindStringSubmatch(line); locMatch != nil {
			if loc, err := strconv.Atoi(locMatch[1]); err == nil {
				field.location = loc
			}
		}

		fm := fieldRegex.FindStringSubmatch(line)
		if fm == nil {
			continue
		}
		field.name = fm[1]
		field.typeName = strings.TrimSpace(fm[2])

		fields = append(fields, field)
	}

	return fields
}
