// annotations.go defines the annotation syntax of the lumen WGSL pre-processor. Annotations
// are single-line WGSL comments prefixed with @lumen: that inject registered struct sources
// and generate bind group declarations, so the Go GPU types stay the single source of truth
// for every layout a shader depends on.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix is the marker that identifies a lumen annotation within a WGSL comment line.
const annotationPrefix = "@lumen:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
type AnnotationType string

const (
	// annotationTypeInclude injects the WGSL source registered under a struct key.
	// Including vertex or instance also appends the matching vertex buffer layout to the shader.
	//
	// Syntax: //@lumen:include <struct_key>
	//
	// Example: //@lumen:include camera
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup declares the bind group a provider is bound to. It generates the
	// WGSL variable declarations for the group and records the provider's layout descriptor.
	//
	// Syntax: //@lumen:group <group> <provider>
	//
	// Example: //@lumen:group 1 camera
	AnnotationTypeBindingGroup AnnotationType = "group"
)

// Annotation represents a single parsed @lumen: annotation.
type Annotation struct {
	// Type identifies which annotation was parsed.
	Type AnnotationType

	// Arg is the struct key for include annotations or the provider for group annotations.
	Arg AnnotationArg

	// Line is the 1-based source line of the annotation, used for error reporting.
	Line int

	// Group is the @group index of a group annotation, -1 for includes.
	Group int
}

// AnnotationArg is a registry key used as an annotation argument.
type AnnotationArg string

const (
	// AnnotationArgCamera identifies the CameraUniform struct and the camera bind group.
	AnnotationArgCamera AnnotationArg = "camera"

	// AnnotationArgLight identifies the Light struct and the light bind group.
	// The struct layout depends on the light type the pre-processor was built for.
	AnnotationArgLight AnnotationArg = "light"

	// AnnotationArgMaterial identifies the material textures and samplers bind group.
	AnnotationArgMaterial AnnotationArg = "material"

	// AnnotationArgLighting identifies the lighting functions for the configured light type.
	AnnotationArgLighting AnnotationArg = "lighting"

	// annotationArgVertex identifies the VertexInput struct.
	annotationArgVertex AnnotationArg = "vertex"

	// annotationArgInstance identifies the InstanceInput struct.
	annotationArgInstance AnnotationArg = "instance"
)

var validStructTypes = []AnnotationArg{
	AnnotationArgCamera,
	AnnotationArgLight,
	AnnotationArgLighting,
	annotationArgVertex,
	annotationArgInstance,
}

var validProviders = []AnnotationArg{
	AnnotationArgCamera,
	AnnotationArgLight,
	AnnotationArgMaterial,
}

// parseAnnotation attempts to parse a single line of WGSL source as a @lumen: annotation.
// Lines without the prefix return nil and no error.
//
// Parameters:
//   - line: the raw WGSL source line to parse
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, nil
	}
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @lumen annotation", lineNum)
	}

	switch AnnotationType(args[0]) {
	case annotationTypeInclude:
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @lumen include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @lumen include annotation", lineNum, args[1])
		}
		return &Annotation{Type: annotationTypeInclude, Arg: AnnotationArg(args[1]), Line: lineNum, Group: -1}, nil
	case AnnotationTypeBindingGroup:
		if len(args) != 3 {
			return nil, fmt.Errorf("line %d: @lumen group annotation requires a group number and a provider", lineNum)
		}
		group, err := strconv.Atoi(args[1])
		if err != nil || group < 0 {
			return nil, fmt.Errorf("line %d: invalid group number %q in @lumen group annotation", lineNum, args[1])
		}
		if !slices.Contains(validProviders, AnnotationArg(args[2])) {
			return nil, fmt.Errorf("line %d: unknown provider %q in @lumen group annotation", lineNum, args[2])
		}
		return &Annotation{Type: AnnotationTypeBindingGroup, Arg: AnnotationArg(args[2]), Line: lineNum, Group: group}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @lumen annotation type %q", lineNum, args[0])
	}
}
