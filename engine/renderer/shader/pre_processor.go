// pre_processor.go implements the lumen WGSL pre-processor. It replaces @lumen: annotations
// with registered WGSL sources or generated bind group declarations and collects the vertex
// buffer layouts and bind group layout descriptors the annotations imply.
package shader

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/Carmen-Shannon/lumen/engine/camera"
	"github.com/Carmen-Shannon/lumen/engine/light"
	"github.com/Carmen-Shannon/lumen/engine/model"
	"github.com/Carmen-Shannon/lumen/engine/renderer/material"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/lighting_point.wgsl
var lightingPointSource string

//go:embed assets/lighting_directional.wgsl
var lightingDirectionalSource string

//go:embed assets/lighting_spot.wgsl
var lightingSpotSource string

// registryEntry pairs a WGSL source with the vertex layout an include contributes.
type registryEntry struct {
	Source string
	Layout *wgpu.VertexBufferLayout
}

// providerEntry describes how a group annotation is declared and laid out.
type providerEntry struct {
	// Type is the uniform struct type for single-buffer providers, empty for material.
	Type string

	// Bindings holds hand-written declarations at group 0, re-targeted to the annotated group.
	Bindings string

	Layout wgpu.BindGroupLayoutDescriptor
}

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	structRegistry   map[AnnotationArg]registryEntry
	providerRegistry map[AnnotationArg]providerEntry

	vertexLayouts []wgpu.VertexBufferLayout
	groups        map[int]wgpu.BindGroupLayoutDescriptor
	declarations  []Annotation
}

// PreProcessor processes WGSL source containing @lumen: annotations.
type PreProcessor interface {
	// Process replaces every annotation in source with its WGSL output. Results of the previous
	// call are discarded.
	//
	// Parameters:
	//   - source: the raw WGSL shader source code containing annotations
	//
	// Returns:
	//   - string: the processed WGSL source
	//   - error: an error if an annotation is malformed or a group index is declared twice
	Process(source string) (string, error)

	// VertexLayouts returns the vertex buffer layouts in include order, slot 0 first.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the layouts collected by the last Process call
	VertexLayouts() []wgpu.VertexBufferLayout

	// BindGroupLayoutDescriptors returns one descriptor per declared group, ordered by group index.
	//
	// Returns:
	//   - []wgpu.BindGroupLayoutDescriptor: the descriptors collected by the last Process call
	//   - error: an error if the declared groups are not contiguous from 0
	BindGroupLayoutDescriptors() ([]wgpu.BindGroupLayoutDescriptor, error)

	// Declarations returns the group annotations of the last Process call in source order.
	//
	// Returns:
	//   - []Annotation: the group annotations
	Declarations() []Annotation
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor whose light struct and lighting functions match lightType.
//
// Parameters:
//   - lightType: the type of the scene light
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor
func NewPreProcessor(lightType light.LightType) PreProcessor {
	vertexLayout := model.VertexLayout()
	instanceLayout := model.InstanceLayout()

	return &preProcessor{
		structRegistry: map[AnnotationArg]registryEntry{
			AnnotationArgCamera:   {Source: camera.GPUCameraUniformSource},
			AnnotationArgLight:    {Source: light.Source(lightType)},
			AnnotationArgLighting: {Source: lightingSource(lightType)},
			annotationArgVertex:   {Source: model.GPUVertexSource, Layout: &vertexLayout},
			annotationArgInstance: {Source: model.GPUInstanceSource, Layout: &instanceLayout},
		},
		providerRegistry: map[AnnotationArg]providerEntry{
			AnnotationArgCamera:   {Type: "CameraUniform", Layout: camera.LayoutDescriptor()},
			AnnotationArgLight:    {Type: "Light", Layout: light.LayoutDescriptor(lightType)},
			AnnotationArgMaterial: {Bindings: material.GPUMaterialSource, Layout: material.LayoutDescriptor()},
		},
		groups: make(map[int]wgpu.BindGroupLayoutDescriptor),
	}
}

func lightingSource(t light.LightType) string {
	switch t {
	case light.LightTypePoint:
		return lightingPointSource
	case light.LightTypeDirectional:
		return lightingDirectionalSource
	default:
		return lightingSpotSource
	}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.vertexLayouts = nil
	p.groups = make(map[int]wgpu.BindGroupLayoutDescriptor)
	p.declarations = nil

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case annotationTypeInclude:
			entry := p.structRegistry[a.Arg]
			out = append(out, entry.Source)
			if entry.Layout != nil {
				p.vertexLayouts = append(p.vertexLayouts, *entry.Layout)
			}
		case AnnotationTypeBindingGroup:
			if _, dup := p.groups[a.Group]; dup {
				return "", fmt.Errorf("line %d: group %d is already declared", a.Line, a.Group)
			}
			entry := p.providerRegistry[a.Arg]
			if entry.Type != "" {
				out = append(out, fmt.Sprintf("@group(%d) @binding(0) var<uniform> %s: %s;", a.Group, a.Arg, entry.Type))
			} else {
				out = append(out, strings.ReplaceAll(entry.Bindings, "@group(0)", fmt.Sprintf("@group(%d)", a.Group)))
			}
			p.groups[a.Group] = entry.Layout
			p.declarations = append(p.declarations, *a)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) VertexLayouts() []wgpu.VertexBufferLayout {
	return p.vertexLayouts
}

func (p *preProcessor) BindGroupLayoutDescriptors() ([]wgpu.BindGroupLayoutDescriptor, error) {
	indices := make([]int, 0, len(p.groups))
	for g := range p.groups {
		indices = append(indices, g)
	}
	sort.Ints(indices)

	descriptors := make([]wgpu.BindGroupLayoutDescriptor, 0, len(indices))
	for i, g := range indices {
		if g != i {
			return nil, fmt.Errorf("bind groups must be contiguous from 0, missing group %d", i)
		}
		descriptors = append(descriptors, p.groups[g])
	}
	return descriptors, nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}
