package shader

import (
	_ "embed"
	"fmt"

	"github.com/Carmen-Shannon/lumen/engine/light"
	"github.com/cogentcore/webgpu/wgpu"
)

// Entry points every lumen shader module declares.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// ShadedSource draws the instanced, normal-mapped mesh with material, camera and light groups 0-2.
//
//go:embed assets/shaded.wgsl
var ShadedSource string

// LightMarkerSource draws the light marker cube with camera and light groups 0-1.
//
//go:embed assets/light_marker.wgsl
var LightMarkerSource string

// shader is the implementation of the Shader interface.
type shader struct {
	key                        string
	source                     string
	vertexLayouts              []wgpu.VertexBufferLayout
	bindGroupLayoutDescriptors []wgpu.BindGroupLayoutDescriptor
	module                     *wgpu.ShaderModuleDescriptor

	pp PreProcessor
}

// Shader defines the interface for a pre-processed WGSL module holding both a vertex and a
// fragment entry point, together with the layouts derived from its annotations.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the pre-processed WGSL source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// VertexLayouts retrieves the vertex buffer layouts in slot order.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: one layout per vertex buffer slot
	VertexLayouts() []wgpu.VertexBufferLayout

	// BindGroupLayoutDescriptors retrieves the bind group layout descriptors indexed by group.
	//
	// Returns:
	//   - []wgpu.BindGroupLayoutDescriptor: one descriptor per bind group
	BindGroupLayoutDescriptors() []wgpu.BindGroupLayoutDescriptor

	// Module returns the shader module descriptor built from the processed source.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the module descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor

	// Declarations returns the group annotations parsed from the source.
	//
	// Returns:
	//   - []Annotation: the group annotations in source order
	Declarations() []Annotation
}

var _ Shader = &shader{}

// NewShader pre-processes WGSL source for the given light type and derives its layouts.
//
// Parameters:
//   - key: a unique identifier for the shader, also used as the module label
//   - source: the raw WGSL source containing @lumen: annotations
//   - lightType: the light type selecting the Light struct and lighting functions
//
// Returns:
//   - Shader: the processed shader
//   - error: error if pre-processing fails
func NewShader(key, source string, lightType light.LightType) (Shader, error) {
	s := &shader{
		key: key,
		pp:  NewPreProcessor(lightType),
	}
	if err := s.parseSource(source); err != nil {
		return nil, fmt.Errorf("shader %s: %w", key, err)
	}
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) BindGroupLayoutDescriptors() []wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) Declarations() []Annotation {
	return s.pp.Declarations()
}

// parseSource runs the pre-processor, then builds the module descriptor and layouts.
func (s *shader) parseSource(source string) error {
	var err error
	s.source, err = s.pp.Process(source)
	if err != nil {
		return err
	}
	s.bindGroupLayoutDescriptors, err = s.pp.BindGroupLayoutDescriptors()
	if err != nil {
		return err
	}
	s.vertexLayouts = s.pp.VertexLayouts()
	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}
	return nil
}
