package material

import (
	"fmt"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/Carmen-Shannon/lumen/engine/renderer/bind_group_provider"
)

// DefaultDecodeWorkers is the worker count used to decode the diffuse and normal textures.
const DefaultDecodeWorkers = 2

// material is the implementation of the Material interface.
type material struct {
	name              string
	diffuseTexture    *common.ImportedTexture
	normalTexture     *common.ImportedTexture
	diffuseSampler    common.SamplerStagingData
	normalSampler     common.SamplerStagingData
	decodeWorkers     int
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material defines the interface for a normal-mapped surface: a diffuse texture, a tangent-space
// normal map, a sampler for each, and the bind group provider holding their GPU resources.
//
// Textures are CPU-side until Stage decodes them; the renderer uploads the staged pixels into
// the provider at the bindings listed in gpu_types.go.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// DiffuseTexture retrieves the diffuse texture source.
	//
	// Returns:
	//   - *common.ImportedTexture: the diffuse texture
	DiffuseTexture() *common.ImportedTexture

	// NormalTexture retrieves the normal map source.
	//
	// Returns:
	//   - *common.ImportedTexture: the normal map texture
	NormalTexture() *common.ImportedTexture

	// DiffuseSampler retrieves the sampler configuration for the diffuse texture.
	//
	// Returns:
	//   - common.SamplerStagingData: the resolved sampler configuration
	DiffuseSampler() common.SamplerStagingData

	// NormalSampler retrieves the sampler configuration for the normal map.
	//
	// Returns:
	//   - common.SamplerStagingData: the resolved sampler configuration
	NormalSampler() common.SamplerStagingData

	// Stage decodes both textures in parallel. The normal map is flagged Linear so it is
	// uploaded without sRGB conversion.
	//
	// Returns:
	//   - common.TextureStagingData: the decoded diffuse texture
	//   - common.TextureStagingData: the decoded normal map
	//   - error: error if either texture failed to decode
	Stage() (diffuse, normal common.TextureStagingData, err error)

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Material = &material{}

// NewMaterial creates a new Material. Missing textures fall back to a grey checkerboard diffuse
// map and a flat normal map.
//
// Parameters:
//   - name: the material identifier, also used as the bind group label
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(name string, options ...MaterialBuilderOption) Material {
	m := &material{
		name:          name,
		decodeWorkers: DefaultDecodeWorkers,
	}
	for _, opt := range options {
		opt(m)
	}

	if m.diffuseTexture == nil {
		m.diffuseTexture = CheckerTexture(256, 8, [4]uint8{200, 200, 200, 255}, [4]uint8{90, 90, 90, 255})
	}
	if m.normalTexture == nil {
		m.normalTexture = FlatNormalTexture()
	}
	if m.bindGroupProvider == nil {
		m.bindGroupProvider = bind_group_provider.NewBindGroupProvider(name)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) DiffuseTexture() *common.ImportedTexture {
	return m.diffuseTexture
}

func (m *material) NormalTexture() *common.ImportedTexture {
	return m.normalTexture
}

func (m *material) DiffuseSampler() common.SamplerStagingData {
	return m.diffuseSampler.Resolved()
}

func (m *material) NormalSampler() common.SamplerStagingData {
	return m.normalSampler.Resolved()
}

func (m *material) Stage() (diffuse, normal common.TextureStagingData, err error) {
	staged, err := DecodeTextures(m.decodeWorkers, m.diffuseTexture, m.normalTexture)
	if err != nil {
		return diffuse, normal, fmt.Errorf("material %q: %w", m.name, err)
	}
	diffuse, normal = staged[0], staged[1]
	normal.Linear = true
	return diffuse, normal, nil
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.bindGroupProvider = provider
}
