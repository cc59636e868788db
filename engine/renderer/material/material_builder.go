package material

import (
	"github.com/Carmen-Shannon/lumen/common"
	"github.com/Carmen-Shannon/lumen/engine/renderer/bind_group_provider"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithDiffuseTexture is an option builder that sets the diffuse texture source.
//
// Parameters:
//   - tex: the imported texture data for the diffuse map
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse texture option to a material
func WithDiffuseTexture(tex *common.ImportedTexture) MaterialBuilderOption {
	return func(m *material) {
		m.diffuseTexture = tex
	}
}

// WithNormalTexture is an option builder that sets the normal map texture source.
//
// Parameters:
//   - tex: the imported texture data for the normal map
//
// Returns:
//   - MaterialBuilderOption: a function that applies the normal texture option to a material
func WithNormalTexture(tex *common.ImportedTexture) MaterialBuilderOption {
	return func(m *material) {
		m.normalTexture = tex
	}
}

// WithTexturePaths is an option builder that loads the diffuse and normal maps from image files.
// An empty path keeps the procedural fallback for that texture.
//
// Parameters:
//   - diffusePath: image file for the diffuse map
//   - normalPath: image file for the normal map
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture paths to a material
func WithTexturePaths(diffusePath, normalPath string) MaterialBuilderOption {
	return func(m *material) {
		if diffusePath != "" {
			m.diffuseTexture = &common.ImportedTexture{Name: "diffuse", Path: diffusePath}
		}
		if normalPath != "" {
			m.normalTexture = &common.ImportedTexture{Name: "normal", Path: normalPath}
		}
	}
}

// WithSamplers is an option builder that sets the sampler configuration for both textures.
// Zero fields resolve to linear filtering with repeat addressing.
//
// Parameters:
//   - diffuse: sampler configuration for the diffuse texture
//   - normal: sampler configuration for the normal map
//
// Returns:
//   - MaterialBuilderOption: a function that applies the sampler option to a material
func WithSamplers(diffuse, normal common.SamplerStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.diffuseSampler = diffuse
		m.normalSampler = normal
	}
}

// WithDecodeWorkers sets how many textures Stage decodes at once.
func WithDecodeWorkers(workers int) MaterialBuilderOption {
	return func(m *material) {
		m.decodeWorkers = workers
	}
}

// WithBindGroupProvider is an option builder that sets the bind group provider for the material.
//
// Parameters:
//   - provider: the bind group provider containing GPU resources for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the bind group provider option to a material
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) MaterialBuilderOption {
	return func(m *material) {
		m.bindGroupProvider = provider
	}
}
