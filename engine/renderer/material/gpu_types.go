package material

import (
	_ "embed"

	"github.com/cogentcore/webgpu/wgpu"
)

// Binding slots of the material bind group. They must match GPUMaterialSource.
const (
	DiffuseTextureBinding = 0
	DiffuseSamplerBinding = 1
	NormalTextureBinding  = 2
	NormalSamplerBinding  = 3
)

// GPUMaterialSource is the canonical WGSL declaration of the material bind group (group 0).
//
//go:embed assets/material.wgsl
var GPUMaterialSource string

// LayoutDescriptor returns the bind group layout for a material: a diffuse texture and sampler
// followed by a normal map texture and sampler, all visible to the fragment stage.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor
func LayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "material_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			textureEntry(DiffuseTextureBinding),
			samplerEntry(DiffuseSamplerBinding),
			textureEntry(NormalTextureBinding),
			samplerEntry(NormalSamplerBinding),
		},
	}
}

func textureEntry(binding uint32) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageFragment,
		Texture: wgpu.TextureBindingLayout{
			SampleType:    wgpu.TextureSampleTypeFloat,
			ViewDimension: wgpu.TextureViewDimension2D,
			Multisampled:  false,
		},
	}
}

func samplerEntry(binding uint32) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageFragment,
		Sampler: wgpu.SamplerBindingLayout{
			Type: wgpu.SamplerBindingTypeFiltering,
		},
	}
}
