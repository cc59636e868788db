package light

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUSpotLightSource is the canonical WGSL definition of the SpotLight struct.
// Matches GPUSpotLight layout exactly (48 bytes).
//
//go:embed assets/spot_light.wgsl
var GPUSpotLightSource string

// GPUPointLightSource is the canonical WGSL definition of the PointLight struct.
// Matches GPUPointLight layout exactly (48 bytes).
//
//go:embed assets/point_light.wgsl
var GPUPointLightSource string

// GPUDirectionalLightSource is the canonical WGSL definition of the DirectionalLight struct.
// Matches GPUDirectionalLight layout exactly (32 bytes).
//
//go:embed assets/directional_light.wgsl
var GPUDirectionalLightSource string

// Source returns the WGSL struct definition matching the uniform layout of t.
// Every variant is declared under the struct name Light so shaders can be shared.
//
// Parameters:
//   - t: the light type
//
// Returns:
//   - string: the WGSL source
func Source(t LightType) string {
	switch t {
	case LightTypeDirectional:
		return GPUDirectionalLightSource
	case LightTypeSpot:
		return GPUSpotLightSource
	default:
		return GPUPointLightSource
	}
}

// GPUSpotLight is the GPU-aligned representation of a spot light uniform.
// Size: 48 bytes.
type GPUSpotLight struct {
	Position    mgl32.Vec3 // offset  0: world-space position
	CutOff      float32    // offset 12: cos(inner half-angle)
	Direction   mgl32.Vec3 // offset 16: normalized cone axis
	Intensity   float32    // offset 28: scalar multiplier
	Color       [3]float32 // offset 32: RGB color
	OuterCutOff float32    // offset 44: cos(outer half-angle)
}

// Size returns the size of the GPUSpotLight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPUSpotLight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSpotLight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPUSpotLight) Marshal() []byte {
	buf := make([]byte, g.Size())
	offset := common.PutFloat32s(buf, 0, g.Position[0], g.Position[1], g.Position[2], g.CutOff)
	offset = common.PutFloat32s(buf, offset, g.Direction[0], g.Direction[1], g.Direction[2], g.Intensity)
	common.PutFloat32s(buf, offset, g.Color[0], g.Color[1], g.Color[2], g.OuterCutOff)
	return buf
}

// GPUPointLight is the GPU-aligned representation of a point light uniform.
// Size: 48 bytes.
type GPUPointLight struct {
	Position  mgl32.Vec3 // offset  0: world-space position
	Intensity float32    // offset 12: scalar multiplier
	Color     [3]float32 // offset 16: RGB color
	Constant  float32    // offset 28: constant attenuation term
	Linear    float32    // offset 32: linear attenuation term
	Quadratic float32    // offset 36: quadratic attenuation term
	_         [2]uint32  // offset 40: padding to 16-byte alignment
}

// Size returns the size of the GPUPointLight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPUPointLight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUPointLight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPUPointLight) Marshal() []byte {
	buf := make([]byte, g.Size())
	offset := common.PutFloat32s(buf, 0, g.Position[0], g.Position[1], g.Position[2], g.Intensity)
	common.PutFloat32s(buf, offset, g.Color[0], g.Color[1], g.Color[2], g.Constant, g.Linear, g.Quadratic)
	return buf
}

// GPUDirectionalLight is the GPU-aligned representation of a directional light uniform.
// Size: 32 bytes.
type GPUDirectionalLight struct {
	Direction mgl32.Vec3 // offset  0: normalized light direction
	Intensity float32    // offset 12: scalar multiplier
	Color     [3]float32 // offset 16: RGB color
	_         uint32     // offset 28: padding
}

// Size returns the size of the GPUDirectionalLight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPUDirectionalLight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUDirectionalLight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPUDirectionalLight) Marshal() []byte {
	buf := make([]byte, g.Size())
	offset := common.PutFloat32s(buf, 0, g.Direction[0], g.Direction[1], g.Direction[2], g.Intensity)
	common.PutFloat32s(buf, offset, g.Color[0], g.Color[1], g.Color[2])
	return buf
}

// LayoutDescriptor returns the bind group layout for a light of type t: one uniform buffer at
// binding 0 sized to the matching GPU struct.
//
// Parameters:
//   - t: the light type
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor
func LayoutDescriptor(t LightType) wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "light_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(uniformSize(t)),
				},
			},
		},
	}
}

func uniformSize(t LightType) int {
	switch t {
	case LightTypeDirectional:
		var g GPUDirectionalLight
		return g.Size()
	case LightTypePoint:
		var g GPUPointLight
		return g.Size()
	default:
		var g GPUSpotLight
		return g.Size()
	}
}
