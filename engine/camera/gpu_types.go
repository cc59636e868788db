package camera

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (80 bytes).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// It is derived data: rebuild it every frame with UpdateViewProj rather than editing fields.
// Size: 80 bytes.
type GPUCameraUniform struct {
	ViewPosition [4]float32  // offset  0: homogeneous world-space eye position (vec4<f32>, w = 1)
	ViewProj     [16]float32 // offset 16: projection * view, column-major (mat4x4<f32>)
}

// NewGPUCameraUniform returns a uniform at the origin with an identity view-projection matrix.
//
// Returns:
//   - GPUCameraUniform: the initial uniform
func NewGPUCameraUniform() GPUCameraUniform {
	return GPUCameraUniform{
		ViewProj: [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	}
}

// UpdateViewProj recomputes the uniform from the current camera and projection.
//
// Parameters:
//   - c: the camera providing the eye position and view matrix
//   - p: the projection providing the projection matrix
func (g *GPUCameraUniform) UpdateViewProj(c Camera, p Projection) {
	g.ViewPosition = c.Position().Vec4(1)
	g.ViewProj = p.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	offset := common.PutFloat32s(buf, 0, g.ViewPosition[:]...)
	common.PutFloat32s(buf, offset, g.ViewProj[:]...)
	return buf
}

// LayoutDescriptor returns the bind group layout of the camera uniform: one uniform buffer at
// binding 0, visible to both shader stages since the fragment stage reads the eye position.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor
func LayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	var u GPUCameraUniform
	return wgpu.BindGroupLayoutDescriptor{
		Label: "camera_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(u.Size()),
				},
			},
		},
	}
}
