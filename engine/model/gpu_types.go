package model

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct.
// Matches GPUVertex layout exactly (56 bytes, locations 0-4).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUInstanceSource is the canonical WGSL definition of the InstanceInput struct.
// Matches GPUInstance layout exactly (100 bytes, locations 5-11).
//
//go:embed assets/instance.wgsl
var GPUInstanceSource string

// GPUVertex is the GPU-aligned representation of a single normal-mapped mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 56 bytes (tightly packed vertex attributes, no padding required).
type GPUVertex struct {
	Position  [3]float32 // offset  0: vertex position in model space
	TexCoord  [2]float32 // offset 12: UV texture coordinate
	Normal    [3]float32 // offset 20: vertex normal
	Tangent   [3]float32 // offset 32: tangent along +U
	Bitangent [3]float32 // offset 44: bitangent along +V
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 56-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, g.Size())
	offset := common.PutFloat32s(buf, 0, g.Position[:]...)
	offset = common.PutFloat32s(buf, offset, g.TexCoord[:]...)
	offset = common.PutFloat32s(buf, offset, g.Normal[:]...)
	offset = common.PutFloat32s(buf, offset, g.Tangent[:]...)
	common.PutFloat32s(buf, offset, g.Bitangent[:]...)
	return buf
}

// VertexLayout returns the per-vertex buffer layout for GPUVertex, bound at vertex slot 0.
//
// Returns:
//   - wgpu.VertexBufferLayout: the vertex-stepped layout with shader locations 0-4
func VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 56,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 20, ShaderLocation: 2},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 32, ShaderLocation: 3},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 44, ShaderLocation: 4},
		},
	}
}

// GPUInstance is the raw per-instance blob uploaded to the instance vertex buffer.
// Matches the WGSL InstanceInput struct layout exactly (see GPUInstanceSource).
// Size: 100 bytes (mat4 model + mat3 normal, both column-major, no padding).
type GPUInstance struct {
	Model  [16]float32 // offset  0: model-to-world transform
	Normal [9]float32  // offset 64: rotation-only normal matrix
}

// Size returns the size of the GPUInstance struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUInstance) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstance struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 100-byte buffer ready for GPU upload.
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, g.Size())
	offset := common.PutFloat32s(buf, 0, g.Model[:]...)
	common.PutFloat32s(buf, offset, g.Normal[:]...)
	return buf
}

// InstanceLayout returns the per-instance buffer layout for GPUInstance, bound at vertex slot 1.
// The model matrix occupies locations 5-8 and the normal matrix locations 9-11.
//
// Returns:
//   - wgpu.VertexBufferLayout: the instance-stepped layout
func InstanceLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 100,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 5},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 6},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 7},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 8},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 64, ShaderLocation: 9},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 76, ShaderLocation: 10},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 88, ShaderLocation: 11},
		},
	}
}
