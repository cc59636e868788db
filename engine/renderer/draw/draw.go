// Package draw records instanced draw commands for meshes and models into a render pass.
// The functions are stateless: the caller owns the pass, sets the pipeline and binds the
// instance buffer at InstanceSlot before drawing.
package draw

import (
	"fmt"

	"github.com/Carmen-Shannon/lumen/engine/model"
	"github.com/Carmen-Shannon/lumen/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/lumen/engine/renderer/material"
	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex buffer slots.
const (
	VertexSlot   uint32 = 0
	InstanceSlot uint32 = 1
)

// Bind group indices of the shaded pipeline.
const (
	MaterialGroup uint32 = 0
	CameraGroup   uint32 = 1
	LightGroup    uint32 = 2
)

// Bind group indices of the light marker pipeline.
const (
	MarkerCameraGroup uint32 = 0
	MarkerLightGroup  uint32 = 1
)

// Pass is the subset of a render pass encoder used to record draws.
type Pass interface {
	SetPipeline(pipeline *wgpu.RenderPipeline)
	SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset, size uint64)
	SetIndexBuffer(buffer *wgpu.Buffer, format wgpu.IndexFormat, offset, size uint64)
	SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
}

var _ Pass = (*wgpu.RenderPassEncoder)(nil)

// InstanceRange is a half-open range [Start, End) of instances in the bound instance buffer.
type InstanceRange struct {
	Start uint32
	End   uint32
}

// Count returns the number of instances in the range, 0 when End <= Start.
func (r InstanceRange) Count() uint32 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// DrawMeshInstanced draws one mesh for every instance in the range with the shaded pipeline
// bind groups: material at 0, camera at 1 and light at 2.
//
// Parameters:
//   - pass: the render pass being recorded
//   - mesh: the mesh whose vertex and index buffers are drawn
//   - mat: the material bound at group 0
//   - instances: the instances to draw from the buffer at InstanceSlot
//   - cameraProvider: the camera bind group provider bound at group 1
//   - lightProvider: the light bind group provider bound at group 2
func DrawMeshInstanced(pass Pass, mesh model.Mesh, mat material.Material, instances InstanceRange, cameraProvider, lightProvider bind_group_provider.BindGroupProvider) {
	mp := mesh.Provider()
	pass.SetVertexBuffer(VertexSlot, mp.VertexBuffer(), 0, wgpu.WholeSize)
	pass.SetIndexBuffer(mp.IndexBuffer(), mp.IndexFormat(), 0, wgpu.WholeSize)
	pass.SetBindGroup(MaterialGroup, mat.BindGroupProvider().BindGroup(), nil)
	pass.SetBindGroup(CameraGroup, cameraProvider.BindGroup(), nil)
	pass.SetBindGroup(LightGroup, lightProvider.BindGroup(), nil)
	pass.DrawIndexed(mp.IndexCount(), instances.Count(), 0, 0, instances.Start)
}

// DrawModelInstanced draws every mesh of a model with its own material for the instance range.
//
// Parameters:
//   - pass: the render pass being recorded
//   - m: the model to draw
//   - instances: the instances to draw from the buffer at InstanceSlot
//   - cameraProvider: the camera bind group provider
//   - lightProvider: the light bind group provider
//
// Returns:
//   - error: model.ErrMaterialIndex if a mesh refers to a missing material; no draws are
//     recorded for that mesh or the ones after it
func DrawModelInstanced(pass Pass, m model.Model, instances InstanceRange, cameraProvider, lightProvider bind_group_provider.BindGroupProvider) error {
	for _, mesh := range m.Meshes() {
		mat, err := m.MeshMaterial(mesh)
		if err != nil {
			return fmt.Errorf("draw %s/%s: %w", m.Name(), mesh.Name(), err)
		}
		DrawMeshInstanced(pass, mesh, mat, instances, cameraProvider, lightProvider)
	}
	return nil
}

// DrawLightModel draws every mesh of the light marker model once, with the camera at group 0 and
// the light at group 1. Materials are not bound.
//
// Parameters:
//   - pass: the render pass being recorded
//   - m: the marker model
//   - cameraProvider: the camera bind group provider
//   - lightProvider: the light bind group provider
func DrawLightModel(pass Pass, m model.Model, cameraProvider, lightProvider bind_group_provider.BindGroupProvider) {
	for _, mesh := range m.Meshes() {
		mp := mesh.Provider()
		pass.SetVertexBuffer(VertexSlot, mp.VertexBuffer(), 0, wgpu.WholeSize)
		pass.SetIndexBuffer(mp.IndexBuffer(), mp.IndexFormat(), 0, wgpu.WholeSize)
		pass.SetBindGroup(MarkerCameraGroup, cameraProvider.BindGroup(), nil)
		pass.SetBindGroup(MarkerLightGroup, lightProvider.BindGroup(), nil)
		pass.DrawIndexed(mp.IndexCount(), 1, 0, 0, 0)
	}
}
