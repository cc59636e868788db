package model

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*mesh)

// WithMaterialIndex is an option builder that selects the material the mesh is drawn with.
//
// Parameters:
//   - index: index into the owning Model's materials
//
// Returns:
//   - MeshBuilderOption: a function that applies the material index option to a mesh
func WithMaterialIndex(index int) MeshBuilderOption {
	return func(m *mesh) {
		m.materialIndex = index
	}
}

// WithUint16Indices is an option builder that stores the mesh indices as uint16.
//
// Returns:
//   - MeshBuilderOption: a function that applies the index format option to a mesh
func WithUint16Indices() MeshBuilderOption {
	return func(m *mesh) {
		m.indexFormat = wgpu.IndexFormatUint16
	}
}
