package model

import (
	"github.com/Carmen-Shannon/lumen/engine/renderer/material"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithMeshes is an option builder that appends meshes to the Model in draw order.
//
// Parameters:
//   - meshes: the meshes to append
//
// Returns:
//   - ModelBuilderOption: a function that applies the meshes option to a model
func WithMeshes(meshes ...Mesh) ModelBuilderOption {
	return func(m *model) {
		m.meshes = append(m.meshes, meshes...)
	}
}

// WithMaterials is an option builder that appends materials to the Model.
// Meshes refer to them by their position in this list.
//
// Parameters:
//   - mats: the materials to append
//
// Returns:
//   - ModelBuilderOption: a function that applies the materials option to a model
func WithMaterials(mats ...material.Material) ModelBuilderOption {
	return func(m *model) {
		m.materials = append(m.materials, mats...)
	}
}
