package model

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/lumen/engine/renderer/material"
)

// ErrMaterialIndex is returned when a mesh refers to a material the model does not have.
var ErrMaterialIndex = errors.New("mesh material index out of range")

// model is the implementation of the Model interface.
type model struct {
	name      string
	meshes    []Mesh
	materials []material.Material
}

// Model defines the interface for a drawable 3D model: an ordered list of meshes and
// the materials they reference by index. A Model only exists when every mesh's material
// index is valid, so draw code can resolve materials without further checks.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Meshes returns the model's meshes in draw order.
	//
	// Returns:
	//   - []Mesh: the meshes
	Meshes() []Mesh

	// Materials returns the model's materials.
	//
	// Returns:
	//   - []material.Material: the materials
	Materials() []material.Material

	// MeshMaterial resolves the material used by a mesh.
	//
	// Parameters:
	//   - m: the mesh to resolve
	//
	// Returns:
	//   - material.Material: the mesh's material
	//   - error: ErrMaterialIndex if the mesh refers to a material the model does not have
	MeshMaterial(m Mesh) (material.Material, error)

	// Release frees the GPU resources held by the model's meshes and materials.
	Release()
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - name: the model identifier
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
//   - error: ErrMaterialIndex (wrapped) if a mesh refers to a missing material
func NewModel(name string, options ...ModelBuilderOption) (Model, error) {
	m := &model{name: name}
	for _, opt := range options {
		opt(m)
	}
	for _, mesh := range m.meshes {
		if _, err := m.MeshMaterial(mesh); err != nil {
			return nil, fmt.Errorf("model %q: %w", name, err)
		}
	}
	return m, nil
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Meshes() []Mesh {
	return m.meshes
}

func (m *model) Materials() []material.Material {
	return m.materials
}

func (m *model) MeshMaterial(mesh Mesh) (material.Material, error) {
	idx := mesh.MaterialIndex()
	if idx < 0 || idx >= len(m.materials) {
		return nil, fmt.Errorf("mesh %q uses material %d of %d: %w", mesh.Name(), idx, len(m.materials), ErrMaterialIndex)
	}
	return m.materials[idx], nil
}

func (m *model) Release() {
	for _, mesh := range m.meshes {
		mesh.Provider().Release()
	}
	for _, mat := range m.materials {
		if p := mat.BindGroupProvider(); p != nil {
			p.Release()
		}
	}
}
