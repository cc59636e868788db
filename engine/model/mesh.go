package model

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/Carmen-Shannon/lumen/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name          string
	vertices      []GPUVertex
	indices       []uint32
	indexFormat   wgpu.IndexFormat
	materialIndex int
	provider      bind_group_provider.BindGroupProvider
}

// Mesh defines the interface for one indexed triangle list of a Model.
// The CPU-side vertex and index data stay available so the Renderer can upload them
// into the vertex and index buffers held by Provider.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// MaterialIndex returns the index of this mesh's material within its Model.
	//
	// Returns:
	//   - int: the material index
	MaterialIndex() int

	// Vertices returns the CPU-side vertex data.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// VertexData returns the vertices serialized for upload.
	//
	// Returns:
	//   - []byte: 56 bytes per vertex
	VertexData() []byte

	// IndexData returns the indices serialized in IndexFormat, padded to a multiple of
	// 4 bytes as buffer writes require.
	//
	// Returns:
	//   - []byte: the index bytes
	IndexData() []byte

	// IndexCount returns the number of indices, i.e. the element count of a draw.
	//
	// Returns:
	//   - uint32: the index count
	IndexCount() uint32

	// IndexFormat returns the width of the mesh's indices.
	//
	// Returns:
	//   - wgpu.IndexFormat: Uint32 by default, Uint16 for small meshes built with WithUint16Indices
	IndexFormat() wgpu.IndexFormat

	// Provider returns the BindGroupProvider holding the mesh's GPU vertex and index buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	Provider() bind_group_provider.BindGroupProvider
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh from vertex and index data.
//
// Parameters:
//   - name: the mesh identifier, also used to label its GPU buffers
//   - vertices: the mesh vertices
//   - indices: triangle list indices into vertices
//   - options: variadic list of MeshBuilderOption functions to configure the mesh
//
// Returns:
//   - Mesh: the new mesh
//   - error: error if an index is out of range or does not fit the chosen index format
func NewMesh(name string, vertices []GPUVertex, indices []uint32, options ...MeshBuilderOption) (Mesh, error) {
	m := &mesh{
		name:        name,
		vertices:    vertices,
		indices:     indices,
		indexFormat: wgpu.IndexFormatUint32,
	}
	for _, opt := range options {
		opt(m)
	}

	for _, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("mesh %q: index %d out of range for %d vertices", name, idx, len(vertices))
		}
		if m.indexFormat == wgpu.IndexFormatUint16 && idx > math.MaxUint16 {
			return nil, fmt.Errorf("mesh %q: index %d does not fit uint16", name, idx)
		}
	}

	m.provider = bind_group_provider.NewBindGroupProvider(name, bind_group_provider.WithIndexFormat(m.indexFormat))
	return m, nil
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) MaterialIndex() int {
	return m.materialIndex
}

func (m *mesh) Vertices() []GPUVertex {
	return m.vertices
}

func (m *mesh) VertexData() []byte {
	raw := make([]*GPUVertex, len(m.vertices))
	for i := range m.vertices {
		raw[i] = &m.vertices[i]
	}
	return common.MarshalSlice(raw)
}

func (m *mesh) IndexData() []byte {
	if m.indexFormat == wgpu.IndexFormatUint16 {
		size := len(m.indices) * 2
		buf := make([]byte, size+size%4)
		for i, idx := range m.indices {
			binary.LittleEndian.PutUint16(buf[i*2:], uint16(idx))
		}
		return buf
	}

	buf := make([]byte, len(m.indices)*4)
	for i, idx := range m.indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

func (m *mesh) IndexCount() uint32 {
	return uint32(len(m.indices))
}

func (m *mesh) IndexFormat() wgpu.IndexFormat {
	return m.indexFormat
}

func (m *mesh) Provider() bind_group_provider.BindGroupProvider {
	return m.provider
}
