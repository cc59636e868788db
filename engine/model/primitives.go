package model

import "github.com/go-gl/mathgl/mgl32"

// cubeFace describes one face of an axis-aligned cube by its outward normal and the
// tangent/bitangent spanning it. tangent x bitangent == normal, so the corner order
// used by CubeGeometry winds counter-clockwise when seen from outside.
type cubeFace struct {
	normal, tangent, bitangent mgl32.Vec3
}

var cubeFaces = [6]cubeFace{
	{normal: mgl32.Vec3{1, 0, 0}, tangent: mgl32.Vec3{0, 0, -1}, bitangent: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{-1, 0, 0}, tangent: mgl32.Vec3{0, 0, 1}, bitangent: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 1, 0}, tangent: mgl32.Vec3{1, 0, 0}, bitangent: mgl32.Vec3{0, 0, -1}},
	{normal: mgl32.Vec3{0, -1, 0}, tangent: mgl32.Vec3{1, 0, 0}, bitangent: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 0, 1}, tangent: mgl32.Vec3{1, 0, 0}, bitangent: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, tangent: mgl32.Vec3{-1, 0, 0}, bitangent: mgl32.Vec3{0, 1, 0}},
}

// CubeGeometry builds an axis-aligned cube centered on the origin with 4 vertices per face,
// so every face carries its own normal, tangent and bitangent for normal mapping.
//
// Parameters:
//   - size: edge length of the cube
//
// Returns:
//   - []GPUVertex: 24 vertices
//   - []uint32: 36 triangle list indices, counter-clockwise front faces
func CubeGeometry(size float32) ([]GPUVertex, []uint32) {
	h := size / 2
	corners := [4]struct {
		t, b float32
		uv   [2]float32
	}{
		{-1, -1, [2]float32{0, 1}},
		{1, -1, [2]float32{1, 1}},
		{1, 1, [2]float32{1, 0}},
		{-1, 1, [2]float32{0, 0}},
	}

	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range cubeFaces {
		base := uint32(len(vertices))
		for _, c := range corners {
			p := f.normal.Add(f.tangent.Mul(c.t)).Add(f.bitangent.Mul(c.b)).Mul(h)
			vertices = append(vertices, GPUVertex{
				Position:  p,
				TexCoord:  c.uv,
				Normal:    f.normal,
				Tangent:   f.tangent,
				Bitangent: f.bitangent,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

// NewCubeMesh creates a cube Mesh from CubeGeometry.
//
// Parameters:
//   - name: the mesh identifier
//   - size: edge length of the cube
//   - options: variadic list of MeshBuilderOption functions to configure the mesh
//
// Returns:
//   - Mesh: the cube mesh
//   - error: error if the mesh could not be built
func NewCubeMesh(name string, size float32, options ...MeshBuilderOption) (Mesh, error) {
	vertices, indices := CubeGeometry(size)
	return NewMesh(name, vertices, indices, options...)
}
