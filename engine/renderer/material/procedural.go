package material

import "github.com/Carmen-Shannon/lumen/common"

// CheckerTexture generates an RGBA checkerboard, used as the diffuse map when no image is configured.
//
// Parameters:
//   - size: width and height in pixels
//   - cells: number of squares along each edge
//   - a: RGBA color of the even squares
//   - b: RGBA color of the odd squares
//
// Returns:
//   - *common.ImportedTexture: the generated texture, ready to decode
func CheckerTexture(size, cells int, a, b [4]uint8) *common.ImportedTexture {
	if size <= 0 {
		size = 1
	}
	if cells <= 0 {
		cells = 1
	}
	cell := max(size/cells, 1)

	pixels := make([]byte, 0, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			pixels = append(pixels, c[:]...)
		}
	}
	return &common.ImportedTexture{Name: "checker", Pixels: pixels, Width: size, Height: size}
}

// FlatNormalTexture generates a 1x1 tangent-space normal map pointing straight out of the surface.
//
// Returns:
//   - *common.ImportedTexture: the generated texture, ready to decode
func FlatNormalTexture() *common.ImportedTexture {
	return &common.ImportedTexture{
		Name:   "flat_normal",
		Pixels: []byte{128, 128, 255, 255},
		Width:  1,
		Height: 1,
	}
}
