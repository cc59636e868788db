// Package common contains plain data types and helpers shared across the engine packages.
// They are not interface-wrapped; they describe staging data, input events and math helpers.
package common

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ErrNoTextureSource is returned by ImportedTexture.Decode when neither Data, Pixels nor Path is set.
var ErrNoTextureSource = errors.New("texture has neither data nor path")

// TextureStagingData holds RGBA pixel data for a texture binding pending GPU upload.
type TextureStagingData struct {
	// Pixels is tightly packed RGBA8 data, 4 bytes per pixel, row-major.
	Pixels []byte
	Width  uint32
	Height uint32

	// Linear uploads the texture as RGBA8Unorm instead of RGBA8UnormSrgb.
	// Normal maps store directions, not colors, and must not be gamma decoded.
	Linear bool
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// Zero-valued fields fall back to linear filtering with repeat addressing.
type SamplerStagingData struct {
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	MagFilter, MinFilter                     wgpu.FilterMode
	MipmapFilter                             wgpu.MipmapFilterMode
	LodMinClamp, LodMaxClamp                 float32
	MaxAnisotropy                            uint16
}

// Resolved returns a copy of s with every zero field replaced by its default:
// repeat addressing, linear filtering, LOD clamp [0, 32] and anisotropy 1.
func (s SamplerStagingData) Resolved() SamplerStagingData {
	return SamplerStagingData{
		AddressModeU:  firstSet(s.AddressModeU, wgpu.AddressModeRepeat),
		AddressModeV:  firstSet(s.AddressModeV, wgpu.AddressModeRepeat),
		AddressModeW:  firstSet(s.AddressModeW, wgpu.AddressModeRepeat),
		MagFilter:     firstSet(s.MagFilter, wgpu.FilterModeLinear),
		MinFilter:     firstSet(s.MinFilter, wgpu.FilterModeLinear),
		MipmapFilter:  firstSet(s.MipmapFilter, wgpu.MipmapFilterModeLinear),
		LodMinClamp:   s.LodMinClamp,
		LodMaxClamp:   firstSet(s.LodMaxClamp, 32.0),
		MaxAnisotropy: firstSet(s.MaxAnisotropy, 1),
	}
}

func firstSet[T comparable](value, fallback T) T {
	var zero T
	if value != zero {
		return value
	}
	return fallback
}

// ImportedTexture is an image source for a material texture.
// Exactly one of Pixels, Data or Path is expected to be set; they are tried in that order.
type ImportedTexture struct {
	// Name is an identifier for this texture (e.g. "diffuse", "normal").
	Name string

	// Path is an image file on disk (PNG, JPEG, BMP or TIFF).
	Path string

	// Data holds encoded image bytes.
	Data []byte

	// Pixels holds already decoded RGBA8 pixels, used for procedurally generated textures.
	Pixels []byte

	// Width and Height are populated by Decode, or must be set alongside Pixels.
	Width  int
	Height int
}

// Decode returns the texture as raw RGBA pixel data.
//
// Returns:
//   - []byte: raw RGBA pixel data (4 bytes per pixel, row-major order)
//   - uint32: texture width in pixels
//   - uint32: texture height in pixels
//   - error: error if the source is missing or cannot be decoded
func (t *ImportedTexture) Decode() ([]byte, uint32, uint32, error) {
	if t == nil {
		return nil, 0, 0, fmt.Errorf("texture is nil")
	}

	if len(t.Pixels) > 0 {
		if len(t.Pixels) != t.Width*t.Height*4 {
			return nil, 0, 0, fmt.Errorf("texture %q: %d pixel bytes do not match %dx%d", t.Name, len(t.Pixels), t.Width, t.Height)
		}
		return t.Pixels, uint32(t.Width), uint32(t.Height), nil
	}

	var img image.Image
	var err error

	switch {
	case len(t.Data) > 0:
		img, _, err = image.Decode(bytes.NewReader(t.Data))
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode embedded image %q: %w", t.Name, err)
		}
	case t.Path != "":
		file, fileErr := os.Open(t.Path)
		if fileErr != nil {
			return nil, 0, 0, fmt.Errorf("failed to open texture file %s: %w", t.Path, fileErr)
		}
		defer file.Close()

		img, _, err = image.Decode(file)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode texture file %s: %w", t.Path, err)
		}
	default:
		return nil, 0, 0, fmt.Errorf("texture %q: %w", t.Name, ErrNoTextureSource)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	t.Width = bounds.Dx()
	t.Height = bounds.Dy()

	return rgba.Pix, uint32(t.Width), uint32(t.Height), nil
}
