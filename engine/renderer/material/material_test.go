package material

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/cogentcore/webgpu/wgpu"
)

func encodePNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestNewMaterialFallsBackToProceduralTextures(t *testing.T) {
	m := NewMaterial("default")
	if m.DiffuseTexture() == nil || m.NormalTexture() == nil {
		t.Fatal("expected procedural textures when none are configured")
	}
	if m.BindGroupProvider() == nil {
		t.Fatal("expected a bind group provider")
	}

	diffuse, normal, err := m.Stage()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diffuse.Width != 256 || diffuse.Height != 256 || diffuse.Linear {
		t.Errorf("expected a 256x256 sRGB checker, got %dx%d linear=%v", diffuse.Width, diffuse.Height, diffuse.Linear)
	}
	if !normal.Linear || !bytes.Equal(normal.Pixels, []byte{128, 128, 255, 255}) {
		t.Errorf("expected a linear flat normal, got %v linear=%v", normal.Pixels, normal.Linear)
	}
}

func TestCheckerTextureAlternates(t *testing.T) {
	a, b := [4]uint8{255, 0, 0, 255}, [4]uint8{0, 0, 255, 255}
	tex := CheckerTexture(4, 2, a, b)
	if len(tex.Pixels) != 4*4*4 {
		t.Fatalf("expected 64 bytes, got %d", len(tex.Pixels))
	}

	pixel := func(x, y int) [4]uint8 {
		i := (y*4 + x) * 4
		return [4]uint8(tex.Pixels[i : i+4])
	}
	if pixel(0, 0) != a || pixel(1, 1) != a || pixel(2, 0) != b || pixel(0, 2) != b || pixel(3, 3) != a {
		t.Error("expected 2x2 pixel cells alternating between the two colors")
	}
}

func TestDecodeTexturesKeepsOrder(t *testing.T) {
	red := &common.ImportedTexture{Name: "red", Data: encodePNG(t, 2, 3, color.RGBA{255, 0, 0, 255})}
	blue := &common.ImportedTexture{Name: "blue", Data: encodePNG(t, 5, 1, color.RGBA{0, 0, 255, 255})}

	staged, err := DecodeTextures(2, red, blue, FlatNormalTexture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(staged) != 3 {
		t.Fatalf("expected 3 results, got %d", len(staged))
	}
	if staged[0].Width != 2 || staged[0].Height != 3 || staged[0].Pixels[0] != 255 {
		t.Errorf("unexpected first texture: %dx%d", staged[0].Width, staged[0].Height)
	}
	if staged[1].Width != 5 || staged[1].Height != 1 || staged[1].Pixels[2] != 255 {
		t.Errorf("unexpected second texture: %dx%d", staged[1].Width, staged[1].Height)
	}
	if staged[2].Width != 1 {
		t.Errorf("unexpected third texture width %d", staged[2].Width)
	}
}

func TestStageReportsMissingFile(t *testing.T) {
	m := NewMaterial("broken", WithTexturePaths("does/not/exist.png", ""))
	if _, _, err := m.Stage(); err == nil {
		t.Fatal("expected an error for a missing texture file")
	}

	empty := NewMaterial("empty", WithDiffuseTexture(&common.ImportedTexture{Name: "nothing"}))
	if _, _, err := empty.Stage(); !errors.Is(err, common.ErrNoTextureSource) {
		t.Fatalf("expected ErrNoTextureSource, got %v", err)
	}
}

func TestSamplersResolveDefaults(t *testing.T) {
	m := NewMaterial("sampled", WithSamplers(
		common.SamplerStagingData{AddressModeU: wgpu.AddressModeClampToEdge},
		common.SamplerStagingData{},
	))
	if m.DiffuseSampler().AddressModeU != wgpu.AddressModeClampToEdge {
		t.Error("expected the configured address mode to be kept")
	}
	if m.NormalSampler().MagFilter != wgpu.FilterModeLinear {
		t.Error("expected linear filtering by default")
	}
}

func TestLayoutDescriptorBindings(t *testing.T) {
	desc := LayoutDescriptor()
	if len(desc.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(desc.Entries))
	}
	for i, e := range desc.Entries {
		if e.Binding != uint32(i) {
			t.Errorf("entry %d has binding %d", i, e.Binding)
		}
		isTexture := e.Texture.SampleType != wgpu.TextureSampleTypeUndefined
		if isTexture != (i%2 == 0) {
			t.Errorf("entry %d: expected textures at even bindings and samplers at odd ones", i)
		}
	}
}
