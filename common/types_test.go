package common

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestDecodeEncodedPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.Set(1, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	tex := &ImportedTexture{Name: "diffuse", Data: buf.Bytes()}
	pixels, w, h, err := tex.Decode()
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if w != 2 || h != 3 {
		t.Fatalf("expected 2x3, got %dx%d", w, h)
	}
	if len(pixels) != 2*3*4 {
		t.Fatalf("expected %d bytes, got %d", 2*3*4, len(pixels))
	}
	last := pixels[len(pixels)-4:]
	if last[0] != 10 || last[1] != 20 || last[2] != 30 || last[3] != 255 {
		t.Errorf("unexpected last pixel %v", last)
	}
}

func TestDecodeRawPixels(t *testing.T) {
	tex := &ImportedTexture{Name: "flat", Pixels: make([]byte, 16), Width: 2, Height: 2}
	if _, w, h, err := tex.Decode(); err != nil || w != 2 || h != 2 {
		t.Fatalf("expected 2x2 without error, got %dx%d err=%v", w, h, err)
	}

	bad := &ImportedTexture{Name: "short", Pixels: make([]byte, 15), Width: 2, Height: 2}
	if _, _, _, err := bad.Decode(); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestDecodeWithoutSource(t *testing.T) {
	_, _, _, err := (&ImportedTexture{Name: "empty"}).Decode()
	if !errors.Is(err, ErrNoTextureSource) {
		t.Errorf("expected ErrNoTextureSource, got %v", err)
	}
}

func TestSamplerResolvedDefaults(t *testing.T) {
	s := SamplerStagingData{AddressModeU: wgpu.AddressModeMirrorRepeat}.Resolved()
	if s.AddressModeU != wgpu.AddressModeMirrorRepeat {
		t.Errorf("expected explicit address mode to be kept")
	}
	if s.MinFilter != wgpu.FilterModeLinear {
		t.Errorf("expected linear min filter default")
	}
	if s.AddressModeV != wgpu.AddressModeRepeat {
		t.Errorf("expected repeat addressing default")
	}
	if s.LodMaxClamp != 32 || s.MaxAnisotropy != 1 {
		t.Errorf("unexpected lod/anisotropy defaults: %f %d", s.LodMaxClamp, s.MaxAnisotropy)
	}
}
