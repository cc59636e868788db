package bind_group_provider

import (
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewBindGroupProviderLabelIsUnique(t *testing.T) {
	a := NewBindGroupProvider("camera")
	b := NewBindGroupProvider("camera")

	if !strings.HasPrefix(a.Label(), "camera_") {
		t.Errorf("expected label to start with camera_, got %q", a.Label())
	}
	if a.Label() == b.Label() {
		t.Errorf("expected unique labels, both were %q", a.Label())
	}
}

func TestNewBindGroupProviderDefaults(t *testing.T) {
	p := NewBindGroupProvider("mesh")
	if p.IndexFormat() != wgpu.IndexFormatUint32 {
		t.Errorf("expected Uint32 index format by default, got %v", p.IndexFormat())
	}
	if p.BindGroup() != nil || p.VertexBuffer() != nil || p.Buffer(0) != nil {
		t.Error("expected no GPU resources before initialization")
	}

	p16 := NewBindGroupProvider("marker", WithIndexFormat(wgpu.IndexFormatUint16))
	if p16.IndexFormat() != wgpu.IndexFormatUint16 {
		t.Errorf("expected Uint16 index format, got %v", p16.IndexFormat())
	}
}

func TestSetMeshBuffersAndRelease(t *testing.T) {
	p := NewBindGroupProvider("mesh")
	p.SetMeshBuffers(nil, nil, 36, wgpu.IndexFormatUint16)
	if p.IndexCount() != 36 || p.IndexFormat() != wgpu.IndexFormatUint16 {
		t.Fatalf("unexpected mesh state: count=%d format=%v", p.IndexCount(), p.IndexFormat())
	}

	p.Release()
	if p.IndexCount() != 0 {
		t.Errorf("expected index count reset on release, got %d", p.IndexCount())
	}
}
