package shader

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/lumen/engine/light"
	"github.com/Carmen-Shannon/lumen/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

func TestShadedShaderLayouts(t *testing.T) {
	s, err := NewShader("shaded", ShadedSource, light.LightTypeSpot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(s.Source(), annotationPrefix) {
		t.Error("expected every annotation to be replaced")
	}
	for _, want := range []string{
		"@group(1) @binding(0) var<uniform> camera: CameraUniform;",
		"@group(2) @binding(0) var<uniform> light: Light;",
		"@group(0) @binding(3) var s_normal: sampler;",
		"outer_cut_off: f32",
		"fn light_contribution(",
	} {
		if !strings.Contains(s.Source(), want) {
			t.Errorf("expected processed source to contain %q", want)
		}
	}

	layouts := s.VertexLayouts()
	if len(layouts) != 2 {
		t.Fatalf("expected vertex and instance layouts, got %d", len(layouts))
	}
	if layouts[0].StepMode != wgpu.VertexStepModeVertex || layouts[1].StepMode != wgpu.VertexStepModeInstance {
		t.Error("expected the per-vertex layout in slot 0 and the per-instance layout in slot 1")
	}
	if layouts[1].ArrayStride != model.InstanceLayout().ArrayStride {
		t.Error("instance layout does not match the model package")
	}

	groups := s.BindGroupLayoutDescriptors()
	if len(groups) != 3 {
		t.Fatalf("expected 3 bind groups, got %d", len(groups))
	}
	if len(groups[0].Entries) != 4 {
		t.Errorf("expected the material group first, got %d entries", len(groups[0].Entries))
	}
	if groups[1].Entries[0].Buffer.MinBindingSize != 80 {
		t.Errorf("expected the camera group second, got min size %d", groups[1].Entries[0].Buffer.MinBindingSize)
	}
	if groups[2].Entries[0].Buffer.MinBindingSize != 48 {
		t.Errorf("expected the spot light group third, got min size %d", groups[2].Entries[0].Buffer.MinBindingSize)
	}
	if s.Module().WGSLDescriptor.Code != s.Source() || s.Module().Label != "shaded" {
		t.Error("expected the module descriptor to carry the processed source")
	}
}

func TestLightMarkerFollowsLightType(t *testing.T) {
	s, err := NewShader("marker", LightMarkerSource, light.LightTypeDirectional)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(s.Source(), "position: vec3<f32>,\n    cut_off") {
		t.Error("expected the directional light struct")
	}
	groups := s.BindGroupLayoutDescriptors()
	if len(groups) != 2 || groups[1].Entries[0].Buffer.MinBindingSize != 32 {
		t.Fatalf("expected camera and a 32-byte light group, got %d groups", len(groups))
	}
	if len(s.VertexLayouts()) != 1 {
		t.Errorf("expected a single vertex layout, got %d", len(s.VertexLayouts()))
	}
}

func TestPreProcessorErrors(t *testing.T) {
	cases := map[string]string{
		"unknown include":  "//@lumen:include nothing",
		"unknown provider": "//@lumen:group 0 nothing",
		"bad group":        "//@lumen:group x camera",
		"duplicate group":  "//@lumen:group 0 camera\n//@lumen:group 0 light",
		"gap":              "//@lumen:group 1 camera",
		"unknown type":     "//@lumen:bogus",
		"empty":            "//@lumen:",
	}
	for name, src := range cases {
		if _, err := NewShader(name, src, light.LightTypePoint); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestPlainCommentsAreKept(t *testing.T) {
	src := "// a regular comment\nfn f() {}"
	s, err := NewShader("plain", src, light.LightTypePoint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Source() != src {
		t.Errorf("expected source unchanged, got %q", s.Source())
	}
	if len(s.BindGroupLayoutDescriptors()) != 0 || len(s.Declarations()) != 0 {
		t.Error("expected no groups")
	}
}
