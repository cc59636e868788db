package camera

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewProjectionRejectsInvalidClipPlanes(t *testing.T) {
	cases := []struct{ near, far float32 }{
		{0, 100},
		{-1, 100},
		{10, 10},
		{10, 1},
	}
	for _, tc := range cases {
		if _, err := NewProjection(800, 600, mgl32.DegToRad(45), tc.near, tc.far); !errors.Is(err, ErrInvalidClipPlanes) {
			t.Errorf("near=%f far=%f: expected ErrInvalidClipPlanes, got %v", tc.near, tc.far, err)
		}
	}
}

func TestResizeOnlyChangesAspectTerm(t *testing.T) {
	p, err := NewProjection(800, 600, mgl32.DegToRad(45), 0.1, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := p.ProjectionMatrix()

	p.Resize(1920, 1080)
	after := p.ProjectionMatrix()

	if before[0] == after[0] {
		t.Error("expected the aspect-dependent term to change")
	}
	for i := 1; i < 16; i++ {
		if before[i] != after[i] {
			t.Errorf("element %d changed from %f to %f", i, before[i], after[i])
		}
	}
	if !near(p.Aspect(), 1920.0/1080.0, 1e-6) {
		t.Errorf("unexpected aspect %f", p.Aspect())
	}
	if p.ZNear() != 0.1 || p.ZFar() != 100 || p.Fovy() != mgl32.DegToRad(45) {
		t.Error("expected fovy and clip planes to be unchanged by resize")
	}
}

func TestResizeIgnoresZeroSize(t *testing.T) {
	p, _ := NewProjection(800, 400, mgl32.DegToRad(45), 0.1, 100)
	p.Resize(0, 0)
	p.Resize(640, 0)
	if p.Aspect() != 2 {
		t.Errorf("expected aspect to stay 2, got %f", p.Aspect())
	}
}

func TestProjectionMapsDepthToZeroOne(t *testing.T) {
	p, _ := NewProjection(800, 600, mgl32.DegToRad(45), 0.1, 100)
	m := p.ProjectionMatrix()

	nearClip := m.Mul4x1(mgl32.Vec4{0, 0, -0.1, 1})
	farClip := m.Mul4x1(mgl32.Vec4{0, 0, -100, 1})

	if d := nearClip.Z() / nearClip.W(); !near(d, 0, 1e-4) {
		t.Errorf("expected near depth 0, got %f", d)
	}
	if d := farClip.Z() / farClip.W(); !near(d, 1, 1e-4) {
		t.Errorf("expected far depth 1, got %f", d)
	}
}
