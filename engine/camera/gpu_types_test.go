package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func cosf(v float32) float64 { return math.Cos(float64(v)) }
func sinf(v float32) float64 { return math.Sin(float64(v)) }

func near(a, b, tolerance float32) bool {
	return math.Abs(float64(a-b)) <= float64(tolerance)
}

func nearVec(a, b mgl32.Vec3, tolerance float32) bool {
	for i := range a {
		if !near(a[i], b[i], tolerance) {
			return false
		}
	}
	return true
}

func TestGPUCameraUniformLayout(t *testing.T) {
	u := NewGPUCameraUniform()
	if u.Size() != 80 {
		t.Fatalf("expected 80 bytes, got %d", u.Size())
	}
	if len(u.Marshal()) != 80 {
		t.Fatalf("expected 80 marshaled bytes, got %d", len(u.Marshal()))
	}
}

func TestUpdateViewProj(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 5, 10}, mgl32.DegToRad(-90), mgl32.DegToRad(-20))
	p, err := NewProjection(800, 600, mgl32.DegToRad(45), 0.1, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u := NewGPUCameraUniform()
	u.UpdateViewProj(c, p)

	if u.ViewPosition != [4]float32{0, 5, 10, 1} {
		t.Errorf("unexpected view position %v", u.ViewPosition)
	}
	want := p.ProjectionMatrix().Mul4(c.ViewMatrix())
	if mgl32.Mat4(u.ViewProj) != want {
		t.Errorf("unexpected view-projection matrix")
	}

	buf := u.Marshal()
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])); got != 5 {
		t.Errorf("expected view_pos.y = 5 at offset 4, got %f", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[16:])); got != want[0] {
		t.Errorf("expected view_proj[0] at offset 16, got %f", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[76:])); got != want[15] {
		t.Errorf("expected view_proj[15] at offset 76, got %f", got)
	}
}
