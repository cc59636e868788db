package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewMatrixInverseRecoversPosition(t *testing.T) {
	position := mgl32.Vec3{1.5, -2, 7}
	limit := float32(math.Pi/2 - 0.01)

	for yaw := float32(-math.Pi); yaw <= math.Pi; yaw += 0.25 {
		for pitch := -limit; pitch <= limit; pitch += 0.2 {
			c := NewCamera(position, yaw, pitch)
			eye := c.ViewMatrix().Inv().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
			got := eye.Vec3().Mul(1 / eye.W())
			if !nearVec(got, position, 1e-3) {
				t.Fatalf("yaw=%f pitch=%f: expected %v, got %v", yaw, pitch, position, got)
			}
		}
	}
}

func TestViewMatrixLooksDownNegativeZ(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 5, 10}, mgl32.DegToRad(-90), mgl32.DegToRad(-20))
	target := c.Position().Add(c.Direction())

	viewSpace := c.ViewMatrix().Mul4x1(target.Vec4(1))
	if !nearVec(viewSpace.Vec3(), mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("expected look target on -Z in view space, got %v", viewSpace)
	}
}

func TestDirectionIsUnitLength(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, 0.3, 1.2)
	if l := c.Direction().Len(); !near(l, 1, 1e-6) {
		t.Errorf("expected unit direction, got length %f", l)
	}

	c = NewCamera(mgl32.Vec3{}, 0, 0)
	if !nearVec(c.Direction(), mgl32.Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("expected +X at zero yaw/pitch, got %v", c.Direction())
	}
}

func TestNewCameraCreatesProvider(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, 0, 0)
	if c.BindGroupProvider() == nil {
		t.Fatal("expected a default bind group provider")
	}
}
