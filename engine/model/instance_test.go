package model

import (
	"encoding/binary"
	"math"
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b, tolerance float32) bool {
	return math.Abs(float64(a-b)) <= float64(tolerance)
}

func TestInstanceGridCountAndCoordinateSets(t *testing.T) {
	instances := NewInstanceGrid(DefaultInstancesPerRow, DefaultInstanceSpacing)
	if len(instances) != 100 {
		t.Fatalf("expected 100 instances, got %d", len(instances))
	}

	xs := map[float32]int{}
	zs := map[float32]int{}
	origins := 0
	for _, inst := range instances {
		xs[inst.Position.X()]++
		zs[inst.Position.Z()]++
		if inst.Position.Y() != 0 {
			t.Errorf("expected instances on the XZ plane, got y=%f", inst.Position.Y())
		}
		if inst.Position == (mgl32.Vec3{}) {
			origins++
		}
	}
	if origins != 1 {
		t.Errorf("expected exactly one instance at the origin, got %d", origins)
	}

	keys := func(m map[float32]int) []float32 {
		out := make([]float32, 0, len(m))
		for k, count := range m {
			if count != 10 {
				t.Errorf("expected 10 instances at coordinate %f, got %d", k, count)
			}
			out = append(out, k)
		}
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
		return out
	}
	xKeys, zKeys := keys(xs), keys(zs)
	if len(xKeys) != 10 || len(zKeys) != 10 {
		t.Fatalf("expected 10 distinct coordinates per axis, got %d and %d", len(xKeys), len(zKeys))
	}
	for i := range xKeys {
		if xKeys[i] != zKeys[i] {
			t.Errorf("expected identical coordinate sets, x=%v z=%v", xKeys, zKeys)
			break
		}
	}
	if xKeys[0] != -15 || xKeys[9] != 12 {
		t.Errorf("expected coordinates from -15 to 12, got %f to %f", xKeys[0], xKeys[9])
	}
}

func TestOriginInstanceUsesFallbackAxis(t *testing.T) {
	for _, inst := range NewInstanceGrid(DefaultInstancesPerRow, DefaultInstanceSpacing) {
		raw := inst.ToRaw()
		for _, v := range raw.Model {
			if math.IsNaN(float64(v)) {
				t.Fatalf("NaN in model matrix of instance at %v", inst.Position)
			}
		}
		for _, v := range raw.Normal {
			if math.IsNaN(float64(v)) {
				t.Fatalf("NaN in normal matrix of instance at %v", inst.Position)
			}
		}

		if inst.Position != (mgl32.Vec3{}) {
			continue
		}
		want := mgl32.QuatRotate(mgl32.DegToRad(45), mgl32.Vec3{0, 0, 1})
		if !inst.Rotation.ApproxEqualThreshold(want, 1e-6) {
			t.Errorf("expected 45 degrees about +Z at the origin, got %v", inst.Rotation)
		}
	}
}

func TestInstanceRotationAxisIsPosition(t *testing.T) {
	instances := NewInstanceGrid(4, 2)
	inst := instances[0]
	axis := inst.Position.Normalize()

	// A rotation leaves points on its own axis fixed.
	rotated := inst.Rotation.Rotate(axis)
	for i := range axis {
		if !near(rotated[i], axis[i], 1e-5) {
			t.Fatalf("expected axis %v to be fixed, got %v", axis, rotated)
		}
	}
}

func TestGPUInstanceLayout(t *testing.T) {
	inst := Instance{Position: mgl32.Vec3{1, 2, 3}, Rotation: mgl32.QuatIdent()}
	raw := inst.ToRaw()
	if raw.Size() != 100 {
		t.Fatalf("expected 100 bytes, got %d", raw.Size())
	}

	buf := raw.Marshal()
	read := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	if read(48) != 1 || read(52) != 2 || read(56) != 3 || read(60) != 1 {
		t.Error("expected translation in the fourth model matrix column")
	}
	if read(64) != 1 || read(80) != 1 || read(96) != 1 {
		t.Error("expected identity normal matrix at offset 64")
	}

	data := MarshalInstances([]Instance{inst, inst, inst})
	if len(data) != 300 {
		t.Errorf("expected 300 bytes for 3 instances, got %d", len(data))
	}
}

func TestSpinRotatesAboutY(t *testing.T) {
	inst := Instance{Rotation: mgl32.QuatIdent()}
	inst.Spin(mgl32.DegToRad(90))

	got := inst.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
	want := mgl32.Vec3{0, 0, -1}
	for i := range want {
		if !near(got[i], want[i], 1e-5) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNewInstanceGridRejectsEmpty(t *testing.T) {
	if NewInstanceGrid(0, 3) != nil {
		t.Error("expected nil grid for zero instances per row")
	}
}

func TestLayoutsMatchStructSizes(t *testing.T) {
	var v GPUVertex
	var inst GPUInstance
	if VertexLayout().ArrayStride != uint64(v.Size()) {
		t.Errorf("vertex stride %d does not match size %d", VertexLayout().ArrayStride, v.Size())
	}
	if InstanceLayout().ArrayStride != uint64(inst.Size()) {
		t.Errorf("instance stride %d does not match size %d", InstanceLayout().ArrayStride, inst.Size())
	}
	if len(VertexLayout().Attributes)+len(InstanceLayout().Attributes) != 12 {
		t.Error("expected shader locations 0 through 11")
	}
}
