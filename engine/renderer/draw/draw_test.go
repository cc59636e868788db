package draw

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/lumen/engine/model"
	"github.com/Carmen-Shannon/lumen/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/lumen/engine/renderer/material"
	"github.com/cogentcore/webgpu/wgpu"
)

type call struct {
	op        string
	slot      uint32
	buffer    *wgpu.Buffer
	group     *wgpu.BindGroup
	format    wgpu.IndexFormat
	count     uint32
	instances uint32
	first     uint32
}

type fakePass struct {
	calls []call
}

func (f *fakePass) SetPipeline(*wgpu.RenderPipeline) {
	f.calls = append(f.calls, call{op: "pipeline"})
}

func (f *fakePass) SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, _, _ uint64) {
	f.calls = append(f.calls, call{op: "vertex", slot: slot, buffer: buffer})
}

func (f *fakePass) SetIndexBuffer(buffer *wgpu.Buffer, format wgpu.IndexFormat, _, _ uint64) {
	f.calls = append(f.calls, call{op: "index", buffer: buffer, format: format})
}

func (f *fakePass) SetBindGroup(index uint32, group *wgpu.BindGroup, _ []uint32) {
	f.calls = append(f.calls, call{op: "group", slot: index, group: group})
}

func (f *fakePass) DrawIndexed(indexCount, instanceCount, _ uint32, _ int32, firstInstance uint32) {
	f.calls = append(f.calls, call{op: "draw", count: indexCount, instances: instanceCount, first: firstInstance})
}

func (f *fakePass) ops(op string) []call {
	var out []call
	for _, c := range f.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

// providerWithGroup returns a provider holding a placeholder bind group so draws can be told apart.
func providerWithGroup(name string) bind_group_provider.BindGroupProvider {
	p := bind_group_provider.NewBindGroupProvider(name)
	p.SetBindGroup(&wgpu.BindGroup{})
	return p
}

func uploadedCube(t *testing.T, name string, materialIndex int) model.Mesh {
	t.Helper()
	m, err := model.NewCubeMesh(name, 1, model.WithMaterialIndex(materialIndex))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Provider().SetMeshBuffers(&wgpu.Buffer{}, &wgpu.Buffer{}, m.IndexCount(), m.IndexFormat())
	return m
}

func TestInstanceRangeCount(t *testing.T) {
	if (InstanceRange{Start: 2, End: 10}).Count() != 8 {
		t.Error("expected 8 instances")
	}
	if (InstanceRange{Start: 5, End: 5}).Count() != 0 || (InstanceRange{Start: 6, End: 2}).Count() != 0 {
		t.Error("expected empty ranges to count 0")
	}
}

func TestDrawMeshInstancedBindsGroupsInOrder(t *testing.T) {
	mesh := uploadedCube(t, "cube", 0)
	mat := material.NewMaterial("crate", material.WithBindGroupProvider(providerWithGroup("crate")))
	cam, lit := providerWithGroup("camera"), providerWithGroup("light")

	pass := &fakePass{}
	DrawMeshInstanced(pass, mesh, mat, InstanceRange{Start: 3, End: 10}, cam, lit)

	vertex := pass.ops("vertex")
	if len(vertex) != 1 || vertex[0].slot != VertexSlot || vertex[0].buffer != mesh.Provider().VertexBuffer() {
		t.Error("expected the mesh vertex buffer at slot 0")
	}
	index := pass.ops("index")
	if len(index) != 1 || index[0].format != wgpu.IndexFormatUint32 {
		t.Error("expected a uint32 index buffer")
	}

	groups := pass.ops("group")
	want := map[uint32]*wgpu.BindGroup{
		0: mat.BindGroupProvider().BindGroup(),
		1: cam.BindGroup(),
		2: lit.BindGroup(),
	}
	if len(groups) != 3 {
		t.Fatalf("expected 3 bind groups, got %d", len(groups))
	}
	for _, g := range groups {
		if want[g.slot] != g.group {
			t.Errorf("wrong bind group at index %d", g.slot)
		}
	}

	draws := pass.ops("draw")
	if len(draws) != 1 || draws[0].count != 36 || draws[0].instances != 7 || draws[0].first != 3 {
		t.Errorf("expected DrawIndexed(36, 7, 0, 0, 3), got %+v", draws)
	}
	if pass.calls[len(pass.calls)-1].op != "draw" {
		t.Error("expected the draw to be recorded last")
	}
}

func TestDrawModelInstancedDrawsEveryMesh(t *testing.T) {
	first, second := material.NewMaterial("first"), material.NewMaterial("second")
	first.BindGroupProvider().SetBindGroup(&wgpu.BindGroup{})
	second.BindGroupProvider().SetBindGroup(&wgpu.BindGroup{})

	m, err := model.NewModel("pair",
		model.WithMeshes(uploadedCube(t, "a", 1), uploadedCube(t, "b", 0)),
		model.WithMaterials(first, second),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pass := &fakePass{}
	if err := DrawModelInstanced(pass, m, InstanceRange{End: 100}, providerWithGroup("camera"), providerWithGroup("light")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	draws := pass.ops("draw")
	if len(draws) != 2 {
		t.Fatalf("expected one draw per mesh, got %d", len(draws))
	}
	for _, d := range draws {
		if d.instances != 100 || d.first != 0 {
			t.Errorf("expected 100 instances from 0, got %+v", d)
		}
	}

	var materials []*wgpu.BindGroup
	for _, g := range pass.ops("group") {
		if g.slot == MaterialGroup {
			materials = append(materials, g.group)
		}
	}
	if len(materials) != 2 || materials[0] != second.BindGroupProvider().BindGroup() || materials[1] != first.BindGroupProvider().BindGroup() {
		t.Error("expected each mesh to bind the material at its own index")
	}
}

// brokenModel reports a material index that is out of range.
type brokenModel struct {
	model.Model
	mesh model.Mesh
}

func (b brokenModel) Meshes() []model.Mesh { return []model.Mesh{b.mesh} }

func (b brokenModel) MeshMaterial(model.Mesh) (material.Material, error) {
	return nil, model.ErrMaterialIndex
}

func (b brokenModel) Name() string { return "broken" }

func TestDrawModelInstancedReportsMaterialIndex(t *testing.T) {
	pass := &fakePass{}
	err := DrawModelInstanced(pass, brokenModel{mesh: uploadedCube(t, "a", 3)}, InstanceRange{End: 1}, providerWithGroup("camera"), providerWithGroup("light"))
	if !errors.Is(err, model.ErrMaterialIndex) {
		t.Fatalf("expected ErrMaterialIndex, got %v", err)
	}
	if len(pass.calls) != 0 {
		t.Error("expected nothing to be recorded")
	}
}

func TestDrawLightModelUsesMarkerGroups(t *testing.T) {
	mesh, err := model.NewCubeMesh("marker", 0.5, model.WithUint16Indices())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mesh.Provider().SetMeshBuffers(&wgpu.Buffer{}, &wgpu.Buffer{}, mesh.IndexCount(), mesh.IndexFormat())
	m, err := model.NewModel("marker", model.WithMeshes(mesh), model.WithMaterials(material.NewMaterial("unused")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cam, lit := providerWithGroup("camera"), providerWithGroup("light")
	pass := &fakePass{}
	DrawLightModel(pass, m, cam, lit)

	if idx := pass.ops("index"); len(idx) != 1 || idx[0].format != wgpu.IndexFormatUint16 {
		t.Error("expected uint16 indices for the marker")
	}
	groups := pass.ops("group")
	if len(groups) != 2 || groups[0].slot != 0 || groups[0].group != cam.BindGroup() || groups[1].slot != 1 || groups[1].group != lit.BindGroup() {
		t.Error("expected camera at group 0 and light at group 1")
	}
	if d := pass.ops("draw"); len(d) != 1 || d[0].instances != 1 {
		t.Error("expected a single-instance draw")
	}
}
