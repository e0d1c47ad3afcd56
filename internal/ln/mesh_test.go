package ln

import "testing"

func buildTestMesh(t *testing.T) *Mesh {
	t1, err := NewTriangle(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	t2, err := NewTriangle(Vector{5, 5, 5}, Vector{6, 5, 5}, Vector{5, 6, 5})
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewMesh([]*Triangle{t1, t2})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMeshIntersectUsesBVH(t *testing.T) {
	m := buildTestMesh(t)
	m.Compile()
	r := Ray{Origin: Vector{0.2, 0.2, -5}, Direction: Vector{0, 0, 1}}
	h := m.Intersect(r)
	if !h.Ok() || !almostEqual(h.T, 5) {
		t.Fatalf("got %+v", h)
	}
}

func TestMeshBoundingBoxUnionsTriangles(t *testing.T) {
	m := buildTestMesh(t)
	m.Compile()
	box := m.BoundingBox()
	if box.Min != (Vector{0, 0, 0}) || box.Max != (Vector{6, 6, 5}) {
		t.Fatalf("got %+v", box)
	}
}

func TestNewMeshRejectsEmpty(t *testing.T) {
	if _, err := NewMesh(nil); err == nil {
		t.Fatal("expected error for empty triangle list")
	}
}

func TestMeshFitInside(t *testing.T) {
	cube, err := UnitCube()
	if err != nil {
		t.Fatal(err)
	}
	target := Box{Min: Vector{0, 0, 0}, Max: Vector{10, 10, 10}}
	cube.FitInside(target, Vector{0.5, 0.5, 0.5})
	cube.Compile()
	box := cube.BoundingBox()
	if box.Size().X > 10.0001 || box.Size().Y > 10.0001 || box.Size().Z > 10.0001 {
		t.Fatalf("expected the mesh to fit inside the target box, got size %+v", box.Size())
	}
}
