package ln

import "testing"

func TestTriangleIntersect(t *testing.T) {
	tri, err := NewTriangle(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	r := Ray{Origin: Vector{0.2, 0.2, -5}, Direction: Vector{0, 0, 1}}
	h := tri.Intersect(r)
	if !h.Ok() || !almostEqual(h.T, 5) {
		t.Fatalf("got %+v", h)
	}
}

func TestTriangleIntersectMissOutsideEdges(t *testing.T) {
	tri, _ := NewTriangle(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0})
	r := Ray{Origin: Vector{0.9, 0.9, -5}, Direction: Vector{0, 0, 1}}
	if h := tri.Intersect(r); h.Ok() {
		t.Fatalf("expected a miss outside the triangle, got %+v", h)
	}
}

func TestTriangleNoBackfaceCulling(t *testing.T) {
	tri, _ := NewTriangle(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0})
	front := Ray{Origin: Vector{0.2, 0.2, -5}, Direction: Vector{0, 0, 1}}
	back := Ray{Origin: Vector{0.2, 0.2, 5}, Direction: Vector{0, 0, -1}}
	if !tri.Intersect(front).Ok() {
		t.Fatal("expected a front-facing hit")
	}
	if !tri.Intersect(back).Ok() {
		t.Fatal("expected a back-facing hit too, since this renderer does not cull backfaces")
	}
}

func TestTriangleBoundingBox(t *testing.T) {
	tri, _ := NewTriangle(Vector{0, 0, 0}, Vector{2, 0, 0}, Vector{0, 3, 1})
	box := tri.BoundingBox()
	if box.Min != (Vector{0, 0, 0}) || box.Max != (Vector{2, 3, 1}) {
		t.Fatalf("got %+v", box)
	}
}
