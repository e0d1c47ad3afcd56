package ln

import "testing"

func TestSceneIntersectLinearAndBVHAgree(t *testing.T) {
	shapes := gridOfSpheres(t, 4) // below BVHFromNShapes: forces linear scan
	linear := NewScene()
	for _, s := range shapes {
		linear.Add(s)
	}
	linear.Compile()

	forced := NewScene()
	for _, s := range shapes {
		forced.Add(s)
	}
	AlwaysBVH = true
	forced.Compile()
	AlwaysBVH = false

	r := Ray{Origin: Vector{10, 0, -10}, Direction: Vector{0, 0, 1}}
	h1 := linear.Intersect(r)
	h2 := forced.Intersect(r)
	if !h1.Ok() || !h2.Ok() {
		t.Fatal("expected both paths to find a hit")
	}
	if !almostEqual(h1.T, h2.T) {
		t.Fatalf("linear scan t=%v, BVH t=%v", h1.T, h2.T)
	}
}

func TestSceneVisible(t *testing.T) {
	blocker, _ := NewSphere(Vector{0, 0, 0}, 1)
	scene := NewScene()
	scene.Add(blocker)
	scene.Compile()

	if scene.Visible(Vector{0, 0, -10}, Vector{0, 0, 10}) {
		t.Fatal("expected the far point to be occluded by the sphere")
	}
	if !scene.Visible(Vector{5, 5, -10}, Vector{5, 5, 10}) {
		t.Fatal("expected a point well clear of the sphere to be visible")
	}
}

func TestSceneVisibleSelfDoesNotOcclude(t *testing.T) {
	s, _ := NewSphere(Vector{0, 0, 0}, 1)
	scene := NewScene()
	scene.Add(s)
	scene.Compile()
	point := Vector{0, 0, -1}
	if !scene.Visible(Vector{0, 0, -10}, point) {
		t.Fatal("expected the sphere's own front surface point to be visible from in front of it")
	}
}

func TestScenePathsConcatenatesShapes(t *testing.T) {
	s1, _ := NewSphere(Vector{0, 0, 0}, 1)
	s2, _ := NewSphere(Vector{10, 0, 0}, 1)
	scene := NewScene()
	scene.Add(s1)
	scene.Add(s2)
	scene.Compile()
	got := scene.Paths()
	want := len(s1.Paths().Paths) + len(s2.Paths().Paths)
	if len(got.Paths) != want {
		t.Fatalf("got %d paths, want %d", len(got.Paths), want)
	}
}
