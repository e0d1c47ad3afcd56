package ln

import "testing"

// A non-uniform scale is the case that distinguishes "return the local
// hit t" from "re-derive t in world space": the two diverge by the
// scale factor along the ray's direction.
func TestTransformedShapeIntersectReturnsLocalT(t *testing.T) {
	sphere, err := NewSphere(Vector{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	m := Scale(Vector{2, 1, 1})
	ts, err := NewTransformedShape(sphere, m)
	if err != nil {
		t.Fatal(err)
	}

	ray := Ray{Origin: Vector{-10, 0, 0}, Direction: Vector{1, 0, 0}}
	got := ts.Intersect(ray)
	if !got.Ok() {
		t.Fatal("expected a hit on the scaled sphere")
	}

	inv, _ := m.Inverse()
	localRay := inv.MulRay(ray)
	want := sphere.Intersect(localRay)
	if !want.Ok() {
		t.Fatal("expected a hit on the sphere in local space")
	}

	if !almostEqual(got.T, want.T) {
		t.Fatalf("TransformedShape.Intersect(r).T = %v, want S.Intersect(M^-1*r).T = %v", got.T, want.T)
	}
	// Local space: origin (-5,0,0) hits the unit sphere's surface at
	// x=-1, so local t=4 -- not the world-space distance to x=-2 (t=8)
	// a naive world re-derivation would report.
	if !almostEqual(got.T, 4) {
		t.Fatalf("expected local t=4 for a 2x-scaled-in-x unit sphere, got %v", got.T)
	}
}

func TestTransformedShapeIntersectHitsAlongUnscaledAxis(t *testing.T) {
	sphere, err := NewSphere(Vector{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	ts, err := NewTransformedShape(sphere, Scale(Vector{2, 1, 1}))
	if err != nil {
		t.Fatal(err)
	}
	ray := Ray{Origin: Vector{0, -10, 0}, Direction: Vector{0, 1, 0}}
	// Ray parallel to y through x=0: sphere's local extent in y is [-1,1],
	// so this must still hit despite the x-scale.
	if !ts.Intersect(ray).Ok() {
		t.Fatal("expected a hit through the ellipsoid's unscaled y axis")
	}
}
