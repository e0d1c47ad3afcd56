package ln

import "testing"

func TestBoxIntersectHit(t *testing.T) {
	b := Box{Min: Vector{-1, -1, -1}, Max: Vector{1, 1, 1}}
	r := Ray{Origin: Vector{0, 0, -5}, Direction: Vector{0, 0, 1}}
	tmin, tmax := b.Intersect(r)
	if !almostEqual(tmin, 4) || !almostEqual(tmax, 6) {
		t.Fatalf("got tmin=%v tmax=%v", tmin, tmax)
	}
}

func TestBoxIntersectMiss(t *testing.T) {
	b := Box{Min: Vector{-1, -1, -1}, Max: Vector{1, 1, 1}}
	r := Ray{Origin: Vector{5, 5, -5}, Direction: Vector{0, 0, 1}}
	tmin, tmax := b.Intersect(r)
	if tmin <= tmax {
		t.Fatalf("expected a miss (tmin > tmax), got tmin=%v tmax=%v", tmin, tmax)
	}
}

func TestBoxExtend(t *testing.T) {
	a := Box{Min: Vector{0, 0, 0}, Max: Vector{1, 1, 1}}
	b := Box{Min: Vector{-1, 2, 0}, Max: Vector{0.5, 3, 5}}
	u := a.Extend(b)
	if u.Min != (Vector{-1, 0, 0}) || u.Max != (Vector{1, 3, 5}) {
		t.Fatalf("got %+v", u)
	}
}

func TestBoxAnchor(t *testing.T) {
	b := Box{Min: Vector{0, 0, 0}, Max: Vector{2, 4, 6}}
	center := b.Anchor(Vector{0.5, 0.5, 0.5})
	if !vecAlmostEqual(center, Vector{1, 2, 3}) {
		t.Fatalf("got %+v", center)
	}
}

func TestEmptyBoxExtendIdentity(t *testing.T) {
	b := Box{Min: Vector{1, 1, 1}, Max: Vector{2, 2, 2}}
	u := EmptyBox().Extend(b)
	if u != b {
		t.Fatalf("empty box should be an identity for Extend, got %+v", u)
	}
}
