package ln

import (
	"math"
	"testing"
)

func vecAlmostEqual(a, b Vector) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestMatrixTranslate(t *testing.T) {
	m := Translate(Vector{1, 2, 3})
	got := m.MulPosition(Vector{0, 0, 0})
	if !vecAlmostEqual(got, Vector{1, 2, 3}) {
		t.Fatalf("got %+v", got)
	}
}

func TestMatrixInverseRoundTrip(t *testing.T) {
	m := Translate(Vector{1, 2, 3}).Mul(Rotate(Vector{0, 0, 1}, math.Pi/4)).Mul(Scale(Vector{2, 3, 4}))
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("expected invertible matrix")
	}
	v := Vector{5, -2, 7}
	got := inv.MulPosition(m.MulPosition(v))
	if !vecAlmostEqual(got, v) {
		t.Fatalf("round trip failed: got %+v want %+v", got, v)
	}
}

func TestMatrixSingularInverse(t *testing.T) {
	m := Scale(Vector{1, 0, 1})
	if _, ok := m.Inverse(); ok {
		t.Fatal("expected singular matrix to report ok=false")
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	m := LookAt(Vector{0, 0, 5}, Vector{0, 0, 0}, Vector{0, 1, 0})
	origin := m.MulPosition(Vector{0, 0, 5})
	if !vecAlmostEqual(origin, Vector{0, 0, 0}) {
		t.Fatalf("eye should map to view-space origin, got %+v", origin)
	}
}

func TestRotateIdentityAngle(t *testing.T) {
	m := Rotate(Vector{0, 0, 1}, 0)
	got := m.MulPosition(Vector{1, 2, 3})
	if !vecAlmostEqual(got, Vector{1, 2, 3}) {
		t.Fatalf("zero rotation should be identity, got %+v", got)
	}
}
