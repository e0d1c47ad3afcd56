package ln

import "testing"

func TestNewCameraValidation(t *testing.T) {
	if _, err := NewCamera(Vector{0, 0, 5}, Vector{0, 0, 0}, Vector{0, 1, 0}, 0, 100, 50, 0.1, 100); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := NewCamera(Vector{0, 0, 5}, Vector{0, 0, 0}, Vector{0, 1, 0}, 100, 100, 200, 0.1, 100); err == nil {
		t.Fatal("expected error for fovy >= 180")
	}
	if _, err := NewCamera(Vector{0, 0, 5}, Vector{0, 0, 0}, Vector{0, 1, 0}, 100, 100, 50, 100, 1); err == nil {
		t.Fatal("expected error for near >= far")
	}
	if _, err := NewCamera(Vector{0, 0, 5}, Vector{0, 0, 5}, Vector{0, 1, 0}, 100, 100, 50, 0.1, 100); err == nil {
		t.Fatal("expected error for eye == center")
	}
}

func TestCameraNDCToPixelMapsCorners(t *testing.T) {
	c, err := NewCamera(Vector{0, 0, 5}, Vector{0, 0, 0}, Vector{0, 1, 0}, 800, 600, 50, 0.1, 100)
	if err != nil {
		t.Fatal(err)
	}
	m := c.NDCToPixel()
	topLeft := m.MulPosition(Vector{-1, 1, 0})
	if !vecAlmostEqual(topLeft, Vector{0, 0, 0}) {
		t.Fatalf("NDC (-1,1) should map to pixel (0,0), got %+v", topLeft)
	}
	bottomRight := m.MulPosition(Vector{1, -1, 0})
	if !vecAlmostEqual(bottomRight, Vector{800, 600, 0}) {
		t.Fatalf("NDC (1,-1) should map to pixel (w,h), got %+v", bottomRight)
	}
}

func TestCameraViewProjectionPutsCenterOnAxis(t *testing.T) {
	c, err := NewCamera(Vector{0, 0, 5}, Vector{0, 0, 0}, Vector{0, 1, 0}, 800, 600, 50, 0.1, 100)
	if err != nil {
		t.Fatal(err)
	}
	vp := c.ViewProjection()
	clip, w := vp.MulPositionW(Vector{0, 0, 0})
	if w <= 0 {
		t.Fatalf("expected the scene center to be in front of the eye, got w=%v", w)
	}
	if !almostEqual(clip.X/w, 0) || !almostEqual(clip.Y/w, 0) {
		t.Fatalf("expected the center to land on the view axis, got ndc=(%v,%v)", clip.X/w, clip.Y/w)
	}
}
