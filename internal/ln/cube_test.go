package ln

import "testing"

func TestCubeIntersect(t *testing.T) {
	c, err := NewCube(Vector{-1, -1, -1}, Vector{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	r := Ray{Origin: Vector{0, 0, -5}, Direction: Vector{0, 0, 1}}
	h := c.Intersect(r)
	if !h.Ok() || !almostEqual(h.T, 4) {
		t.Fatalf("got %+v", h)
	}
}

func TestNewCubeRejectsInvertedExtent(t *testing.T) {
	if _, err := NewCube(Vector{1, 0, 0}, Vector{0, 1, 1}); err == nil {
		t.Fatal("expected error for min.X > max.X")
	}
}

func TestCubePathsVanillaHas12Edges(t *testing.T) {
	c, _ := NewCube(Vector{0, 0, 0}, Vector{1, 1, 1})
	paths := c.Paths()
	if len(paths.Paths) != 12 {
		t.Fatalf("expected 12 edges, got %d", len(paths.Paths))
	}
}

func TestCubePathsStripedAddsCrossSections(t *testing.T) {
	c, _ := NewCube(Vector{0, 0, 0}, Vector{1, 1, 1})
	c.Texture = Stripes
	c.StripeN = 5
	paths := c.Paths()
	// n=5: 4 mirrored edge lines for i=0..n-1, plus 4 end-face lines for i=0..n.
	want := 12 + 4*5 + 4*(5+1)
	if len(paths.Paths) != want {
		t.Fatalf("expected %d paths (12 edges + edge stripes + end-face crosses), got %d", want, len(paths.Paths))
	}
	// beyond the 12 vanilla edges, every stripe line either spans z1..z2
	// (an edge line) or is confined to z1 or z2 (an end-face cross); tally
	// each kind and check the counts match the documented geometry.
	var edgeLines, endFaceLines int
	for _, p := range paths.Paths[12:] {
		switch {
		case p[0].Z != p[1].Z:
			edgeLines++
		case p[0].Z == c.Min.Z || p[0].Z == c.Max.Z:
			endFaceLines++
		default:
			t.Fatalf("stripe line neither spans z1..z2 nor lies on z1/z2: %+v", p)
		}
	}
	if edgeLines != 4*5 {
		t.Fatalf("expected %d edge-parallel stripe lines, got %d", 4*5, edgeLines)
	}
	if endFaceLines != 4*(5+1) {
		t.Fatalf("expected %d end-face cross lines, got %d", 4*(5+1), endFaceLines)
	}
}

func TestCubeContains(t *testing.T) {
	c, _ := NewCube(Vector{0, 0, 0}, Vector{1, 1, 1})
	if !c.Contains(Vector{0.5, 0.5, 0.5}, 0) {
		t.Fatal("expected center to be contained")
	}
	if c.Contains(Vector{2, 0, 0}, 0) {
		t.Fatal("expected point outside cube")
	}
}
