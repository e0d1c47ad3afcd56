package ln

// CubeTexture selects how a Cube draws its edges.
type CubeTexture int

const (
	// Vanilla draws only the 12 cube edges (the default).
	Vanilla CubeTexture = iota
	// Stripes additionally draws z-parallel stripe lines on the four
	// side faces and criss-cross lines across the z1/z2 end faces.
	Stripes
)

// Cube is an axis-aligned box solid.
type Cube struct {
	Min, Max Vector
	Texture  CubeTexture
	StripeN  int // number of stripes, used when Texture == Stripes
}

// NewCube validates and builds a Cube.
func NewCube(min, max Vector) (*Cube, error) {
	if !min.IsFinite() || !max.IsFinite() {
		return nil, configErrorf("cube min/max must be finite")
	}
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return nil, configErrorf("cube min must be <= max on every axis, got min=%v max=%v", min, max)
	}
	return &Cube{Min: min, Max: max}, nil
}

func (c *Cube) Compile() {}

func (c *Cube) BoundingBox() Box { return Box{Min: c.Min, Max: c.Max} }

func (c *Cube) Contains(point Vector, epsilon Real) bool {
	return point.X >= c.Min.X-epsilon && point.X <= c.Max.X+epsilon &&
		point.Y >= c.Min.Y-epsilon && point.Y <= c.Max.Y+epsilon &&
		point.Z >= c.Min.Z-epsilon && point.Z <= c.Max.Z+epsilon
}

func (c *Cube) Intersect(ray Ray) Hit {
	box := Box{Min: c.Min, Max: c.Max}
	tmin, tmax := box.Intersect(ray)
	if tmin > tmax {
		return NoHit
	}
	if tmin > epsHit {
		return Hit{Shape: c, T: tmin}
	}
	if tmax > epsHit {
		return Hit{Shape: c, T: tmax}
	}
	return NoHit
}

func (c *Cube) Paths() Paths {
	if c.Texture == Stripes {
		return c.pathsStriped()
	}
	return c.pathsVanilla()
}

func (c *Cube) corner(x, y, z int) Vector {
	pick := func(i int, lo, hi Real) Real {
		if i == 0 {
			return lo
		}
		return hi
	}
	return Vector{pick(x, c.Min.X, c.Max.X), pick(y, c.Min.Y, c.Max.Y), pick(z, c.Min.Z, c.Max.Z)}
}

func (c *Cube) pathsVanilla() Paths {
	p := func(x, y, z int) Vector { return c.corner(x, y, z) }
	edges := [][2]Vector{
		{p(0, 0, 0), p(1, 0, 0)}, {p(0, 1, 0), p(1, 1, 0)}, {p(0, 0, 1), p(1, 0, 1)}, {p(0, 1, 1), p(1, 1, 1)},
		{p(0, 0, 0), p(0, 1, 0)}, {p(1, 0, 0), p(1, 1, 0)}, {p(0, 0, 1), p(0, 1, 1)}, {p(1, 0, 1), p(1, 1, 1)},
		{p(0, 0, 0), p(0, 0, 1)}, {p(1, 0, 0), p(1, 0, 1)}, {p(0, 1, 0), p(0, 1, 1)}, {p(1, 1, 0), p(1, 1, 1)},
	}
	paths := Paths{}
	for _, e := range edges {
		paths.Push(Path{e[0], e[1]})
	}
	return paths
}

// pathsStriped adds, for each stripe fraction p=i/n with i<n, four
// z-parallel lines on the side faces — one stepping x1->x2 along y1
// mirrored by one stepping x2->x1 along y2, and one stepping y2->y1
// along x1 mirrored by one stepping y1->y2 along x2 — plus, for every
// i<=n, a criss-cross on both end faces (z1 and z2) connecting each
// stripe's point to its mirror point.
func (c *Cube) pathsStriped() Paths {
	n := c.StripeN
	if n < 1 {
		n = 10
	}
	x1, y1, z1 := c.Min.X, c.Min.Y, c.Min.Z
	x2, y2, z2 := c.Max.X, c.Max.Y, c.Max.Z
	paths := c.pathsVanilla()
	for i := 0; i <= n; i++ {
		p := Real(i) / Real(n)
		x := x1 + (x2-x1)*p
		y := y1 + (y2-y1)*p
		xInv := x2 - (x2-x1)*p
		yInv := y2 - (y2-y1)*p
		if i != n {
			paths.Push(Path{{x, y1, z1}, {x, y1, z2}})
			paths.Push(Path{{xInv, y2, z1}, {xInv, y2, z2}})
			paths.Push(Path{{x1, yInv, z1}, {x1, yInv, z2}})
			paths.Push(Path{{x2, y, z1}, {x2, y, z2}})
		}
		for _, z := range [2]Real{z1, z2} {
			paths.Push(Path{{x, y, z}, {xInv, y, z}})
			paths.Push(Path{{x, y, z}, {x, yInv, z}})
		}
	}
	return paths
}
