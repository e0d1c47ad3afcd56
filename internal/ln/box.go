package ln

// Box is an axis-aligned bounding box. The invariant Min.i <= Max.i
// holds per axis for any box returned by this package.
type Box struct {
	Min, Max Vector
}

// EmptyBox returns a degenerate box that contains nothing and unions
// away to whatever it's combined with.
func EmptyBox() Box {
	const inf = 1e300
	return Box{Min: Vector{inf, inf, inf}, Max: Vector{-inf, -inf, -inf}}
}

// BoxForVectors returns the smallest box enclosing every given point.
func BoxForVectors(vs []Vector) Box {
	if len(vs) == 0 {
		return EmptyBox()
	}
	min, max := vs[0], vs[0]
	for _, v := range vs[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return Box{Min: min, Max: max}
}

// BoxForBoxes returns the smallest box enclosing every given box.
func BoxForBoxes(bs []Box) Box {
	r := EmptyBox()
	for _, b := range bs {
		r = r.Extend(b)
	}
	return r
}

// Anchor returns the point at the given fractional position within the
// box (0 = Min, 1 = Max, 0.5 = Center, per axis).
func (b Box) Anchor(anchor Vector) Vector {
	return b.Min.Add(b.Size().Mul3(anchor))
}

func (v Vector) Mul3(s Vector) Vector { return Vector{v.X * s.X, v.Y * s.Y, v.Z * s.Z} }

// Center returns the box's midpoint.
func (b Box) Center() Vector { return b.Anchor(Vector{0.5, 0.5, 0.5}) }

// Size returns the box's extent along each axis.
func (b Box) Size() Vector { return b.Max.Sub(b.Min) }

// Contains reports whether v lies within the box (inclusive).
func (b Box) Contains(v Vector) bool {
	return b.Min.X <= v.X && v.X <= b.Max.X &&
		b.Min.Y <= v.Y && v.Y <= b.Max.Y &&
		b.Min.Z <= v.Z && v.Z <= b.Max.Z
}

// Extend returns the union of b and o.
func (b Box) Extend(o Box) Box {
	return Box{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Intersect performs the slab test against ray r, returning the entry
// and exit parameters. tmin > tmax signals a miss.
func (b Box) Intersect(r Ray) (tmin, tmax Real) {
	x1 := (b.Min.X - r.Origin.X) / r.Direction.X
	y1 := (b.Min.Y - r.Origin.Y) / r.Direction.Y
	z1 := (b.Min.Z - r.Origin.Z) / r.Direction.Z
	x2 := (b.Max.X - r.Origin.X) / r.Direction.X
	y2 := (b.Max.Y - r.Origin.Y) / r.Direction.Y
	z2 := (b.Max.Z - r.Origin.Z) / r.Direction.Z
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if z1 > z2 {
		z1, z2 = z2, z1
	}
	tmin = maxReal(x1, maxReal(y1, z1))
	tmax = minReal(x2, minReal(y2, z2))
	return
}

// Partition reports whether the box lies (wholly or partially) on the
// negative and positive side of the plane through point on axis.
func (b Box) Partition(axis int, point Real) (left, right bool) {
	switch axis {
	case 0:
		return b.Min.X <= point, b.Max.X >= point
	case 1:
		return b.Min.Y <= point, b.Max.Y >= point
	default:
		return b.Min.Z <= point, b.Max.Z >= point
	}
}

func minReal(a, b Real) Real {
	if a < b {
		return a
	}
	return b
}

func maxReal(a, b Real) Real {
	if a > b {
		return a
	}
	return b
}
