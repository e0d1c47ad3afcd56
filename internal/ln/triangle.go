package ln

import "math"

// Triangle is a single planar triangle, typically used as a Mesh leaf.
type Triangle struct {
	V1, V2, V3 Vector
	box        Box
}

// NewTriangle validates and builds a Triangle.
func NewTriangle(v1, v2, v3 Vector) (*Triangle, error) {
	if !v1.IsFinite() || !v2.IsFinite() || !v3.IsFinite() {
		return nil, configErrorf("triangle vertices must be finite")
	}
	t := &Triangle{V1: v1, V2: v2, V3: v3}
	t.Compile()
	return t, nil
}

func (t *Triangle) Compile() {
	t.box = BoxForVectors([]Vector{t.V1, t.V2, t.V3})
}

func (t *Triangle) BoundingBox() Box { return t.box }

// Contains always reports false: a triangle has no interior.
func (t *Triangle) Contains(Vector, Real) bool { return false }

// Intersect implements Möller-Trumbore, without backface culling.
func (t *Triangle) Intersect(ray Ray) Hit {
	const eps = 1e-9
	e1 := t.V2.Sub(t.V1)
	e2 := t.V3.Sub(t.V1)
	p := ray.Direction.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < eps {
		return NoHit
	}
	invDet := 1 / det
	tvec := ray.Origin.Sub(t.V1)
	u := tvec.Dot(p) * invDet
	if u < 0 || u > 1 {
		return NoHit
	}
	q := tvec.Cross(e1)
	v := ray.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return NoHit
	}
	d := e2.Dot(q) * invDet
	if d < eps {
		return NoHit
	}
	return Hit{Shape: t, T: d}
}

func (t *Triangle) Paths() Paths {
	return Paths{Paths: []Path{
		{t.V1, t.V2},
		{t.V2, t.V3},
		{t.V3, t.V1},
	}}
}
