package ln

// Mesh is a collection of triangles sharing one BVH-accelerated
// Intersect. The BVH is built lazily, once, by Compile.
type Mesh struct {
	Triangles []*Triangle
	box       Box
	root      *bvhNode
}

// NewMesh validates and builds a Mesh from a set of triangles.
func NewMesh(triangles []*Triangle) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, configErrorf("mesh requires at least 1 triangle")
	}
	return &Mesh{Triangles: triangles}, nil
}

// UnitCube returns a 12-triangle mesh of the cube spanning [-1,1]^3 on
// every axis — a convenient starting point for MoveTo/FitInside.
func UnitCube() (*Mesh, error) {
	var tris []*Triangle
	faces := [6][4]Vector{
		{{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1}},
		{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
		{{-1, -1, -1}, {-1, 1, -1}, {-1, 1, 1}, {-1, -1, 1}},
		{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}},
		{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
		{{-1, 1, -1}, {1, 1, -1}, {1, 1, 1}, {-1, 1, 1}},
	}
	for _, f := range faces {
		t1, err := NewTriangle(f[0], f[1], f[2])
		if err != nil {
			return nil, err
		}
		t2, err := NewTriangle(f[0], f[2], f[3])
		if err != nil {
			return nil, err
		}
		tris = append(tris, t1, t2)
	}
	return NewMesh(tris)
}

// MoveTo translates the mesh so that the anchor point of its current
// bounding box (e.g. {0.5,0.5,0.5} for the center) lands on position.
func (m *Mesh) MoveTo(position, anchor Vector) {
	m.Compile()
	matrix := Translate(position.Sub(m.box.Anchor(anchor)))
	m.transform(matrix)
}

// FitInside scales (and translates) the mesh so it fits exactly inside
// box, anchored at anchor within that box.
func (m *Mesh) FitInside(box Box, anchor Vector) {
	m.Compile()
	scale := box.Size().Div3(m.box.Size())
	s := scale.MinComponent()
	extra := box.Size().Sub(m.box.Size().Mul(s))
	matrix := Translate(m.box.Min.Neg())
	matrix = matrix.Scaled(Vector{s, s, s})
	matrix = matrix.Translated(box.Min.Add(extra.Mul3(anchor)))
	m.transform(matrix)
}

func (v Vector) Div3(o Vector) Vector { return Vector{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

func (m *Mesh) transform(matrix Matrix) {
	for _, t := range m.Triangles {
		t.V1 = matrix.MulPosition(t.V1)
		t.V2 = matrix.MulPosition(t.V2)
		t.V3 = matrix.MulPosition(t.V3)
		t.Compile()
	}
	m.root = nil
}

func (m *Mesh) Compile() {
	if m.root != nil {
		return
	}
	box := EmptyBox()
	shapes := make([]Shape, len(m.Triangles))
	for i, t := range m.Triangles {
		t.Compile()
		box = box.Extend(t.BoundingBox())
		shapes[i] = t
	}
	m.box = box
	m.root = buildBVH(shapes)
}

func (m *Mesh) BoundingBox() Box { return m.box }

// Contains always reports false: meshes have no closed-form interior
// test in this renderer (a mesh's "inside" is only defined well for
// watertight geometry, which is not guaranteed here).
func (m *Mesh) Contains(Vector, Real) bool { return false }

func (m *Mesh) Intersect(ray Ray) Hit {
	return m.root.nearest(ray, infReal)
}

func (m *Mesh) Paths() Paths {
	out := Paths{}
	for _, t := range m.Triangles {
		out.Extend(t.Paths())
	}
	return out
}
