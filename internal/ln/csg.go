package ln

// maxCSGCrossings bounds how many successive surface crossings a CSG
// node will gather from a single child along one ray. A convex
// primitive needs at most 2 (entry/exit); this is generous enough for
// a handful of CSG-nested children without looping forever on a
// pathological ray.
const maxCSGCrossings = 16

// csgCandidate is one surface crossing gathered from a child shape,
// expressed as a world-ray parameter.
type csgCandidate struct {
	t     Real
	point Vector
	hit   Hit
}

// crossings repeatedly intersects ray against shape, nudging the
// origin just past each found hit, collecting every successive
// crossing up to maxCSGCrossings. This is how Intersection/Difference
// see more than a child's single nearest surface point, needed to
// correctly classify rays that enter and exit a child along the way.
func crossings(shape Shape, ray Ray) []csgCandidate {
	var out []csgCandidate
	origin := ray.Origin
	offset := Real(0)
	for i := 0; i < maxCSGCrossings; i++ {
		h := shape.Intersect(Ray{Origin: origin, Direction: ray.Direction})
		if !h.Ok() {
			break
		}
		t := offset + h.T
		point := ray.Position(t)
		out = append(out, csgCandidate{t: t, point: point, hit: Hit{Shape: h.Shape, T: t}})
		step := h.T + epsHit
		origin = origin.Add(ray.Direction.Mul(step))
		offset += step
	}
	return out
}

// Intersection is the CSG node S = children[0] ∩ children[1] ∩ ...
// It requires at least two children.
type Intersection struct {
	Children []Shape
	box      Box
}

// NewIntersection validates and builds an n-ary CSG intersection.
func NewIntersection(children []Shape) (*Intersection, error) {
	if len(children) < 2 {
		return nil, configErrorf("intersection requires at least 2 children, got %d", len(children))
	}
	return &Intersection{Children: children}, nil
}

func (n *Intersection) Compile() {
	box := EmptyBox()
	for _, c := range n.Children {
		c.Compile()
		box = box.Extend(c.BoundingBox())
	}
	n.box = box
}

func (n *Intersection) BoundingBox() Box { return n.box }

func (n *Intersection) Contains(point Vector, epsilon Real) bool {
	for _, c := range n.Children {
		if !c.Contains(point, epsilon) {
			return false
		}
	}
	return true
}

func (n *Intersection) Intersect(ray Ray) Hit {
	var candidates []csgCandidate
	for i, c := range n.Children {
		for _, cand := range crossings(c, ray) {
			cand.hit.Shape = childTag{idx: i, shape: c}
			candidates = append(candidates, cand)
		}
	}
	sortCandidates(candidates)
	for _, cand := range candidates {
		tag := cand.hit.Shape.(childTag)
		if n.containsExcept(cand.point, tag.idx) {
			return Hit{Shape: n, T: cand.t}
		}
	}
	return NoHit
}

func (n *Intersection) containsExcept(point Vector, exceptIdx int) bool {
	for i, c := range n.Children {
		if i == exceptIdx {
			continue
		}
		if !c.Contains(point, epsContains) {
			return false
		}
	}
	return true
}

func (n *Intersection) Paths() Paths {
	out := Paths{}
	for _, c := range n.Children {
		out.Extend(c.Paths())
	}
	return out.Filter(FilterFunc(func(v Vector) (Vector, bool) {
		return v, n.Contains(v, epsContains)
	}))
}

// Difference is the CSG node S = children[0] \ (children[1] ∪ ...).
// It requires at least two children: the base and at least one
// subtractor.
type Difference struct {
	Children []Shape
	box      Box
}

// NewDifference validates and builds an n-ary CSG difference.
func NewDifference(children []Shape) (*Difference, error) {
	if len(children) < 2 {
		return nil, configErrorf("difference requires at least 2 children, got %d", len(children))
	}
	return &Difference{Children: children}, nil
}

func (n *Difference) Compile() {
	for _, c := range n.Children {
		c.Compile()
	}
	// The difference can only remove material from the base, never add
	// any, so its bounding box is exactly the base's.
	n.box = n.Children[0].BoundingBox()
}

func (n *Difference) BoundingBox() Box { return n.box }

func (n *Difference) Contains(point Vector, epsilon Real) bool {
	if !n.Children[0].Contains(point, epsilon) {
		return false
	}
	for _, c := range n.Children[1:] {
		if c.Contains(point, epsilon) {
			return false
		}
	}
	return true
}

func (n *Difference) Intersect(ray Ray) Hit {
	var candidates []csgCandidate
	for i, c := range n.Children {
		for _, cand := range crossings(c, ray) {
			cand.hit.Shape = childTag{idx: i, shape: c}
			candidates = append(candidates, cand)
		}
	}
	sortCandidates(candidates)
	for _, cand := range candidates {
		tag := cand.hit.Shape.(childTag)
		var ok bool
		if tag.idx == 0 {
			ok = true
			for _, c := range n.Children[1:] {
				if c.Contains(cand.point, epsContains) {
					ok = false
					break
				}
			}
		} else {
			ok = n.Children[0].Contains(cand.point, epsContains)
		}
		if ok {
			return Hit{Shape: n, T: cand.t}
		}
	}
	return NoHit
}

func (n *Difference) Paths() Paths {
	out := Paths{}
	for i, c := range n.Children {
		keep := c.Paths()
		if i == 0 {
			out.Extend(keep.Filter(FilterFunc(func(v Vector) (Vector, bool) {
				return v, n.Contains(v, epsContains)
			})))
		} else {
			out.Extend(keep.Filter(FilterFunc(func(v Vector) (Vector, bool) {
				return v, n.Children[0].Contains(v, epsContains) && !otherSubtractorsContain(n.Children, i, v)
			})))
		}
	}
	return out
}

func otherSubtractorsContain(children []Shape, exceptIdx int, v Vector) bool {
	for i, c := range children {
		if i == 0 || i == exceptIdx {
			continue
		}
		if c.Contains(v, epsContains) {
			return true
		}
	}
	return false
}

// childTag identifies which CSG child a crossing came from without
// requiring Shape identity comparison.
type childTag struct {
	idx   int
	shape Shape
}

func (childTag) Compile()                  {}
func (childTag) BoundingBox() Box          { return EmptyBox() }
func (childTag) Contains(Vector, Real) bool { return false }
func (childTag) Intersect(Ray) Hit         { return NoHit }
func (childTag) Paths() Paths              { return Paths{} }

func sortCandidates(c []csgCandidate) {
	for i := 1; i < len(c); i++ {
		for j := i; j > 0 && c[j].t < c[j-1].t; j-- {
			c[j], c[j-1] = c[j-1], c[j]
		}
	}
}
