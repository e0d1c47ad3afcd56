package ln

import "math"

// Scene owns a list of top-level shapes and the BVH built over them.
// Once Compile has run, a Scene is immutable and safe to query
// concurrently: Intersect and Visible touch no mutable state.
type Scene struct {
	shapes   []Shape
	root     *bvhNode
	compiled bool
}

// NewScene returns an empty scene.
func NewScene() *Scene { return &Scene{} }

// Add compiles shape and appends it to the scene's top-level shape
// list. It may be called before or interleaved with Compile; Compile
// always rebuilds the BVH from the current shape list.
func (s *Scene) Add(shape Shape) {
	shape.Compile()
	s.shapes = append(s.shapes, shape)
	s.compiled = false
}

// Compile builds the scene's root BVH. It is idempotent; calling it
// again after Add appends is required to pick up the new shapes.
func (s *Scene) Compile() {
	if s.compiled {
		return
	}
	useBVH := AlwaysBVH || (!NeverBVH && len(s.shapes) >= BVHFromNShapes)
	if useBVH {
		s.root = buildBVH(s.shapes)
	} else {
		s.root = nil
	}
	s.compiled = true
	DebugLog("Scene.Compile: %d shapes, bvh=%v", len(s.shapes), useBVH)
}

// Intersect returns the nearest hit among every top-level shape.
func (s *Scene) Intersect(ray Ray) Hit {
	if s.root != nil {
		return s.root.nearest(ray, infReal)
	}
	best := Hit{T: infReal}
	for _, shape := range s.shapes {
		if h := shape.Intersect(ray); h.Ok() && h.T < best.T {
			best = h
		}
	}
	if best.T < infReal {
		return best
	}
	return NoHit
}

// Visible reports whether point is unoccluded as seen from eye: a
// bounded ray query with tmax = |point-eye| - epsVisible in which only a
// hit with t < tmax - epsVisible occludes, so the surface point itself
// (or the shape it sits on) never self-occludes.
func (s *Scene) Visible(eye, point Vector) bool {
	d := point.Sub(eye)
	dist := d.Len()
	if dist < epsVisible {
		return true
	}
	ray := Ray{Origin: eye, Direction: d.Mul(1 / dist)}
	tMax := dist - epsVisible
	limit := tMax - epsVisible
	if limit <= 0 {
		return true
	}
	if s.root != nil {
		return !s.root.any(ray, limit)
	}
	for _, shape := range s.shapes {
		if h := shape.Intersect(ray); h.Ok() && h.T < limit {
			return false
		}
	}
	return true
}

// Paths concatenates every top-level shape's own texture paths in
// world space (each shape already expresses paths in its own local
// space; TransformedShape/CSG nodes are responsible for mapping their
// children's paths into their own local space before returning here).
func (s *Scene) Paths() Paths {
	out := Paths{}
	for _, shape := range s.shapes {
		out.Extend(shape.Paths())
	}
	return out
}

var infReal = math.Inf(1)
