package ln

// Shape is the capability set every solid, wrapper, and CSG node in
// this package implements. It is a closed set of concrete variants
// (Sphere, Cube, Cylinder, Cone, Triangle, Mesh, Function,
// TransformedShape, Intersection, Difference, Outline) behind one open
// extension point: any type satisfying this interface can be added to
// a Scene or nested inside a CSG node or TransformedShape.
type Shape interface {
	// Compile performs any one-time preparation (building an internal
	// BVH, caching derived fields). It is idempotent and is called
	// automatically by Scene.Add; callers embedding shapes inside other
	// shapes must call it themselves before first use.
	Compile()
	// BoundingBox returns a box enclosing every point the shape's
	// surface can report from Intersect or Paths.
	BoundingBox() Box
	// Contains reports whether point lies inside the shape's solid
	// region, within tolerance epsilon. Shapes with no natural interior
	// (Triangle, Mesh) report false.
	Contains(point Vector, epsilon Real) bool
	// Intersect returns the nearest positive-t hit along ray, or NoHit.
	Intersect(ray Ray) Hit
	// Paths returns the shape's texture polylines in its own local
	// space (pre-transform).
	Paths() Paths
}

// EmptyShape is the zero-value Shape: it has an empty bounding box,
// never contains a point, never intersects, and yields no paths. It is
// occasionally useful as a CSG operand placeholder or a Mesh's starting
// accumulator.
type EmptyShape struct{}

func (EmptyShape) Compile()                             {}
func (EmptyShape) BoundingBox() Box                      { return EmptyBox() }
func (EmptyShape) Contains(Vector, Real) bool            { return false }
func (EmptyShape) Intersect(Ray) Hit                     { return NoHit }
func (EmptyShape) Paths() Paths                          { return Paths{} }
