package ln

// TransformedShape wraps an inner shape with an affine transform. The
// inner shape is shared, not cloned: multiple TransformedShapes (or a
// CSG node and a TransformedShape) may point at the same inner Shape
// value, and compiling one compiles all of them, matching the spec's
// shared-ownership shape-graph requirement.
type TransformedShape struct {
	Shape   Shape
	Matrix  Matrix
	Inverse Matrix
}

// NewTransformedShape builds a TransformedShape, inverting matrix once
// up front. A singular matrix is a configuration error.
func NewTransformedShape(shape Shape, matrix Matrix) (*TransformedShape, error) {
	inv, ok := matrix.Inverse()
	if !ok {
		return nil, &ConfigError{Msg: "transform matrix is singular"}
	}
	return &TransformedShape{Shape: shape, Matrix: matrix, Inverse: inv}, nil
}

func (t *TransformedShape) Compile() { t.Shape.Compile() }

func (t *TransformedShape) BoundingBox() Box {
	return t.Matrix.MulBox(t.Shape.BoundingBox())
}

func (t *TransformedShape) Contains(point Vector, epsilon Real) bool {
	return t.Shape.Contains(t.Inverse.MulPosition(point), epsilon)
}

func (t *TransformedShape) Intersect(ray Ray) Hit {
	local := t.Inverse.MulRay(ray)
	hit := t.Shape.Intersect(local)
	if !hit.Ok() {
		return NoHit
	}
	return Hit{Shape: t, T: hit.T}
}

func (t *TransformedShape) Paths() Paths {
	return t.Shape.Paths().Transform(t.Matrix)
}
