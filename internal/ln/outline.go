package ln

// Outline wraps a Sphere, Cylinder, or Cone and, at Paths() time,
// replaces its inner shape's regular texture with the camera-dependent
// silhouette of that shape as seen from Eye. It behaves exactly like
// its inner shape for Intersect/Contains/BoundingBox — only Paths
// differs, and only Paths is recomputed per render call rather than
// once at Compile time, since the silhouette depends on the eye.
type Outline struct {
	Inner  Shape
	Eye, Up Vector
}

// NewOutline validates that inner is one of the shapes with defined
// silhouette math (Sphere, Cylinder, Cone — including either wrapped
// directly or behind a TransformedShape) and builds an Outline.
func NewOutline(inner Shape, eye, up Vector) (*Outline, error) {
	if !outlinable(inner) {
		return nil, configErrorf("outline is only valid on Sphere, Cylinder, or Cone (or a transform of one), got %T", inner)
	}
	return &Outline{Inner: inner, Eye: eye, Up: up}, nil
}

func outlinable(s Shape) bool {
	switch v := s.(type) {
	case *Sphere, *Cylinder, *Cone:
		return true
	case *TransformedShape:
		return outlinable(v.Shape)
	default:
		return false
	}
}

func (o *Outline) Compile() { o.Inner.Compile() }

func (o *Outline) BoundingBox() Box { return o.Inner.BoundingBox() }

func (o *Outline) Contains(v Vector, epsilon Real) bool { return o.Inner.Contains(v, epsilon) }

func (o *Outline) Intersect(ray Ray) Hit {
	h := o.Inner.Intersect(ray)
	if h.Ok() {
		return Hit{Shape: o, T: h.T}
	}
	return NoHit
}

// Paths computes the silhouette in the inner shape's own local frame:
// when Inner is a TransformedShape, the eye is mapped into local space
// first and the resulting silhouette is mapped back out, the same way
// TransformedShape.Paths maps its child's output.
func (o *Outline) Paths() Paths {
	switch v := o.Inner.(type) {
	case *Sphere:
		return outlinePathsSphere(v, o.Eye, o.Up)
	case *Cylinder:
		return outlinePathsCylinder(v, o.Eye)
	case *Cone:
		return outlinePathsCone(v, o.Eye)
	case *TransformedShape:
		localEye := v.Inverse.MulPosition(o.Eye)
		localUp := v.Inverse.MulDirection(o.Up)
		inner := &Outline{Inner: v.Shape, Eye: localEye, Up: localUp}
		return inner.Paths().Transform(v.Matrix)
	default:
		return Paths{}
	}
}
