package ln

import "math"

// Vector is an immutable point or direction in 3-space.
type Vector struct {
	X, Y, Z Real
}

func (a Vector) Add(b Vector) Vector { return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector) Sub(b Vector) Vector { return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector) Mul(s Real) Vector   { return Vector{v.X * s, v.Y * s, v.Z * s} }
func (v Vector) Div(s Real) Vector   { return Vector{v.X / s, v.Y / s, v.Z / s} }
func (v Vector) Neg() Vector         { return Vector{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product between two vectors.
func (a Vector) Dot(b Vector) Real { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the cross product a × b.
func (a Vector) Cross(b Vector) Vector {
	return Vector{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vector) Len() Real { return math.Sqrt(v.Dot(v)) }

// Dist returns the Euclidean distance between two points.
func (a Vector) Dist(b Vector) Real { return a.Sub(b).Len() }

// Norm returns a unit-length version of the vector. A (near) zero vector
// is returned unchanged.
func (v Vector) Norm() Vector {
	l := v.Len()
	if l < 1e-18 {
		return v
	}
	return Vector{v.X / l, v.Y / l, v.Z / l}
}

// MinAxis returns a unit basis vector along the axis of v's smallest
// absolute component — used when a caller needs any vector not parallel
// to v (e.g. to build an orthonormal basis around v).
func (v Vector) MinAxis() Vector {
	x, y, z := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	if x <= y && x <= z {
		return Vector{1, 0, 0}
	}
	if y <= x && y <= z {
		return Vector{0, 1, 0}
	}
	return Vector{0, 0, 1}
}

// MinComponent returns the smallest of the three components.
func (v Vector) MinComponent() Real { return math.Min(v.X, math.Min(v.Y, v.Z)) }

// Min returns the componentwise minimum of a and b.
func (a Vector) Min(b Vector) Vector {
	return Vector{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

// Max returns the componentwise maximum of a and b.
func (a Vector) Max(b Vector) Vector {
	return Vector{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

// SegmentDistance returns the distance from v to the line segment p0-p1,
// used by the Ramer-Douglas-Peucker polyline simplifier.
func (v Vector) SegmentDistance(p0, p1 Vector) Real {
	d := p1.Sub(p0)
	l2 := d.Dot(d)
	if l2 < 1e-18 {
		return v.Dist(p0)
	}
	t := v.Sub(p0).Dot(d) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := p0.Add(d.Mul(t))
	return v.Dist(proj)
}

func isFiniteReal(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// IsFinite reports whether all three components are finite.
func (v Vector) IsFinite() bool {
	return isFiniteReal(v.X) && isFiniteReal(v.Y) && isFiniteReal(v.Z)
}

func radians(deg Real) Real { return deg * math.Pi / 180 }
func degrees(rad Real) Real { return rad * 180 / math.Pi }

// Radians converts degrees to radians; exported for callers building
// scenes programmatically (mirrors the camera fovy convention).
func Radians(deg Real) Real { return radians(deg) }

// Degrees converts radians to degrees.
func Degrees(rad Real) Real { return degrees(rad) }
