package ln

import "math"

// Hit is the result of intersecting a ray against a Shape. A miss is
// represented by t = +Inf and a nil Shape.
type Hit struct {
	Shape Shape
	T     Real
}

// NoHit is the miss sentinel.
var NoHit = Hit{T: math.Inf(1)}

// NewHit builds a Hit for the given shape at parameter t.
func NewHit(shape Shape, t Real) Hit { return Hit{Shape: shape, T: t} }

// Ok reports whether the hit is finite and at a positive parameter.
func (h Hit) Ok() bool { return h.T < math.Inf(1) && h.T > 0 }

// MinHit returns whichever of a, b has the smaller positive t (misses lose).
func MinHit(a, b Hit) Hit {
	if a.T < b.T {
		return a
	}
	return b
}

// MaxHit returns whichever of a, b has the larger positive t (misses
// win).
func MaxHit(a, b Hit) Hit {
	if a.T > b.T {
		return a
	}
	return b
}
