package ln

import "math"

// Cylinder is a z-aligned solid cylinder from Z0 to Z1.
type Cylinder struct {
	Radius Real
	Z0, Z1 Real
}

// NewCylinder validates and builds a z-aligned Cylinder.
func NewCylinder(radius, z0, z1 Real) (*Cylinder, error) {
	if !(radius > 0) {
		return nil, configErrorf("cylinder radius must be > 0, got %v", radius)
	}
	if z0 > z1 {
		z0, z1 = z1, z0
	}
	return &Cylinder{Radius: radius, Z0: z0, Z1: z1}, nil
}

// NewTransformedCylinder places a canonical z-aligned cylinder of the
// given radius between two arbitrary world points, by composing a
// rotate-to-align-with-(v1-v0) matrix with a translation, matching the
// convenience constructors of the same name in the reference Rust
// implementation this renderer's CSG/path pipeline was ported from.
func NewTransformedCylinder(v0, v1 Vector, radius Real) (*TransformedShape, error) {
	c, err := NewCylinder(radius, 0, v0.Dist(v1))
	if err != nil {
		return nil, err
	}
	m, err := alignZMatrix(v0, v1)
	if err != nil {
		return nil, err
	}
	return NewTransformedShape(c, m)
}

// alignZMatrix returns a matrix that maps the canonical z-axis segment
// [0,0,0]-[0,0,|v1-v0|] onto the world segment v0-v1.
func alignZMatrix(v0, v1 Vector) (Matrix, error) {
	d := v1.Sub(v0)
	length := d.Len()
	if length < 1e-12 {
		return Matrix{}, &ConfigError{Msg: "degenerate cylinder/cone axis: v0 and v1 coincide"}
	}
	dir := d.Div(length)
	z := Vector{0, 0, 1}
	axis := z.Cross(dir)
	var rot Matrix
	if axis.Len() < 1e-12 {
		if dir.Dot(z) > 0 {
			rot = Identity()
		} else {
			rot = Rotate(Vector{1, 0, 0}, math.Pi)
		}
	} else {
		angle := math.Acos(clamp(z.Dot(dir), -1, 1))
		rot = Rotate(axis.Norm(), angle)
	}
	return Translate(v0).Mul(rot), nil
}

func clamp(x, lo, hi Real) Real {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func (c *Cylinder) Compile() {}

func (c *Cylinder) BoundingBox() Box {
	return Box{
		Min: Vector{-c.Radius, -c.Radius, c.Z0},
		Max: Vector{c.Radius, c.Radius, c.Z1},
	}
}

func (c *Cylinder) Contains(point Vector, epsilon Real) bool {
	xy := math.Hypot(point.X, point.Y)
	return xy <= c.Radius+epsilon && point.Z >= c.Z0-epsilon && point.Z <= c.Z1+epsilon
}

func (c *Cylinder) Intersect(ray Ray) Hit {
	ox, oy := ray.Origin.X, ray.Origin.Y
	dx, dy := ray.Direction.X, ray.Direction.Y
	a := dx*dx + dy*dy
	b := 2 * (ox*dx + oy*dy)
	cc := ox*ox + oy*oy - c.Radius*c.Radius
	if a < 1e-18 {
		return NoHit
	}
	disc := b*b - 4*a*cc
	if disc < 0 {
		return NoHit
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	for _, t := range []Real{t0, t1} {
		if t <= epsHit {
			continue
		}
		z := ray.Origin.Z + ray.Direction.Z*t
		if z > c.Z0+1e-6 && z < c.Z1-1e-6 {
			return Hit{Shape: c, T: t}
		}
	}
	return NoHit
}

func (c *Cylinder) Paths() Paths {
	paths := Paths{}
	for a := Real(0); a < 360; a += 10 {
		rad := radians(a)
		x, y := math.Cos(rad)*c.Radius, math.Sin(rad)*c.Radius
		paths.Push(Path{{x, y, c.Z0}, {x, y, c.Z1}})
	}
	return paths
}

// tangentSilhouette solves a*cos(theta)+b*sin(theta)=c for the two
// tangent angles theta1,theta2 as seen from eye, shared by Cylinder
// and Cone's outline math. ok is false when the eye lies inside the
// shape's lateral extent (ratio out of [-1,1]) and the caller should
// fall back to drawing the full cap circle(s) instead.
func tangentSilhouette(a, b, cc Real) (theta1, theta2 Real, ok bool) {
	denom := math.Hypot(a, b)
	if denom < 1e-12 {
		return 0, 0, false
	}
	ratio := cc / denom
	if ratio < -1 || ratio > 1 {
		return 0, 0, false
	}
	eyeAzimuth := math.Atan2(b, a)
	acos := math.Acos(ratio)
	return eyeAzimuth + acos, eyeAzimuth - acos, true
}

// outlinePathsCylinder draws the lateral silhouette of c as seen from
// eye: the two tangent vertical lines plus the near top/bottom circles
// (widened slightly so near-tangent arcs stay visible against the
// straight edges).
func outlinePathsCylinder(c *Cylinder, eye Vector) Paths {
	a, b := eye.X, eye.Y
	cc := c.Radius
	theta1, theta2, ok := tangentSilhouette(a, b, cc)
	paths := Paths{}
	if !ok {
		paths.Extend(circlePath(c.Radius, c.Z0))
		paths.Extend(circlePath(c.Radius, c.Z1))
		return paths
	}
	vscale := 1 / math.Cos(math.Pi/360)
	paths.Extend(circlePath(c.Radius*vscale, c.Z0))
	paths.Extend(circlePath(c.Radius*vscale, c.Z1))
	for _, theta := range []Real{theta1, theta2} {
		x, y := math.Cos(theta)*c.Radius, math.Sin(theta)*c.Radius
		paths.Push(Path{{x, y, c.Z0}, {x, y, c.Z1}})
	}
	return paths
}

func circlePath(radius, z Real) Paths {
	var path Path
	for a := Real(0); a <= 360; a += 2 {
		rad := radians(a)
		path = append(path, Vector{math.Cos(rad) * radius, math.Sin(rad) * radius, z})
	}
	return Paths{Paths: []Path{path}}
}

