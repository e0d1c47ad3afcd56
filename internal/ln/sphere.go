package ln

import (
	"math"
	"math/rand"
)

// SphereTexture selects how a Sphere samples its own surface for
// texture paths.
type SphereTexture int

const (
	// LatLng draws a latitude/longitude grid (the default).
	LatLng SphereTexture = iota
	// RandomEquators draws a handful of great circles through random
	// rotations of the equator, seeded per sphere.
	RandomEquators
	// RandomDots scatters short random strokes across the surface.
	RandomDots
	// RandomCircles draws small circles centered at random surface
	// points.
	RandomCircles
)

// Sphere is a solid ball.
type Sphere struct {
	Center  Vector
	Radius  Real
	Texture SphereTexture
	Seed    int64

	box Box
}

// NewSphere validates and builds a Sphere.
func NewSphere(center Vector, radius Real) (*Sphere, error) {
	if !(radius > 0) {
		return nil, configErrorf("sphere radius must be > 0, got %v", radius)
	}
	if !center.IsFinite() {
		return nil, configErrorf("sphere center must be finite")
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

func (s *Sphere) Compile() {
	r := Vector{s.Radius, s.Radius, s.Radius}
	s.box = Box{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

func (s *Sphere) BoundingBox() Box { return s.box }

func (s *Sphere) Contains(point Vector, epsilon Real) bool {
	return point.Dist(s.Center) <= s.Radius+epsilon
}

func (s *Sphere) Intersect(ray Ray) Hit {
	oc := ray.Origin.Sub(s.Center)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	d := b*b - c
	if d < 0 {
		return NoHit
	}
	sq := math.Sqrt(d)
	t1 := -b - sq
	if t1 > epsHit {
		return Hit{Shape: s, T: t1}
	}
	t2 := -b + sq
	if t2 > epsHit {
		return Hit{Shape: s, T: t2}
	}
	return NoHit
}

func (s *Sphere) latLngToXYZ(lat, lng Real) Vector {
	lat, lng = radians(lat), radians(lng)
	x := math.Cos(lat) * math.Cos(lng)
	y := math.Cos(lat) * math.Sin(lng)
	z := math.Sin(lat)
	return s.Center.Add(Vector{x, y, z}.Mul(s.Radius))
}

func (s *Sphere) Paths() Paths {
	switch s.Texture {
	case RandomEquators:
		return s.pathsRandomEquators()
	case RandomDots:
		return s.pathsRandomDots()
	case RandomCircles:
		return s.pathsRandomCircles()
	default:
		return s.pathsLatLng()
	}
}

func (s *Sphere) pathsLatLng() Paths {
	const n = 10
	const o = 10
	paths := Paths{}
	for lat := -90 + o; lat < 90; lat += n {
		var path Path
		for lng := Real(-180); lng <= 180; lng += n {
			path = append(path, s.latLngToXYZ(Real(lat), lng))
		}
		paths.Push(path)
	}
	for lng := Real(0); lng < 180; lng += n {
		var path Path
		for lat := Real(-90 + o); lat <= 90-o; lat += n {
			path = append(path, s.latLngToXYZ(lat, lng))
		}
		paths.Push(path)
	}
	return paths
}

func (s *Sphere) rng() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = int64(math.Float64bits(s.Center.X)) ^ int64(math.Float64bits(s.Radius))
	}
	return rand.New(rand.NewSource(seed))
}

// pathsRandomEquators draws count great circles through random
// rotations of the sphere's equator, using a PRNG seeded from s.Seed so
// the same sphere always yields the same stroke pattern.
func (s *Sphere) pathsRandomEquators() Paths {
	const count = 12
	r := s.rng()
	paths := Paths{}
	for i := 0; i < count; i++ {
		axis := Vector{r.Float64()*2 - 1, r.Float64()*2 - 1, r.Float64()*2 - 1}.Norm()
		rot := Rotate(axis, r.Float64()*2*math.Pi)
		var path Path
		for a := Real(0); a <= 360; a += 5 {
			rad := radians(a)
			local := Vector{math.Cos(rad), math.Sin(rad), 0}.Mul(s.Radius)
			path = append(path, s.Center.Add(rot.MulDirection(local).Mul(s.Radius)))
		}
		paths.Push(path)
	}
	return paths
}

// pathsRandomDots scatters short strokes tangent to the sphere at
// random surface points.
func (s *Sphere) pathsRandomDots() Paths {
	const count = 400
	const dotLen = 0.05
	r := s.rng()
	paths := Paths{}
	for i := 0; i < count; i++ {
		n := randomUnitVector(r)
		center := s.Center.Add(n.Mul(s.Radius))
		t := n.MinAxis().Cross(n).Norm()
		half := t.Mul(dotLen * s.Radius / 2)
		paths.Push(Path{center.Sub(half), center.Add(half)})
	}
	return paths
}

// pathsRandomCircles draws small circles centered at random surface
// points, each lying in the surface's local tangent plane.
func (s *Sphere) pathsRandomCircles() Paths {
	const count = 60
	const radiusFrac = 0.08
	r := s.rng()
	paths := Paths{}
	for i := 0; i < count; i++ {
		n := randomUnitVector(r)
		center := s.Center.Add(n.Mul(s.Radius))
		u := n.MinAxis().Cross(n).Norm()
		v := n.Cross(u)
		rad := radiusFrac * s.Radius
		var path Path
		for a := Real(0); a <= 360; a += 15 {
			rr := radians(a)
			path = append(path, center.Add(u.Mul(math.Cos(rr)*rad)).Add(v.Mul(math.Sin(rr)*rad)))
		}
		paths.Push(path)
	}
	return paths
}

func randomUnitVector(r *rand.Rand) Vector {
	for {
		v := Vector{r.Float64()*2 - 1, r.Float64()*2 - 1, r.Float64()*2 - 1}
		if l := v.Len(); l > 1e-9 && l <= 1 {
			return v.Div(l)
		}
	}
}

// outlinePathsSphere computes s's silhouette circle as seen from eye:
// the circle where the view cone from eye touches the sphere, lying in
// a plane perpendicular to center-eye; used by Outline.Paths.
func outlinePathsSphere(s *Sphere, eye, up Vector) Paths {
	toEye := s.Center.Sub(eye)
	hyp := toEye.Len()
	if hyp <= s.Radius {
		// Eye is inside or on the sphere: no silhouette to draw.
		return Paths{}
	}
	opp := s.Radius
	theta := math.Asin(opp / hyp)
	adj := opp / math.Tan(theta)
	d := math.Cos(theta) * adj
	rad := math.Sin(theta) * adj

	w := toEye.Mul(-1 / hyp) // unit vector from center toward eye
	if math.Abs(w.Dot(up)) > 1-1e-9 {
		up = w.MinAxis()
	}
	u := w.Cross(up).Norm()
	v := u.Cross(w)

	center := eye.Add(w.Mul(-d))
	var path Path
	for i := 0; i <= 360; i++ {
		a := radians(Real(i))
		p := center.Add(u.Mul(math.Cos(a) * rad)).Add(v.Mul(math.Sin(a) * rad))
		path = append(path, p)
	}
	return Paths{Paths: []Path{path}}
}
