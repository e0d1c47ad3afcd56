package ln

import "math"

// Direction picks which side of a Function's height surface
// z = f(x,y) is considered solid.
type Direction int

const (
	Above Direction = iota
	Below
)

// FunctionTexture selects how a Function shape draws its own surface
// texture in Paths, independent of the surface itself.
type FunctionTexture int

const (
	Grid FunctionTexture = iota
	Swirl
	Spiral
)

// Function is a height surface z = f(x,y), the height evaluated by a
// parsed 2-variable expression over a bounding Box. Intersect walks
// the ray in fixed steps looking for a sign change in z - f(x,y), then
// bisects to refine it.
type Function struct {
	Box       Box
	Source    string
	Direction Direction
	Texture   FunctionTexture
	expr      *compiledExpr
}

// NewFunction validates and compiles a Function shape.
func NewFunction(box Box, source string, dir Direction, texture FunctionTexture) (*Function, error) {
	expr, err := compileExpr(source)
	if err != nil {
		return nil, err
	}
	if box.Size().X <= 0 || box.Size().Y <= 0 || box.Size().Z <= 0 {
		return nil, configErrorf("function bounding box must have positive extent on every axis")
	}
	return &Function{Box: box, Source: source, Direction: dir, Texture: texture, expr: expr}, nil
}

func (f *Function) Compile() {}

func (f *Function) BoundingBox() Box { return f.Box }

// height evaluates the expression's z = f(x,y) surface at (x,y). The
// engine, not the expression, is responsible for comparing this
// against a sample's z: the expression only ever sees x and y.
func (f *Function) height(x, y Real) Real {
	r, err := f.expr.Eval(x, y)
	if err != nil {
		return math.NaN()
	}
	return r
}

// inside reports whether v is on the solid side of z = f(x,y), per
// Direction.
func (f *Function) inside(v Vector) bool {
	h := f.height(v.X, v.Y)
	if f.Direction == Above {
		return v.Z > h
	}
	return v.Z < h
}

func (f *Function) Contains(v Vector, epsilon Real) bool {
	padded := Box{Min: f.Box.Min.Sub(Vector{epsilon, epsilon, epsilon}), Max: f.Box.Max.Add(Vector{epsilon, epsilon, epsilon})}
	if !padded.Contains(v) {
		return false
	}
	return f.inside(v)
}

func (f *Function) Intersect(ray Ray) Hit {
	tmin, tmax := f.Box.Intersect(ray)
	if tmin > tmax || tmax < epsHit {
		return NoHit
	}
	if tmin < epsHit {
		tmin = epsHit
	}
	tmax = math.Min(tmax, tmin+functionMarchMax)

	prevT := tmin
	prevInside := f.inside(ray.Position(tmin))
	for t := tmin + functionMarchStep; t <= tmax; t += functionMarchStep {
		p := ray.Position(t)
		in := f.inside(p)
		if in != prevInside {
			lo, hi := prevT, t
			for i := 0; i < 32; i++ {
				mid := (lo + hi) / 2
				if f.inside(ray.Position(mid)) == prevInside {
					lo = mid
				} else {
					hi = mid
				}
			}
			return Hit{Shape: f, T: hi}
		}
		prevT = t
		prevInside = in
	}
	return NoHit
}

func (f *Function) Paths() Paths {
	switch f.Texture {
	case Swirl:
		return f.pathsSwirl()
	case Spiral:
		return f.pathsSpiral()
	default:
		return f.pathsGrid()
	}
}

// surfacePoint finds the point on the ray straight down the z axis at
// (x,y) where the height surface crosses, for texture sampling.
func (f *Function) surfacePoint(x, y Real) (Vector, bool) {
	ray := Ray{Origin: Vector{x, y, f.Box.Max.Z + 1}, Direction: Vector{0, 0, -1}}
	h := f.Intersect(ray)
	if !h.Ok() {
		return Vector{}, false
	}
	return ray.Position(h.T), true
}

func (f *Function) pathsGrid() Paths {
	paths := Paths{}
	n := 40
	dx := f.Box.Size().X / Real(n)
	dy := f.Box.Size().Y / Real(n)
	for i := 0; i <= n; i++ {
		x := f.Box.Min.X + Real(i)*dx
		var path Path
		for j := 0; j <= n; j++ {
			y := f.Box.Min.Y + Real(j)*dy
			if p, ok := f.surfacePoint(x, y); ok {
				path = append(path, p)
			} else {
				if len(path) > 1 {
					paths.Push(path)
				}
				path = nil
			}
		}
		if len(path) > 1 {
			paths.Push(path)
		}
	}
	for j := 0; j <= n; j++ {
		y := f.Box.Min.Y + Real(j)*dy
		var path Path
		for i := 0; i <= n; i++ {
			x := f.Box.Min.X + Real(i)*dx
			if p, ok := f.surfacePoint(x, y); ok {
				path = append(path, p)
			} else {
				if len(path) > 1 {
					paths.Push(path)
				}
				path = nil
			}
		}
		if len(path) > 1 {
			paths.Push(path)
		}
	}
	return paths
}

// pathsSwirl draws one radial ray per 5-degree angle out to radius 8,
// twisting each ray's angle by o = -(-z)^1.4 wherever the height
// z=f(x,y) sampled along it goes negative — the twist is the "swirl",
// and it only engages for negative heights so functions like
// -1/(x^2+y^2) fan out instead of producing NaN angles.
func (f *Function) pathsSwirl() Paths {
	paths := Paths{}
	const fine Real = 1.0 / 256.0
	for a := 0; a < 360; a += 5 {
		rad := radians(Real(a))
		var path Path
		for r := Real(0); r <= 8; r += fine {
			x := math.Cos(rad) * r
			y := math.Sin(rad) * r
			z := f.height(x, y)
			var o Real
			if z < 0 {
				o = -math.Pow(-z, 1.4)
			}
			x = math.Cos(rad-o) * r
			y = math.Sin(rad-o) * r
			z = clamp(z, f.Box.Min.Z, f.Box.Max.Z)
			path = append(path, Vector{x, y, z})
		}
		paths.Push(path)
	}
	return paths
}

// pathsSpiral draws a single 10000-point path along r = 8*(1-t^0.1) as
// t runs 0..1, its angle radians(t*2*pi*3000) sweeping about 52 turns,
// sampling the height surface at each
// point along the way.
func (f *Function) pathsSpiral() Paths {
	const n = 10000
	var path Path
	for i := 0; i < n; i++ {
		t := Real(i) / Real(n)
		r := 8 - math.Pow(t, 0.1)*8
		rad := radians(t * 2 * math.Pi * 3000)
		x := math.Cos(rad) * r
		y := math.Sin(rad) * r
		z := f.height(x, y)
		z = clamp(z, f.Box.Min.Z, f.Box.Max.Z)
		path = append(path, Vector{x, y, z})
	}
	paths := Paths{}
	paths.Push(path)
	return paths
}
