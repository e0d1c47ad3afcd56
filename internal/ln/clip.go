package ln

// clip region codes for the Cohen-Sutherland 2D line clipper, against
// the [-1,1]^2 NDC square.
const (
	csInside = 0
	csLeft   = 1
	csRight  = 2
	csBottom = 4
	csTop    = 8
)

func csCode(x, y Real) int {
	code := csInside
	if x < -1 {
		code |= csLeft
	} else if x > 1 {
		code |= csRight
	}
	if y < -1 {
		code |= csBottom
	} else if y > 1 {
		code |= csTop
	}
	return code
}

// clipSegment2D clips the segment (a,b) against [-1,1]^2, returning the
// clipped endpoints and ok=false if the segment lies entirely outside.
func clipSegment2D(a, b Vector) (Vector, Vector, bool) {
	ca, cb := csCode(a.X, a.Y), csCode(b.X, b.Y)
	for {
		if ca == 0 && cb == 0 {
			return a, b, true
		}
		if ca&cb != 0 {
			return a, b, false
		}
		var x, y Real
		outcode := ca
		if outcode == 0 {
			outcode = cb
		}
		switch {
		case outcode&csTop != 0:
			x = a.X + (b.X-a.X)*(1-a.Y)/(b.Y-a.Y)
			y = 1
		case outcode&csBottom != 0:
			x = a.X + (b.X-a.X)*(-1-a.Y)/(b.Y-a.Y)
			y = -1
		case outcode&csRight != 0:
			y = a.Y + (b.Y-a.Y)*(1-a.X)/(b.X-a.X)
			x = 1
		case outcode&csLeft != 0:
			y = a.Y + (b.Y-a.Y)*(-1-a.X)/(b.X-a.X)
			x = -1
		}
		p := Vector{X: x, Y: y, Z: 0}
		if outcode == ca {
			a = p
			ca = csCode(a.X, a.Y)
		} else {
			b = p
			cb = csCode(b.X, b.Y)
		}
	}
}

// ClipNDC2D clips every segment of every path against the [-1,1]^2 NDC
// square, splitting paths at clip boundaries rather than bisecting them
// (each surviving segment becomes its own 2-vertex path; adjacent
// surviving segments are not re-joined). Paths.Filter, used by the
// visibility pipeline, already produces short runs, so callers usually
// want to simplify() after this.
func (p Paths) ClipNDC2D() Paths {
	out := Paths{}
	for _, path := range p.Paths {
		for i := 0; i < len(path)-1; i++ {
			a, b, ok := clipSegment2D(path[i], path[i+1])
			if ok {
				out.Push(Path{a, b})
			}
		}
	}
	return out
}

// clipNearPlane splits a world-space path at the w = near boundary
// induced by viewProj, dropping any portion with w <= near and
// linearly interpolating a fresh vertex exactly at w = near so the
// surviving portion's perspective divide is well-defined. It returns
// the surviving sub-paths, each with w >= near throughout.
func clipNearPlane(path Path, viewProj Matrix, near Real) []Path {
	type sample struct {
		clip Vector
		w    Real
	}
	samples := make([]sample, len(path))
	for i, v := range path {
		c, w := viewProj.MulPositionW(v)
		samples[i] = sample{clip: c, w: w}
	}

	var out []Path
	var cur Path
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for i := 0; i < len(samples); i++ {
		s := samples[i]
		inside := s.w > near
		if inside {
			cur = append(cur, Vector{s.clip.X / s.w, s.clip.Y / s.w, s.clip.Z / s.w})
		} else {
			flush()
		}
		if i+1 < len(samples) {
			next := samples[i+1]
			nextInside := next.w > near
			if inside != nextInside {
				t := (near - s.w) / (next.w - s.w)
				lerp := func(a, b Real) Real { return a + (b-a)*t }
				cx := lerp(s.clip.X, next.clip.X)
				cy := lerp(s.clip.Y, next.clip.Y)
				cz := lerp(s.clip.Z, next.clip.Z)
				cur = append(cur, Vector{cx / near, cy / near, cz / near})
			}
		}
	}
	flush()
	return out
}
