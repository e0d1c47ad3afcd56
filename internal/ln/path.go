package ln

// Path is a single polyline: an ordered list of at least two vertices.
type Path []Vector

// Paths is an ordered collection of polylines — the renderer's output
// container, and also each Shape's own texture-sampling output before
// it is chopped, filtered, and projected.
type Paths struct {
	Paths []Path
}

// Push appends a single path.
func (p *Paths) Push(path Path) { p.Paths = append(p.Paths, path) }

// Extend appends every path of o.
func (p *Paths) Extend(o Paths) { p.Paths = append(p.Paths, o.Paths...) }

// BoundingBox returns the box enclosing every vertex of every path.
func (p Paths) BoundingBox() Box {
	box := EmptyBox()
	for _, path := range p.Paths {
		for _, v := range path {
			box = box.Extend(Box{Min: v, Max: v})
		}
	}
	return box
}

// Transform applies matrix to every vertex of every path.
func (p Paths) Transform(m Matrix) Paths {
	out := Paths{Paths: make([]Path, len(p.Paths))}
	for i, path := range p.Paths {
		np := make(Path, len(path))
		for j, v := range path {
			np[j] = m.MulPosition(v)
		}
		out.Paths[i] = np
	}
	return out
}

// Chop resamples every path so that no segment exceeds step in length,
// inserting interpolated points while preserving every original
// vertex. step <= 0 returns p unchanged.
func (p Paths) Chop(step Real) Paths {
	if step <= 0 {
		return p
	}
	out := Paths{Paths: make([]Path, 0, len(p.Paths))}
	for _, path := range p.Paths {
		out.Paths = append(out.Paths, chopPath(path, step))
	}
	return out
}

func chopPath(path Path, step Real) Path {
	if len(path) < 2 {
		return path
	}
	result := make(Path, 0, len(path))
	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		d := a.Dist(b)
		result = append(result, a)
		if d > step {
			n := int(d / step)
			if Real(n)*step < d {
				n++
			}
			for j := 1; j < n; j++ {
				t := Real(j) / Real(n)
				result = append(result, a.Add(b.Sub(a).Mul(t)))
			}
		}
	}
	result = append(result, path[len(path)-1])
	return result
}

// Filter is implemented by anything that can accept or reject a 3D
// sample point, optionally remapping it (the visibility classifier
// returns the point unchanged and rejects only occluded samples).
type Filter interface {
	Filter(v Vector) (Vector, bool)
}

// FilterFunc adapts a plain function to Filter.
type FilterFunc func(v Vector) (Vector, bool)

func (f FilterFunc) Filter(v Vector) (Vector, bool) { return f(v) }

// Filter splits every path into maximal runs of consecutive samples the
// filter accepts, dropping rejected samples and runs of length <= 1.
// Accepted samples are replaced by whatever the filter remaps them to.
func (p Paths) Filter(f Filter) Paths {
	out := Paths{}
	for _, path := range p.Paths {
		var run Path
		for _, v := range path {
			if nv, ok := f.Filter(v); ok {
				run = append(run, nv)
			} else {
				if len(run) > 1 {
					out.Push(run)
				}
				run = nil
			}
		}
		if len(run) > 1 {
			out.Push(run)
		}
	}
	return out
}

// Simplify applies Ramer-Douglas-Peucker simplification with the given
// distance threshold to every path.
func (p Paths) Simplify(threshold Real) Paths {
	out := Paths{Paths: make([]Path, 0, len(p.Paths))}
	for _, path := range p.Paths {
		out.Paths = append(out.Paths, simplifyPath(path, threshold))
	}
	return out
}

func simplifyPath(path Path, threshold Real) Path {
	if len(path) < 3 {
		return path
	}
	first, last := path[0], path[len(path)-1]
	index := -1
	maxDist := Real(0)
	for i := 1; i < len(path)-1; i++ {
		d := path[i].SegmentDistance(first, last)
		if d > maxDist {
			index = i
			maxDist = d
		}
	}
	if maxDist > threshold {
		left := simplifyPath(path[:index+1], threshold)
		right := simplifyPath(path[index:], threshold)
		result := make(Path, 0, len(left)+len(right)-1)
		result = append(result, left[:len(left)-1]...)
		result = append(result, right...)
		return result
	}
	return Path{first, last}
}

// NumSegments returns the total number of line segments across every
// path, a useful size metric for serializers.
func (p Paths) NumSegments() int {
	n := 0
	for _, path := range p.Paths {
		if len(path) > 1 {
			n += len(path) - 1
		}
	}
	return n
}
