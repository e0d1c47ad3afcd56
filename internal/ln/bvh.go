package ln

import (
	"math"
	"sort"
)

type bvhLeaf struct {
	box   Box
	shape Shape
}

// bvhNode is an interior or leaf node of a bounding volume hierarchy
// over a fixed shape list. Once built, a bvhNode is read-only and safe
// to share across goroutines without locking.
type bvhNode struct {
	box         Box
	left, right *bvhNode
	leaf        []bvhLeaf
}

func buildBVH(shapes []Shape) *bvhNode {
	leaves := make([]bvhLeaf, len(shapes))
	for i, s := range shapes {
		leaves[i] = bvhLeaf{box: s.BoundingBox(), shape: s}
	}
	return buildBVHRec(leaves)
}

func buildBVHRec(leaves []bvhLeaf) *bvhNode {
	n := len(leaves)
	if n == 0 {
		return nil
	}
	if n <= BVHMaxLeafSize {
		box := leaves[0].box
		for _, l := range leaves[1:] {
			box = box.Extend(l.box)
		}
		return &bvhNode{box: box, leaf: leaves}
	}

	box := leaves[0].box
	cmin := centroidOf(leaves[0].box)
	cmax := cmin
	for _, l := range leaves[1:] {
		box = box.Extend(l.box)
		c := centroidOf(l.box)
		cmin = cmin.Min(c)
		cmax = cmax.Max(c)
	}
	spread := cmax.Sub(cmin)
	axis := largestAxis(spread)
	if axisValue(spread, axis) <= 1e-18 {
		axis = largestAxis(box.Size())
	}

	sort.Slice(leaves, func(i, j int) bool {
		ci := axisValue(centroidOf(leaves[i].box), axis)
		cj := axisValue(centroidOf(leaves[j].box), axis)
		return ci < cj
	})
	mid := n / 2
	left := buildBVHRec(leaves[:mid])
	right := buildBVHRec(leaves[mid:])
	return &bvhNode{box: box, left: left, right: right}
}

func centroidOf(b Box) Vector { return b.Min.Add(b.Max).Mul(0.5) }

func axisValue(v Vector, axis int) Real {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func largestAxis(v Vector) int {
	axis := 0
	if v.Y > axisValue(v, axis) {
		axis = 1
	}
	if v.Z > axisValue(v, axis) {
		axis = 2
	}
	return axis
}

// nearest performs a near-far ordered, best-t-pruned traversal looking
// for the closest hit along ray within (0, tMax).
func (root *bvhNode) nearest(ray Ray, tMax Real) Hit {
	if root == nil {
		return NoHit
	}
	best := Hit{T: tMax}
	type entry struct {
		n    *bvhNode
		tmin Real
	}
	stack := []entry{{n: root, tmin: 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tmin, tmax := e.n.box.Intersect(ray)
		if tmin > tmax || tmax < 0 || tmin > best.T {
			continue
		}

		if e.n.leaf != nil {
			for _, l := range e.n.leaf {
				if h := l.shape.Intersect(ray); h.Ok() && h.T < best.T {
					best = h
				}
			}
			continue
		}

		var lOK, rOK bool
		var lT, rT Real
		if e.n.left != nil {
			lt0, lt1 := e.n.left.box.Intersect(ray)
			lOK = lt0 <= lt1 && lt1 >= 0 && lt0 <= best.T
			lT = lt0
		}
		if e.n.right != nil {
			rt0, rt1 := e.n.right.box.Intersect(ray)
			rOK = rt0 <= rt1 && rt1 >= 0 && rt0 <= best.T
			rT = rt0
		}
		switch {
		case lOK && rOK:
			if lT < rT {
				stack = append(stack, entry{e.n.right, rT}, entry{e.n.left, lT})
			} else {
				stack = append(stack, entry{e.n.left, lT}, entry{e.n.right, rT})
			}
		case lOK:
			stack = append(stack, entry{e.n.left, lT})
		case rOK:
			stack = append(stack, entry{e.n.right, rT})
		}
	}
	if best.T < tMax && best.T < math.Inf(1) {
		return best
	}
	return NoHit
}

// any performs the same traversal but returns as soon as any hit under
// tMax is found — used by occlusion queries, which only care whether
// something blocks the ray, not what the nearest blocker is.
func (root *bvhNode) any(ray Ray, tMax Real) bool {
	if root == nil {
		return false
	}
	var stack []*bvhNode
	stack = append(stack, root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tmin, tmax := n.box.Intersect(ray)
		if tmin > tmax || tmax < 0 || tmin > tMax {
			continue
		}
		if n.leaf != nil {
			for _, l := range n.leaf {
				if h := l.shape.Intersect(ray); h.Ok() && h.T < tMax {
					return true
				}
			}
			continue
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}
	return false
}
