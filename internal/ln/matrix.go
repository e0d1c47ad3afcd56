package ln

import "math"

// Matrix is a row-major 4×4 affine transform.
type Matrix struct {
	M [4][4]Real
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{M: [4][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Translate returns a matrix that translates by v.
func Translate(v Vector) Matrix {
	m := Identity()
	m.M[0][3] = v.X
	m.M[1][3] = v.Y
	m.M[2][3] = v.Z
	return m
}

// Scale returns a matrix that scales each axis independently.
func Scale(v Vector) Matrix {
	m := Identity()
	m.M[0][0] = v.X
	m.M[1][1] = v.Y
	m.M[2][2] = v.Z
	return m
}

// Rotate returns a matrix that rotates by angle radians around axis
// (Rodrigues' rotation formula).
func Rotate(axis Vector, angle Real) Matrix {
	a := axis.Norm()
	s, c := math.Sin(angle), math.Cos(angle)
	m := 1 - c
	return Matrix{M: [4][4]Real{
		{a.X*a.X*m + c, a.X*a.Y*m - a.Z*s, a.X*a.Z*m + a.Y*s, 0},
		{a.Y*a.X*m + a.Z*s, a.Y*a.Y*m + c, a.Y*a.Z*m - a.X*s, 0},
		{a.Z*a.X*m - a.Y*s, a.Z*a.Y*m + a.X*s, a.Z*a.Z*m + c, 0},
		{0, 0, 0, 1},
	}}
}

// Frustum builds a perspective-projection matrix from the six clip
// planes, matching the classic OpenGL glFrustum convention.
func Frustum(l, r, b, t, near, far Real) Matrix {
	t1 := 2 * near
	t2 := r - l
	t3 := t - b
	t4 := far - near
	return Matrix{M: [4][4]Real{
		{t1 / t2, 0, (r + l) / t2, 0},
		{0, t1 / t3, (t + b) / t3, 0},
		{0, 0, (-far - near) / t4, (-t1 * far) / t4},
		{0, 0, -1, 0},
	}}
}

// Orthographic builds a parallel-projection matrix from the six clip
// planes.
func Orthographic(l, r, b, t, near, far Real) Matrix {
	return Matrix{M: [4][4]Real{
		{2 / (r - l), 0, 0, -(r + l) / (r - l)},
		{0, 2 / (t - b), 0, -(t + b) / (t - b)},
		{0, 0, -2 / (far - near), -(far + near) / (far - near)},
		{0, 0, 0, 1},
	}}
}

// Perspective builds a perspective-projection matrix from a vertical
// field of view (degrees), aspect ratio, and near/far clip distances.
func Perspective(fovy, aspect, near, far Real) Matrix {
	ymax := near * math.Tan(radians(fovy)/2)
	xmax := ymax * aspect
	return Frustum(-xmax, xmax, -ymax, ymax, near, far)
}

// LookAt builds a right-handed view matrix placing the camera at eye,
// aimed at center, with the given up direction.
func LookAt(eye, center, up Vector) Matrix {
	f := center.Sub(eye).Norm()
	s := f.Cross(up.Norm()).Norm()
	u := s.Cross(f)
	m := Matrix{M: [4][4]Real{
		{s.X, s.Y, s.Z, 0},
		{u.X, u.Y, u.Z, 0},
		{-f.X, -f.Y, -f.Z, 0},
		{0, 0, 0, 1},
	}}
	return m.Mul(Translate(eye.Neg()))
}

// Mul returns the matrix product a*b.
func (a Matrix) Mul(b Matrix) Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := Real(0)
			for k := 0; k < 4; k++ {
				sum += a.M[i][k] * b.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// Translated left-composes a translation; equivalent to Translate(v).Mul(a).
func (a Matrix) Translated(v Vector) Matrix { return Translate(v).Mul(a) }

// Scaled left-composes a scale.
func (a Matrix) Scaled(v Vector) Matrix { return Scale(v).Mul(a) }

// Rotated left-composes a rotation.
func (a Matrix) Rotated(axis Vector, angle Real) Matrix { return Rotate(axis, angle).Mul(a) }

// MulPosition transforms a point, applying translation, and dividing
// by w.
func (a Matrix) MulPosition(v Vector) Vector {
	x := a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z + a.M[0][3]
	y := a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z + a.M[1][3]
	z := a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z + a.M[2][3]
	w := a.M[3][0]*v.X + a.M[3][1]*v.Y + a.M[3][2]*v.Z + a.M[3][3]
	return Vector{x / w, y / w, z / w}
}

// MulPositionW transforms a point and also returns the homogeneous w
// component, needed by the near-plane clip step.
func (a Matrix) MulPositionW(v Vector) (Vector, Real) {
	x := a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z + a.M[0][3]
	y := a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z + a.M[1][3]
	z := a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z + a.M[2][3]
	w := a.M[3][0]*v.X + a.M[3][1]*v.Y + a.M[3][2]*v.Z + a.M[3][3]
	return Vector{x, y, z}, w
}

// MulDirection transforms a direction — no translation, result
// normalized.
func (a Matrix) MulDirection(v Vector) Vector {
	x := a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z
	y := a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z
	z := a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z
	return Vector{x, y, z}.Norm()
}

// MulRay transforms a ray's origin as a position and its direction as
// a direction.
func (a Matrix) MulRay(r Ray) Ray {
	return Ray{Origin: a.MulPosition(r.Origin), Direction: a.MulDirection(r.Direction)}
}

// MulBox re-axis-aligns a box after transforming its eight corners, by
// transforming the box's three edge vectors and re-deriving the min/max
// extent along each world axis.
func (a Matrix) MulBox(box Box) Box {
	r := Vector{a.M[0][0], a.M[1][0], a.M[2][0]}
	u := Vector{a.M[0][1], a.M[1][1], a.M[2][1]}
	b := Vector{a.M[0][2], a.M[1][2], a.M[2][2]}
	t := a.MulPosition(box.Min)
	xa := r.Mul(box.Min.X)
	xb := r.Mul(box.Max.X)
	ya := u.Mul(box.Min.Y)
	yb := u.Mul(box.Max.Y)
	za := b.Mul(box.Min.Z)
	zb := b.Mul(box.Max.Z)
	xa, xb = xa.Min(xb), xa.Max(xb)
	ya, yb = ya.Min(yb), ya.Max(yb)
	za, zb = za.Min(zb), za.Max(zb)
	min := xa.Add(ya).Add(za).Add(t)
	max := xb.Add(yb).Add(zb).Add(t)
	return Box{Min: min, Max: max}
}

// Transpose returns the matrix transpose.
func (a Matrix) Transpose() Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = a.M[j][i]
		}
	}
	return r
}

// Determinant returns the 4×4 determinant via cofactor expansion.
func (a Matrix) Determinant() Real {
	m := a.M
	return m[0][0]*m[1][1]*m[2][2]*m[3][3] - m[0][0]*m[1][1]*m[2][3]*m[3][2] +
		m[0][0]*m[1][2]*m[2][3]*m[3][1] - m[0][0]*m[1][2]*m[2][1]*m[3][3] +
		m[0][0]*m[1][3]*m[2][1]*m[3][2] - m[0][0]*m[1][3]*m[2][2]*m[3][1] -
		m[0][1]*m[1][2]*m[2][3]*m[3][0] + m[0][1]*m[1][2]*m[2][0]*m[3][3] -
		m[0][1]*m[1][3]*m[2][0]*m[3][2] + m[0][1]*m[1][3]*m[2][2]*m[3][0] -
		m[0][1]*m[1][0]*m[2][2]*m[3][3] + m[0][1]*m[1][0]*m[2][3]*m[3][2] +
		m[0][2]*m[1][3]*m[2][0]*m[3][1] - m[0][2]*m[1][3]*m[2][1]*m[3][0] +
		m[0][2]*m[1][0]*m[2][1]*m[3][3] - m[0][2]*m[1][0]*m[2][3]*m[3][1] +
		m[0][2]*m[1][1]*m[2][3]*m[3][0] - m[0][2]*m[1][1]*m[2][0]*m[3][3] -
		m[0][3]*m[1][0]*m[2][1]*m[3][2] + m[0][3]*m[1][0]*m[2][2]*m[3][1] -
		m[0][3]*m[1][1]*m[2][2]*m[3][0] + m[0][3]*m[1][1]*m[2][0]*m[3][2] -
		m[0][3]*m[1][2]*m[2][0]*m[3][1] + m[0][3]*m[1][2]*m[2][1]*m[3][0]
}

// Inverse returns the matrix inverse via the adjugate/determinant
// method. ok is false when the matrix is singular (determinant ~0),
// in which case callers must surface a ConfigError rather than use r.
func (a Matrix) Inverse() (r Matrix, ok bool) {
	d := a.Determinant()
	if math.Abs(d) < 1e-18 {
		return Matrix{}, false
	}
	m := a.M
	r.M[0][0] = (m[1][1]*m[2][2]*m[3][3] - m[1][1]*m[2][3]*m[3][2] - m[1][2]*m[2][1]*m[3][3] + m[1][2]*m[2][3]*m[3][1] + m[1][3]*m[2][1]*m[3][2] - m[1][3]*m[2][2]*m[3][1]) / d
	r.M[0][1] = (m[0][1]*m[2][3]*m[3][2] - m[0][1]*m[2][2]*m[3][3] + m[0][2]*m[2][1]*m[3][3] - m[0][2]*m[2][3]*m[3][1] - m[0][3]*m[2][1]*m[3][2] + m[0][3]*m[2][2]*m[3][1]) / d
	r.M[0][2] = (m[0][1]*m[1][2]*m[3][3] - m[0][1]*m[1][3]*m[3][2] - m[0][2]*m[1][1]*m[3][3] + m[0][2]*m[1][3]*m[3][1] + m[0][3]*m[1][1]*m[3][2] - m[0][3]*m[1][2]*m[3][1]) / d
	r.M[0][3] = (m[0][1]*m[1][3]*m[2][2] - m[0][1]*m[1][2]*m[2][3] + m[0][2]*m[1][1]*m[2][3] - m[0][2]*m[1][3]*m[2][1] - m[0][3]*m[1][1]*m[2][2] + m[0][3]*m[1][2]*m[2][1]) / d
	r.M[1][0] = (m[1][0]*m[2][3]*m[3][2] - m[1][0]*m[2][2]*m[3][3] + m[1][2]*m[2][0]*m[3][3] - m[1][2]*m[2][3]*m[3][0] - m[1][3]*m[2][0]*m[3][2] + m[1][3]*m[2][2]*m[3][0]) / d
	r.M[1][1] = (m[0][0]*m[2][2]*m[3][3] - m[0][0]*m[2][3]*m[3][2] - m[0][2]*m[2][0]*m[3][3] + m[0][2]*m[2][3]*m[3][0] + m[0][3]*m[2][0]*m[3][2] - m[0][3]*m[2][2]*m[3][0]) / d
	r.M[1][2] = (m[0][0]*m[1][3]*m[3][2] - m[0][0]*m[1][2]*m[3][3] + m[0][2]*m[1][0]*m[3][3] - m[0][2]*m[1][3]*m[3][0] - m[0][3]*m[1][0]*m[3][2] + m[0][3]*m[1][2]*m[3][0]) / d
	r.M[1][3] = (m[0][0]*m[1][2]*m[2][3] - m[0][0]*m[1][3]*m[2][2] - m[0][2]*m[1][0]*m[2][3] + m[0][2]*m[1][3]*m[2][0] + m[0][3]*m[1][0]*m[2][2] - m[0][3]*m[1][2]*m[2][0]) / d
	r.M[2][0] = (m[1][0]*m[2][1]*m[3][3] - m[1][0]*m[2][3]*m[3][1] - m[1][1]*m[2][0]*m[3][3] + m[1][1]*m[2][3]*m[3][0] + m[1][3]*m[2][0]*m[3][1] - m[1][3]*m[2][1]*m[3][0]) / d
	r.M[2][1] = (m[0][0]*m[2][3]*m[3][1] - m[0][0]*m[2][1]*m[3][3] + m[0][1]*m[2][0]*m[3][3] - m[0][1]*m[2][3]*m[3][0] - m[0][3]*m[2][0]*m[3][1] + m[0][3]*m[2][1]*m[3][0]) / d
	r.M[2][2] = (m[0][0]*m[1][1]*m[3][3] - m[0][0]*m[1][3]*m[3][1] - m[0][1]*m[1][0]*m[3][3] + m[0][1]*m[1][3]*m[3][0] + m[0][3]*m[1][0]*m[3][1] - m[0][3]*m[1][1]*m[3][0]) / d
	r.M[2][3] = (m[0][0]*m[1][3]*m[2][1] - m[0][0]*m[1][1]*m[2][3] + m[0][1]*m[1][0]*m[2][3] - m[0][1]*m[1][3]*m[2][0] - m[0][3]*m[1][0]*m[2][1] + m[0][3]*m[1][1]*m[2][0]) / d
	r.M[3][0] = (m[1][0]*m[2][2]*m[3][1] - m[1][0]*m[2][1]*m[3][2] + m[1][1]*m[2][0]*m[3][2] - m[1][1]*m[2][2]*m[3][0] - m[1][2]*m[2][0]*m[3][1] + m[1][2]*m[2][1]*m[3][0]) / d
	r.M[3][1] = (m[0][0]*m[2][1]*m[3][2] - m[0][0]*m[2][2]*m[3][1] - m[0][1]*m[2][0]*m[3][2] + m[0][1]*m[2][2]*m[3][0] + m[0][2]*m[2][0]*m[3][1] - m[0][2]*m[2][1]*m[3][0]) / d
	r.M[3][2] = (m[0][0]*m[1][2]*m[3][1] - m[0][0]*m[1][1]*m[3][2] + m[0][1]*m[1][0]*m[3][2] - m[0][1]*m[1][2]*m[3][0] - m[0][2]*m[1][0]*m[3][1] + m[0][2]*m[1][1]*m[3][0]) / d
	r.M[3][3] = (m[0][0]*m[1][1]*m[2][2] - m[0][0]*m[1][2]*m[2][1] - m[0][1]*m[1][0]*m[2][2] + m[0][1]*m[1][2]*m[2][0] + m[0][2]*m[1][0]*m[2][1] - m[0][2]*m[1][1]*m[2][0]) / d
	return r, true
}
