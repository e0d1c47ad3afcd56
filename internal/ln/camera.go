package ln

// Camera bundles the view and projection matrices needed to turn a 3D
// scene into 2D pixel-space paths.
type Camera struct {
	Eye, Center, Up         Vector
	Width, Height           Real
	Fovy, Near, Far         Real
}

// NewCamera validates and builds a Camera. width/height/fovy/near/far
// must all be positive and near < far, otherwise the camera is
// unbuildable and the caller's scene load should fail fast.
func NewCamera(eye, center, up Vector, width, height, fovy, near, far Real) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, configErrorf("camera width/height must be > 0, got %v/%v", width, height)
	}
	if fovy <= 0 || fovy >= 180 {
		return nil, configErrorf("camera fovy must be in (0,180), got %v", fovy)
	}
	if near <= 0 || far <= near {
		return nil, configErrorf("camera near/far must satisfy 0 < near < far, got %v/%v", near, far)
	}
	if !eye.IsFinite() || !center.IsFinite() || !up.IsFinite() {
		return nil, configErrorf("camera eye/center/up must be finite")
	}
	if eye.Dist(center) < 1e-12 {
		return nil, configErrorf("camera eye and center must differ")
	}
	return &Camera{Eye: eye, Center: center, Up: up, Width: width, Height: height, Fovy: fovy, Near: near, Far: far}, nil
}

// ViewMatrix returns the camera's look-at matrix.
func (c *Camera) ViewMatrix() Matrix { return LookAt(c.Eye, c.Center, c.Up) }

// ProjectionMatrix returns the camera's perspective matrix.
func (c *Camera) ProjectionMatrix() Matrix {
	aspect := c.Width / c.Height
	return Perspective(c.Fovy, aspect, c.Near, c.Far)
}

// ViewProjection returns the combined view-projection matrix. Points
// multiplied through MulPositionW by this matrix are in clip space: a
// w <= 0 means the point is behind the eye and must be clipped against
// the near plane before the perspective divide, not after.
func (c *Camera) ViewProjection() Matrix {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// NDCToPixel returns the matrix mapping the [-1,1]^2 NDC square to
// [0,width]x[0,height] pixel space, y-flipped so screen-down is
// positive (the SVG/PNG raster convention):
// (x,y) -> ((x+1)/2*w, (1-(y+1)/2)*h).
func (c *Camera) NDCToPixel() Matrix {
	return Matrix{M: [4][4]Real{
		{c.Width / 2, 0, 0, c.Width / 2},
		{0, -c.Height / 2, 0, c.Height / 2},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}
