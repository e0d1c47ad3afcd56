package ln

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// vecCfg is a CBOR-friendly 3-vector: a plain 3-element array, matching
// the [f64;3] fields in the wire format.
type vecCfg [3]Real

func (v vecCfg) vector() Vector { return Vector{v[0], v[1], v[2]} }

// CameraCfg is the wire format for a scene file's top-level "camera"
// mapping: {eye, center, up, width, height, fovy, near, far, step}.
type CameraCfg struct {
	Eye    vecCfg `cbor:"eye"`
	Center vecCfg `cbor:"center"`
	Up     vecCfg `cbor:"up"`
	Width  Real   `cbor:"width"`
	Height Real   `cbor:"height"`
	Fovy   Real   `cbor:"fovy"`
	Near   Real   `cbor:"near"`
	Far    Real   `cbor:"far"`
	Step   Real   `cbor:"step"`
}

// Build validates and constructs the runtime Camera plus the chop step
// the visibility sampler resamples paths to (no defaults — a scene
// file must be explicit about every field).
func (c CameraCfg) Build() (*Camera, Real, error) {
	cam, err := NewCamera(c.Eye.vector(), c.Center.vector(), c.Up.vector(), c.Width, c.Height, c.Fovy, c.Near, c.Far)
	if err != nil {
		return nil, 0, err
	}
	if c.Step <= 0 {
		return nil, 0, configErrorf("camera step must be > 0, got %v", c.Step)
	}
	return cam, c.Step, nil
}

// cubeFields, sphereFields, ... are the per-variant field sets of
// ShapeCfg's wire format, named and cased exactly per spec.md's shape
// node table.
type cubeFields struct {
	Min     vecCfg `cbor:"min"`
	Max     vecCfg `cbor:"max"`
	Texture string `cbor:"texture"`
	Stripes int    `cbor:"stripes"`
}

type sphereFields struct {
	Center  vecCfg `cbor:"center"`
	Radius  Real   `cbor:"radius"`
	Texture string `cbor:"texture"`
	Seed    int64  `cbor:"seed"`
}

type cylinderFields struct {
	Radius Real `cbor:"radius"`
	Z0     Real `cbor:"z0"`
	Z1     Real `cbor:"z1"`
}

type coneFields struct {
	Radius Real `cbor:"radius"`
	Height Real `cbor:"height"`
}

type triangleFields struct {
	V1 vecCfg `cbor:"v1"`
	V2 vecCfg `cbor:"v2"`
	V3 vecCfg `cbor:"v3"`
}

type functionFields struct {
	Func      string    `cbor:"func"`
	Bbox      [2]vecCfg `cbor:"bbox"`
	Direction string    `cbor:"direction"`
	Texture   string    `cbor:"texture"`
}

type outlineFields struct {
	Shape ShapeCfg `cbor:"shape"`
}

type transformationFields struct {
	Shape  ShapeCfg  `cbor:"shape"`
	Matrix MatrixCfg `cbor:"matrix"`
}

// ShapeCfg is the wire format for one scene shape node: a single-key
// CBOR mapping whose key names the variant (Cube, Sphere, Cylinder,
// Cone, Triangle, Mesh, Function, Outline, Intersection, Difference,
// Transformation) and whose value holds that variant's fields, per
// spec.md's wire format table. Its UnmarshalCBOR implements that
// single-key-per-variant decode; only the field matching variant is
// ever populated.
type ShapeCfg struct {
	variant        string
	cube           *cubeFields
	sphere         *sphereFields
	cylinder       *cylinderFields
	cone           *coneFields
	triangle       *triangleFields
	mesh           []ShapeCfg
	function       *functionFields
	outline        *outlineFields
	intersection   []ShapeCfg
	difference     []ShapeCfg
	transformation *transformationFields
}

// UnmarshalCBOR decodes a shape node from its single-key mapping form.
// Mesh, Intersection, and Difference are tuple variants whose value is
// directly an array of nodes; every other variant's value is a mapping
// of named fields.
func (s *ShapeCfg) UnmarshalCBOR(data []byte) error {
	var raw map[string]cbor.RawMessage
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("ln: shape node must have exactly one variant key, got %d", len(raw))
	}
	for key, val := range raw {
		s.variant = key
		switch key {
		case "Cube":
			var f cubeFields
			if err := cbor.Unmarshal(val, &f); err != nil {
				return err
			}
			s.cube = &f
		case "Sphere":
			var f sphereFields
			if err := cbor.Unmarshal(val, &f); err != nil {
				return err
			}
			s.sphere = &f
		case "Cylinder":
			var f cylinderFields
			if err := cbor.Unmarshal(val, &f); err != nil {
				return err
			}
			s.cylinder = &f
		case "Cone":
			var f coneFields
			if err := cbor.Unmarshal(val, &f); err != nil {
				return err
			}
			s.cone = &f
		case "Triangle":
			var f triangleFields
			if err := cbor.Unmarshal(val, &f); err != nil {
				return err
			}
			s.triangle = &f
		case "Mesh":
			var children []ShapeCfg
			if err := cbor.Unmarshal(val, &children); err != nil {
				return err
			}
			s.mesh = children
		case "Function":
			var f functionFields
			if err := cbor.Unmarshal(val, &f); err != nil {
				return err
			}
			s.function = &f
		case "Outline":
			var f outlineFields
			if err := cbor.Unmarshal(val, &f); err != nil {
				return err
			}
			s.outline = &f
		case "Intersection":
			var children []ShapeCfg
			if err := cbor.Unmarshal(val, &children); err != nil {
				return err
			}
			s.intersection = children
		case "Difference":
			var children []ShapeCfg
			if err := cbor.Unmarshal(val, &children); err != nil {
				return err
			}
			s.difference = children
		case "Transformation":
			var f transformationFields
			if err := cbor.Unmarshal(val, &f); err != nil {
				return err
			}
			s.transformation = &f
		default:
			return fmt.Errorf("ln: unknown scene shape variant %q", key)
		}
	}
	return nil
}

// MatrixCfg is the wire format for a Transformation node's "matrix"
// field: a single-key mapping, {Translate:{v}} | {Scale:{v}} |
// {Rotate:{v,a}}. Angle a is in radians, matching the ln library's own
// Matrix rotate convention.
type MatrixCfg struct {
	variant string
	v       vecCfg
	a       Real
}

func (m *MatrixCfg) UnmarshalCBOR(data []byte) error {
	var raw map[string]cbor.RawMessage
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("ln: matrix node must have exactly one variant key, got %d", len(raw))
	}
	for key, val := range raw {
		m.variant = key
		switch key {
		case "Translate", "Scale":
			var f struct {
				V vecCfg `cbor:"v"`
			}
			if err := cbor.Unmarshal(val, &f); err != nil {
				return err
			}
			m.v = f.V
		case "Rotate":
			var f struct {
				V vecCfg `cbor:"v"`
				A Real   `cbor:"a"`
			}
			if err := cbor.Unmarshal(val, &f); err != nil {
				return err
			}
			m.v = f.V
			m.a = f.A
		default:
			return fmt.Errorf("ln: unknown matrix variant %q", key)
		}
	}
	return nil
}

func (m MatrixCfg) toMatrix() Matrix {
	switch m.variant {
	case "Translate":
		return Translate(m.v.vector())
	case "Scale":
		return Scale(m.v.vector())
	case "Rotate":
		return Rotate(m.v.vector(), m.a)
	default:
		return Identity()
	}
}

// Build recursively validates and constructs the runtime Shape tree
// rooted at s. eye and up come from the scene's camera, not the shape
// payload: an Outline node's silhouette is camera-dependent, so those
// two values are threaded down through every composite rather than
// stored on the wire.
func (s ShapeCfg) Build(eye, up Vector) (Shape, error) {
	switch s.variant {
	case "Cube":
		f := s.cube
		cube, err := NewCube(f.Min.vector(), f.Max.vector())
		if err != nil {
			return nil, err
		}
		texture, err := parseCubeTexture(f.Texture)
		if err != nil {
			return nil, err
		}
		cube.Texture = texture
		if f.Stripes > 0 {
			cube.StripeN = f.Stripes
		}
		return cube, nil

	case "Sphere":
		f := s.sphere
		texture, err := parseSphereTexture(f.Texture)
		if err != nil {
			return nil, err
		}
		sphere, err := NewSphere(f.Center.vector(), f.Radius)
		if err != nil {
			return nil, err
		}
		sphere.Texture = texture
		sphere.Seed = f.Seed
		return sphere, nil

	case "Cylinder":
		f := s.cylinder
		return NewCylinder(f.Radius, f.Z0, f.Z1)

	case "Cone":
		f := s.cone
		return NewCone(f.Radius, f.Height)

	case "Triangle":
		f := s.triangle
		return NewTriangle(f.V1.vector(), f.V2.vector(), f.V3.vector())

	case "Mesh":
		tris := make([]*Triangle, 0, len(s.mesh))
		for _, tc := range s.mesh {
			if tc.variant != "Triangle" {
				return nil, configErrorf("mesh can only contain Triangle nodes, got %q", tc.variant)
			}
			t, err := NewTriangle(tc.triangle.V1.vector(), tc.triangle.V2.vector(), tc.triangle.V3.vector())
			if err != nil {
				return nil, err
			}
			tris = append(tris, t)
		}
		return NewMesh(tris)

	case "Function":
		f := s.function
		dir, err := parseDirection(f.Direction)
		if err != nil {
			return nil, err
		}
		texture, err := parseFunctionTexture(f.Texture)
		if err != nil {
			return nil, err
		}
		box := Box{Min: f.Bbox[0].vector(), Max: f.Bbox[1].vector()}
		return NewFunction(box, f.Func, dir, texture)

	case "Outline":
		inner, err := s.outline.Shape.Build(eye, up)
		if err != nil {
			return nil, err
		}
		return NewOutline(inner, eye, up)

	case "Intersection":
		children, err := buildChildren(s.intersection, eye, up)
		if err != nil {
			return nil, err
		}
		return NewIntersection(children)

	case "Difference":
		children, err := buildChildren(s.difference, eye, up)
		if err != nil {
			return nil, err
		}
		return NewDifference(children)

	case "Transformation":
		inner, err := s.transformation.Shape.Build(eye, up)
		if err != nil {
			return nil, err
		}
		return NewTransformedShape(inner, s.transformation.Matrix.toMatrix())

	default:
		return nil, configErrorf("unknown or missing scene shape variant %q", s.variant)
	}
}

func buildChildren(cfgs []ShapeCfg, eye, up Vector) ([]Shape, error) {
	children := make([]Shape, 0, len(cfgs))
	for _, c := range cfgs {
		shape, err := c.Build(eye, up)
		if err != nil {
			return nil, err
		}
		children = append(children, shape)
	}
	return children, nil
}

func parseCubeTexture(s string) (CubeTexture, error) {
	switch s {
	case "Vanilla":
		return Vanilla, nil
	case "Stripes":
		return Stripes, nil
	default:
		return 0, configErrorf("unknown cube texture %q", s)
	}
}

func parseSphereTexture(s string) (SphereTexture, error) {
	switch s {
	case "LatLng":
		return LatLng, nil
	case "RandomEquators":
		return RandomEquators, nil
	case "RandomDots":
		return RandomDots, nil
	case "RandomCircles":
		return RandomCircles, nil
	default:
		return 0, configErrorf("unknown sphere texture %q", s)
	}
}

func parseFunctionTexture(s string) (FunctionTexture, error) {
	switch s {
	case "Grid":
		return Grid, nil
	case "Swirl":
		return Swirl, nil
	case "Spiral":
		return Spiral, nil
	default:
		return 0, configErrorf("unknown function texture %q", s)
	}
}

func parseDirection(s string) (Direction, error) {
	switch s {
	case "Above":
		return Above, nil
	case "Below":
		return Below, nil
	default:
		return 0, configErrorf("unknown function direction %q", s)
	}
}

// SceneCfg is the top-level wire format for a complete scene file: one
// camera and a flat list of top-level shape nodes.
type SceneCfg struct {
	Camera CameraCfg  `cbor:"camera"`
	Shapes []ShapeCfg `cbor:"shapes"`
}

// LoadScene reads and decodes a CBOR scene file from path, building
// and compiling the runtime Scene and Camera it describes, and
// returning the camera payload's chop step for the caller to pass to
// Render.
func LoadScene(path string) (*Scene, *Camera, Real, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, 0, &IoError{Msg: "reading scene file " + path, Err: err}
	}
	var cfg SceneCfg
	if err := cbor.Unmarshal(data, &cfg); err != nil {
		return nil, nil, 0, &IoError{Msg: "decoding scene file " + path, Err: err}
	}
	camera, step, err := cfg.Camera.Build()
	if err != nil {
		return nil, nil, 0, err
	}
	scene := NewScene()
	for _, sc := range cfg.Shapes {
		shape, err := sc.Build(camera.Eye, camera.Up)
		if err != nil {
			return nil, nil, 0, err
		}
		scene.Add(shape)
	}
	scene.Compile()
	DebugLog("LoadScene: %s: %d top-level shapes", path, len(cfg.Shapes))
	return scene, camera, step, nil
}
