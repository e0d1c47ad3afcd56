package ln

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func marshalCfg(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := cbor.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestCameraCfgBuild(t *testing.T) {
	data := marshalCfg(t, map[string]interface{}{
		"eye": []float64{0, 0, 5}, "center": []float64{0, 0, 0}, "up": []float64{0, 1, 0},
		"width": 800.0, "height": 600.0, "fovy": 50.0, "near": 0.1, "far": 100.0, "step": 0.01,
	})
	var cfg CameraCfg
	if err := cbor.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	cam, step, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if cam.Eye != (Vector{0, 0, 5}) {
		t.Fatalf("got %+v", cam.Eye)
	}
	if !almostEqual(step, 0.01) {
		t.Fatalf("expected step 0.01, got %v", step)
	}
}

func TestCameraCfgBuildRejectsZeroStep(t *testing.T) {
	data := marshalCfg(t, map[string]interface{}{
		"eye": []float64{0, 0, 5}, "center": []float64{0, 0, 0}, "up": []float64{0, 1, 0},
		"width": 800.0, "height": 600.0, "fovy": 50.0, "near": 0.1, "far": 100.0, "step": 0.0,
	})
	var cfg CameraCfg
	if err := cbor.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	if _, _, err := cfg.Build(); err == nil {
		t.Fatal("expected an error for a zero step")
	}
}

func sphereNode(center []float64, radius float64, texture string, seed int64) map[string]interface{} {
	return map[string]interface{}{
		"Sphere": map[string]interface{}{
			"center": center, "radius": radius, "texture": texture, "seed": seed,
		},
	}
}

func TestShapeCfgBuildSphere(t *testing.T) {
	data := marshalCfg(t, sphereNode([]float64{1, 2, 3}, 4, "RandomDots", 7))
	var cfg ShapeCfg
	if err := cbor.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	shape, err := cfg.Build(Vector{}, Vector{0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	s, ok := shape.(*Sphere)
	if !ok {
		t.Fatalf("expected *Sphere, got %T", shape)
	}
	if s.Center != (Vector{1, 2, 3}) || s.Radius != 4 || s.Texture != RandomDots || s.Seed != 7 {
		t.Fatalf("got %+v", s)
	}
}

func TestShapeCfgBuildUnknownVariant(t *testing.T) {
	data := marshalCfg(t, map[string]interface{}{"Wat": map[string]interface{}{}})
	var cfg ShapeCfg
	if err := cbor.Unmarshal(data, &cfg); err == nil {
		t.Fatal("expected an error for an unknown shape variant")
	}
}

func TestShapeCfgBuildRejectsMultiKeyNode(t *testing.T) {
	data := marshalCfg(t, map[string]interface{}{
		"Cone":     map[string]interface{}{"radius": 1.0, "height": 2.0},
		"Cylinder": map[string]interface{}{"radius": 1.0, "z0": 0.0, "z1": 1.0},
	})
	var cfg ShapeCfg
	if err := cbor.Unmarshal(data, &cfg); err == nil {
		t.Fatal("expected an error for a shape node with more than one variant key")
	}
}

func TestShapeCfgBuildNestedDifference(t *testing.T) {
	data := marshalCfg(t, map[string]interface{}{
		"Difference": []interface{}{
			sphereNode([]float64{0, 0, 0}, 2, "LatLng", 0),
			sphereNode([]float64{0, 0, 0}, 1, "LatLng", 0),
		},
	})
	var cfg ShapeCfg
	if err := cbor.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	shape, err := cfg.Build(Vector{}, Vector{0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := shape.(*Difference); !ok {
		t.Fatalf("expected *Difference, got %T", shape)
	}
}

func TestShapeCfgBuildTransformation(t *testing.T) {
	data := marshalCfg(t, map[string]interface{}{
		"Transformation": map[string]interface{}{
			"shape": sphereNode([]float64{0, 0, 0}, 1, "LatLng", 0),
			"matrix": map[string]interface{}{
				"Translate": map[string]interface{}{"v": []float64{5, 0, 0}},
			},
		},
	})
	var cfg ShapeCfg
	if err := cbor.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	shape, err := cfg.Build(Vector{}, Vector{0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	ts, ok := shape.(*TransformedShape)
	if !ok {
		t.Fatalf("expected *TransformedShape, got %T", shape)
	}
	got := ts.Matrix.MulPosition(Vector{0, 0, 0})
	if !vecAlmostEqual(got, Vector{5, 0, 0}) {
		t.Fatalf("got %+v", got)
	}
}

func TestShapeCfgBuildOutlineUsesCameraEyeUp(t *testing.T) {
	data := marshalCfg(t, map[string]interface{}{
		"Outline": map[string]interface{}{
			"shape": sphereNode([]float64{0, 0, 0}, 1, "LatLng", 0),
		},
	})
	var cfg ShapeCfg
	if err := cbor.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	eye, up := Vector{0, 0, 5}, Vector{0, 1, 0}
	shape, err := cfg.Build(eye, up)
	if err != nil {
		t.Fatal(err)
	}
	o, ok := shape.(*Outline)
	if !ok {
		t.Fatalf("expected *Outline, got %T", shape)
	}
	if o.Eye != eye || o.Up != up {
		t.Fatalf("expected outline eye/up to come from the camera, got eye=%+v up=%+v", o.Eye, o.Up)
	}
}

func TestShapeCfgBuildMeshRejectsNonTriangle(t *testing.T) {
	data := marshalCfg(t, map[string]interface{}{
		"Mesh": []interface{}{
			sphereNode([]float64{0, 0, 0}, 1, "LatLng", 0),
		},
	})
	var cfg ShapeCfg
	if err := cbor.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Build(Vector{}, Vector{0, 0, 1}); err == nil {
		t.Fatal("expected an error for a mesh containing a non-Triangle node")
	}
}

func TestSceneCfgCBORRoundTrip(t *testing.T) {
	data := marshalCfg(t, map[string]interface{}{
		"camera": map[string]interface{}{
			"eye": []float64{0, 0, 5}, "center": []float64{0, 0, 0}, "up": []float64{0, 1, 0},
			"width": 400.0, "height": 300.0, "fovy": 40.0, "near": 0.1, "far": 50.0, "step": 0.05,
		},
		"shapes": []interface{}{
			map[string]interface{}{
				"Cube": map[string]interface{}{
					"min": []float64{-1, -1, -1}, "max": []float64{1, 1, 1},
					"texture": "Vanilla", "stripes": 0,
				},
			},
			sphereNode([]float64{3, 0, 0}, 1, "LatLng", 0),
		},
	})
	var cfg SceneCfg
	if err := cbor.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	if len(cfg.Shapes) != 2 {
		t.Fatalf("expected 2 shapes after round-trip, got %d", len(cfg.Shapes))
	}
	camera, step, err := cfg.Camera.Build()
	if err != nil {
		t.Fatalf("round-tripped camera should still build: %v", err)
	}
	if !almostEqual(step, 0.05) {
		t.Fatalf("got step %v", step)
	}
	for _, sc := range cfg.Shapes {
		if _, err := sc.Build(camera.Eye, camera.Up); err != nil {
			t.Fatalf("shape %q failed to build: %v", sc.variant, err)
		}
	}
}
