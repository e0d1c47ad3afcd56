package ln

import "testing"

func TestCompileExprBasicArithmetic(t *testing.T) {
	e, err := compileExpr("x*x + y*y - 4")
	if err != nil {
		t.Fatal(err)
	}
	v, err := e.Eval(2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(v, 0) {
		t.Fatalf("expected x^2+y^2-4 to be 0 at (2,0), got %v", v)
	}
}

func TestCompileExprFunctions(t *testing.T) {
	e, err := compileExpr("sin(x) + cos(y) + sqrt(4) - abs(-1)")
	if err != nil {
		t.Fatal(err)
	}
	v, err := e.Eval(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	// sin(0)=0, cos(0)=1, sqrt(4)=2, abs(-1)=1 -> 0+1+2-1=2
	if !almostEqual(v, 2) {
		t.Fatalf("got %v", v)
	}
}

func TestCompileExprMinMax(t *testing.T) {
	e, err := compileExpr("max(x, y) - min(x, y)")
	if err != nil {
		t.Fatal(err)
	}
	v, err := e.Eval(3, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(v, 4) {
		t.Fatalf("got %v", v)
	}
}

func TestCompileExprRejectsSyntaxError(t *testing.T) {
	if _, err := compileExpr("x + ("); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestCompileExprRemEuclidAlwaysNonNegative(t *testing.T) {
	e, err := compileExpr("rem_euclid(x, y)")
	if err != nil {
		t.Fatal(err)
	}
	v, err := e.Eval(-7, 3)
	if err != nil {
		t.Fatal(err)
	}
	if v < 0 {
		t.Fatalf("expected a non-negative remainder, got %v", v)
	}
}
