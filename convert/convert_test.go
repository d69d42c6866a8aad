package convert

import (
	"errors"
	"strings"
	"testing"

	"zappem.net/pub/math/canon/alg"
	"zappem.net/pub/math/canon/ast"
	"zappem.net/pub/math/canon/diag"
	"zappem.net/pub/math/canon/lex"
	"zappem.net/pub/math/canon/parse"
)

func syntax(t *testing.T, src string) ast.Expr {
	t.Helper()
	toks, err := lex.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	x, err := parse.ParseExpr(toks)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return x
}

func algebra(t *testing.T, src string) alg.Expr {
	t.Helper()
	e, err := ToAlgebraic(syntax(t, src))
	if err != nil {
		t.Fatalf("convert %q: %v", src, err)
	}
	return e
}

func TestSourceRoundTrip(t *testing.T) {
	vs := []string{
		"x + y",
		"(x + y) * z",
		"x^2",
		"-x",
		"sin(x)",
		"x!",
		"x / y",
		"x - y",
		"2 * x",
		"'ab' + c",
		"5 / 6",
		"NaN",
		"pi * r",
		"x^y^z",
		"(x + 1)^2",
		"a - (b - c)",
		"x / (y * z)",
		"2.5 * x",
		"max(x, y)",
	}
	for i, src := range vs {
		if got := Source(algebra(t, src)); got != src {
			t.Errorf("[%d] got=%q want=%q", i, got, src)
		}
	}
}

func TestFolding(t *testing.T) {
	vs := []struct {
		src, want string
	}{
		{src: "2 + 3", want: "5"},
		{src: "2 * 3 x", want: "6 * x"},
		{src: "1/2 + 1/2", want: "1"},
		{src: "2^10", want: "1024"},
		{src: "2^-2", want: "1 / 4"},
		{src: "3!", want: "6"},
		{src: "-(2 + 3)", want: "-5"},
		{src: "7 rem 3", want: "1"},
		{src: "-7 rem 2", want: "-1"},
		{src: "-7 mod 3", want: "2"},
		{src: "-7 div 2", want: "-4"},
		{src: "7 div 2", want: "3"},
		{src: "5 mod 0", want: "NaN"},
		{src: "1/0", want: "NaN"},
		{src: "0^0", want: "NaN"},
	}
	for i, v := range vs {
		if got := Source(algebra(t, v.src)); got != v.want {
			t.Errorf("[%d] %q got=%q want=%q", i, v.src, got, v.want)
		}
	}
}

func TestStructure(t *testing.T) {
	if e := algebra(t, "((x))"); e.ParenLevel() != 2 {
		t.Errorf("got paren level %d, want 2", e.ParenLevel())
	}
	vs := []struct {
		src  string
		args int
	}{
		{src: "x + y + z", args: 3},
		{src: "(x + y) + z", args: 2},
		{src: "x + (y + z)", args: 2},
		{src: "x y z", args: 3},
		{src: "(x y) z", args: 2},
	}
	for i, v := range vs {
		if got := len(alg.Operands(algebra(t, v.src))); got != v.args {
			t.Errorf("[%d] %q got %d operands, want %d", i, v.src, got, v.args)
		}
	}
	if _, ok := algebra(t, "x - y").(*alg.Difference); !ok {
		t.Error("x - y is not a difference")
	}
	if _, ok := algebra(t, "x / y").(*alg.Quotient); !ok {
		t.Error("x / y is not a quotient")
	}
}

func TestErrors(t *testing.T) {
	vs := []struct {
		src  string
		col  int
		want string
	}{
		{src: "(1, 2)", col: 1, want: "tuples are not algebraic"},
		{src: "true", col: 1, want: "true is not an algebraic expression"},
		{src: `"s"`, col: 1, want: "is not an algebraic expression"},
		{src: "nil", col: 1, want: "nil is not an algebraic expression"},
		{src: "f(x)", col: 2, want: "user defined functions"},
		{src: "a < b", col: 3, want: "comparisons and logic"},
		{src: "not a", col: 1, want: "comparisons and logic"},
		{src: "#123", col: 1, want: "big numbers"},
		{src: "1 + #5", col: 5, want: "big numbers"},
		{src: "x = 2", col: 1, want: "assignment to x"},
		{src: "2.5 rem 2", col: 5, want: "rem needs integer operands"},
		{src: "x mod 2", col: 3, want: "mod needs integer operands"},
	}
	for i, v := range vs {
		e, err := ToAlgebraic(syntax(t, v.src))
		if err == nil {
			t.Errorf("[%d] %q gave %v, want an error", i, v.src, e)
			continue
		}
		if !errors.Is(err, diag.ErrAlgebraic) {
			t.Errorf("[%d] %q: got=%v, want an algebraic error", i, v.src, err)
		}
		var d *diag.Error
		if !errors.As(err, &d) {
			t.Errorf("[%d] %q: %T is not a *diag.Error", i, v.src, err)
			continue
		}
		if d.Phase != diag.PhaseConverting || d.Column != v.col {
			t.Errorf("[%d] %q: got phase=%q col=%d want col=%d", i, v.src, d.Phase, d.Column, v.col)
		}
		if !strings.Contains(d.Msg, v.want) {
			t.Errorf("[%d] got=%q want=%q", i, d.Msg, v.want)
		}
	}
}

func TestDepth(t *testing.T) {
	x := syntax(t, strings.Repeat("(", 50)+"x"+strings.Repeat(")", 50))
	if _, err := ToAlgebraicDepth(x, 10); !errors.Is(err, diag.ErrAlgebraic) {
		t.Errorf("got=%v, want a nesting error", err)
	}
	if _, err := ToAlgebraicDepth(x, 100); err != nil {
		t.Errorf("ToAlgebraicDepth(100) failed: %v", err)
	}
}

func TestToAST(t *testing.T) {
	x, y, z := alg.Symbol("x"), alg.Symbol("y"), alg.Symbol("z")
	one, two := alg.NewInt(1), alg.NewInt(2)
	vs := []struct {
		e    alg.Expr
		want string
	}{
		{alg.NewSum(x, alg.NewInt(-3)), "x - 3"},
		{alg.NewProduct(alg.NewInt(-1), x), "-x"},
		{alg.NewProduct(alg.NewFraction(-1, 2), x), "-x / 2"},
		{alg.NewPower(x, alg.NewInt(-2)), "1 / x^2"},
		{alg.NewProduct(x, alg.NewPower(y, alg.NewInt(-1)), alg.NewPower(z, alg.NewInt(-1))), "x / (y * z)"},
		{alg.NewPower(alg.NewSum(x, one), two), "(x + 1)^2"},
		{alg.NewPower(x, alg.NewFraction(1, 2)), "x^(1 / 2)"},
		{alg.NewFactorial(alg.NewSum(x, one)), "(x + 1)!"},
		{alg.NewSum(alg.NewProduct(alg.NewInt(-1), x), y), "-x + y"},
		{alg.NewSum(x, alg.NewProduct(alg.NewInt(-2), y, z)), "x - 2 * y * z"},
		{alg.NewPower(alg.NewInt(-2), x), "(-2)^x"},
		{alg.NewPower(alg.NewProduct(two, x), y), "(2 * x)^y"},
		{alg.NewProduct(alg.NewSum(x, one), alg.NewSum(y, one)), "(x + 1) * (y + 1)"},
		{alg.NewFn("f", x), "f(x)"},
		{alg.NewFn("sin", alg.NewSum(x, y)), "sin(x + y)"},
		{alg.WithParens(x, 1), "(x)"},
		{alg.Undefined(), "NaN"},
		{alg.NewReal(-0.5), "-0.5"},
		{alg.NewFraction(7, 3), "7 / 3"},
	}
	for i, v := range vs {
		if got := Source(v.e); got != v.want {
			t.Errorf("[%d] %v: got=%q want=%q", i, v.e, got, v.want)
		}
	}
}
