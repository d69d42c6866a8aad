package ast

import (
	"math/big"
	"testing"

	"zappem.net/pub/math/canon/lex"
)

func TestSource(t *testing.T) {
	x, y := &Variable{Name: "x"}, &Variable{Name: "y"}
	vs := []struct {
		e    Expr
		want string
	}{
		{&Variable{Name: "ab"}, "'ab'"},
		{&Variable{Name: "x_1"}, "x_1"},
		{&AlgebraicBinary{Left: x, Op: lex.Caret, Right: y}, "x^y"},
		{&AlgebraicBinary{Left: x, Op: lex.Rem, Right: y}, "x rem y"},
		{&AlgebraicUnary{Op: lex.Bang, Arg: &Group{Inner: x}}, "(x)!"},
		{&AlgebraicUnary{Op: lex.Minus, Arg: x}, "-x"},
		{&LogicalUnary{Op: lex.Not, Arg: x}, "not x"},
		{&FloatLit{Value: 0.25}, "0.25"},
		{&FloatLit{Text: "2.50", Value: 2.5}, "2.50"},
		{&RationalLit{N: big.NewInt(3), D: big.NewInt(4)}, "3|4"},
		{&Call{Callee: &Variable{Name: "f"}, Args: []Expr{x, y}}, "f(x, y)"},
		{&Tuple{Elements: []Expr{x}}, "(x)"},
		{&StringLit{Value: "hi"}, `"hi"`},
	}
	for i, v := range vs {
		if got := Source(v.e); got != v.want {
			t.Errorf("[%d] got=%q want=%q", i, got, v.want)
		}
	}
}

func TestStmtSource(t *testing.T) {
	x := &Variable{Name: "x"}
	vs := []struct {
		s    Stmt
		want string
	}{
		{&Let{Name: "x", Value: &IntegerLit{Value: big.NewInt(2)}}, "let x = 2"},
		{&Return{}, "return"},
		{&Print{X: x}, "print x"},
		{&Block{}, "{ }"},
		{&Block{Stmts: []Stmt{&ExprStmt{X: x}, &Block{}}}, "{ x; { } }"},
		{&While{Cond: x, Body: &Block{Stmts: []Stmt{&Print{X: x}}}}, "while x { print x; }"},
		{&Let{Name: "ab", Value: x}, "let 'ab' = x"},
		{&ExprStmt{X: &Assign{Name: "ab", Value: x}}, "'ab' = x"},
		{
			&FnDecl{Name: "area", Params: []string{"r", "rr"}, Body: &Block{Stmts: []Stmt{&Return{Value: x}}}},
			"fn 'area'(r, 'rr') { return x; }",
		},
	}
	for i, v := range vs {
		if got := StmtSource(v.s); got != v.want {
			t.Errorf("[%d] got=%q want=%q", i, got, v.want)
		}
	}
}
