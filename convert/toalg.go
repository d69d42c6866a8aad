// Package convert translates between syntax trees and algebraic
// expressions.
package convert

import (
	"math"
	"math/big"

	"github.com/samber/lo"

	"zappem.net/pub/math/canon/alg"
	"zappem.net/pub/math/canon/ast"
	"zappem.net/pub/math/canon/diag"
	"zappem.net/pub/math/canon/lex"
)

// DefaultMaxDepth bounds the nesting depth of converted expressions.
const DefaultMaxDepth = 256

// bailout carries a conversion error up the stack to ToAlgebraicDepth.
type bailout struct {
	err *diag.Error
}

type converter struct {
	depth, max int
}

// ToAlgebraic converts an expression to algebraic form. Integer
// arithmetic is folded as it is converted and explicit grouping is kept
// as paren levels.
func ToAlgebraic(e ast.Expr) (alg.Expr, error) {
	return ToAlgebraicDepth(e, DefaultMaxDepth)
}

// ToAlgebraicDepth is ToAlgebraic with an explicit nesting limit.
func ToAlgebraicDepth(e ast.Expr, maxDepth int) (res alg.Expr, err error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	c := &converter{max: maxDepth}
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			res, err = nil, b.err
		}
	}()
	return c.expr(e), nil
}

func (c *converter) fail(n ast.Node, format string, args ...interface{}) {
	p := n.Position()
	panic(bailout{diag.Errorf(diag.Algebraic, diag.PhaseConverting, p.Line, p.Column, format, args...)})
}

func (c *converter) expr(e ast.Expr) alg.Expr {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.max {
		c.fail(e, "expression is nested more than %d levels deep", c.max)
	}

	switch n := e.(type) {
	case *ast.IntegerLit:
		return alg.BigInt(n.Value)
	case *ast.FloatLit:
		return alg.NewReal(n.Value)
	case *ast.RationalLit:
		return alg.NewRational(n.N, n.D)
	case *ast.BigNumberLit, *ast.BigRationalLit:
		c.fail(e, "big numbers are unsupported")
	case *ast.NumericConstant:
		if math.IsNaN(n.Value) {
			return alg.Undefined()
		}
		return alg.NewConstant(n.Sym, n.Value)
	case *ast.Variable:
		return alg.Symbol(n.Name)
	case *ast.Group:
		inner := c.expr(n.Inner)
		return alg.WithParens(inner, inner.ParenLevel()+1)
	case *ast.AlgebraicUnary:
		return c.unary(n)
	case *ast.AlgebraicBinary:
		return c.binary(n)
	case *ast.NativeCall:
		return alg.NewFn(n.Name, lo.Map(n.Args, func(a ast.Expr, _ int) alg.Expr { return c.expr(a) })...)
	case *ast.Tuple:
		c.fail(e, "tuples are not algebraic expressions")
	case *ast.BoolLit, *ast.StringLit, *ast.NilLit:
		c.fail(e, "%s is not an algebraic expression", ast.Source(e))
	case *ast.Assign:
		c.fail(e, "assignment to %s is not an algebraic expression", n.Name)
	case *ast.Call:
		c.fail(e, "calls to user defined functions are unsupported")
	case *ast.Relational, *ast.LogicalBinary, *ast.LogicalUnary:
		c.fail(e, "comparisons and logic are not algebraic expressions")
	default:
		c.fail(e, "unsupported expression %s", ast.Source(e))
	}
	return nil
}

func (c *converter) unary(n *ast.AlgebraicUnary) alg.Expr {
	a := c.expr(n.Arg)
	switch n.Op {
	case lex.Plus:
		return a
	case lex.Minus:
		if alg.IsNumeric(a) {
			return alg.EvalProduct(alg.NewInt(-1), a)
		}
		return alg.NewProduct(alg.NewInt(-1), a)
	}
	if i, ok := a.(*alg.Int); ok {
		if f, ok := alg.EvalFactorial(i.V); ok {
			return f
		}
	}
	return alg.NewFactorial(a)
}

func (c *converter) binary(n *ast.AlgebraicBinary) alg.Expr {
	l, r := c.expr(n.Left), c.expr(n.Right)
	switch n.Op {
	case lex.Rem, lex.Mod, lex.Div:
		return c.integerOp(n, l, r)
	}
	if alg.IsNumeric(l) && alg.IsNumeric(r) {
		switch n.Op {
		case lex.Plus:
			return alg.EvalSum(l, r)
		case lex.Minus:
			return alg.EvalDiff(l, r)
		case lex.Star:
			return alg.EvalProduct(l, r)
		case lex.Slash:
			return alg.EvalQuot(l, r)
		case lex.Caret:
			if k, ok := r.(*alg.Int); ok {
				if p, ok := alg.EvalPower(l, k.V); ok {
					return p
				}
			}
		}
	}
	switch n.Op {
	case lex.Plus:
		return alg.NewSum(chain(l, r, isSum)...)
	case lex.Minus:
		return alg.NewDifference(l, r)
	case lex.Star:
		return alg.NewProduct(chain(l, r, isProduct)...)
	case lex.Slash:
		return alg.NewQuotient(l, r)
	case lex.Caret:
		return alg.NewPower(l, r)
	}
	c.fail(n, "unsupported operator %s", n.Op)
	return nil
}

// integerOp folds rem, mod and div, which are only defined on integers.
// mod and div are Euclidean: the remainder is never negative.
func (c *converter) integerOp(n *ast.AlgebraicBinary, l, r alg.Expr) alg.Expr {
	a, aok := l.(*alg.Int)
	b, bok := r.(*alg.Int)
	if !aok || !bok {
		c.fail(n, "%s needs integer operands", n.Op)
	}
	if b.V.Sign() == 0 {
		return alg.Undefined()
	}
	v := new(big.Int)
	switch n.Op {
	case lex.Rem:
		v.Rem(a.V, b.V)
	case lex.Mod:
		v.Mod(a.V, b.V)
	default:
		v.Div(a.V, b.V)
	}
	return &alg.Int{V: v}
}

func isSum(e alg.Expr) ([]alg.Expr, bool) {
	s, ok := e.(*alg.Sum)
	if !ok {
		return nil, false
	}
	return s.Args, true
}

func isProduct(e alg.Expr) ([]alg.Expr, bool) {
	p, ok := e.(*alg.Product)
	if !ok {
		return nil, false
	}
	return p.Args, true
}

// chain returns the operands of l op r, splicing in the operands of
// either side that is an ungrouped chain of the same operator.
func chain(l, r alg.Expr, same func(alg.Expr) ([]alg.Expr, bool)) []alg.Expr {
	var args []alg.Expr
	args = append(args, flat(l, same)...)
	return append(args, flat(r, same)...)
}

func flat(e alg.Expr, same func(alg.Expr) ([]alg.Expr, bool)) []alg.Expr {
	if e.ParenLevel() == 0 {
		if args, ok := same(e); ok {
			return args
		}
	}
	return []alg.Expr{e}
}
