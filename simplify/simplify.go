// Package simplify rewrites algebraic expressions into canonical form
// (automatic simplification). Simplification is total: states with no
// mathematical value collapse to alg.Undefined.
package simplify

import (
	"github.com/samber/lo"

	"zappem.net/pub/math/canon/alg"
)

// DefaultMaxDepth bounds the nesting depth of expressions that are
// simplified. Deeper expressions simplify to Undefined.
const DefaultMaxDepth = 256

// Simplify returns the canonical form of e.
func Simplify(e alg.Expr) alg.Expr {
	return SimplifyDepth(e, DefaultMaxDepth)
}

// SimplifyDepth is Simplify with an explicit nesting limit.
func SimplifyDepth(e alg.Expr, maxDepth int) alg.Expr {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	s := &simplifier{max: maxDepth}
	return s.auto(e)
}

type simplifier struct {
	depth, max int
}

// auto simplifies the operands of e bottom up and then e itself.
func (s *simplifier) auto(e alg.Expr) alg.Expr {
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > s.max {
		return alg.Undefined()
	}

	switch n := e.(type) {
	case *alg.Int, *alg.Real, *alg.Sym, *alg.Constant:
		return alg.WithParens(e, 0)
	case *alg.Fraction:
		return alg.NewRational(n.Num, n.Den)
	}

	args := lo.Map(alg.Operands(e), func(a alg.Expr, _ int) alg.Expr { return s.auto(a) })
	if undefined(args) {
		return alg.Undefined()
	}
	switch n := e.(type) {
	case *alg.Power:
		return power(args[0], args[1])
	case *alg.Product:
		return product(args)
	case *alg.Sum:
		return sum(args)
	case *alg.Quotient:
		return quotient(args[0], args[1])
	case *alg.Difference:
		return difference(args[0], args[1])
	case *alg.Factorial:
		return factorial(args[0])
	case *alg.Fn:
		return alg.NewFn(n.Name, args...)
	}
	return alg.Undefined()
}

func undefined(args []alg.Expr) bool {
	return lo.ContainsBy(args, alg.IsUndefined)
}

func quotient(u, v alg.Expr) alg.Expr {
	return product([]alg.Expr{u, power(v, alg.NewInt(-1))})
}

func difference(u, v alg.Expr) alg.Expr {
	return sum([]alg.Expr{u, product([]alg.Expr{alg.NewInt(-1), v})})
}

func factorial(u alg.Expr) alg.Expr {
	if n, ok := u.(*alg.Int); ok {
		if f, ok := alg.EvalFactorial(n.V); ok {
			return f
		}
	}
	return alg.NewFactorial(u)
}
