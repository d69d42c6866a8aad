package convert

import (
	"math"
	"math/big"

	"zappem.net/pub/math/canon/alg"
	"zappem.net/pub/math/canon/ast"
	"zappem.net/pub/math/canon/lex"
)

// Output precedence, loosest first.
const (
	precSum = iota + 1
	precProduct
	precUnary
	precPower
	precPostfix
	precAtom
)

// ToAST converts an algebraic expression to a syntax tree. Sums and
// products become left folded chains, negative terms are subtracted,
// negative exponents become quotients, and groups are added wherever
// precedence or the expression's paren level calls for them.
func ToAST(e alg.Expr) ast.Expr {
	x, _ := toAST(e)
	return x
}

// Source renders an algebraic expression as source text.
func Source(e alg.Expr) string {
	return ast.Source(ToAST(e))
}

// wrap groups x when its precedence p is looser than min.
func wrap(x ast.Expr, p, min int) ast.Expr {
	if p < min {
		return &ast.Group{Inner: x}
	}
	return x
}

func at(e alg.Expr, min int) ast.Expr {
	x, p := toAST(e)
	return wrap(x, p, min)
}

func bin(l ast.Expr, op lex.Kind, r ast.Expr) *ast.AlgebraicBinary {
	return &ast.AlgebraicBinary{Left: l, Op: op, Right: r}
}

func neg(x ast.Expr) ast.Expr {
	return &ast.AlgebraicUnary{Op: lex.Minus, Arg: x}
}

func intLit(n *big.Int) ast.Expr {
	return &ast.IntegerLit{Value: new(big.Int).Set(n)}
}

func toAST(e alg.Expr) (ast.Expr, int) {
	if n := e.ParenLevel(); n > 0 {
		x, _ := toAST(alg.WithParens(e, 0))
		for i := 0; i < n; i++ {
			x = &ast.Group{Inner: x}
		}
		return x, precAtom
	}

	switch n := e.(type) {
	case *alg.Int:
		if n.V.Sign() < 0 {
			return neg(intLit(new(big.Int).Neg(n.V))), precUnary
		}
		return intLit(n.V), precAtom
	case *alg.Real:
		if n.V < 0 {
			return neg(&ast.FloatLit{Value: -n.V}), precUnary
		}
		return &ast.FloatLit{Value: n.V}, precAtom
	case *alg.Sym:
		return &ast.Variable{Name: n.Name}, precAtom
	case *alg.Constant:
		if alg.IsUndefined(n) || n.Value == nil {
			return &ast.NumericConstant{Sym: "NaN", Value: math.NaN()}, precAtom
		}
		return &ast.NumericConstant{Sym: n.Tag, Value: *n.Value}, precAtom
	case *alg.Fraction:
		return quotient(nil, n)
	case *alg.Sum:
		return sum(n.Args)
	case *alg.Product:
		return quotient(n.Args, nil)
	case *alg.Power:
		if k, ok := n.Exp.(*alg.Int); ok && k.V.Sign() < 0 {
			return quotient([]alg.Expr{n}, nil)
		}
		return bin(at(n.Base, precPostfix), lex.Caret, at(n.Exp, precUnary)), precPower
	case *alg.Quotient:
		return bin(at(n.Dividend, precProduct), lex.Slash, at(n.Divisor, precUnary)), precProduct
	case *alg.Difference:
		return bin(at(n.Left, precSum), lex.Minus, at(n.Right, precProduct)), precSum
	case *alg.Factorial:
		return &ast.AlgebraicUnary{Op: lex.Bang, Arg: at(n.Arg, precPostfix)}, precPostfix
	case *alg.Fn:
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i], _ = toAST(a)
		}
		if k, ok := lex.NativeKind(n.Name); ok {
			return &ast.NativeCall{Name: n.Name, Kind: k, Args: args}, precAtom
		}
		return &ast.Call{Callee: &ast.Variable{Name: n.Name}, Args: args}, precAtom
	}
	return &ast.Variable{Name: e.String()}, precAtom
}

func sum(args []alg.Expr) (ast.Expr, int) {
	acc := at(args[0], precSum)
	for _, t := range args[1:] {
		op := lex.Plus
		if m, ok := negated(t); ok {
			op, t = lex.Minus, m
		}
		acc = bin(acc, op, at(t, precProduct))
	}
	return acc, precSum
}

// negated returns -t when t is visibly negative: a negative number or a
// product with a negative coefficient.
func negated(t alg.Expr) (alg.Expr, bool) {
	if t.ParenLevel() > 0 {
		return nil, false
	}
	if alg.IsNumeric(t) {
		if alg.Sign(t) < 0 {
			return alg.EvalProduct(alg.NewInt(-1), t), true
		}
		return nil, false
	}
	if r, ok := t.(*alg.Real); ok && r.V < 0 {
		return alg.NewReal(-r.V), true
	}
	p, ok := t.(*alg.Product)
	if !ok || len(p.Args) < 2 || alg.Sign(p.Args[0]) >= 0 {
		return nil, false
	}
	c := alg.EvalProduct(alg.NewInt(-1), p.Args[0])
	if alg.IsInt(c, 1) {
		if len(p.Args) == 2 {
			return p.Args[1], true
		}
		return alg.NewProduct(p.Args[1:]...), true
	}
	return alg.NewProduct(append([]alg.Expr{c}, p.Args[1:]...)...), true
}

// quotient renders the product of factors and frac as num / den. An
// exact coefficient is split over both sides and factors with negative
// integer exponents move to the denominator.
func quotient(factors []alg.Expr, frac *alg.Fraction) (ast.Expr, int) {
	one := big.NewInt(1)
	cn, cd := new(big.Int).Set(one), new(big.Int).Set(one)
	if frac != nil {
		cn.Set(frac.Num)
		cd.Set(frac.Den)
	}
	var num, den []ast.Expr
	for i, f := range factors {
		if i == 0 && f.ParenLevel() == 0 {
			if n, d, ok := alg.Rat(f); ok {
				cn.Set(n)
				cd.Set(d)
				continue
			}
		}
		if p, ok := f.(*alg.Power); ok && f.ParenLevel() == 0 {
			if k, ok := p.Exp.(*alg.Int); ok && k.V.Sign() < 0 {
				if k.V.Cmp(big.NewInt(-1)) == 0 {
					den = append(den, at(p.Base, precUnary+1))
				} else {
					den = append(den, at(alg.NewPower(p.Base, alg.BigInt(new(big.Int).Neg(k.V))), precUnary+1))
				}
				continue
			}
		}
		num = append(num, at(f, precUnary+1))
	}

	negative := cn.Sign() < 0
	cn.Abs(cn)
	if cn.Cmp(one) != 0 || len(num) == 0 {
		num = append([]ast.Expr{intLit(cn)}, num...)
	}
	if cd.Cmp(one) != 0 {
		den = append([]ast.Expr{intLit(cd)}, den...)
	}
	if negative {
		num[0] = neg(num[0])
	}

	x := chainOf(num, lex.Star)
	if len(den) == 0 {
		if len(num) == 1 && negative {
			return x, precUnary
		}
		return x, precProduct
	}
	d := chainOf(den, lex.Star)
	if len(den) > 1 {
		d = &ast.Group{Inner: d}
	}
	return bin(x, lex.Slash, d), precProduct
}

func chainOf(xs []ast.Expr, op lex.Kind) ast.Expr {
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = bin(acc, op, x)
	}
	return acc
}
