package simplify

import (
	"zappem.net/pub/math/canon/alg"
)

// power simplifies v^w for simplified v and w.
func power(v, w alg.Expr) alg.Expr {
	if alg.IsUndefined(v) || alg.IsUndefined(w) {
		return alg.Undefined()
	}
	if alg.IsInt(v, 0) {
		if alg.IsNumeric(w) && alg.Sign(w) > 0 {
			return alg.NewInt(0)
		}
		return alg.Undefined()
	}
	if alg.IsInt(v, 1) {
		return alg.NewInt(1)
	}
	if n, ok := w.(*alg.Int); ok {
		return integerPower(v, n)
	}
	return alg.NewPower(v, w)
}

// integerPower simplifies v^n for an integer n.
func integerPower(v alg.Expr, n *alg.Int) alg.Expr {
	if alg.IsNumeric(v) {
		if p, ok := alg.EvalPower(v, n.V); ok {
			return p
		}
		return alg.NewPower(v, n)
	}
	switch {
	case n.V.Sign() == 0:
		return alg.NewInt(1)
	case alg.IsInt(n, 1):
		return v
	}
	switch b := v.(type) {
	case *alg.Power:
		p := product([]alg.Expr{b.Exp, n})
		if k, ok := p.(*alg.Int); ok {
			return integerPower(b.Base, k)
		}
		return alg.NewPower(b.Base, p)
	case *alg.Product:
		args := make([]alg.Expr, len(b.Args))
		for i, a := range b.Args {
			args[i] = integerPower(a, n)
		}
		return product(args)
	}
	return alg.NewPower(v, n)
}
