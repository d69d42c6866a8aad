package alg

import (
	"math/big"
)

// Limits on exact evaluation. Larger powers and factorials are left
// unevaluated.
const (
	MaxExponent  = 4096
	MaxFactorial = 1000
)

// NewRational returns n/d in lowest terms: an *Int when the denominator
// divides out, a *Fraction with a positive denominator otherwise, and
// Undefined when d is zero.
func NewRational(n, d *big.Int) Expr {
	if d.Sign() == 0 {
		return Undefined()
	}
	num, den := new(big.Int).Set(n), new(big.Int).Set(d)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den); g.Cmp(big.NewInt(1)) > 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	if den.IsInt64() && den.Int64() == 1 {
		return &Int{V: num}
	}
	return &Fraction{Num: num, Den: den}
}

// NewFraction is NewRational for machine integers.
func NewFraction(n, d int64) Expr {
	return NewRational(big.NewInt(n), big.NewInt(d))
}

// IsNumeric reports whether e is an exact number: an *Int or a
// *Fraction.
func IsNumeric(e Expr) bool {
	switch e.(type) {
	case *Int, *Fraction:
		return true
	}
	return false
}

// Rat returns the numerator and denominator of an exact number.
func Rat(e Expr) (num, den *big.Int, ok bool) {
	switch n := e.(type) {
	case *Int:
		return n.V, big.NewInt(1), true
	case *Fraction:
		return n.Num, n.Den, true
	}
	return nil, nil, false
}

// IsInt reports whether e is the integer v.
func IsInt(e Expr, v int64) bool {
	n, ok := e.(*Int)
	return ok && n.V.IsInt64() && n.V.Int64() == v
}

// Sign returns the sign of an exact number, and 0 for anything else.
func Sign(e Expr) int {
	if n, _, ok := Rat(e); ok {
		return n.Sign()
	}
	return 0
}

// CmpNumeric compares two exact numbers.
func CmpNumeric(a, b Expr) int {
	an, ad, _ := Rat(a)
	bn, bd, _ := Rat(b)
	l := new(big.Int).Mul(an, bd)
	r := new(big.Int).Mul(bn, ad)
	return l.Cmp(r)
}

// binary applies a cross-multiplied rational operation. It yields
// Undefined unless both operands are exact numbers.
func binary(a, b Expr, op func(an, ad, bn, bd *big.Int) (n, d *big.Int)) Expr {
	an, ad, ok := Rat(a)
	if !ok {
		return Undefined()
	}
	bn, bd, ok := Rat(b)
	if !ok {
		return Undefined()
	}
	n, d := op(an, ad, bn, bd)
	return NewRational(n, d)
}

// EvalSum returns a+b.
func EvalSum(a, b Expr) Expr {
	return binary(a, b, func(an, ad, bn, bd *big.Int) (*big.Int, *big.Int) {
		n := new(big.Int).Mul(an, bd)
		n.Add(n, new(big.Int).Mul(bn, ad))
		return n, new(big.Int).Mul(ad, bd)
	})
}

// EvalDiff returns a-b.
func EvalDiff(a, b Expr) Expr {
	return binary(a, b, func(an, ad, bn, bd *big.Int) (*big.Int, *big.Int) {
		n := new(big.Int).Mul(an, bd)
		n.Sub(n, new(big.Int).Mul(bn, ad))
		return n, new(big.Int).Mul(ad, bd)
	})
}

// EvalProduct returns a*b.
func EvalProduct(a, b Expr) Expr {
	return binary(a, b, func(an, ad, bn, bd *big.Int) (*big.Int, *big.Int) {
		return new(big.Int).Mul(an, bn), new(big.Int).Mul(ad, bd)
	})
}

// EvalQuot returns a/b, Undefined when b is zero.
func EvalQuot(a, b Expr) Expr {
	return binary(a, b, func(an, ad, bn, bd *big.Int) (*big.Int, *big.Int) {
		return new(big.Int).Mul(an, bd), new(big.Int).Mul(ad, bn)
	})
}

// EvalPower returns base^n for an exact base. 0^0 and 0 to a negative
// power are Undefined. The result is not ok when |n| exceeds
// MaxExponent.
func EvalPower(base Expr, n *big.Int) (Expr, bool) {
	bn, bd, ok := Rat(base)
	if !ok {
		return Undefined(), true
	}
	if bn.Sign() == 0 {
		if n.Sign() > 0 {
			return NewInt(0), true
		}
		return Undefined(), true
	}
	if n.Sign() == 0 {
		return NewInt(1), true
	}
	k := new(big.Int).Abs(n)
	if k.Cmp(big.NewInt(MaxExponent)) > 0 {
		return nil, false
	}
	num := new(big.Int).Exp(bn, k, nil)
	den := new(big.Int).Exp(bd, k, nil)
	if n.Sign() < 0 {
		num, den = den, num
	}
	return NewRational(num, den), true
}

// EvalFactorial returns n! for an integer n. Negative n is Undefined.
// The result is not ok when n exceeds MaxFactorial.
func EvalFactorial(n *big.Int) (Expr, bool) {
	if n.Sign() < 0 {
		return Undefined(), true
	}
	if n.Cmp(big.NewInt(MaxFactorial)) > 0 {
		return nil, false
	}
	return &Int{V: new(big.Int).MulRange(1, n.Int64())}, true
}
