package alg

import (
	"math/big"
)

// Ranks order the kinds of expression against each other: numbers come
// first and symbols last.
const (
	rankNumber = iota
	rankProduct
	rankPower
	rankSum
	rankFactorial
	rankFn
	rankSymbol
	rankOther
)

func rank(e Expr) int {
	switch e.(type) {
	case *Int, *Fraction, *Real:
		return rankNumber
	case *Product:
		return rankProduct
	case *Power:
		return rankPower
	case *Sum:
		return rankSum
	case *Factorial:
		return rankFactorial
	case *Fn:
		return rankFn
	case *Sym, *Constant:
		return rankSymbol
	}
	return rankOther
}

// Precedes reports whether u comes strictly before v in the canonical
// order of operands of a sum or product.
func Precedes(u, v Expr) bool {
	ru, rv := rank(u), rank(v)
	switch {
	case ru == rankOther || rv == rankOther:
		return u.String() < v.String()
	case ru == rv:
		return sameRank(u, v)
	case ru < rv:
		return lowerFirst(u, v)
	default:
		return !lowerFirst(v, u)
	}
}

func sameRank(u, v Expr) bool {
	switch x := u.(type) {
	case *Sum:
		return listPrecedes(x.Args, v.(*Sum).Args)
	case *Product:
		return listPrecedes(x.Args, v.(*Product).Args)
	case *Power:
		y := v.(*Power)
		if !Equal(x.Base, y.Base) {
			return Precedes(x.Base, y.Base)
		}
		return Precedes(x.Exp, y.Exp)
	case *Factorial:
		return Precedes(x.Arg, v.(*Factorial).Arg)
	case *Fn:
		y := v.(*Fn)
		if x.Name != y.Name {
			return x.Name < y.Name
		}
		return listPrecedes(x.Args, y.Args)
	case *Sym, *Constant:
		return name(u) < name(v)
	}
	return numberLess(u, v)
}

// lowerFirst compares u with a v of higher rank by reading v as an
// expression of u's kind.
func lowerFirst(u, v Expr) bool {
	switch x := u.(type) {
	case *Product:
		return listPrecedes(x.Args, []Expr{v})
	case *Power:
		return sameRank(u, &Power{Base: v, Exp: NewInt(1)})
	case *Sum:
		return listPrecedes(x.Args, []Expr{v})
	case *Factorial:
		return Precedes(x.Arg, v)
	case *Fn:
		if x.Name == name(v) {
			return false
		}
		return x.Name < name(v)
	}
	return true
}

// listPrecedes compares operand lists from the last operand inwards.
// When one list is a suffix of the other the shorter comes first.
func listPrecedes(us, vs []Expr) bool {
	i, j := len(us)-1, len(vs)-1
	for ; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if !Equal(us[i], vs[j]) {
			return Precedes(us[i], vs[j])
		}
	}
	return len(us) < len(vs)
}

func name(e Expr) string {
	switch n := e.(type) {
	case *Sym:
		return n.Name
	case *Constant:
		return n.Tag
	}
	return ""
}

// numberLess compares numbers by value. Exact numbers come before reals.
func numberLess(u, v Expr) bool {
	_, ru := u.(*Real)
	_, rv := v.(*Real)
	if ru != rv {
		return rv
	}
	a, b := toRat(u), toRat(v)
	if a == nil || b == nil {
		return u.String() < v.String()
	}
	return a.Cmp(b) < 0
}

func toRat(e Expr) *big.Rat {
	if r, ok := e.(*Real); ok {
		return new(big.Rat).SetFloat64(r.V)
	}
	n, d, ok := Rat(e)
	if !ok {
		return nil
	}
	return new(big.Rat).SetFrac(n, d)
}
