package alg

import (
	"fmt"
	"strconv"
	"strings"
)

// Printing precedence of each kind of expression, loosest first.
const (
	precSum = iota + 1
	precProduct
	precPower
	precPostfix
	precAtom
)

func prec(e Expr) int {
	switch n := e.(type) {
	case *Sum, *Difference:
		return precSum
	case *Product, *Quotient, *Fraction:
		return precProduct
	case *Int:
		if n.V.Sign() < 0 {
			return precSum
		}
	case *Real:
		if n.V < 0 {
			return precSum
		}
	case *Power:
		return precPower
	case *Factorial:
		return precPostfix
	}
	return precAtom
}

// operand prints e, parenthesized when it binds more loosely than
// min. Explicit paren levels are ignored here: String is a debugging
// and ordering form; see package convert for faithful printing.
func operand(e Expr, min int) string {
	if prec(e) < min {
		return "(" + e.String() + ")"
	}
	return e.String()
}

func join(args []Expr, sep string, min int) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = operand(a, min)
	}
	return strings.Join(parts, sep)
}

func (e *Int) String() string { return e.V.String() }

func (e *Real) String() string { return strconv.FormatFloat(e.V, 'G', -1, 64) }

func (e *Sym) String() string { return e.Name }

func (e *Constant) String() string { return e.Tag }

func (e *Fraction) String() string { return e.Num.String() + "/" + e.Den.String() }

func (e *Sum) String() string { return join(e.Args, " + ", precSum+1) }

func (e *Product) String() string { return join(e.Args, "*", precProduct+1) }

func (e *Power) String() string {
	return operand(e.Base, precPower+1) + "^" + operand(e.Exp, precPower)
}

func (e *Quotient) String() string {
	return operand(e.Dividend, precProduct) + "/" + operand(e.Divisor, precProduct+1)
}

func (e *Difference) String() string {
	return operand(e.Left, precSum) + " - " + operand(e.Right, precSum+1)
}

func (e *Factorial) String() string { return operand(e.Arg, precAtom) + "!" }

func (e *Fn) String() string {
	return fmt.Sprintf("%s(%s)", e.Name, join(e.Args, ", ", precSum))
}
