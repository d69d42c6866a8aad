// Package alg defines algebraic expressions: the canonical symbolic
// form that the simplifier works on.
package alg

import (
	"math/big"

	"github.com/samber/lo"
)

// Expr is an algebraic expression. The concrete types are the atoms
// *Int, *Real, *Sym and *Constant and the compounds *Sum, *Product,
// *Power, *Quotient, *Difference, *Factorial, *Fraction and *Fn.
//
// Expressions are treated as values: operations build new nodes and
// never modify their operands.
type Expr interface {
	// ParenLevel counts the explicit parentheses the expression was
	// written inside. It only affects printing.
	ParenLevel() int
	String() string
	withParen(n int) Expr
}

type meta struct {
	paren int
}

func (m meta) ParenLevel() int { return m.paren }

// Int is an exact integer.
type Int struct {
	meta
	V *big.Int
}

// Real is a floating point literal. Reals are not folded.
type Real struct {
	meta
	V float64
}

// Sym is a symbol (variable).
type Sym struct {
	meta
	Name string
}

// Constant is a named constant such as pi. A nil Value marks a
// constant with no numeric value, such as Undefined.
type Constant struct {
	meta
	Tag   string
	Value *float64
}

// Sum is an n-ary sum.
type Sum struct {
	meta
	Args []Expr
}

// Product is an n-ary product.
type Product struct {
	meta
	Args []Expr
}

// Power is Base^Exp.
type Power struct {
	meta
	Base, Exp Expr
}

// Quotient is Dividend/Divisor.
type Quotient struct {
	meta
	Dividend, Divisor Expr
}

// Difference is Left-Right.
type Difference struct {
	meta
	Left, Right Expr
}

// Factorial is Arg!.
type Factorial struct {
	meta
	Arg Expr
}

// Fraction is an exact rational Num/Den. Values built with NewRational
// are in lowest terms with a positive denominator greater than one.
type Fraction struct {
	meta
	Num, Den *big.Int
}

// Fn is the application of a named function.
type Fn struct {
	meta
	Name string
	Args []Expr
}

// UndefinedTag is the Constant tag of the undefined value.
const UndefinedTag = "undefined"

// NewInt returns the integer n.
func NewInt(n int64) *Int {
	return &Int{V: big.NewInt(n)}
}

// BigInt returns a copy of n as an integer expression.
func BigInt(n *big.Int) *Int {
	return &Int{V: new(big.Int).Set(n)}
}

// NewReal returns a real literal.
func NewReal(v float64) *Real {
	return &Real{V: v}
}

// Symbol returns the symbol called name.
func Symbol(name string) *Sym {
	return &Sym{Name: name}
}

// NewConstant returns the constant tag with value v.
func NewConstant(tag string, v float64) *Constant {
	return &Constant{Tag: tag, Value: &v}
}

// Undefined returns the undefined value. It absorbs every operation
// it takes part in.
func Undefined() *Constant {
	return &Constant{Tag: UndefinedTag}
}

// IsUndefined reports whether e is the undefined value.
func IsUndefined(e Expr) bool {
	c, ok := e.(*Constant)
	return ok && c.Tag == UndefinedTag && c.Value == nil
}

// NewSum returns the sum of args.
func NewSum(args ...Expr) *Sum {
	return &Sum{Args: args}
}

// NewProduct returns the product of args.
func NewProduct(args ...Expr) *Product {
	return &Product{Args: args}
}

// NewPower returns base^exp.
func NewPower(base, exp Expr) *Power {
	return &Power{Base: base, Exp: exp}
}

// NewQuotient returns a/b.
func NewQuotient(a, b Expr) *Quotient {
	return &Quotient{Dividend: a, Divisor: b}
}

// NewDifference returns a-b.
func NewDifference(a, b Expr) *Difference {
	return &Difference{Left: a, Right: b}
}

// NewFactorial returns arg!.
func NewFactorial(arg Expr) *Factorial {
	return &Factorial{Arg: arg}
}

// NewFn returns name(args...).
func NewFn(name string, args ...Expr) *Fn {
	return &Fn{Name: name, Args: args}
}

// WithParens returns a shallow copy of e printed inside n levels of
// parentheses.
func WithParens(e Expr, n int) Expr {
	return e.withParen(n)
}

func (e *Int) withParen(n int) Expr        { c := *e; c.paren = n; return &c }
func (e *Real) withParen(n int) Expr       { c := *e; c.paren = n; return &c }
func (e *Sym) withParen(n int) Expr        { c := *e; c.paren = n; return &c }
func (e *Constant) withParen(n int) Expr   { c := *e; c.paren = n; return &c }
func (e *Sum) withParen(n int) Expr        { c := *e; c.paren = n; return &c }
func (e *Product) withParen(n int) Expr    { c := *e; c.paren = n; return &c }
func (e *Power) withParen(n int) Expr      { c := *e; c.paren = n; return &c }
func (e *Quotient) withParen(n int) Expr   { c := *e; c.paren = n; return &c }
func (e *Difference) withParen(n int) Expr { c := *e; c.paren = n; return &c }
func (e *Factorial) withParen(n int) Expr  { c := *e; c.paren = n; return &c }
func (e *Fraction) withParen(n int) Expr   { c := *e; c.paren = n; return &c }
func (e *Fn) withParen(n int) Expr         { c := *e; c.paren = n; return &c }

// Operands returns the direct subexpressions of e, in order.
func Operands(e Expr) []Expr {
	switch n := e.(type) {
	case *Sum:
		return n.Args
	case *Product:
		return n.Args
	case *Fn:
		return n.Args
	case *Power:
		return []Expr{n.Base, n.Exp}
	case *Quotient:
		return []Expr{n.Dividend, n.Divisor}
	case *Difference:
		return []Expr{n.Left, n.Right}
	case *Factorial:
		return []Expr{n.Arg}
	}
	return nil
}

// Copy returns a deep copy of e.
func Copy(e Expr) Expr {
	return Map(e, Copy)
}

// Map rebuilds e with f applied to each direct subexpression. Atoms are
// copied.
func Map(e Expr, f func(Expr) Expr) Expr {
	each := func(args []Expr) []Expr {
		return lo.Map(args, func(a Expr, _ int) Expr { return f(a) })
	}
	m := meta{paren: e.ParenLevel()}
	switch n := e.(type) {
	case *Int:
		return &Int{meta: m, V: new(big.Int).Set(n.V)}
	case *Real:
		return &Real{meta: m, V: n.V}
	case *Sym:
		return &Sym{meta: m, Name: n.Name}
	case *Constant:
		c := &Constant{meta: m, Tag: n.Tag}
		if n.Value != nil {
			v := *n.Value
			c.Value = &v
		}
		return c
	case *Fraction:
		return &Fraction{meta: m, Num: new(big.Int).Set(n.Num), Den: new(big.Int).Set(n.Den)}
	case *Sum:
		return &Sum{meta: m, Args: each(n.Args)}
	case *Product:
		return &Product{meta: m, Args: each(n.Args)}
	case *Fn:
		return &Fn{meta: m, Name: n.Name, Args: each(n.Args)}
	case *Power:
		return &Power{meta: m, Base: f(n.Base), Exp: f(n.Exp)}
	case *Quotient:
		return &Quotient{meta: m, Dividend: f(n.Dividend), Divisor: f(n.Divisor)}
	case *Difference:
		return &Difference{meta: m, Left: f(n.Left), Right: f(n.Right)}
	case *Factorial:
		return &Factorial{meta: m, Arg: f(n.Arg)}
	}
	return e
}

// Substitute replaces every occurrence of the symbol name in e with a
// copy of value.
func Substitute(e Expr, name string, value Expr) Expr {
	if s, ok := e.(*Sym); ok && s.Name == name {
		v := Copy(value)
		if s.paren > v.ParenLevel() {
			v = WithParens(v, s.paren)
		}
		return v
	}
	return Map(e, func(x Expr) Expr { return Substitute(x, name, value) })
}

// Symbols returns the names of the symbols that occur in e, each once,
// in order of first appearance.
func Symbols(e Expr) []string {
	var names []string
	var walk func(Expr)
	walk = func(x Expr) {
		if s, ok := x.(*Sym); ok {
			names = append(names, s.Name)
			return
		}
		for _, o := range Operands(x) {
			walk(o)
		}
	}
	walk(e)
	return lo.Uniq(names)
}

// Equal reports whether a and b are structurally identical. Paren
// levels are ignored.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Int:
		y, ok := b.(*Int)
		return ok && x.V.Cmp(y.V) == 0
	case *Real:
		y, ok := b.(*Real)
		return ok && x.V == y.V
	case *Sym:
		y, ok := b.(*Sym)
		return ok && x.Name == y.Name
	case *Constant:
		y, ok := b.(*Constant)
		return ok && x.Tag == y.Tag && (x.Value == nil) == (y.Value == nil)
	case *Fraction:
		y, ok := b.(*Fraction)
		return ok && x.Num.Cmp(y.Num) == 0 && x.Den.Cmp(y.Den) == 0
	case *Sum:
		y, ok := b.(*Sum)
		return ok && equalAll(x.Args, y.Args)
	case *Product:
		y, ok := b.(*Product)
		return ok && equalAll(x.Args, y.Args)
	case *Fn:
		y, ok := b.(*Fn)
		return ok && x.Name == y.Name && equalAll(x.Args, y.Args)
	case *Power:
		y, ok := b.(*Power)
		return ok && Equal(x.Base, y.Base) && Equal(x.Exp, y.Exp)
	case *Quotient:
		y, ok := b.(*Quotient)
		return ok && Equal(x.Dividend, y.Dividend) && Equal(x.Divisor, y.Divisor)
	case *Difference:
		y, ok := b.(*Difference)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Factorial:
		y, ok := b.(*Factorial)
		return ok && Equal(x.Arg, y.Arg)
	}
	return false
}

func equalAll(as, bs []Expr) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}
