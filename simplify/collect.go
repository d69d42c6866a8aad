package simplify

import (
	"zappem.net/pub/math/canon/alg"
)

// collector describes how one commutative operator combines its
// operands. Sums and products share the merge machinery below.
type collector struct {
	// identity is the neutral element, 0 or 1.
	identity int64
	// operands returns the operands of e when e is this operator.
	operands func(e alg.Expr) ([]alg.Expr, bool)
	// fold combines two exact numbers.
	fold func(a, b alg.Expr) alg.Expr
	// combine merges two operands that share a base (products) or a
	// term (sums). It returns nil when they share neither.
	combine func(u, v alg.Expr) alg.Expr
	build   func(args []alg.Expr) alg.Expr
}

var (
	sums     *collector
	products *collector
)

func init() {
	sums = &collector{
		identity: 0,
		operands: func(e alg.Expr) ([]alg.Expr, bool) {
			s, ok := e.(*alg.Sum)
			if !ok {
				return nil, false
			}
			return s.Args, true
		},
		fold:    alg.EvalSum,
		combine: combineTerms,
		build:   func(args []alg.Expr) alg.Expr { return alg.NewSum(args...) },
	}
	products = &collector{
		identity: 1,
		operands: func(e alg.Expr) ([]alg.Expr, bool) {
			p, ok := e.(*alg.Product)
			if !ok {
				return nil, false
			}
			return p.Args, true
		},
		fold:    alg.EvalProduct,
		combine: combineBases,
		build:   func(args []alg.Expr) alg.Expr { return alg.NewProduct(args...) },
	}
}

// product simplifies the product of simplified operands.
func product(args []alg.Expr) alg.Expr {
	if undefined(args) {
		return alg.Undefined()
	}
	for _, a := range args {
		if alg.IsInt(a, 0) {
			return alg.NewInt(0)
		}
	}
	return products.simplify(args)
}

// sum simplifies the sum of simplified operands.
func sum(args []alg.Expr) alg.Expr {
	if undefined(args) {
		return alg.Undefined()
	}
	return sums.simplify(args)
}

func (c *collector) simplify(args []alg.Expr) alg.Expr {
	if len(args) == 1 {
		return args[0]
	}
	v := c.rec(args)
	switch len(v) {
	case 0:
		return alg.NewInt(c.identity)
	case 1:
		return v[0]
	}
	return c.build(v)
}

// rec returns the sorted, combined operand list for args, which holds
// at least two simplified operands.
func (c *collector) rec(args []alg.Expr) []alg.Expr {
	if len(args) > 2 {
		return c.merge(c.flat(args[0]), c.rec(args[1:]))
	}
	u1, u2 := args[0], args[1]
	_, nested1 := c.operands(u1)
	_, nested2 := c.operands(u2)
	if nested1 || nested2 {
		return c.merge(c.flat(u1), c.flat(u2))
	}
	switch {
	case alg.IsNumeric(u1) && alg.IsNumeric(u2):
		p := c.fold(u1, u2)
		if alg.IsInt(p, c.identity) {
			return nil
		}
		return []alg.Expr{p}
	case alg.IsInt(u1, c.identity):
		return []alg.Expr{u2}
	case alg.IsInt(u2, c.identity):
		return []alg.Expr{u1}
	}
	if p := c.combine(u1, u2); p != nil {
		if alg.IsInt(p, c.identity) {
			return nil
		}
		return c.flat(p)
	}
	if alg.Precedes(u2, u1) {
		return []alg.Expr{u2, u1}
	}
	return []alg.Expr{u1, u2}
}

// flat returns the operands of u when u is this operator, else u alone.
func (c *collector) flat(u alg.Expr) []alg.Expr {
	if args, ok := c.operands(u); ok {
		return args
	}
	return []alg.Expr{u}
}

// merge combines two sorted operand lists into one. When the heads
// combine, the result may hold any number of operands and is merged
// back into the rest.
func (c *collector) merge(p, q []alg.Expr) []alg.Expr {
	var out []alg.Expr
	for len(p) > 0 && len(q) > 0 {
		h := c.rec([]alg.Expr{p[0], q[0]})
		switch {
		case len(h) == 0:
			p, q = p[1:], q[1:]
		case reordered(h, p[0], q[0]):
			out = append(out, p[0])
			p = p[1:]
		case reordered(h, q[0], p[0]):
			out = append(out, q[0])
			q = q[1:]
		default:
			return append(out, c.merge(h, c.merge(p[1:], q[1:]))...)
		}
	}
	out = append(out, p...)
	return append(out, q...)
}

// reordered reports whether h is exactly [u, v].
func reordered(h []alg.Expr, u, v alg.Expr) bool {
	return len(h) == 2 && alg.Equal(h[0], u) && alg.Equal(h[1], v)
}

// base and exponent split a product operand into b^e. Exact numbers
// have no base.
func base(u alg.Expr) alg.Expr {
	switch n := u.(type) {
	case *alg.Int, *alg.Fraction:
		return nil
	case *alg.Power:
		return n.Base
	}
	return u
}

func exponent(u alg.Expr) alg.Expr {
	if p, ok := u.(*alg.Power); ok {
		return p.Exp
	}
	return alg.NewInt(1)
}

// term and constant split a sum operand into its symbolic part and its
// numeric coefficient. Exact numbers have no term.
func term(u alg.Expr) alg.Expr {
	if alg.IsNumeric(u) {
		return nil
	}
	if p, ok := u.(*alg.Product); ok {
		if alg.IsNumeric(p.Args[0]) {
			return alg.NewProduct(p.Args[1:]...)
		}
		return p
	}
	return alg.NewProduct(u)
}

func constant(u alg.Expr) alg.Expr {
	if p, ok := u.(*alg.Product); ok && alg.IsNumeric(p.Args[0]) {
		return p.Args[0]
	}
	return alg.NewInt(1)
}

func combineBases(u, v alg.Expr) alg.Expr {
	b := base(u)
	if b == nil || base(v) == nil || !alg.Equal(b, base(v)) {
		return nil
	}
	return power(b, sum([]alg.Expr{exponent(u), exponent(v)}))
}

func combineTerms(u, v alg.Expr) alg.Expr {
	t := term(u)
	if t == nil || term(v) == nil || !alg.Equal(t, term(v)) {
		return nil
	}
	return product([]alg.Expr{sum([]alg.Expr{constant(u), constant(v)}), t})
}
