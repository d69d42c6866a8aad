// Package parse builds a syntax tree from tokens with a Pratt
// (precedence climbing) parser.
package parse

import (
	"math/big"

	"zappem.net/pub/math/canon/ast"
	"zappem.net/pub/math/canon/diag"
	"zappem.net/pub/math/canon/lex"
)

// DefaultMaxDepth bounds expression and block nesting.
const DefaultMaxDepth = 256

// parser is the state for one parse. It stops at the first error.
type parser struct {
	toks     []lex.Token
	pos      int
	depth    int
	maxDepth int
}

// Parse parses a token stream, as returned by lex.Tokenize, into
// statements.
func Parse(toks []lex.Token) ([]ast.Stmt, error) {
	return ParseDepth(toks, DefaultMaxDepth)
}

// ParseDepth is Parse with an explicit nesting limit.
func ParseDepth(toks []lex.Token, maxDepth int) ([]ast.Stmt, error) {
	p := newParser(toks, maxDepth)
	var stmts []ast.Stmt
	for !p.check(lex.End) {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

// ParseExpr parses tokens holding exactly one expression.
func ParseExpr(toks []lex.Token) (ast.Expr, error) {
	p := newParser(toks, DefaultMaxDepth)
	e, err := p.expr(bpNone)
	if err != nil {
		return nil, err
	}
	if !p.check(lex.End) {
		return nil, p.errAt(p.peek(), "unexpected %s after expression", p.peek().Describe())
	}
	return e, nil
}

func newParser(toks []lex.Token, maxDepth int) *parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != lex.End {
		var last lex.Token
		if len(toks) != 0 {
			last = toks[len(toks)-1]
		}
		toks = append(toks[:len(toks):len(toks)], lex.Token{Kind: lex.End, Line: last.Line, Column: last.Column})
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &parser{toks: toks, maxDepth: maxDepth}
}

func (p *parser) peek() lex.Token {
	return p.toks[p.pos]
}

func (p *parser) advance() lex.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) check(k lex.Kind) bool {
	return p.peek().Kind == k
}

func (p *parser) match(k lex.Kind) bool {
	if !p.check(k) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) expect(k lex.Kind, context string) (lex.Token, error) {
	if !p.check(k) {
		return lex.Token{}, p.errAt(p.peek(), "expected %q %s but found %s", k.String(), context, p.peek().Describe())
	}
	return p.advance(), nil
}

func (p *parser) errAt(t lex.Token, format string, args ...interface{}) error {
	return diag.Errorf(diag.Syntax, diag.PhaseParsing, t.Line, t.Column, format, args...)
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errAt(p.peek(), "input is nested more than %d levels deep", p.maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// expr parses an expression whose infix operators all bind more tightly
// than min.
func (p *parser) expr(min int) (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	t := p.advance()
	r := rules[t.Kind]
	if r.prefix == nil {
		return nil, p.errAt(t, "expected an expression but found %s", t.Describe())
	}
	left, err := r.prefix(p, t)
	if err != nil {
		return nil, err
	}
	for {
		next := p.peek()
		r := rules[next.Kind]
		if r.infix == nil || r.bp <= min {
			return left, nil
		}
		p.advance()
		if left, err = r.infix(p, left, next); err != nil {
			return nil, err
		}
	}
}

func literal(p *parser, t lex.Token) (ast.Expr, error) {
	pos := ast.PosOf(t)
	switch t.Kind {
	case lex.Int:
		return &ast.IntegerLit{Pos: pos, Value: big.NewInt(t.Lit.(int64))}, nil
	case lex.Float, lex.Scientific:
		return &ast.FloatLit{Pos: pos, Text: t.Lexeme, Value: t.Lit.(float64)}, nil
	case lex.Fraction:
		r := t.Lit.(lex.Ratio)
		return &ast.RationalLit{Pos: pos, N: big.NewInt(r.N), D: big.NewInt(r.D)}, nil
	case lex.BigNumber:
		return &ast.BigNumberLit{Pos: pos, Digits: t.Lit.(string)}, nil
	case lex.BigFraction:
		return &ast.BigRationalLit{Pos: pos, Digits: t.Lit.(string)}, nil
	case lex.Bool:
		return &ast.BoolLit{Pos: pos, Value: t.Lit.(bool)}, nil
	case lex.Nil:
		return &ast.NilLit{Pos: pos}, nil
	case lex.String:
		return &ast.StringLit{Pos: pos, Value: t.Lit.(string)}, nil
	case lex.NumericConstant:
		return &ast.NumericConstant{Pos: pos, Sym: t.Lexeme, Value: t.Lit.(float64)}, nil
	default:
		return &ast.Variable{Pos: pos, Name: t.Lit.(string)}, nil
	}
}

func unary(p *parser, t lex.Token) (ast.Expr, error) {
	arg, err := p.expr(bpPrefix)
	if err != nil {
		return nil, err
	}
	return &ast.AlgebraicUnary{Pos: ast.PosOf(t), Op: t.Kind, Arg: arg}, nil
}

func not(p *parser, t lex.Token) (ast.Expr, error) {
	arg, err := p.expr(bpNot)
	if err != nil {
		return nil, err
	}
	return &ast.LogicalUnary{Pos: ast.PosOf(t), Op: t.Kind, Arg: arg}, nil
}

// group parses "(e)" or the tuple "(e1, e2, ...)".
func group(p *parser, t lex.Token) (ast.Expr, error) {
	if p.check(lex.RightParen) {
		return nil, p.errAt(p.peek(), "empty parentheses")
	}
	first, err := p.expr(bpNone)
	if err != nil {
		return nil, err
	}
	if !p.match(lex.Comma) {
		if _, err := p.expect(lex.RightParen, "to close the group"); err != nil {
			return nil, err
		}
		return &ast.Group{Pos: ast.PosOf(t), Inner: first}, nil
	}
	elems := []ast.Expr{first}
	for {
		e, err := p.expr(bpNone)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if !p.match(lex.Comma) {
			break
		}
	}
	if _, err := p.expect(lex.RightParen, "to close the tuple"); err != nil {
		return nil, err
	}
	return &ast.Tuple{Pos: ast.PosOf(t), Elements: elems}, nil
}

// arguments parses a call's argument list after its "(".
func (p *parser) arguments() ([]ast.Expr, error) {
	if p.match(lex.RightParen) {
		return nil, nil
	}
	var args []ast.Expr
	for {
		a, err := p.expr(bpNone)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if !p.match(lex.Comma) {
			break
		}
	}
	if _, err := p.expect(lex.RightParen, "after arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

func native(p *parser, t lex.Token) (ast.Expr, error) {
	if _, err := p.expect(lex.LeftParen, "after "+t.Lexeme); err != nil {
		return nil, err
	}
	args, err := p.arguments()
	if err != nil {
		return nil, err
	}
	want := -1
	switch t.Kind {
	case lex.NativeUnary:
		want = 1
	case lex.NativeBinary:
		want = 2
	}
	switch {
	case want > 0 && len(args) != want:
		return nil, p.errAt(t, "%s takes %d argument(s), got %d", t.Lexeme, want, len(args))
	case want < 0 && len(args) == 0:
		return nil, p.errAt(t, "%s needs at least one argument", t.Lexeme)
	}
	return &ast.NativeCall{Pos: ast.PosOf(t), Name: t.Lexeme, Kind: t.Kind, Args: args}, nil
}

func binary(p *parser, left ast.Expr, t lex.Token) (ast.Expr, error) {
	bp := rules[t.Kind].bp
	if t.Kind == lex.Caret {
		// Right associative.
		bp--
	}
	right, err := p.expr(bp)
	if err != nil {
		return nil, err
	}
	pos := ast.PosOf(t)
	switch t.Kind {
	case lex.Equal, lex.NotEqual, lex.Less, lex.LessEqual, lex.Greater, lex.GreaterEqual:
		return &ast.Relational{Pos: pos, Left: left, Op: t.Kind, Right: right}, nil
	case lex.And, lex.Or, lex.Nand, lex.Nor, lex.Xor, lex.Xnor:
		return &ast.LogicalBinary{Pos: pos, Left: left, Op: t.Kind, Right: right}, nil
	}
	return &ast.AlgebraicBinary{Pos: pos, Left: left, Op: t.Kind, Right: right}, nil
}

func assign(p *parser, left ast.Expr, t lex.Token) (ast.Expr, error) {
	v, ok := left.(*ast.Variable)
	if !ok {
		return nil, p.errAt(t, "invalid assignment target %s", ast.Source(left))
	}
	value, err := p.expr(bpAssign - 1)
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Pos: v.Pos, Name: v.Name, Value: value}, nil
}

func postfix(p *parser, left ast.Expr, t lex.Token) (ast.Expr, error) {
	return &ast.AlgebraicUnary{Pos: ast.PosOf(t), Op: t.Kind, Arg: left}, nil
}

func call(p *parser, left ast.Expr, t lex.Token) (ast.Expr, error) {
	args, err := p.arguments()
	if err != nil {
		return nil, err
	}
	return &ast.Call{Pos: ast.PosOf(t), Callee: left, Args: args}, nil
}
