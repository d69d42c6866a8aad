package parse

import (
	"zappem.net/pub/math/canon/ast"
	"zappem.net/pub/math/canon/lex"
)

func (p *parser) statement() (ast.Stmt, error) {
	switch p.peek().Kind {
	case lex.Let:
		return p.letStmt()
	case lex.Fn:
		return p.fnDecl()
	case lex.If:
		return p.ifStmt()
	case lex.While:
		return p.whileStmt()
	case lex.Return:
		return p.returnStmt()
	case lex.Print:
		return p.printStmt()
	case lex.LeftBrace:
		return p.block()
	case lex.For:
		return nil, p.errAt(p.peek(), "for loops are not supported")
	}
	t := p.peek()
	x, err := p.expr(bpNone)
	if err != nil {
		return nil, err
	}
	if err := p.terminator(); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Pos: ast.PosOf(t), X: x}, nil
}

// terminator accepts ";" or, implicitly, the end of the input or of the
// enclosing block.
func (p *parser) terminator() error {
	if p.match(lex.Semicolon) || p.check(lex.End) || p.check(lex.RightBrace) {
		return nil
	}
	return p.errAt(p.peek(), "expected \";\" after statement but found %s", p.peek().Describe())
}

func (p *parser) atTerminator() bool {
	return p.check(lex.Semicolon) || p.check(lex.End) || p.check(lex.RightBrace)
}

func (p *parser) block() (*ast.Block, error) {
	open, err := p.expect(lex.LeftBrace, "to open a block")
	if err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	b := &ast.Block{Pos: ast.PosOf(open)}
	for !p.check(lex.RightBrace) && !p.check(lex.End) {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		b.Stmts = append(b.Stmts, s)
	}
	if _, err := p.expect(lex.RightBrace, "to close the block"); err != nil {
		return nil, err
	}
	return b, nil
}

func (p *parser) letStmt() (ast.Stmt, error) {
	t := p.advance()
	name, err := p.expect(lex.Variable, "after let")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.Assign, "after the bound name"); err != nil {
		return nil, err
	}
	value, err := p.expr(bpNone)
	if err != nil {
		return nil, err
	}
	if err := p.terminator(); err != nil {
		return nil, err
	}
	return &ast.Let{Pos: ast.PosOf(t), Name: name.Lit.(string), Value: value}, nil
}

func (p *parser) fnDecl() (ast.Stmt, error) {
	t := p.advance()
	name, err := p.expect(lex.Variable, "after fn")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.LeftParen, "after the function name"); err != nil {
		return nil, err
	}
	var params []string
	if !p.match(lex.RightParen) {
		for {
			v, err := p.expect(lex.Variable, "as a parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, v.Lit.(string))
			if !p.match(lex.Comma) {
				break
			}
		}
		if _, err := p.expect(lex.RightParen, "after the parameters"); err != nil {
			return nil, err
		}
	}
	fn := &ast.FnDecl{Pos: ast.PosOf(t), Name: name.Lit.(string), Params: params}
	switch {
	case p.check(lex.Assign):
		eq := p.advance()
		x, err := p.expr(bpNone)
		if err != nil {
			return nil, err
		}
		if err := p.terminator(); err != nil {
			return nil, err
		}
		fn.Body = &ast.Block{
			Pos:   ast.PosOf(eq),
			Stmts: []ast.Stmt{&ast.Return{Pos: ast.PosOf(eq), Value: x}},
		}
	case p.check(lex.LeftBrace):
		if fn.Body, err = p.block(); err != nil {
			return nil, err
		}
	default:
		return nil, p.errAt(p.peek(), "expected \"{\" or \"=\" after the parameters but found %s", p.peek().Describe())
	}
	return fn, nil
}

func (p *parser) ifStmt() (ast.Stmt, error) {
	t := p.advance()
	cond, err := p.expr(bpNone)
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	s := &ast.If{Pos: ast.PosOf(t), Cond: cond, Then: then}
	if !p.match(lex.Else) {
		return s, nil
	}
	if p.check(lex.If) {
		s.Else, err = p.ifStmt()
	} else {
		s.Else, err = p.block()
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (p *parser) whileStmt() (ast.Stmt, error) {
	t := p.advance()
	cond, err := p.expr(bpNone)
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.While{Pos: ast.PosOf(t), Cond: cond, Body: body}, nil
}

func (p *parser) returnStmt() (ast.Stmt, error) {
	t := p.advance()
	s := &ast.Return{Pos: ast.PosOf(t)}
	if !p.atTerminator() {
		v, err := p.expr(bpNone)
		if err != nil {
			return nil, err
		}
		s.Value = v
	}
	if err := p.terminator(); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *parser) printStmt() (ast.Stmt, error) {
	t := p.advance()
	x, err := p.expr(bpNone)
	if err != nil {
		return nil, err
	}
	if err := p.terminator(); err != nil {
		return nil, err
	}
	return &ast.Print{Pos: ast.PosOf(t), X: x}, nil
}
