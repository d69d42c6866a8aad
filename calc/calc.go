// Package calc runs source text through the whole pipeline: it is
// tokenized, parsed, converted to algebraic form, simplified and
// printed. A Session remembers let bindings between calls.
package calc

import (
	"io"
	"log"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"zappem.net/pub/math/canon/alg"
	"zappem.net/pub/math/canon/ast"
	"zappem.net/pub/math/canon/convert"
	"zappem.net/pub/math/canon/diag"
	"zappem.net/pub/math/canon/lex"
	"zappem.net/pub/math/canon/parse"
	"zappem.net/pub/math/canon/simplify"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is
// zero.
const DefaultMaxDepth = parse.DefaultMaxDepth

// Options configures a Session. The zero value is usable.
type Options struct {
	// MaxDepth bounds the nesting of parsed and simplified
	// expressions.
	MaxDepth int
	// Logger, when set, traces every pipeline stage.
	Logger *log.Logger
}

// Session evaluates statements against a set of bindings.
type Session struct {
	depth int
	log   *log.Logger
	vars  map[string]alg.Expr
}

// NewSession returns a session with no bindings.
func NewSession(opts Options) *Session {
	s := &Session{
		depth: opts.MaxDepth,
		log:   opts.Logger,
		vars:  make(map[string]alg.Expr),
	}
	if s.depth <= 0 {
		s.depth = DefaultMaxDepth
	}
	if s.log == nil {
		s.log = log.New(io.Discard, "", 0)
	}
	return s
}

// Simplify evaluates src in a fresh session and returns its output
// lines joined by newlines.
func Simplify(src string) (string, error) {
	lines, err := NewSession(Options{}).Eval(src)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Parse tokenizes and parses src.
func (s *Session) Parse(src string) ([]ast.Stmt, error) {
	toks := diag.From(lex.Tokenize(src))
	return diag.Then(toks, func(ts []lex.Token) ([]ast.Stmt, error) {
		s.log.Printf("lexed %d tokens", len(ts))
		return parse.ParseDepth(ts, s.depth)
	}).Get()
}

// Eval evaluates every statement in src and returns one line of output
// per statement. Evaluation stops at the first error; the output and
// bindings of earlier statements are kept.
func (s *Session) Eval(src string) ([]string, error) {
	stmts, err := s.Parse(src)
	if err != nil {
		return nil, err
	}
	return s.run(stmts)
}

func (s *Session) run(stmts []ast.Stmt) ([]string, error) {
	var out []string
	for _, st := range stmts {
		s.log.Printf("statement: %s", ast.StmtSource(st))
		line, err := s.stmt(st)
		if err != nil {
			return out, err
		}
		out = append(out, line)
	}
	return out, nil
}

func (s *Session) stmt(st ast.Stmt) (string, error) {
	switch n := st.(type) {
	case *ast.Let:
		return s.bind(n.Name, n.Value)
	case *ast.ExprStmt:
		if a, ok := n.X.(*ast.Assign); ok {
			return s.bind(a.Name, a.Value)
		}
		return s.show(n.X)
	case *ast.Print:
		return s.show(n.X)
	}
	p := st.Position()
	return "", diag.Errorf(diag.Algebraic, diag.PhaseEvaluating, p.Line, p.Column, "statement %q is not supported", ast.StmtSource(st))
}

func (s *Session) show(x ast.Expr) (string, error) {
	return diag.Map(diag.From(s.Expr(x)), convert.Source).Get()
}

func (s *Session) bind(name string, x ast.Expr) (string, error) {
	v, err := s.Expr(x)
	if err != nil {
		return "", err
	}
	s.vars[name] = v
	s.log.Printf("bound %s", name)
	return binding(name, v), nil
}

// Expr converts x to algebraic form, substitutes the session's bindings
// and simplifies the result.
func (s *Session) Expr(x ast.Expr) (alg.Expr, error) {
	r := diag.From(convert.ToAlgebraicDepth(x, s.depth))
	r = diag.Map(r, func(e alg.Expr) alg.Expr {
		s.log.Printf("algebraic: %v", e)
		return s.substitute(e)
	})
	r = diag.Map(r, func(e alg.Expr) alg.Expr {
		e = simplify.SimplifyDepth(e, s.depth)
		s.log.Printf("simplified: %v", e)
		return e
	})
	return r.Get()
}

// substitute replaces bound symbols until none remain. The number of
// passes is capped so that a self-referential binding still ends.
func (s *Session) substitute(e alg.Expr) alg.Expr {
	names := s.Names()
	for pass := 0; pass <= len(names); pass++ {
		if !lo.ContainsBy(alg.Symbols(e), s.bound) {
			break
		}
		for _, name := range names {
			e = alg.Substitute(e, name, s.vars[name])
		}
	}
	return e
}

func (s *Session) bound(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// Names returns the bound names in sorted order.
func (s *Session) Names() []string {
	names := lo.Keys(s.vars)
	slices.Sort(names)
	return names
}

// Lookup returns the value bound to name.
func (s *Session) Lookup(name string) (alg.Expr, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Unset removes the binding of name.
func (s *Session) Unset(name string) {
	delete(s.vars, name)
}

// Clear removes every binding.
func (s *Session) Clear() {
	s.vars = make(map[string]alg.Expr)
}

// Bindings lists the bindings as "name = value" lines, sorted by name.
func (s *Session) Bindings() []string {
	return lo.Map(s.Names(), func(name string, _ int) string {
		return binding(name, s.vars[name])
	})
}

func binding(name string, v alg.Expr) string {
	return ast.Source(&ast.Variable{Name: name}) + " = " + convert.Source(v)
}
