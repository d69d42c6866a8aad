package parse

import (
	"zappem.net/pub/math/canon/ast"
	"zappem.net/pub/math/canon/lex"
)

// Binding powers, weakest first.
const (
	bpNone       = 0
	bpAssign     = 10
	bpOr         = 20
	bpAnd        = 30
	bpNot        = 40
	bpEquality   = 50
	bpRelational = 60
	bpSum        = 70
	bpProduct    = 80
	bpPrefix     = 85
	bpPower      = 90
	bpPostfix    = 100
	bpCall       = 110
)

type prefixRule func(p *parser, t lex.Token) (ast.Expr, error)

type infixRule func(p *parser, left ast.Expr, t lex.Token) (ast.Expr, error)

// rule describes how a token kind starts an expression (prefix), how it
// continues one (infix), and how tightly the infix form binds.
type rule struct {
	prefix prefixRule
	infix  infixRule
	bp     int
}

// rules is filled by init because the rule functions themselves consult
// the table.
var rules map[lex.Kind]rule

func init() {
	rules = map[lex.Kind]rule{
		lex.Int:             {prefix: literal},
		lex.Float:           {prefix: literal},
		lex.Scientific:      {prefix: literal},
		lex.Fraction:        {prefix: literal},
		lex.BigNumber:       {prefix: literal},
		lex.BigFraction:     {prefix: literal},
		lex.Bool:            {prefix: literal},
		lex.Nil:             {prefix: literal},
		lex.String:          {prefix: literal},
		lex.NumericConstant: {prefix: literal},
		lex.Variable:        {prefix: literal},
		lex.NativeUnary:     {prefix: native},
		lex.NativeBinary:    {prefix: native},
		lex.NativePolyadic:  {prefix: native},
		lex.LeftParen:       {prefix: group, infix: call, bp: bpCall},
		lex.Not:             {prefix: not},

		lex.Assign: {infix: assign, bp: bpAssign},

		lex.Or:   {infix: binary, bp: bpOr},
		lex.Nor:  {infix: binary, bp: bpOr},
		lex.Xor:  {infix: binary, bp: bpOr},
		lex.Xnor: {infix: binary, bp: bpOr},
		lex.And:  {infix: binary, bp: bpAnd},
		lex.Nand: {infix: binary, bp: bpAnd},

		lex.Equal:        {infix: binary, bp: bpEquality},
		lex.NotEqual:     {infix: binary, bp: bpEquality},
		lex.Less:         {infix: binary, bp: bpRelational},
		lex.LessEqual:    {infix: binary, bp: bpRelational},
		lex.Greater:      {infix: binary, bp: bpRelational},
		lex.GreaterEqual: {infix: binary, bp: bpRelational},

		lex.Plus:  {prefix: unary, infix: binary, bp: bpSum},
		lex.Minus: {prefix: unary, infix: binary, bp: bpSum},
		lex.Star:  {infix: binary, bp: bpProduct},
		lex.Slash: {infix: binary, bp: bpProduct},
		lex.Rem:   {infix: binary, bp: bpProduct},
		lex.Mod:   {infix: binary, bp: bpProduct},
		lex.Div:   {infix: binary, bp: bpProduct},
		lex.Caret: {infix: binary, bp: bpPower},
		lex.Bang:  {infix: postfix, bp: bpPostfix},
	}
}
