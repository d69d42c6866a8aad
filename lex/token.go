// Package lex converts source text into tokens.
package lex

import "fmt"

// Kind is the type of a token.
type Kind int

const (
	End Kind = iota

	// Delimiters.
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Semicolon

	// Arithmetic.
	Plus
	Minus
	Star
	Slash
	Caret
	Bang

	// Assignment and relations.
	Assign
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual

	// Logic.
	And
	Or
	Not
	Nand
	Nor
	Xor
	Xnor

	// Literals.
	Int
	Float
	Scientific
	Fraction
	BigNumber
	BigFraction
	Bool
	Nil
	NumericConstant
	String
	Variable

	// Keywords.
	Let
	Fn
	If
	Else
	Return
	While
	For
	Print
	Rem
	Mod
	Div

	// Native functions.
	NativeUnary
	NativeBinary
	NativePolyadic
)

var kindNames = [...]string{
	End:             "end of input",
	LeftParen:       "(",
	RightParen:      ")",
	LeftBrace:       "{",
	RightBrace:      "}",
	Comma:           ",",
	Semicolon:       ";",
	Plus:            "+",
	Minus:           "-",
	Star:            "*",
	Slash:           "/",
	Caret:           "^",
	Bang:            "!",
	Assign:          "=",
	Equal:           "==",
	NotEqual:        "!=",
	Less:            "<",
	LessEqual:       "<=",
	Greater:         ">",
	GreaterEqual:    ">=",
	And:             "and",
	Or:              "or",
	Not:             "not",
	Nand:            "nand",
	Nor:             "nor",
	Xor:             "xor",
	Xnor:            "xnor",
	Int:             "integer",
	Float:           "float",
	Scientific:      "scientific number",
	Fraction:        "fraction",
	BigNumber:       "big number",
	BigFraction:     "big fraction",
	Bool:            "boolean",
	Nil:             "nil",
	NumericConstant: "numeric constant",
	String:          "string",
	Variable:        "variable",
	Let:             "let",
	Fn:              "fn",
	If:              "if",
	Else:            "else",
	Return:          "return",
	While:           "while",
	For:             "for",
	Print:           "print",
	Rem:             "rem",
	Mod:             "mod",
	Div:             "div",
	NativeUnary:     "unary function",
	NativeBinary:    "binary function",
	NativePolyadic:  "polyadic function",
}

// String returns the operator text for operator kinds and a short
// description for everything else.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsNumeric reports whether k is a numeric literal kind.
func (k Kind) IsNumeric() bool {
	switch k {
	case Int, Float, Scientific, Fraction, BigNumber, BigFraction, NumericConstant:
		return true
	}
	return false
}

// IsNative reports whether k marks a builtin function name.
func (k Kind) IsNative() bool {
	return k == NativeUnary || k == NativeBinary || k == NativePolyadic
}

// Ratio is the literal carried by a Fraction token.
type Ratio struct {
	N, D int64
}

// Token is a single lexeme with its position. Tokens are values; the
// With methods return modified copies.
type Token struct {
	Kind   Kind
	Lexeme string
	// Lit is the decoded literal: int64 (Int), float64 (Float,
	// Scientific, NumericConstant), Ratio (Fraction), bool (Bool), string
	// (String and Variable names), or nil.
	Lit    interface{}
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%v, %q, %d:%d)", t.Kind, t.Lexeme, t.Line, t.Column)
}

// WithKind returns a copy of t with a different kind.
func (t Token) WithKind(k Kind) Token {
	t.Kind = k
	return t
}

// WithLexeme returns a copy of t with a different lexeme and literal.
func (t Token) WithLexeme(lexeme string, lit interface{}) Token {
	t.Lexeme = lexeme
	t.Lit = lit
	return t
}

// WithPos returns a copy of t positioned at line, column.
func (t Token) WithPos(line, column int) Token {
	t.Line = line
	t.Column = column
	return t
}

// Describe names the token for diagnostics.
func (t Token) Describe() string {
	if t.Kind == End || t.Lexeme == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%q", t.Lexeme)
}
