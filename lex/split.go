package lex

import (
	"strings"
	"unicode/utf8"
)

// splitSymbols explodes multi-letter variable names into one variable
// per letter, so "xy" reads as x followed by y. Greek letter names,
// quoted names, names holding '_', '$' or digits, function names after
// fn and names directly applied to arguments are left whole.
func splitSymbols(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i, t := range toks {
		if !splittable(toks, i) {
			out = append(out, t)
			continue
		}
		col := t.Column
		for _, r := range t.Lexeme {
			name := string(r)
			k, lit := word(name)
			out = append(out, t.WithKind(k).WithLexeme(name, lit).WithPos(t.Line, col))
			col++
		}
	}
	return out
}

func splittable(toks []Token, i int) bool {
	t := toks[i]
	if t.Kind != Variable || utf8.RuneCountInString(t.Lexeme) < 2 {
		return false
	}
	if strings.ContainsAny(t.Lexeme, "_$'0123456789") || IsGreekName(t.Lexeme) {
		return false
	}
	if i > 0 && toks[i-1].Kind == Fn {
		return false
	}
	if i+1 < len(toks) && toks[i+1].Kind == LeftParen {
		return false
	}
	return true
}

func identLike(k Kind) bool {
	return k == Variable || k == NumericConstant
}

// implicitProduct reports whether a multiplication is understood
// between adjacent tokens a and b.
func implicitProduct(a, b Token) bool {
	switch {
	case a.Kind == RightParen:
		return identLike(b.Kind) || b.Kind == LeftParen
	case a.Kind.IsNumeric():
		return b.Kind.IsNative() || identLike(b.Kind) || b.Kind == LeftParen
	case identLike(a.Kind):
		return identLike(b.Kind)
	}
	return false
}

// insertProducts splices a '*' token between every implicitly
// multiplied pair.
func insertProducts(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i, t := range toks {
		if i > 0 && implicitProduct(toks[i-1], t) {
			out = append(out, Token{Kind: Star, Lexeme: "*", Line: t.Line, Column: t.Column})
		}
		out = append(out, t)
	}
	return out
}

// PlainName reports whether name lexes back to the same single variable
// without quotes.
func PlainName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if (i == 0 && !isIdentStart(r)) || !isIdentContinue(r) {
			return false
		}
	}
	if k, _ := word(name); k != Variable {
		return false
	}
	if utf8.RuneCountInString(name) == 1 {
		return true
	}
	return strings.ContainsAny(name, "_$0123456789") || IsGreekName(name)
}
