package lex

import (
	"math"

	"golang.org/x/exp/slices"
)

var keywords = map[string]Kind{
	"let":    Let,
	"fn":     Fn,
	"if":     If,
	"else":   Else,
	"return": Return,
	"while":  While,
	"for":    For,
	"print":  Print,
	"rem":    Rem,
	"mod":    Mod,
	"div":    Div,
	"and":    And,
	"or":     Or,
	"not":    Not,
	"nand":   Nand,
	"nor":    Nor,
	"xor":    Xor,
	"xnor":   Xnor,
}

// Constants maps the spelling of each numeric constant to its value.
// NaN is how the undefined value is written.
var Constants = map[string]float64{
	"pi":  math.Pi,
	"π":   math.Pi,
	"Inf": math.Inf(1),
	"NaN": math.NaN(),
}

var (
	unaryNatives = []string{
		"sin", "cos", "tan", "csc", "sec", "cot",
		"arcsin", "arccos", "arctan",
		"sinh", "cosh", "tanh",
		"ln", "lg", "log", "exp", "sqrt", "cbrt",
		"abs", "floor", "ceil", "sgn",
	}
	binaryNatives   = []string{"max", "min", "gcd", "lcm", "atan2", "root"}
	polyadicNatives = []string{"sum", "prod", "avg"}
)

// greekNames are multi-letter identifiers that name a single Greek
// letter and so are never split into single-letter symbols.
var greekNames = []string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "rho",
	"sigma", "tau", "upsilon", "phi", "chi", "psi", "omega",
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Rho",
	"Sigma", "Tau", "Upsilon", "Phi", "Chi", "Psi", "Omega",
}

// NativeKind reports the token kind for a builtin function name.
func NativeKind(name string) (Kind, bool) {
	switch {
	case slices.Contains(unaryNatives, name):
		return NativeUnary, true
	case slices.Contains(binaryNatives, name):
		return NativeBinary, true
	case slices.Contains(polyadicNatives, name):
		return NativePolyadic, true
	}
	return End, false
}

// IsGreekName reports whether name spells a Greek letter.
func IsGreekName(name string) bool {
	return slices.Contains(greekNames, name)
}

// word classifies a scanned identifier.
func word(text string) (Kind, interface{}) {
	if k, ok := keywords[text]; ok {
		return k, nil
	}
	switch text {
	case "true":
		return Bool, true
	case "false":
		return Bool, false
	case "nil":
		return Nil, nil
	}
	if v, ok := Constants[text]; ok {
		return NumericConstant, v
	}
	if k, ok := NativeKind(text); ok {
		return k, text
	}
	return Variable, text
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isLetter accepts Latin letters, Greek letters and the mathematical
// alphanumeric letters.
func isLetter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 0x0391 && r <= 0x03A9 && r != 0x03A2:
		return true
	case r >= 0x03B1 && r <= 0x03C9:
		return true
	case r >= 0x1D400 && r <= 0x1D7CB:
		return true
	}
	return false
}

func isIdentStart(r rune) bool {
	return isLetter(r) || r == '_' || r == '$'
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
