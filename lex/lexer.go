package lex

import (
	"strconv"
	"strings"

	"zappem.net/pub/math/canon/diag"
)

// MaxSafeInteger is the largest integer literal accepted. Larger values
// must be written as big numbers (#digits).
const MaxSafeInteger = 1<<53 - 1

// lexer is the scanning state for one call to Tokenize. Once err is set
// every further scan is a no-op.
type lexer struct {
	src []rune
	cur int

	line, col int

	start               int
	startLine, startCol int

	toks []Token
	err  *diag.Error
}

// Tokenize scans source into tokens. The returned slice always ends with
// an End token. Multi-letter identifiers are split into single-letter
// variables and implicit multiplications are made explicit.
func Tokenize(source string) ([]Token, error) {
	l := &lexer{
		src:  []rune(source),
		line: 1,
		col:  1,
	}
	for !l.atEnd() && l.err == nil {
		l.scan()
	}
	if l.err != nil {
		return nil, l.err
	}
	l.toks = append(l.toks, Token{Kind: End, Line: l.line, Column: l.col})
	return insertProducts(splitSymbols(l.toks)), nil
}

func (l *lexer) atEnd() bool {
	return l.cur >= len(l.src)
}

func (l *lexer) peek() rune {
	return l.peekAt(0)
}

func (l *lexer) peekAt(n int) rune {
	if l.cur+n >= len(l.src) {
		return 0
	}
	return l.src[l.cur+n]
}

func (l *lexer) advance() rune {
	r := l.src[l.cur]
	l.cur++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) match(r rune) bool {
	if l.peek() != r || l.atEnd() {
		return false
	}
	l.advance()
	return true
}

func (l *lexer) emit(k Kind, lit interface{}) {
	l.toks = append(l.toks, Token{
		Kind:   k,
		Lexeme: string(l.src[l.start:l.cur]),
		Lit:    lit,
		Line:   l.startLine,
		Column: l.startCol,
	})
}

func (l *lexer) fail(format string, args ...interface{}) {
	if l.err != nil {
		return
	}
	l.err = diag.Errorf(diag.Lexical, diag.PhaseLexing, l.startLine, l.startCol, format, args...)
}

// scan consumes one lexeme.
func (l *lexer) scan() {
	if l.err != nil {
		return
	}
	l.start, l.startLine, l.startCol = l.cur, l.line, l.col
	r := l.advance()
	switch r {
	case ' ', '\t', '\r', '\n':
	case '(':
		l.emit(LeftParen, nil)
	case ')':
		l.emit(RightParen, nil)
	case '{':
		l.emit(LeftBrace, nil)
	case '}':
		l.emit(RightBrace, nil)
	case ',':
		l.emit(Comma, nil)
	case ';':
		l.emit(Semicolon, nil)
	case '+':
		l.emit(Plus, nil)
	case '-':
		l.emit(Minus, nil)
	case '*':
		l.emit(Star, nil)
	case '/':
		l.emit(Slash, nil)
	case '^':
		l.emit(Caret, nil)
	case '!':
		if l.match('=') {
			l.emit(NotEqual, nil)
		} else {
			l.emit(Bang, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(Equal, nil)
		} else {
			l.emit(Assign, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(LessEqual, nil)
		} else {
			l.emit(Less, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(GreaterEqual, nil)
		} else {
			l.emit(Greater, nil)
		}
	case '"':
		l.quoted('"', String, "string")
	case '\'':
		l.quoted('\'', Variable, "quoted variable")
	case '#':
		l.bigNumber()
	default:
		switch {
		case isDigit(r):
			l.number(r)
		case isIdentStart(r):
			l.identifier()
		default:
			l.fail("unexpected character %q", r)
		}
	}
}

// quoted scans text up to the closing delimiter. There are no escapes.
func (l *lexer) quoted(delim rune, k Kind, what string) {
	from := l.cur
	for !l.atEnd() && l.peek() != delim {
		l.advance()
	}
	if l.atEnd() {
		l.fail("unterminated %s", what)
		return
	}
	text := string(l.src[from:l.cur])
	l.advance()
	if k == Variable && text == "" {
		l.fail("empty quoted variable")
		return
	}
	l.emit(k, text)
}

func (l *lexer) identifier() {
	for isIdentContinue(l.peek()) && !l.atEnd() {
		l.advance()
	}
	k, lit := word(string(l.src[l.start:l.cur]))
	l.emit(k, lit)
}

// groupedDigits scans the rest of a run of decimal digits that began at
// from. Underscores may separate groups of exactly three digits. The
// digits are returned with separators removed.
func (l *lexer) groupedDigits(from int) (string, bool) {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() != '_' {
		return string(l.src[from:l.cur]), true
	}
	if l.cur-from > 3 {
		l.fail("digit group %q before a separator is longer than three digits", string(l.src[from:l.cur]))
		return "", false
	}
	for l.peek() == '_' {
		l.advance()
		n := 0
		for isDigit(l.peek()) {
			l.advance()
			n++
		}
		if n != 3 {
			l.fail("digit separators must be followed by exactly three digits")
			return "", false
		}
	}
	return strings.ReplaceAll(string(l.src[from:l.cur]), "_", ""), true
}

func (l *lexer) safeInt(digits string, base int) (int64, bool) {
	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil || v > MaxSafeInteger {
		l.fail("integer %s exceeds the safe integer range", string(l.src[l.start:l.cur]))
		return 0, false
	}
	return v, true
}

func (l *lexer) exponentAhead() bool {
	if l.peek() != 'E' {
		return false
	}
	next := l.peekAt(1)
	if next == '+' || next == '-' {
		return isDigit(l.peekAt(2))
	}
	return isDigit(next)
}

// number scans a numeric literal whose first digit has been consumed.
func (l *lexer) number(first rune) {
	if first == '0' {
		base := 0
		switch l.peek() {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			l.advance()
			from := l.cur
			for digitValue(l.peek()) < base {
				l.advance()
			}
			if l.cur == from {
				l.fail("missing digits after %q", string(l.src[l.start:l.cur]))
				return
			}
			if v, ok := l.safeInt(string(l.src[from:l.cur]), base); ok {
				l.emit(Int, v)
			}
			return
		}
	}

	digits, ok := l.groupedDigits(l.start)
	if !ok {
		return
	}
	switch {
	case l.peek() == '.' && isDigit(l.peekAt(1)):
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
		if l.exponentAhead() {
			l.exponent()
			l.real(Scientific)
			return
		}
		l.real(Float)
	case l.exponentAhead():
		l.exponent()
		l.real(Scientific)
	case l.peek() == '|' && isDigit(l.peekAt(1)):
		n, ok := l.safeInt(digits, 10)
		if !ok {
			return
		}
		l.advance()
		from := l.cur
		den, ok := l.groupedDigits(from)
		if !ok {
			return
		}
		d, ok := l.safeInt(den, 10)
		if !ok {
			return
		}
		l.emit(Fraction, Ratio{N: n, D: d})
	default:
		if v, ok := l.safeInt(digits, 10); ok {
			l.emit(Int, v)
		}
	}
}

func (l *lexer) exponent() {
	l.advance()
	if l.peek() == '+' || l.peek() == '-' {
		l.advance()
	}
	for isDigit(l.peek()) {
		l.advance()
	}
}

func (l *lexer) real(k Kind) {
	text := strings.ReplaceAll(string(l.src[l.start:l.cur]), "_", "")
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		l.fail("malformed number %s", text)
		return
	}
	l.emit(k, v)
}

// bigNumber scans #digits or #digits|digits. The digits are kept as
// text.
func (l *lexer) bigNumber() {
	if !isDigit(l.peek()) {
		l.fail("expected digits after '#'")
		return
	}
	from := l.cur
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '|' && isDigit(l.peekAt(1)) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
		l.emit(BigFraction, string(l.src[from:l.cur]))
		return
	}
	l.emit(BigNumber, string(l.src[from:l.cur]))
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return 99
}
