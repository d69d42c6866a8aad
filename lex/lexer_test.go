package lex

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"zappem.net/pub/math/canon/diag"
)

func kinds(toks []Token) string {
	var ks []string
	for _, t := range toks {
		ks = append(ks, t.Kind.String())
	}
	return strings.Join(ks, " ")
}

func TestTokenizeKinds(t *testing.T) {
	vs := []struct {
		src, want string
	}{
		{src: "2 + 3", want: "integer + integer end of input"},
		{src: "", want: "end of input"},
		{src: "xy", want: "variable * variable end of input"},
		{src: "2xy", want: "integer * variable * variable end of input"},
		{src: "(x)(y)", want: "( variable ) * ( variable ) end of input"},
		{src: "2(x)", want: "integer * ( variable ) end of input"},
		{src: "(x)2", want: "( variable ) integer end of input"},
		{src: "x(y)", want: "variable ( variable ) end of input"},
		{src: "ab(x)", want: "variable ( variable ) end of input"},
		{src: "2sin(x)", want: "integer * unary function ( variable ) end of input"},
		{src: "2 pi", want: "integer * numeric constant end of input"},
		{src: "alpha beta", want: "variable * variable end of input"},
		{src: "x_1 y2", want: "variable * variable end of input"},
		{src: "'ab'", want: "variable end of input"},
		{src: "1|2", want: "fraction end of input"},
		{src: "2.5", want: "float end of input"},
		{src: "1.5E-3", want: "scientific number end of input"},
		{src: "2E10", want: "scientific number end of input"},
		{src: "1_000", want: "integer end of input"},
		{src: "0x1F", want: "integer end of input"},
		{src: "#123 #1|3", want: "big number big fraction end of input"},
		{src: "a <= b < c", want: "variable <= variable < variable end of input"},
		{src: "a > b >= c", want: "variable > variable >= variable end of input"},
		{src: "a != b == c", want: "variable != variable == variable end of input"},
		{src: "let f = 1;", want: "let variable = integer ; end of input"},
		{src: "x and not y", want: "variable and not variable end of input"},
		{src: "true nil", want: "boolean nil end of input"},
		{src: `"hi"`, want: "string end of input"},
		{src: "n!", want: "variable ! end of input"},
		{src: "7 rem 2 mod 3 div 4", want: "integer rem integer mod integer div integer end of input"},
		{src: "fn ab(x) { return x }", want: "fn variable ( variable ) { return variable } end of input"},
		{src: "max(a, b)", want: "binary function ( variable , variable ) end of input"},
	}
	for i, v := range vs {
		toks, err := Tokenize(v.src)
		if err != nil {
			t.Errorf("[%d] %q failed: %v", i, v.src, err)
			continue
		}
		if got := kinds(toks); got != v.want {
			t.Errorf("[%d] got=%q want=%q", i, got, v.want)
		}
	}
}

func TestTokenizeLiterals(t *testing.T) {
	vs := []struct {
		src string
		lit interface{}
	}{
		{src: "42", lit: int64(42)},
		{src: "1_000_000", lit: int64(1000000)},
		{src: "0x1F", lit: int64(31)},
		{src: "0o17", lit: int64(15)},
		{src: "0b101", lit: int64(5)},
		{src: "3|4", lit: Ratio{N: 3, D: 4}},
		{src: "2.5", lit: 2.5},
		{src: "1E3", lit: 1000.0},
		{src: "2.5E+1", lit: 25.0},
		{src: "'ab'", lit: "ab"},
		{src: `"a b"`, lit: "a b"},
		{src: "pi", lit: math.Pi},
		{src: "false", lit: false},
		{src: "#12|34", lit: "12|34"},
		{src: "theta", lit: "theta"},
	}
	for i, v := range vs {
		toks, err := Tokenize(v.src)
		if err != nil {
			t.Errorf("[%d] %q failed: %v", i, v.src, err)
			continue
		}
		if len(toks) != 2 {
			t.Errorf("[%d] %q gave %d tokens: %v", i, v.src, len(toks), toks)
			continue
		}
		if got := toks[0].Lit; !reflect.DeepEqual(got, v.lit) {
			t.Errorf("[%d] got=%#v want=%#v", i, got, v.lit)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := Tokenize("x +\n  yz")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	want := []struct {
		k         Kind
		line, col int
	}{
		{Variable, 1, 1},
		{Plus, 1, 3},
		{Variable, 2, 3},
		{Star, 2, 4},
		{Variable, 2, 4},
		{End, 2, 5},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		got := toks[i]
		if got.Kind != w.k || got.Line != w.line || got.Column != w.col {
			t.Errorf("[%d] got=%v want=%v at %d:%d", i, got, w.k, w.line, w.col)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	vs := []struct {
		src  string
		col  int
		want string
	}{
		{src: "1_00", col: 1, want: "exactly three digits"},
		{src: "1234_567", col: 1, want: "longer than three digits"},
		{src: "9007199254740992", col: 1, want: "safe integer range"},
		{src: "x + \"abc", col: 5, want: "unterminated string"},
		{src: "'ab", col: 1, want: "unterminated quoted variable"},
		{src: "''", col: 1, want: "empty quoted variable"},
		{src: "x @ y", col: 3, want: "unexpected character"},
		{src: "#x", col: 1, want: "expected digits"},
		{src: "0x", col: 1, want: "missing digits"},
	}
	for i, v := range vs {
		toks, err := Tokenize(v.src)
		if err == nil {
			t.Errorf("[%d] %q gave %v, want an error", i, v.src, toks)
			continue
		}
		if !errors.Is(err, diag.ErrLexical) {
			t.Errorf("[%d] %q: got=%v, want a lexical error", i, v.src, err)
		}
		var d *diag.Error
		if !errors.As(err, &d) {
			t.Errorf("[%d] %q: %T is not a *diag.Error", i, v.src, err)
			continue
		}
		if d.Line != 1 || d.Column != v.col {
			t.Errorf("[%d] %q: got=%d:%d want=1:%d", i, v.src, d.Line, d.Column, v.col)
		}
		if !strings.Contains(d.Msg, v.want) {
			t.Errorf("[%d] got=%q want=%q", i, d.Msg, v.want)
		}
	}
}

func TestPlainName(t *testing.T) {
	vs := []struct {
		name string
		want bool
	}{
		{"x", true},
		{"x_1", true},
		{"theta", true},
		{"ab", false},
		{"let", false},
		{"pi", false},
		{"sin", false},
		{"1x", false},
		{"", false},
	}
	for i, v := range vs {
		if got := PlainName(v.name); got != v.want {
			t.Errorf("[%d] PlainName(%q) got=%v want=%v", i, v.name, got, v.want)
		}
	}
}
