package calc

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"

	"zappem.net/pub/math/canon/diag"
)

func TestSimplify(t *testing.T) {
	vs := []struct {
		src, want string
	}{
		{src: "2 + 3", want: "5"},
		{src: "x + x", want: "2 * x"},
		{src: "let a = 2b; a + b", want: "a = 2 * b\n3 * b"},
		{src: "x = 3; x^2", want: "x = 3\n9"},
		{src: "print y y", want: "y^2"},
		{src: "let 'ab' = 1|2; 'ab' + 'ab'", want: "'ab' = 1 / 2\n1"},
		{src: "(x + 1)^2 / (x + 1)", want: "1 + x"},
		{src: "", want: ""},
		{src: "let b = a; let a = 2; b", want: "b = a\na = 2\n2"},
		{src: "let c = b + 1; let b = 2a; let a = 3; c", want: "c = 1 + b\nb = 2 * a\na = 3\n7"},
		{src: "let x = x + 1; x", want: "x = 1 + x\n2 + x"},
		{src: "30!", want: "265252859812191058636308480000000"},
	}
	for i, v := range vs {
		got, err := Simplify(v.src)
		if err != nil {
			t.Errorf("[%d] %q failed: %v", i, v.src, err)
			continue
		}
		if got != v.want {
			t.Errorf("[%d] %q got=%q want=%q", i, v.src, got, v.want)
		}
	}
}

func TestSession(t *testing.T) {
	s := NewSession(Options{})
	if _, err := s.Eval("let b = 1; let a = b + 1"); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if got, want := fmt.Sprint(s.Bindings()), "[a = 2 b = 1]"; got != want {
		t.Errorf("got=%q want=%q", got, want)
	}
	if got, err := s.Eval("a b"); err != nil || fmt.Sprint(got) != "[2]" {
		t.Errorf("got=%q,%v want [2]", got, err)
	}

	s.Unset("b")
	if _, ok := s.Lookup("b"); ok {
		t.Error("b is still bound")
	}
	if got, err := s.Eval("a b"); err != nil || fmt.Sprint(got) != "[2 * b]" {
		t.Errorf("got=%q,%v want [2 * b]", got, err)
	}

	s.Clear()
	if got := s.Bindings(); len(got) != 0 {
		t.Errorf("bindings survived Clear: %q", got)
	}
	if got, err := s.Eval("a"); err != nil || fmt.Sprint(got) != "[a]" {
		t.Errorf("got=%q,%v want [a]", got, err)
	}
}

func TestErrors(t *testing.T) {
	vs := []struct {
		src   string
		want  error
		phase string
	}{
		{src: "x @ y", want: diag.ErrLexical, phase: diag.PhaseLexing},
		{src: "2 +", want: diag.ErrSyntax, phase: diag.PhaseParsing},
		{src: "(1, 2)", want: diag.ErrAlgebraic, phase: diag.PhaseConverting},
		{src: "a < b", want: diag.ErrAlgebraic, phase: diag.PhaseConverting},
		{src: "fn f(x) = x", want: diag.ErrAlgebraic, phase: diag.PhaseEvaluating},
		{src: "while x { x }", want: diag.ErrAlgebraic, phase: diag.PhaseEvaluating},
	}
	for i, v := range vs {
		_, err := Simplify(v.src)
		if !errors.Is(err, v.want) {
			t.Errorf("[%d] %q: got=%v want=%v", i, v.src, err, v.want)
			continue
		}
		var d *diag.Error
		if !errors.As(err, &d) || d.Phase != v.phase {
			t.Errorf("[%d] %q: got=%v want phase %q", i, v.src, err, v.phase)
		}
	}

	_, err := Simplify("2 +")
	var d *diag.Error
	if !errors.As(err, &d) {
		t.Fatalf("got %T, want *diag.Error", err)
	}
	want := "While parsing, a syntax-error occurred on line 1, column 4: “expected an expression but found end of input”"
	if got := d.Report(); got != want {
		t.Errorf("got=%q want=%q", got, want)
	}
}

func TestPartialBindings(t *testing.T) {
	s := NewSession(Options{})
	out, err := s.Eval("let a = 1; let b = (1, 2); let c = 3")
	if err == nil {
		t.Fatal("tuple binding succeeded")
	}
	if got, want := fmt.Sprint(out), "[a = 1]"; got != want {
		t.Errorf("got=%q want=%q", got, want)
	}
	if _, ok := s.Lookup("a"); !ok {
		t.Error("a was not kept")
	}
	if _, ok := s.Lookup("c"); ok {
		t.Error("c was bound after the error")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(Options{Logger: log.New(&buf, "", 0)})
	if _, err := s.Eval("x @ y"); err == nil {
		t.Fatal("bad input accepted")
	}
	if buf.Len() != 0 {
		t.Errorf("lexical error was traced: %q", buf.String())
	}
	if _, err := s.Eval("2 + 3"); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	for _, want := range []string{"lexed 4 tokens", "statement: 2 + 3", "simplified: 5"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("trace %q lacks %q", buf.String(), want)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	src := strings.Repeat("(", 20) + "x" + strings.Repeat(")", 20)
	if _, err := NewSession(Options{MaxDepth: 5}).Eval(src); !errors.Is(err, diag.ErrSyntax) {
		t.Errorf("got=%v, want a nesting error", err)
	}
	if got, err := NewSession(Options{}).Eval(src); err != nil || fmt.Sprint(got) != "[x]" {
		t.Errorf("got=%q,%v want [x]", got, err)
	}
}
