// Package diag holds the error values shared by every stage of the
// algebra pipeline.
package diag

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	Lexical Kind = iota
	Syntax
	Type
	Algebraic
)

// Sentinel errors, one per Kind. An *Error unwraps to the sentinel of
// its Kind.
var (
	ErrLexical   = errors.New("lexical-error")
	ErrSyntax    = errors.New("syntax-error")
	ErrType      = errors.New("type-error")
	ErrAlgebraic = errors.New("algebraic-error")
)

// String names the kind as it appears in reports.
func (k Kind) String() string {
	return k.sentinel().Error()
}

func (k Kind) sentinel() error {
	switch k {
	case Lexical:
		return ErrLexical
	case Syntax:
		return ErrSyntax
	case Type:
		return ErrType
	default:
		return ErrAlgebraic
	}
}

// Phase names used by the pipeline stages.
const (
	PhaseLexing     = "lexing"
	PhaseParsing    = "parsing"
	PhaseConverting = "converting to algebraic form"
	PhaseEvaluating = "evaluating"
)

// Error is a positioned diagnostic.
type Error struct {
	Kind   Kind
	Phase  string
	Msg    string
	Line   int
	Column int
}

// Errorf builds an Error with a formatted message.
func Errorf(kind Kind, phase string, line, column int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:   kind,
		Phase:  phase,
		Msg:    fmt.Sprintf(format, args...),
		Line:   line,
		Column: column,
	}
}

// Report formats the error for display to a user.
func (e *Error) Report() string {
	return fmt.Sprintf("While %s, a %v occurred on line %d, column %d: “%s”", e.Phase, e.Kind, e.Line, e.Column, e.Msg)
}

func (e *Error) Error() string {
	return e.Report()
}

// Unwrap exposes the sentinel for e.Kind.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}
