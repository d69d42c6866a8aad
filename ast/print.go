package ast

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"zappem.net/pub/math/canon/lex"
)

// Source renders an expression as source text. Groups print as
// parentheses and nothing else is added, so the parser's output for
// canonically spaced input prints back unchanged.
func Source(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

// StmtSource renders a statement as source text.
func StmtSource(s Stmt) string {
	var b strings.Builder
	writeStmt(&b, s)
	return b.String()
}

// name quotes a variable name that would not lex back as one symbol.
func name(s string) string {
	if lex.PlainName(s) {
		return s
	}
	return "'" + s + "'"
}

func writeList(b *strings.Builder, es []Expr) {
	for i, e := range es {
		if i > 0 {
			b.WriteString(", ")
		}
		writeExpr(b, e)
	}
}

func writeInfix(b *strings.Builder, l Expr, op lex.Kind, r Expr) {
	writeExpr(b, l)
	if op == lex.Caret {
		b.WriteString("^")
	} else {
		b.WriteString(" " + op.String() + " ")
	}
	writeExpr(b, r)
}

func writeExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *IntegerLit:
		b.WriteString(n.Value.String())
	case *FloatLit:
		if n.Text != "" {
			b.WriteString(n.Text)
		} else {
			b.WriteString(strconv.FormatFloat(n.Value, 'G', -1, 64))
		}
	case *RationalLit:
		b.WriteString(n.N.String() + "|" + n.D.String())
	case *BigNumberLit:
		b.WriteString("#" + n.Digits)
	case *BigRationalLit:
		b.WriteString("#" + n.Digits)
	case *BoolLit:
		b.WriteString(strconv.FormatBool(n.Value))
	case *StringLit:
		b.WriteString(`"` + n.Value + `"`)
	case *NilLit:
		b.WriteString("nil")
	case *NumericConstant:
		b.WriteString(n.Sym)
	case *Variable:
		b.WriteString(name(n.Name))
	case *Assign:
		b.WriteString(name(n.Name) + " = ")
		writeExpr(b, n.Value)
	case *AlgebraicBinary:
		writeInfix(b, n.Left, n.Op, n.Right)
	case *LogicalBinary:
		writeInfix(b, n.Left, n.Op, n.Right)
	case *Relational:
		writeInfix(b, n.Left, n.Op, n.Right)
	case *AlgebraicUnary:
		if n.Op == lex.Bang {
			writeExpr(b, n.Arg)
			b.WriteString("!")
			return
		}
		b.WriteString(n.Op.String())
		writeExpr(b, n.Arg)
	case *LogicalUnary:
		b.WriteString(n.Op.String() + " ")
		writeExpr(b, n.Arg)
	case *Call:
		writeExpr(b, n.Callee)
		b.WriteString("(")
		writeList(b, n.Args)
		b.WriteString(")")
	case *NativeCall:
		b.WriteString(n.Name + "(")
		writeList(b, n.Args)
		b.WriteString(")")
	case *Group:
		b.WriteString("(")
		writeExpr(b, n.Inner)
		b.WriteString(")")
	case *Tuple:
		b.WriteString("(")
		writeList(b, n.Elements)
		b.WriteString(")")
	default:
		b.WriteString("<?>")
	}
}

func writeStmt(b *strings.Builder, s Stmt) {
	switch n := s.(type) {
	case *Block:
		b.WriteString("{")
		for _, st := range n.Stmts {
			b.WriteString(" ")
			writeStmt(b, st)
			if _, ok := st.(*Block); !ok {
				b.WriteString(";")
			}
		}
		b.WriteString(" }")
	case *ExprStmt:
		writeExpr(b, n.X)
	case *FnDecl:
		params := lo.Map(n.Params, func(p string, _ int) string { return name(p) })
		b.WriteString("fn " + name(n.Name) + "(" + strings.Join(params, ", ") + ") ")
		writeStmt(b, n.Body)
	case *If:
		b.WriteString("if ")
		writeExpr(b, n.Cond)
		b.WriteString(" ")
		writeStmt(b, n.Then)
		if n.Else != nil {
			b.WriteString(" else ")
			writeStmt(b, n.Else)
		}
	case *Print:
		b.WriteString("print ")
		writeExpr(b, n.X)
	case *Return:
		b.WriteString("return")
		if n.Value != nil {
			b.WriteString(" ")
			writeExpr(b, n.Value)
		}
	case *Let:
		b.WriteString("let " + name(n.Name) + " = ")
		writeExpr(b, n.Value)
	case *While:
		b.WriteString("while ")
		writeExpr(b, n.Cond)
		b.WriteString(" ")
		writeStmt(b, n.Body)
	default:
		b.WriteString("<?>")
	}
}
