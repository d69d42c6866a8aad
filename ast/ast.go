// Package ast defines the syntax tree produced by the parser.
package ast

import (
	"math/big"

	"zappem.net/pub/math/canon/lex"
)

// Pos locates a node in the source.
type Pos struct {
	Line, Column int
}

// PosOf returns the position of a token.
func PosOf(t lex.Token) Pos {
	return Pos{Line: t.Line, Column: t.Column}
}

// Position returns p, so that every node embedding Pos satisfies Node.
func (p Pos) Position() Pos { return p }

// Node is implemented by every expression and statement.
type Node interface {
	Position() Pos
}

// Expr is an expression node.
type Expr interface {
	Node
	exprTag()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtTag()
}

// IntegerLit is an integer literal.
type IntegerLit struct {
	Pos
	Value *big.Int
}

// FloatLit is a decimal or scientific literal. Text keeps the source
// spelling.
type FloatLit struct {
	Pos
	Text  string
	Value float64
}

// RationalLit is an exact fraction written N|D.
type RationalLit struct {
	Pos
	N, D *big.Int
}

// BigNumberLit is a #digits literal.
type BigNumberLit struct {
	Pos
	Digits string
}

// BigRationalLit is a #digits|digits literal.
type BigRationalLit struct {
	Pos
	Digits string
}

// BoolLit is true or false.
type BoolLit struct {
	Pos
	Value bool
}

// StringLit is a double quoted string.
type StringLit struct {
	Pos
	Value string
}

// NilLit is nil.
type NilLit struct {
	Pos
}

// NumericConstant is a named constant such as pi.
type NumericConstant struct {
	Pos
	Sym   string
	Value float64
}

// Variable references a name.
type Variable struct {
	Pos
	Name string
}

// Assign is name = value.
type Assign struct {
	Pos
	Name  string
	Value Expr
}

// AlgebraicBinary is an arithmetic infix operation. Op is one of
// lex.Plus, Minus, Star, Slash, Caret, Rem, Mod or Div.
type AlgebraicBinary struct {
	Pos
	Left  Expr
	Op    lex.Kind
	Right Expr
}

// AlgebraicUnary is prefix + or -, or postfix ! (factorial).
type AlgebraicUnary struct {
	Pos
	Op  lex.Kind
	Arg Expr
}

// LogicalBinary is and, or, nand, nor, xor or xnor.
type LogicalBinary struct {
	Pos
	Left  Expr
	Op    lex.Kind
	Right Expr
}

// LogicalUnary is not.
type LogicalUnary struct {
	Pos
	Op  lex.Kind
	Arg Expr
}

// Relational is a comparison.
type Relational struct {
	Pos
	Left  Expr
	Op    lex.Kind
	Right Expr
}

// Call applies a user defined callee.
type Call struct {
	Pos
	Callee Expr
	Args   []Expr
}

// NativeCall applies a builtin function.
type NativeCall struct {
	Pos
	Name string
	Kind lex.Kind
	Args []Expr
}

// Group is a parenthesized expression.
type Group struct {
	Pos
	Inner Expr
}

// Tuple is a parenthesized, comma separated list.
type Tuple struct {
	Pos
	Elements []Expr
}

func (*IntegerLit) exprTag()      {}
func (*FloatLit) exprTag()        {}
func (*RationalLit) exprTag()     {}
func (*BigNumberLit) exprTag()    {}
func (*BigRationalLit) exprTag()  {}
func (*BoolLit) exprTag()         {}
func (*StringLit) exprTag()       {}
func (*NilLit) exprTag()          {}
func (*NumericConstant) exprTag() {}
func (*Variable) exprTag()        {}
func (*Assign) exprTag()          {}
func (*AlgebraicBinary) exprTag() {}
func (*AlgebraicUnary) exprTag()  {}
func (*LogicalBinary) exprTag()   {}
func (*LogicalUnary) exprTag()    {}
func (*Relational) exprTag()      {}
func (*Call) exprTag()            {}
func (*NativeCall) exprTag()      {}
func (*Group) exprTag()           {}
func (*Tuple) exprTag()           {}

// Block is a braced statement list.
type Block struct {
	Pos
	Stmts []Stmt
}

// ExprStmt evaluates an expression.
type ExprStmt struct {
	Pos
	X Expr
}

// FnDecl declares a function. A body written "= expr" is stored as a
// block returning expr.
type FnDecl struct {
	Pos
	Name   string
	Params []string
	Body   *Block
}

// If is a conditional. Else is nil, a *Block or an *If.
type If struct {
	Pos
	Cond Expr
	Then *Block
	Else Stmt
}

// Print outputs an expression.
type Print struct {
	Pos
	X Expr
}

// Return leaves a function. Value may be nil.
type Return struct {
	Pos
	Value Expr
}

// Let binds a name.
type Let struct {
	Pos
	Name  string
	Value Expr
}

// While loops while Cond holds.
type While struct {
	Pos
	Cond Expr
	Body *Block
}

func (*Block) stmtTag()    {}
func (*ExprStmt) stmtTag() {}
func (*FnDecl) stmtTag()   {}
func (*If) stmtTag()       {}
func (*Print) stmtTag()    {}
func (*Return) stmtTag()   {}
func (*Let) stmtTag()      {}
func (*While) stmtTag()    {}
