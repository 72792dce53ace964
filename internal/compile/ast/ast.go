// Package ast declares the syntax tree produced by the expression parser.
//
// An expression is either a *Literal leaf or a *BinaryExpr with exactly two
// operands. No other type implements Expr.
package ast

import "codeberg.org/rileyq/climb/internal/compile/token"

type Node interface {
	Pos() token.Pos
	End() token.Pos

	astNode()
}

type Expr interface {
	Node

	astExpr()
}

type Literal struct {
	ValuePos token.Pos
	Value    string
}

func (expr *Literal) Pos() token.Pos { return expr.ValuePos }
func (expr *Literal) End() token.Pos { return expr.ValuePos }

func (*Literal) astNode() {}
func (*Literal) astExpr() {}

type BinaryExpr struct {
	Left  Expr
	OpPos token.Pos
	Op    token.Operator
	Right Expr
}

func (expr *BinaryExpr) Pos() token.Pos { return expr.Left.Pos() }
func (expr *BinaryExpr) End() token.Pos { return expr.Right.End() }

func (*BinaryExpr) astNode() {}
func (*BinaryExpr) astExpr() {}
