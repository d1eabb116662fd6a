// File: nodes.go
// Title: Expression AST Node Definitions
// Description: Defines the AST node types for representing parsed infix
//              expressions. The expression model is a closed sum type with
//              exactly two shapes: atoms (leaves) and binary operations.
//              Provides string representations and validation methods.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-27
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-27 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a string representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic validation of the node
	Validate() error
}

// Position represents a position in the source input
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// Expr represents the base interface for all expressions. The concrete
// shapes are exactly Atom and BinaryExpr; the marker method keeps the
// variant closed.
type Expr interface {
	Node
	exprNode() // marker method
}

// Atom represents a leaf operand: an integer literal or an identifier.
// It holds the originating token text verbatim.
type Atom struct {
	Value string   // Token text (e.g. "42", "price")
	Pos   Position // Source position
}

// BinaryExpr represents a binary operation with exactly two ordered
// operands. No unary or n-ary nodes exist in this model.
type BinaryExpr struct {
	Op    string   // Operator text (e.g. "+", "*")
	Left  Expr     // Left operand
	Right Expr     // Right operand
	Pos   Position // Source position (of the operator)
}

// Implementation of Expr interface for Atom

func (a *Atom) String() string {
	return a.Value
}

func (a *Atom) Accept(visitor Visitor) interface{} {
	return visitor.VisitAtom(a)
}

func (a *Atom) Position() Position {
	return a.Pos
}

func (a *Atom) Validate() error {
	if strings.TrimSpace(a.Value) == "" {
		return fmt.Errorf("atom value is required")
	}
	return nil
}

func (a *Atom) exprNode() {}

// Implementation of Expr interface for BinaryExpr

func (be *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", be.Left.String(), be.Op, be.Right.String())
}

func (be *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpr(be)
}

func (be *BinaryExpr) Position() Position {
	return be.Pos
}

func (be *BinaryExpr) Validate() error {
	if strings.TrimSpace(be.Op) == "" {
		return fmt.Errorf("operator is required")
	}
	if be.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if be.Right == nil {
		return fmt.Errorf("right operand is required")
	}

	if err := be.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := be.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	return nil
}

func (be *BinaryExpr) exprNode() {}

// Depth returns the operator-nesting depth of the expression. An atom
// has depth 0.
func Depth(expr Expr) int {
	be, ok := expr.(*BinaryExpr)
	if !ok {
		return 0
	}

	left := Depth(be.Left)
	right := Depth(be.Right)
	if right > left {
		left = right
	}
	return left + 1
}
