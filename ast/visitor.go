// File: visitor.go
// Title: Expression AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              expression AST nodes. Provides the base visitor interface and
//              common visitor implementations for rendering, validation, and
//              node collection.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-27
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-27 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitAtom(atom *Atom) interface{}
	VisitBinaryExpr(expr *BinaryExpr) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitAtom(atom *Atom) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	if expr.Left != nil {
		expr.Left.Accept(bv)
	}
	if expr.Right != nil {
		expr.Right.Accept(bv)
	}
	return nil
}

// StringVisitor creates an indented tree representation of the AST
type StringVisitor struct {
	buffer strings.Builder
	indent int
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the built string representation
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the internal buffer
func (sv *StringVisitor) Reset() {
	sv.buffer.Reset()
	sv.indent = 0
}

func (sv *StringVisitor) writeIndent() {
	for i := 0; i < sv.indent; i++ {
		sv.buffer.WriteString("  ")
	}
}

func (sv *StringVisitor) VisitAtom(atom *Atom) interface{} {
	sv.writeIndent()
	sv.buffer.WriteString(fmt.Sprintf("Atom: %s\n", atom.Value))
	return nil
}

func (sv *StringVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	sv.writeIndent()
	sv.buffer.WriteString(fmt.Sprintf("Binary: %s\n", expr.Op))
	sv.indent++

	sv.writeIndent()
	sv.buffer.WriteString("Left:\n")
	sv.indent++
	expr.Left.Accept(sv)
	sv.indent--

	sv.writeIndent()
	sv.buffer.WriteString("Right:\n")
	sv.indent++
	expr.Right.Accept(sv)
	sv.indent--

	sv.indent--
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) addError(err error) {
	vv.errors = append(vv.errors, err)
}

func (vv *ValidationVisitor) VisitAtom(atom *Atom) interface{} {
	if err := atom.Validate(); err != nil {
		vv.addError(fmt.Errorf("atom validation failed: %w", err))
	}

	return vv.BaseVisitor.VisitAtom(atom)
}

func (vv *ValidationVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	if strings.TrimSpace(expr.Op) == "" {
		vv.addError(fmt.Errorf("binary expression validation failed: operator is required"))
	}
	if expr.Left == nil || expr.Right == nil {
		vv.addError(fmt.Errorf("binary expression validation failed: two operands are required"))
		return nil
	}

	expr.Left.Accept(vv)
	expr.Right.Accept(vv)
	return nil
}

// CollectorVisitor collects specific types of nodes from the AST
type CollectorVisitor struct {
	BaseVisitor
	Atoms     []*Atom
	Operators []string
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Atoms:     make([]*Atom, 0),
		Operators: make([]string, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Atoms = cv.Atoms[:0]
	cv.Operators = cv.Operators[:0]
}

func (cv *CollectorVisitor) VisitAtom(atom *Atom) interface{} {
	cv.Atoms = append(cv.Atoms, atom)
	return nil
}

func (cv *CollectorVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	// Left-to-right source order: left subtree, operator, right subtree
	if expr.Left != nil {
		expr.Left.Accept(cv)
	}
	cv.Operators = append(cv.Operators, expr.Op)
	if expr.Right != nil {
		expr.Right.Accept(cv)
	}
	return nil
}

// Utility functions for working with visitors

// ValidateAST validates an AST node and returns any validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// ASTToString converts an AST node to an indented tree string
func ASTToString(node Node) string {
	visitor := NewStringVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// CollectNodes collects atoms and operators from an AST in source order
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}
