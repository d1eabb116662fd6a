// File: doc.go
// Title: Expression AST Package Documentation
// Description: Defines the Abstract Syntax Tree nodes and structures for
//              representing parsed infix expressions. Provides visitor
//              patterns and rendering utilities.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-27
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-27 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for parsed infix
expressions.

The expression model is a closed sum type with exactly two shapes:

  • Atom — a leaf operand holding the originating token text
  • BinaryExpr — an operator with exactly two ordered operands

Trees are finite, immutable once built, and owned solely by the caller of
the parse that produced them. The package additionally provides:

  • Visitor pattern for tree traversal and analysis
  • Indented tree rendering (ASTToString)
  • Fully parenthesized infix rendering (Infix)
  • Structural validation (ValidateAST)
*/
package ast
