// File: printer.go
// Title: Infix Expression Renderer
// Description: Renders expression trees back to infix text. Every binary
//              operation is wrapped in explicit parentheses so the output
//              re-parses and evaluates identically regardless of operator
//              precedence.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-28 v0.1.0: Initial infix renderer

package ast

import (
	"strings"
)

// Infix renders the expression as infix text with explicit parentheses
// around every binary operation. A nil expression renders as the empty
// string.
func Infix(expr Expr) string {
	var b strings.Builder
	writeInfix(&b, expr)
	return b.String()
}

func writeInfix(b *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *Atom:
		b.WriteString(e.Value)
	case *BinaryExpr:
		b.WriteByte('(')
		writeInfix(b, e.Left)
		b.WriteByte(' ')
		b.WriteString(e.Op)
		b.WriteByte(' ')
		writeInfix(b, e.Right)
		b.WriteByte(')')
	}
}
