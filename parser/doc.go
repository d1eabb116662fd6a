// File: doc.go
// Title: Expression Parser Package Documentation
// Description: Implements the lexical analyzer and precedence-climbing
//              parser for infix arithmetic expressions. Converts expression
//              strings into binary expression trees with typed error
//              reporting and position information.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-27
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-27 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing for infix arithmetic
expressions.

The pipeline is strictly sequential: the lexer scans the input into an
EOF-terminated token sequence, and the parser consumes that sequence
through a lookahead-1 cursor (TokenStream), climbing operator precedence
to build a binary expression tree. It includes:

  • Byte-level lexer for the fixed operator vocabulary and integer or
    identifier atoms
  • Precedence climbing with a per-operator (left, right) binding-power
    table; the left/right gap encodes left associativity
  • Optional parenthesized grouping
  • Typed *ParseError failures with a closed ErrorKind set and exact
    positions

The parser builds trees without evaluating them; recognized operators
outside the binding-power table are rejected explicitly rather than given
guessed semantics.
*/
package parser
