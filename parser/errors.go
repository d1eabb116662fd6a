// File: errors.go
// Title: Parse Error Definitions
// Description: Defines the typed parse error and the closed set of error
//              kinds raised by the lexer and parser. Every failure mode
//              has a distinct kind so callers can classify errors without
//              matching on message text.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-27
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-27 v0.1.0: Initial error kind definitions

package parser

import (
	"fmt"
)

// ErrorKind classifies a parse failure
type ErrorKind int

const (
	// ErrUnknown is the zero value and never raised directly
	ErrUnknown ErrorKind = iota

	// ErrLex - input text matches neither the atom pattern nor the
	// operator vocabulary
	ErrLex

	// ErrOperatorAtStart - an expression begins with an operator token
	ErrOperatorAtStart

	// ErrAtomAdjacency - two atoms appear with no intervening operator
	ErrAtomAdjacency

	// ErrMissingOperand - an operator is followed immediately by the end
	// of input (or an empty group)
	ErrMissingOperand

	// ErrUnsupportedOperator - a recognized operator has no defined
	// binding power
	ErrUnsupportedOperator

	// ErrUnmatchedParen - a '(' without a matching ')' or vice versa
	ErrUnmatchedParen

	// ErrDepthExceeded - expression nesting exceeds Options.MaxDepth
	ErrDepthExceeded

	// ErrInputTooLong - input exceeds Options.MaxInputLength
	ErrInputTooLong
)

// String returns a string representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrLex:
		return "LEX_ERROR"
	case ErrOperatorAtStart:
		return "OPERATOR_AT_START"
	case ErrAtomAdjacency:
		return "ATOM_ADJACENCY"
	case ErrMissingOperand:
		return "MISSING_OPERAND"
	case ErrUnsupportedOperator:
		return "UNSUPPORTED_OPERATOR"
	case ErrUnmatchedParen:
		return "UNMATCHED_PARENTHESIS"
	case ErrDepthExceeded:
		return "DEPTH_EXCEEDED"
	case ErrInputTooLong:
		return "INPUT_TOO_LONG"
	default:
		return "UNKNOWN"
	}
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Kind     ErrorKind
	Message  string
	Position int
	Line     int
	Column   int
	Token    Token
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s [%s]",
		pe.Line, pe.Column, pe.Message, pe.Kind.String())
}
