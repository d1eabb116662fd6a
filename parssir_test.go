// File: parssir_test.go
// Title: Parssir Engine Unit Tests
// Description: Unit tests for the engine facade. Tests cover option
//              defaulting, parsing through the engine, error wrapping,
//              tokenization, validation, and the package-level
//              convenience functions.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-28 v0.1.0: Initial test suite

package parssir

import (
	"errors"
	"strings"
	"testing"

	"github.com/SatinWukerORIG/parssir/ast"
	"github.com/SatinWukerORIG/parssir/parser"
)

func TestNewEngine_Defaults(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	if engine.options.MaxInputLength != 4096 {
		t.Errorf("expected default max input length 4096, got %d", engine.options.MaxInputLength)
	}
	if engine.options.MaxDepth != 1000 {
		t.Errorf("expected default max depth 1000, got %d", engine.options.MaxDepth)
	}
	if engine.options.DisableGrouping {
		t.Error("expected grouping enabled by default")
	}
}

func TestNewEngine_CustomOptions(t *testing.T) {
	engine, err := NewEngine(Options{
		MaxInputLength: 128,
		MaxDepth:       8,
	})
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	if engine.options.MaxInputLength != 128 {
		t.Errorf("expected max input length 128, got %d", engine.options.MaxInputLength)
	}
	if engine.options.MaxDepth != 8 {
		t.Errorf("expected max depth 8, got %d", engine.options.MaxDepth)
	}
}

func TestEngine_Parse(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	tests := []struct {
		name      string
		input     string
		wantInfix string
	}{
		{"Precedence", "1 + 2 * 3", "(1 + (2 * 3))"},
		{"Left associativity", "10 - 4 - 3", "((10 - 4) - 3)"},
		{"Grouping", "(1 + 2) * 3", "((1 + 2) * 3)"},
		{"Identifiers", "net + tax", "(net + tax)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := engine.Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ast.Infix(expr); got != tt.wantInfix {
				t.Errorf("expected %q, got %q", tt.wantInfix, got)
			}
		})
	}
}

func TestEngine_ParseEmpty(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	expr, err := engine.Parse("   ")
	if err != nil {
		t.Fatalf("expected empty result, got error: %v", err)
	}
	if expr != nil {
		t.Errorf("expected nil expression, got %v", expr)
	}
}

func TestEngine_ParseErrorWrapping(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	_, err = engine.Parse("1 +")
	if err == nil {
		t.Fatal("expected error")
	}

	var engineErr *Error
	if !errors.As(err, &engineErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if engineErr.Input() != "1 +" {
		t.Errorf("expected input %q, got %q", "1 +", engineErr.Input())
	}

	// The typed parse error is reachable through the wrapper
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected wrapped *parser.ParseError, got %v", err)
	}
	if perr.Kind != parser.ErrMissingOperand {
		t.Errorf("expected kind %s, got %s", parser.ErrMissingOperand, perr.Kind)
	}
}

func TestEngine_DisableGrouping(t *testing.T) {
	engine, err := NewEngine(Options{DisableGrouping: true})
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	_, err = engine.Parse("(1 + 2) * 3")
	if err == nil {
		t.Fatal("expected error with grouping disabled")
	}

	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected wrapped *parser.ParseError, got %T", err)
	}
	if perr.Kind != parser.ErrOperatorAtStart {
		t.Errorf("expected kind %s, got %s", parser.ErrOperatorAtStart, perr.Kind)
	}
}

func TestEngine_Tokenize(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	tokens, err := engine.Tokenize("a and not b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tokens) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(tokens))
	}
	if tokens[len(tokens)-1].Type != parser.TokenEOF {
		t.Error("expected terminal EOF token")
	}
	if tokens[1].Type != parser.TokenOperator || tokens[1].Value != "and" {
		t.Errorf("expected operator 'and', got %s", tokens[1])
	}
}

func TestEngine_TokenizeTooLong(t *testing.T) {
	engine, err := NewEngine(Options{MaxInputLength: 8})
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	_, err = engine.Tokenize(strings.Repeat("1 + ", 10) + "1")
	if err == nil {
		t.Fatal("expected length error")
	}
}

func TestEngine_Validate(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	if err := engine.Validate("1 + 2 * (3 - 4)"); err != nil {
		t.Errorf("unexpected error for valid input: %v", err)
	}
	if err := engine.Validate("1 2"); err == nil {
		t.Error("expected error for adjacent atoms")
	}
}

func TestParseConvenience(t *testing.T) {
	expr, err := Parse("2 * 3 + 4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ast.Infix(expr); got != "((2 * 3) + 4)" {
		t.Errorf("expected %q, got %q", "((2 * 3) + 4)", got)
	}
}

func TestTokenizeConvenience(t *testing.T) {
	tokens, err := Tokenize("x >= 10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 4 {
		t.Errorf("expected 4 tokens, got %d", len(tokens))
	}
}
