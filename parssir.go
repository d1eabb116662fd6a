// File: parssir.go
// Title: Parssir Engine Interface
// Description: Provides the main engine interface and high-level API for
//              turning infix expression strings into binary expression
//              trees. Integrates the lexer, token stream, and
//              precedence-climbing parser behind a single entry point.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-27
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-27 v0.1.0: Initial engine implementation

package parssir

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/SatinWukerORIG/parssir/ast"
	"github.com/SatinWukerORIG/parssir/parser"
)

// Engine coordinates tokenization and tree building for expression input
type Engine struct {
	parser  *parser.Parser
	logger  *zap.Logger
	options Options
}

// Options configures the engine behavior
type Options struct {
	// Logger for parse operations (optional, defaults to a no-op logger)
	Logger *zap.Logger

	// MaxInputLength limits expression input length (default: 4096)
	MaxInputLength int

	// MaxDepth limits operator nesting depth (default: 1000)
	MaxDepth int

	// DisableGrouping turns off parenthesized sub-expressions. When set,
	// '(' and ')' remain tokenized but have no structural meaning and
	// are rejected at parse time.
	DisableGrouping bool
}

// Error represents an engine-level error with the offending input
type Error struct {
	Err   error
	input string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "expression error"
}

// Unwrap exposes the underlying error so errors.As reaches the
// *parser.ParseError
func (e *Error) Unwrap() error {
	return e.Err
}

// Input returns the expression input that failed
func (e *Error) Input() string {
	return e.input
}

// NewEngine creates a new expression engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	// Default options
	options := Options{
		Logger:         zap.NewNop(),
		MaxInputLength: 4096,
		MaxDepth:       1000,
	}

	// Apply provided options
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxInputLength > 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
		if provided.MaxDepth > 0 {
			options.MaxDepth = provided.MaxDepth
		}
		options.DisableGrouping = provided.DisableGrouping
	}

	logger := options.Logger.With(zap.String("component", "parssir-engine"))

	p, err := parser.New(parser.Options{
		Logger:         options.Logger,
		MaxInputLength: options.MaxInputLength,
		MaxDepth:       options.MaxDepth,
		EnableGrouping: !options.DisableGrouping,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize expression parser: %w", err)
	}

	engine := &Engine{
		parser:  p,
		logger:  logger,
		options: options,
	}

	logger.Debug("expression engine initialized",
		zap.Int("maxInputLength", options.MaxInputLength),
		zap.Int("maxDepth", options.MaxDepth),
		zap.Bool("grouping", !options.DisableGrouping))

	return engine, nil
}

// Parse parses an expression string into a binary expression tree. An
// empty or whitespace-only input yields (nil, nil). The returned tree is
// owned solely by the caller; no state persists between calls.
func (e *Engine) Parse(input string) (ast.Expr, error) {
	expr, err := e.parser.Parse(input)
	if err != nil {
		return nil, e.wrapParseError(err, input)
	}
	return expr, nil
}

// Tokenize scans an expression string into its classified token
// sequence without building a tree. The sequence is EOF-terminated.
func (e *Engine) Tokenize(input string) ([]parser.Token, error) {
	if len(input) > e.options.MaxInputLength {
		return nil, &Error{
			Err:   fmt.Errorf("input exceeds maximum length: %d > %d", len(input), e.options.MaxInputLength),
			input: input,
		}
	}

	tokens, err := parser.TokenizeInput(input)
	if err != nil {
		return tokens, e.wrapParseError(err, input)
	}
	return tokens, nil
}

// Validate checks whether an expression is syntactically valid
func (e *Engine) Validate(input string) error {
	_, err := e.Parse(input)
	return err
}

// wrapParseError wraps parser errors with the offending input
func (e *Engine) wrapParseError(err error, input string) error {
	if engineErr, ok := err.(*Error); ok {
		return engineErr
	}

	return &Error{
		Err:   fmt.Errorf("failed to parse expression: %w", err),
		input: input,
	}
}

// Parse is a convenience function that parses an expression with default
// engine options.
func Parse(input string) (ast.Expr, error) {
	engine, err := NewEngine()
	if err != nil {
		return nil, err
	}
	return engine.Parse(input)
}

// Tokenize is a convenience function that tokenizes an expression with
// default engine options.
func Tokenize(input string) ([]parser.Token, error) {
	engine, err := NewEngine()
	if err != nil {
		return nil, err
	}
	return engine.Tokenize(input)
}
