// File: parser.go
// Title: Precedence-Climbing Expression Parser
// Description: Implements the tree-building phase of expression parsing.
//              Consumes token streams through a lookahead-1 cursor and
//              assembles binary expression trees using per-operator
//              binding powers to encode precedence and associativity.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-27
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-27 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/SatinWukerORIG/parssir/ast"
)

// bindingPower holds the left and right binding power of an infix
// operator. Higher numbers bind tighter; left < right encodes left
// associativity.
type bindingPower struct {
	left  int
	right int
}

// bindingPowers is the infix binding-power table. Operators in the
// vocabulary but absent here have no defined infix semantics and are
// rejected with ErrUnsupportedOperator. Never mutated after
// initialization.
var bindingPowers = map[string]bindingPower{
	"+": {10, 11},
	"-": {10, 11},
	"*": {20, 21},
	"/": {20, 21},
}

// InfixBindingPower returns the (left, right) binding power of op and
// whether op has defined infix semantics.
func InfixBindingPower(op string) (left, right int, ok bool) {
	bp, ok := bindingPowers[op]
	return bp.left, bp.right, ok
}

// Parser implements precedence climbing over a token stream
type Parser struct {
	stream  *TokenStream
	depth   int
	logger  *zap.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *zap.Logger
	MaxInputLength int
	MaxDepth       int
	EnableGrouping bool
}

// New creates a new expression parser with the given options
func New(opts Options) (*Parser, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = 4096
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = 1000
	}

	return &Parser{
		logger:  opts.Logger.With(zap.String("component", "expr-parser")),
		options: opts,
	}, nil
}

// Parse parses an expression string and returns the root of its binary
// expression tree. An empty or whitespace-only input yields (nil, nil):
// an empty result, not an error. All failures are *ParseError values
// raised at the point of detection; there is no partial-result recovery.
func (p *Parser) Parse(input string) (ast.Expr, error) {
	// Validate input length
	if len(input) > p.options.MaxInputLength {
		return nil, &ParseError{
			Kind:    ErrInputTooLong,
			Message: fmt.Sprintf("input exceeds maximum length: %d > %d", len(input), p.options.MaxInputLength),
			Line:    1,
			Column:  1,
		}
	}

	tokens, err := TokenizeInput(input)
	if err != nil {
		p.logger.Warn("expression tokenization failed",
			zap.String("input", input),
			zap.Error(err))
		return nil, err
	}

	p.stream = NewTokenStream(tokens)
	p.depth = 0

	p.logger.Debug("starting expression parse",
		zap.String("input", input),
		zap.Int("tokens", len(tokens)))

	expr, err := p.parseExpression(0)
	if err != nil {
		p.logger.Warn("expression parsing failed",
			zap.String("input", input),
			zap.Error(err))
		return nil, err
	}

	// Ensure all input has been consumed. The climbing loop leaves a
	// closing parenthesis for its opening call to consume, so a leftover
	// token here is a ')' that never had one.
	if trailing := p.stream.Peek(); trailing.Type != TokenEOF {
		return nil, p.errorAt(trailing, ErrUnmatchedParen,
			fmt.Sprintf("unmatched %q", trailing.Value))
	}

	p.logger.Debug("expression parse completed",
		zap.String("input", input),
		zap.Bool("empty", expr == nil))

	return expr, nil
}

// parseExpression parses one sub-expression, absorbing infix operators
// whose left binding power is at least minBP.
func (p *Parser) parseExpression(minBP int) (ast.Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.options.MaxDepth {
		return nil, p.errorAt(p.stream.Peek(), ErrDepthExceeded,
			fmt.Sprintf("expression nesting exceeds maximum depth %d", p.options.MaxDepth))
	}

	lhs, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if lhs == nil {
		// Only reachable when the sub-expression starts at EOF.
		return nil, nil
	}

	for {
		next := p.stream.Peek()

		switch next.Type {
		case TokenEOF:
			return lhs, nil
		case TokenAtom:
			return nil, p.errorAt(next, ErrAtomAdjacency,
				fmt.Sprintf("expected an operator, found atom %q", next.Value))
		}

		// A closing parenthesis ends this sub-expression; the enclosing
		// group handler consumes it.
		if next.Value == ")" && p.options.EnableGrouping {
			return lhs, nil
		}

		bp, ok := bindingPowers[next.Value]
		if !ok {
			return nil, p.errorAt(next, ErrUnsupportedOperator,
				fmt.Sprintf("operator %q is not supported in infix position", next.Value))
		}

		if bp.left < minBP {
			// Too weak to bind here; the enclosing call consumes it.
			return lhs, nil
		}

		op := p.stream.Next()

		rhs, err := p.parseExpression(bp.right)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, p.errorAt(op, ErrMissingOperand,
				fmt.Sprintf("missing right-hand operand for operator %q", op.Value))
		}

		lhs = &ast.BinaryExpr{
			Op:    op.Value,
			Left:  lhs,
			Right: rhs,
			Pos:   tokenPosition(op),
		}
	}
}

// parseOperand consumes the leading token of a sub-expression. It
// returns (nil, nil) only when that token is EOF.
func (p *Parser) parseOperand() (ast.Expr, error) {
	tok := p.stream.Next()

	switch tok.Type {
	case TokenAtom:
		return &ast.Atom{
			Value: tok.Value,
			Pos:   tokenPosition(tok),
		}, nil

	case TokenOperator:
		if tok.Value == "(" && p.options.EnableGrouping {
			return p.parseGroup(tok)
		}
		return nil, p.errorAt(tok, ErrOperatorAtStart,
			fmt.Sprintf("operator %q cannot start an expression", tok.Value))

	case TokenEOF:
		return nil, nil

	default:
		return nil, p.errorAt(tok, ErrLex,
			fmt.Sprintf("unrecognized token %q", tok.Value))
	}
}

// parseGroup parses a parenthesized sub-expression. The opening '(' has
// already been consumed.
func (p *Parser) parseGroup(open Token) (ast.Expr, error) {
	if next := p.stream.Peek(); next.Type == TokenOperator && next.Value == ")" {
		return nil, p.errorAt(open, ErrMissingOperand,
			"missing expression inside parentheses")
	}

	inner, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if inner == nil {
		return nil, p.errorAt(open, ErrMissingOperand,
			"missing expression inside parentheses")
	}

	closing := p.stream.Next()
	if closing.Type != TokenOperator || closing.Value != ")" {
		return nil, p.errorAt(open, ErrUnmatchedParen,
			`unmatched "(": expected ')' to close group`)
	}

	return inner, nil
}

// errorAt creates a parse error anchored at the given token
func (p *Parser) errorAt(tok Token, kind ErrorKind, message string) error {
	return &ParseError{
		Kind:     kind,
		Message:  message,
		Position: tok.Position,
		Line:     tok.Line,
		Column:   tok.Column,
		Token:    tok,
	}
}

// tokenPosition converts a token's position into an AST position
func tokenPosition(tok Token) ast.Position {
	return ast.Position{
		Line:   tok.Line,
		Column: tok.Column,
		Offset: tok.Position,
	}
}
