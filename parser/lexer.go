// File: lexer.go
// Title: Expression Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of expression parsing.
//              Converts flat infix expression strings into streams of
//              classified tokens. Handles the fixed operator vocabulary,
//              integer and identifier atoms, and provides detailed position
//              information for error reporting.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-27
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-27 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Operands: integer literals and identifiers
	TokenAtom // 123, price, _tmp1

	// Members of the operator vocabulary
	TokenOperator // + - * / % ** // and or not == != < > <= >= ( )
)

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text
	Position int       // Byte position in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenAtom:
		return "ATOM"
	case TokenOperator:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// operators is the fixed operator vocabulary. It is never mutated after
// initialization and is safe to share across parses without locking.
var operators = map[string]struct{}{
	"+": {}, "-": {}, "*": {}, "/": {},
	"%": {}, "**": {}, "//": {},
	"==": {}, "!=": {}, "<": {}, ">": {}, "<=": {}, ">=": {},
	"and": {}, "or": {}, "not": {},
	"(": {}, ")": {},
}

// keywords are the word-shaped members of the operator vocabulary.
// They are reserved: an identifier that matches exactly is an operator,
// never an atom.
var keywords = map[string]struct{}{
	"and": {},
	"or":  {},
	"not": {},
}

// IsOperator reports whether s is a member of the operator vocabulary.
func IsOperator(s string) bool {
	_, ok := operators[s]
	return ok
}

// IsKeyword reports whether s is a reserved operator keyword.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// Lexer performs lexical analysis of expression input
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	// Save current position for token
	pos := l.position
	line := l.line
	column := l.column

	switch l.ch {
	case '+', '-', '%', '(', ')':
		tok = newToken(TokenOperator, l.ch, pos, line, column)
	case '*':
		if l.peekChar() == '*' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenOperator, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenOperator, l.ch, pos, line, column)
		}
	case '/':
		if l.peekChar() == '/' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenOperator, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenOperator, l.ch, pos, line, column)
		}
	case '=':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenOperator, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			// Bare '=' is not part of the vocabulary
			tok = newToken(TokenIllegal, l.ch, pos, line, column)
		}
	case '!':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenOperator, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenIllegal, l.ch, pos, line, column)
		}
	case '<':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenOperator, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenOperator, l.ch, pos, line, column)
		}
	case '>':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenOperator, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenOperator, l.ch, pos, line, column)
		}
	case 0:
		tok = Token{Type: TokenEOF, Value: "", Position: pos, Line: line, Column: column}
	default:
		if isLetter(l.ch) {
			tok.Position = pos
			tok.Line = line
			tok.Column = column
			tok.Value = l.readIdentifier()
			tok.Type = lookupIdent(tok.Value)
			return tok // Early return to avoid readChar()
		} else if isDigit(l.ch) {
			tok.Type = TokenAtom
			tok.Value = l.readNumber()
			tok.Position = pos
			tok.Line = line
			tok.Column = column
			return tok // Early return to avoid readChar()
		} else {
			tok = newToken(TokenIllegal, l.ch, pos, line, column)
		}
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input as a slice. The returned
// sequence is never empty and is terminated by exactly one EOF token.
// Input that matches neither the atom pattern nor the operator vocabulary
// aborts tokenization with a lexical error naming the offending text.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()

		if tok.Type == TokenIllegal {
			return tokens, &ParseError{
				Kind:     ErrLex,
				Message:  fmt.Sprintf("unrecognized character %q", tok.Value),
				Position: tok.Position,
				Line:     tok.Line,
				Column:   tok.Column,
				Token:    tok,
			}
		}

		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}
	}

	return tokens, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads a maximal letter/underscore/digit run
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a maximal digit run (integer literals only)
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// Utility functions

// newToken creates a new token with the given parameters
func newToken(tokenType TokenType, ch byte, pos, line, column int) Token {
	return Token{
		Type:     tokenType,
		Value:    string(ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// isLetter checks if the character starts or continues an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// lookupIdent determines if an identifier run is a reserved operator
// keyword or an atom. Matching is exact: "and" is an operator, "And" is
// an atom.
func lookupIdent(ident string) TokenType {
	if _, ok := keywords[ident]; ok {
		return TokenOperator
	}
	return TokenAtom
}

// TokenizeInput is a convenience function that tokenizes input and returns tokens or error
func TokenizeInput(input string) ([]Token, error) {
	lexer := NewLexer(input)
	return lexer.Tokenize()
}

// TokenStream is a forward cursor over a tokenized input. It replaces
// re-reading the lexer: tokens are produced once and consumed
// monotonically through Peek and Next.
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream creates a cursor over the given token slice. The slice
// is expected to be EOF-terminated, as produced by Tokenize.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Peek returns the next unconsumed token without advancing. At or past
// the end of the stream it keeps returning the terminal EOF token.
func (ts *TokenStream) Peek() Token {
	if ts.pos >= len(ts.tokens) {
		return Token{Type: TokenEOF}
	}
	return ts.tokens[ts.pos]
}

// Next returns the next unconsumed token and advances the cursor. The
// terminal EOF token is never consumed: once reached, Next keeps
// returning it.
func (ts *TokenStream) Next() Token {
	tok := ts.Peek()
	if tok.Type != TokenEOF {
		ts.pos++
	}
	return tok
}

// Remaining returns the number of unconsumed tokens, including the
// terminal EOF token.
func (ts *TokenStream) Remaining() int {
	if ts.pos >= len(ts.tokens) {
		return 0
	}
	return len(ts.tokens) - ts.pos
}
