// File: doc.go
// Title: Parssir Package Documentation
// Description: Documents the Parssir expression parsing engine. Parssir
//              converts flat infix arithmetic expression strings into
//              binary expression trees that encode operator precedence
//              and associativity, without evaluating them.
// Author: SatinWuker
// Version: v0.1.0
// Created: 2026-08-27
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-27 v0.1.0: Initial engine implementation

/*
Package parssir converts infix arithmetic expression strings into binary
expression trees.

The pipeline is strictly sequential:

	string → Lexer → token sequence → Pratt parser → AST

Parssir is a building block for expression-processing pipelines such as
calculators or interpreters. It tokenizes the full operator vocabulary
(+ - * / % ** // and or not == != < > <= >= parentheses) but defines
infix binding powers only for + - * and /; using any other operator in an
expression fails with a typed, position-carrying error instead of guessed
semantics. Evaluation is out of scope.

# Basic Usage

	expr, err := parssir.Parse("1 + 2 * 3")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(expr)            // (1 + (2 * 3))
	fmt.Println(ast.Infix(expr)) // (1 + (2 * 3))

An engine carries options across calls:

	engine, err := parssir.NewEngine(parssir.Options{
		MaxInputLength: 1024,
		MaxDepth:       64,
	})
	if err != nil {
		log.Fatal(err)
	}

	expr, err = engine.Parse("(a + b) * c")

Empty or whitespace-only input yields a nil tree and a nil error.

# Error Handling

All failures are typed. Engine errors unwrap to *parser.ParseError, whose
Kind field classifies the failure:

	_, err = engine.Parse("1 % 2")
	var perr *parser.ParseError
	if errors.As(err, &perr) {
		fmt.Println(perr.Kind) // UNSUPPORTED_OPERATOR
	}

Parsing is synchronous, single-threaded, and shares no mutable state
between calls; each call owns its own token sequence and resulting tree.
*/
package parssir
