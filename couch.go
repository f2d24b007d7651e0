// Package couchlang is the front end of the couch scripting language: it
// turns source text into a syntax tree for an interpreter, compiler, or
// analyzer to consume. The two entry points wrap the lexer and parser
// packages; no semantic interpretation happens at this layer.
//
// Both entry points stop at the first error and never return a partial
// result. Deeply nested expressions recurse proportionally to their nesting
// depth, so pathological inputs can exhaust the call stack; parsing itself
// always terminates.
package couchlang

import (
	"github.com/couch-lang/couch-lang/ast"
	"github.com/couch-lang/couch-lang/lexer"
	"github.com/couch-lang/couch-lang/parser"
)

// Tokenize converts source text into its token sequence, terminated by
// exactly one EOF token. On a lexical error it returns nil and the first
// *lexer.Error encountered.
func Tokenize(source string) ([]lexer.Token, error) {
	lx := lexer.New(source)

	var tokens []lexer.Token
	for {
		tok := lx.NextToken()
		if len(lx.Errors) > 0 {
			return nil, lx.Errors[0]
		}

		tokens = append(tokens, tok)
		if tok.Type == lexer.EOF {
			return tokens, nil
		}
	}
}

// Parse converts source text into a Program. On failure it returns nil and
// the first error encountered: a *lexer.Error for lexical failures,
// otherwise a *parser.Error. Parsing the same source twice yields
// structurally equal trees.
func Parse(source string, opts ...parser.Option) (*ast.Program, error) {
	p := parser.New(source, opts...)
	program := p.ParseProgram()

	if errs := p.LexErrors(); len(errs) > 0 {
		return nil, errs[0]
	}
	if errs := p.Errors(); len(errs) > 0 {
		return nil, errs[0]
	}

	return program, nil
}
