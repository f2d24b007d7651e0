package parser

import (
	"github.com/couch-lang/couch-lang/ast"
	"github.com/couch-lang/couch-lang/lexer"
)

// parseFnDecl parses "fn IDENT ( parameters ) block". Function declarations
// are the one statement form the grammar never terminates with ';'.
func (p *Parser) parseFnDecl() ast.Stmt {
	start := p.curTok.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}

	nameTok := p.curTok
	name := ast.NewIdent(nameTok.Literal, nameTok.Span)

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	params, ok := p.parseParamList()
	if !ok {
		return nil
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	span := mergeSpan(start, body.Span())

	p.nextToken() // move past '}'

	return ast.NewFnDecl(name, params, body, span)
}
