package parser

import (
	"github.com/couch-lang/couch-lang/ast"
	"github.com/couch-lang/couch-lang/lexer"
)

// parseParamList parses "( parameter (, parameter)* ,? )". On entry curTok
// must be '('; on success curTok is ')'.
func (p *Parser) parseParamList() ([]*ast.Param, bool) {
	params := make([]*ast.Param, 0)

	if p.peekTok.Type == lexer.RPAREN {
		if !p.expect(lexer.RPAREN) {
			return nil, false
		}
		return params, true
	}

	p.nextToken()

	paramRes, ok := parseDelimited[*ast.Param](p, delimitedConfig{
		Closing:             lexer.RPAREN,
		Separator:           lexer.COMMA,
		AllowTrailing:       true,
		MissingElementMsg:   "expected parameter",
		MissingSeparatorMsg: "',' or ')' in parameter list",
	}, func(int) (*ast.Param, bool) {
		param := p.parseParam()
		if param == nil {
			return nil, false
		}
		return param, true
	})
	if !ok {
		return nil, false
	}

	return paramRes.Items, true
}

// parseParam parses "mut? IDENT". On entry curTok must be the first token of
// the parameter; on success curTok is the identifier.
func (p *Parser) parseParam() *ast.Param {
	start := p.curTok.Span

	mutable := false
	if p.curTok.Type == lexer.MUT {
		mutable = true
		p.nextToken()
	}

	if p.curTok.Type != lexer.IDENT {
		p.reportExpectedError("parameter name", p.curTok)
		return nil
	}

	nameTok := p.curTok
	name := ast.NewIdent(nameTok.Literal, nameTok.Span)

	return ast.NewParam(mutable, name, mergeSpan(start, nameTok.Span))
}
