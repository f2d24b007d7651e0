package parser

import (
	"strconv"

	"github.com/couch-lang/couch-lang/ast"
	"github.com/couch-lang/couch-lang/diag"
	"github.com/couch-lang/couch-lang/lexer"
)

func (p *Parser) parseExpr() ast.Expr {
	return p.parseExprPrecedence(precedenceLowest)
}

func (p *Parser) parseExprPrecedence(precedence int) ast.Expr {
	prefix := p.prefixFns[p.curTok.Type]
	if prefix == nil {
		if p.curTok.Type == lexer.EOF {
			p.reportErrorCode("unexpected end of input in expression", p.curTok.Span, diag.CodeParseUnexpectedEOF)
		} else {
			p.reportError("unexpected token in expression '"+p.curTok.Literal+"'", p.curTok.Span)
		}
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for p.peekTok.Type != lexer.SEMICOLON && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekTok.Type]
		if infix == nil {
			break
		}

		p.nextToken()

		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIntegerLiteral() ast.Expr {
	value, err := strconv.ParseInt(p.curTok.Literal, 10, 64)
	if err != nil {
		p.reportErrorCode("invalid integer literal '"+p.curTok.Literal+"'", p.curTok.Span, diag.CodeParseInvalidLiteral)
		return nil
	}
	return ast.NewIntegerLit(value, p.curTok.Literal, p.curTok.Span)
}

func (p *Parser) parseFloatLiteral() ast.Expr {
	value, err := strconv.ParseFloat(p.curTok.Literal, 64)
	if err != nil {
		p.reportErrorCode("invalid float literal '"+p.curTok.Literal+"'", p.curTok.Span, diag.CodeParseInvalidLiteral)
		return nil
	}
	return ast.NewFloatLit(value, p.curTok.Literal, p.curTok.Span)
}

func (p *Parser) parseStringLiteral() ast.Expr {
	return ast.NewStringLit(p.curTok.Value, p.curTok.Span)
}

func (p *Parser) parseBoolLiteral() ast.Expr {
	return ast.NewBoolLit(p.curTok.Type == lexer.TRUE, p.curTok.Span)
}

func (p *Parser) parseIdentifier() ast.Expr {
	return ast.NewIdent(p.curTok.Literal, p.curTok.Span)
}

// parsePrefixExpr handles prefix operators registered via registerPrefix. It
// must consume the operator before recursing so Pratt precedence (see
// precedencePrefix) controls binding; recursing through the registry lets
// prefix operators stack, as in "!-x".
func (p *Parser) parsePrefixExpr() ast.Expr {
	operatorTok := p.curTok

	p.nextToken()

	right := p.parseExprPrecedence(precedencePrefix)
	if right == nil {
		return nil
	}

	span := mergeSpan(operatorTok.Span, right.Span())

	return ast.NewPrefixExpr(operatorTok.Type, right, span)
}

// parseGroupedExpr parses "(expr)" into an explicit grouping node. The
// wrapper is kept rather than flattened away so the original parenthesization
// survives for downstream tooling.
func (p *Parser) parseGroupedExpr() ast.Expr {
	start := p.curTok.Span

	p.nextToken()

	inner := p.parseExpr()
	if inner == nil {
		return nil
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	span := mergeSpan(start, p.curTok.Span)

	return ast.NewGroupedExpr(inner, span)
}

// parseIfExpr parses "if expr block (else block)?". The grammar takes no
// parentheses around the condition and allows exactly one optional else
// block; chained alternatives are written as "else { if ... }".
func (p *Parser) parseIfExpr() ast.Expr {
	start := p.curTok.Span

	p.nextToken()

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	then := p.parseBlock()
	if then == nil {
		return nil
	}

	span := mergeSpan(start, then.Span())

	if p.peekTok.Type != lexer.ELSE {
		return ast.NewIfExpr(cond, then, nil, span)
	}

	p.nextToken() // move to 'else'

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	els := p.parseBlock()
	if els == nil {
		return nil
	}

	span = mergeSpan(span, els.Span())

	return ast.NewIfExpr(cond, then, els, span)
}

// parseInfixExpr builds a binary node. The right-hand side recurses at
// precedence-1, which keeps the current level's operators available to the
// recursive call: chains of equal precedence therefore associate to the
// right ("a - b - c" parses as "a - (b - c)"), matching the grammar's
// right-recursive production rules.
func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	operatorTok := p.curTok
	precedence := p.curPrecedence()

	p.nextToken()

	right := p.parseExprPrecedence(precedence - 1)
	if right == nil {
		return nil
	}

	span := mergeSpan(left.Span(), operatorTok.Span)
	span = mergeSpan(span, right.Span())

	return ast.NewInfixExpr(operatorTok.Type, left, right, span)
}

func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	openTok := p.curTok

	p.nextToken()

	var args []ast.Expr

	if p.curTok.Type != lexer.RPAREN {
		argRes, ok := parseDelimited[ast.Expr](p, delimitedConfig{
			Closing:             lexer.RPAREN,
			Separator:           lexer.COMMA,
			AllowTrailing:       true,
			MissingElementMsg:   "expected expression",
			MissingSeparatorMsg: "',' or ')' after argument",
		}, func(int) (ast.Expr, bool) {
			arg := p.parseExpr()
			if arg == nil {
				return nil, false
			}
			return arg, true
		})
		if !ok {
			return nil
		}

		args = argRes.Items
	}

	span := mergeSpan(callee.Span(), openTok.Span)
	span = mergeSpan(span, p.curTok.Span)

	return ast.NewCallExpr(callee, args, span)
}

func (p *Parser) parseFieldExpr(target ast.Expr) ast.Expr {
	dotTok := p.curTok

	if p.peekTok.Type != lexer.IDENT {
		p.reportExpectedError("field name after '.'", p.peekTok)
		return nil
	}
	p.nextToken()

	fieldTok := p.curTok
	field := ast.NewIdent(fieldTok.Literal, fieldTok.Span)

	span := mergeSpan(target.Span(), dotTok.Span)
	span = mergeSpan(span, fieldTok.Span)

	return ast.NewFieldExpr(target, field, span)
}

func (p *Parser) parseIndexExpr(target ast.Expr) ast.Expr {
	openTok := p.curTok

	p.nextToken()

	index := p.parseExpr()
	if index == nil {
		return nil
	}

	if !p.expect(lexer.RBRACKET) {
		return nil
	}

	span := mergeSpan(target.Span(), openTok.Span)
	span = mergeSpan(span, index.Span())
	span = mergeSpan(span, p.curTok.Span)

	return ast.NewIndexExpr(target, index, span)
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}

	return precedenceLowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curTok.Type]; ok {
		return prec
	}

	return precedenceLowest
}
