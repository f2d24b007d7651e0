package parser

import (
	"github.com/couch-lang/couch-lang/ast"
	"github.com/couch-lang/couch-lang/lexer"
)

// parseStmt dispatches on the current token. Keyword-prefixed statement
// forms keep the grammar unambiguous with one token of lookahead; anything
// else is an assignment or a bare expression statement.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.curTok.Type {
	case lexer.FN:
		return p.parseFnDecl()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.BREAK:
		return p.parseBreakStmt()
	case lexer.CONTINUE:
		return p.parseContinueStmt()
	case lexer.LET:
		return p.parseLetStmt()
	default:
		return p.parseAssignOrExprStmt()
	}
}

// parseBlock parses "{ stmt* }". On entry curTok must be '{'; on success
// curTok is the closing '}' and the caller advances past it.
func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.curTok.Span

	if p.curTok.Type != lexer.LBRACE {
		p.reportExpectedError("'{' to start block", p.curTok)
		return nil
	}

	p.nextToken()

	var stmts []ast.Stmt

	for p.curTok.Type != lexer.RBRACE && p.curTok.Type != lexer.EOF {
		stmt := p.parseStmt()
		if stmt == nil {
			return nil
		}
		stmts = append(stmts, stmt)
	}

	if p.curTok.Type != lexer.RBRACE {
		p.reportExpectedError("'}' to close block", p.curTok)
		return nil
	}

	return ast.NewBlockStmt(stmts, mergeSpan(start, p.curTok.Span))
}

// parseLetStmt parses "let parameter = expr ;".
func (p *Parser) parseLetStmt() ast.Stmt {
	start := p.curTok.Span

	p.nextToken()

	param := p.parseParam()
	if param == nil {
		return nil
	}

	if !p.expect(lexer.ASSIGN) {
		return nil
	}

	p.nextToken()

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	if !p.expect(lexer.SEMICOLON) {
		return nil
	}

	span := mergeSpan(start, value.Span())
	span = mergeSpan(span, p.curTok.Span)
	stmt := ast.NewLetStmt(param, value, span)

	p.nextToken()

	return stmt
}

// parseReturnStmt parses "return expr? ;".
func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.curTok.Span

	if p.peekTok.Type == lexer.SEMICOLON {
		p.nextToken()

		span := mergeSpan(start, p.curTok.Span)
		stmt := ast.NewReturnStmt(nil, span)

		p.nextToken()

		return stmt
	}

	p.nextToken()

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	if !p.expect(lexer.SEMICOLON) {
		return nil
	}

	span := mergeSpan(start, value.Span())
	span = mergeSpan(span, p.curTok.Span)
	stmt := ast.NewReturnStmt(value, span)

	p.nextToken()

	return stmt
}

// parseWhileStmt parses "while expr block". No parentheses around the
// condition, no trailing semicolon: the block ends the statement.
func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.curTok.Span

	p.nextToken()

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	span := mergeSpan(start, cond.Span())
	span = mergeSpan(span, body.Span())

	p.nextToken() // move past '}'

	return ast.NewWhileStmt(cond, body, span)
}

func (p *Parser) parseBreakStmt() ast.Stmt {
	start := p.curTok.Span

	if !p.expect(lexer.SEMICOLON) {
		return nil
	}

	span := mergeSpan(start, p.curTok.Span)

	p.nextToken()

	return ast.NewBreakStmt(span)
}

func (p *Parser) parseContinueStmt() ast.Stmt {
	start := p.curTok.Span

	if !p.expect(lexer.SEMICOLON) {
		return nil
	}

	span := mergeSpan(start, p.curTok.Span)

	p.nextToken()

	return ast.NewContinueStmt(span)
}

// parseAssignOrExprStmt parses an expression and then decides what statement
// it belongs to: followed by an assignment operator it becomes the target of
// an assignment (any expression is accepted syntactically; lvalue checking
// is a later stage's concern), otherwise it stands alone. A trailing ';' is
// required unless the expression ends in a block.
func (p *Parser) parseAssignOrExprStmt() ast.Stmt {
	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if lexer.IsAssignOp(p.peekTok.Type) {
		p.nextToken()
		opTok := p.curTok

		p.nextToken()

		value := p.parseExpr()
		if value == nil {
			return nil
		}

		if !p.expect(lexer.SEMICOLON) {
			return nil
		}

		span := mergeSpan(expr.Span(), opTok.Span)
		span = mergeSpan(span, value.Span())
		span = mergeSpan(span, p.curTok.Span)
		stmt := ast.NewAssignStmt(expr, opTok.Type, value, span)

		p.nextToken()

		return stmt
	}

	if p.peekTok.Type == lexer.SEMICOLON {
		p.nextToken()

		span := mergeSpan(expr.Span(), p.curTok.Span)
		stmt := ast.NewExprStmt(expr, span)

		p.nextToken()

		return stmt
	}

	if endsInBlock(expr) {
		stmt := ast.NewExprStmt(expr, expr.Span())

		p.nextToken() // move past '}'

		return stmt
	}

	p.reportExpectedError("';' after expression", p.peekTok)
	return nil
}

// endsInBlock reports whether the expression's final token is a closing
// brace, which the grammar treats as a statement terminator of its own.
func endsInBlock(expr ast.Expr) bool {
	_, ok := expr.(*ast.IfExpr)
	return ok
}
