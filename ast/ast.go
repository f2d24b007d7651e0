package ast

import "github.com/couch-lang/couch-lang/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Program represents a parsed source text: an ordered sequence of top-level
// statements. The grammar permits any statement form at the top level.
type Program struct {
	Stmts []Stmt
	span  lexer.Span
}

// Span returns the span covering the entire program.
func (p *Program) Span() lexer.Span { return p.span }

// NewProgram constructs a program node with the provided span.
func NewProgram(span lexer.Span) *Program {
	return &Program{span: span}
}

// SetSpan updates the program span.
func (p *Program) SetSpan(span lexer.Span) {
	p.span = span
}

// BlockStmt represents a brace-delimited sequence of statements.
type BlockStmt struct {
	Stmts []Stmt
	span  lexer.Span
}

// Span returns the block span.
func (b *BlockStmt) Span() lexer.Span { return b.span }

// NewBlockStmt constructs a block node.
func NewBlockStmt(stmts []Stmt, span lexer.Span) *BlockStmt {
	return &BlockStmt{
		Stmts: stmts,
		span:  span,
	}
}

// SetSpan updates the block span.
func (b *BlockStmt) SetSpan(span lexer.Span) {
	b.span = span
}

// Param represents a function or let-binding parameter, optionally marked
// mutable for later stages; the parser attaches no meaning to the flag.
type Param struct {
	Mutable bool
	Name    *Ident
	span    lexer.Span
}

// Span returns the parameter span.
func (p *Param) Span() lexer.Span { return p.span }

// NewParam constructs a parameter node.
func NewParam(mutable bool, name *Ident, span lexer.Span) *Param {
	return &Param{
		Mutable: mutable,
		Name:    name,
		span:    span,
	}
}

// FnDecl represents a function declaration.
type FnDecl struct {
	Name   *Ident
	Params []*Param
	Body   *BlockStmt
	span   lexer.Span
}

// Span returns the declaration span.
func (d *FnDecl) Span() lexer.Span { return d.span }

// NewFnDecl constructs a function declaration node.
func NewFnDecl(name *Ident, params []*Param, body *BlockStmt, span lexer.Span) *FnDecl {
	return &FnDecl{
		Name:   name,
		Params: params,
		Body:   body,
		span:   span,
	}
}

// stmtNode marks FnDecl as a statement.
func (*FnDecl) stmtNode() {}

// ReturnStmt represents a return statement with an optional value.
type ReturnStmt struct {
	Value Expr
	span  lexer.Span
}

// Span returns the statement span.
func (s *ReturnStmt) Span() lexer.Span { return s.span }

// NewReturnStmt constructs a return statement node.
func NewReturnStmt(value Expr, span lexer.Span) *ReturnStmt {
	return &ReturnStmt{
		Value: value,
		span:  span,
	}
}

// stmtNode marks ReturnStmt as a statement.
func (*ReturnStmt) stmtNode() {}

// WhileStmt represents a while loop.
type WhileStmt struct {
	Cond Expr
	Body *BlockStmt
	span lexer.Span
}

// Span returns the statement span.
func (s *WhileStmt) Span() lexer.Span { return s.span }

// NewWhileStmt constructs a while statement node.
func NewWhileStmt(cond Expr, body *BlockStmt, span lexer.Span) *WhileStmt {
	return &WhileStmt{
		Cond: cond,
		Body: body,
		span: span,
	}
}

// stmtNode marks WhileStmt as a statement.
func (*WhileStmt) stmtNode() {}

// BreakStmt represents a break statement.
type BreakStmt struct {
	span lexer.Span
}

// Span returns the statement span.
func (s *BreakStmt) Span() lexer.Span { return s.span }

// NewBreakStmt constructs a break statement node.
func NewBreakStmt(span lexer.Span) *BreakStmt {
	return &BreakStmt{span: span}
}

// stmtNode marks BreakStmt as a statement.
func (*BreakStmt) stmtNode() {}

// ContinueStmt represents a continue statement.
type ContinueStmt struct {
	span lexer.Span
}

// Span returns the statement span.
func (s *ContinueStmt) Span() lexer.Span { return s.span }

// NewContinueStmt constructs a continue statement node.
func NewContinueStmt(span lexer.Span) *ContinueStmt {
	return &ContinueStmt{span: span}
}

// stmtNode marks ContinueStmt as a statement.
func (*ContinueStmt) stmtNode() {}

// LetStmt represents a let binding statement.
type LetStmt struct {
	Param *Param
	Value Expr
	span  lexer.Span
}

// Span returns the statement span.
func (s *LetStmt) Span() lexer.Span { return s.span }

// NewLetStmt constructs a let statement node.
func NewLetStmt(param *Param, value Expr, span lexer.Span) *LetStmt {
	return &LetStmt{
		Param: param,
		Value: value,
		span:  span,
	}
}

// stmtNode marks LetStmt as a statement.
func (*LetStmt) stmtNode() {}

// AssignStmt represents an assignment statement. Op is one of
// "=", "+=", "-=", "*=", "/=". Target is syntactically unrestricted;
// lvalue checking belongs to a later stage.
type AssignStmt struct {
	Target Expr
	Op     lexer.TokenType
	Value  Expr
	span   lexer.Span
}

// Span returns the statement span.
func (s *AssignStmt) Span() lexer.Span { return s.span }

// NewAssignStmt constructs an assignment statement node.
func NewAssignStmt(target Expr, op lexer.TokenType, value Expr, span lexer.Span) *AssignStmt {
	return &AssignStmt{
		Target: target,
		Op:     op,
		Value:  value,
		span:   span,
	}
}

// stmtNode marks AssignStmt as a statement.
func (*AssignStmt) stmtNode() {}

// ExprStmt represents a bare expression used as a statement.
type ExprStmt struct {
	Expr Expr
	span lexer.Span
}

// Span returns the statement span.
func (s *ExprStmt) Span() lexer.Span { return s.span }

// NewExprStmt constructs an expression statement node.
func NewExprStmt(expr Expr, span lexer.Span) *ExprStmt {
	return &ExprStmt{
		Expr: expr,
		span: span,
	}
}

// stmtNode marks ExprStmt as a statement.
func (*ExprStmt) stmtNode() {}
