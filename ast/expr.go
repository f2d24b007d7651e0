package ast

import "github.com/couch-lang/couch-lang/lexer"

// Ident represents an identifier.
type Ident struct {
	Name string
	span lexer.Span
}

// Span returns the identifier span.
func (i *Ident) Span() lexer.Span { return i.span }

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{
		Name: name,
		span: span,
	}
}

// exprNode marks Ident as an expression.
func (*Ident) exprNode() {}

// IntegerLit represents an integer literal. Text preserves the exact source
// spelling.
type IntegerLit struct {
	Value int64
	Text  string
	span  lexer.Span
}

// Span returns the literal span.
func (l *IntegerLit) Span() lexer.Span { return l.span }

// NewIntegerLit constructs an integer literal node.
func NewIntegerLit(value int64, text string, span lexer.Span) *IntegerLit {
	return &IntegerLit{
		Value: value,
		Text:  text,
		span:  span,
	}
}

// exprNode marks IntegerLit as an expression.
func (*IntegerLit) exprNode() {}

// FloatLit represents a float literal. Text preserves the exact source
// spelling.
type FloatLit struct {
	Value float64
	Text  string
	span  lexer.Span
}

// Span returns the literal span.
func (l *FloatLit) Span() lexer.Span { return l.span }

// NewFloatLit constructs a float literal node.
func NewFloatLit(value float64, text string, span lexer.Span) *FloatLit {
	return &FloatLit{
		Value: value,
		Text:  text,
		span:  span,
	}
}

// exprNode marks FloatLit as an expression.
func (*FloatLit) exprNode() {}

// StringLit represents a string literal; Value holds the decoded text.
type StringLit struct {
	Value string
	span  lexer.Span
}

// Span returns the literal span.
func (l *StringLit) Span() lexer.Span { return l.span }

// NewStringLit constructs a string literal node.
func NewStringLit(value string, span lexer.Span) *StringLit {
	return &StringLit{
		Value: value,
		span:  span,
	}
}

// exprNode marks StringLit as an expression.
func (*StringLit) exprNode() {}

// BoolLit represents a boolean literal.
type BoolLit struct {
	Value bool
	span  lexer.Span
}

// Span returns the literal span.
func (l *BoolLit) Span() lexer.Span { return l.span }

// NewBoolLit constructs a boolean literal node.
func NewBoolLit(value bool, span lexer.Span) *BoolLit {
	return &BoolLit{
		Value: value,
		span:  span,
	}
}

// exprNode marks BoolLit as an expression.
func (*BoolLit) exprNode() {}

// PrefixExpr represents a prefix expression; Op is "!" or "-".
type PrefixExpr struct {
	Op      lexer.TokenType
	Operand Expr
	span    lexer.Span
}

// Span returns the expression span.
func (e *PrefixExpr) Span() lexer.Span { return e.span }

// NewPrefixExpr constructs a prefix expression node.
func NewPrefixExpr(op lexer.TokenType, operand Expr, span lexer.Span) *PrefixExpr {
	return &PrefixExpr{
		Op:      op,
		Operand: operand,
		span:    span,
	}
}

// exprNode marks PrefixExpr as an expression.
func (*PrefixExpr) exprNode() {}

// InfixExpr represents an infix binary expression.
type InfixExpr struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *InfixExpr) Span() lexer.Span { return e.span }

// NewInfixExpr constructs a binary expression node.
func NewInfixExpr(op lexer.TokenType, left, right Expr, span lexer.Span) *InfixExpr {
	return &InfixExpr{
		Op:    op,
		Left:  left,
		Right: right,
		span:  span,
	}
}

// exprNode marks InfixExpr as an expression.
func (*InfixExpr) exprNode() {}

// FieldExpr represents a member access expression.
type FieldExpr struct {
	Target Expr
	Field  *Ident
	span   lexer.Span
}

// Span returns the expression span.
func (e *FieldExpr) Span() lexer.Span { return e.span }

// NewFieldExpr constructs a member access node.
func NewFieldExpr(target Expr, field *Ident, span lexer.Span) *FieldExpr {
	return &FieldExpr{
		Target: target,
		Field:  field,
		span:   span,
	}
}

// exprNode marks FieldExpr as an expression.
func (*FieldExpr) exprNode() {}

// IndexExpr represents an indexing expression.
type IndexExpr struct {
	Target Expr
	Index  Expr
	span   lexer.Span
}

// Span returns the expression span.
func (e *IndexExpr) Span() lexer.Span { return e.span }

// NewIndexExpr constructs an index expression node.
func NewIndexExpr(target, index Expr, span lexer.Span) *IndexExpr {
	return &IndexExpr{
		Target: target,
		Index:  index,
		span:   span,
	}
}

// exprNode marks IndexExpr as an expression.
func (*IndexExpr) exprNode() {}

// CallExpr represents a function call.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	span   lexer.Span
}

// Span returns the expression span.
func (e *CallExpr) Span() lexer.Span { return e.span }

// NewCallExpr constructs a call expression node.
func NewCallExpr(callee Expr, args []Expr, span lexer.Span) *CallExpr {
	return &CallExpr{
		Callee: callee,
		Args:   args,
		span:   span,
	}
}

// exprNode marks CallExpr as an expression.
func (*CallExpr) exprNode() {}

// GroupedExpr represents a parenthesized expression. The wrapper node is
// preserved so the original grouping survives for tooling.
type GroupedExpr struct {
	Inner Expr
	span  lexer.Span
}

// Span returns the expression span, including the parentheses.
func (e *GroupedExpr) Span() lexer.Span { return e.span }

// NewGroupedExpr constructs a grouping node.
func NewGroupedExpr(inner Expr, span lexer.Span) *GroupedExpr {
	return &GroupedExpr{
		Inner: inner,
		span:  span,
	}
}

// exprNode marks GroupedExpr as an expression.
func (*GroupedExpr) exprNode() {}

// IfExpr represents an expression-valued if with an optional else block.
// What value a block yields is left to the consuming stage.
type IfExpr struct {
	Cond Expr
	Then *BlockStmt
	Else *BlockStmt
	span lexer.Span
}

// Span returns the expression span.
func (e *IfExpr) Span() lexer.Span { return e.span }

// NewIfExpr constructs an if expression node.
func NewIfExpr(cond Expr, then, els *BlockStmt, span lexer.Span) *IfExpr {
	return &IfExpr{
		Cond: cond,
		Then: then,
		Else: els,
		span: span,
	}
}

// exprNode marks IfExpr as an expression.
func (*IfExpr) exprNode() {}
