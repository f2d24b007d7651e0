package parser

import (
	"fmt"

	"github.com/couch-lang/couch-lang/diag"
	"github.com/couch-lang/couch-lang/lexer"
)

// Error is a syntax error with location context. Severity is always
// SeverityError for now; the field exists so diagnostics keep their shape
// when warnings are added.
type Error struct {
	Message  string
	Span     lexer.Span
	Severity diag.Severity
	Code     diag.Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Span.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Span.Filename, e.Span.Line, e.Span.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Span.Line, e.Span.Column, e.Message)
}

// ToDiagnostic converts a parse error into a shared diagnostic structure.
func (e *Error) ToDiagnostic() diag.Diagnostic {
	code := e.Code
	if code == "" {
		code = diag.CodeParseUnexpectedToken
	}

	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: e.Severity,
		Code:     code,
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// reportError records a diagnostic. All call sites must supply the
// best-effort span available at the failure site.
func (p *Parser) reportError(msg string, span lexer.Span) {
	p.reportErrorCode(msg, span, diag.CodeParseUnexpectedToken)
}

func (p *Parser) reportErrorCode(msg string, span lexer.Span, code diag.Code) {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}

	p.errors = append(p.errors, &Error{
		Message:  msg,
		Span:     span,
		Severity: diag.SeverityError,
		Code:     code,
	})
}

// reportExpectedError reports an error when an expected token is missing.
func (p *Parser) reportExpectedError(expected string, found lexer.Token) {
	if found.Type == lexer.EOF {
		msg := fmt.Sprintf("expected %s, found end of input", expected)
		p.reportErrorCode(msg, found.Span, diag.CodeParseUnexpectedEOF)
		return
	}

	msg := fmt.Sprintf("expected %s, found '%s'", expected, found.Literal)
	p.reportErrorCode(msg, found.Span, diag.CodeParseUnexpectedToken)
}
