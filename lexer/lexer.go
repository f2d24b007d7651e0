package lexer

import (
	"fmt"
	"strconv"

	"github.com/couch-lang/couch-lang/diag"
)

type ErrorKind int

const (
	ErrUnterminatedString ErrorKind = iota
	ErrIllegalRune
)

// Error is a lexical error with location context.
type Error struct {
	Kind    ErrorKind
	Message string
	Span    Span
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Span.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Span.Filename, e.Span.Line, e.Span.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Span.Line, e.Span.Column, e.Message)
}

func (k ErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUnterminatedString:
		return diag.CodeLexerUnterminatedString
	case ErrIllegalRune:
		return diag.CodeLexerIllegalRune
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e *Error) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
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

// Lexer represents the lexer state. It holds a single cursor into the rune
// slice and never backtracks past a committed token.
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string

	Errors []*Error
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		ch:     0,
		line:   1,
		column: 0, // will be 1 after first read()
	}
	l.read() // move to first character
	return l
}

// SetFilename attributes all subsequently emitted spans to the given file.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

func (l *Lexer) addError(kind ErrorKind, msg string, span Span) {
	l.Errors = append(l.Errors, &Error{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

// read advances the lexer to the next rune. Line/column always reflect the
// position of the rune at pos.
func (l *Lexer) read() {
	l.pos++
	prevPos := l.pos - 1
	inputLen := len(l.input)

	if l.pos >= inputLen {
		// Moved past the last rune; normalize position to virtual EOF.
		if prevPos >= 0 && prevPos < inputLen {
			if l.input[prevPos] == '\n' {
				l.line++
				l.column = 1
			} else {
				l.column++
			}
		} else if prevPos < 0 {
			// Empty input: column should point to the first position
			l.column = 1
		}
		l.ch = 0 // EOF
		return
	}

	l.ch = l.input[l.pos]

	// If the previous rune was a newline, we're now on a new line.
	if prevPos >= 0 && l.input[prevPos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peek returns the next rune without advancing
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// currentSpanStart returns the position of the rune we're about to tokenize.
func (l *Lexer) currentSpanStart() (line, column, pos int) {
	return l.line, l.column, l.pos
}

// makeToken creates a token with span information
func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos, endPos int, literal, value string) Token {
	return Token{
		Type:    tokType,
		Literal: literal,
		Value:   value,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      endPos,
		},
	}
}

// skipWhitespace discards whitespace between tokens; it is never emitted.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.read()
	}
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// readNumber reads an integer or float literal. A '.' only continues the
// literal when a digit follows, so "42." lexes as INT followed by DOT.
func (l *Lexer) readNumber() (string, TokenType) {
	start := l.pos

	for isDigit(l.ch) {
		l.read()
	}

	if l.ch == '.' && isDigit(l.peek()) {
		l.read() // consume '.'
		for isDigit(l.ch) {
			l.read()
		}
		return string(l.input[start:l.pos]), FLOAT
	}

	return string(l.input[start:l.pos]), INT
}

// twoRuneToken consumes the current rune and the peeked rune as one token.
func (l *Lexer) twoRuneToken(tokType TokenType, startLine, startColumn, startPos int) Token {
	ch := l.ch
	l.read()
	literal := string(ch) + string(l.ch)
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal, literal)
}

// singleRuneToken consumes the current rune as one token.
func (l *Lexer) singleRuneToken(tokType TokenType, startLine, startColumn, startPos int) Token {
	literal := string(l.ch)
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal, literal)
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	startLine, startColumn, startPos := l.currentSpanStart()

	switch l.ch {
	case 0:
		if startColumn == 0 {
			startColumn = 1
		}
		return l.makeToken(EOF, startLine, startColumn, startPos, startPos, "", "")

	case '=':
		if l.peek() == '=' {
			return l.twoRuneToken(EQ, startLine, startColumn, startPos)
		}
		return l.singleRuneToken(ASSIGN, startLine, startColumn, startPos)

	case '+':
		if l.peek() == '=' {
			return l.twoRuneToken(PLUS_ASSIGN, startLine, startColumn, startPos)
		}
		return l.singleRuneToken(PLUS, startLine, startColumn, startPos)

	case '-':
		if l.peek() == '=' {
			return l.twoRuneToken(MINUS_ASSIGN, startLine, startColumn, startPos)
		}
		return l.singleRuneToken(MINUS, startLine, startColumn, startPos)

	case '*':
		if l.peek() == '=' {
			return l.twoRuneToken(ASTERISK_ASSIGN, startLine, startColumn, startPos)
		}
		return l.singleRuneToken(ASTERISK, startLine, startColumn, startPos)

	case '/':
		if l.peek() == '=' {
			return l.twoRuneToken(SLASH_ASSIGN, startLine, startColumn, startPos)
		}
		return l.singleRuneToken(SLASH, startLine, startColumn, startPos)

	case '%':
		return l.singleRuneToken(PERCENT, startLine, startColumn, startPos)

	case '!':
		if l.peek() == '=' {
			return l.twoRuneToken(NOT_EQ, startLine, startColumn, startPos)
		}
		return l.singleRuneToken(BANG, startLine, startColumn, startPos)

	case ';':
		return l.singleRuneToken(SEMICOLON, startLine, startColumn, startPos)

	case ',':
		return l.singleRuneToken(COMMA, startLine, startColumn, startPos)

	case '.':
		return l.singleRuneToken(DOT, startLine, startColumn, startPos)

	case '(':
		return l.singleRuneToken(LPAREN, startLine, startColumn, startPos)

	case ')':
		return l.singleRuneToken(RPAREN, startLine, startColumn, startPos)

	case '{':
		return l.singleRuneToken(LBRACE, startLine, startColumn, startPos)

	case '}':
		return l.singleRuneToken(RBRACE, startLine, startColumn, startPos)

	case '[':
		return l.singleRuneToken(LBRACKET, startLine, startColumn, startPos)

	case ']':
		return l.singleRuneToken(RBRACKET, startLine, startColumn, startPos)

	case '"':
		literal, value, terminated := l.readString(startLine, startColumn, startPos)
		if !terminated {
			return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, literal, literal)
		}
		return l.makeToken(STRING, startLine, startColumn, startPos, l.pos, literal, value)

	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			tokType := LookupIdent(literal)
			return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal, literal)
		}
		if isDigit(l.ch) {
			literal, tokType := l.readNumber()
			return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal, literal)
		}

		literal := string(l.ch)
		l.read()
		tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, literal, literal)
		l.addError(
			ErrIllegalRune,
			"illegal character "+strconv.Quote(literal),
			tok.Span,
		)
		return tok
	}
}

// Identifiers and keywords are restricted to ASCII letters and underscore.
func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// readString reads a string literal, handling escape sequences.
// Returns both the literal (with escapes) and decoded value (without),
// along with a flag indicating whether the string was properly terminated.
func (l *Lexer) readString(startLine, startColumn, startPos int) (literal string, value string, terminated bool) {
	var rawRunes []rune
	var decodedRunes []rune

	rawRunes = append(rawRunes, '"') // include opening quote
	l.read()                         // skip opening quote

	for {
		if l.ch == 0 {
			l.addError(
				ErrUnterminatedString,
				"unterminated string literal",
				Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos},
			)
			break
		}
		if l.ch == '"' {
			rawRunes = append(rawRunes, '"') // include closing quote
			l.read()                         // consume closing quote
			return string(rawRunes), string(decodedRunes), true
		}
		if l.ch == '\n' || l.ch == '\r' {
			l.addError(
				ErrUnterminatedString,
				"newline in string literal",
				Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos},
			)
			break
		}
		if l.ch == '\\' {
			rawRunes = append(rawRunes, '\\')
			l.read() // skip '\'
			if l.ch != 0 {
				rawRunes = append(rawRunes, l.ch)
				switch l.ch {
				case 'n':
					decodedRunes = append(decodedRunes, '\n')
				case 't':
					decodedRunes = append(decodedRunes, '\t')
				case 'r':
					decodedRunes = append(decodedRunes, '\r')
				case '\\':
					decodedRunes = append(decodedRunes, '\\')
				case '"':
					decodedRunes = append(decodedRunes, '"')
				default:
					// Unknown escapes keep the backslash and the character.
					decodedRunes = append(decodedRunes, '\\')
					decodedRunes = append(decodedRunes, l.ch)
				}
				l.read() // skip escaped char
			}
			continue
		}
		rawRunes = append(rawRunes, l.ch)
		decodedRunes = append(decodedRunes, l.ch)
		l.read()
	}

	// Not terminated properly (newline or EOF); return what we have.
	return string(rawRunes), string(decodedRunes), false
}
