package lexer

import (
	"testing"
)

func TestNextToken_Basic(t *testing.T) {
	input := `let x = 10;`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{LET, "let"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{INT, "10"},
		{SEMICOLON, ";"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}

	if len(l.Errors) != 0 {
		t.Fatalf("expected no lexer errors, got %d", len(l.Errors))
	}
}

func TestNextToken_Operators(t *testing.T) {
	input := `= + - * / % ! == != += -= *= /=`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{ASSIGN, "="},
		{PLUS, "+"},
		{MINUS, "-"},
		{ASTERISK, "*"},
		{SLASH, "/"},
		{PERCENT, "%"},
		{BANG, "!"},
		{EQ, "=="},
		{NOT_EQ, "!="},
		{PLUS_ASSIGN, "+="},
		{MINUS_ASSIGN, "-="},
		{ASTERISK_ASSIGN, "*="},
		{SLASH_ASSIGN, "/="},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_CompoundVsSimple(t *testing.T) {
	// Maximal munch: "+=" is one token, "+ =" is two.
	input := `+= + = !== == =`

	expected := []TokenType{
		PLUS_ASSIGN,
		PLUS,
		ASSIGN,
		NOT_EQ,
		ASSIGN,
		EQ,
		ASSIGN,
		EOF,
	}

	l := New(input)

	for i, typ := range expected {
		tok := l.NextToken()
		if tok.Type != typ {
			t.Fatalf("step %d - expected token %q, got %q", i, typ, tok.Type)
		}
	}
}

func TestNextToken_Keywords(t *testing.T) {
	input := `fn return while break continue let mut if else true false`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{FN, "fn"},
		{RETURN, "return"},
		{WHILE, "while"},
		{BREAK, "break"},
		{CONTINUE, "continue"},
		{LET, "let"},
		{MUT, "mut"},
		{IF, "if"},
		{ELSE, "else"},
		{TRUE, "true"},
		{FALSE, "false"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_Punctuation(t *testing.T) {
	input := `, ; . ( ) { } [ ]`

	expected := []TokenType{
		COMMA,
		SEMICOLON,
		DOT,
		LPAREN,
		RPAREN,
		LBRACE,
		RBRACE,
		LBRACKET,
		RBRACKET,
		EOF,
	}

	l := New(input)

	for i, typ := range expected {
		tok := l.NextToken()
		if tok.Type != typ {
			t.Fatalf("step %d - expected token %q, got %q", i, typ, tok.Type)
		}
	}
}

func TestNextToken_Identifiers(t *testing.T) {
	input := `foo _bar baz42 _ letter iffy`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{IDENT, "foo"},
		{IDENT, "_bar"},
		{IDENT, "baz42"},
		{IDENT, "_"},
		{IDENT, "letter"},
		{IDENT, "iffy"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_Integers(t *testing.T) {
	input := `0 7 1343456 007`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{INT, "0"},
		{INT, "7"},
		{INT, "1343456"},
		{INT, "007"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_Floats(t *testing.T) {
	input := `3.14 0.5 10.0`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{FLOAT, "3.14"},
		{FLOAT, "0.5"},
		{FLOAT, "10.0"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_FloatVsDot(t *testing.T) {
	// A '.' without a following digit ends the number: "42." is INT then DOT.
	input := `42. x.y 1.5.z`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{INT, "42"},
		{DOT, "."},
		{IDENT, "x"},
		{DOT, "."},
		{IDENT, "y"},
		{FLOAT, "1.5"},
		{DOT, "."},
		{IDENT, "z"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_StringLiterals(t *testing.T) {
	input := `"hello" "" "with spaces"`

	tests := []struct {
		expectedLiteral string
		expectedValue   string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"with spaces"`, "with spaces"},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != STRING {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, STRING, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}

		if tok.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Value)
		}
	}

	if tok := l.NextToken(); tok.Type != EOF {
		t.Fatalf("expected EOF, got %q", tok.Type)
	}
}

func TestNextToken_StringWithEscapes(t *testing.T) {
	input := `"a\nb" "tab\there" "quote\"inside" "back\\slash" "unknown\q"`

	tests := []struct {
		expectedLiteral string
		expectedValue   string
	}{
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"quote\"inside"`, `quote"inside`},
		{`"back\\slash"`, `back\slash`},
		{`"unknown\q"`, `unknown\q`},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != STRING {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, STRING, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}

		if tok.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Value)
		}
	}

	if len(l.Errors) != 0 {
		t.Fatalf("expected no lexer errors, got %d", len(l.Errors))
	}
}

func TestNextToken_UnterminatedString(t *testing.T) {
	input := `"never ends`

	l := New(input)

	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL token, got %q", tok.Type)
	}

	if len(l.Errors) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(l.Errors))
	}

	err := l.Errors[0]
	if err.Kind != ErrUnterminatedString {
		t.Fatalf("expected ErrUnterminatedString, got %v", err.Kind)
	}
	if err.Span.Line != 1 || err.Span.Column != 1 {
		t.Fatalf("expected error at 1:1, got %d:%d", err.Span.Line, err.Span.Column)
	}
}

func TestNextToken_NewlineInString(t *testing.T) {
	input := "\"split\nhere\""

	l := New(input)

	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL token, got %q", tok.Type)
	}

	if len(l.Errors) == 0 {
		t.Fatalf("expected a lexer error for newline in string")
	}
	if l.Errors[0].Kind != ErrUnterminatedString {
		t.Fatalf("expected ErrUnterminatedString, got %v", l.Errors[0].Kind)
	}
}

func TestNextToken_IllegalRune(t *testing.T) {
	input := `let @ = 1;`

	l := New(input)

	if tok := l.NextToken(); tok.Type != LET {
		t.Fatalf("expected LET, got %q", tok.Type)
	}

	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL token, got %q", tok.Type)
	}
	if tok.Literal != "@" {
		t.Fatalf("expected literal %q, got %q", "@", tok.Literal)
	}

	if len(l.Errors) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(l.Errors))
	}
	if l.Errors[0].Kind != ErrIllegalRune {
		t.Fatalf("expected ErrIllegalRune, got %v", l.Errors[0].Kind)
	}

	// The lexer keeps going after an illegal rune.
	if tok := l.NextToken(); tok.Type != ASSIGN {
		t.Fatalf("expected ASSIGN after illegal rune, got %q", tok.Type)
	}
}

func TestNextToken_Spans(t *testing.T) {
	input := "let x = 10;\nx + 2;"

	tests := []struct {
		expectedType   TokenType
		expectedLine   int
		expectedColumn int
		expectedStart  int
		expectedEnd    int
	}{
		{LET, 1, 1, 0, 3},
		{IDENT, 1, 5, 4, 5},
		{ASSIGN, 1, 7, 6, 7},
		{INT, 1, 9, 8, 10},
		{SEMICOLON, 1, 11, 10, 11},
		{IDENT, 2, 1, 12, 13},
		{PLUS, 2, 3, 14, 15},
		{INT, 2, 5, 16, 17},
		{SEMICOLON, 2, 6, 17, 18},
		{EOF, 2, 7, 18, 18},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Span.Line != tt.expectedLine || tok.Span.Column != tt.expectedColumn {
			t.Fatalf("tests[%d] - span position wrong. expected=%d:%d, got=%d:%d",
				i, tt.expectedLine, tt.expectedColumn, tok.Span.Line, tok.Span.Column)
		}

		if tok.Span.Start != tt.expectedStart || tok.Span.End != tt.expectedEnd {
			t.Fatalf("tests[%d] - span offsets wrong. expected=[%d,%d), got=[%d,%d)",
				i, tt.expectedStart, tt.expectedEnd, tok.Span.Start, tok.Span.End)
		}
	}
}

func TestNextToken_EOFEdges(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"whitespace only", "  \t\n  "},
	}

	for _, tt := range tests {
		l := New(tt.input)

		tok := l.NextToken()
		if tok.Type != EOF {
			t.Fatalf("%s: expected EOF, got %q", tt.name, tok.Type)
		}

		// EOF is stable on repeated calls.
		tok = l.NextToken()
		if tok.Type != EOF {
			t.Fatalf("%s: expected EOF on second call, got %q", tt.name, tok.Type)
		}
	}
}

func TestSetFilename(t *testing.T) {
	l := New(`x`)
	l.SetFilename("main.couch")

	tok := l.NextToken()
	if tok.Span.Filename != "main.couch" {
		t.Fatalf("expected filename %q, got %q", "main.couch", tok.Span.Filename)
	}
}

func TestLookupIdent(t *testing.T) {
	if got := LookupIdent("while"); got != WHILE {
		t.Fatalf("expected %q, got %q", WHILE, got)
	}
	if got := LookupIdent("whilex"); got != IDENT {
		t.Fatalf("expected %q, got %q", IDENT, got)
	}
}
