package lexer

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // index in []rune or original string
	End      int    // exclusive end index
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string // exact runes from source
	Value   string // decoded value (for strings, same as Literal for others)
	Span    Span   // source location information
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT  TokenType = "IDENT"  // count, foobar, x, y, ...
	INT    TokenType = "INT"    // 1343456
	FLOAT  TokenType = "FLOAT"  // 3.14
	STRING TokenType = "STRING" // "hello"

	// Operators
	ASSIGN          TokenType = "="
	PLUS            TokenType = "+"
	PLUS_ASSIGN     TokenType = "+="
	MINUS           TokenType = "-"
	MINUS_ASSIGN    TokenType = "-="
	ASTERISK        TokenType = "*"
	ASTERISK_ASSIGN TokenType = "*="
	SLASH           TokenType = "/"
	SLASH_ASSIGN    TokenType = "/="
	PERCENT         TokenType = "%"
	BANG            TokenType = "!"

	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	DOT       TokenType = "."

	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACE   TokenType = "{"
	RBRACE   TokenType = "}"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"

	// Keywords
	FN       TokenType = "FN"
	RETURN   TokenType = "RETURN"
	WHILE    TokenType = "WHILE"
	BREAK    TokenType = "BREAK"
	CONTINUE TokenType = "CONTINUE"
	LET      TokenType = "LET"
	MUT      TokenType = "MUT"
	IF       TokenType = "IF"
	ELSE     TokenType = "ELSE"
	TRUE     TokenType = "TRUE"
	FALSE    TokenType = "FALSE"
)

var keywords = map[string]TokenType{
	"fn":       FN,
	"return":   RETURN,
	"while":    WHILE,
	"break":    BREAK,
	"continue": CONTINUE,
	"let":      LET,
	"mut":      MUT,
	"if":       IF,
	"else":     ELSE,
	"true":     TRUE,
	"false":    FALSE,
}

// LookupIdent checks if the identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsAssignOp reports whether tt is one of the assignment operators.
func IsAssignOp(tt TokenType) bool {
	switch tt {
	case ASSIGN, PLUS_ASSIGN, MINUS_ASSIGN, ASTERISK_ASSIGN, SLASH_ASSIGN:
		return true
	default:
		return false
	}
}
