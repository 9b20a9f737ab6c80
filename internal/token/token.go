package token

type TokenType string

type Token struct {
	Type    TokenType
	Lexeme  string      // raw source text
	Literal interface{} // parsed value for INT/FLOAT/STRING/BYTES, otherwise the lexeme
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"
	NEWLINE = "NEWLINE"

	IDENT  = "IDENT"
	INT    = "INT"
	FLOAT  = "FLOAT"
	STRING = "STRING"
	BYTES  = "BYTES"

	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	POWER    = "**"
	SLASH    = "/"
	PERCENT  = "%"
	BANG     = "!"

	EQ     = "=="
	NOT_EQ = "!="
	LT     = "<"
	GT     = ">"
	LTE    = "<="
	GTE    = ">="

	AND = "&&"
	OR  = "||"

	ARROW     = "->"
	BACKSLASH = "\\"

	COMMA = ","
	COLON = ":"
	DOT   = "."

	LPAREN   = "("
	RPAREN   = ")"
	LBRACKET = "["
	RBRACKET = "]"
	LBRACE   = "{"
	RBRACE   = "}"

	FOR      = "FOR"
	IN       = "IN"
	IF       = "IF"
	ELSE     = "ELSE"
	BREAK    = "BREAK"
	CONTINUE = "CONTINUE"
	TRUE     = "TRUE"
	FALSE    = "FALSE"
	NIL      = "NIL"
)

var keywords = map[string]TokenType{
	"for":      FOR,
	"in":       IN,
	"if":       IF,
	"else":     ELSE,
	"break":    BREAK,
	"continue": CONTINUE,
	"true":     TRUE,
	"false":    FALSE,
	"nil":      NIL,
}

// LookupIdent resolves keywords, returning IDENT for everything else.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
