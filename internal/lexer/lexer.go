package lexer

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/splat/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number

	pendingErr *token.Token // set by skipWhitespace for unterminated block comments
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()
	if l.pendingErr != nil {
		tok = *l.pendingErr
		l.pendingErr = nil
		return tok
	}

	switch l.ch {
	case '\n':
		tok = newToken(token.NEWLINE, l.ch, l.line, l.column)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Lexeme: "==", Literal: "==", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.ASSIGN, l.ch, l.line, l.column)
		}
	case '+':
		tok = newToken(token.PLUS, l.ch, l.line, l.column)
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.ARROW, Lexeme: "->", Literal: "->", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.MINUS, l.ch, l.line, l.column)
		}
	case '/':
		tok = newToken(token.SLASH, l.ch, l.line, l.column)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Lexeme: "!=", Literal: "!=", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.BANG, l.ch, l.line, l.column)
		}
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			tok = token.Token{Type: token.POWER, Lexeme: "**", Literal: "**", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.ASTERISK, l.ch, l.line, l.column)
		}
	case '%':
		tok = newToken(token.PERCENT, l.ch, l.line, l.column)
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LTE, Lexeme: "<=", Literal: "<=", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.LT, l.ch, l.line, l.column)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GTE, Lexeme: ">=", Literal: ">=", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.GT, l.ch, l.line, l.column)
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = token.Token{Type: token.AND, Lexeme: "&&", Literal: "&&", Line: l.line, Column: l.column}
		} else {
			tok = illegalToken(fmt.Sprintf("illegal character %q", l.ch), l.line, l.column)
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = token.Token{Type: token.OR, Lexeme: "||", Literal: "||", Line: l.line, Column: l.column}
		} else {
			tok = illegalToken(fmt.Sprintf("illegal character %q", l.ch), l.line, l.column)
		}
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case ',':
		tok = newToken(token.COMMA, l.ch, l.line, l.column)
	case ':':
		tok = newToken(token.COLON, l.ch, l.line, l.column)
	case '.':
		tok = newToken(token.DOT, l.ch, l.line, l.column)
	case '\\':
		tok = newToken(token.BACKSLASH, l.ch, l.line, l.column)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case '[':
		tok = newToken(token.LBRACKET, l.ch, l.line, l.column)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, l.line, l.column)
	case '@':
		// @"...", @x"..." - Bytes literals. The lexeme is the verbatim
		// source slice: bytes content is read raw, so re-quoting it would
		// change what a reprint parses back to.
		startLine, startCol := l.line, l.column
		startPos := l.position
		if l.peekChar() == '"' {
			l.readChar() // consume @, now at "
			content, ok := l.readString()
			if !ok {
				tok = illegalToken("unterminated bytes literal", startLine, startCol)
			} else {
				tok = token.Token{Type: token.BYTES, Lexeme: l.input[startPos : l.position+1], Literal: []byte(content), Line: startLine, Column: startCol}
			}
		} else if l.peekChar() == 'x' {
			l.readChar() // consume @, now at x
			if l.peekChar() == '"' {
				l.readChar() // consume x, now at "
				content, ok := l.readString()
				if !ok {
					tok = illegalToken("unterminated bytes literal", startLine, startCol)
				} else if data, err := hex.DecodeString(strings.ReplaceAll(content, " ", "")); err != nil {
					tok = illegalToken(fmt.Sprintf("invalid hex bytes literal %q", content), startLine, startCol)
				} else {
					tok = token.Token{Type: token.BYTES, Lexeme: l.input[startPos : l.position+1], Literal: data, Line: startLine, Column: startCol}
				}
			} else {
				tok = illegalToken("illegal character '@'", startLine, startCol)
			}
		} else {
			tok = illegalToken("illegal character '@'", startLine, startCol)
		}
	case '"':
		startLine, startCol := l.line, l.column
		content, ok := l.readEscapedString()
		if !ok {
			tok = illegalToken("unterminated string", startLine, startCol)
		} else {
			tok.Type = token.STRING
			tok.Literal = content
			tok.Lexeme = fmt.Sprintf("%q", content)
			tok.Line = startLine
			tok.Column = startCol
		}
	case 0:
		tok.Lexeme = ""
		tok.Type = token.EOF
		tok.Line = l.line
		tok.Column = l.column
	default:
		if isLetter(l.ch) {
			startLine, startCol := l.line, l.column
			lexeme := l.readIdentifier()
			tok.Lexeme = lexeme
			tok.Type = token.LookupIdent(lexeme)
			tok.Literal = lexeme
			tok.Line = startLine
			tok.Column = startCol
			return tok
		} else if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = illegalToken(fmt.Sprintf("illegal character %q", l.ch), l.line, l.column)
	}

	l.readChar()
	return tok
}

// readString reads up to the closing quote without escape processing.
// Used for bytes literals.
func (l *Lexer) readString() (string, bool) {
	position := l.position + 1
	for {
		l.readChar()
		if l.ch == '"' {
			return l.input[position:l.position], true
		}
		if l.ch == 0 {
			return l.input[position:l.position], false
		}
	}
}

// readEscapedString reads a double-quoted string, resolving escape
// sequences. Unknown escapes are kept verbatim.
func (l *Lexer) readEscapedString() (string, bool) {
	var result []byte
	buf := make([]byte, 4)

	for {
		l.readChar()
		if l.ch == 0 {
			return string(result), false
		}
		if l.ch == '"' {
			return string(result), true
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			case 'r':
				result = append(result, '\r')
			case '0':
				result = append(result, 0)
			case '\\':
				result = append(result, '\\')
			case '"':
				result = append(result, '"')
			case 0:
				return string(result), false
			default:
				result = append(result, '\\')
				n := utf8.EncodeRune(buf, l.ch)
				result = append(result, buf[:n]...)
			}
			continue
		}
		n := utf8.EncodeRune(buf, l.ch)
		result = append(result, buf[:n]...)
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() token.Token {
	startLine, startCol := l.line, l.column
	position := l.position
	base := 10
	isFloat := false

	// Check for base prefixes: 0x, 0b, 0o
	if l.ch == '0' {
		peek := l.peekChar()
		if peek == 'x' || peek == 'X' {
			l.readChar()
			l.readChar()
			base = 16
		} else if peek == 'b' || peek == 'B' {
			l.readChar()
			l.readChar()
			base = 2
		} else if peek == 'o' || peek == 'O' {
			l.readChar()
			l.readChar()
			base = 8
		}
	}

	for {
		if base == 16 {
			if !isHexDigit(l.ch) {
				break
			}
		} else {
			if !isDigit(l.ch) {
				break
			}
		}
		l.readChar()
	}

	// Fraction (base 10 only)
	if base == 10 && l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar() // .
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	// Exponent (base 10 only)
	if base == 10 && (l.ch == 'e' || l.ch == 'E') {
		peek := l.peekChar()
		if isDigit(peek) || ((peek == '+' || peek == '-') && isDigit(l.peekChar2())) {
			isFloat = true
			l.readChar() // e
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	lexeme := l.input[position:l.position]

	if isFloat {
		val, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: fmt.Sprintf("invalid number literal %q", lexeme), Line: startLine, Column: startCol}
		}
		return token.Token{Type: token.FLOAT, Lexeme: lexeme, Literal: val, Line: startLine, Column: startCol}
	}

	// strconv.ParseInt(s, 0, 64) auto-detects the 0x/0b/0o prefixes
	val, err := strconv.ParseInt(lexeme, 0, 64)
	if err != nil {
		return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: fmt.Sprintf("invalid number literal %q", lexeme), Line: startLine, Column: startCol}
	}
	return token.Token{Type: token.INT, Lexeme: lexeme, Literal: val, Line: startLine, Column: startCol}
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) peekChar2() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	_, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	pos2 := l.readPosition + w
	if pos2 >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos2:])
	return r
}

func newToken(tokenType token.TokenType, ch rune, line, col int) token.Token {
	literal := string(ch)
	return token.Token{Type: tokenType, Lexeme: literal, Literal: literal, Line: line, Column: col}
}

func illegalToken(message string, line, col int) token.Token {
	return token.Token{Type: token.ILLEGAL, Literal: message, Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.readChar()
		}
		// Handle comments
		if l.ch == '/' {
			if l.peekChar() == '/' {
				l.readChar() // consume first /
				l.readChar() // consume second /
				for l.ch != '\n' && l.ch != 0 {
					l.readChar()
				}
				continue
			} else if l.peekChar() == '*' {
				startLine, startCol := l.line, l.column
				l.readChar() // consume /
				l.readChar() // consume *
				closed := false
				for l.ch != 0 {
					if l.ch == '*' && l.peekChar() == '/' {
						l.readChar() // consume *
						l.readChar() // consume /
						closed = true
						break
					}
					l.readChar()
				}
				if !closed {
					errTok := illegalToken("unterminated block comment", startLine, startCol)
					l.pendingErr = &errTok
				}
				continue
			}
		}
		break
	}
}
