package diagnostics

import (
	"fmt"

	"github.com/funvibe/splat/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL100 ErrorCode = "L100" // illegal character
	ErrL101 ErrorCode = "L101" // unterminated string
	ErrL102 ErrorCode = "L102" // unterminated block comment
	ErrL103 ErrorCode = "L103" // invalid number literal

	// Parser
	ErrP200 ErrorCode = "P200" // unexpected token
	ErrP201 ErrorCode = "P201" // no parse rule for token
	ErrP202 ErrorCode = "P202" // expression nesting too deep
	ErrP203 ErrorCode = "P203" // invalid assignment target
	ErrP300 ErrorCode = "P300" // comprehension output must be a single element
	ErrP301 ErrorCode = "P301" // misplaced * or ** unpacking

	// Analyzer
	ErrA400 ErrorCode = "A400" // break/continue outside a loop
	ErrA401 ErrorCode = "A401" // duplicate parameter name

	// Runtime
	ErrR500 ErrorCode = "R500" // runtime error
)

type DiagnosticError struct {
	Code ErrorCode
	// Embedded so position reads as both e.Token.Line and the promoted
	// e.Line; the field is still named Token.
	token.Token
	Message string
	File    string
}

func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

func (e *DiagnosticError) Error() string {
	file := e.File
	if file == "" {
		file = "<source>"
	}
	return fmt.Sprintf("%s:%d:%d: [%s] %s", file, e.Token.Line, e.Token.Column, e.Code, e.Message)
}
