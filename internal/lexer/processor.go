package lexer

import (
	"strings"

	"github.com/funvibe/splat/internal/diagnostics"
	"github.com/funvibe/splat/internal/pipeline"
	"github.com/funvibe/splat/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Name() string { return "lexer" }

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.Errors) > 0 {
		return ctx
	}

	l := New(ctx.SourceCode)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			err := diagnostics.NewError(codeFor(tok), tok, illegalMessage(tok))
			err.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, err)
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	ctx.TokenStream = token.NewStream(tokens)
	return ctx
}

func illegalMessage(tok token.Token) string {
	if msg, ok := tok.Literal.(string); ok && msg != "" {
		return msg
	}
	return "illegal token"
}

func codeFor(tok token.Token) diagnostics.ErrorCode {
	msg := illegalMessage(tok)
	switch {
	case strings.HasPrefix(msg, "unterminated string"), strings.HasPrefix(msg, "unterminated bytes"):
		return diagnostics.ErrL101
	case strings.HasPrefix(msg, "unterminated block comment"):
		return diagnostics.ErrL102
	case strings.HasPrefix(msg, "invalid number literal"), strings.HasPrefix(msg, "invalid hex bytes"):
		return diagnostics.ErrL103
	default:
		return diagnostics.ErrL100
	}
}
