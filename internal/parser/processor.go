package parser

import (
	"github.com/funvibe/splat/internal/ast"
	"github.com/funvibe/splat/internal/diagnostics"
	"github.com/funvibe/splat/internal/pipeline"
	"github.com/funvibe/splat/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Name() string { return "parser" }

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.Errors) > 0 {
		return ctx
	}
	if ctx.TokenStream == nil {
		// Should not happen when the lexer runs first, but as a safeguard:
		err := diagnostics.NewError(diagnostics.ErrP200, token.Token{}, "parser: token stream is nil")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	ctx.AstRoot = parser.ParseProgram()

	if prog, ok := ctx.AstRoot.(*ast.Program); ok {
		prog.File = ctx.FilePath
	}

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
