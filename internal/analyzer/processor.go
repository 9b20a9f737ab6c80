package analyzer

import (
	"github.com/funvibe/splat/internal/ast"
	"github.com/funvibe/splat/internal/pipeline"
)

type SemanticAnalyzerProcessor struct{}

func (sap *SemanticAnalyzerProcessor) Name() string { return "analyzer" }

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.Errors) > 0 {
		return ctx
	}
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok || program == nil {
		return ctx
	}

	errors := New().Analyze(program)
	for _, err := range errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	ctx.Errors = append(ctx.Errors, errors...)
	return ctx
}
