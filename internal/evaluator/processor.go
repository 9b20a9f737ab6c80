package evaluator

import (
	"path/filepath"

	"github.com/funvibe/splat/internal/diagnostics"
	"github.com/funvibe/splat/internal/pipeline"
	"github.com/funvibe/splat/internal/token"
)

type EvaluatorProcessor struct{}

func (ep *EvaluatorProcessor) Name() string { return "evaluator" }

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	eval := New()
	if ctx.Out != nil {
		eval.Out = ctx.Out
	}
	if ctx.FilePath != "" {
		eval.CurrentFile = filepath.Base(ctx.FilePath)
	} else {
		eval.CurrentFile = "<stdin>"
	}

	// A REPL session carries its environment across lines; everything else
	// gets a fresh one.
	env, ok := ctx.Env.(*Environment)
	if !ok || env == nil {
		env = NewEnvironment()
		ctx.Env = env
	}

	result := eval.Eval(ctx.AstRoot, env)
	if result != nil && result.Type() == ERROR_OBJ {
		err := result.(*Error)
		tok := token.Token{Line: err.Line, Column: err.Column}
		diag := diagnostics.NewError(diagnostics.ErrR500, tok, err.Message)
		diag.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, diag)
		return ctx
	}

	ctx.Result = result
	return ctx
}
