package pipeline

import (
	"io"

	"github.com/funvibe/splat/internal/ast"
	"github.com/funvibe/splat/internal/diagnostics"
	"github.com/funvibe/splat/internal/token"
)

// Processor is a single pipeline stage. Stages share one context; a stage
// that sees earlier errors should pass the context through untouched.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
	Name() string
}

// PipelineContext carries the program through lexing, parsing, analysis and
// evaluation.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	TokenStream *token.Stream
	AstRoot     ast.Node

	Errors []*diagnostics.DiagnosticError

	// Out receives evaluator output (print). Defaults to os.Stdout when nil.
	Out io.Writer

	// Env holds a *evaluator.Environment for REPL sessions that keep state
	// across lines. Typed as interface{} to keep the evaluator dependency
	// one-directional.
	Env interface{}

	// Result holds the evaluator.Object produced by the last statement.
	Result interface{}
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{SourceCode: sourceCode}
}
