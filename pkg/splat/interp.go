package splat

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/funvibe/splat/internal/analyzer"
	"github.com/funvibe/splat/internal/evaluator"
	"github.com/funvibe/splat/internal/lexer"
	"github.com/funvibe/splat/internal/parser"
	"github.com/funvibe/splat/internal/pipeline"
)

// Interp is an embedded interpreter. Bindings and evaluation results
// persist across Eval calls, so a host application can feed it code
// incrementally the way the REPL does.
type Interp struct {
	env        *evaluator.Environment
	marshaller *Marshaller
	out        io.Writer
}

func New() *Interp {
	return &Interp{
		env:        evaluator.NewEnvironment(),
		marshaller: NewMarshaller(),
		out:        os.Stdout,
	}
}

// SetOutput redirects print output, which goes to os.Stdout by default.
func (i *Interp) SetOutput(w io.Writer) {
	i.out = w
}

// Bind makes a Go value visible to scripts under name. Supported kinds
// are the ones the marshaller can convert; binding an unsupported value
// (a func, a channel) is an error.
func (i *Interp) Bind(name string, val interface{}) error {
	obj, err := i.marshaller.ToObject(val)
	if err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	i.env.Set(name, obj)
	return nil
}

// Eval runs code and returns the value of its last statement converted
// to a Go value. Diagnostics from any stage come back as one error.
func (i *Interp) Eval(code string) (interface{}, error) {
	return i.run(code, "<eval>")
}

// EvalFile runs the script at path.
func (i *Interp) EvalFile(path string) (interface{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return i.run(string(content), path)
}

// Get returns the current value of a script-level binding.
func (i *Interp) Get(name string) (interface{}, error) {
	obj, ok := i.env.Get(name)
	if !ok {
		return nil, fmt.Errorf("variable %q not found", name)
	}
	return i.marshaller.FromObject(obj)
}

func (i *Interp) run(code, filePath string) (interface{}, error) {
	ctx := pipeline.NewPipelineContext(code)
	ctx.FilePath = filePath
	ctx.Env = i.env
	ctx.Out = i.out

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{},
		&evaluator.EvaluatorProcessor{},
	)
	ctx = p.Run(ctx)

	if len(ctx.Errors) > 0 {
		msgs := make([]string, len(ctx.Errors))
		for n, e := range ctx.Errors {
			msgs[n] = e.Error()
		}
		return nil, fmt.Errorf("%s", strings.Join(msgs, "\n"))
	}

	result, ok := ctx.Result.(evaluator.Object)
	if !ok || result == nil {
		return nil, nil
	}
	return i.marshaller.FromObject(result)
}
