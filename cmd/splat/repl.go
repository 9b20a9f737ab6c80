package main

import (
	"bufio"
	"fmt"
	"github.com/funvibe/splat/internal/analyzer"
	"github.com/funvibe/splat/internal/config"
	"github.com/funvibe/splat/internal/evaluator"
	"github.com/funvibe/splat/internal/lexer"
	"github.com/funvibe/splat/internal/parser"
	"github.com/funvibe/splat/internal/pipeline"
	"github.com/mattn/go-isatty"
	"io"
	"os"
	"strings"
)

// repl is the interactive read-eval-print loop. Bindings persist across
// lines through a shared environment.
type repl struct {
	in     io.Reader
	out    io.Writer
	env    *evaluator.Environment
	colors bool
}

func newRepl(in io.Reader, out io.Writer) *repl {
	return &repl{
		in:     in,
		out:    out,
		env:    evaluator.NewEnvironment(),
		colors: replColorsEnabled(),
	}
}

// replColorsEnabled follows the NO_COLOR convention and falls back to a
// terminal check on stdout.
func replColorsEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func (r *repl) paint(code, s string) string {
	if !r.colors {
		return s
	}
	return code + s + "\033[0m"
}

func (r *repl) Run() {
	fmt.Fprintf(r.out, "splat %s (:quit to exit)\n", Version)

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, r.paint("\033[1m", config.ReplPrompt))
		if !scanner.Scan() {
			// EOF (ctrl-D) leaves the loop like :quit does.
			fmt.Fprintln(r.out)
			return
		}

		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" || trimmed == ":exit" || trimmed == ":q" {
			return
		}

		r.runLine(line)
	}
}

func (r *repl) runLine(line string) {
	initialContext := pipeline.NewPipelineContext(line)
	initialContext.FilePath = "<repl>"
	initialContext.Env = r.env
	initialContext.Out = r.out

	processingPipeline := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{},
		&evaluator.EvaluatorProcessor{},
	)

	finalContext := processingPipeline.Run(initialContext)

	if len(finalContext.Errors) > 0 {
		for _, err := range finalContext.Errors {
			fmt.Fprintf(r.out, "%s\n", r.paint("\033[31m", err.Error()))
		}
		return
	}

	if result, ok := finalContext.Result.(evaluator.Object); ok {
		if result != nil && result.Type() != evaluator.NIL_OBJ {
			fmt.Fprintln(r.out, result.Inspect())
		}
	}
}
