package main

import (
	"fmt"
	"github.com/funvibe/splat/internal/analyzer"
	"github.com/funvibe/splat/internal/ast"
	"github.com/funvibe/splat/internal/config"
	"github.com/funvibe/splat/internal/evaluator"
	"github.com/funvibe/splat/internal/lexer"
	"github.com/funvibe/splat/internal/parser"
	"github.com/funvibe/splat/internal/pipeline"
	"github.com/funvibe/splat/internal/prettyprinter"
	"github.com/mattn/go-isatty"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Version identifies the interpreter build.
// Can be set at build time using: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func handleHelp() bool {
	if len(os.Args) < 2 {
		return false
	}

	arg := os.Args[1]
	if arg != "-h" && arg != "-help" && arg != "--help" && arg != "help" {
		return false
	}

	fmt.Printf("Usage: %s [options] [file]\n", filepath.Base(os.Args[0]))
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -e, --eval <code>   Evaluate a one-liner and print its value")
	fmt.Println("  --ast <file>        Print the parsed syntax tree")
	fmt.Println("  --fmt <file>        Print the file in canonical formatting")
	fmt.Println("  -v, --version       Print the interpreter version")
	fmt.Println("  -h, --help          Show this help")
	fmt.Println()
	fmt.Printf("With no arguments %s starts a REPL on a terminal, or reads a\n", filepath.Base(os.Args[0]))
	fmt.Println("program from stdin when piped.")
	return true
}

func handleVersion() bool {
	if len(os.Args) < 2 {
		return false
	}

	arg := os.Args[1]
	if arg != "-v" && arg != "-version" && arg != "--version" && arg != "version" {
		return false
	}

	fmt.Printf("splat %s\n", Version)
	return true
}

// handleEval evaluates a one-liner (-e or --eval) and prints its value.
func handleEval() bool {
	if len(os.Args) < 2 {
		return false
	}

	if os.Args[1] != "-e" && os.Args[1] != "--eval" {
		return false
	}

	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s -e <code>\n", os.Args[0])
		os.Exit(1)
	}

	finalContext := runSource(os.Args[2], "<eval>")
	if result, ok := finalContext.Result.(evaluator.Object); ok {
		if result != nil && result.Type() != evaluator.NIL_OBJ {
			fmt.Println(result.Inspect())
		}
	}
	return true
}

// handleAst prints the parsed tree of a file (--ast).
func handleAst() bool {
	if len(os.Args) < 2 || os.Args[1] != "--ast" {
		return false
	}

	root := parseFileArg()
	printer := prettyprinter.NewTreePrinter()
	root.Accept(printer)
	fmt.Print(printer.String())
	return true
}

// handleFmt prints a file in canonical formatting (--fmt).
func handleFmt() bool {
	if len(os.Args) < 2 || os.Args[1] != "--fmt" {
		return false
	}

	root := parseFileArg()
	printer := prettyprinter.NewCodePrinter()
	root.Accept(printer)
	fmt.Print(printer.String())
	return true
}

// parseFileArg parses the file named by os.Args[2] and returns its tree.
// Exits on read or parse errors.
func parseFileArg() ast.Node {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s %s <file>\n", os.Args[0], os.Args[1])
		os.Exit(1)
	}

	sourceCode, err := os.ReadFile(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %s\n", err)
		os.Exit(1)
	}

	initialContext := pipeline.NewPipelineContext(string(sourceCode))
	initialContext.FilePath = os.Args[2]

	processingPipeline := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
	)

	finalContext := processingPipeline.Run(initialContext)
	if len(finalContext.Errors) > 0 {
		fmt.Fprintln(os.Stderr, "Processing failed with errors:")
		for _, err := range finalContext.Errors {
			fmt.Fprintf(os.Stderr, "- %s\n", err.Error())
		}
		os.Exit(1)
	}
	return finalContext.AstRoot
}

// runSource executes a program through the full pipeline and exits with
// code 1 on any diagnostic.
func runSource(sourceCode string, filePath string) *pipeline.PipelineContext {
	initialContext := pipeline.NewPipelineContext(sourceCode)
	initialContext.FilePath = filePath

	processingPipeline := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{},
		&evaluator.EvaluatorProcessor{},
	)

	finalContext := processingPipeline.Run(initialContext)

	if len(finalContext.Errors) > 0 {
		fmt.Fprintln(os.Stderr, "Processing failed with errors:")
		for _, err := range finalContext.Errors {
			fmt.Fprintf(os.Stderr, "- %s\n", err.Error())
		}
		os.Exit(1)
	}
	return finalContext
}

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if handleHelp() {
		return
	}
	if handleVersion() {
		return
	}
	if handleEval() {
		return
	}
	if handleAst() {
		return
	}
	if handleFmt() {
		return
	}

	if len(os.Args) >= 2 {
		path := os.Args[1]
		if !isSourceFile(path) {
			fmt.Fprintf(os.Stderr, "Error: not a source file (want %s): %s\n",
				strings.Join(config.SourceFileExtensions, " or "), path)
			os.Exit(1)
		}
		sourceCode, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %s\n", err)
			os.Exit(1)
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}
		runSource(string(sourceCode), absPath)
		return
	}

	// No arguments: a terminal gets the REPL, a pipe gets read as a program.
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		newRepl(os.Stdin, os.Stdout).Run()
		return
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %s\n", err)
		os.Exit(1)
	}
	runSource(string(input), "<stdin>")
}
