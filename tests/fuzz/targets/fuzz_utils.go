package targets

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/funvibe/splat/internal/evaluator"
	"github.com/funvibe/splat/internal/lexer"
	"github.com/funvibe/splat/internal/parser"
	"github.com/funvibe/splat/internal/pipeline"
)

var lineInfoRegex = regexp.MustCompile(`at \d+:\d+:`)

// errorLocationRegex matches "ERROR at N:N: " or "at N:N " prefixes in error
// messages. Printed code has different positions than the original, so
// locations are stripped before comparing errors.
var errorLocationRegex = regexp.MustCompile(`(?:ERROR )?at \d+:\d+:?\s*`)

// parseSource runs the lexer and parser stages on code and returns the context.
// The parsed program, if any, is in ctx.AstRoot.
func parseSource(code string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(code)
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
	)
	return p.Run(ctx)
}

// isResourceExhaustionError returns true if the error is caused by resource limits
// (timeout, recursion depth, etc.) rather than a semantic bug.
func isResourceExhaustionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "execution timeout") ||
		strings.Contains(msg, "context deadline exceeded") ||
		strings.Contains(msg, "maximum recursion depth exceeded")
}

// extractCoreError strips the "ERROR at N:N:" location prefix and anything
// after the first line to get the canonical error message for comparison.
func extractCoreError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()

	// Take only the first line
	if idx := strings.Index(msg, "\n"); idx >= 0 {
		msg = msg[:idx]
	}

	msg = errorLocationRegex.ReplaceAllString(msg, "")

	return strings.TrimSpace(msg)
}

// areResultsEqual checks if two evaluator objects are equal.
func areResultsEqual(a, b evaluator.Object) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type() != b.Type() {
		return false
	}
	// Simple string comparison for now
	return a.Inspect() == b.Inspect()
}

// inspect returns a string representation of an evaluator object.
func inspect(o evaluator.Object) string {
	if o == nil {
		return "nil"
	}
	return o.Inspect()
}

// getErrorType categorizes an error based on its message.
func getErrorType(err error) string {
	if err == nil {
		return "nil"
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "index out of range"):
		return "IndexOutOfBounds"
	case strings.Contains(msg, "division by zero"), strings.Contains(msg, "modulo by zero"):
		return "DivisionByZero"
	case strings.Contains(msg, "wrong number of arguments"):
		return "ArgumentError"
	case strings.Contains(msg, "unknown operator"),
		strings.Contains(msg, "not supported"),
		strings.Contains(msg, "cannot iterate over"),
		strings.Contains(msg, "is not a mapping"),
		strings.Contains(msg, "unhashable type"),
		strings.Contains(msg, "cannot compare"),
		strings.Contains(msg, "not a function"),
		strings.Contains(msg, "must be") && strings.Contains(msg, "got"):
		return "TypeError"
	case strings.Contains(msg, "identifier not found"):
		return "NameError"
	case strings.Contains(msg, "maximum recursion depth"):
		return "StackOverflow"
	case strings.Contains(msg, "expected"), strings.Contains(msg, "unexpected token"):
		return "SyntaxError"
	default:
		// Strip line info for fallback comparison
		cleanMsg := lineInfoRegex.ReplaceAllString(msg, "at ?:?:")

		// Fallback to a generic category or the message itself if it's unique enough
		if len(cleanMsg) > 50 {
			return "Other"
		}
		return strings.ReplaceAll(cleanMsg, " ", "_")
	}
}

// LoadCorpus loads all .splat files from the given directories and adds them
// to the fuzz corpus.
func LoadCorpus(f *testing.F, dirs ...string) {
	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && strings.HasSuffix(path, ".splat") {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				f.Add(data)
			}
			return nil
		})
		if err != nil {
			// It's okay if we can't load examples, just log it
			f.Logf("Failed to load corpus from %s: %v", dir, err)
		}
	}
}
