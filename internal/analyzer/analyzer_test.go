package analyzer_test

import (
	"strings"
	"testing"

	"github.com/funvibe/splat/internal/analyzer"
	"github.com/funvibe/splat/internal/diagnostics"
	"github.com/funvibe/splat/internal/lexer"
	"github.com/funvibe/splat/internal/parser"
	"github.com/funvibe/splat/internal/pipeline"
)

// analyzeWithErrors runs the lexer, parser and analyzer and returns all
// diagnostic errors.
func analyzeWithErrors(input string) []*diagnostics.DiagnosticError {
	ctx := &pipeline.PipelineContext{SourceCode: input}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	ctx = (&analyzer.SemanticAnalyzerProcessor{}).Process(ctx)
	return ctx.Errors
}

// expectError asserts that at least one error with the given code occurred.
func expectError(t *testing.T, input string, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	t.Helper()
	errs := analyzeWithErrors(input)
	if len(errs) == 0 {
		t.Fatalf("expected error %s, but got none\ninput: %s", code, input)
	}
	for _, e := range errs {
		if e.Code == code {
			return e
		}
	}
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	t.Fatalf("expected error %s, got:\n%s\ninput: %s", code, strings.Join(msgs, "\n"), input)
	return nil
}

// expectNoErrors asserts the program passes analysis without errors.
func expectNoErrors(t *testing.T, input string) {
	t.Helper()
	errs := analyzeWithErrors(input)
	if len(errs) > 0 {
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("expected no errors, got:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
}

// ---------------------------------------------------------------------------
// A400 — break/continue outside of loop
// ---------------------------------------------------------------------------

func TestA400_BareBreak(t *testing.T) {
	err := expectError(t, "break", diagnostics.ErrA400)
	if !strings.Contains(err.Message, "break statement outside of loop") {
		t.Errorf("unexpected message: %s", err.Message)
	}
	if err.Line != 1 || err.Column != 1 {
		t.Errorf("expected error at 1:1, got %d:%d", err.Line, err.Column)
	}
}

func TestA400_BareContinue(t *testing.T) {
	err := expectError(t, "continue", diagnostics.ErrA400)
	if !strings.Contains(err.Message, "continue statement outside of loop") {
		t.Errorf("unexpected message: %s", err.Message)
	}
}

func TestA400_BreakInIfOutsideLoop(t *testing.T) {
	expectError(t, "if true { break }", diagnostics.ErrA400)
}

func TestA400_BreakAfterLoop(t *testing.T) {
	input := "for x in xs { x }\nbreak"
	err := expectError(t, input, diagnostics.ErrA400)
	if err.Line != 2 {
		t.Errorf("expected error on line 2, got line %d", err.Line)
	}
}

func TestA400_BreakInLambdaInsideLoop(t *testing.T) {
	// A lambda body is a new function scope even inside a loop.
	input := "for x in xs { f = \\y -> if y { break } else { 0 } }"
	expectError(t, input, diagnostics.ErrA400)
}

func TestA400_BreakInComprehensionOutput(t *testing.T) {
	// A comprehension is not a loop that break can target.
	input := "ys = [if x { break } else { 0 } for x in xs]"
	expectError(t, input, diagnostics.ErrA400)
}

func TestA400_BreakInComprehensionInsideLoop(t *testing.T) {
	input := "for x in xs { ys = [if y { break } else { 0 } for y in zs] }"
	expectError(t, input, diagnostics.ErrA400)
}

func TestA400_BreakInLoopIterable(t *testing.T) {
	// The iterable runs before the loop body, so it is outside the loop.
	input := "for x in if b { break } else { xs } { x }"
	expectError(t, input, diagnostics.ErrA400)
}

func TestA400_ReportsEveryOccurrence(t *testing.T) {
	errs := analyzeWithErrors("break\ncontinue")
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	for _, e := range errs {
		if e.Code != diagnostics.ErrA400 {
			t.Errorf("expected code A400, got %s", e.Code)
		}
	}
}

// ---------------------------------------------------------------------------
// A401 — duplicate lambda parameter
// ---------------------------------------------------------------------------

func TestA401_DuplicateParameter(t *testing.T) {
	err := expectError(t, "f = \\x, x -> x", diagnostics.ErrA401)
	if !strings.Contains(err.Message, "duplicate parameter 'x'") {
		t.Errorf("unexpected message: %s", err.Message)
	}
}

func TestA401_DuplicateAmongMany(t *testing.T) {
	expectError(t, "g = \\a, b, a -> a + b", diagnostics.ErrA401)
}

func TestA401_NestedLambda(t *testing.T) {
	expectError(t, "h = \\x -> \\y, y -> y", diagnostics.ErrA401)
}

// ---------------------------------------------------------------------------
// Valid programs
// ---------------------------------------------------------------------------

func TestAnalyzerAcceptsBreakInLoop(t *testing.T) {
	expectNoErrors(t, "for x in xs { break }")
}

func TestAnalyzerAcceptsContinueInLoop(t *testing.T) {
	expectNoErrors(t, "for x in xs { if x { continue } }")
}

func TestAnalyzerAcceptsNestedLoops(t *testing.T) {
	input := "for x in xs {\n    for y in ys {\n        break\n    }\n    continue\n}"
	expectNoErrors(t, input)
}

func TestAnalyzerAcceptsLoopInsideComprehensionOutput(t *testing.T) {
	// The inner for expression is a real loop, even inside a comprehension.
	expectNoErrors(t, "ys = [(for y in row { break }) for row in rows]")
}

func TestAnalyzerAcceptsDistinctParameters(t *testing.T) {
	expectNoErrors(t, "f = \\x, y -> x + y")
}

func TestAnalyzerAcceptsShadowingAcrossLambdas(t *testing.T) {
	expectNoErrors(t, "f = \\x -> \\x -> x")
}

func TestAnalyzerAcceptsComprehensions(t *testing.T) {
	expectNoErrors(t, "ys = [*row for row in rows if row]")
	expectNoErrors(t, "d = {k: v for k, v in pairs}")
	expectNoErrors(t, "m = {**row for row in rows}")
	expectNoErrors(t, "g = (*chunk for chunk in chunks)")
}

func TestAnalyzerSkipsProgramsWithParseErrors(t *testing.T) {
	// Earlier stage errors pass through without extra analyzer noise.
	errs := analyzeWithErrors("x = )\nbreak")
	for _, e := range errs {
		if e.Code == diagnostics.ErrA400 {
			t.Errorf("analyzer ran on a broken parse: %v", e)
		}
	}
}
