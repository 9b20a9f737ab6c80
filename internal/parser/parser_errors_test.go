package parser_test

import (
	"strings"
	"testing"

	"github.com/funvibe/splat/internal/diagnostics"
	"github.com/funvibe/splat/internal/lexer"
	"github.com/funvibe/splat/internal/parser"
	"github.com/funvibe/splat/internal/pipeline"
)

// parseWithErrors runs the lexer+parser and returns all diagnostic errors.
func parseWithErrors(input string) []*diagnostics.DiagnosticError {
	ctx := &pipeline.PipelineContext{SourceCode: input}
	lp := &lexer.LexerProcessor{}
	ctx = lp.Process(ctx)
	pp := &parser.ParserProcessor{}
	ctx = pp.Process(ctx)
	return ctx.Errors
}

// expectError asserts that at least one error with the given code occurred.
func expectError(t *testing.T, input string, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	t.Helper()
	errs := parseWithErrors(input)
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

// expectNoErrors asserts parsing succeeds without errors.
func expectNoErrors(t *testing.T, input string) {
	t.Helper()
	errs := parseWithErrors(input)
	if len(errs) > 0 {
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("expected no errors, got:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
}

// ---------------------------------------------------------------------------
// P200 — Unexpected token
// ---------------------------------------------------------------------------

func TestP200_MissingRParen(t *testing.T) {
	expectError(t, "x = (1 + 2", diagnostics.ErrP200)
}

func TestP200_MissingRBracket(t *testing.T) {
	expectError(t, "xs = [1, 2", diagnostics.ErrP200)
}

func TestP200_CallMissingRParen(t *testing.T) {
	expectError(t, "f(1, 2", diagnostics.ErrP200)
}

func TestP200_DictMissingRBrace(t *testing.T) {
	expectError(t, "d = {1: 2", diagnostics.ErrP200)
}

func TestP200_MissingNewlineBetweenStatements(t *testing.T) {
	e := expectError(t, "x = 5 y", diagnostics.ErrP200)
	if !strings.Contains(e.Error(), "newline") {
		t.Errorf("unexpected message: %s", e.Error())
	}
}

func TestP200_UnclosedBlock(t *testing.T) {
	e := expectError(t, "for x in xs { 1", diagnostics.ErrP200)
	if !strings.Contains(e.Error(), "end of input") {
		t.Errorf("unexpected message: %s", e.Error())
	}
}

func TestP200_ForWithoutIn(t *testing.T) {
	expectError(t, "for x xs { x }", diagnostics.ErrP200)
}

func TestP200_CompForWithoutTarget(t *testing.T) {
	expectError(t, "[x for in xs]", diagnostics.ErrP200)
}

// ---------------------------------------------------------------------------
// P201 — No parse rule for token
// ---------------------------------------------------------------------------

func TestP201_UnexpectedRParen(t *testing.T) {
	expectError(t, "x = )", diagnostics.ErrP201)
}

func TestP201_UnexpectedRBracket(t *testing.T) {
	expectError(t, "x = ]", diagnostics.ErrP201)
}

func TestP201_ExpressionStartsWithComma(t *testing.T) {
	expectError(t, ", x", diagnostics.ErrP201)
}

// ---------------------------------------------------------------------------
// P202 — Recursion depth exceeded
// ---------------------------------------------------------------------------

func TestP202_DeeplyNestedParens(t *testing.T) {
	depth := 600
	input := "x = " + strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
	e := expectError(t, input, diagnostics.ErrP202)
	if !strings.Contains(e.Error(), "recursion depth") {
		t.Errorf("unexpected message: %s", e.Error())
	}
}

// ---------------------------------------------------------------------------
// P203 — Invalid assignment target
// ---------------------------------------------------------------------------

func TestP203_IndexAssign(t *testing.T) {
	expectError(t, "xs[0] = 1", diagnostics.ErrP203)
}

func TestP203_CallResultAssign(t *testing.T) {
	expectError(t, "f() = 2", diagnostics.ErrP203)
}

// ---------------------------------------------------------------------------
// P300 — Comprehension output must be a single expression
// ---------------------------------------------------------------------------

func TestP300_ListMixedPlainAndStarred(t *testing.T) {
	e := expectError(t, "[x, *y for y in z]", diagnostics.ErrP300)
	if e.Token.Line != 1 || e.Token.Column != 8 {
		t.Errorf("error should point at the 'for', got %d:%d", e.Token.Line, e.Token.Column)
	}
}

func TestP300_ListTwoPlainOutputs(t *testing.T) {
	expectError(t, "[a, b for b in c]", diagnostics.ErrP300)
}

func TestP300_ListDanglingComma(t *testing.T) {
	expectError(t, "[x, for y in z]", diagnostics.ErrP300)
}

func TestP300_SetMixedPlainAndStarred(t *testing.T) {
	expectError(t, "{x, *y for y in z}", diagnostics.ErrP300)
}

func TestP300_DictEntryPlusMerge(t *testing.T) {
	expectError(t, "{1: 2, **m for m in ms}", diagnostics.ErrP300)
}

func TestP300_TupleMixed(t *testing.T) {
	expectError(t, "(x, *y for y in z)", diagnostics.ErrP300)
}

func TestP300_GenexpBesideOtherArgs(t *testing.T) {
	e := expectError(t, "f(x, y for y in z)", diagnostics.ErrP300)
	if !strings.Contains(e.Error(), "parenthesized") {
		t.Errorf("unexpected message: %s", e.Error())
	}
}

// ---------------------------------------------------------------------------
// P301 — Misplaced * or ** unpacking
// ---------------------------------------------------------------------------

func TestP301_BareStarExpression(t *testing.T) {
	expectError(t, "*x", diagnostics.ErrP301)
}

func TestP301_StarAssignValue(t *testing.T) {
	expectError(t, "x = *y", diagnostics.ErrP301)
}

func TestP301_DoubleStarAssignValue(t *testing.T) {
	expectError(t, "x = **m", diagnostics.ErrP301)
}

func TestP301_ParenthesizedStarAlone(t *testing.T) {
	e := expectError(t, "(*x)", diagnostics.ErrP301)
	if !strings.Contains(e.Error(), "trailing comma") {
		t.Errorf("unexpected message: %s", e.Error())
	}
}

func TestP301_StarAsDictKey(t *testing.T) {
	expectError(t, "{*k: v}", diagnostics.ErrP301)
}

func TestP301_StarAsDictValue(t *testing.T) {
	expectError(t, "{k: *v}", diagnostics.ErrP301)
}

func TestP301_StarAfterDictEntry(t *testing.T) {
	expectError(t, "{1: 2, *x}", diagnostics.ErrP301)
}

func TestP301_DoubleStarInList(t *testing.T) {
	e := expectError(t, "[**m]", diagnostics.ErrP301)
	if !strings.Contains(e.Error(), "dict") {
		t.Errorf("unexpected message: %s", e.Error())
	}
}

func TestP301_DoubleStarInListComp(t *testing.T) {
	expectError(t, "[**m for m in ms]", diagnostics.ErrP301)
}

func TestP301_DoubleStarInGenexp(t *testing.T) {
	expectError(t, "(**m for m in ms)", diagnostics.ErrP301)
}

func TestP301_DoubleStarAsCallArgument(t *testing.T) {
	expectError(t, "f(**kw)", diagnostics.ErrP301)
}

func TestP301_StarredCallGenexp(t *testing.T) {
	e := expectError(t, "f(*x for x in y)", diagnostics.ErrP301)
	if !strings.Contains(e.Error(), "parenthesize") {
		t.Errorf("unexpected message: %s", e.Error())
	}
}

// ---------------------------------------------------------------------------
// Error recovery — the parser should continue after an error and report all
// ---------------------------------------------------------------------------

func TestRecovery_MultipleErrors(t *testing.T) {
	errs := parseWithErrors("x = )\ny = ]")
	if len(errs) < 2 {
		t.Fatalf("expected at least 2 errors, got %d", len(errs))
	}
}

func TestRecovery_ContinuesAfterBadStatement(t *testing.T) {
	errs := parseWithErrors("x = )\ny = 5")
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d", len(errs))
	}
	if errs[0].Code != diagnostics.ErrP201 {
		t.Errorf("expected P201, got %s: %s", errs[0].Code, errs[0].Error())
	}
}

// ---------------------------------------------------------------------------
// Positive controls — valid code should produce no errors
// ---------------------------------------------------------------------------

func TestValid_SimpleAssignment(t *testing.T) {
	expectNoErrors(t, "x = 5")
}

func TestValid_ListOps(t *testing.T) {
	expectNoErrors(t, "xs = [1, 2, 3]\ny = xs[0]")
}

func TestValid_StarredListComp(t *testing.T) {
	expectNoErrors(t, "[*a for a in b]")
}

func TestValid_DoubleStarDictComp(t *testing.T) {
	expectNoErrors(t, "{**a for a in b}")
}

func TestValid_Genexp(t *testing.T) {
	expectNoErrors(t, "(x for x in y)")
}

func TestValid_CallSoleGenexp(t *testing.T) {
	expectNoErrors(t, "sum(x for x in y)")
}

func TestValid_SingleStarredTuple(t *testing.T) {
	expectNoErrors(t, "t = (*xs,)")
}

func TestValid_DictDoubleMerge(t *testing.T) {
	expectNoErrors(t, "d = {**a, **b}")
}

func TestValid_ForTwoTargets(t *testing.T) {
	expectNoErrors(t, "for k, v in d {\n    print(k)\n}")
}

func TestValid_NestedStarredComp(t *testing.T) {
	expectNoErrors(t, "[[*y for y in row] for row in rows]")
}
