package parser_test

import (
	"strings"
	"testing"

	"github.com/funvibe/splat/internal/lexer"
	"github.com/funvibe/splat/internal/parser"
	"github.com/funvibe/splat/internal/pipeline"
	"github.com/funvibe/splat/internal/prettyprinter"
)

// parseProgram runs the lexer and parser, failing the test on any diagnostic.
func parseProgram(t *testing.T, input string) *pipeline.PipelineContext {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: input}
	lp := &lexer.LexerProcessor{}
	ctx = lp.Process(ctx)
	pp := &parser.ParserProcessor{}
	ctx = pp.Process(ctx)
	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, e := range ctx.Errors {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("parsing failed with errors:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
	return ctx
}

// TestParserPrintsSource parses each input and checks the reconstructed
// source. The printer normalizes spacing and drops redundant parentheses, so
// the expected text is the canonical form, not always the input verbatim.
func TestParserPrintsSource(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_assignment", "a = 5", "a = 5\n"},
		{"operator_precedence", "a = 5 + 2 * 10", "a = 5 + 2 * 10\n"},
		{"grouping_preserved", "a = (5 + 2) * 10", "a = (5 + 2) * 10\n"},
		{"prefix_minus", "a = -5", "a = -5\n"},
		{"prefix_bang", "a = !b || c", "a = !b || c\n"},
		{"power_right_assoc", "a = 2 ** 3 ** 2", "a = 2 ** 3 ** 2\n"},
		{"minus_binds_below_power", "a = -2 ** 2", "a = -(2 ** 2)\n"},
		{"membership", "a = x in xs", "a = x in xs\n"},
		{"comparison_over_equality", "a = 1 < 2 == true", "a = 1 < 2 == true\n"},
		{"true_division", "a = 7 / 2", "a = 7 / 2\n"},

		{"empty_list", "xs = []", "xs = []\n"},
		{"list_display", "xs = [1, 2, 3]", "xs = [1, 2, 3]\n"},
		{"list_trailing_comma", "xs = [1, 2,]", "xs = [1, 2]\n"},
		{"list_spread", "xs = [*a, b, *c]", "xs = [*a, b, *c]\n"},
		{"empty_tuple", "t = ()", "t = ()\n"},
		{"single_tuple", "t = (1,)", "t = (1,)\n"},
		{"tuple_display", "t = (1, true, a)", "t = (1, true, a)\n"},
		{"tuple_spread", "t = (*xs, 9)", "t = (*xs, 9)\n"},
		{"grouping_is_not_a_tuple", "t = (1 + 2)", "t = 1 + 2\n"},
		{"empty_dict", "d = {}", "d = {}\n"},
		{"set_display", "s = {1, 2}", "s = {1, 2}\n"},
		{"set_spread", "s = {*a, 3}", "s = {*a, 3}\n"},
		{"dict_display", `d = {1: "a", 2: "b"}`, "d = {1: \"a\", 2: \"b\"}\n"},
		{"dict_merge", "d = {**base, 1: 2}", "d = {**base, 1: 2}\n"},

		{"index", "x = xs[0]", "x = xs[0]\n"},
		{"index_negative", "x = xs[-1]", "x = xs[-1]\n"},
		{"call", "y = f(1, g(2))", "y = f(1, g(2))\n"},
		{"call_spread", "f(*args, 1)", "f(*args, 1)\n"},
		{"lambda", `f = \x, y -> x + y`, "f = \\x, y -> x + y\n"},
		{"lambda_no_params", `f = \ -> 42`, "f = \\ -> 42\n"},

		{"list_comp", "ys = [y * 2 for y in xs if y > 0]", "ys = [y * 2 for y in xs if y > 0]\n"},
		{"list_comp_starred", "ys = [*row for row in rows]", "ys = [*row for row in rows]\n"},
		{"set_comp", "s = {c for c in word}", "s = {c for c in word}\n"},
		{"set_comp_starred", "s = {*group for group in groups}", "s = {*group for group in groups}\n"},
		{"dict_comp", "d = {k: v for k, v in items(pairs)}", "d = {k: v for k, v in items(pairs)}\n"},
		{"dict_comp_merge", "d = {**m for m in maps}", "d = {**m for m in maps}\n"},
		{"genexp", "g = (n * n for n in range(5))", "g = (n * n for n in range(5))\n"},
		{"genexp_starred", "g = (*pair for pair in pairs)", "g = (*pair for pair in pairs)\n"},
		{"call_sole_genexp", "total = sum(n for n in ns)", "total = sum(n for n in ns)\n"},
		{"comp_two_fors", "ps = [x + y for x in a for y in b]", "ps = [x + y for x in a for y in b]\n"},
		{"comp_nested_output", "m = [[y for y in row] for row in rows]", "m = [[y for y in row] for row in rows]\n"},
		{"comp_nested_iterable", "q = [n for n in [m for m in ms]]", "q = [n for n in [m for m in ms]]\n"},
		{"comp_starred_two_clauses", "flat = [*e for s in xs for e in s]", "flat = [*e for s in xs for e in s]\n"},

		{"if_else", "if a { 1 } else { 2 }", "if a {\n    1\n} else {\n    2\n}\n"},
		{"if_else_if", "if a { 1 } else if b { 2 } else { 3 }", "if a {\n    1\n} else if b {\n    2\n} else {\n    3\n}\n"},
		{"else_on_next_line", "if a { 1 }\nelse { 2 }", "if a {\n    1\n} else {\n    2\n}\n"},
		{"for_loop", "for x in xs {\n    print(x)\n}", "for x in xs {\n    print(x)\n}\n"},
		{"for_two_targets", "for k, v in items(d) {\n    print(k)\n}", "for k, v in items(d) {\n    print(k)\n}\n"},
		{"break_continue", "for x in xs {\n    break\n    continue\n}", "for x in xs {\n    break\n    continue\n}\n"},

		{"assign_newline_after_eq", "x =\n    5 + 3", "x = 5 + 3\n"},
		{"newline_after_operator", "x = 1 +\n    2", "x = 1 + 2\n"},
		{"newline_inside_brackets", "xs = [1,\n    2]", "xs = [1, 2]\n"},
		{"newline_before_comp_clauses", "ys = [y\n    for y in xs\n    if y > 0]", "ys = [y for y in xs if y > 0]\n"},

		{"string_escapes", `s = "a\nb"`, "s = \"a\\nb\"\n"},
		{"bytes_literal", `b = @"abc"`, "b = @\"abc\"\n"},
		{"bytes_hex_literal", `b = @x"0aff"`, "b = @x\"0aff\"\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := parseProgram(t, tc.input)

			printer := prettyprinter.NewCodePrinter()
			ctx.AstRoot.Accept(printer)
			got := printer.String()

			if got != tc.want {
				t.Errorf("printed source mismatch:\n--- want\n%s\n--- got\n%s", tc.want, got)
			}
		})
	}
}

// TestParserTreeShape checks the AST structure of the comprehension forms
// directly, so a printer bug cannot mask a parser bug.
func TestParserTreeShape(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			"starred_list_comp_with_filter",
			"x = [*e for s in xs if ok(s) for e in s]",
			`Program
  Assign(x)
    ListComp
      Output
        Spread
          Identifier(e)
      For(s)
        Identifier(xs)
      Filter
        Call
          Identifier(ok)
          Identifier(s)
      For(e)
        Identifier(s)
`,
		},
		{
			"dict_comp_two_targets",
			"{k: v * 2 for k, v in items(d)}",
			`Program
  DictComp
    Output
      Entry
        Identifier(k)
        Infix(*)
          Identifier(v)
          Integer(2)
    For(k, v)
      Call
        Identifier(items)
        Identifier(d)
`,
		},
		{
			"double_spread_dict_comp",
			"{**m for m in ms}",
			`Program
  DictComp
    Output
      DoubleSpread
        Identifier(m)
    For(m)
      Identifier(ms)
`,
		},
		{
			"generator_expression",
			"(x for x in xs)",
			`Program
  GenExp
    Output
      Identifier(x)
    For(x)
      Identifier(xs)
`,
		},
		{
			"set_comp_starred",
			"{*g for g in gs}",
			`Program
  SetComp
    Output
      Spread
        Identifier(g)
    For(g)
      Identifier(gs)
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := parseProgram(t, tc.input)

			printer := prettyprinter.NewTreePrinter()
			ctx.AstRoot.Accept(printer)
			got := printer.String()

			if got != tc.want {
				t.Errorf("AST shape mismatch:\n--- want\n%s\n--- got\n%s", tc.want, got)
			}
		})
	}
}
