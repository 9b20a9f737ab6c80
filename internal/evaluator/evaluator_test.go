package evaluator

import (
	"bytes"
	"io"
	"testing"

	"github.com/funvibe/splat/internal/analyzer"
	"github.com/funvibe/splat/internal/ast"
	"github.com/funvibe/splat/internal/lexer"
	"github.com/funvibe/splat/internal/parser"
	"github.com/funvibe/splat/internal/pipeline"
)

// parseForEval runs the front half of the pipeline (lexer, parser,
// analyzer) and fails the test on any diagnostic, so evaluator tests
// only ever see programs that passed static checking.
func parseForEval(t *testing.T, input string) ast.Node {
	t.Helper()

	ctx := pipeline.NewPipelineContext(input)
	pipe := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{},
	)
	ctx = pipe.Run(ctx)

	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, err := range ctx.Errors {
			msgs = append(msgs, err.Error())
		}
		t.Fatalf("front-end errors for %q: %v", input, msgs)
	}
	return ctx.AstRoot
}

func testEval(t *testing.T, input string) Object {
	t.Helper()
	program := parseForEval(t, input)
	eval := New()
	eval.Out = io.Discard
	return eval.Eval(program, NewEnvironment())
}

// testEvalEnv also hands back the environment, for tests that assert on
// bindings rather than on the program value.
func testEvalEnv(t *testing.T, input string) (Object, *Environment) {
	t.Helper()
	program := parseForEval(t, input)
	eval := New()
	eval.Out = io.Discard
	env := NewEnvironment()
	return eval.Eval(program, env), env
}

// testEvalOutput captures what the program printed.
func testEvalOutput(t *testing.T, input string) (Object, string) {
	t.Helper()
	program := parseForEval(t, input)
	var buf bytes.Buffer
	eval := New()
	eval.Out = &buf
	result := eval.Eval(program, NewEnvironment())
	return result, buf.String()
}

func testIntegerObject(t *testing.T, obj Object, expected int64) bool {
	t.Helper()
	result, ok := obj.(*Integer)
	if !ok {
		t.Errorf("object is not Integer. got=%T (%+v)", obj, obj)
		return false
	}
	if result.Value != expected {
		t.Errorf("wrong Integer value. got=%d, want=%d", result.Value, expected)
		return false
	}
	return true
}

func testFloatObject(t *testing.T, obj Object, expected float64) bool {
	t.Helper()
	result, ok := obj.(*Float)
	if !ok {
		t.Errorf("object is not Float. got=%T (%+v)", obj, obj)
		return false
	}
	if result.Value != expected {
		t.Errorf("wrong Float value. got=%v, want=%v", result.Value, expected)
		return false
	}
	return true
}

func testBooleanObject(t *testing.T, obj Object, expected bool) bool {
	t.Helper()
	result, ok := obj.(*Boolean)
	if !ok {
		t.Errorf("object is not Boolean. got=%T (%+v)", obj, obj)
		return false
	}
	if result.Value != expected {
		t.Errorf("wrong Boolean value. got=%t, want=%t", result.Value, expected)
		return false
	}
	return true
}

func testStringObject(t *testing.T, obj Object, expected string) bool {
	t.Helper()
	result, ok := obj.(*String)
	if !ok {
		t.Errorf("object is not String. got=%T (%+v)", obj, obj)
		return false
	}
	if result.Value != expected {
		t.Errorf("wrong String value. got=%q, want=%q", result.Value, expected)
		return false
	}
	return true
}

func testNilObject(t *testing.T, obj Object) bool {
	t.Helper()
	if obj != NIL {
		t.Errorf("object is not NIL. got=%T (%+v)", obj, obj)
		return false
	}
	return true
}

func testErrorObject(t *testing.T, obj Object, want string) bool {
	t.Helper()
	errObj, ok := obj.(*Error)
	if !ok {
		t.Errorf("no error object returned. got=%T (%+v), want error %q", obj, obj, want)
		return false
	}
	if errObj.Message != want {
		t.Errorf("wrong error message. got=%q, want=%q", errObj.Message, want)
		return false
	}
	return true
}

// testObject dispatches on the expectation's Go type.
func testObject(t *testing.T, obj Object, expected interface{}) bool {
	t.Helper()
	switch want := expected.(type) {
	case int:
		return testIntegerObject(t, obj, int64(want))
	case int64:
		return testIntegerObject(t, obj, want)
	case float64:
		return testFloatObject(t, obj, want)
	case bool:
		return testBooleanObject(t, obj, want)
	case string:
		return testStringObject(t, obj, want)
	case nil:
		return testNilObject(t, obj)
	}
	t.Fatalf("unsupported expectation type %T", expected)
	return false
}

func testInspect(t *testing.T, obj Object, want string) bool {
	t.Helper()
	if obj == nil {
		t.Errorf("object is nil, want Inspect %q", want)
		return false
	}
	if got := obj.Inspect(); got != want {
		t.Errorf("wrong Inspect. got=%q, want=%q", got, want)
		return false
	}
	return true
}

func TestIntegerArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"-5", -5},
		{"--5", 5},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"(5 + 10 * 2 + 16 % 3) * 2 + -10", 42},
		{"2 ** 10", 1024},
		{"2 ** 3 ** 2", 512}, // right associative
		{"7 % 3", 1},
		{"-7 % 3", 2}, // result follows the divisor's sign
		{"7 % -3", -2},
		{"0x10", 16},
		{"0b101", 5},
		{"0o17", 15},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testIntegerObject(t, result, tt.expected)
		})
	}
}

func TestFloatArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1.5", 1.5},
		{"-1.5", -1.5},
		{"1.5 + 2.5", 4.0},
		{"1.5 * 2", 3.0},
		{"1 / 2", 0.5},     // / is true division
		{"6 / 3", 2.0},     // even when it divides evenly
		{"2 ** -1", 0.5},   // negative exponent leaves Int arithmetic
		{"2.0 ** 3", 8.0},
		{"1e2 + 0.5", 100.5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testFloatObject(t, result, tt.expected)
		})
	}
}

func TestDivisionStaysFloat(t *testing.T) {
	result := testEval(t, "6 / 3")
	testInspect(t, result, "2.0")
}

func TestBooleanExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 <= 1", true},
		{"2 >= 3", false},
		{"1 < 1.5", true}, // Int promotes for ordering
		{"2.5 > 2", true},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 == 1.0", false}, // equality never promotes
		{"1 != 1.0", true},
		{"1.0 == 1.0", true},
		{"nil == nil", true},
		{"nil == 0", false},
		{"true == true", true},
		{"true != false", true},
		{`"a" == "a"`, true},
		{`"a" == "b"`, false},
		{`"b" < "a"`, false},
		{`"abc" <= "abd"`, true},
		{"[1, 2] == [1, 2]", true},
		{"[1, 2] == [2, 1]", false},
		{"[1] == (1,)", false},
		{"(1, 2) == (1, 2)", true},
		{"{1, 2} == {2, 1}", true}, // sets compare by membership
		{"{1, 2} == {1, 3}", false},
		{`{"a": 1} == {"a": 1}`, true},
		{`{"a": 1} == {"a": 2}`, false},
		{"@x\"01ff\" == @x\"01ff\"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testBooleanObject(t, result, tt.expected)
		})
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!!true", true},
		{"!0", true},
		{"!5", false},
		{`!""`, true},
		{`!"a"`, false},
		{"![]", true},
		{"![0]", false},
		{"!nil", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testBooleanObject(t, result, tt.expected)
		})
	}
}

func TestLogicalOperatorsReturnOperands(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"1 && 2", 2},
		{"0 && 2", 0},
		{"nil && 2", nil},
		{"1 || 2", 1},
		{"0 || 2", 2},
		{"nil || 5", 5},
		{`"" || "fallback"`, "fallback"},
		{`"x" || "fallback"`, "x"},
		{"false || false", false},
		{"true && false", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testObject(t, result, tt.expected)
		})
	}
}

func TestLogicalShortCircuit(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOutput string
	}{
		{"or skips right", `true || print("side")`, ""},
		{"and skips right", `false && print("side")`, ""},
		{"or runs right when needed", `false || print("side")`, "side\n"},
		{"and runs right when needed", `true && print("side")`, "side\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out := testEvalOutput(t, tt.input)
			if out != tt.wantOutput {
				t.Errorf("wrong output. got=%q, want=%q", out, tt.wantOutput)
			}
		})
	}
}

func TestStringOperations(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello" + " " + "world"`, "hello world"},
		{`"ab" * 3`, "ababab"},
		{`3 * "ab"`, "ababab"},
		{`"ab" * 0`, ""},
		{`"ab" * -1`, ""},
		{`"héllo"[1]`, "é"}, // indexing counts runes
		{`"hello"[-4]`, "e"},
		{`"\t\"esc\""`, "\t\"esc\""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testStringObject(t, result, tt.expected)
		})
	}
}

func TestSequenceRepetitionAndConcat(t *testing.T) {
	tests := []struct {
		input   string
		inspect string
	}{
		{"[1, 2] * 2", "[1, 2, 1, 2]"},
		{"2 * [1, 2]", "[1, 2, 1, 2]"},
		{"[1] * -3", "[]"},
		{"(1,) * 3", "(1, 1, 1)"},
		{"[1] + [2, 3]", "[1, 2, 3]"},
		{"(1,) + (2,)", "(1, 2)"},
		{"[] + []", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testInspect(t, result, tt.inspect)
		})
	}
}

func TestIfExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"if true { 10 }", 10},
		{"if false { 10 }", nil},
		{"if 1 { 10 }", 10},
		{"if 0 { 10 } else { 20 }", 20},
		{`if "" { 1 } else { 2 }`, 2},
		{"if [] { 1 } else { 2 }", 2},
		{"if [0] { 1 } else { 2 }", 1},
		{"if {} { 1 } else { 2 }", 2}, // {} is an empty dict, falsy
		{"if range(0) { 1 } else { 2 }", 2},
		{"if (x for x in []) { 1 } else { 2 }", 1}, // generators are always truthy
		{"if 1 < 2 { 10 } else { 20 }", 10},
		{"x = 7\nif x < 5 { \"low\" } else if x < 10 { \"mid\" } else { \"high\" }", "mid"},
		{"x = 77\nif x < 5 { \"low\" } else if x < 10 { \"mid\" } else { \"high\" }", "high"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testObject(t, result, tt.expected)
		})
	}
}

func TestForLoops(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected interface{}
	}{
		{
			"accumulate over list",
			"total = 0\nfor x in [1, 2, 3] {\n\ttotal = total + x\n}\ntotal",
			6,
		},
		{
			"loop value is last body result",
			"for x in [1, 2, 3] { x * 10 }",
			30,
		},
		{
			"empty iteration yields nil",
			"for x in [] { x }",
			nil,
		},
		{
			"break keeps the value so far",
			"for x in [1, 2, 3, 4] {\n\tif x == 3 { break }\n\tx * 10\n}",
			20,
		},
		{
			"continue skips the body",
			"total = 0\nfor x in range(10) {\n\tif x % 2 == 1 { continue }\n\ttotal = total + x\n}\ntotal",
			20,
		},
		{
			"destructuring targets",
			"total = 0\nfor a, b in [(1, 2), (3, 4)] {\n\ttotal = total + a * b\n}\ntotal",
			14,
		},
		{
			"dict iteration yields keys in insertion order",
			"keys = \"\"\nfor k in {\"a\": 1, \"b\": 2} { keys = keys + k }\nkeys",
			"ab",
		},
		{
			"string iteration yields runes",
			"out = \"\"\nfor ch in \"héllo\" { out = out + ch + \".\" }\nout",
			"h.é.l.l.o.",
		},
		{
			"bytes iteration yields integers",
			"total = 0\nfor b in @x\"0102ff\" { total = total + b }\ntotal",
			258,
		},
		{
			"range iteration",
			"total = 0\nfor i in range(1, 11) { total = total + i }\ntotal",
			55,
		},
		{
			"set iteration in insertion order",
			"out = \"\"\nfor s in {\"c\", \"a\", \"b\"} { out = out + s }\nout",
			"cab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testEval(t, tt.input)
			testObject(t, result, tt.expected)
		})
	}
}

func TestForLoopErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"for x in 5 { x }", "cannot iterate over Int"},
		{"for x in nil { x }", "cannot iterate over Nil"},
		{"for a, b in [1, 2] { a }", "cannot destructure Int value with tuple pattern"},
		{"for a, b, c in [(1, 2)] { a }", "tuple pattern has 3 elements but value has 2"},
		{"for a, b in [(1, 2, 3)] { a }", "tuple pattern has 2 elements but value has 3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testErrorObject(t, result, tt.want)
		})
	}
}

func TestAssignment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected interface{}
	}{
		{"binding", "x = 5\nx", 5},
		{"assignment evaluates to the value", "x = 5", 5},
		{"rebinding", "x = 5\nx = x + 1\nx", 6},
		{"update through a block", "x = 1\nif true { x = 2 }\nx", 2},
		{"builtins can be shadowed", "len = 5\nlen", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testEval(t, tt.input)
			testObject(t, result, tt.expected)
		})
	}
}

func TestBlockScopedBindingDoesNotLeak(t *testing.T) {
	result := testEval(t, "if true { y = 2 }\ny")
	testErrorObject(t, result, "identifier not found: y")
}

func TestFunctions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected interface{}
	}{
		{"identity", `id = \x -> x` + "\nid(5)", 5},
		{"parameterless", `f = \ -> 42` + "\nf()", 42},
		{"two parameters", `add = \x, y -> x + y` + "\nadd(2, 3)", 5},
		{"immediate call", `(\x -> x * 2)(21)`, 42},
		{
			"closure captures the defining environment",
			"makeAdder = \\x -> \\y -> x + y\naddTwo = makeAdder(2)\naddTwo(3)",
			5,
		},
		{
			"higher order",
			"apply = \\f, v -> f(v)\napply(\\x -> x + 1, 41)",
			42,
		},
		{
			"recursion through the binding",
			"fact = \\n -> if n < 2 { 1 } else { n * fact(n - 1) }\nfact(5)",
			120,
		},
		{
			"loop body closures capture per-iteration bindings",
			"fs = [\\ -> x for x in [1, 2, 3]]\nfs[0]() + fs[2]()",
			4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testEval(t, tt.input)
			testObject(t, result, tt.expected)
		})
	}
}

func TestFunctionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"too many arguments", "f = \\x -> x\nf(1, 2)", "wrong number of arguments: expected 1, got 2"},
		{"too few arguments", "f = \\x, y -> x\nf(1)", "wrong number of arguments: expected 2, got 1"},
		{"calling a non-function", "5(1)", "not a function: Int"},
		{"unbounded recursion", "f = \\x -> f(x)\nf(1)", "maximum recursion depth exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testEval(t, tt.input)
			testErrorObject(t, result, tt.want)
		})
	}
}

func TestIndexExpressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected interface{}
	}{
		{"list index", "[1, 2, 3][0]", 1},
		{"list last", "[1, 2, 3][2]", 3},
		{"list negative", "[1, 2, 3][-1]", 3},
		{"list nested expr index", "xs = [1, 2, 3]\nxs[1 + 1]", 3},
		{"tuple index", "(4, 5, 6)[1]", 5},
		{"tuple negative", "(4, 5, 6)[-3]", 4},
		{"string index", `"hello"[1]`, "e"},
		{"bytes index", "b = @x\"0102ff\"\nb[2]", 255},
		{"bytes negative", "b = @x\"0102ff\"\nb[-1]", 255},
		{"dict string key", `{"a": 1, "b": 2}["b"]`, 2},
		{"dict int key", "{1: \"one\"}[1]", "one"},
		{"dict tuple key", "d = {(1, 2): \"x\"}\nd[(1, 2)]", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testEval(t, tt.input)
			testObject(t, result, tt.expected)
		})
	}
}

func TestIndexErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[1, 2, 3][3]", "list index out of range"},
		{"[1, 2, 3][-4]", "list index out of range"},
		{"(1, 2)[2]", "tuple index out of range"},
		{`"ab"[5]`, "string index out of range"},
		{"@x\"01\"[1]", "bytes index out of range"},
		{`{"a": 1}["b"]`, `key not found: "b"`},
		{"{1: 2}[3]", "key not found: 3"},
		{`{"a": 1}[[1]]`, "unhashable type: List"},
		{`[1, 2]["a"]`, "index must be Int, got String"},
		{"[1, 2][1.0]", "index must be Int, got Float"},
		{"5[0]", "index operator not supported: Int"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testErrorObject(t, result, tt.want)
		})
	}
}

func TestContainerDisplays(t *testing.T) {
	tests := []struct {
		input   string
		inspect string
	}{
		{"[]", "[]"},
		{"[1, 2 * 2, 3 + 3]", "[1, 4, 6]"},
		{"(1,)", "(1,)"},
		{"(1, 2)", "(1, 2)"},
		{"{}", "{}"}, // empty braces are a dict
		{"set()", "set()"},
		{"{3, 1, 2}", "{3, 1, 2}"},           // first-insertion order
		{"{1, 2, 1, 3, 2}", "{1, 2, 3}"},     // duplicates keep the first slot
		{`{"a": 1, "b": 2}`, `{"a": 1, "b": 2}`},
		{`{"a": 1, "b": 2, "a": 3}`, `{"a": 3, "b": 2}`}, // last write wins, order stays
		{"{1: 2, 1.0: 3}", "{1: 2, 1.0: 3}"},             // Int and Float keys are distinct
		{"[[1, 2], [3]]", "[[1, 2], [3]]"},
		{"(1, (2, 3))", "(1, (2, 3))"},
		{"{(1, 2): \"x\"}", "{(1, 2): \"x\"}"}, // tuples are hashable keys
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testInspect(t, result, tt.inspect)
		})
	}
}

func TestSpreadInDisplays(t *testing.T) {
	tests := []struct {
		input   string
		inspect string
	}{
		{"[*[1, 2], 3]", "[1, 2, 3]"},
		{"[1, *[2, 3], *[], 4]", "[1, 2, 3, 4]"},
		{"[*range(1), *range(4), *range(0), *range(3)]", "[0, 0, 1, 2, 3, 0, 1, 2]"},
		{"[*\"ab\"]", `["a", "b"]`},
		{"[*range(3)]", "[0, 1, 2]"},
		{"[*@x\"0102\"]", "[1, 2]"},
		{"[*(x * x for x in range(3))]", "[0, 1, 4]"},
		{"[*{1, 2}, *{1, 2}]", "[1, 2, 1, 2]"}, // lists keep duplicates
		{"(*[1, 2], 3)", "(1, 2, 3)"},
		{"(*[1, 2],)", "(1, 2)"},
		{"{*[1, 2, 2], 3}", "{1, 2, 3}"},
		{"{*\"aba\"}", `{"a", "b"}`},
		{`{**{"a": 1}, "a": 2}`, `{"a": 2}`},
		{`{"a": 1, **{"a": 2, "b": 3}}`, `{"a": 2, "b": 3}`},
		{`{**{"a": 1}, **{"b": 2}}`, `{"a": 1, "b": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testInspect(t, result, tt.inspect)
		})
	}
}

func TestSpreadErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[*5]", "cannot iterate over Int"},
		{"[*nil]", "cannot iterate over Nil"},
		{"{*5}", "cannot iterate over Int"},
		{"(*5, 1)", "cannot iterate over Int"},
		{"{**[1]}", "List is not a mapping"},
		{"{**5}", "Int is not a mapping"},
		{"{*[[1]]}", "unhashable type: List"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testErrorObject(t, result, tt.want)
		})
	}
}

func TestMembership(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"2 in [1, 2, 3]", true},
		{"4 in [1, 2, 3]", false},
		{"2 in (1, 2)", true},
		{"2 in {1, 2, 3}", true},
		{"4 in {1, 2, 3}", false},
		{`"a" in {"a": 1}`, true},
		{`"b" in {"a": 1}`, false},
		{`"ell" in "hello"`, true},
		{`"xyz" in "hello"`, false},
		{"(1, 2) in {(1, 2): 3}", true},
		{"1.0 in [1]", false}, // membership uses structural equality
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testBooleanObject(t, result, tt.expected)
		})
	}
}

func TestMembershipErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[1] in {1, 2}", "unhashable type: List"},
		{"[1] in {1: 2}", "unhashable type: List"},
		{"1 in 5", "right operand of 'in' must be a container, got Int"},
		{"1 in range(5)", "right operand of 'in' must be a container, got Range"},
		{`1 in "abc"`, "left operand of 'in' must be String to search a String, got Int"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testErrorObject(t, result, tt.want)
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"foobar", "identifier not found: foobar"},
		{"1 + true", "type mismatch: Int + Bool"},
		{"1 + true\n5", "type mismatch: Int + Bool"}, // evaluation stops at the error
		{"true + false", "unknown operator: Bool + Bool"},
		{"-true", "unknown operator: -Bool"},
		{`"a" - "b"`, "unknown operator: String - String"},
		{"5 / 0", "division by zero"},
		{"5.0 / 0.0", "division by zero"},
		{"5 % 0", "modulo by zero"},
		{"7.0 % 2.0", "unknown operator: Float % Float"},
		{"nil + nil", "unknown operator: Nil + Nil"},
		{"[1] - [2]", "unknown operator: List - List"},
		{"{[1]: 2}", "unhashable type: List"},
		{"{{1: 2}}", "unhashable type: Dict"},
		{"[1, 5 / 0, 3]", "division by zero"}, // display aborts on the first failure
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testErrorObject(t, result, tt.want)
		})
	}
}

func TestErrorsCarryPositions(t *testing.T) {
	result := testEval(t, "x = 1\ny = x + true")
	errObj, ok := result.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T (%+v)", result, result)
	}
	if errObj.Line != 2 {
		t.Errorf("wrong error line. got=%d, want=2", errObj.Line)
	}
}

func TestProgramValueIsLastStatement(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"1\n2\n3", 3},
		{"x = 1\ny = 2\nx + y", 3},
		{"[1, 2]\nnil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := testEval(t, tt.input)
			testObject(t, result, tt.expected)
		})
	}
}

func TestPrintOutput(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOutput string
	}{
		{"string prints raw", `print("hello")`, "hello\n"},
		{"values are space joined", `print(1, "two", 3.0)`, "1 two 3.0\n"},
		{"containers print inspected", `print([1, "a"])`, `[1, "a"]` + "\n"},
		{"nil prints", "print(nil)", "nil\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, out := testEvalOutput(t, tt.input)
			if out != tt.wantOutput {
				t.Errorf("wrong output. got=%q, want=%q", out, tt.wantOutput)
			}
			testNilObject(t, result)
		})
	}
}

func TestBindingsVisibleInEnvironment(t *testing.T) {
	_, env := testEvalEnv(t, "x = 41\ny = x + 1")

	val, ok := env.Get("y")
	if !ok {
		t.Fatalf("variable 'y' not found")
	}
	testIntegerObject(t, val, 42)

	if _, found := env.Get("z"); found {
		t.Errorf("unexpected binding 'z'")
	}
}
