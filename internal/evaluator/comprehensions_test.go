package evaluator

import (
	"testing"
)

func TestListComprehensions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		inspect string
	}{
		{
			"map over a range",
			"[x * x for x in range(5)]",
			"[0, 1, 4, 9, 16]",
		},
		{
			"filter",
			"[x for x in range(10) if x % 2 == 0]",
			"[0, 2, 4, 6, 8]",
		},
		{
			"stacked filters",
			"[x for x in range(20) if x % 2 == 0 if x % 3 == 0]",
			"[0, 6, 12, 18]",
		},
		{
			"two for clauses nest with the later one inside",
			"[(x, y) for x in range(2) for y in range(2)]",
			"[(0, 0), (0, 1), (1, 0), (1, 1)]",
		},
		{
			"later clause sees the earlier binding",
			"[y for x in [[1, 2], [3]] for y in x]",
			"[1, 2, 3]",
		},
		{
			"filter sees every binding in scope",
			"[(x, y) for x in range(3) for y in range(3) if x != y]",
			"[(0, 1), (0, 2), (1, 0), (1, 2), (2, 0), (2, 1)]",
		},
		{
			"starred output splices each value",
			"[*range(x) for x in [1, 4, 0, 3]]",
			"[0, 0, 1, 2, 3, 0, 1, 2]",
		},
		{
			"starred output with repetition",
			"[*[x] * x for x in range(4)]",
			"[1, 2, 2, 3, 3, 3]",
		},
		{
			"starred output over strings",
			`[*s for s in ["ab", "", "c"]]`,
			`["a", "b", "c"]`,
		},
		{
			"starred output where everything is empty",
			"[*x for x in [[], [], []]]",
			"[]",
		},
		{
			"filtered bindings contribute nothing",
			"[*range(x) for x in range(5) if x % 2 == 1]",
			"[0, 0, 1, 2]",
		},
		{
			"destructuring targets",
			"[k + v for k, v in [(1, 2), (3, 4)]]",
			"[3, 7]",
		},
		{
			"source from an outer binding",
			"xs = [3, 1]\n[x * 10 for x in xs]",
			"[30, 10]",
		},
		{
			"generator as source",
			"gen = (x * 2 for x in range(3))\n[x for x in gen]",
			"[0, 2, 4]",
		},
		{
			"empty source",
			"[x for x in []]",
			"[]",
		},
		{
			"filter can reject everything",
			"[x for x in range(5) if false]",
			"[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testEval(t, tt.input)
			testInspect(t, result, tt.inspect)
		})
	}
}

func TestSetComprehensions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		inspect string
	}{
		{
			"deduplicates in first-insertion order",
			"{x % 3 for x in range(10)}",
			"{0, 1, 2}",
		},
		{
			"starred output",
			"{*[x, x * 2] for x in [1, 2]}",
			"{1, 2, 4}",
		},
		{
			"union of sets",
			"{*s for s in [{1, 2}, {2, 3}]}",
			"{1, 2, 3}",
		},
		{
			"tuple elements are hashable",
			"{(x, x) for x in range(2)}",
			"{(0, 0), (1, 1)}",
		},
		{
			"empty result",
			"{x for x in []}",
			"set()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testEval(t, tt.input)
			testInspect(t, result, tt.inspect)
		})
	}
}

func TestDictComprehensions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		inspect string
	}{
		{
			"key value output",
			"{x: x * x for x in range(3)}",
			"{0: 0, 1: 1, 2: 4}",
		},
		{
			"colliding keys keep the first slot and the last value",
			"{x % 2: x for x in range(5)}",
			"{0: 4, 1: 3}",
		},
		{
			"double starred output merges each dict",
			`{**{"id": x, "sq": x * x} for x in [1, 2]}`,
			`{"id": 2, "sq": 4}`,
		},
		{
			"merge keeps the first key slot with the last value",
			`{**d for d in [{"x": 1}, {"y": 2, "z": 3}, {"x": 42}]}`,
			`{"x": 42, "y": 2, "z": 3}`,
		},
		{
			"inverting a dict via items",
			`{v: k for k, v in items({"a": 1, "b": 2})}`,
			`{1: "a", 2: "b"}`,
		},
		{
			"filter applies before the entry is built",
			"{x: x for x in range(6) if x % 2 == 0}",
			"{0: 0, 2: 2, 4: 4}",
		},
		{
			"empty result",
			"{x: x for x in []}",
			"{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testEval(t, tt.input)
			testInspect(t, result, tt.inspect)
		})
	}
}

func TestComprehensionScoping(t *testing.T) {
	t.Run("loop variable does not leak", func(t *testing.T) {
		result := testEval(t, "[y for y in range(3)]\ny")
		testErrorObject(t, result, "identifier not found: y")
	})

	t.Run("loop variable does not clobber an outer binding", func(t *testing.T) {
		result := testEval(t, "x = 99\n[x * 0 for x in range(3)]\nx")
		testIntegerObject(t, result, 99)
	})

	t.Run("output sees enclosing bindings", func(t *testing.T) {
		result := testEval(t, "base = 100\n[base + x for x in range(3)]")
		testInspect(t, result, "[100, 101, 102]")
	})
}

func TestComprehensionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"non-iterable source", "[x for x in 5]", "cannot iterate over Int"},
		{"starred output needs an iterable", "[*x for x in [1]]", "cannot iterate over Int"},
		{"starred output fails mid-run", "[*x for x in [[1], 2]]", "cannot iterate over Int"},
		{"set element must be hashable", "{x for x in [[1]]}", "unhashable type: List"},
		{"starred set element must be hashable", "{*[[x]] for x in [1]}", "unhashable type: List"},
		{"dict key must be hashable", "{[x]: 1 for x in [1]}", "unhashable type: List"},
		{"double star needs a dict", "{**x for x in [[1]]}", "List is not a mapping"},
		{"double star over nil", "{**x for x in [nil]}", "Nil is not a mapping"},
		{"failing filter", "[x for x in [1] if x / 0 > 1]", "division by zero"},
		{"failing output", "[x / 0 for x in [1, 2]]", "division by zero"},
		{"failing value expression", "{x: x / 0 for x in [1]}", "division by zero"},
		{"failing inner source", "[y for x in [1] for y in x]", "cannot iterate over Int"},
		{"destructure mismatch", "[a for a, b in [(1, 2, 3)]]", "tuple pattern has 2 elements but value has 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testEval(t, tt.input)
			testErrorObject(t, result, tt.want)
		})
	}
}

// Unpacking a non-iterable reports the exact error a for loop over the
// same value would.
func TestStarredUnpackSharesForLoopWording(t *testing.T) {
	starred := testEval(t, "[*x for x in [5]]")
	loop := testEval(t, "for x in 5 { x }")

	starredErr, ok := starred.(*Error)
	if !ok {
		t.Fatalf("starred result is not an error. got=%T (%+v)", starred, starred)
	}
	loopErr, ok := loop.(*Error)
	if !ok {
		t.Fatalf("loop result is not an error. got=%T (%+v)", loop, loop)
	}
	if starredErr.Message != loopErr.Message {
		t.Errorf("wordings differ: starred=%q loop=%q", starredErr.Message, loopErr.Message)
	}
}

// A failing comprehension must not bind a partial container anywhere.
func TestComprehensionFailureDiscardsPartialResult(t *testing.T) {
	result, env := testEvalEnv(t, "out = \"untouched\"\nout = [x / 0 for x in [1, 2]]")
	testErrorObject(t, result, "division by zero")

	val, ok := env.Get("out")
	if !ok {
		t.Fatalf("variable 'out' not found")
	}
	testStringObject(t, val, "untouched")
}

func TestComprehensionSourceEvaluatedOnce(t *testing.T) {
	// The outermost source expression runs exactly once, not per element.
	_, out := testEvalOutput(t, `f = \ -> print("src") || [1, 2, 3]`+"\n[x * 0 for x in f()]")
	if out != "src\n" {
		t.Errorf("wrong output. got=%q, want=%q", out, "src\n")
	}
}
