package generators

import (
	"math/rand"
	"strconv"
	"strings"
)

// RandomSource abstracts the source of randomness.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// RandSource wraps math/rand.
type RandSource struct {
	*rand.Rand
}

// ByteSource uses a byte slice as a source of randomness.
type ByteSource struct {
	data []byte
	pos  int
}

func (s *ByteSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

func (s *ByteSource) Float64() float64 {
	if s.pos >= len(s.data) {
		return 0.0
	}
	v := int(s.data[s.pos])
	s.pos++
	return float64(v) / 255.0
}

// Generator generates random Splat code. Every generated program is
// syntactically valid; runtime errors (bad operand types, missing names)
// are fair game and deterministic.
type Generator struct {
	src   RandomSource
	depth int
	vars  []string
}

const (
	MaxDepth      = 4
	MaxStatements = 5
)

func New(seed int64) *Generator {
	return &Generator{
		src:  &RandSource{rand.New(rand.NewSource(seed))},
		vars: []string{"x", "y", "z", "a", "b"},
	}
}

func NewFromData(data []byte) *Generator {
	return &Generator{
		src:  &ByteSource{data: data},
		vars: []string{"x", "y", "z", "a", "b"},
	}
}

// Intn exposes the random source's Intn method.
func (g *Generator) Intn(n int) int {
	return g.src.Intn(n)
}

// Src returns the random source of the generator.
func (g *Generator) Src() RandomSource {
	return g.src
}

func (g *Generator) GenerateProgram() string {
	var sb strings.Builder
	count := g.src.Intn(MaxStatements) + 1
	for i := 0; i < count; i++ {
		sb.WriteString(g.GenerateStatement())
		sb.WriteString("\n")
		sb.WriteString(g.GenerateNoise())
	}
	// A fixed trailing expression keeps the program value independent of
	// whichever statement form came last.
	sb.WriteString("nil")
	return sb.String()
}

func (g *Generator) GenerateNoise() string {
	// 10% chance to generate noise
	if g.src.Intn(10) != 0 {
		return ""
	}

	var sb strings.Builder
	count := g.src.Intn(3) + 1
	for i := 0; i < count; i++ {
		switch g.src.Intn(3) {
		case 0:
			sb.WriteString(" ")
		case 1:
			sb.WriteString("\t")
		case 2:
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (g *Generator) GenerateStatement() string {
	switch g.src.Intn(10) {
	case 0, 1, 2, 3:
		return g.pickVar() + " = " + g.GenerateExpression()
	case 4:
		return g.generateForStatement()
	default:
		return g.GenerateExpression()
	}
}

// generateForStatement emits a for loop. break and continue only ever
// appear directly in the loop body, where they are legal.
func (g *Generator) generateForStatement() string {
	var sb strings.Builder
	sb.WriteString("for ")
	sb.WriteString(g.generateTargets())
	sb.WriteString(" in ")
	sb.WriteString(g.generateIterable())
	sb.WriteString(" {\n")

	count := g.src.Intn(2) + 1
	for i := 0; i < count; i++ {
		if g.src.Intn(8) == 0 {
			if g.src.Intn(2) == 0 {
				sb.WriteString("\tbreak\n")
			} else {
				sb.WriteString("\tcontinue\n")
			}
			continue
		}
		if g.src.Intn(2) == 0 {
			sb.WriteString("\t" + g.pickVar() + " = " + g.GenerateExpression() + "\n")
		} else {
			sb.WriteString("\t" + g.GenerateExpression() + "\n")
		}
	}

	sb.WriteString("}")
	return sb.String()
}

func (g *Generator) GenerateExpression() string {
	g.depth++
	defer func() { g.depth-- }()

	if g.depth > MaxDepth {
		return g.generateAtom()
	}

	switch g.src.Intn(14) {
	case 0, 1, 2:
		return g.generateAtom()
	case 3, 4:
		return g.generateInfix()
	case 5:
		return g.generatePrefix()
	case 6:
		return g.generateDisplay()
	case 7, 8:
		return g.generateComprehension()
	case 9:
		return g.generateLambda()
	case 10:
		return g.generateCall()
	case 11:
		return g.generateIf()
	case 12:
		return g.generateIndex()
	default:
		return g.generateAtom()
	}
}

func (g *Generator) generateAtom() string {
	switch g.src.Intn(8) {
	case 0, 1:
		return strconv.Itoa(g.src.Intn(100))
	case 2:
		floats := []string{"0.5", "1.5", "2.0", "0.25", "10.0"}
		return floats[g.src.Intn(len(floats))]
	case 3:
		strs := []string{`"a"`, `"ab"`, `"abc"`, `"xy"`, `""`}
		return strs[g.src.Intn(len(strs))]
	case 4:
		if g.src.Intn(2) == 0 {
			return "true"
		}
		return "false"
	case 5:
		return "nil"
	case 6:
		return g.pickVar()
	default:
		return "range(" + strconv.Itoa(g.src.Intn(6)) + ")"
	}
}

var infixOps = []string{
	"+", "-", "*", "/", "%", "**",
	"==", "!=", "<", ">", "<=", ">=",
	"&&", "||", "in",
}

func (g *Generator) generateInfix() string {
	op := infixOps[g.src.Intn(len(infixOps))]
	return g.GenerateExpression() + " " + op + " " + g.GenerateExpression()
}

func (g *Generator) generatePrefix() string {
	if g.src.Intn(2) == 0 {
		return "-" + g.generateAtom()
	}
	return "!" + g.generateAtom()
}

func (g *Generator) generateDisplay() string {
	switch g.src.Intn(4) {
	case 0:
		return g.generateListDisplay()
	case 1:
		return g.generateTupleDisplay()
	case 2:
		return g.generateSetDisplay()
	default:
		return g.generateDictDisplay()
	}
}

// generateElement emits a display element, sometimes with the * prefix.
func (g *Generator) generateElement() string {
	if g.src.Intn(4) == 0 {
		return "*" + g.generateIterable()
	}
	return g.GenerateExpression()
}

func (g *Generator) generateListDisplay() string {
	count := g.src.Intn(4)
	parts := make([]string, count)
	for i := range parts {
		parts[i] = g.generateElement()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// generateTupleDisplay keeps the trailing comma for single-element tuples
// so a lone starred element stays legal.
func (g *Generator) generateTupleDisplay() string {
	if g.src.Intn(4) == 0 {
		return "(" + g.generateElement() + ",)"
	}
	count := g.src.Intn(2) + 2
	parts := make([]string, count)
	for i := range parts {
		parts[i] = g.generateElement()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (g *Generator) generateSetDisplay() string {
	count := g.src.Intn(3) + 1
	parts := make([]string, count)
	for i := range parts {
		parts[i] = g.generateElement()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (g *Generator) generateDictDisplay() string {
	count := g.src.Intn(3)
	parts := make([]string, count)
	for i := range parts {
		if g.src.Intn(4) == 0 {
			parts[i] = "**" + g.generateMappish()
		} else {
			parts[i] = g.generateKey() + ": " + g.GenerateExpression()
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (g *Generator) generateKey() string {
	switch g.src.Intn(4) {
	case 0:
		return strconv.Itoa(g.src.Intn(20))
	case 1:
		strs := []string{`"k"`, `"id"`, `"v"`}
		return strs[g.src.Intn(len(strs))]
	case 2:
		return g.pickVar()
	default:
		return "(" + strconv.Itoa(g.src.Intn(5)) + ", " + strconv.Itoa(g.src.Intn(5)) + ")"
	}
}

// generateMappish emits an expression for ** positions. A non-dict value
// is a deterministic runtime error, which the targets tolerate.
func (g *Generator) generateMappish() string {
	switch g.src.Intn(3) {
	case 0:
		return "{" + g.generateKey() + ": " + g.generateAtom() + "}"
	case 1:
		return "{}"
	default:
		return g.pickVar()
	}
}

func (g *Generator) generateIterable() string {
	switch g.src.Intn(5) {
	case 0:
		return g.generateListDisplay()
	case 1:
		return "range(" + strconv.Itoa(g.src.Intn(6)) + ")"
	case 2:
		strs := []string{`"ab"`, `"abc"`, `""`}
		return strs[g.src.Intn(len(strs))]
	case 3:
		return g.pickVar()
	default:
		return "(" + g.GenerateExpression() + " for " + g.pickVar() + " in range(" + strconv.Itoa(g.src.Intn(4)) + "))"
	}
}

func (g *Generator) generateTargets() string {
	if g.src.Intn(5) == 0 {
		return g.pickVar() + ", " + g.pickVar()
	}
	return g.pickVar()
}

func (g *Generator) generateClauses() string {
	var sb strings.Builder
	sb.WriteString(" for ")
	sb.WriteString(g.generateTargets())
	sb.WriteString(" in ")
	sb.WriteString(g.generateIterable())

	if g.src.Intn(4) == 0 {
		sb.WriteString(" for ")
		sb.WriteString(g.generateTargets())
		sb.WriteString(" in ")
		sb.WriteString(g.generateIterable())
	}
	if g.src.Intn(3) == 0 {
		sb.WriteString(" if ")
		sb.WriteString(g.GenerateExpression())
	}
	return sb.String()
}

// generateComprehension emits one of the four comprehension forms. The
// output is always a single expression, optionally starred (doubly starred
// for dict merges).
func (g *Generator) generateComprehension() string {
	clauses := g.generateClauses()
	starred := g.src.Intn(3) == 0

	switch g.src.Intn(4) {
	case 0:
		if starred {
			return "[*" + g.generateIterable() + clauses + "]"
		}
		return "[" + g.GenerateExpression() + clauses + "]"
	case 1:
		if starred {
			return "{*" + g.generateIterable() + clauses + "}"
		}
		return "{" + g.GenerateExpression() + clauses + "}"
	case 2:
		if starred {
			return "{**" + g.generateMappish() + clauses + "}"
		}
		return "{" + g.generateKey() + ": " + g.GenerateExpression() + clauses + "}"
	default:
		if starred {
			return "(*" + g.generateIterable() + clauses + ")"
		}
		return "(" + g.GenerateExpression() + clauses + ")"
	}
}

func (g *Generator) generateLambda() string {
	switch g.src.Intn(3) {
	case 0:
		return `\ -> ` + g.GenerateExpression()
	case 1:
		return `\` + g.pickVar() + ` -> ` + g.GenerateExpression()
	default:
		return `\` + g.pickVar() + `, ` + g.pickVar() + ` -> ` + g.GenerateExpression()
	}
}

// pure builtins only, so generated programs stay deterministic
var callableBuiltins = []string{
	"len", "show", "typeOf", "sorted", "sum", "list", "set", "tuple", "abs",
}

func (g *Generator) generateCall() string {
	if g.src.Intn(6) == 0 {
		return "zip(" + g.generateIterable() + ", " + g.generateIterable() + ")"
	}
	fn := callableBuiltins[g.src.Intn(len(callableBuiltins))]
	return fn + "(" + g.GenerateExpression() + ")"
}

func (g *Generator) generateIf() string {
	return "if " + g.GenerateExpression() + " { " + g.GenerateExpression() + " } else { " + g.GenerateExpression() + " }"
}

func (g *Generator) generateIndex() string {
	switch g.src.Intn(3) {
	case 0:
		return g.generateListDisplay() + "[" + strconv.Itoa(g.src.Intn(5)) + "]"
	case 1:
		return g.pickVar() + "[" + g.generateAtom() + "]"
	default:
		strs := []string{`"ab"`, `"abc"`}
		return strs[g.src.Intn(len(strs))] + "[" + strconv.Itoa(g.src.Intn(4)) + "]"
	}
}

func (g *Generator) pickVar() string {
	return g.vars[g.src.Intn(len(g.vars))]
}
