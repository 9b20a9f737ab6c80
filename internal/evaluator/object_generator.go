package evaluator

import (
	"github.com/funvibe/splat/internal/ast"
)

type genState int

const (
	genActive genState = iota
	genDone
	genFailed
)

// genFrame is one entered for clause: its live iterator and the
// environment its source was evaluated in.
type genFrame struct {
	clause    *ast.CompFor
	clauseIdx int
	parentEnv *Environment
	iter      Iterator
}

// Generator is the lazy, single-pass result of a generator expression.
// It shares the clause-driving semantics of the eager comprehensions but
// suspends between produced values. Once failed it stays failed: every
// later consumption re-raises the stored error. It is itself an Iterator,
// so generators can feed for loops, other comprehensions and the drainer
// builtins.
type Generator struct {
	eval    *Evaluator
	env     *Environment
	clauses []ast.CompClause
	output  ast.Expression
	starred bool

	frames  []*genFrame
	pending Iterator // cursor into the current starred output value
	state   genState
	failure *Error
	started bool
}

func newGenerator(e *Evaluator, env *Environment, clauses []ast.CompClause, output ast.Expression, starred bool) *Generator {
	return &Generator{eval: e, env: env, clauses: clauses, output: output, starred: starred}
}

func (g *Generator) Type() ObjectType { return GENERATOR_OBJ }
func (g *Generator) Inspect() string  { return "<generator>" }

// Next produces the next value. It returns (value, true) per element,
// (nil, false) on exhaustion, and (err, true) with an *Error on failure.
func (g *Generator) Next() (Object, bool) {
	switch g.state {
	case genFailed:
		return g.failure, true
	case genDone:
		return nil, false
	}

	if g.pending != nil {
		elem, ok := g.pending.Next()
		if ok {
			if isError(elem) {
				return g.fail(elem.(*Error))
			}
			return elem, true
		}
		g.pending = nil
	}

	return g.step()
}

func (g *Generator) fail(err *Error) (Object, bool) {
	g.state = genFailed
	g.failure = err
	g.frames = nil
	g.pending = nil
	return err, true
}

// step resumes the clause walk until the next value is produced, the
// chain is exhausted, or evaluation fails. It alternates between
// descending (entering clause c with environment env) and backtracking
// (pulling the innermost for frame).
func (g *Generator) step() (Object, bool) {
	var (
		c          int
		env        *Environment
		descending bool
	)
	if !g.started {
		// First consumption: enter the chain at the outermost clause.
		g.started = true
		c, env, descending = 0, g.env, true
	}

	for {
		if descending {
			if c == len(g.clauses) {
				val := g.eval.Eval(g.output, env)
				if isError(val) {
					return g.fail(val.(*Error))
				}
				if !g.starred {
					return val, true
				}
				it, iterErr := iterateOrError(val)
				if iterErr != nil {
					return g.fail(iterErr)
				}
				elem, ok := it.Next()
				if !ok {
					// Empty unpacked iterable: keep driving the clauses.
					descending = false
					continue
				}
				if isError(elem) {
					return g.fail(elem.(*Error))
				}
				g.pending = it
				return elem, true
			}

			switch clause := g.clauses[c].(type) {
			case *ast.CompFor:
				iterable := g.eval.Eval(clause.Iterable, env)
				if isError(iterable) {
					return g.fail(iterable.(*Error))
				}
				it, iterErr := iterateOrError(iterable)
				if iterErr != nil {
					return g.fail(iterErr)
				}
				g.frames = append(g.frames, &genFrame{
					clause:    clause,
					clauseIdx: c,
					parentEnv: env,
					iter:      it,
				})
				descending = false
			case *ast.CompIf:
				cond := g.eval.Eval(clause.Condition, env)
				if isError(cond) {
					return g.fail(cond.(*Error))
				}
				if isTruthy(cond) {
					c++
				} else {
					descending = false
				}
			default:
				return g.fail(newError("unknown comprehension clause: %T", g.clauses[c]))
			}
			continue
		}

		// Backtrack: advance the innermost frame, dropping it when its
		// iterator runs dry.
		if len(g.frames) == 0 {
			g.state = genDone
			return nil, false
		}
		frame := g.frames[len(g.frames)-1]
		elem, ok := frame.iter.Next()
		if !ok {
			g.frames = g.frames[:len(g.frames)-1]
			continue
		}
		if isError(elem) {
			return g.fail(elem.(*Error))
		}
		bindingEnv := NewEnclosedEnvironment(frame.parentEnv)
		if bound := bindTargets(frame.clause.Targets, elem, bindingEnv); isError(bound) {
			return g.fail(bound.(*Error))
		}
		c = frame.clauseIdx + 1
		env = bindingEnv
		descending = true
	}
}
