// Released under an MIT license. See LICENSE.

// Package session provides the uncalc REPL core: it evaluates one
// submitted line at a time against a persistent environment.
//
// Every fault thrown below the session is recovered here. A failing
// line leaves the environment and history exactly as they were before
// it was submitted.
package session

import (
	"github.com/uncalc/uncalc/internal/common"
	"github.com/uncalc/uncalc/internal/common/fault"
	"github.com/uncalc/uncalc/internal/common/interface/quantity"
	"github.com/uncalc/uncalc/internal/common/struct/hash"
	"github.com/uncalc/uncalc/internal/engine/constants"
	"github.com/uncalc/uncalc/internal/engine/dispatch"
	"github.com/uncalc/uncalc/internal/reader/ast"
	"github.com/uncalc/uncalc/internal/reader/parser"
)

// Ans is the name bound to the value of the last displayed expression.
const Ans = "ans"

// Kind classifies the outcome of a submitted line.
type Kind int

// Outcome kinds.
const (
	Displayed Kind = iota
	Assigned
	Failed
)

// Result is the outcome of one submitted line.
type Result struct {
	Kind  Kind
	Name  string // Bound name, when Kind is Assigned.
	Text  string // Formatted quantity, when not Failed.
	Fault *fault.T
}

// Entry is one history record: a submitted line and its outcome.
type Entry struct {
	Input string
	Text  string
	Fault *fault.T
}

// T (session) owns the environment and history for one operator.
type T struct {
	env     *hash.T
	history []Entry
	limit   int
}

type session = T

// New creates a new session with the constants predefined.
func New() *T {
	s := &session{limit: 100}

	s.Reset()

	return s
}

// Submit parses and evaluates one line to completion and returns the
// outcome. The environment is updated only if the whole line succeeds.
func (s *session) Submit(line string) Result {
	stmts, f := parser.Parse(line)
	if f != nil {
		return s.record(line, Result{Kind: Failed, Fault: f})
	}

	if len(stmts) == 0 {
		// Blank or comment-only lines leave no trace.
		return Result{Kind: Displayed}
	}

	return s.record(line, s.evaluate(stmts))
}

// Snapshot returns a copy of the environment for export.
func (s *session) Snapshot() map[string]quantity.I {
	m := map[string]quantity.I{}

	for _, k := range s.env.Names() {
		m[k] = s.env.Get(k)
	}

	return m
}

// Restore replaces the environment with the exported mapping m,
// on top of the predefined constants.
func (s *session) Restore(m map[string]quantity.I) {
	s.Reset()

	for k, v := range m {
		s.env.Set(k, v)
	}
}

// Reset clears the environment back to the predefined constants and
// empties the history.
func (s *session) Reset() {
	s.env = hash.New()
	s.history = nil

	constants.Define(s.env)
}

// History returns the retained history entries, oldest first.
func (s *session) History() []Entry {
	return s.history
}

// Complete returns environment and function names with the given
// prefix, for interactive completion.
func (s *session) Complete(prefix string) []string {
	names := dispatch.Complete(prefix)

	for _, k := range s.env.Names() {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			names = append(names, k)
		}
	}

	return names
}

func (s *session) record(line string, r Result) Result {
	s.history = append(s.history, Entry{Input: line, Text: r.Text, Fault: r.Fault})

	// Oldest entries are evicted to bound memory on small hosts.
	if len(s.history) > s.limit {
		s.history = append(s.history[:0], s.history[len(s.history)-s.limit:]...)
	}

	return r
}

// evaluate runs the statements against a scratch copy of the
// environment, committing it only when every statement succeeds.
func (s *session) evaluate(stmts []ast.Stmt) (r Result) {
	scratch := s.env.Copy()

	defer func() {
		v := recover()
		if v == nil {
			return
		}

		f, ok := v.(*fault.T)
		if !ok {
			// Not an evaluation fault; let the host see it.
			panic(v)
		}

		r = Result{Kind: Failed, Fault: f}
	}()

	for _, st := range stmts {
		switch st := st.(type) {
		case *ast.Assign:
			v := eval(st.X, scratch)
			scratch.Set(st.Name, v)

			r = Result{Kind: Assigned, Name: st.Name, Text: common.String(v)}
		case *ast.ExprStmt:
			v := eval(st.X, scratch)
			scratch.Set(Ans, v)

			r = Result{Kind: Displayed, Text: common.String(v)}
		}
	}

	s.env = scratch

	return r
}

// eval walks an expression, dispatching every operation on the
// operand domains.
func eval(x ast.Expr, env *hash.T) quantity.I {
	switch x := x.(type) {
	case *ast.Literal:
		return x.Value
	case *ast.Name:
		v := env.Get(x.Ident)
		if v == nil {
			fault.Throw(fault.UnboundName, "%s is not defined", x.Ident)
		}

		return v
	case *ast.Unary:
		return dispatch.Unary(x.Op, eval(x.X, env))
	case *ast.Binary:
		return dispatch.Binary(x.Op, eval(x.A, env), eval(x.B, env))
	case *ast.Call:
		args := make([]quantity.I, len(x.Args))
		for i, a := range x.Args {
			args[i] = eval(a, env)
		}

		return dispatch.Call(x.Fn, args)
	}

	panic("unhandled expression node")
}
