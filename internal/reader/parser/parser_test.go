// Released under an MIT license. See LICENSE.

package parser_test

import (
	"testing"

	"github.com/uncalc/uncalc/internal/common/fault"
	"github.com/uncalc/uncalc/internal/common/type/cpx"
	"github.com/uncalc/uncalc/internal/common/type/flt"
	"github.com/uncalc/uncalc/internal/common/type/frac"
	"github.com/uncalc/uncalc/internal/reader/ast"
	"github.com/uncalc/uncalc/internal/reader/parser"
)

func one(t *testing.T, line string) ast.Stmt {
	t.Helper()

	stmts, f := parser.Parse(line)
	if f != nil {
		t.Fatalf("Parse(%q) faulted: %s", line, f)
	}

	if len(stmts) != 1 {
		t.Fatalf("Parse(%q) produced %d statement(s)", line, len(stmts))
	}

	return stmts[0]
}

func expr(t *testing.T, line string) ast.Expr {
	t.Helper()

	s, ok := one(t, line).(*ast.ExprStmt)
	if !ok {
		t.Fatalf("Parse(%q) is not an expression statement", line)
	}

	return s.X
}

func TestLiterals(t *testing.T) {
	// Integer text is exact; decimal or exponent text is a real.
	l, ok := expr(t, "42").(*ast.Literal)
	if !ok || !l.Value.Equal(frac.Int(42)) {
		t.Error("42 should be an exact integer literal")
	}

	l, ok = expr(t, "2.5").(*ast.Literal)
	if !ok || !l.Value.Equal(flt.New(2.5)) {
		t.Error("2.5 should be a real literal")
	}

	l, ok = expr(t, "1e3").(*ast.Literal)
	if !ok || !l.Value.Equal(flt.New(1000)) {
		t.Error("1e3 should be a real literal")
	}

	l, ok = expr(t, "2i").(*ast.Literal)
	if !ok || !l.Value.Equal(cpx.Rect(0, 2)) {
		t.Error("2i should be an imaginary literal")
	}
}

func TestPrecedence(t *testing.T) {
	// 1 + 2 * 3 parses as 1 + (2 * 3).
	b, ok := expr(t, "1 + 2 * 3").(*ast.Binary)
	if !ok || b.Op != "+" {
		t.Fatal("+ should be the root")
	}

	if inner, ok := b.B.(*ast.Binary); !ok || inner.Op != "*" {
		t.Error("* should bind tighter than +")
	}

	// -2**2 parses as -(2**2).
	u, ok := expr(t, "-2**2").(*ast.Unary)
	if !ok || u.Op != "-" {
		t.Fatal("the prefix sign should be the root")
	}

	if inner, ok := u.X.(*ast.Binary); !ok || inner.Op != "**" {
		t.Error("** should bind tighter than a prefix sign")
	}

	// 2**3**2 parses as 2**(3**2).
	b, ok = expr(t, "2**3**2").(*ast.Binary)
	if !ok || b.Op != "**" {
		t.Fatal("** should be the root")
	}

	if inner, ok := b.B.(*ast.Binary); !ok || inner.Op != "**" {
		t.Error("** should be right-associative")
	}

	// 2**-1 carries the sign in the exponent.
	b, ok = expr(t, "2**-1").(*ast.Binary)
	if !ok || b.Op != "**" {
		t.Fatal("** should be the root")
	}

	if _, ok := b.B.(*ast.Unary); !ok {
		t.Error("the exponent should be a signed unary")
	}
}

func TestAssignment(t *testing.T) {
	a, ok := one(t, "x = 1 + 2").(*ast.Assign)
	if !ok || a.Name != "x" {
		t.Fatal("expected an assignment to x")
	}

	// Not an assignment: a call argument list.
	if _, ok := expr(t, "frac(1, 2)").(*ast.Call); !ok {
		t.Error("expected a call")
	}
}

func TestMultipleStatements(t *testing.T) {
	stmts, f := parser.Parse("a = 1; a + 1 # comment")
	if f != nil {
		t.Fatalf("faulted: %s", f)
	}

	if len(stmts) != 2 {
		t.Fatalf("produced %d statement(s), expected 2", len(stmts))
	}

	if _, ok := stmts[0].(*ast.Assign); !ok {
		t.Error("first statement should be an assignment")
	}
}

func TestEmpty(t *testing.T) {
	for _, line := range []string{"", "   ", "# comment"} {
		stmts, f := parser.Parse(line)
		if f != nil || len(stmts) != 0 {
			t.Errorf("Parse(%q) = %v statement(s), fault %v", line, len(stmts), f)
		}
	}
}

func TestFaults(t *testing.T) {
	for _, line := range []string{
		"1 +",
		"(1 + 2",
		"f(1,",
		"= 1",
		"1 2",
		"2 @ 3",
	} {
		_, f := parser.Parse(line)
		if f == nil {
			t.Errorf("Parse(%q) did not fault", line)

			continue
		}

		if f.Kind() != fault.Parse {
			t.Errorf("Parse(%q) faulted with %s", line, f)
		}
	}

	// Integer literals beyond int64 overflow rather than silently
	// losing precision.
	_, f := parser.Parse("99999999999999999999")
	if f == nil || f.Kind() != fault.Overflow {
		t.Errorf("oversized integer literal faulted with %v", f)
	}
}
