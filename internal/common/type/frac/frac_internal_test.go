// Released under an MIT license. See LICENSE.

package frac

import (
	"math"
	"testing"

	"github.com/uncalc/uncalc/internal/common/fault"
)

func TestNormalization(t *testing.T) {
	for _, c := range []struct {
		num, den int64
		s        string
	}{
		{2, 4, "1/2"},
		{-2, 4, "-1/2"},
		{2, -4, "-1/2"},
		{-2, -4, "1/2"},
		{6, 3, "2"},
		{0, 7, "0"},
		{5, 1, "5"},
	} {
		f := New(c.num, c.den)

		if f.String() != c.s {
			t.Errorf("New(%d, %d) = %s, expected %s", c.num, c.den, f.String(), c.s)
		}

		if f.Den() <= 0 {
			t.Errorf("New(%d, %d) has denominator %d", c.num, c.den, f.Den())
		}

		g := New(f.Num(), f.Den())
		if !g.Equal(f) {
			t.Errorf("normalizing %s a second time produced %s", f, g)
		}
	}
}

func TestZeroDenominator(t *testing.T) {
	expect(t, fault.DivisionByZero, func() { New(1, 0) })
}

func TestArithmetic(t *testing.T) {
	half := New(1, 2)
	third := New(1, 3)

	if s := half.Add(third).String(); s != "5/6" {
		t.Errorf("1/2 + 1/3 = %s", s)
	}

	if s := half.Sub(third).String(); s != "1/6" {
		t.Errorf("1/2 - 1/3 = %s", s)
	}

	if s := half.Mul(third).String(); s != "1/6" {
		t.Errorf("1/2 * 1/3 = %s", s)
	}

	if s := half.Div(third).String(); s != "3/2" {
		t.Errorf("1/2 / 1/3 = %s", s)
	}

	expect(t, fault.DivisionByZero, func() { half.Div(Int(0)) })
}

func TestPow(t *testing.T) {
	if s := New(2, 3).Pow(3).String(); s != "8/27" {
		t.Errorf("(2/3)**3 = %s", s)
	}

	if s := New(2, 3).Pow(-2).String(); s != "9/4" {
		t.Errorf("(2/3)**-2 = %s", s)
	}

	if s := New(7, 2).Pow(0).String(); s != "1" {
		t.Errorf("(7/2)**0 = %s", s)
	}

	expect(t, fault.DivisionByZero, func() { Int(0).Pow(-1) })
}

func TestOverflow(t *testing.T) {
	huge := Int(math.MaxInt64)

	expect(t, fault.Overflow, func() { huge.Add(Int(1)) })
	expect(t, fault.Overflow, func() { huge.Mul(Int(2)) })
	expect(t, fault.Overflow, func() { New(math.MinInt64, 1).Neg() })
}

func TestFloat(t *testing.T) {
	if v := New(1, 4).Float(); v != 0.25 {
		t.Errorf("float(1/4) = %v", v)
	}

	if !Int(3).IsInt() || New(1, 3).IsInt() {
		t.Error("IsInt misclassifies")
	}
}

func expect(t *testing.T, k fault.Kind, op func()) {
	t.Helper()

	defer func() {
		f, ok := recover().(*fault.T)
		if !ok {
			t.Fatal("expected a fault")
		}

		if f.Kind() != k {
			t.Fatalf("expected %s, got %s", k, f)
		}
	}()

	op()
}
