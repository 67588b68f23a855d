// Released under an MIT license. See LICENSE.

package meas

import "testing"

func TestString(t *testing.T) {
	for _, c := range []struct {
		nominal, sigma float64
		s              string
	}{
		{9.81, 0.02, "9.81 ± 0.02"},
		{9.81, 0.025, "9.81 ± 0.03"},
		{1234.5, 12, "1230 ± 10"},
		{5, 0.96, "5 ± 1"},
		{2.5, 0, "2.5 ± 0"},
		{-3.14159, 0.001, "-3.142 ± 0.001"},
	} {
		m := New(c.nominal, c.sigma)

		if m.String() != c.s {
			t.Errorf("unc(%v, %v) = %q, expected %q", c.nominal, c.sigma, m.String(), c.s)
		}
	}
}

func TestTags(t *testing.T) {
	a := New(1, 0.1)
	b := New(1, 0.1)

	if a.Tag() == b.Tag() {
		t.Error("independent measurements share a tag")
	}

	c := With(a.Nominal(), a.Sigma(), a.Tag())
	if c.Tag() != a.Tag() {
		t.Error("copy does not preserve the tag")
	}

	// Tags never take part in equality.
	if !a.Equal(b) || !a.Equal(c) {
		t.Error("equality should compare nominal and sigma only")
	}
}

func TestNegativeSigma(t *testing.T) {
	if m := New(1, -0.5); m.Sigma() != 0.5 {
		t.Errorf("sigma = %v, expected 0.5", m.Sigma())
	}
}
