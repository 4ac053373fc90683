// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twosample

import (
	"math"
	"testing"
)

func TestKolmogorovCDF(t *testing.T) {
	check := func(n int, d, want float64) {
		t.Helper()
		got := kolmogorovCDF(n, d)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("K(%d, %v) = %v, want %v", n, d, got, want)
		}
	}
	// Worked example from Marsaglia, Tsang & Wang.
	check(10, 0.274, 0.6284796154565043)
	// For 1/(2n) <= d <= 1/n, K(n, d) = n! (2d - 1/n)^n.
	check(1, 0.75, 0.5)
	check(2, 0.4, 0.18)
	check(3, 0.3, 6*math.Pow(0.6-1.0/3, 3))
	// For 1-1/n <= d < 1, K(n, d) = 1 - 2(1-d)^n.
	check(4, 0.9, 1-2*math.Pow(0.1, 4))
}

func TestKolmogorovQ(t *testing.T) {
	// The familiar 5% critical value of the limiting distribution.
	if got := kolmogorovQ(1.3581); math.Abs(got-0.05) > 5e-4 {
		t.Errorf("Q(1.3581) = %v, want ~0.05", got)
	}
	if got := kolmogorovQ(0); got != 1 {
		t.Errorf("Q(0) = %v, want 1", got)
	}
	// The two series agree where they meet.
	lo, hi := kolmogorovQ(1.18-1e-9), kolmogorovQ(1.18+1e-9)
	if math.Abs(lo-hi) > 1e-7 {
		t.Errorf("Q is discontinuous at 1.18: %v vs %v", lo, hi)
	}
	// Monotone decreasing.
	prev := 1.0
	for x := 0.1; x < 4; x += 0.05 {
		q := kolmogorovQ(x)
		if q > prev+1e-12 {
			t.Errorf("Q(%v) = %v > Q(%v) = %v", x, q, x-0.05, prev)
		}
		prev = q
	}
}

func TestKSPValue(t *testing.T) {
	check := func(n int, d, want float64) {
		t.Helper()
		got := ksPValue(n, d)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("ksPValue(%d, %v) = %v, want %v", n, d, got, want)
		}
	}
	check(1, 0.75, 0.5)
	check(10, 0.274, 1-0.6284796154565043)
	check(10, 0.01, 1)
	check(10, 1, 0)

	// All regimes stay within [0, 1] and decrease in d.
	for _, n := range []int{1, 5, 50, 150, 5000, 20000} {
		prev := 1.0
		for d := 0.0; d <= 1; d += 0.01 {
			p := ksPValue(n, d)
			if p < 0 || p > 1 {
				t.Errorf("ksPValue(%d, %v) = %v, not in [0, 1]", n, d, p)
			}
			if p > prev+1e-6 {
				t.Errorf("ksPValue(%d, %v) = %v increased from %v", n, d, p, prev)
			}
			prev = p
		}
	}
}

func TestKSPValueCritical(t *testing.T) {
	// Two-sided 5% critical values of D_n from Miller (1956).
	for _, c := range []struct {
		n int
		d float64
	}{
		{5, 0.56328},
		{10, 0.40925},
		{20, 0.29408},
	} {
		if p := ksPValue(c.n, c.d); math.Abs(p-0.05) > 1e-3 {
			t.Errorf("ksPValue(%d, %v) = %v, want 0.05", c.n, c.d, p)
		}
	}
}

func TestClamp(t *testing.T) {
	check := func(x, want float64) {
		t.Helper()
		if got := clamp(x, 0, 1); got != want {
			t.Errorf("clamp(%v, 0, 1) = %v, want %v", x, got, want)
		}
	}
	check(-1e-17, 0)
	check(0, 0)
	check(0.25, 0.25)
	check(1, 1)
	check(1+1e-12, 1)
}
