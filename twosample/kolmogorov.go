// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twosample

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ksExactLimit is the largest sample size for which ksPValue uses the
// finite-n Kolmogorov distribution.
const ksExactLimit = 10000

// ksPValue returns Pr[D_n >= d], the two-sided p-value of the
// one-sample Kolmogorov-Smirnov statistic d for a sample of size n.
func ksPValue(n int, d float64) float64 {
	fn := float64(n)
	switch {
	case n <= 0 || math.IsNaN(d):
		return math.NaN()
	case d <= 0.5/fn:
		// The smallest attainable statistic.
		return 1
	case d >= 1:
		return 0
	case n > ksExactLimit:
		return kolmogorovQ(math.Sqrt(fn) * d)
	}

	// Marsaglia, Tsang & Wang's tail approximation is accurate to
	// about 7 digits in this region, where the matrix method
	// would be needlessly expensive.
	s := fn * d * d
	if s > 7.24 || (s > 3.76 && n > 99) {
		p := 2 * math.Exp(-(2.000071+0.331/math.Sqrt(fn)+1.409/fn)*s)
		return clamp(p, 0, 1)
	}
	return clamp(1-kolmogorovCDF(n, d), 0, 1)
}

// clamp returns x limited to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}

// kolmogorovCDF returns Pr[D_n < d] using the method of Marsaglia,
// Tsang & Wang, "Evaluating Kolmogorov's Distribution" (2003).
func kolmogorovCDF(n int, d float64) float64 {
	k := int(float64(n)*d) + 1
	m := 2*k - 1
	h := float64(k) - float64(n)*d

	H := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i-j+1 >= 0 {
				H.Set(i, j, 1)
			}
		}
	}
	for i := 0; i < m; i++ {
		H.Set(i, 0, H.At(i, 0)-math.Pow(h, float64(i+1)))
		H.Set(m-1, i, H.At(m-1, i)-math.Pow(h, float64(m-i)))
	}
	if 2*h-1 > 0 {
		H.Set(m-1, 0, H.At(m-1, 0)+math.Pow(2*h-1, float64(m)))
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i-j+1 > 0 {
				v := H.At(i, j)
				for g := 1; g <= i-j+1; g++ {
					v /= float64(g)
				}
				H.Set(i, j, v)
			}
		}
	}

	Q, eQ := matPow(H, 0, n)
	s := Q.At(k-1, k-1)
	for i := 1; i <= n; i++ {
		s = s * float64(i) / float64(n)
		if s < 1e-140 {
			s *= 1e140
			eQ -= 140
		}
	}
	return s * math.Pow(10, float64(eQ))
}

// matPow returns a^n as a matrix and a decimal exponent. The true
// power is the matrix scaled by 10^exp; ea is a's own exponent.
func matPow(a *mat.Dense, ea, n int) (*mat.Dense, int) {
	if n == 1 {
		return mat.DenseCopyOf(a), ea
	}
	v, ev := matPow(a, ea, n/2)
	b := new(mat.Dense)
	b.Mul(v, v)
	eb := 2 * ev
	if n%2 == 1 {
		c := new(mat.Dense)
		c.Mul(a, b)
		b, eb = c, eb+ea
	}
	m, _ := b.Dims()
	if b.At(m/2, m/2) > 1e140 {
		b.Scale(1e-140, b)
		eb += 140
	}
	return b, eb
}

// kolmogorovQ returns the complementary CDF of the limiting
// Kolmogorov distribution, Pr[K > x].
func kolmogorovQ(x float64) float64 {
	if x <= 0 {
		return 1
	}
	if x < 1.18 {
		// Jacobi theta form converges quickly for small x.
		y := -math.Pi * math.Pi / (8 * x * x)
		sum := 0.0
		for k := 1; k < 20; k += 2 {
			sum += math.Exp(float64(k*k) * y)
		}
		return clamp(1-math.Sqrt(2*math.Pi)/x*sum, 0, 1)
	}
	sum, sign := 0.0, 1.0
	for k := 1; k <= 100; k++ {
		term := math.Exp(-2 * float64(k*k) * x * x)
		sum += sign * term
		if term < 1e-16 {
			break
		}
		sign = -sign
	}
	return clamp(2*sum, 0, 1)
}
