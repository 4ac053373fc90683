// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twosample

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// A NormalityResult is the outcome of a Kolmogorov-Smirnov test of a
// sample against a normal distribution.
type NormalityResult struct {
	// N is the number of values tested.
	N int

	// Mean and StdDev parameterize the reference normal
	// distribution. They are estimated from the tested sample
	// itself; StdDev is the population standard deviation.
	Mean, StdDev float64

	// D is the Kolmogorov-Smirnov statistic, the largest absolute
	// difference between the empirical CDF and the reference CDF.
	D float64

	// P is the two-sided p-value of D.
	P float64

	// Alpha is the significance level the result was classified
	// at.
	Alpha float64

	// IsNormal reports whether P > Alpha, that is, whether the
	// test fails to reject normality.
	IsNormal bool
}

func (r *NormalityResult) String() string {
	return fmt.Sprintf("D=%.4f p=%.4f n=%d", r.D, r.P, r.N)
}

// Normality tests whether xs is consistent with a normal distribution
// using the one-sample Kolmogorov-Smirnov test.
//
// The reference distribution's mean and standard deviation are
// estimated from xs. Because the parameters are fit to the data being
// tested, the resulting p-values are biased upward (the test is more
// permissive than one against an independently specified normal);
// this matches the established behavior of the tool and is kept
// intentionally.
//
// Normality returns a DegenerateSampleError if xs is empty or all of
// its values are equal.
func Normality(xs []float64, alpha float64) (*NormalityResult, error) {
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	sorted, err := clean("sample", xs)
	if err != nil {
		return nil, err
	}
	n := len(sorted)
	if n == 0 {
		return nil, DegenerateSampleError{}
	}
	if sorted[0] == sorted[n-1] {
		return nil, DegenerateSampleError{N: n, Value: sorted[0]}
	}

	mean, sd := stat.PopMeanStdDev(sorted, nil)
	if sd == 0 || math.IsNaN(sd) {
		return nil, DegenerateSampleError{N: n, Value: mean}
	}

	d := ksStatistic(sorted, stats.NormalDist{Mu: mean, Sigma: sd}.CDF)
	p := ksPValue(n, d)
	return &NormalityResult{
		N:        n,
		Mean:     mean,
		StdDev:   sd,
		D:        d,
		P:        p,
		Alpha:    alpha,
		IsNormal: p > alpha,
	}, nil
}

// ksStatistic returns the two-sided one-sample Kolmogorov-Smirnov
// statistic of sorted against cdf.
func ksStatistic(sorted []float64, cdf func(float64) float64) float64 {
	n := float64(len(sorted))
	d := 0.0
	for i, x := range sorted {
		f := cdf(x)
		// D+ at the top of the step, D- at the bottom.
		if v := float64(i+1)/n - f; v > d {
			d = v
		}
		if v := f - float64(i)/n; v > d {
			d = v
		}
	}
	return d
}
