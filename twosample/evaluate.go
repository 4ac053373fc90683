// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twosample

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// A Summary describes the center of a sample.
type Summary struct {
	N      int
	Median float64
	Mean   float64
}

func (s Summary) String() string {
	return fmt.Sprintf("median=%.4f mean=%.4f n=%d", s.Median, s.Mean, s.N)
}

// Describe returns the median and arithmetic mean of xs.
func Describe(xs []float64) (Summary, error) {
	sorted, err := clean("sample", xs)
	if err != nil {
		return Summary{}, err
	}
	if len(sorted) == 0 {
		return Summary{}, DegenerateSampleError{}
	}
	s := stats.Sample{Xs: sorted, Sorted: true}
	return Summary{
		N:      len(sorted),
		Median: s.Quantile(0.5),
		Mean:   s.Mean(),
	}, nil
}

// An Evaluation bundles every test of a two-sample comparison. Each
// result is paired with an error; exactly one of the two is set.
type Evaluation struct {
	Normality1, Normality0       *NormalityResult
	Normality1Err, Normality0Err error

	Shift    *ShiftResult
	ShiftErr error

	Summary1, Summary0       *Summary
	Summary1Err, Summary0Err error
}

// Evaluate runs Normality on each group, CompareShift on the pair,
// and Describe on each group.
//
// A failing test does not prevent the others from running: its error
// is recorded in the corresponding field of the Evaluation and the
// remaining results are still computed.
func Evaluate(group1, group0 Values, alt Alternative, alpha float64) *Evaluation {
	e := new(Evaluation)
	x1, why1 := flatten(group1)
	x0, why0 := flatten(group0)

	if why1 != "" || why0 != "" {
		e.ShiftErr = InvalidDimensionError{Group1: why1, Group0: why0}
	} else {
		e.Shift, e.ShiftErr = shift(x1, x0, alt, alpha)
	}

	if why1 != "" {
		err := InvalidDimensionError{Group1: why1}
		e.Normality1Err, e.Summary1Err = err, err
	} else {
		e.Normality1, e.Normality1Err = Normality(x1, alpha)
		e.Summary1, e.Summary1Err = describe(x1)
	}
	if why0 != "" {
		err := InvalidDimensionError{Group0: why0}
		e.Normality0Err, e.Summary0Err = err, err
	} else {
		e.Normality0, e.Normality0Err = Normality(x0, alpha)
		e.Summary0, e.Summary0Err = describe(x0)
	}
	return e
}

func describe(xs []float64) (*Summary, error) {
	s, err := Describe(xs)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Err returns the first error recorded in e, or nil if every test
// succeeded.
func (e *Evaluation) Err() error {
	for _, err := range []error{e.Normality1Err, e.Normality0Err, e.ShiftErr, e.Summary1Err, e.Summary0Err} {
		if err != nil {
			return err
		}
	}
	return nil
}
