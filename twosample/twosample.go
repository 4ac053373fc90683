// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package twosample compares two independent samples of numeric
// observations.
//
// For each sample it tests whether the data is consistent with a
// normal distribution, and for the pair it tests whether the two
// distributions differ in location using the Mann-Whitney U test.
// Results are plain structured values so that reporting and plotting
// can consume them without recomputation.
//
// Missing values (NaN) are dropped before any computation. All
// functions are pure: inputs are never modified and every call
// returns freshly constructed results.
package twosample

import (
	"fmt"
	"math"
	"sort"
)

// DefaultAlpha is the conventional significance level.
const DefaultAlpha = 0.05

// An Alternative is the alternative hypothesis of a location-shift
// test, stated for group1 relative to group0.
type Alternative int

const (
	// TwoSided tests whether the two distributions differ in
	// location, without direction.
	TwoSided Alternative = iota
	// Less tests whether group1 is stochastically smaller than
	// group0.
	Less
	// Greater tests whether group1 is stochastically larger than
	// group0.
	Greater
)

var alternativeNames = map[Alternative]string{
	TwoSided: "two-sided",
	Less:     "less",
	Greater:  "greater",
}

func (a Alternative) String() string {
	if s, ok := alternativeNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Alternative(%d)", int(a))
}

// ParseAlternative parses the text form of an Alternative: "two-sided",
// "less", or "greater".
func ParseAlternative(s string) (Alternative, error) {
	for a, name := range alternativeNames {
		if s == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown alternative %q (want two-sided, less, or greater)", s)
}

// A Direction is the interpretation of a significant shift.
type Direction int

const (
	// NoDirection means either no significant difference, or a
	// significant two-sided difference whose sign the test does
	// not establish.
	NoDirection Direction = iota
	// Group1Less means group1 is significantly smaller than group0.
	Group1Less
	// Group1Greater means group1 is significantly larger than group0.
	Group1Greater
)

func (d Direction) String() string {
	switch d {
	case NoDirection:
		return "none"
	case Group1Less:
		return "group1_less"
	case Group1Greater:
		return "group1_greater"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// A DegenerateSampleError reports a sample on which a goodness-of-fit
// statistic is undefined: either it is empty or all of its values are
// equal.
type DegenerateSampleError struct {
	// N is the number of values in the sample.
	N int
	// Value is the repeated value when N > 0.
	Value float64
}

func (e DegenerateSampleError) Error() string {
	if e.N == 0 {
		return "degenerate sample: no values"
	}
	return fmt.Sprintf("degenerate sample: all %d values equal %v", e.N, e.Value)
}

// An InvalidDimensionError reports that one or both operands of a
// two-sample test are not flat numeric sequences. The field for an
// operand is empty if that operand was valid.
type InvalidDimensionError struct {
	Group1, Group0 string
}

func (e InvalidDimensionError) Error() string {
	switch {
	case e.Group1 != "" && e.Group0 != "":
		return fmt.Sprintf("invalid dimension: group1 %s; group0 %s", e.Group1, e.Group0)
	case e.Group1 != "":
		return "invalid dimension: group1 " + e.Group1
	}
	return "invalid dimension: group0 " + e.Group0
}

// A NonFiniteError reports an infinite value in a sample.
type NonFiniteError struct {
	Operand string
	Index   int
	Value   float64
}

func (e NonFiniteError) Error() string {
	return fmt.Sprintf("%s: value %d is %v", e.Operand, e.Index, e.Value)
}

// An AlphaError reports a significance level outside (0, 1).
type AlphaError struct {
	Alpha float64
}

func (e AlphaError) Error() string {
	return fmt.Sprintf("significance level %v not in (0, 1)", e.Alpha)
}

func checkAlpha(alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return AlphaError{alpha}
	}
	return nil
}

// clean returns a sorted copy of xs with NaNs removed. It fails if xs
// contains an infinity.
func clean(operand string, xs []float64) ([]float64, error) {
	out := make([]float64, 0, len(xs))
	for i, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if math.IsInf(x, 0) {
			return nil, NonFiniteError{operand, i, x}
		}
		out = append(out, x)
	}
	sort.Float64s(out)
	return out, nil
}
