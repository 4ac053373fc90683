// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twosample

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/aclements/go-moremath/stats"
)

// Values is a sample as supplied by an input collaborator: a Go slice
// or array whose elements are of any integer or floating-point kind,
// such as []float64 or []int. Anything else, including nested slices,
// is rejected with an InvalidDimensionError.
type Values interface{}

// ErrAllEqual is the warning attached to a ShiftResult when every
// value of both samples is identical, so ranks carry no information.
var ErrAllEqual = errors.New("all values in both groups are equal")

// A ShiftResult is the outcome of a Mann-Whitney U test of whether
// two samples differ in location.
type ShiftResult struct {
	// N1 and N2 are the sizes of group1 and group0.
	N1, N2 int

	// U is the Mann-Whitney U statistic for group1: the number of
	// (group1, group0) pairs in which the group1 value is larger,
	// counting ties as 0.5.
	U float64

	// P is the p-value for Alternative.
	P float64

	Alternative Alternative
	Alpha       float64

	// Significant reports whether P < Alpha.
	Significant bool

	// Direction interprets a significant result. It is always
	// NoDirection for a two-sided test.
	Direction Direction

	// Warnings is a list of warnings about this result that
	// should be reported to the user.
	Warnings []error
}

// String summarizes the result as "U=... p=0.PPP n=N1+N2".
func (r *ShiftResult) String() string {
	return fmt.Sprintf("U=%g p=%.4f n=%d+%d", r.U, r.P, r.N1, r.N2)
}

// CompareShift tests whether group1 and group0 differ in location
// using the Mann-Whitney U (Wilcoxon rank-sum) test, with ties
// assigned mid-ranks.
//
// Both operands are validated before any statistic is computed; if
// either is not a flat numeric sequence, CompareShift returns an
// InvalidDimensionError describing every invalid operand.
//
// A significant two-sided result has Direction NoDirection: the test
// establishes that a difference exists, not its sign.
func CompareShift(group1, group0 Values, alt Alternative, alpha float64) (*ShiftResult, error) {
	x1, x0, err := flattenPair(group1, group0)
	if err != nil {
		return nil, err
	}
	return shift(x1, x0, alt, alpha)
}

func shift(x1, x0 []float64, alt Alternative, alpha float64) (*ShiftResult, error) {
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	hyp, ok := hypotheses[alt]
	if !ok {
		return nil, fmt.Errorf("unknown alternative %v", alt)
	}
	s1, err := clean("group1", x1)
	if err != nil {
		return nil, err
	}
	s0, err := clean("group0", x0)
	if err != nil {
		return nil, err
	}
	if len(s1) == 0 || len(s0) == 0 {
		return nil, DegenerateSampleError{}
	}

	res := &ShiftResult{
		N1:          len(s1),
		N2:          len(s0),
		Alternative: alt,
		Alpha:       alpha,
	}
	u, err := stats.MannWhitneyUTest(s1, s0, hyp)
	switch {
	case err == stats.ErrSamplesEqual:
		// Every pair is a tie.
		res.U = float64(res.N1*res.N2) / 2
		res.P = 1
		res.Warnings = append(res.Warnings, ErrAllEqual)
	case err != nil:
		return nil, err
	default:
		res.U = u.U
		res.P = clamp(u.P, 0, 1)
	}

	res.Significant = res.P < alpha
	if res.Significant {
		switch alt {
		case Less:
			res.Direction = Group1Less
		case Greater:
			res.Direction = Group1Greater
		}
	}
	return res, nil
}

var hypotheses = map[Alternative]stats.LocationHypothesis{
	TwoSided: stats.LocationDiffers,
	Less:     stats.LocationLess,
	Greater:  stats.LocationGreater,
}

// flattenPair converts both operands to []float64, reporting every
// invalid operand in a single InvalidDimensionError.
func flattenPair(group1, group0 Values) ([]float64, []float64, error) {
	x1, why1 := flatten(group1)
	x0, why0 := flatten(group0)
	if why1 != "" || why0 != "" {
		return nil, nil, InvalidDimensionError{Group1: why1, Group0: why0}
	}
	return x1, x0, nil
}

// flatten converts v to []float64. If v is not a one-dimensional
// numeric sequence, it returns a description of the problem.
func flatten(v Values) ([]float64, string) {
	if xs, ok := v.([]float64); ok {
		return xs, ""
	}
	if v == nil {
		return nil, "is nil"
	}
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, fmt.Sprintf("is a %s, not a sequence", rv.Type())
	}
	elt := rv.Type().Elem()
	if dims := depth(elt); dims > 0 {
		return nil, fmt.Sprintf("has %d dimensions (%s), want 1", dims+1, rv.Type())
	}
	if !isNumeric(elt.Kind()) {
		return nil, fmt.Sprintf("has non-numeric elements of type %s", elt)
	}
	out := make([]float64, rv.Len())
	for i := range out {
		e := rv.Index(i)
		switch {
		case e.CanInt():
			out[i] = float64(e.Int())
		case e.CanUint():
			out[i] = float64(e.Uint())
		default:
			out[i] = e.Float()
		}
	}
	return out, ""
}

// depth returns the number of nested sequence levels in t.
func depth(t reflect.Type) int {
	d := 0
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
		d++
	}
	return d
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
