// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report formats the results of two-group comparisons as text
// or HTML.
package report

import (
	"fmt"

	"golang.org/x/groupstat/twosample"
)

// A Report is the evaluation of one feature across two groups.
type Report struct {
	// Feature names the compared quantity.
	Feature string

	// Names are the display names of group1 and group0, in that
	// order.
	Names [2]string

	Alternative twosample.Alternative
	Alpha       float64

	Eval *twosample.Evaluation
}

// New evaluates feature values group1 and group0 and returns a Report
// of the results.
func New(feature string, names [2]string, group1, group0 twosample.Values, alt twosample.Alternative, alpha float64) *Report {
	return &Report{
		Feature:     feature,
		Names:       names,
		Alternative: alt,
		Alpha:       alpha,
		Eval:        twosample.Evaluate(group1, group0, alt, alpha),
	}
}

// A statRow is one statistic for both groups, already formatted.
type statRow struct {
	Name  string
	Cells [2]string
}

// rows returns the per-group statistics of r in display order. A
// statistic that could not be computed shows as "error".
func (r *Report) rows() []statRow {
	e := r.Eval
	sums := [2]*twosample.Summary{e.Summary1, e.Summary0}
	norms := [2]*twosample.NormalityResult{e.Normality1, e.Normality0}

	row := func(name string, f func(g int) string) statRow {
		out := statRow{Name: name}
		for g := range out.Cells {
			out.Cells[g] = f(g)
		}
		return out
	}
	sum := func(f func(s *twosample.Summary) string) func(int) string {
		return func(g int) string {
			if sums[g] == nil {
				return "error"
			}
			return f(sums[g])
		}
	}
	norm := func(f func(n *twosample.NormalityResult) string) func(int) string {
		return func(g int) string {
			if norms[g] == nil {
				return "error"
			}
			return f(norms[g])
		}
	}
	return []statRow{
		row("n", sum(func(s *twosample.Summary) string { return fmt.Sprint(s.N) })),
		row("median", sum(func(s *twosample.Summary) string { return fmt.Sprintf("%.4f", s.Median) })),
		row("mean", sum(func(s *twosample.Summary) string { return fmt.Sprintf("%.4f", s.Mean) })),
		row("KS D", norm(func(n *twosample.NormalityResult) string { return fmt.Sprintf("%.4f", n.D) })),
		row("KS p", norm(func(n *twosample.NormalityResult) string { return fmt.Sprintf("%.4f", n.P) })),
		row("normal", norm(func(n *twosample.NormalityResult) string {
			if n.IsNormal {
				return "yes"
			}
			return "no"
		})),
	}
}

// shiftLine summarizes the location-shift test in one line.
func (r *Report) shiftLine() string {
	s := r.Eval.Shift
	if s == nil {
		return fmt.Sprintf("Mann-Whitney U: %v", r.Eval.ShiftErr)
	}
	verdict := "not significant"
	if s.Significant {
		verdict = "significant"
		switch s.Direction {
		case twosample.Group1Less:
			verdict += fmt.Sprintf(", %s < %s", r.Names[0], r.Names[1])
		case twosample.Group1Greater:
			verdict += fmt.Sprintf(", %s > %s", r.Names[0], r.Names[1])
		}
	}
	return fmt.Sprintf("Mann-Whitney U=%g p=%.4f (%s, α=%g): %s", s.U, s.P, s.Alternative, s.Alpha, verdict)
}

// errs returns every error in r's evaluation, labeled by the test
// and group that produced it, followed by shift warnings.
func (r *Report) errs() []string {
	e := r.Eval
	var out []string
	add := func(what string, err error) {
		if err != nil {
			out = append(out, fmt.Sprintf("%s: %v", what, err))
		}
	}
	add(r.Names[0]+" normality", e.Normality1Err)
	add(r.Names[1]+" normality", e.Normality0Err)
	add(r.Names[0]+" summary", e.Summary1Err)
	add(r.Names[1]+" summary", e.Summary0Err)
	if e.Shift != nil {
		for _, w := range e.Shift.Warnings {
			add("warning", w)
		}
	}
	return out
}
