// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/groupstat/internal/texttab"
	"golang.org/x/groupstat/twosample"
)

// FormatText writes a fixed-width text formatting of reports to w.
//
// Each report is a table of per-group statistics followed by the
// location-shift result and any errors. If verbose is set, FormatText
// also writes a plain-language account of every test.
func FormatText(w io.Writer, reports []*Report, verbose bool) error {
	bw := bufio.NewWriter(w)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintf(bw, "\n")
		}
		var tab texttab.Table
		tab.Row().Cell(r.Feature).Cell(r.Names[0], texttab.Right).Cell(r.Names[1], texttab.Right)
		for _, row := range r.rows() {
			tab.Row().Cell(row.Name).Cell(row.Cells[0], texttab.Right).Cell(row.Cells[1], texttab.Right)
		}
		if err := tab.Format(bw); err != nil {
			return err
		}
		fmt.Fprintf(bw, "%s\n", r.shiftLine())
		for _, e := range r.errs() {
			fmt.Fprintf(bw, "%s\n", e)
		}
		if verbose {
			r.explain(bw)
		}
	}
	return bw.Flush()
}

// explain writes the verbose account of r.
func (r *Report) explain(w io.Writer) {
	e := r.Eval
	fmt.Fprintf(w, "\nKolmogorov-Smirnov Normality Test for %s:\n", r.Feature)
	for g, n := range [2]*twosample.NormalityResult{e.Normality1, e.Normality0} {
		name := r.Names[g]
		if n == nil {
			fmt.Fprintf(w, "%s Group: not tested\n", name)
			continue
		}
		fmt.Fprintf(w, "%s Group: KS Statistic = %.4f, P-Value = %.4f\n", name, n.D, n.P)
		if n.IsNormal {
			fmt.Fprintf(w, "  %s is consistent with a normal distribution (p > %g).\n", name, n.Alpha)
		} else {
			fmt.Fprintf(w, "  %s is not normally distributed (p <= %g).\n", name, n.Alpha)
		}
	}

	fmt.Fprintf(w, "\nMann-Whitney U Test for %s:\n", r.Feature)
	if s := e.Shift; s != nil {
		fmt.Fprintf(w, "U Statistic = %.4f, P-Value = %.4f\n", s.U, s.P)
		if s.Significant {
			fmt.Fprintf(w, "Result: Significant difference.\n")
		} else {
			fmt.Fprintf(w, "Result: No significant difference.\n")
		}
		switch s.Direction {
		case twosample.Group1Less:
			fmt.Fprintf(w, "  %s values tend to be lower than %s values.\n", r.Names[0], r.Names[1])
		case twosample.Group1Greater:
			fmt.Fprintf(w, "  %s values tend to be higher than %s values.\n", r.Names[0], r.Names[1])
		default:
			if s.Significant {
				fmt.Fprintf(w, "  The groups differ in location; a one-sided test gives the direction.\n")
			}
		}
	} else {
		fmt.Fprintf(w, "not tested: %v\n", e.ShiftErr)
	}

	fmt.Fprintf(w, "\nSummary Statistics for %s:\n", r.Feature)
	for g, s := range [2]*twosample.Summary{e.Summary1, e.Summary0} {
		if s == nil {
			fmt.Fprintf(w, "%s: not available\n", r.Names[g])
			continue
		}
		fmt.Fprintf(w, "%s Median: %.4f, Mean: %.4f\n", r.Names[g], s.Median, s.Mean)
	}
}
