// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Groupstat compares the distribution of numeric features between two
// groups of records.
//
// Usage:
//
//	groupstat [flags] -feature f1,f2,... source
//
// The source is a CSV file, a Cloud Storage object (gs://bucket/object),
// or, with -db, the data source name of a SQL database whose -table
// holds the records. The first CSV record names the columns.
//
// Records are split into two groups by the -label column: group 1 holds
// records whose label equals -group1 and group 0 those whose label
// equals -group0. For each feature, groupstat
//
//   - tests each group for normality with a Kolmogorov-Smirnov test
//     against a normal distribution fitted to the group,
//   - tests whether the groups differ in location with a
//     Mann-Whitney U test, and
//   - reports the median and mean of each group.
//
// Missing feature values (empty, NA, NaN, null, or NULL) are ignored.
//
// The -alternative flag selects the alternative hypothesis of the
// Mann-Whitney test, stated for group 1 relative to group 0:
// two-sided (the default), less, or greater. A result is significant
// if p < -alpha.
//
// The -plot flag writes a kernel density plot of each feature to the
// named PNG, SVG, or PDF file. With more than one feature, the feature
// name is inserted before the file's extension. The -layout flag
// arranges the plot: single overlays both groups, side-by-side draws
// one panel per group with the fitted normal density, and combined
// draws both.
//
// Example
//
//	$ groupstat -feature income,age loans.csv
//	income  compliant  non-compliant
//	n              12             12
//	median    58.2500        36.8750
//	...
//	Mann-Whitney U=144 p=0.0000 (two-sided, α=0.05): significant
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/groupstat/chart"
	"golang.org/x/groupstat/dataset"
	_ "golang.org/x/groupstat/dataset/mysql"
	_ "golang.org/x/groupstat/dataset/sqlite3"
	"golang.org/x/groupstat/report"
	"golang.org/x/groupstat/twosample"
)

var exit = os.Exit // replaced during testing

func main() {
	log.SetPrefix("groupstat: ")
	log.SetFlags(0)
	err := groupstat(os.Stdout, os.Stderr, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) || errors.As(err, new(usageError)) {
		exit(2)
	}
	if err != nil {
		log.Print(err)
		exit(1)
	}
}

// A usageError reports a bad command line. The usage message has
// already been printed.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func groupstat(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("groupstat", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: groupstat [flags] -feature f1,f2,... source\n")
		fmt.Fprintf(flags.Output(), "flags:\n")
		flags.PrintDefaults()
	}
	var (
		flagLabel       = flags.String("label", "compliance", "split records by the `column` naming their group")
		flagFeature     = flags.String("feature", "", "comma-separated numeric `columns` to compare")
		flagGroup1      = flags.String("group1", "1", "label `value` of group 1")
		flagGroup0      = flags.String("group0", "0", "label `value` of group 0")
		flagNames       = flags.String("names", "compliant,non-compliant", "display `names` of group 1 and group 0")
		flagAlternative = flags.String("alternative", "two-sided", "alternative `hypothesis`: two-sided, less, or greater")
		flagAlpha       = flags.Float64("alpha", twosample.DefaultAlpha, "consider a result significant if p < `α`")
		flagHTML        = flags.Bool("html", false, "print results as HTML")
		flagVerbose     = flags.Bool("v", false, "explain each test in plain language")
		flagPlot        = flags.String("plot", "", "write density plots to `file` (.png, .svg, or .pdf)")
		flagLayout      = flags.String("layout", "single", "plot `layout`: single, side-by-side, or combined")
		flagDB          = flags.String("db", "", "read records from a SQL database using `driver` (sqlite3 or mysql); source is its data source name")
		flagTable       = flags.String("table", "", "read records from SQL `table`")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	bad := func(format string, args ...interface{}) error {
		err := fmt.Errorf(format, args...)
		fmt.Fprintf(flags.Output(), "%v\n", err)
		flags.Usage()
		return usageError{err}
	}
	if flags.NArg() != 1 {
		return bad("want exactly one source, have %d", flags.NArg())
	}
	source := flags.Arg(0)
	features := splitList(*flagFeature)
	if len(features) == 0 {
		return bad("no -feature given")
	}
	names := splitList(*flagNames)
	if len(names) != 2 {
		return bad("-names must name exactly two groups")
	}
	alt, err := twosample.ParseAlternative(*flagAlternative)
	if err != nil {
		return bad("%v", err)
	}
	if !(*flagAlpha > 0 && *flagAlpha < 1) {
		return bad("-alpha must be in (0, 1)")
	}
	layout, err := chart.ParseLayout(*flagLayout)
	if err != nil {
		return bad("%v", err)
	}
	if *flagPlot != "" {
		if _, err := chart.FormatOf(*flagPlot); err != nil {
			return bad("%v", err)
		}
	}
	if (*flagDB == "") != (*flagTable == "") {
		return bad("-db and -table must be given together")
	}

	ctx := context.Background()
	var d *dataset.Dataset
	if *flagDB != "" {
		db, err := dataset.OpenSQL(*flagDB, source)
		if err != nil {
			return err
		}
		defer db.Close()
		d, err = db.Load(ctx, *flagTable, append([]string{*flagLabel}, features...)...)
		if err != nil {
			return err
		}
	} else {
		d, err = dataset.Open(ctx, source)
		if err != nil {
			return err
		}
	}

	var reports []*report.Report
	failed := 0
	for _, feature := range features {
		g1, g0, err := d.Groups(*flagLabel, feature, *flagGroup1, *flagGroup0)
		if err != nil {
			fmt.Fprintf(wErr, "%v\n", err)
			failed++
			continue
		}
		r := report.New(feature, [2]string{names[0], names[1]}, g1, g0, alt, *flagAlpha)
		reports = append(reports, r)

		if *flagPlot == "" {
			continue
		}
		path := plotPath(*flagPlot, feature, len(features) > 1)
		if err := plot(path, *flagLabel, r, g1, g0, layout, wErr); err != nil {
			fmt.Fprintf(wErr, "%v\n", err)
			failed++
		}
	}

	if len(reports) > 0 {
		if *flagHTML {
			err = report.FormatHTML(w, reports)
		} else {
			err = report.FormatText(w, reports, *flagVerbose)
		}
		if err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d features failed", failed, len(features))
	}
	return nil
}

// plot writes a density chart of one feature to path.
func plot(path, label string, r *report.Report, g1, g0 []float64, layout chart.Layout, wErr io.Writer) error {
	c, err := chart.New(r.Feature, label, [2]chart.Group{
		{Name: r.Names[0], Values: g1, Fit: r.Eval.Normality1},
		{Name: r.Names[1], Values: g0, Fit: r.Eval.Normality0},
	}, layout)
	if err != nil {
		return err
	}
	for _, w := range c.Warnings {
		fmt.Fprintf(wErr, "%s: %v\n", r.Feature, w)
	}
	return c.Save(path)
}

// plotPath returns the file for feature's plot. If perFeature is set,
// the feature name is inserted before path's extension.
func plotPath(path, feature string, perFeature bool) string {
	if !perFeature {
		return path
	}
	ext := filepath.Ext(path)
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == filepath.Separator {
			return '-'
		}
		return r
	}, feature)
	return strings.TrimSuffix(path, ext) + "-" + safe + ext
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
