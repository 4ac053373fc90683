// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads tabular records and splits one numeric
// feature into two groups by the value of a label column.
//
// Records can come from CSV (a local file or a Cloud Storage object)
// or from a SQL table. In every case, a column whose non-missing
// cells all parse as numbers becomes a numeric column with NaN for
// missing cells; any other column holds strings.
package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// A Dataset is an immutable table of records.
type Dataset struct {
	// Name identifies where the records came from.
	Name string

	tab *table.Table
}

// Len returns the number of records in d.
func (d *Dataset) Len() int {
	return d.tab.Len()
}

// Columns returns the column names of d in input order.
func (d *Dataset) Columns() []string {
	return d.tab.Columns()
}

// IsNumeric reports whether column col of d holds numbers.
func (d *Dataset) IsNumeric(col string) bool {
	_, ok := d.tab.Column(col).([]float64)
	return ok
}

// Groups splits column feature of d by the value of column label.
// group1 holds the feature values of records whose label equals
// value1 and group0 those whose label equals value0. Missing feature
// values are dropped.
//
// Labels compare numerically if the label column is numeric (so "1"
// matches 1.0) and as exact strings otherwise.
func (d *Dataset) Groups(label, feature, value1, value0 string) (group1, group0 []float64, err error) {
	if d.tab.Column(label) == nil {
		return nil, nil, fmt.Errorf("%s: no label column %q", d.Name, label)
	}
	if d.tab.Column(feature) == nil {
		return nil, nil, fmt.Errorf("%s: no feature column %q", d.Name, feature)
	}
	if !d.IsNumeric(feature) {
		return nil, nil, fmt.Errorf("%s: feature column %q is not numeric", d.Name, feature)
	}

	pick := func(value string) ([]float64, error) {
		pred, err := d.labelPredicate(label, value)
		if err != nil {
			return nil, err
		}
		t := table.Flatten(table.Filter(d.tab, pred, label))
		var xs []float64
		if t.Len() > 0 {
			slice.Convert(&xs, t.MustColumn(feature))
		}
		out := make([]float64, 0, len(xs))
		for _, x := range xs {
			if !math.IsNaN(x) {
				out = append(out, x)
			}
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("%s: no %q values with %s=%s", d.Name, feature, label, value)
		}
		return out, nil
	}
	if group1, err = pick(value1); err != nil {
		return nil, nil, err
	}
	if group0, err = pick(value0); err != nil {
		return nil, nil, err
	}
	return group1, group0, nil
}

// labelPredicate returns a go-gg filter predicate matching value in
// column label.
func (d *Dataset) labelPredicate(label, value string) (interface{}, error) {
	if d.IsNumeric(label) {
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: label column %q is numeric but %q is not a number", d.Name, label, value)
		}
		return func(x float64) bool { return x == v }, nil
	}
	return func(s string) bool { return s == value }, nil
}

// missing reports whether a cell denotes a missing value.
func missing(cell string) bool {
	switch strings.TrimSpace(cell) {
	case "", "NA", "N/A", "NaN", "nan", "null", "NULL", "None":
		return true
	}
	return false
}

// build constructs a Dataset from string cells. null[i][j], if
// non-nil, marks cells that were NULL at the source.
func build(name string, cols []string, rows [][]string, null [][]bool) (*Dataset, error) {
	seen := make(map[string]bool)
	var b table.Builder
	for i, col := range cols {
		if seen[col] {
			return nil, fmt.Errorf("%s: duplicate column %q", name, col)
		}
		seen[col] = true

		strs := make([]string, len(rows))
		isMissing := make([]bool, len(rows))
		for j, row := range rows {
			if i >= len(row) {
				return nil, fmt.Errorf("%s: record %d has %d fields, want %d", name, j+1, len(row), len(cols))
			}
			strs[j] = row[i]
			isMissing[j] = missing(row[i]) || (null != nil && null[j][i])
		}
		if nums, ok := parseNumeric(strs, isMissing); ok {
			b.Add(col, nums)
		} else {
			b.Add(col, strs)
		}
	}
	return &Dataset{Name: name, tab: b.Done()}, nil
}

// parseNumeric converts strs to floats, using NaN for missing cells.
// It fails if any present cell is not a number or if every cell is
// missing.
func parseNumeric(strs []string, isMissing []bool) ([]float64, bool) {
	out := make([]float64, len(strs))
	present := 0
	for i, s := range strs {
		if isMissing[i] {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
		present++
	}
	return out, present > 0
}
