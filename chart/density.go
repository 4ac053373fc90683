// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// densitySamples is the number of points at which each density
// estimate is evaluated.
const densitySamples = 256

// cut is how many bandwidths the density domain extends past the
// data on each side.
const cut = 3

// A density is a kernel density estimate sampled on a grid.
type density struct {
	group  int // index into Chart.Groups
	xs, ys []float64
}

// densities estimates the density of every group that has at least
// two distinct finite values. All estimates share one domain so they
// can be overlaid. Groups that cannot be estimated are reported as
// warnings.
func densities(groups [2]Group) ([]density, []error) {
	var (
		warnings []error
		ids      []int
		xs       []float64
		lo, hi   = math.Inf(1), math.Inf(-1)
		bw       float64
	)
	for i, g := range groups {
		var vals []float64
		for _, x := range g.Values {
			if !math.IsNaN(x) && !math.IsInf(x, 0) {
				vals = append(vals, x)
			}
		}
		min, max := stats.Bounds(vals)
		if len(vals) < 2 || min == max {
			warnings = append(warnings, fmt.Errorf("%s: need two distinct values to estimate a density, have %d values", g.Name, len(vals)))
			continue
		}
		lo, hi = math.Min(lo, min), math.Max(hi, max)
		bw = math.Max(bw, stats.BandwidthScott(stats.Sample{Xs: vals}))
		for _, x := range vals {
			ids = append(ids, i)
			xs = append(xs, x)
		}
	}
	if len(xs) == 0 {
		return nil, warnings
	}

	var b table.Builder
	b.Add("group", ids).Add("x", xs)
	est := ggstat.Density{
		X:      "x",
		N:      densitySamples,
		Domain: ggstat.DomainFixed{Min: lo - cut*bw, Max: hi + cut*bw},
	}.F(table.GroupBy(b.Done(), "group"))

	var out []density
	for _, gid := range est.Tables() {
		t := est.Table(gid)
		d := density{group: gid.Label().(int)}
		d.xs = t.MustColumn("x").([]float64)
		d.ys = t.MustColumn("probability density").([]float64)
		out = append(out, d)
	}
	return out, warnings
}
