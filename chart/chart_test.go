// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/groupstat/twosample"
)

func span(lo, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(lo + i)
	}
	return xs
}

func testGroups(t *testing.T) [2]Group {
	g := [2]Group{
		{Name: "compliant", Values: span(0, 40)},
		{Name: "non-compliant", Values: append(span(60, 30), math.NaN())},
	}
	for i := range g {
		fit, err := twosample.Normality(g[i].Values, twosample.DefaultAlpha)
		if err != nil {
			t.Fatal(err)
		}
		g[i].Fit = fit
	}
	return g
}

// at returns the sampled density nearest x.
func (d density) at(x float64) float64 {
	best := 0
	for i := range d.xs {
		if math.Abs(d.xs[i]-x) < math.Abs(d.xs[best]-x) {
			best = i
		}
	}
	return d.ys[best]
}

func TestDensities(t *testing.T) {
	dens, warnings := densities(testGroups(t))
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings %v", warnings)
	}
	if len(dens) != 2 || dens[0].group != 0 || dens[1].group != 1 {
		t.Fatalf("got %d densities, want groups 0 and 1", len(dens))
	}
	for _, d := range dens {
		if len(d.xs) != densitySamples || len(d.ys) != densitySamples {
			t.Errorf("group %d: %d points, want %d", d.group, len(d.xs), densitySamples)
		}
		// Trapezoidal integral over the domain.
		area := 0.0
		for i := 1; i < len(d.xs); i++ {
			area += (d.xs[i] - d.xs[i-1]) * (d.ys[i] + d.ys[i-1]) / 2
		}
		if math.Abs(area-1) > 0.01 {
			t.Errorf("group %d: density integrates to %v, want 1", d.group, area)
		}
	}
	if dens[0].xs[0] != dens[1].xs[0] || dens[0].xs[densitySamples-1] != dens[1].xs[densitySamples-1] {
		t.Errorf("densities do not share a domain")
	}
	if !(dens[0].at(20) > dens[1].at(20) && dens[1].at(75) > dens[0].at(75)) {
		t.Errorf("densities are not centered on their groups")
	}
}

func TestDensitiesDegenerate(t *testing.T) {
	groups := [2]Group{
		{Name: "compliant", Values: []float64{4, 4, 4}},
		{Name: "non-compliant", Values: span(0, 10)},
	}
	dens, warnings := densities(groups)
	if len(dens) != 1 || dens[0].group != 1 {
		t.Errorf("got %d densities, want only group 1", len(dens))
	}
	if len(warnings) != 1 || !strings.HasPrefix(warnings[0].Error(), "compliant:") {
		t.Errorf("warnings = %v, want one for compliant", warnings)
	}

	groups[1].Values = nil
	if _, err := New("income", "compliance", groups, Single); err == nil {
		t.Errorf("New with no plottable group succeeded")
	}
}

func TestParseLayout(t *testing.T) {
	for _, l := range []Layout{Single, SideBySide, Combined} {
		got, err := ParseLayout(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLayout(%q) = %v, %v", l, got, err)
		}
	}
	if _, err := ParseLayout("grid"); err == nil {
		t.Errorf("ParseLayout(grid) succeeded")
	}
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]string{
		"out.png":      "png",
		"dir/KDE.SVG":  "svg",
		"a.b/plot.pdf": "pdf",
		"plot.jpeg":    "",
		"plot":         "",
	} {
		got, err := FormatOf(path)
		if got != want || (err == nil) != (want != "") {
			t.Errorf("FormatOf(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
}

func TestRender(t *testing.T) {
	groups := testGroups(t)
	for _, layout := range []Layout{Single, SideBySide, Combined} {
		c, err := New("income", "compliance", groups, layout)
		if err != nil {
			t.Fatal(err)
		}
		if ps, err := c.panels(); err != nil {
			t.Fatal(err)
		} else if want := map[Layout]int{Single: 1, SideBySide: 2, Combined: 3}[layout]; len(ps) != want {
			t.Errorf("%s: %d panels, want %d", layout, len(ps), want)
		}

		for format, magic := range map[string]string{
			"png": "\x89PNG\r\n\x1a\n",
			"svg": "<svg",
			"pdf": "%PDF",
		} {
			var buf bytes.Buffer
			if err := c.Render(&buf, format); err != nil {
				t.Errorf("%s %s: %v", layout, format, err)
				continue
			}
			if !bytes.Contains(buf.Bytes()[:min(buf.Len(), 256)], []byte(magic)) {
				t.Errorf("%s %s: output does not start with %q", layout, format, magic)
			}
		}
	}

	c, err := New("income", "compliance", groups, Single)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Render(new(bytes.Buffer), "gif"); err == nil {
		t.Errorf("rendering gif succeeded")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func TestSave(t *testing.T) {
	c, err := New("income", "compliance", testGroups(t), Combined)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "income.png")
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("saved file is not a PNG")
	}
	if err := c.Save(filepath.Join(t.TempDir(), "income.txt")); err == nil {
		t.Errorf("saving to .txt succeeded")
	}
}

func TestTitle(t *testing.T) {
	for label, want := range map[string]string{
		"compliance": "KDE Plot for income by Compliance",
		"region":     "KDE Plot for income by Region",
		"état":       "KDE Plot for income by État",
		"":           "KDE Plot for income by ",
	} {
		c, err := New("income", label, testGroups(t), Single)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Title(); got != want {
			t.Errorf("label %q: title %q, want %q", label, got, want)
		}
	}
}
