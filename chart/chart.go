// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws kernel density plots comparing the distribution
// of a feature across two groups.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"golang.org/x/groupstat/twosample"
)

// A Layout arranges the density curves of a Chart.
type Layout int

const (
	// Single overlays both groups in one panel.
	Single Layout = iota
	// SideBySide draws one panel per group, each with the fitted
	// normal density.
	SideBySide
	// Combined draws the SideBySide panels followed by the Single
	// overlay.
	Combined
)

var layoutNames = map[Layout]string{
	Single:     "single",
	SideBySide: "side-by-side",
	Combined:   "combined",
}

func (l Layout) String() string {
	if s, ok := layoutNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout parses the text form of a Layout.
func ParseLayout(s string) (Layout, error) {
	for l, name := range layoutNames {
		if s == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown layout %q (want single, side-by-side, or combined)", s)
}

// A Group is one sample to plot.
type Group struct {
	Name   string
	Values []float64

	// Fit, if non-nil, supplies the normal distribution drawn over
	// this group's density in per-group panels.
	Fit *twosample.NormalityResult
}

// A Chart is a density plot of one feature across two groups.
type Chart struct {
	Feature string

	// Label names the column that split the records into groups.
	Label string

	Groups [2]Group
	Layout  Layout

	// Warnings lists groups that were left out of the chart.
	Warnings []error

	dens []density
}

// New estimates the densities of groups, which were split by the
// label column, and returns a Chart of them. It fails only if no
// group can be plotted.
func New(feature, label string, groups [2]Group, layout Layout) (*Chart, error) {
	c := &Chart{Feature: feature, Label: label, Groups: groups, Layout: layout}
	c.dens, c.Warnings = densities(groups)
	if len(c.dens) == 0 {
		return nil, fmt.Errorf("%s: no group can be plotted", feature)
	}
	return c, nil
}

// Group colors. Curves are filled at 60% opacity.
var (
	strokes = [2]color.Color{
		color.NRGBA{0x1f, 0x77, 0xb4, 0xff}, // blue
		color.NRGBA{0xff, 0x7f, 0x0e, 0xff}, // orange
	}
	fills = [2]color.Color{
		color.NRGBA{0x1f, 0x77, 0xb4, 0x99},
		color.NRGBA{0xff, 0x7f, 0x0e, 0x99},
	}
)

// overlay returns the panel with every group's density.
func (c *Chart) overlay() (*plot.Plot, error) {
	p := newPanel(c.Title(), c.Feature)
	for _, d := range c.dens {
		l, err := curve(d)
		if err != nil {
			return nil, err
		}
		p.Add(l)
		p.Legend.Add(c.Groups[d.group].Name, l)
	}
	return p, nil
}

// Title returns the title of the overlay panel, such as
// "KDE Plot for income by Compliance" for label "compliance".
func (c *Chart) Title() string {
	label := c.Label
	if r, n := utf8.DecodeRuneInString(label); n > 0 {
		label = string(unicode.ToUpper(r)) + label[n:]
	}
	return fmt.Sprintf("KDE Plot for %s by %s", c.Feature, label)
}

// panel returns the panel for a single group's density and its
// fitted normal.
func (c *Chart) panel(d density) (*plot.Plot, error) {
	g := c.Groups[d.group]
	p := newPanel(g.Name, c.Feature)
	l, err := curve(d)
	if err != nil {
		return nil, err
	}
	p.Add(l)
	p.Legend.Add("KDE", l)
	if g.Fit != nil && g.Fit.StdDev > 0 {
		f := plotter.NewFunction(stats.NormalDist{Mu: g.Fit.Mean, Sigma: g.Fit.StdDev}.PDF)
		f.XMin, f.XMax = d.xs[0], d.xs[len(d.xs)-1]
		f.Samples = densitySamples
		f.LineStyle.Color = color.Black
		f.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(f)
		p.Legend.Add("fitted normal", f)
	}
	return p, nil
}

func newPanel(title, xLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Density"
	p.Y.Min = 0
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func curve(d density) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(d.xs))
	for i := range d.xs {
		xys[i].X, xys[i].Y = d.xs[i], d.ys[i]
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.FillColor = fills[d.group]
	l.LineStyle.Color = strokes[d.group]
	return l, nil
}

// panels returns the panels of c in left-to-right order.
func (c *Chart) panels() ([]*plot.Plot, error) {
	var ps []*plot.Plot
	if c.Layout == SideBySide || c.Layout == Combined {
		for _, d := range c.dens {
			p, err := c.panel(d)
			if err != nil {
				return nil, err
			}
			ps = append(ps, p)
		}
	}
	if c.Layout == Single || c.Layout == Combined {
		p, err := c.overlay()
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

const (
	panelWidth  = 6 * vg.Inch
	panelHeight = 4 * vg.Inch
	dpi         = 96
)

// Render draws c to w in the named format: "png", "svg", or "pdf".
func (c *Chart) Render(w io.Writer, format string) error {
	ps, err := c.panels()
	if err != nil {
		return err
	}
	width, height := vg.Length(len(ps))*panelWidth, panelHeight

	var can vg.CanvasWriterTo
	switch format {
	case "png":
		can = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height),
			vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))}
	case "svg":
		can = vgsvg.New(width, height)
	case "pdf":
		can = vgpdf.New(width, height)
	default:
		return fmt.Errorf("unknown chart format %q (want png, svg, or pdf)", format)
	}

	dc := draw.New(can)
	tiles := draw.Tiles{Rows: 1, Cols: len(ps), PadX: vg.Millimeter * 4}
	canvases := plot.Align([][]*plot.Plot{ps}, tiles, dc)
	for i, p := range ps {
		p.Draw(canvases[0][i])
	}
	_, err = can.WriteTo(w)
	return err
}

// FormatOf returns the chart format implied by path's extension.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "svg", "pdf":
		return ext, nil
	}
	return "", fmt.Errorf("%s: cannot infer chart format from extension (want .png, .svg, or .pdf)", path)
}

// Save writes c to the file path in the format implied by its
// extension.
func (c *Chart) Save(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Render(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
