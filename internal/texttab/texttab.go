// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table accumulates rows of cells and writes them with aligned
// columns.
//
// Row and Cell return the Table so callers can chain them to build up
// a row at once.
type Table struct {
	rows [][]cell
	ws   []int // widest cell in each column

	// Gutter separates adjacent columns. If empty, Format uses two
	// spaces.
	Gutter string
}

type cell struct {
	value string
	right bool
}

// A CellOption modifies a cell.
type CellOption func(c *cell)

// Right aligns a cell's value to the right edge of its column.
var Right CellOption = func(c *cell) { c.right = true }

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell appends a cell to the current row of t, starting a row if
// there is none yet.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	r := len(t.rows) - 1
	col := len(t.rows[r])
	t.rows[r] = append(t.rows[r], c)

	for len(t.ws) <= col {
		t.ws = append(t.ws, 0)
	}
	if n := utf8.RuneCountInString(value); n > t.ws[col] {
		t.ws[col] = n
	}
	return t
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return len(t.rows)
}

// Format lays out table t and writes it to w. Lines carry no trailing
// spaces.
func (t *Table) Format(w io.Writer) error {
	gutter := t.Gutter
	if gutter == "" {
		gutter = "  "
	}
	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for col, c := range row {
			if col > 0 {
				line.WriteString(gutter)
			}
			if c.right {
				fmt.Fprintf(&line, "%*s", t.ws[col], c.value)
			} else {
				fmt.Fprintf(&line, "%-*s", t.ws[col], c.value)
			}
		}
		if _, err := io.WriteString(w, strings.TrimRight(line.String(), " ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}
