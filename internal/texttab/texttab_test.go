// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		if got := gotBuf.String(); want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		tab = Table{}
	}

	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a  b  c\nd  e  f\n")

	// Padding, without trailing spaces.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("long").Cell("e").Cell("long")
	check("a     b  c\nlong  e  long\n")

	// Right alignment.
	tab.Row().Cell("n").Cell("p", Right)
	tab.Row().Cell("100").Cell("0.0500", Right)
	check("n         p\n100  0.0500\n")

	// Empty cells and short rows.
	tab.Row().Cell("a").Cell("").Cell("c")
	tab.Row().Cell("d").Cell("eee")
	tab.Row()
	tab.Row().Cell("f")
	check("a       c\nd  eee\n\nf\n")

	// Unicode widths and a custom gutter.
	tab.Gutter = " | "
	tab.Row().Cell("α").Cell("x")
	tab.Row().Cell("βγ").Cell("y")
	check("α  | x\nβγ | y\n")

	// Cell without Row.
	tab.Cell("x")
	check("x\n")
}
