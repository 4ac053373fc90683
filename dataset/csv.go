// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCSV reads a Dataset from CSV data. The first record names the
// columns.
func ReadCSV(name string, r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: no header record", name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}
	// Strip a UTF-8 byte order mark, which spreadsheet exports
	// often leave on the first column name.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return build(name, header, rows, nil)
}

// Open reads a CSV Dataset from src, which is either a local file
// path or a Cloud Storage URL of the form gs://bucket/object.
func Open(ctx context.Context, src string) (*Dataset, error) {
	if strings.HasPrefix(src, gcsScheme) {
		r, err := openGCS(ctx, src)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return ReadCSV(src, r)
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(src, f)
}
