// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 registers the SQLite driver for use with
// dataset.OpenSQL.
package sqlite3

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/groupstat/dataset"
)

func init() {
	dataset.RegisterOpenHook("sqlite3", func(db *sql.DB) error {
		// Each connection to ":memory:" is a separate database,
		// so pin the pool to a single connection.
		db.SetMaxOpenConns(1)
		return db.Ping()
	})
}
