// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// DB reads Datasets from a SQL database. It's safe for concurrent use
// by multiple goroutines.
type DB struct {
	sql    *sql.DB // underlying database connection
	driver string
}

// OpenSQL opens a DB backed by a SQL database. The parameters are the
// same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other drivers receive ANSI identifier quoting.
//
// The driver must already be registered, typically by importing
// golang.org/x/groupstat/dataset/sqlite3 or
// golang.org/x/groupstat/dataset/mysql.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	return &DB{sql: db, driver: driverName}, nil
}

// NewDB wraps an already open database. driverName selects the SQL
// dialect.
func NewDB(db *sql.DB, driverName string) *DB {
	return &DB{sql: db, driver: driverName}
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a
// connection to driverName. It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// Close closes the database connections.
func (db *DB) Close() error {
	return db.sql.Close()
}

// quote quotes a table or column name for db's dialect.
func (db *DB) quote(ident string) string {
	if db.driver == "mysql" {
		return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Load reads columns cols of table into a Dataset. If cols is empty,
// Load reads every column. NULL values are missing values.
func (db *DB) Load(ctx context.Context, table string, cols ...string) (*Dataset, error) {
	sel := "*"
	if len(cols) > 0 {
		quoted := make([]string, len(cols))
		for i, c := range cols {
			quoted[i] = db.quote(c)
		}
		sel = strings.Join(quoted, ", ")
	}
	q := fmt.Sprintf("SELECT %s FROM %s", sel, db.quote(table))
	rows, err := db.sql.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var (
		cells [][]string
		nulls [][]bool
	)
	vals := make([]sql.NullString, len(names))
	ptrs := make([]interface{}, len(names))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("load %s: %w", table, err)
		}
		row := make([]string, len(names))
		null := make([]bool, len(names))
		for i, v := range vals {
			row[i], null[i] = v.String, !v.Valid
		}
		cells = append(cells, row)
		nulls = append(nulls, null)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	return build(table, names, cells, nulls)
}
