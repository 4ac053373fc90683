// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mysql registers the MySQL driver for use with
// dataset.OpenSQL, including the Cloud SQL dialer, which accepts
// data source names of the form
//
//	user:password@cloudsql(project:region:instance)/database
package mysql

import (
	"database/sql"
	"time"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"
	_ "github.com/go-sql-driver/mysql"
	"golang.org/x/groupstat/dataset"
)

func init() {
	dataset.RegisterOpenHook("mysql", func(db *sql.DB) error {
		// MySQL servers close idle connections after wait_timeout.
		db.SetConnMaxLifetime(5 * time.Minute)
		return nil
	})
}
