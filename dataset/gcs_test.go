// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "testing"

func TestParseGCS(t *testing.T) {
	for _, test := range []struct {
		url, bucket, object string
		ok                  bool
	}{
		{"gs://records/loans.csv", "records", "loans.csv", true},
		{"gs://records/2026/q1/loans.csv", "records", "2026/q1/loans.csv", true},
		{"gs://records", "", "", false},
		{"gs://records/", "", "", false},
		{"gs:///loans.csv", "", "", false},
		{"s3://records/loans.csv", "", "", false},
	} {
		bucket, object, err := parseGCS(test.url)
		if (err == nil) != test.ok {
			t.Errorf("parseGCS(%q) error = %v, want ok=%v", test.url, err, test.ok)
			continue
		}
		if bucket != test.bucket || object != test.object {
			t.Errorf("parseGCS(%q) = %q, %q; want %q, %q", test.url, bucket, object, test.bucket, test.object)
		}
	}
}
