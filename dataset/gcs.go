// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const gcsScheme = "gs://"

// parseGCS splits a gs://bucket/object URL.
func parseGCS(url string) (bucket, object string, err error) {
	rest := strings.TrimPrefix(url, gcsScheme)
	i := strings.IndexByte(rest, '/')
	if !strings.HasPrefix(url, gcsScheme) || i <= 0 || i == len(rest)-1 {
		return "", "", fmt.Errorf("malformed Cloud Storage URL %q, want gs://bucket/object", url)
	}
	return rest[:i], rest[i+1:], nil
}

// gcsReader closes the storage client along with the object reader.
type gcsReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *gcsReader) Close() error {
	err := r.Reader.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// openGCS opens a Cloud Storage object for reading. It uses
// application default credentials when they are available and
// otherwise falls back to anonymous access, which suffices for
// public buckets.
func openGCS(ctx context.Context, url string) (io.ReadCloser, error) {
	bucket, object, err := parseGCS(url)
	if err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if ts, err := google.DefaultTokenSource(ctx, storage.ScopeReadOnly); err == nil {
		opts = append(opts, option.WithTokenSource(ts))
	} else {
		opts = append(opts, option.WithoutAuthentication())
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return &gcsReader{r, client}, nil
}
