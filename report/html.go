// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Group Comparison</title>
<style>
.groupstat { border-collapse: collapse; margin-bottom: 1em; }
.groupstat th:nth-child(1) { text-align: left; }
.groupstat td:nth-child(1n+2) { text-align: right; padding: 0em 1em; }
.groupstat th { border-bottom: 1px solid #ccc; }
.groupstat .significant td { font-weight: bold; }
.groupstat .note td { color: #c00; text-align: left; }
</style>
</head>
<body>
{{- range .}}
<table class="groupstat">
<tbody>
<tr><th>{{.Feature}}<th>{{index .Names 0}}<th>{{index .Names 1}}
{{range .Rows -}}
<tr><td>{{.Name}}<td>{{index .Cells 0}}<td>{{index .Cells 1}}
{{end -}}
{{if .Significant}}<tr class="significant">{{else}}<tr>{{end}}<td colspan="3">{{.Shift}}
{{range .Notes -}}
<tr class="note"><td colspan="3">{{.}}
{{end -}}
</tbody>
</table>
{{- end}}
</body>
</html>
`))

type htmlReport struct {
	Feature     string
	Names       [2]string
	Rows        []statRow
	Shift       string
	Significant bool
	Notes       []string
}

// FormatHTML writes an HTML document presenting reports to w.
func FormatHTML(w io.Writer, reports []*Report) error {
	data := make([]*htmlReport, len(reports))
	for i, r := range reports {
		data[i] = &htmlReport{
			Feature:     r.Feature,
			Names:       r.Names,
			Rows:        r.rows(),
			Shift:       r.shiftLine(),
			Significant: r.Eval.Shift != nil && r.Eval.Shift.Significant,
			Notes:       r.errs(),
		}
	}
	return htmlTemplate.Execute(w, data)
}
