package report

import (
	"html/template"
	"io"

	"migration-validator/core/diff"
)

// maxHTMLRows caps the mismatch table so a pathological diff cannot produce
// an unrenderable page.
const maxHTMLRows = 5000

var htmlTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Data Migration Validation Report</title>
<style>
body { font-family: system-ui, -apple-system, Segoe UI, Roboto, Arial, sans-serif; margin: 24px; }
code, pre { background: #f5f5f5; padding: 2px 4px; border-radius: 4px; }
table { border-collapse: collapse; width: 100%; margin-top: 16px; }
th, td { border: 1px solid #ddd; padding: 8px; font-size: 14px; }
th { background: #fafafa; text-align: left; }
.summary { margin-bottom: 16px; }
.badge { display: inline-block; background: #eef; padding: 2px 8px; border-radius: 12px; margin-right: 8px; }
.fail { background: #fee; }
</style>
</head>
<body>
<h1>Data Migration Validation Report</h1>
<div class="summary">
  <span class="badge">Run: <b>{{.Report.RunID}}</b></span>
  <span class="badge">Primary key: <b>{{.Report.KeyColumn}}</b></span>
  <span class="badge">OLD total: <b>{{.Report.RowCountOld}}</b></span>
  <span class="badge">NEW total: <b>{{.Report.RowCountNew}}</b></span>
  <span class="badge{{if not .Report.SchemaMatch}} fail{{end}}">Schema match: <b>{{.Report.SchemaMatch}}</b></span>
  <span class="badge">Only in OLD: <b>{{.Report.Summary.OnlyInOld}}</b></span>
  <span class="badge">Only in NEW: <b>{{.Report.Summary.OnlyInNew}}</b></span>
  <span class="badge">Mismatches: <b>{{.Report.Summary.ChangedCells}}</b></span>
</div>
<h2>Issues by Kind</h2>
<table>
  <thead><tr><th>Kind</th><th>Count</th></tr></thead>
  <tbody>
  {{range .Kinds}}<tr><td>{{.Kind}}</td><td>{{.Count}}</td></tr>
  {{end}}</tbody>
</table>
<h2>Mismatched Cells (first {{.Cap}})</h2>
<table>
  <thead><tr><th>{{.Report.KeyColumn}}</th><th>Column</th><th>Old Value</th><th>New Value</th></tr></thead>
  <tbody>
  {{range .Mismatches}}<tr><td>{{.Key}}</td><td>{{.Field}}</td><td>{{.OldValue}}</td><td>{{.NewValue}}</td></tr>
  {{end}}</tbody>
</table>
</body>
</html>`))

type kindCount struct {
	Kind  diff.Kind
	Count int
}

type htmlData struct {
	Report     *diff.Report
	Kinds      []kindCount
	Mismatches []diff.Issue
	Cap        int
}

// WriteHTML renders a self-contained HTML report page.
func WriteHTML(w io.Writer, r *diff.Report) error {
	data := htmlData{Report: r, Cap: maxHTMLRows}

	for _, kind := range diff.Kinds {
		if n := r.Counts[kind]; n > 0 {
			data.Kinds = append(data.Kinds, kindCount{Kind: kind, Count: n})
		}
	}

	for _, is := range r.Issues {
		if is.Kind != diff.KindValueMismatch {
			continue
		}
		data.Mismatches = append(data.Mismatches, is)
		if len(data.Mismatches) == maxHTMLRows {
			break
		}
	}

	return htmlTemplate.Execute(w, data)
}
