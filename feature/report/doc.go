// Package report renders diff reports for human and machine consumption, and
// optionally publishes the rendered artifacts to object storage.
//
// # Renderers
//
//   - WriteSummary: plain-text console summary of one run.
//   - WriteIssuesCSV: the full issue list as CSV.
//   - WriteMismatchCSV: value mismatches only, in the legacy
//     key,column,old_value,new_value shape.
//   - WriteHTML: a self-contained HTML page with summary badges and the
//     mismatch table (capped for safety).
//
// Renderers only read the Report; they never recompute findings.
//
// # Publishing
//
// Publisher uploads every artifact of a run under reports/<run-id>/ in the
// configured bucket, and supports listing, fetching and removing published
// runs.
package report
