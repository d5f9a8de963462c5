package report

import (
	"encoding/csv"
	"io"

	"migration-validator/core/diff"
)

// WriteIssuesCSV renders the full issue list as CSV, one row per issue.
func WriteIssuesCSV(w io.Writer, r *diff.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"kind", "key", "field", "side", "old_value", "new_value", "detail"}); err != nil {
		return err
	}
	for _, is := range r.Issues {
		rec := []string{string(is.Kind), is.Key, is.Field, string(is.Side), is.OldValue, is.NewValue, is.Detail}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMismatchCSV renders value mismatches only, in the legacy
// key,column,old_value,new_value shape the downstream tooling consumes.
func WriteMismatchCSV(w io.Writer, r *diff.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"key", "column", "old_value", "new_value"}); err != nil {
		return err
	}
	for _, is := range r.Issues {
		if is.Kind != diff.KindValueMismatch {
			continue
		}
		if err := cw.Write([]string{is.Key, is.Field, is.OldValue, is.NewValue}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
