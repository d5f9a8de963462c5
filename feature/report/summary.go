package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"migration-validator/core/diff"
)

// WriteSummary renders the plain-text summary of a diff run.
func WriteSummary(w io.Writer, r *diff.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Data Migration Validation Summary (%s)\n", r.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Run ID: %s\n", r.RunID)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Primary key: %s\n", r.KeyColumn)
	fmt.Fprintf(&b, "Columns compared: %s\n", strings.Join(r.ColumnsCompared, ","))
	b.WriteString("\n")
	b.WriteString("[OLD]\n")
	fmt.Fprintf(&b, "  Total rows: %d\n", r.RowCountOld)
	fmt.Fprintf(&b, "  Null keys: %d\n", r.Summary.NullKeysOld)
	fmt.Fprintf(&b, "  Duplicate keys: %d\n", r.Summary.DuplicateKeysOld)
	b.WriteString("[NEW]\n")
	fmt.Fprintf(&b, "  Total rows: %d\n", r.RowCountNew)
	fmt.Fprintf(&b, "  Null keys: %d\n", r.Summary.NullKeysNew)
	fmt.Fprintf(&b, "  Duplicate keys: %d\n", r.Summary.DuplicateKeysNew)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Schema match: %t\n", r.SchemaMatch)
	fmt.Fprintf(&b, "Rows only in OLD: %d\n", r.Summary.OnlyInOld)
	fmt.Fprintf(&b, "Rows only in NEW: %d\n", r.Summary.OnlyInNew)
	fmt.Fprintf(&b, "Rows compared: %d\n", r.Summary.RowsCompared)
	fmt.Fprintf(&b, "Changed cells (value-level): %d\n", r.Summary.ChangedCells)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Issues: %d\n", len(r.Issues))
	for _, kind := range diff.Kinds {
		if n := r.Counts[kind]; n > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", kind, n)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
