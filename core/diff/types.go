package diff

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies the category of a reported discrepancy.
type Kind string

const (
	// KindMissingInNew flags a key present in the old dataset but absent
	// from the new one.
	KindMissingInNew Kind = "missing-in-new"
	// KindExtraInNew flags a key present in the new dataset but absent
	// from the old one.
	KindExtraInNew Kind = "extra-in-new"
	// KindDuplicateKey flags a key value appearing more than once on one side.
	KindDuplicateKey Kind = "duplicate-key"
	// KindNullValue flags an empty cell.
	KindNullValue Kind = "null-value"
	// KindFormatError flags a value violating a semantic column format.
	KindFormatError Kind = "format-error"
	// KindValueMismatch flags a field whose value differs between sides.
	KindValueMismatch Kind = "value-mismatch"
	// KindSchemaMismatch flags header sequences that are not equal in order.
	KindSchemaMismatch Kind = "schema-mismatch"
	// KindRowCountMismatch flags differing total row counts.
	KindRowCountMismatch Kind = "row-count-mismatch"
)

// Kinds lists every issue kind in report order.
var Kinds = []Kind{
	KindRowCountMismatch,
	KindSchemaMismatch,
	KindMissingInNew,
	KindExtraInNew,
	KindDuplicateKey,
	KindNullValue,
	KindFormatError,
	KindValueMismatch,
}

// Side names the dataset an issue was observed on.
type Side string

const (
	SideOld Side = "old"
	SideNew Side = "new"
)

// Issue is one reported discrepancy. Issues are immutable once created; the
// engine only appends, never mutates, an issue after construction.
type Issue struct {
	// Kind is the discrepancy category.
	Kind Kind `json:"kind"`

	// Key is the primary-key value the issue pertains to.
	// Empty for whole-table issues such as schema or row count.
	Key string `json:"key,omitempty"`

	// Field is the column name involved, where applicable.
	Field string `json:"field,omitempty"`

	// Side names the dataset the issue was observed on, where applicable.
	Side Side `json:"side,omitempty"`

	// OldValue and NewValue carry the two compared values for
	// value-mismatch and format issues.
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`

	// Detail is a human-readable explanation.
	Detail string `json:"detail"`
}

// Summary provides aggregate statistics for one diff run, in the shape the
// migration validation summaries use.
type Summary struct {
	// NullKeysOld and NullKeysNew count rows whose key cell is empty.
	NullKeysOld int `json:"null_keys_old"`
	NullKeysNew int `json:"null_keys_new"`

	// DuplicateKeysOld and DuplicateKeysNew count distinct duplicated key
	// values per side.
	DuplicateKeysOld int `json:"duplicate_keys_old"`
	DuplicateKeysNew int `json:"duplicate_keys_new"`

	// OnlyInOld and OnlyInNew count keys present on exactly one side.
	OnlyInOld int `json:"only_in_old"`
	OnlyInNew int `json:"only_in_new"`

	// RowsCompared counts distinct keys present on both sides.
	RowsCompared int `json:"rows_compared"`

	// ChangedCells counts individual value mismatches.
	ChangedCells int `json:"changed_cells"`
}

// Report is the complete, read-only result of one diff run.
type Report struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`

	// GeneratedAt is the UTC time the report was produced.
	GeneratedAt time.Time `json:"generated_at"`

	// KeyColumn is the primary-key column the run joined on.
	KeyColumn string `json:"key_column"`

	// ColumnsCompared lists the columns the value-mismatch pass covered.
	ColumnsCompared []string `json:"columns_compared"`

	// RowCountOld and RowCountNew are the total row counts.
	RowCountOld int `json:"row_count_old"`
	RowCountNew int `json:"row_count_new"`

	// SchemaMatch is true iff the header sequences are equal element by
	// element in the same order.
	SchemaMatch bool `json:"schema_match"`

	// Issues holds every finding, grouped by pass in fixed order and
	// preserving within-pass encounter order.
	Issues []Issue `json:"issues"`

	// Counts aggregates the number of issues per kind.
	Counts map[Kind]int `json:"counts"`

	// Summary holds the aggregate statistics.
	Summary Summary `json:"summary"`
}

// ConfigError reports a run that could not start because the key column is
// absent from one side's headers. No key-based pass can proceed without it,
// so no Report is produced.
type ConfigError struct {
	// Column is the requested key column.
	Column string
	// Side names the table missing the column.
	Side Side
	// Headers holds the headers the table actually declares.
	Headers []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("key column %q not found in %s headers [%s]",
		e.Column, e.Side, strings.Join(e.Headers, ", "))
}
