package diff

import (
	"fmt"
	"strings"
	"time"

	"migration-validator/core/table"

	"github.com/google/uuid"
)

// Options tunes a diff run. The zero value compares every column in the old
// table's schema and applies DefaultRules.
type Options struct {
	// Columns restricts the value-mismatch pass to the named columns.
	// Nil or empty means every column in the old table's schema.
	Columns []string

	// Rules maps column names to format checks for the format pass.
	// Nil means DefaultRules.
	Rules FormatRules
}

// Diff runs every comparison pass over the two tables and accumulates the
// findings into one Report. It never fails on data; malformed cells surface
// as issues. It fails only with a ConfigError when the key column is absent
// from a side's headers.
func Diff(oldTable, newTable *table.Table, keyColumn string, opts Options) (*Report, error) {
	if !oldTable.HasHeader(keyColumn) {
		return nil, &ConfigError{Column: keyColumn, Side: SideOld, Headers: oldTable.Headers}
	}
	if !newTable.HasHeader(keyColumn) {
		return nil, &ConfigError{Column: keyColumn, Side: SideNew, Headers: newTable.Headers}
	}

	oldIdx := table.BuildIndex(oldTable, keyColumn)
	newIdx := table.BuildIndex(newTable, keyColumn)

	cols := opts.Columns
	if len(cols) == 0 {
		cols = append([]string(nil), oldTable.Headers...)
	}
	rules := opts.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	r := &Report{
		RunID:           uuid.NewString(),
		GeneratedAt:     time.Now().UTC(),
		KeyColumn:       keyColumn,
		ColumnsCompared: cols,
		RowCountOld:     len(oldTable.Rows),
		RowCountNew:     len(newTable.Rows),
	}
	r.SchemaMatch = headersEqual(oldTable.Headers, newTable.Headers)
	r.Summary.DuplicateKeysOld = len(oldIdx.DuplicateKeys)
	r.Summary.DuplicateKeysNew = len(newIdx.DuplicateKeys)

	// Each pass returns its findings by value; the merge below is the only
	// place issues accumulate, in the fixed pass order.
	var issues []Issue
	issues = append(issues, rowCountPass(r)...)
	issues = append(issues, schemaPass(r, oldTable, newTable)...)
	issues = append(issues, coveragePass(r, oldIdx, newIdx)...)
	issues = append(issues, duplicatePass(oldIdx, newIdx)...)
	issues = append(issues, nullPass(r, oldTable, newTable, keyColumn)...)
	issues = append(issues, formatPass(newTable, keyColumn, rules)...)
	issues = append(issues, mismatchPass(r, oldIdx, newIdx, cols)...)

	r.Issues = issues
	r.Counts = make(map[Kind]int, len(Kinds))
	for _, is := range issues {
		r.Counts[is.Kind]++
	}

	return r, nil
}

// rowCountPass records both row counts and flags a difference.
func rowCountPass(r *Report) []Issue {
	if r.RowCountOld == r.RowCountNew {
		return nil
	}
	return []Issue{{
		Kind:   KindRowCountMismatch,
		Detail: fmt.Sprintf("row count changed from %d to %d", r.RowCountOld, r.RowCountNew),
	}}
}

// schemaPass flags header sequences that are not equal element by element.
// A column present on both sides but in a different position is a mismatch.
func schemaPass(r *Report, oldTable, newTable *table.Table) []Issue {
	if r.SchemaMatch {
		return nil
	}
	return []Issue{{
		Kind: KindSchemaMismatch,
		Detail: fmt.Sprintf("headers differ: old=[%s] new=[%s]",
			strings.Join(oldTable.Headers, ", "), strings.Join(newTable.Headers, ", ")),
	}}
}

// coveragePass reports keys present on exactly one side, in row order.
// Each such key is reported once even when duplicated.
func coveragePass(r *Report, oldIdx, newIdx *table.KeyIndex) []Issue {
	var issues []Issue

	seen := make(map[string]struct{}, len(oldIdx.Keys))
	for _, key := range oldIdx.Keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if !newIdx.Has(key) {
			r.Summary.OnlyInOld++
			issues = append(issues, Issue{
				Kind:   KindMissingInNew,
				Key:    key,
				Detail: fmt.Sprintf("key %q is present in the old dataset but missing from the new one", key),
			})
		}
	}

	seen = make(map[string]struct{}, len(newIdx.Keys))
	for _, key := range newIdx.Keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if !oldIdx.Has(key) {
			r.Summary.OnlyInNew++
			issues = append(issues, Issue{
				Kind:   KindExtraInNew,
				Key:    key,
				Detail: fmt.Sprintf("key %q is present in the new dataset but missing from the old one", key),
			})
		}
	}

	return issues
}

// duplicatePass reports each duplicated key once per side.
func duplicatePass(oldIdx, newIdx *table.KeyIndex) []Issue {
	var issues []Issue
	for _, key := range oldIdx.DuplicateKeys {
		issues = append(issues, Issue{
			Kind:   KindDuplicateKey,
			Key:    key,
			Side:   SideOld,
			Detail: fmt.Sprintf("key %q appears more than once in the old dataset", key),
		})
	}
	for _, key := range newIdx.DuplicateKeys {
		issues = append(issues, Issue{
			Kind:   KindDuplicateKey,
			Key:    key,
			Side:   SideNew,
			Detail: fmt.Sprintf("key %q appears more than once in the new dataset", key),
		})
	}
	return issues
}

// nullPass reports every empty cell on both sides, including empty key
// cells, in row order.
func nullPass(r *Report, oldTable, newTable *table.Table, keyColumn string) []Issue {
	var issues []Issue
	issues = append(issues, nullPassSide(oldTable, keyColumn, SideOld, &r.Summary.NullKeysOld)...)
	issues = append(issues, nullPassSide(newTable, keyColumn, SideNew, &r.Summary.NullKeysNew)...)
	return issues
}

func nullPassSide(t *table.Table, keyColumn string, side Side, nullKeys *int) []Issue {
	var issues []Issue
	for _, row := range t.Rows {
		key := row[keyColumn]
		if key == "" {
			*nullKeys++
		}
		for _, h := range t.Headers {
			if row[h] != "" {
				continue
			}
			issues = append(issues, Issue{
				Kind:   KindNullValue,
				Key:    key,
				Field:  h,
				Side:   side,
				Detail: fmt.Sprintf("empty value in column %q", h),
			})
		}
	}
	return issues
}

// formatPass validates semantic column formats on the new dataset only, and
// only for rule columns present in its schema. Empty values are exempt.
func formatPass(newTable *table.Table, keyColumn string, rules FormatRules) []Issue {
	var issues []Issue
	for _, h := range newTable.Headers {
		check, ok := rules[h]
		if !ok {
			continue
		}
		for _, row := range newTable.Rows {
			v := row[h]
			if v == "" || check.Valid(v) {
				continue
			}
			issues = append(issues, Issue{
				Kind:     KindFormatError,
				Key:      row[keyColumn],
				Field:    h,
				Side:     SideNew,
				NewValue: v,
				Detail:   check.describe(),
			})
		}
	}
	return issues
}

// mismatchPass compares cell values for every key present on both sides,
// in old-side row order, across the compared columns. Keys absent from one
// side are skipped; the coverage pass owns those. Comparison is exact string
// equality with no normalization.
func mismatchPass(r *Report, oldIdx, newIdx *table.KeyIndex, cols []string) []Issue {
	var issues []Issue
	seen := make(map[string]struct{}, len(oldIdx.Keys))
	for _, key := range oldIdx.Keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		newRow, ok := newIdx.ByKey[key]
		if !ok {
			continue
		}
		oldRow := oldIdx.ByKey[key]
		r.Summary.RowsCompared++

		for _, c := range cols {
			ov, nv := oldRow[c], newRow[c]
			if ov == nv {
				continue
			}
			r.Summary.ChangedCells++
			issues = append(issues, Issue{
				Kind:     KindValueMismatch,
				Key:      key,
				Field:    c,
				OldValue: ov,
				NewValue: nv,
				Detail:   fmt.Sprintf("value of %q changed from %q to %q", c, ov, nv),
			})
		}
	}
	return issues
}

func headersEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
