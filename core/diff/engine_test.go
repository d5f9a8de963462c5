package diff

import (
	"testing"

	"migration-validator/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *table.Table {
	t.Helper()
	tbl, err := table.Parse(raw)
	require.NoError(t, err)
	return tbl
}

func issuesOf(r *Report, kind Kind) []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Kind == kind {
			out = append(out, is)
		}
	}
	return out
}

func TestDiff_SelfDiffIsClean(t *testing.T) {
	tbl := mustParse(t, "id,name,email\nC1,Alice,a@x.com\nC2,Bob,b@x.com")

	r, err := Diff(tbl, tbl, "id", Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, r.RowCountOld)
	assert.Equal(t, 2, r.RowCountNew)
	assert.True(t, r.SchemaMatch)
	for _, kind := range []Kind{KindMissingInNew, KindExtraInNew, KindValueMismatch, KindSchemaMismatch, KindRowCountMismatch} {
		assert.Empty(t, issuesOf(r, kind), "self-diff must not report %s", kind)
	}
}

func TestDiff_SelfDiffKeepsIntrinsicFindings(t *testing.T) {
	// Nulls and duplicates intrinsic to the table still show up on both sides.
	tbl := mustParse(t, "id,name\nC1,\nC1,Bob")

	r, err := Diff(tbl, tbl, "id", Options{})
	require.NoError(t, err)

	assert.Len(t, issuesOf(r, KindDuplicateKey), 2) // once per side
	assert.Len(t, issuesOf(r, KindNullValue), 2)
	assert.Empty(t, issuesOf(r, KindMissingInNew))
}

func TestDiff_KeyColumnMissing(t *testing.T) {
	oldT := mustParse(t, "id,name\nC1,Alice")
	newT := mustParse(t, "ident,name\nC1,Alice")

	t.Run("Missing In New", func(t *testing.T) {
		_, err := Diff(oldT, newT, "id", Options{})
		require.Error(t, err)

		var cerr *ConfigError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, SideNew, cerr.Side)
		assert.Equal(t, "id", cerr.Column)
		assert.Contains(t, cerr.Error(), `key column "id" not found`)
	})

	t.Run("Missing In Old", func(t *testing.T) {
		_, err := Diff(newT, oldT, "id", Options{})
		var cerr *ConfigError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, SideOld, cerr.Side)
	})
}

func TestDiff_RowCountPass(t *testing.T) {
	oldT := mustParse(t, "id\nC1\nC2")
	newT := mustParse(t, "id\nC1")

	r, err := Diff(oldT, newT, "id", Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, r.RowCountOld)
	assert.Equal(t, 1, r.RowCountNew)
	issues := issuesOf(r, KindRowCountMismatch)
	require.Len(t, issues, 1)
	assert.Equal(t, "row count changed from 2 to 1", issues[0].Detail)
}

func TestDiff_SchemaPass(t *testing.T) {
	t.Run("Reordered Columns Mismatch", func(t *testing.T) {
		oldT := mustParse(t, "id,name\nC1,Alice")
		newT := mustParse(t, "name,id\nAlice,C1")

		r, err := Diff(oldT, newT, "id", Options{})
		require.NoError(t, err)

		assert.False(t, r.SchemaMatch)
		issues := issuesOf(r, KindSchemaMismatch)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].Detail, "old=[id, name]")
		assert.Contains(t, issues[0].Detail, "new=[name, id]")
	})

	t.Run("Extra Column Mismatch", func(t *testing.T) {
		oldT := mustParse(t, "id\nC1")
		newT := mustParse(t, "id,name\nC1,Alice")

		r, err := Diff(oldT, newT, "id", Options{})
		require.NoError(t, err)
		assert.False(t, r.SchemaMatch)
	})
}

func TestDiff_KeyCoveragePass(t *testing.T) {
	oldT := mustParse(t, "id,name\nC1,a\nC2,b\nC3,c")
	newT := mustParse(t, "id,name\nC2,b\nC4,d")

	r, err := Diff(oldT, newT, "id", Options{})
	require.NoError(t, err)

	missing := issuesOf(r, KindMissingInNew)
	require.Len(t, missing, 2)
	assert.Equal(t, "C1", missing[0].Key)
	assert.Equal(t, "C3", missing[1].Key)

	extra := issuesOf(r, KindExtraInNew)
	require.Len(t, extra, 1)
	assert.Equal(t, "C4", extra[0].Key)

	assert.Equal(t, 2, r.Summary.OnlyInOld)
	assert.Equal(t, 1, r.Summary.OnlyInNew)
	assert.Equal(t, 1, r.Summary.RowsCompared)
}

func TestDiff_DuplicatePass(t *testing.T) {
	// C9 occurs three times in OLD: still exactly one duplicate issue, and
	// no coverage issues because the key exists on both sides.
	oldT := mustParse(t, "id,name\nC9,a\nC9,b\nC9,c")
	newT := mustParse(t, "id,name\nC9,c")

	r, err := Diff(oldT, newT, "id", Options{})
	require.NoError(t, err)

	dups := issuesOf(r, KindDuplicateKey)
	require.Len(t, dups, 1)
	assert.Equal(t, "C9", dups[0].Key)
	assert.Equal(t, SideOld, dups[0].Side)

	assert.Empty(t, issuesOf(r, KindMissingInNew))
	assert.Empty(t, issuesOf(r, KindExtraInNew))
	assert.Equal(t, 1, r.Summary.DuplicateKeysOld)
	assert.Equal(t, 0, r.Summary.DuplicateKeysNew)
}

func TestDiff_LastSeenRowWinsForComparison(t *testing.T) {
	oldT := mustParse(t, "id,name\nC9,first\nC9,last")
	newT := mustParse(t, "id,name\nC9,last")

	r, err := Diff(oldT, newT, "id", Options{})
	require.NoError(t, err)

	// The index resolves C9 to the last-seen old row, which matches.
	assert.Empty(t, issuesOf(r, KindValueMismatch))
}

func TestDiff_NullPass(t *testing.T) {
	oldT := mustParse(t, "id,name\nC1,\n,x")
	newT := mustParse(t, "id,name\nC1,Alice\n,x")

	r, err := Diff(oldT, newT, "id", Options{})
	require.NoError(t, err)

	nulls := issuesOf(r, KindNullValue)
	require.Len(t, nulls, 3)

	// Old side first, row order, including the empty key cell itself.
	assert.Equal(t, Issue{Kind: KindNullValue, Key: "C1", Field: "name", Side: SideOld, Detail: `empty value in column "name"`}, nulls[0])
	assert.Equal(t, "id", nulls[1].Field)
	assert.Equal(t, "", nulls[1].Key)
	assert.Equal(t, SideNew, nulls[2].Side)

	assert.Equal(t, 1, r.Summary.NullKeysOld)
	assert.Equal(t, 1, r.Summary.NullKeysNew)
}

func TestDiff_FormatPass(t *testing.T) {
	oldT := mustParse(t, "id,email,dob,balance\nC1,bad,bad,bad")
	newT := mustParse(t, "id,email,dob,balance\n" +
		"C1,user@site.com,2024-02-29,12.5\n" +
		"C2,user@site,99-01-01,12abc\n" +
		"C3,,,")

	r, err := Diff(oldT, newT, "id", Options{})
	require.NoError(t, err)

	issues := issuesOf(r, KindFormatError)
	require.Len(t, issues, 3)

	byField := map[string]Issue{}
	for _, is := range issues {
		assert.Equal(t, "C2", is.Key)
		assert.Equal(t, SideNew, is.Side)
		byField[is.Field] = is
	}
	assert.Equal(t, "invalid email", byField["email"].Detail)
	assert.Equal(t, "user@site", byField["email"].NewValue)
	assert.Contains(t, byField["dob"].Detail, "YYYY-MM-DD")
	assert.Equal(t, "value is not numeric", byField["balance"].Detail)

	// Old-side violations are never checked; C3's empty cells are exempt.
}

func TestDiff_FormatPassSkipsAbsentColumns(t *testing.T) {
	oldT := mustParse(t, "id,name\nC1,a")
	newT := mustParse(t, "id,name\nC1,a")

	r, err := Diff(oldT, newT, "id", Options{})
	require.NoError(t, err)
	assert.Empty(t, issuesOf(r, KindFormatError))
}

func TestDiff_ValueMismatchPass(t *testing.T) {
	t.Run("Single Changed Field", func(t *testing.T) {
		oldT := mustParse(t, "id,name,email\nC1,A,a@x.com")
		newT := mustParse(t, "id,name,email\nC1,A2,a@x.com")

		r, err := Diff(oldT, newT, "id", Options{})
		require.NoError(t, err)

		assert.Equal(t, 1, r.RowCountOld)
		assert.Equal(t, 1, r.RowCountNew)
		assert.True(t, r.SchemaMatch)

		mismatches := issuesOf(r, KindValueMismatch)
		require.Len(t, mismatches, 1)
		assert.Equal(t, "C1", mismatches[0].Key)
		assert.Equal(t, "name", mismatches[0].Field)
		assert.Equal(t, "A", mismatches[0].OldValue)
		assert.Equal(t, "A2", mismatches[0].NewValue)

		// No other findings at all in this scenario.
		assert.Len(t, r.Issues, 1)
		assert.Equal(t, 1, r.Summary.ChangedCells)
	})

	t.Run("Whitespace And Case Sensitive", func(t *testing.T) {
		oldT := mustParse(t, "id,name\nC1,alice")
		newT := mustParse(t, "id,name\nC1,Alice ")

		r, err := Diff(oldT, newT, "id", Options{})
		require.NoError(t, err)
		assert.Len(t, issuesOf(r, KindValueMismatch), 1)
	})

	t.Run("Missing Keys Skipped", func(t *testing.T) {
		oldT := mustParse(t, "id,name\nC1,a\nC2,b")
		newT := mustParse(t, "id,name\nC2,changed")

		r, err := Diff(oldT, newT, "id", Options{})
		require.NoError(t, err)

		mismatches := issuesOf(r, KindValueMismatch)
		require.Len(t, mismatches, 1)
		assert.Equal(t, "C2", mismatches[0].Key)
	})

	t.Run("Restricted Columns", func(t *testing.T) {
		oldT := mustParse(t, "id,name,email\nC1,a,x@y.com")
		newT := mustParse(t, "id,name,email\nC1,b,z@y.com")

		r, err := Diff(oldT, newT, "id", Options{Columns: []string{"email"}})
		require.NoError(t, err)

		mismatches := issuesOf(r, KindValueMismatch)
		require.Len(t, mismatches, 1)
		assert.Equal(t, "email", mismatches[0].Field)
		assert.Equal(t, []string{"email"}, r.ColumnsCompared)
	})

	t.Run("Column Absent In New Reads Empty", func(t *testing.T) {
		oldT := mustParse(t, "id,name\nC1,a")
		newT := mustParse(t, "id\nC1")

		r, err := Diff(oldT, newT, "id", Options{})
		require.NoError(t, err)

		mismatches := issuesOf(r, KindValueMismatch)
		require.Len(t, mismatches, 1)
		assert.Equal(t, "name", mismatches[0].Field)
		assert.Equal(t, "a", mismatches[0].OldValue)
		assert.Equal(t, "", mismatches[0].NewValue)
	})
}

func TestDiff_PassesRunIndependently(t *testing.T) {
	// A row-count failure must not suppress later passes.
	oldT := mustParse(t, "id,name\nC1,a\nC2,b")
	newT := mustParse(t, "id,name\nC1,changed")

	r, err := Diff(oldT, newT, "id", Options{})
	require.NoError(t, err)

	assert.Len(t, issuesOf(r, KindRowCountMismatch), 1)
	assert.Len(t, issuesOf(r, KindMissingInNew), 1)
	assert.Len(t, issuesOf(r, KindValueMismatch), 1)
}

func TestDiff_IssueOrderFollowsPassOrder(t *testing.T) {
	oldT := mustParse(t, "id,name\nC1,a\nC2,\nC2,b")
	newT := mustParse(t, "id,email\nC1,bad\nC3,x@y.com")

	r, err := Diff(oldT, newT, "id", Options{})
	require.NoError(t, err)

	rank := map[Kind]int{}
	for i, kind := range Kinds {
		rank[kind] = i
	}
	last := -1
	for _, is := range r.Issues {
		assert.GreaterOrEqual(t, rank[is.Kind], last, "issue kinds must be grouped in pass order")
		if rank[is.Kind] > last {
			last = rank[is.Kind]
		}
	}
}

func TestDiff_CountsMatchIssues(t *testing.T) {
	oldT := mustParse(t, "id,name\nC1,a\nC1,b\nC2,")
	newT := mustParse(t, "id,name\nC2,x")

	r, err := Diff(oldT, newT, "id", Options{})
	require.NoError(t, err)

	total := 0
	for _, n := range r.Counts {
		total += n
	}
	assert.Equal(t, len(r.Issues), total)
	assert.Equal(t, len(issuesOf(r, KindDuplicateKey)), r.Counts[KindDuplicateKey])
	assert.NotEmpty(t, r.RunID)
	assert.False(t, r.GeneratedAt.IsZero())
}
