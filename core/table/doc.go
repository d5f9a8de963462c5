// Package table provides the in-memory representation of one parsed CSV
// dataset and the derived key index used by the diff engine.
//
// # Table Contract
//
// A Table holds an ordered header list and an ordered row list. Every row
// carries a value for every declared header: a cell that was absent in the
// source line is the empty string, never a missing map key. This keeps
// downstream comparison code free of presence checks.
//
// # Parser Limitations
//
// Parse handles plain comma-delimited text only. There is no support for
// quoted commas or embedded newlines; rows shorter than the header list are
// padded with empty strings and extra trailing cells are dropped. These are
// documented limitations of the input format, not defects.
//
// # Key Index
//
// BuildIndex derives a lookup from primary-key value to row for one Table,
// recording duplicated key values along the way. Indices are built fresh per
// diff run and never mutated afterward.
package table
