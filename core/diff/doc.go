// Package diff implements the comparison engine that reports discrepancies
// between an OLD and a NEW tabular snapshot keyed by a primary-key column.
//
// # Passes
//
// A run executes seven passes in a fixed order, each a pure function over
// the two tables that returns its findings by value:
//
//  1. Row count: total row counts on both sides.
//  2. Schema: ordered header-sequence equality.
//  3. Key coverage: keys missing from one side or extra on the other.
//  4. Duplicate keys: key values appearing more than once per side.
//  5. Null values: empty cells, including empty key cells.
//  6. Format: email, date, and numeric shape checks on the NEW side.
//  7. Value mismatch: per-field comparison for keys present on both sides.
//
// Every pass runs unconditionally; an earlier failure never short-circuits a
// later pass. The fixed order exists only to make Report.Issues ordering
// deterministic. Findings are data, not errors: the engine fails only when
// the key column itself is absent from a side's headers (ConfigError).
//
// # Concurrency
//
// A run owns its tables and indices and shares no state, so concurrent runs
// need no coordination.
package diff
