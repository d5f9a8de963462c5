package table

// Row is one record of a dataset, keyed by header name.
// Every header declared by the owning Table is present; a cell missing from
// the source line is the empty string.
type Row map[string]string

// Table is the in-memory representation of one parsed dataset.
type Table struct {
	// Headers holds the column names in source order, trimmed of
	// surrounding whitespace. Order is significant for schema comparison.
	Headers []string `json:"headers"`

	// Rows holds the records in source order.
	Rows []Row `json:"rows"`
}

// HasHeader reports whether the table declares the given column.
func (t *Table) HasHeader(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}
