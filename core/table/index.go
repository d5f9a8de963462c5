package table

// KeyIndex is the derived lookup over one Table's key column.
// It is built fresh per diff run and never mutated afterward.
type KeyIndex struct {
	// ByKey maps each key value to its row. When a key is duplicated the
	// last occurrence wins.
	ByKey map[string]Row

	// Keys holds every key value in row order, repeats included.
	Keys []string

	// Duplicates holds the key values that appear more than once.
	Duplicates map[string]struct{}

	// DuplicateKeys holds the duplicated key values in the order their
	// second occurrence was seen. Each duplicated key appears once,
	// regardless of how many times it recurs.
	DuplicateKeys []string
}

// Has reports whether the index contains the given key value.
func (ix *KeyIndex) Has(key string) bool {
	_, ok := ix.ByKey[key]
	return ok
}

// BuildIndex builds a KeyIndex for the given key column in a single pass
// over the table's rows. The caller is responsible for ensuring the key
// column exists in the table's headers; rows simply yield empty-string keys
// for undeclared columns.
func BuildIndex(t *Table, keyColumn string) *KeyIndex {
	ix := &KeyIndex{
		ByKey:      make(map[string]Row, len(t.Rows)),
		Keys:       make([]string, 0, len(t.Rows)),
		Duplicates: make(map[string]struct{}),
	}

	for _, row := range t.Rows {
		key := row[keyColumn]
		if _, seen := ix.ByKey[key]; seen {
			if _, dup := ix.Duplicates[key]; !dup {
				ix.Duplicates[key] = struct{}{}
				ix.DuplicateKeys = append(ix.DuplicateKeys, key)
			}
		}
		ix.ByKey[key] = row
		ix.Keys = append(ix.Keys, key)
	}

	return ix
}
