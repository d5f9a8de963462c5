package table

import (
	"strings"
)

// ParseError indicates that raw input text could not be turned into a Table.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Reason
}

// Parse turns raw comma-delimited text into a Table.
//
// The input is trimmed, then split on line breaks. The first non-empty line
// is the header line; each header is trimmed. Every subsequent line becomes
// one row. Rows shorter than the header list are padded with empty strings;
// cells beyond the header list are dropped.
//
// Returns a ParseError when the input contains no header line.
func Parse(raw string) (*Table, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &ParseError{Reason: "input has no header line"}
	}

	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	// Locate the header line, skipping any leading blank lines.
	headerIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, &ParseError{Reason: "input has no header line"}
	}

	rawHeaders := strings.Split(lines[headerIdx], ",")
	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(lines)-headerIdx-1)
	for _, line := range lines[headerIdx+1:] {
		cells := strings.Split(line, ",")
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}
