package diff

import (
	"regexp"
	"strconv"
	"strings"
)

// FormatCheck identifies a semantic column format validated by the format pass.
type FormatCheck string

const (
	// CheckEmail requires a <non-space>@<non-space>.<non-space> shape.
	// This is a presence-of-@-and-dot check, not full RFC validation.
	CheckEmail FormatCheck = "email"
	// CheckDate requires a strict YYYY-MM-DD digit pattern. Calendar
	// validity is not checked: 2024-13-40 passes the pattern.
	CheckDate FormatCheck = "date"
	// CheckNumeric requires the entire trimmed value to parse as a
	// floating-point number. A numeric prefix like "12abc" fails.
	CheckNumeric FormatCheck = "numeric"
)

// FormatRules maps a column name to the format its values must satisfy.
// Rules apply to the NEW dataset only, and only where the column exists in
// its schema. Empty values are exempt; the null pass owns those.
type FormatRules map[string]FormatCheck

// DefaultRules returns the well-known semantic column rules: email
// addresses in "email", dates of birth in "dob", numeric balances in
// "balance".
func DefaultRules() FormatRules {
	return FormatRules{
		"email":   CheckEmail,
		"dob":     CheckDate,
		"balance": CheckNumeric,
	}
}

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid reports whether the value satisfies the check.
func (c FormatCheck) Valid(value string) bool {
	switch c {
	case CheckEmail:
		return emailPattern.MatchString(value)
	case CheckDate:
		return datePattern.MatchString(value)
	case CheckNumeric:
		_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return err == nil
	default:
		return true
	}
}

// describe returns the detail text for a failed check.
func (c FormatCheck) describe() string {
	switch c {
	case CheckEmail:
		return "invalid email"
	case CheckDate:
		return "invalid date, expected YYYY-MM-DD"
	case CheckNumeric:
		return "value is not numeric"
	default:
		return "invalid value"
	}
}
