package diff

import "strings"

// Config holds the diff defaults loaded from the environment.
type Config struct {
	// KeyColumn is the default primary-key column name.
	KeyColumn string `mapstructure:"key_column" default:"customer_id"`

	// EmailColumns, DateColumns and NumericColumns are comma-separated
	// lists of column names validated by the format pass.
	EmailColumns   string `mapstructure:"email_columns" default:"email"`
	DateColumns    string `mapstructure:"date_columns" default:"dob"`
	NumericColumns string `mapstructure:"numeric_columns" default:"balance"`
}

// Rules expands the configured column lists into FormatRules.
func (c Config) Rules() FormatRules {
	rules := make(FormatRules)
	addRule(rules, c.EmailColumns, CheckEmail)
	addRule(rules, c.DateColumns, CheckDate)
	addRule(rules, c.NumericColumns, CheckNumeric)
	return rules
}

func addRule(rules FormatRules, columns string, check FormatCheck) {
	for _, col := range strings.Split(columns, ",") {
		col = strings.TrimSpace(col)
		if col != "" {
			rules[col] = check
		}
	}
}
