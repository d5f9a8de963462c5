package compare

import (
	"fmt"

	"migration-validator/core/diff"
	"migration-validator/core/table"

	"go.uber.org/zap"
)

// Service runs diffs for uploaded snapshot pairs.
type Service struct {
	logger *zap.Logger
	cfg    diff.Config
}

// NewService creates a new compare service.
func NewService(logger *zap.Logger, cfg diff.Config) *Service {
	return &Service{logger: logger, cfg: cfg}
}

// DefaultKeyColumn returns the configured fallback key column.
func (s *Service) DefaultKeyColumn() string {
	return s.cfg.KeyColumn
}

// Compare parses both raw CSV texts and diffs them on the given key column.
// An empty keyColumn falls back to the configured default; columns restricts
// the value-mismatch pass when non-empty.
func (s *Service) Compare(oldRaw, newRaw, keyColumn string, columns []string) (*diff.Report, error) {
	if keyColumn == "" {
		keyColumn = s.cfg.KeyColumn
	}

	oldTable, err := table.Parse(oldRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse old dataset: %w", err)
	}
	newTable, err := table.Parse(newRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse new dataset: %w", err)
	}

	report, err := diff.Diff(oldTable, newTable, keyColumn, diff.Options{
		Columns: columns,
		Rules:   s.cfg.Rules(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Comparison completed",
		zap.String("run_id", report.RunID),
		zap.String("key_column", keyColumn),
		zap.Int("rows_old", report.RowCountOld),
		zap.Int("rows_new", report.RowCountNew),
		zap.Int("issues", len(report.Issues)),
	)

	return report, nil
}
