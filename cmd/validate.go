package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"migration-validator/core/config"
	"migration-validator/core/diff"
	"migration-validator/core/logger"
	"migration-validator/core/storage"
	"migration-validator/core/table"
	"migration-validator/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the validate command
	oldPath     string
	newPath     string
	keyColumn   string
	reportPath  string
	summaryPath string
	htmlPath    string
	colsFlag    string
	publishFlag bool
)

// validateCmd compares two CSV snapshots and writes the report artifacts.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Compare OLD and NEW CSV snapshots and report discrepancies",
	Long: `Compare two CSV snapshots keyed by a primary-key column.

Reports row-count and schema deltas, missing/extra keys, duplicate keys,
empty cells, format violations, and per-field value mismatches.

Examples:
  # Console summary only
  migration-validator validate --old old.csv --new new.csv --key customer_id

  # Write every artifact
  migration-validator validate --old old.csv --new new.csv --key customer_id \
    --report mismatches.csv --summary summary.txt --html report.html

  # Restrict the value comparison to two columns and publish to storage
  migration-validator validate --old old.csv --new new.csv --key customer_id \
    --cols email,balance --publish`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&oldPath, "old", "", "Path to the old CSV snapshot (required)")
	validateCmd.Flags().StringVar(&newPath, "new", "", "Path to the new CSV snapshot (required)")
	validateCmd.Flags().StringVar(&keyColumn, "key", "", "Primary-key column (default from configuration)")
	validateCmd.Flags().StringVar(&reportPath, "report", "", "Path to write the mismatch CSV")
	validateCmd.Flags().StringVar(&summaryPath, "summary", "", "Path to write the text summary")
	validateCmd.Flags().StringVar(&htmlPath, "html", "", "Path to write the HTML report")
	validateCmd.Flags().StringVar(&colsFlag, "cols", "", "Comma-separated columns to value-compare (default: all old columns)")
	validateCmd.Flags().BoolVar(&publishFlag, "publish", false, "Publish rendered artifacts to object storage")
	_ = validateCmd.MarkFlagRequired("old")
	_ = validateCmd.MarkFlagRequired("new")

	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	key := keyColumn
	if key == "" {
		key = cfg.Diff.KeyColumn
	}

	oldTable, err := loadTable(oldPath)
	if err != nil {
		return err
	}
	newTable, err := loadTable(newPath)
	if err != nil {
		return err
	}

	opts := diff.Options{Rules: cfg.Diff.Rules()}
	if colsFlag != "" {
		for _, col := range strings.Split(colsFlag, ",") {
			if col = strings.TrimSpace(col); col != "" {
				opts.Columns = append(opts.Columns, col)
			}
		}
	}

	l.Info("Starting validation",
		zap.String("old", oldPath),
		zap.String("new", newPath),
		zap.String("key", key),
	)

	result, err := diff.Diff(oldTable, newTable, key, opts)
	if err != nil {
		return err
	}

	printValidationReport(l, result)

	if err := writeArtifacts(result); err != nil {
		return err
	}

	if publishFlag {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		publisher := report.NewPublisher(client, cfg.Storage.Bucket, l)
		names, err := publisher.Publish(ctx, result)
		if err != nil {
			return fmt.Errorf("failed to publish report: %w", err)
		}
		l.Info("Report published", zap.Int("artifacts", len(names)), zap.String("run_id", result.RunID))
	}

	return nil
}

// loadTable reads and parses one CSV snapshot from disk.
func loadTable(path string) (*table.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := table.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return t, nil
}

// writeArtifacts writes each requested artifact to its flag path.
func writeArtifacts(result *diff.Report) error {
	artifacts := []struct {
		path   string
		render func(f *os.File) error
	}{
		{reportPath, func(f *os.File) error { return report.WriteMismatchCSV(f, result) }},
		{summaryPath, func(f *os.File) error { return report.WriteSummary(f, result) }},
		{htmlPath, func(f *os.File) error { return report.WriteHTML(f, result) }},
	}

	for _, a := range artifacts {
		if a.path == "" {
			continue
		}
		if dir := filepath.Dir(a.path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
		}
		f, err := os.Create(a.path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", a.path, err)
		}
		if err := a.render(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to write %s: %w", a.path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", a.path, err)
		}
	}
	return nil
}

// printValidationReport prints a formatted validation report using logger.
func printValidationReport(l *zap.Logger, r *diff.Report) {
	s := r.Summary

	l.Info("Validation report",
		zap.String("run_id", r.RunID),
		zap.Int("rows_old", r.RowCountOld),
		zap.Int("rows_new", r.RowCountNew),
		zap.Bool("schema_match", r.SchemaMatch),
		zap.Int("only_in_old", s.OnlyInOld),
		zap.Int("only_in_new", s.OnlyInNew),
		zap.Int("rows_compared", s.RowsCompared),
		zap.Int("changed_cells", s.ChangedCells),
		zap.Int("issues", len(r.Issues)),
	)

	for _, kind := range diff.Kinds {
		if n := r.Counts[kind]; n > 0 {
			l.Info("Findings", zap.String("kind", string(kind)), zap.Int("count", n))
		}
	}

	// Show a sample of issues (max 5 for logger)
	maxShow := 5
	if len(r.Issues) < maxShow {
		maxShow = len(r.Issues)
	}
	for i := 0; i < maxShow; i++ {
		is := r.Issues[i]
		l.Info("Sample issue",
			zap.String("kind", string(is.Kind)),
			zap.String("key", is.Key),
			zap.String("field", is.Field),
			zap.String("detail", is.Detail),
		)
	}
	if len(r.Issues) > maxShow {
		l.Info("Additional issues not shown", zap.Int("count", len(r.Issues)-maxShow))
	}
}
