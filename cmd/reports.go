package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"migration-validator/core/config"
	"migration-validator/core/logger"
	"migration-validator/core/storage"
	"migration-validator/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportsCmd is the parent command for published-report operations.
var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Manage reports published to object storage",
}

var reportsListCmd = &cobra.Command{
	Use:   "list [run-id]",
	Short: "List published report artifacts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		publisher, _, err := newPublisher()
		if err != nil {
			return err
		}

		runID := ""
		if len(args) == 1 {
			runID = args[0]
		}

		names, err := publisher.List(context.Background(), runID)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var reportsGetCmd = &cobra.Command{
	Use:   "get <object>",
	Short: "Print a published artifact to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		publisher, _, err := newPublisher()
		if err != nil {
			return err
		}

		obj, err := publisher.Get(context.Background(), args[0])
		if err != nil {
			return err
		}
		defer func() { _ = obj.Close() }()

		_, err = io.Copy(os.Stdout, obj)
		return err
	},
}

var reportsPruneCmd = &cobra.Command{
	Use:   "prune <run-id>",
	Short: "Delete every artifact of a published run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		publisher, l, err := newPublisher()
		if err != nil {
			return err
		}

		removed, err := publisher.Remove(context.Background(), args[0])
		if err != nil {
			return err
		}
		l.Info("Pruned published run", zap.String("run_id", args[0]), zap.Int("removed", removed))
		return nil
	},
}

func init() {
	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsGetCmd)
	reportsCmd.AddCommand(reportsPruneCmd)
	RootCmd.AddCommand(reportsCmd)
}

// newPublisher wires config, logger and storage for the reports subcommands.
func newPublisher() (*report.Publisher, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return report.NewPublisher(client, cfg.Storage.Bucket, l), l, nil
}
