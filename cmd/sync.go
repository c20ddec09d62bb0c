package cmd

import (
	"fmt"
	"strings"
	"time"

	"content-sync/core/config"
	"content-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the content tree with the remote store",
	Long: `Walks the content root, transforms every record and creates or updates the
matching remote entry. With --delete-all every entry of the environment is
unpublished and deleted instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		flags := cmd.Flags()
		cfg, err := loadConfig(cmd,
			config.Bind(flags, "types", "source.types"),
			config.Bind(flags, "dry-run", "sync.dry_run"),
			config.Bind(flags, "delete-all", "sync.delete_all"),
		)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		svc, err := newService(ctx, cfg, logg)
		if err != nil {
			return err
		}

		report, err := svc.Run(ctx)
		if report != nil {
			fmt.Println("\n=== Sync Summary ===")
			fmt.Printf("Run ID: %s\n", report.RunID)
			fmt.Printf("Mode: %s\n", report.Mode)
			fmt.Printf("Types: %s\n", strings.Join(cfg.Source.Types, ","))
			fmt.Printf("Summary: %s\n", report.Summary)
			fmt.Printf("Execution Time: %s\n", time.Since(startTime))
		}
		if err != nil {
			return fmt.Errorf("%s failed: %w", runMode(cfg), err)
		}

		logg.Info("Run completed",
			zap.String("mode", report.Mode),
			zap.Duration("execution_time", time.Since(startTime)))
		return nil
	},
}

func runMode(cfg *config.Config) string {
	if cfg.Sync.DeleteAll {
		return "delete-all"
	}
	return "sync"
}

func init() {
	syncCmd.Flags().StringSlice("types", nil, "content type directory globs to include (SOURCE_TYPES)")
	syncCmd.Flags().Bool("dry-run", false, "resolve everything without mutating the remote store (SYNC_DRY_RUN)")
	syncCmd.Flags().Bool("delete-all", false, "unpublish and delete every entry of the environment (SYNC_DELETE_ALL)")
	RootCmd.AddCommand(syncCmd)
}
