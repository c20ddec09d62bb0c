package cmd

import (
	"fmt"
	"os"

	"content-sync/core/config"
	"content-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "content-sync",
	Short: "Content Sync",
	Long: `Content Sync publishes a tree of front-matter documents to a headless CMS.
Every run reconciles local records with remote entries by their unique field,
so repeated runs update instead of duplicating.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config gives ISO8601 timestamps on the CLI
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("space", "", "space id (CONTENTFUL_SPACE_ID)")
	flags.String("environment", "", "environment id (CONTENTFUL_ENVIRONMENT_ID)")
	flags.String("token", "", "management token (CONTENTFUL_MANAGEMENT_TOKEN)")
	flags.String("source", "", "content root directory (SOURCE_ROOT)")
	flags.String("log-level", "", "log level: debug, info, warn, error (LOG_LEVEL)")
}

// loadConfig reads the configuration with the persistent flags bound on top.
func loadConfig(cmd *cobra.Command, extra ...config.FlagBinding) (*config.Config, error) {
	flags := cmd.Flags()
	bindings := append([]config.FlagBinding{
		config.Bind(flags, "space", "contentful.space_id"),
		config.Bind(flags, "environment", "contentful.environment_id"),
		config.Bind(flags, "token", "contentful.management_token"),
		config.Bind(flags, "source", "source.root"),
		config.Bind(flags, "log-level", "log.level"),
	}, extra...)

	cfg, err := config.LoadConfig(".", bindings...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
