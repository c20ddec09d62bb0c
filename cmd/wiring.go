package cmd

import (
	"context"
	"fmt"

	"content-sync/core/cms"
	"content-sync/core/config"
	"content-sync/core/database"
	"content-sync/core/journal"
	"content-sync/core/reconcile"
	"content-sync/core/storage"
	"content-sync/feature/contentsync"

	"go.uber.org/zap"
)

// newService wires the orchestrator from configuration. The staging bucket
// and the journal database are optional; a journal that cannot be reached
// is replaced by the no-op journal with a warning.
func newService(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*contentsync.Service, error) {
	client, err := cms.NewClient(cfg.Contentful)
	if err != nil {
		return nil, fmt.Errorf("failed to create cms client: %w", err)
	}

	var opts []reconcile.Option
	if cfg.Storage.Enabled {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		stager := storage.NewStager(store, cfg.Storage, logg)
		if err := stager.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		opts = append(opts, reconcile.WithStager(stager))
		logg.Info("Staging assets through bucket", zap.String("bucket", cfg.Storage.Bucket))
	}

	var j journal.Journal = journal.Nop{}
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, journal disabled", zap.Error(err))
		} else {
			gj := journal.NewGorm(db, logg)
			if err := gj.Migrate(ctx); err != nil {
				logg.Warn("Journal migration failed, journal disabled", zap.Error(err))
			} else {
				j = gj
				logg.Info("Connected to journal database", zap.String("host", cfg.Database.Host))
			}
		}
	}

	return contentsync.NewService(client, cfg.Source, cfg.Sync, cfg.Contentful.Locale, j, logg, opts...), nil
}
