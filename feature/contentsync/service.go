package contentsync

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"content-sync/core/cms"
	"content-sync/core/journal"
	"content-sync/core/reconcile"
	"content-sync/core/source"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Report is the outcome of one run.
type Report struct {
	// RunID identifies the run in the journal.
	RunID string `json:"run_id"`
	// Mode is "sync" or "delete-all".
	Mode string `json:"mode"`
	// Summary holds the run counters.
	Summary reconcile.Summary `json:"summary"`
	// Results lists the reconciled records in processing order.
	Results []reconcile.Result `json:"results,omitempty"`
}

// SchemaInfo describes how records of one content type are matched and where
// their body goes.
type SchemaInfo struct {
	ContentType   string `json:"content_type"`
	IdentityField string `json:"identity_field,omitempty"`
	BodyField     string `json:"body_field,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Service orchestrates sync and delete-all runs.
type Service struct {
	client  cms.Client
	source  source.Config
	cfg     reconcile.Config
	locale  string
	journal journal.Journal
	logger  *zap.Logger
	opts    []reconcile.Option

	// mu keeps runs strictly sequential.
	mu    sync.Mutex
	group singleflight.Group
}

// NewService creates a new orchestrator service.
func NewService(client cms.Client, src source.Config, cfg reconcile.Config, locale string, j journal.Journal, logger *zap.Logger, opts ...reconcile.Option) *Service {
	if j == nil {
		j = journal.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  client,
		source:  src,
		cfg:     cfg,
		locale:  locale,
		journal: j,
		logger:  logger,
		opts:    opts,
	}
}

// Run executes the mode selected by the configuration: delete-all when set,
// otherwise a full sync.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	if s.cfg.DeleteAll {
		return s.DeleteAll(ctx, s.cfg.DryRun)
	}
	return s.Sync(ctx, s.cfg.DryRun)
}

// Trigger runs a sync, sharing the result with any caller that asks for the
// same mode while a run is in flight.
func (s *Service) Trigger(ctx context.Context, dryRun bool) (*Report, bool, error) {
	key := fmt.Sprintf("sync:dry_run=%t", dryRun)
	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.Sync(ctx, dryRun)
	})
	report, _ := v.(*Report)
	return report, shared, err
}

// Sync reconciles every local record against the remote store. Records are
// processed one at a time in enumeration order and the run stops at the first
// error. The partial report is returned together with the error.
func (s *Service) Sync(ctx context.Context, dryRun bool) (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := &Report{RunID: uuid.NewString(), Mode: "sync"}
	l := s.logger.With(zap.String("run_id", report.RunID))

	walker, err := source.NewWalker(s.source, l)
	if err != nil {
		return report, err
	}

	cfg := s.cfg
	cfg.DryRun = dryRun
	engine := reconcile.NewEngine(s.client, cfg, s.locale, l, s.opts...)

	l.Info("Starting sync", zap.String("root", s.source.Root), zap.Bool("dry_run", dryRun))

	run, err := engine.Prepare(ctx)
	if err != nil {
		return report, fmt.Errorf("loading remote state: %w", err)
	}
	defer func() { report.Summary = run.Summary }()

	for rec, err := range walker.Records(ctx) {
		if err != nil {
			return report, err
		}

		res, err := engine.Sync(ctx, run, rec)
		if err != nil {
			l.Error("Sync aborted", zap.String("path", rec.Path), zap.Error(err))
			return report, err
		}
		report.Results = append(report.Results, *res)

		if dryRun {
			continue
		}
		if err := s.journal.Record(ctx, report.RunID, *res); err != nil {
			l.Warn("Failed to write journal entry", zap.Error(err))
		}
	}

	l.Info("Sync finished", zap.Stringer("summary", run.Summary))
	return report, nil
}

// DeleteAll unpublishes and deletes every entry of the environment.
// Unpublish failures are expected for drafts and are ignored; a delete
// failure aborts the run.
func (s *Service) DeleteAll(ctx context.Context, dryRun bool) (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := &Report{RunID: uuid.NewString(), Mode: "delete-all"}
	report.Summary.DryRun = dryRun
	l := s.logger.With(zap.String("run_id", report.RunID))

	entries, err := reconcile.LoadAllEntries(ctx, s.client, s.cfg.PageSize)
	if err != nil {
		return report, fmt.Errorf("loading entries: %w", err)
	}

	l.Warn("Deleting all entries", zap.Int("entries", len(entries)), zap.Bool("dry_run", dryRun))

	for i := range entries {
		entry := &entries[i]
		if dryRun {
			report.Summary.Deleted++
			continue
		}

		if _, err := s.client.UnpublishEntry(ctx, entry); err != nil {
			l.Debug("Unpublish failed, continuing",
				zap.String("entry_id", entry.Sys.ID),
				zap.Error(err))
			report.Summary.UnpublishIgnored++
		}

		if err := s.client.DeleteEntry(ctx, entry); err != nil {
			return report, &reconcile.DeleteError{EntryID: entry.Sys.ID, ContentType: entry.ContentTypeID(), Err: err}
		}
		report.Summary.Deleted++
	}

	l.Info("Delete finished", zap.Stringer("summary", report.Summary))
	return report, nil
}

// Schemas describes the identity and body field of every remote content type.
func (s *Service) Schemas(ctx context.Context) ([]SchemaInfo, error) {
	index, err := reconcile.LoadSchemas(ctx, s.client)
	if err != nil {
		return nil, err
	}

	types := index.Types()
	out := make([]SchemaInfo, 0, len(types))
	for _, id := range types {
		info := SchemaInfo{ContentType: id}

		unique, err := index.UniqueField(id)
		if err != nil {
			var se *reconcile.SchemaError
			if !errors.As(err, &se) {
				return nil, err
			}
			info.Error = se.Reason
		} else {
			info.IdentityField = unique.ID
		}
		if body, ok := index.BodyField(id); ok {
			info.BodyField = body.ID
		}
		out = append(out, info)
	}
	return out, nil
}

// History lists the journal entries of a past run.
func (s *Service) History(ctx context.Context, runID string) ([]journal.Entry, error) {
	return s.journal.Run(ctx, runID)
}
