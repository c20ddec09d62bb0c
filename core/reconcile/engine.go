package reconcile

import (
	"context"
	"fmt"
	"io"

	"content-sync/core/cms"
	"content-sync/core/source"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Stager places a local file where the remote store can fetch it and returns
// the URL to fetch it from. Release drops a staged file once the store has
// copied it.
type Stager interface {
	Stage(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Release(ctx context.Context, key string) error
}

// Engine drives reconciliation against one remote environment.
type Engine struct {
	client cms.Client
	cfg    Config
	locale string
	logger *zap.Logger
	stager Stager
}

// Option configures an Engine.
type Option func(*Engine)

// WithStager makes asset uploads go through the stager instead of the upload
// endpoint of the remote store.
func WithStager(s Stager) Option {
	return func(e *Engine) {
		e.stager = s
	}
}

// NewEngine creates an engine. Locale is the single locale tag every field
// value is wrapped in.
func NewEngine(client cms.Client, cfg Config, locale string, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultOffset == "" {
		cfg.DefaultOffset = "+07:00"
	}
	e := &Engine{
		client: client,
		cfg:    cfg,
		locale: locale,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Prepare runs the read-only prefix of a sync: schemas first, then the full
// entry and asset listings, which are independent and fetched concurrently.
// No mutation is issued before Prepare returns.
func (e *Engine) Prepare(ctx context.Context) (*Run, error) {
	schemas, err := LoadSchemas(ctx, e.client)
	if err != nil {
		return nil, err
	}

	var (
		entries []cms.Entry
		assets  []cms.Asset
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = LoadAllEntries(gctx, e.client, e.cfg.PageSize)
		return err
	})
	g.Go(func() error {
		var err error
		assets, err = LoadAllAssets(gctx, e.client, e.cfg.PageSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	run := NewRun(schemas, BuildIdentityIndex(schemas, entries, e.locale, e.logger))
	seeded := run.Cache.SeedAssets(assets, e.locale)
	run.Summary.DryRun = e.cfg.DryRun

	e.logger.Info("Remote state loaded",
		zap.Int("content_types", len(schemas.Types())),
		zap.Int("entries", len(entries)),
		zap.Int("indexed", run.Identity.Len()),
		zap.Int("assets", len(assets)),
		zap.Int("assets_cached", seeded))

	return run, nil
}

// Sync transforms and reconciles one local record.
func (e *Engine) Sync(ctx context.Context, run *Run, rec source.Record) (*Result, error) {
	schema, err := run.Schemas.Schema(rec.ContentType)
	if err != nil {
		return nil, err
	}
	// Fail before resolving references so a broken type causes no mutation.
	if _, err := schema.UniqueField(); err != nil {
		return nil, err
	}

	fields, err := e.Transform(ctx, run, rec, schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rec.Path, err)
	}

	res, err := e.Reconcile(ctx, run, rec.ContentType, fields, rec.FrontMatter, schema)
	if err != nil {
		return nil, err
	}
	run.Summary.Records++
	return res, nil
}

// wrap puts a value under the locale envelope.
func (e *Engine) wrap(v any) map[string]any {
	return map[string]any{e.locale: v}
}

// wrapAll locale-wraps every value of a field set.
func (e *Engine) wrapAll(set map[string]any) cms.Fields {
	out := make(cms.Fields, len(set))
	for k, v := range set {
		out[k] = e.wrap(v)
	}
	return out
}

func dryRunID(kind, key string) string {
	return "dry-run:" + kind + ":" + key
}
