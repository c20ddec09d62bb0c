package reconcile

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"content-sync/core/cms"
	"content-sync/core/utils"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

var errAssetNotProcessed = errors.New("asset file was not processed in time")

// ResolveAsset returns the id of the asset for a local file, uploading,
// processing and publishing it on the first request for that path.
func (e *Engine) ResolveAsset(ctx context.Context, run *Run, path string) (string, error) {
	if id, ok := run.Cache.Asset(path); ok {
		run.Summary.ReferenceHits++
		return id, nil
	}

	if e.cfg.DryRun {
		id := dryRunID("asset", path)
		run.Cache.StoreAsset(path, id)
		run.Summary.AssetsCreated++
		return id, nil
	}

	asset, err := e.createAsset(ctx, path)
	if err != nil {
		return "", &ReferenceError{Kind: "asset", ContentType: cms.LinkTypeAsset, Key: path, Err: err}
	}

	run.Cache.StoreAsset(path, asset.Sys.ID)
	run.Summary.AssetsCreated++
	return asset.Sys.ID, nil
}

func (e *Engine) createAsset(ctx context.Context, path string) (*cms.Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	file := cms.AssetFile{ContentType: contentType, FileName: filepath.Base(path)}

	if e.stager != nil {
		key := filepath.ToSlash(path)
		url, err := e.stager.Stage(ctx, key, f, info.Size(), contentType)
		if err != nil {
			return nil, fmt.Errorf("staging file: %w", err)
		}
		defer func() {
			if err := e.stager.Release(ctx, key); err != nil {
				e.logger.Warn("Staged file not removed", zap.String("path", path), zap.Error(err))
			}
		}()
		file.Upload = url
	} else {
		upload, err := e.client.Upload(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("uploading file: %w", err)
		}
		link := cms.NewLink(cms.LinkTypeUpload, upload.Sys.ID)
		file.UploadFrom = &link
	}

	e.logger.Info("Uploaded asset file",
		zap.String("path", path),
		zap.String("content_type", contentType),
		zap.String("size", humanize.Bytes(uint64(info.Size()))))

	asset, err := e.client.CreateAsset(ctx, cms.Fields{
		"title": e.wrap(path),
		"file":  e.wrap(file),
	})
	if err != nil {
		return nil, fmt.Errorf("creating asset: %w", err)
	}

	if err := e.client.ProcessAsset(ctx, asset, e.locale); err != nil {
		return nil, fmt.Errorf("processing asset %s: %w", asset.Sys.ID, err)
	}

	processed, err := e.awaitProcessed(ctx, asset.Sys.ID)
	if err != nil {
		return nil, err
	}

	published, err := e.client.PublishAsset(ctx, processed)
	if err != nil {
		return nil, fmt.Errorf("publishing asset %s: %w", asset.Sys.ID, err)
	}
	return published, nil
}

// awaitProcessed polls an asset until its file carries a URL.
func (e *Engine) awaitProcessed(ctx context.Context, id string) (*cms.Asset, error) {
	attempts := max(e.cfg.AssetPollAttempts, 1)
	interval := time.Duration(e.cfg.AssetPollIntervalMS) * time.Millisecond

	for i := 0; i < attempts; i++ {
		if i > 0 && interval > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(interval):
			}
		}

		asset, err := e.client.GetAsset(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("fetching asset %s: %w", id, err)
		}
		if e.processed(asset) {
			return asset, nil
		}
	}
	return nil, fmt.Errorf("%s after %d attempts: %w", id, attempts, errAssetNotProcessed)
}

func (e *Engine) processed(asset *cms.Asset) bool {
	raw, ok := asset.Fields.Value("file", e.locale)
	if !ok {
		return false
	}
	switch f := raw.(type) {
	case cms.AssetFile:
		return f.URL != ""
	case *cms.AssetFile:
		return f != nil && f.URL != ""
	default:
		m, ok := utils.ToMap(raw)
		return ok && utils.ToString(m["url"]) != ""
	}
}

// ResolveLink returns the id of the external link entry for a link field set,
// keyed by its url.
func (e *Engine) ResolveLink(ctx context.Context, run *Run, link map[string]any) (string, error) {
	url := utils.ToString(link["url"])
	if url == "" {
		return "", &ReferenceError{Kind: "link", ContentType: ExternalLinkType, Fields: link, Err: errors.New("link has no url")}
	}

	if id, ok := run.Cache.Link(url); ok {
		run.Summary.ReferenceHits++
		return id, nil
	}

	if id, ok := e.existing(run, ExternalLinkType, link); ok {
		run.Cache.StoreLink(url, id)
		run.Summary.ReferenceHits++
		return id, nil
	}

	if e.cfg.DryRun {
		id := dryRunID("link", url)
		run.Cache.StoreLink(url, id)
		run.Summary.LinksCreated++
		return id, nil
	}

	entry, err := e.createPublished(ctx, ExternalLinkType, link)
	if err != nil {
		return "", &ReferenceError{Kind: "link", ContentType: ExternalLinkType, Key: url, Fields: link, Err: err}
	}
	e.remember(run, ExternalLinkType, link, entry)

	run.Cache.StoreLink(url, entry.Sys.ID)
	run.Summary.LinksCreated++
	return entry.Sys.ID, nil
}

// ResolveRelated returns the id of the entry of contentType identified by the
// unique field value in set, creating and publishing it when none exists.
func (e *Engine) ResolveRelated(ctx context.Context, run *Run, contentType string, set map[string]any) (string, error) {
	unique, err := run.Schemas.UniqueField(contentType)
	if err != nil {
		return "", &ReferenceError{Kind: "related", ContentType: contentType, Fields: set, Err: err}
	}

	key := utils.ToString(set[unique.ID])
	if key == "" {
		return "", &ReferenceError{
			Kind:        "related",
			ContentType: contentType,
			Fields:      set,
			Err:         fmt.Errorf("field set has no value for unique field %q", unique.ID),
		}
	}

	if id, ok := run.Cache.Related(contentType, key); ok {
		run.Summary.ReferenceHits++
		return id, nil
	}

	if entry, ok := run.Identity.Lookup(contentType, key); ok {
		run.Cache.StoreRelated(contentType, key, entry.Sys.ID)
		run.Summary.ReferenceHits++
		return entry.Sys.ID, nil
	}

	if e.cfg.DryRun {
		id := dryRunID(contentType, key)
		run.Cache.StoreRelated(contentType, key, id)
		run.Summary.RelatedCreated++
		return id, nil
	}

	entry, err := e.createPublished(ctx, contentType, set)
	if err != nil {
		return "", &ReferenceError{Kind: "related", ContentType: contentType, Key: key, Fields: set, Err: err}
	}
	run.Identity.Store(contentType, key, entry)

	run.Cache.StoreRelated(contentType, key, entry.Sys.ID)
	run.Summary.RelatedCreated++
	return entry.Sys.ID, nil
}

// existing looks a field set up in the identity index through the unique
// field of its type. Types without a usable unique field never match.
func (e *Engine) existing(run *Run, contentType string, set map[string]any) (string, bool) {
	unique, err := run.Schemas.UniqueField(contentType)
	if err != nil {
		return "", false
	}
	key := utils.ToString(set[unique.ID])
	if key == "" {
		return "", false
	}
	entry, ok := run.Identity.Lookup(contentType, key)
	if !ok {
		return "", false
	}
	return entry.Sys.ID, true
}

// remember stores a freshly created entry in the identity index when its type
// has a unique field.
func (e *Engine) remember(run *Run, contentType string, set map[string]any, entry *cms.Entry) {
	unique, err := run.Schemas.UniqueField(contentType)
	if err != nil {
		return
	}
	if key := utils.ToString(set[unique.ID]); key != "" {
		run.Identity.Store(contentType, key, entry)
	}
}

// createPublished creates an entry from a field set and publishes it.
// Reference targets have no draft state.
func (e *Engine) createPublished(ctx context.Context, contentType string, set map[string]any) (*cms.Entry, error) {
	entry, err := e.client.CreateEntry(ctx, contentType, e.wrapAll(set))
	if err != nil {
		return nil, err
	}
	published, err := e.client.PublishEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("publishing %s: %w", entry.Sys.ID, err)
	}

	e.logger.Debug("Created reference entry",
		zap.String("content_type", contentType),
		zap.String("entry_id", published.Sys.ID))
	return published, nil
}
