package reconcile

import (
	"context"

	"content-sync/core/cms"

	"go.uber.org/zap"
)

// Reconcile creates or updates the remote entry of one record and applies the
// publish policy. The resulting entry is stored back into the identity index.
func (e *Engine) Reconcile(ctx context.Context, run *Run, contentType string, fields cms.Fields, frontMatter map[string]any, schema *Schema) (*Result, error) {
	unique, err := schema.UniqueField()
	if err != nil {
		return nil, err
	}

	key := IdentityKey(frontMatter, fields, unique.ID, e.locale)
	publish := ShouldPublish(frontMatter)
	log := e.logger.With(zap.String("content_type", contentType), zap.String("key", key))

	var existing *cms.Entry
	if key != "" {
		existing, _ = run.Identity.Lookup(contentType, key)
	} else {
		log.Warn("Record has no identity value, it cannot be matched on later runs",
			zap.String("field", unique.ID))
	}

	var (
		entry  *cms.Entry
		action Action
	)
	if existing != nil {
		action = ActionUpdated
		entry, err = e.update(ctx, contentType, key, existing, fields)
		if err != nil {
			log.Error("Update failed", zap.Any("fields", fields), zap.Error(err))
			return nil, err
		}
		run.Summary.Updated++
	} else {
		action = ActionCreated
		entry, err = e.create(ctx, contentType, key, fields)
		if err != nil {
			log.Error("Create failed", zap.Any("fields", fields), zap.Error(err))
			return nil, err
		}
		run.Summary.Created++
	}

	if publish {
		entry, err = e.publish(ctx, contentType, key, entry)
		if err != nil {
			log.Error("Publish failed", zap.Error(err))
			return nil, err
		}
		run.Summary.Published++
	} else {
		run.Summary.Drafts++
	}

	if key != "" {
		run.Identity.Store(contentType, key, entry)
	}

	log.Info("Entry reconciled",
		zap.String("entry_id", entry.Sys.ID),
		zap.String("action", string(action)),
		zap.Bool("published", publish),
		zap.Bool("dry_run", e.cfg.DryRun))

	return &Result{
		ContentType: contentType,
		Key:         key,
		EntryID:     entry.Sys.ID,
		Action:      action,
		Published:   publish,
	}, nil
}

func (e *Engine) create(ctx context.Context, contentType, key string, fields cms.Fields) (*cms.Entry, error) {
	if e.cfg.DryRun {
		link := cms.Link{Sys: cms.LinkSys{Type: "Link", LinkType: "ContentType", ID: contentType}}
		return &cms.Entry{
			Sys:    cms.Sys{ID: dryRunID(contentType, key), ContentType: &link},
			Fields: fields,
		}, nil
	}

	entry, err := e.client.CreateEntry(ctx, contentType, fields)
	if err != nil {
		return nil, &RemoteCreateError{ContentType: contentType, Key: key, Fields: fields, Err: err}
	}
	return entry, nil
}

func (e *Engine) update(ctx context.Context, contentType, key string, existing *cms.Entry, fields cms.Fields) (*cms.Entry, error) {
	merged := Merge(existing.Fields, fields)

	if e.cfg.DryRun {
		return &cms.Entry{Sys: existing.Sys, Fields: merged}, nil
	}

	entry, err := e.client.UpdateEntry(ctx, existing, merged)
	if err != nil {
		return nil, &RemoteUpdateError{ContentType: contentType, Key: key, EntryID: existing.Sys.ID, Op: "update", Fields: merged, Err: err}
	}
	return entry, nil
}

func (e *Engine) publish(ctx context.Context, contentType, key string, entry *cms.Entry) (*cms.Entry, error) {
	if e.cfg.DryRun {
		return entry, nil
	}

	published, err := e.client.PublishEntry(ctx, entry)
	if err != nil {
		return nil, &RemoteUpdateError{ContentType: contentType, Key: key, EntryID: entry.Sys.ID, Op: "publish", Fields: entry.Fields, Err: err}
	}
	return published, nil
}
