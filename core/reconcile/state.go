package reconcile

import (
	"context"
	"fmt"

	"content-sync/core/cms"
	"content-sync/core/utils"

	"go.uber.org/zap"
)

// orderByCreation keeps pages stable while the store is written to.
const orderByCreation = "sys.createdAt"

// LoadAllEntries pages through every entry of the environment.
func LoadAllEntries(ctx context.Context, client cms.Client, pageSize int) ([]cms.Entry, error) {
	return loadAll(ctx, pageSize, "entries", func(ctx context.Context, q cms.Query) ([]cms.Entry, int, error) {
		page, err := client.Entries(ctx, q)
		if err != nil {
			return nil, 0, err
		}
		return page.Items, page.Total, nil
	})
}

// LoadAllAssets pages through every asset of the environment.
func LoadAllAssets(ctx context.Context, client cms.Client, pageSize int) ([]cms.Asset, error) {
	return loadAll(ctx, pageSize, "assets", func(ctx context.Context, q cms.Query) ([]cms.Asset, int, error) {
		page, err := client.Assets(ctx, q)
		if err != nil {
			return nil, 0, err
		}
		return page.Items, page.Total, nil
	})
}

// loadAll requests pages until the cumulative count reaches the reported
// total. An empty page ends the loop early so a shrinking collection cannot
// spin forever.
func loadAll[T any](ctx context.Context, pageSize int, what string, fetch func(context.Context, cms.Query) ([]T, int, error)) ([]T, error) {
	if pageSize <= 0 {
		pageSize = 100
	}

	var all []T
	for {
		items, total, err := fetch(ctx, cms.Query{Skip: len(all), Limit: pageSize, Order: orderByCreation})
		if err != nil {
			return nil, fmt.Errorf("listing %s at offset %d: %w", what, len(all), err)
		}
		all = append(all, items...)

		if len(items) == 0 || len(all) >= total {
			return all, nil
		}
	}
}

// BuildIdentityIndex indexes entries by (content type, unique field value).
// Entries of unknown or invalid types and entries without a value for the
// unique field are skipped; they cannot be matched to a local record.
func BuildIdentityIndex(schemas *SchemaIndex, entries []cms.Entry, locale string, logger *zap.Logger) *IdentityIndex {
	idx := NewIdentityIndex()

	for i := range entries {
		entry := &entries[i]
		ct := entry.ContentTypeID()

		unique, err := schemas.UniqueField(ct)
		if err != nil {
			logger.Debug("Entry not indexed", zap.String("entry_id", entry.Sys.ID), zap.Error(err))
			continue
		}

		raw, _ := entry.Fields.Value(unique.ID, locale)
		key := utils.ToString(raw)
		if key == "" {
			logger.Debug("Entry has no identity value",
				zap.String("entry_id", entry.Sys.ID),
				zap.String("content_type", ct),
				zap.String("field", unique.ID))
			continue
		}

		if existing, ok := idx.Lookup(ct, key); ok {
			logger.Warn("Duplicate identity value, keeping the oldest entry",
				zap.String("content_type", ct),
				zap.String("key", key),
				zap.String("kept", existing.Sys.ID),
				zap.String("skipped", entry.Sys.ID))
			continue
		}
		idx.Store(ct, key, entry)
	}

	return idx
}
