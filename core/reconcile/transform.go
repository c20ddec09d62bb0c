package reconcile

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"content-sync/core/cms"
	"content-sync/core/source"
	"content-sync/core/utils"

	"go.uber.org/zap"
)

// Transform turns a local record into a locale-wrapped field map. The steps
// run in a fixed order since later steps read what earlier ones wrote.
func (e *Engine) Transform(ctx context.Context, run *Run, rec source.Record, schema *Schema) (cms.Fields, error) {
	fm, err := schema.FieldMap()
	if err != nil {
		return nil, err
	}

	out := cms.Fields{}

	// 1. Body.
	if fm.Body != "" {
		out[fm.Body] = e.wrap(rec.Body)
	}

	// 2. Plain front matter. Reference keys are resolved below.
	for _, key := range sortedKeys(rec.FrontMatter) {
		role, ok := fm.Role(key)
		if !ok {
			if _, ignored := fm.Ignored[key]; !ignored {
				e.logger.Debug("Front matter key not in schema, dropped",
					zap.String("content_type", rec.ContentType),
					zap.String("key", key))
			}
			continue
		}
		if role.IsSpecial() {
			continue
		}
		out[key] = e.wrap(rec.FrontMatter[key])
	}

	// 3. Slug precedence.
	if fm.Slug != "" {
		out[fm.Slug] = e.wrap(ResolveSlug(rec))
		for _, id := range identifierFields {
			delete(out, id)
		}
	}

	// 4. Status drives publishing only.
	delete(out, statusField)

	// 5. Dates.
	for id, role := range fm.Roles {
		if role != RoleDate {
			continue
		}
		v, ok := out.Value(id, e.locale)
		if !ok || v == nil {
			continue
		}
		ms, err := NormalizeDate(v, e.cfg.DefaultOffset)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", id, err)
		}
		out[id] = e.wrap(ms)
	}

	// 6-10. References.
	for _, key := range sortedKeys(rec.FrontMatter) {
		role, ok := fm.Role(key)
		if !ok || !role.IsSpecial() {
			continue
		}
		value, err := e.resolveField(ctx, run, rec, role, rec.FrontMatter[key])
		if err != nil {
			return nil, err
		}
		if value != nil {
			out[key] = e.wrap(value)
		}
	}

	return out, nil
}

// resolveField resolves one reference key into its link value. A nil result
// leaves the field unset.
func (e *Engine) resolveField(ctx context.Context, run *Run, rec source.Record, role FieldRole, raw any) (any, error) {
	switch role {
	case RoleAsset:
		name := utils.ToString(raw)
		if name == "" {
			return nil, nil
		}
		id, err := e.ResolveAsset(ctx, run, filepath.Join(rec.Dir, name))
		if err != nil {
			return nil, err
		}
		return cms.NewLink(cms.LinkTypeAsset, id), nil

	case RoleAssetList:
		names := utils.ToStringSlice(raw)
		if names == nil {
			return nil, nil
		}
		links := make([]cms.Link, 0, len(names))
		for _, name := range names {
			id, err := e.ResolveAsset(ctx, run, filepath.Join(rec.Dir, name))
			if err != nil {
				return nil, err
			}
			links = append(links, cms.NewLink(cms.LinkTypeAsset, id))
		}
		return links, nil

	case RoleAuthor:
		name := utils.ToString(raw)
		if name == "" {
			return nil, nil
		}
		id, err := e.ResolveRelated(ctx, run, AuthorType, map[string]any{"name": name, "slug": name})
		if err != nil {
			return nil, err
		}
		return cms.NewLink(cms.LinkTypeEntry, id), nil

	case RoleCategory:
		names := utils.ToStringSlice(raw)
		if names == nil {
			return nil, nil
		}
		links := make([]cms.Link, 0, len(names))
		for _, name := range names {
			id, err := e.ResolveRelated(ctx, run, CategoryType, map[string]any{"title": name, "slug": name})
			if err != nil {
				return nil, err
			}
			links = append(links, cms.NewLink(cms.LinkTypeEntry, id))
		}
		return links, nil

	case RoleLinks:
		items, ok := raw.([]any)
		if !ok {
			if raw == nil {
				return nil, nil
			}
			return nil, fmt.Errorf("links must be a list, got %T", raw)
		}
		links := make([]cms.Link, 0, len(items))
		for i, item := range items {
			set, ok := utils.ToMap(item)
			if !ok {
				return nil, fmt.Errorf("links[%d] must be a mapping, got %T", i, item)
			}
			id, err := e.ResolveLink(ctx, run, set)
			if err != nil {
				return nil, err
			}
			links = append(links, cms.NewLink(cms.LinkTypeEntry, id))
		}
		return links, nil
	}
	return nil, fmt.Errorf("unexpected field role %s", role)
}

// ResolveSlug applies slug precedence: an explicit slug, then post_name, then
// the record directory name.
func ResolveSlug(rec source.Record) string {
	for _, key := range []string{"slug", "post_name"} {
		if s := utils.ToString(rec.FrontMatter[key]); s != "" {
			return s
		}
	}
	return rec.Slug
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
