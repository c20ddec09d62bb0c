package reconcile

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"content-sync/core/cms"
	"content-sync/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	ref, err := NormalizeDate("2021-03-01T10:00:00+07:00", "+07:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 3, 1, 3, 0, 0, 0, time.UTC).UnixMilli(), ref)

	tests := []struct {
		name  string
		value any
		want  int64
	}{
		{"NoZoneUsesDefault", "2021-03-01T10:00:00", ref},
		{"SpaceSeparator", "2021-03-01 10:00:00", ref},
		{"NoSeconds", "2021-03-01T10:00", ref},
		{"OffsetWithoutColon", "2021-03-01T10:00:00+0700", ref},
		{"Zulu", "2021-03-01T10:00:00Z", time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC).UnixMilli()},
		{"LowerZulu", "2021-03-01T10:00:00z", time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC).UnixMilli()},
		{"NegativeOffset", "2021-03-01T10:00:00-05:00", time.Date(2021, 3, 1, 15, 0, 0, 0, time.UTC).UnixMilli()},
		{"Fraction", "2021-03-01T10:00:00.250Z", time.Date(2021, 3, 1, 10, 0, 0, 250_000_000, time.UTC).UnixMilli()},
		{"DateOnly", "2021-03-01", time.Date(2021, 2, 28, 17, 0, 0, 0, time.UTC).UnixMilli()},
		{"SpacedOffset", "2011-06-16 23:36:56 -0700", time.Date(2011, 6, 17, 6, 36, 56, 0, time.UTC).UnixMilli()},
		{"SpacedColonOffset", "2011-06-16 23:36:56 +00:00", time.Date(2011, 6, 16, 23, 36, 56, 0, time.UTC).UnixMilli()},
		{"SpacedFractionOffset", "2011-06-16 23:36:56.000000000 +00:00", time.Date(2011, 6, 16, 23, 36, 56, 0, time.UTC).UnixMilli()},
		{"SpacedZulu", "2011-06-16T23:36:56 Z", time.Date(2011, 6, 16, 23, 36, 56, 0, time.UTC).UnixMilli()},
		{"Time", time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC), time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC).UnixMilli()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.value, "+07:00")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	for _, v := range []any{"", "yesterday", "2021-13-45T99:00:00", 42} {
		_, err := NormalizeDate(v, "+07:00")
		assert.Error(t, err, "%v", v)
	}
}

func TestHasZone(t *testing.T) {
	assert.False(t, HasZone("2021-03-01"))
	assert.False(t, HasZone("2021-03-01T10:00:00"))
	assert.True(t, HasZone("2021-03-01T10:00:00Z"))
	assert.True(t, HasZone("2021-03-01T10:00:00+07:00"))
	assert.True(t, HasZone("2021-03-01 10:00:00-0330"))
	assert.True(t, HasZone("2011-06-16 23:36:56 -0700"))
}

func TestResolveSlug(t *testing.T) {
	tests := []struct {
		name string
		fm   map[string]any
		dir  string
		want string
	}{
		{"PostName", map[string]any{"post_name": "custom", "title": "X"}, "dirX", "custom"},
		{"DirectoryFallback", map[string]any{"title": "Y"}, "dirY", "dirY"},
		{"SlugWins", map[string]any{"slug": "explicit", "post_name": "custom"}, "dirZ", "explicit"},
		{"EmptyValuesIgnored", map[string]any{"slug": "", "post_name": nil}, "dirW", "dirW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSlug(source.Record{Slug: tt.dir, FrontMatter: tt.fm}))
		})
	}
}

func TestTransform(t *testing.T) {
	store := newMemStore(testTypes()...)
	engine := newTestEngine(store)
	run := NewRun(NewSchemaIndex(testTypes()), nil)
	schema, err := run.Schemas.Schema("project")
	require.NoError(t, err)

	rec := writeRecord(t, t.TempDir(), "project", "dirX", map[string]any{
		"title":       "X",
		"post_name":   "custom",
		"post_id":     12,
		"postId":      "12",
		"status":      "publish",
		"date":        "2021-03-01T10:00:00",
		"tags":        []any{"go", "cms"},
		"image":       "photo.jpg",
		"attachments": []any{"b.pdf", "a.pdf"},
		"author":      "Ann",
		"category":    []any{"Go", "Tools"},
		"links": []any{
			map[string]any{"url": "https://example.com/one", "title": "One"},
			map[string]any{"url": "https://example.com/two", "title": "Two"},
		},
		"undeclared": "dropped",
	}, "# Hello\n", "photo.jpg", "a.pdf", "b.pdf")

	fields, err := engine.Transform(context.Background(), run, rec, schema)
	require.NoError(t, err)

	value := func(id string) any {
		v, ok := fields.Value(id, testLocale)
		require.True(t, ok, id)
		return v
	}

	assert.Equal(t, "# Hello\n", value("body"))
	assert.Equal(t, "X", value("title"))
	assert.Equal(t, "custom", value("slug"))
	assert.Equal(t, []any{"go", "cms"}, value("tags"))

	ref, err := NormalizeDate("2021-03-01T10:00:00+07:00", "+07:00")
	require.NoError(t, err)
	assert.Equal(t, ref, value("date"))

	for _, id := range []string{"status", "post_name", "post_id", "postId", "undeclared", "cover", "summary"} {
		_, ok := fields[id]
		assert.False(t, ok, id)
	}

	image, ok := value("image").(cms.Link)
	require.True(t, ok)
	assert.Equal(t, cms.LinkTypeAsset, image.Sys.LinkType)

	attachments, ok := value("attachments").([]cms.Link)
	require.True(t, ok)
	require.Len(t, attachments, 2)
	// Order follows the front matter.
	assert.Equal(t, filepath.Join(rec.Dir, "b.pdf"), store.assets[0].Fields["title"][testLocale])
	assert.Equal(t, store.assets[0].Sys.ID, attachments[0].Sys.ID)
	assert.Equal(t, store.assets[1].Sys.ID, attachments[1].Sys.ID)

	author, ok := value("author").(cms.Link)
	require.True(t, ok)
	assert.Equal(t, cms.LinkTypeEntry, author.Sys.LinkType)

	categories, ok := value("category").([]cms.Link)
	require.True(t, ok)
	assert.Len(t, categories, 2)

	links, ok := value("links").([]cms.Link)
	require.True(t, ok)
	assert.Len(t, links, 2)

	assert.Equal(t, 3, store.calls["create_asset"])
	assert.Equal(t, 3, store.calls["publish_asset"])
	assert.Equal(t, 1, store.calls["create_entry:author"])
	assert.Equal(t, 2, store.calls["create_entry:category"])
	assert.Equal(t, 2, store.calls["create_entry:externalLink"])
	// Every reference target is published.
	assert.Equal(t, 5, store.calls["publish_entry"])
	assert.Zero(t, store.calls["create_entry:project"])

	authorEntry, err := store.findEntry(author.Sys.ID)
	require.NoError(t, err)
	assert.Equal(t, cms.Fields{"name": {testLocale: "Ann"}, "slug": {testLocale: "Ann"}}, authorEntry.Fields)
}

func TestTransform_DirectorySlugAndNoBody(t *testing.T) {
	types := []cms.ContentType{contentType("note",
		cms.Field{ID: "title", Type: cms.FieldSymbol},
		cms.Field{ID: "slug", Type: cms.FieldSymbol, Validations: uniqueRule()},
	)}
	engine := newTestEngine(newMemStore(types...))
	run := NewRun(NewSchemaIndex(types), nil)
	schema, _ := run.Schemas.Schema("note")

	fields, err := engine.Transform(context.Background(), run, source.Record{
		ContentType: "note",
		Slug:        "dirY",
		FrontMatter: map[string]any{"title": "Y"},
		Body:        "ignored",
	}, schema)
	require.NoError(t, err)

	assert.Equal(t, cms.Fields{
		"title": {testLocale: "Y"},
		"slug":  {testLocale: "dirY"},
	}, fields)
}

func TestTransform_InvalidDate(t *testing.T) {
	engine := newTestEngine(newMemStore(testTypes()...))
	run := NewRun(NewSchemaIndex(testTypes()), nil)
	schema, _ := run.Schemas.Schema("project")

	_, err := engine.Transform(context.Background(), run, source.Record{
		ContentType: "project",
		Slug:        "x",
		FrontMatter: map[string]any{"date": "someday"},
	}, schema)
	assert.ErrorContains(t, err, `field "date"`)
}

func TestTransform_InvalidLinks(t *testing.T) {
	engine := newTestEngine(newMemStore(testTypes()...))
	run := NewRun(NewSchemaIndex(testTypes()), nil)
	schema, _ := run.Schemas.Schema("project")

	_, err := engine.Transform(context.Background(), run, source.Record{
		ContentType: "project",
		Slug:        "x",
		FrontMatter: map[string]any{"links": []any{map[string]any{"title": "no url"}}},
	}, schema)
	assert.ErrorIs(t, err, ErrReference)
}

func TestTransform_MissingAssetFile(t *testing.T) {
	store := newMemStore(testTypes()...)
	engine := newTestEngine(store)
	run := NewRun(NewSchemaIndex(testTypes()), nil)
	schema, _ := run.Schemas.Schema("project")

	_, err := engine.Transform(context.Background(), run, source.Record{
		ContentType: "project",
		Slug:        "x",
		Dir:         t.TempDir(),
		FrontMatter: map[string]any{"cover": "missing.png"},
	}, schema)

	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "asset", refErr.Kind)
	assert.Zero(t, store.calls["create_asset"])
}
