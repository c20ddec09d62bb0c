package reconcile

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"content-sync/core/cms"
	"content-sync/core/source"

	"github.com/stretchr/testify/require"
)

const testLocale = "en-US"

// memStore is an in-memory remote store that records every call.
type memStore struct {
	mu sync.Mutex

	types   []cms.ContentType
	entries []*cms.Entry
	assets  []*cms.Asset
	uploads int
	seq     int
	calls   map[string]int

	// skipProcessing leaves asset files without a URL.
	skipProcessing bool
}

var _ cms.Client = (*memStore)(nil)

func newMemStore(types ...cms.ContentType) *memStore {
	return &memStore{types: types, calls: map[string]int{}}
}

func (s *memStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s%d", prefix, s.seq)
}

func copyEntry(e *cms.Entry) *cms.Entry {
	c := *e
	c.Fields = e.Fields.Clone()
	return &c
}

func copyAsset(a *cms.Asset) *cms.Asset {
	c := *a
	c.Fields = a.Fields.Clone()
	return &c
}

func (s *memStore) findEntry(id string) (*cms.Entry, error) {
	for _, e := range s.entries {
		if e.Sys.ID == id {
			return e, nil
		}
	}
	return nil, &cms.APIError{StatusCode: 404, Message: "entry " + id}
}

func (s *memStore) findAsset(id string) (*cms.Asset, error) {
	for _, a := range s.assets {
		if a.Sys.ID == id {
			return a, nil
		}
	}
	return nil, &cms.APIError{StatusCode: 404, Message: "asset " + id}
}

func (s *memStore) ContentTypes(ctx context.Context) ([]cms.ContentType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["content_types"]++
	return s.types, nil
}

func (s *memStore) Entries(ctx context.Context, q cms.Query) (*cms.EntryCollection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["entries"]++
	page := &cms.EntryCollection{Total: len(s.entries), Skip: q.Skip, Limit: q.Limit}
	for i := q.Skip; i < len(s.entries) && i < q.Skip+q.Limit; i++ {
		page.Items = append(page.Items, *copyEntry(s.entries[i]))
	}
	return page, nil
}

func (s *memStore) Assets(ctx context.Context, q cms.Query) (*cms.AssetCollection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["assets"]++
	page := &cms.AssetCollection{Total: len(s.assets), Skip: q.Skip, Limit: q.Limit}
	for i := q.Skip; i < len(s.assets) && i < q.Skip+q.Limit; i++ {
		page.Items = append(page.Items, *copyAsset(s.assets[i]))
	}
	return page, nil
}

func (s *memStore) CreateEntry(ctx context.Context, contentType string, fields cms.Fields) (*cms.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["create_entry"]++
	s.calls["create_entry:"+contentType]++
	link := cms.Link{Sys: cms.LinkSys{Type: "Link", LinkType: "ContentType", ID: contentType}}
	e := &cms.Entry{
		Sys:    cms.Sys{ID: s.nextID("e"), Version: 1, ContentType: &link},
		Fields: fields.Clone(),
	}
	s.entries = append(s.entries, e)
	return copyEntry(e), nil
}

func (s *memStore) UpdateEntry(ctx context.Context, entry *cms.Entry, fields cms.Fields) (*cms.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["update_entry"]++
	e, err := s.findEntry(entry.Sys.ID)
	if err != nil {
		return nil, err
	}
	if e.Sys.Version != entry.Sys.Version {
		return nil, &cms.APIError{StatusCode: 409, Sys: cms.ErrorSys{ID: "VersionMismatch"}}
	}
	e.Fields = fields.Clone()
	e.Sys.Version++
	return copyEntry(e), nil
}

func (s *memStore) PublishEntry(ctx context.Context, entry *cms.Entry) (*cms.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["publish_entry"]++
	e, err := s.findEntry(entry.Sys.ID)
	if err != nil {
		return nil, err
	}
	e.Sys.PublishedVersion = e.Sys.Version
	e.Sys.Version++
	return copyEntry(e), nil
}

func (s *memStore) UnpublishEntry(ctx context.Context, entry *cms.Entry) (*cms.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["unpublish_entry"]++
	e, err := s.findEntry(entry.Sys.ID)
	if err != nil {
		return nil, err
	}
	if e.Sys.PublishedVersion == 0 {
		return nil, &cms.APIError{StatusCode: 400, Message: "not published"}
	}
	e.Sys.PublishedVersion = 0
	e.Sys.Version++
	return copyEntry(e), nil
}

func (s *memStore) DeleteEntry(ctx context.Context, entry *cms.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["delete_entry"]++
	for i, e := range s.entries {
		if e.Sys.ID == entry.Sys.ID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return &cms.APIError{StatusCode: 404}
}

func (s *memStore) Upload(ctx context.Context, r io.Reader) (*cms.Upload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["upload"]++
	if _, err := io.ReadAll(r); err != nil {
		return nil, err
	}
	s.uploads++
	return &cms.Upload{Sys: cms.Sys{ID: s.nextID("u"), Type: "Upload"}}, nil
}

func (s *memStore) CreateAsset(ctx context.Context, fields cms.Fields) (*cms.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["create_asset"]++
	a := &cms.Asset{Sys: cms.Sys{ID: s.nextID("a"), Version: 1}, Fields: fields.Clone()}
	s.assets = append(s.assets, a)
	return copyAsset(a), nil
}

func (s *memStore) ProcessAsset(ctx context.Context, asset *cms.Asset, locale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["process_asset"]++
	a, err := s.findAsset(asset.Sys.ID)
	if err != nil {
		return err
	}
	if !s.skipProcessing {
		a.Fields["file"] = map[string]any{locale: map[string]any{"url": "//cdn.example/" + a.Sys.ID}}
	}
	a.Sys.Version++
	return nil
}

func (s *memStore) GetAsset(ctx context.Context, id string) (*cms.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["get_asset"]++
	a, err := s.findAsset(id)
	if err != nil {
		return nil, err
	}
	return copyAsset(a), nil
}

func (s *memStore) PublishAsset(ctx context.Context, asset *cms.Asset) (*cms.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["publish_asset"]++
	a, err := s.findAsset(asset.Sys.ID)
	if err != nil {
		return nil, err
	}
	a.Sys.PublishedVersion = a.Sys.Version
	a.Sys.Version++
	return copyAsset(a), nil
}

func uniqueRule() []cms.Validation {
	return []cms.Validation{{"unique": true}}
}

func linkField(id, linkType string) cms.Field {
	return cms.Field{ID: id, Type: cms.FieldLink, LinkType: linkType}
}

func linkListField(id, linkType string) cms.Field {
	return cms.Field{ID: id, Type: cms.FieldArray, Items: &cms.FieldItems{Type: cms.FieldLink, LinkType: linkType}}
}

func contentType(id string, fields ...cms.Field) cms.ContentType {
	return cms.ContentType{Sys: cms.Sys{ID: id, Type: "ContentType"}, Name: id, Fields: fields}
}

// testTypes returns a blog-like model: projects with every special field plus
// the author, category and externalLink reference types.
func testTypes() []cms.ContentType {
	return []cms.ContentType{
		contentType("project",
			cms.Field{ID: "title", Type: cms.FieldSymbol},
			cms.Field{ID: "slug", Type: cms.FieldSymbol, Validations: uniqueRule()},
			cms.Field{ID: "body", Type: cms.FieldText},
			cms.Field{ID: "summary", Type: cms.FieldText},
			cms.Field{ID: "date", Type: cms.FieldDate},
			cms.Field{ID: "tags", Type: cms.FieldArray, Items: &cms.FieldItems{Type: cms.FieldSymbol}},
			linkField("image", cms.LinkTypeAsset),
			linkField("cover", cms.LinkTypeAsset),
			linkListField("attachments", cms.LinkTypeAsset),
			linkField("author", cms.LinkTypeEntry),
			linkListField("category", cms.LinkTypeEntry),
			linkListField("links", cms.LinkTypeEntry),
		),
		contentType("author",
			cms.Field{ID: "name", Type: cms.FieldSymbol},
			cms.Field{ID: "slug", Type: cms.FieldSymbol, Validations: uniqueRule()},
		),
		contentType("category",
			cms.Field{ID: "title", Type: cms.FieldSymbol},
			cms.Field{ID: "slug", Type: cms.FieldSymbol, Validations: uniqueRule()},
		),
		contentType("externalLink",
			cms.Field{ID: "url", Type: cms.FieldSymbol, Validations: uniqueRule()},
			cms.Field{ID: "title", Type: cms.FieldSymbol},
		),
	}
}

// writeRecord creates a record directory holding the given files and returns
// the record pointing at it.
func writeRecord(t *testing.T, root, contentType, slug string, frontMatter map[string]any, body string, files ...string) source.Record {
	t.Helper()
	dir := filepath.Join(root, contentType+"s", slug)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("data:"+f), 0o644))
	}
	return source.Record{
		ContentType: contentType,
		Slug:        slug,
		Dir:         dir,
		Path:        filepath.Join(dir, "index.md"),
		FrontMatter: frontMatter,
		Body:        body,
	}
}

func newTestEngine(client cms.Client, opts ...func(*Config)) *Engine {
	cfg := Config{PageSize: 100, DefaultOffset: "+07:00", AssetPollAttempts: 3}
	for _, o := range opts {
		o(&cfg)
	}
	return NewEngine(client, cfg, testLocale, nil)
}
