package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParseDocument(t *testing.T) {
	t.Run("FrontMatterAndBody", func(t *testing.T) {
		doc, err := ParseDocument([]byte("---\ntitle: Hello\ncategory:\n  - go\n  - cms\nlinks:\n  - url: https://example.com\n    title: Example\n---\n\n# Body\n"))
		require.NoError(t, err)
		assert.Equal(t, "Hello", doc.FrontMatter["title"])
		assert.Len(t, doc.FrontMatter["category"], 2)
		assert.Equal(t, "# Body\n", doc.Body)

		links, ok := doc.FrontMatter["links"].([]any)
		require.True(t, ok)
		require.Len(t, links, 1)
	})

	t.Run("NoFrontMatter", func(t *testing.T) {
		doc, err := ParseDocument([]byte("just text\n"))
		require.NoError(t, err)
		assert.Empty(t, doc.FrontMatter)
		assert.Equal(t, "just text\n", doc.Body)
	})

	t.Run("EmptyFrontMatter", func(t *testing.T) {
		doc, err := ParseDocument([]byte("---\n---\nbody"))
		require.NoError(t, err)
		assert.Empty(t, doc.FrontMatter)
		assert.Equal(t, "body", doc.Body)
	})

	t.Run("CRLF", func(t *testing.T) {
		doc, err := ParseDocument([]byte("---\r\ntitle: Win\r\n---\r\nbody\r\n"))
		require.NoError(t, err)
		assert.Equal(t, "Win", doc.FrontMatter["title"])
		assert.Equal(t, "body\n", doc.Body)
	})

	t.Run("Unterminated", func(t *testing.T) {
		_, err := ParseDocument([]byte("---\ntitle: Oops\n"))
		assert.ErrorIs(t, err, ErrUnterminatedFrontMatter)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		_, err := ParseDocument([]byte("---\ntitle: [unclosed\n---\n"))
		assert.Error(t, err)
	})
}

func TestContentTypeFromDir(t *testing.T) {
	assert.Equal(t, "project", ContentTypeFromDir("projects"))
	assert.Equal(t, "presentation", ContentTypeFromDir("presentations"))
	assert.Equal(t, "news", ContentTypeFromDir("newss"))
	assert.Equal(t, "data", ContentTypeFromDir("data"))
}

func TestWalker_Records(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "projects", "beta", "index.md"), "---\ntitle: Beta\n---\nB")
	writeFile(t, filepath.Join(root, "projects", "alpha", "index.md"), "---\ntitle: Alpha\n---\nA")
	// Directory holding only assets is skipped.
	writeFile(t, filepath.Join(root, "projects", "images", "photo.jpg"), "jpg")
	// Loose files next to record directories are ignored.
	writeFile(t, filepath.Join(root, "projects", "README.md"), "readme")
	writeFile(t, filepath.Join(root, "posts", "first", "index.md"), "---\ntitle: First\n---\n")

	w, err := NewWalker(Config{Root: root}, nil)
	require.NoError(t, err)

	var got []string
	for rec, err := range w.Records(context.Background()) {
		require.NoError(t, err)
		got = append(got, rec.ContentType+"/"+rec.Slug)
		assert.Equal(t, filepath.Join(root, rec.ContentType+"s", rec.Slug), rec.Dir)
	}

	assert.Equal(t, []string{"post/first", "project/alpha", "project/beta"}, got)
}

func TestWalker_TypeFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "projects", "a", "index.md"), "---\ntitle: A\n---\n")
	writeFile(t, filepath.Join(root, "posts", "b", "index.md"), "---\ntitle: B\n---\n")
	writeFile(t, filepath.Join(root, "presentations", "c", "index.md"), "---\ntitle: C\n---\n")

	w, err := NewWalker(Config{Root: root, Types: []string{"pr*"}}, nil)
	require.NoError(t, err)

	dirs, err := w.TypeDirs()
	require.NoError(t, err)
	assert.Equal(t, []string{"presentations", "projects"}, dirs)
}

func TestWalker_InvalidPattern(t *testing.T) {
	_, err := NewWalker(Config{Root: t.TempDir(), Types: []string{"[abc"}}, nil)
	assert.Error(t, err)
}

func TestWalker_MissingRoot(t *testing.T) {
	w, err := NewWalker(Config{Root: filepath.Join(t.TempDir(), "nope")}, nil)
	require.NoError(t, err)

	for _, err := range w.Records(context.Background()) {
		assert.Error(t, err)
	}
}

func TestWalker_ParseErrorStopsIteration(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "projects", "a", "index.md"), "---\ntitle: [bad\n---\n")
	writeFile(t, filepath.Join(root, "projects", "b", "index.md"), "---\ntitle: B\n---\n")

	w, err := NewWalker(Config{Root: root}, nil)
	require.NoError(t, err)

	var errs int
	var recs int
	for _, err := range w.Records(context.Background()) {
		if err != nil {
			errs++
			continue
		}
		recs++
	}
	assert.Equal(t, 1, errs)
	assert.Equal(t, 0, recs)
}
