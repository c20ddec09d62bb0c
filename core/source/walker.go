package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// Record is one local content record discovered in the source tree.
type Record struct {
	// ContentType is the content type id, derived from the plural directory name.
	ContentType string
	// Slug is the name of the record directory, used as the fallback slug.
	Slug string
	// Dir is the path of the record directory; referenced files resolve against it.
	Dir string
	// Path is the path of the source document.
	Path string
	// FrontMatter is the parsed key/value header of the document.
	FrontMatter map[string]any
	// Body is the document text after the front matter.
	Body string
}

// Walker enumerates records under a content root.
type Walker struct {
	cfg    Config
	logger *zap.Logger
}

// NewWalker creates a walker for the given tree.
func NewWalker(cfg Config, logger *zap.Logger) (*Walker, error) {
	if cfg.Document == "" {
		cfg.Document = "index.md"
	}
	if len(cfg.Types) == 0 {
		cfg.Types = []string{"*"}
	}
	for _, pattern := range cfg.Types {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid content type pattern %q", pattern)
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{cfg: cfg, logger: logger}, nil
}

// ContentTypeFromDir derives the content type id from a plural directory name
// by stripping one trailing "s".
func ContentTypeFromDir(name string) string {
	return strings.TrimSuffix(name, "s")
}

// TypeDirs returns the content-type directory names selected by the configured
// patterns, in file-system order.
func (w *Walker) TypeDirs() ([]string, error) {
	entries, err := os.ReadDir(w.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("reading content root %s: %w", w.cfg.Root, err)
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if w.selected(e.Name()) {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}

func (w *Walker) selected(name string) bool {
	for _, pattern := range w.cfg.Types {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Records yields every record lazily: content-type directories in order, then
// record directories in order. A record directory without the source document is
// skipped. Iteration stops after the first error is yielded.
func (w *Walker) Records(ctx context.Context) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		typeDirs, err := w.TypeDirs()
		if err != nil {
			yield(Record{}, err)
			return
		}

		for _, typeDir := range typeDirs {
			typePath := filepath.Join(w.cfg.Root, typeDir)
			entries, err := os.ReadDir(typePath)
			if err != nil {
				yield(Record{}, fmt.Errorf("reading %s: %w", typePath, err))
				return
			}

			for _, e := range entries {
				if err := ctx.Err(); err != nil {
					yield(Record{}, err)
					return
				}
				if !e.IsDir() {
					continue
				}

				rec, ok, err := w.load(typeDir, e.Name())
				if err != nil {
					yield(Record{}, err)
					return
				}
				if !ok {
					continue
				}
				if !yield(rec, nil) {
					return
				}
			}
		}
	}
}

func (w *Walker) load(typeDir, name string) (Record, bool, error) {
	dir := filepath.Join(w.cfg.Root, typeDir, name)
	path := filepath.Join(dir, w.cfg.Document)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		w.logger.Debug("No source document, skipping", zap.String("dir", dir))
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return Record{}, false, fmt.Errorf("%s: %w", path, err)
	}

	return Record{
		ContentType: ContentTypeFromDir(typeDir),
		Slug:        name,
		Dir:         dir,
		Path:        path,
		FrontMatter: doc.FrontMatter,
		Body:        doc.Body,
	}, true, nil
}
