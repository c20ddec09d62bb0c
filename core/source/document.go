package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

const delimiter = "---"

// ErrUnterminatedFrontMatter is returned when the opening delimiter has no match.
var ErrUnterminatedFrontMatter = errors.New("front matter is not terminated")

// Document is a parsed source document: front matter plus body text.
type Document struct {
	FrontMatter map[string]any
	Body        string
}

// ParseDocument splits a front-matter-delimited text document.
// A document without a leading "---" line has empty front matter and the whole
// text as body.
func ParseDocument(data []byte) (Document, error) {
	text := strings.TrimPrefix(string(data), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.SplitAfter(text, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t\n") != delimiter {
		return Document{FrontMatter: map[string]any{}, Body: text}, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t\n") == delimiter {
			end = i
			break
		}
	}
	if end < 0 {
		return Document{}, ErrUnterminatedFrontMatter
	}

	header := strings.Join(lines[1:end], "")
	body := strings.Join(lines[end+1:], "")

	fm := map[string]any{}
	if strings.TrimSpace(header) != "" {
		if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
			return Document{}, fmt.Errorf("parsing front matter: %w", err)
		}
		if fm == nil {
			fm = map[string]any{}
		}
	}

	return Document{FrontMatter: fm, Body: strings.TrimLeft(body, "\n")}, nil
}
