// Package source reads the local content tree.
//
// The expected layout is a root directory holding one subdirectory per content
// type (plural name, e.g. "projects"), each holding one subdirectory per record
// with a front-matter-delimited document (index.md by default):
//
//	content/
//	  projects/
//	    my-project/
//	      index.md
//	      cover.png
//
// Walker.Records yields records lazily in file-system order. Directories that
// hold no source document are skipped silently. ParseDocument splits a document
// into its YAML front matter (decoded with goccy/go-yaml) and body text.
package source
