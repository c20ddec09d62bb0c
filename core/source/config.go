package source

// Config holds configuration for the local content tree.
type Config struct {
	// Root is the content directory holding one subdirectory per content type.
	Root string `mapstructure:"root" default:"content"`
	// Document is the file name of the source document inside each record directory.
	Document string `mapstructure:"document" default:"index.md"`
	// Types lists glob patterns matched against content-type directory names.
	Types []string `mapstructure:"types" default:"*"`
}
