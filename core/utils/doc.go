// Package utils provides small value conversion helpers shared by the reconcile
// engine and the source loader. Front-matter values arrive as loosely typed YAML
// (strings, numbers, lists, nested mappings); these helpers turn them into the
// shapes the engine needs without panicking on unexpected input.
package utils
