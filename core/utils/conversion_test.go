package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "hello", "hello"},
		{"Bytes", []byte("raw"), "raw"},
		{"WholeFloat", float64(12), "12"},
		{"Float", 1.5, "1.5"},
		{"Int", 42, "42"},
		{"Uint64", uint64(7), "7"},
		{"Time", time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC), "2021-03-01T10:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestToStringSlice(t *testing.T) {
	assert.Nil(t, ToStringSlice(nil))
	assert.Equal(t, []string{"go"}, ToStringSlice("go"))
	assert.Equal(t, []string{"go", "rust"}, ToStringSlice([]any{"go", "", "rust"}))
	assert.Equal(t, []string{"a", "b"}, ToStringSlice([]string{"a", "b"}))
}

func TestToMap(t *testing.T) {
	m, ok := ToMap(map[string]any{"url": "https://example.com"})
	assert.True(t, ok)
	assert.Equal(t, "https://example.com", m["url"])

	m, ok = ToMap(map[any]any{"title": "Docs", 1: "one"})
	assert.True(t, ok)
	assert.Equal(t, "Docs", m["title"])
	assert.Equal(t, "one", m["1"])

	_, ok = ToMap("not a map")
	assert.False(t, ok)
}
