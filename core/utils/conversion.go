package utils

import (
	"fmt"
	"strconv"
	"time"
)

// ToString converts a front-matter value to its string form.
// Nil becomes the empty string; floats that hold whole numbers drop the fraction
// so that `id: 12` decoded as 12.0 still keys as "12".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return ToString(float64(v))
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToStringSlice normalizes a scalar-or-list value into a list of strings.
// Empty strings are dropped.
func ToStringSlice(val any) []string {
	var out []string
	switch v := val.(type) {
	case nil:
		return nil
	case []string:
		for _, s := range v {
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range v {
			if s := ToString(item); s != "" {
				out = append(out, s)
			}
		}
	default:
		if s := ToString(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ToMap converts a decoded YAML mapping into map[string]any.
// It returns false when the value is not a mapping.
func ToMap(val any) (map[string]any, bool) {
	switch v := val.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[ToString(k)] = item
		}
		return out, true
	default:
		return nil, false
	}
}
