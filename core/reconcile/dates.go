package reconcile

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// zoneSuffix matches a trailing Zulu marker or numeric offset of a time part.
var zoneSuffix = regexp.MustCompile(`(?:[Zz]|[+-]\d{2}:?\d{2})$`)

// spacedZone matches whitespace between the time and a trailing zone, as in
// "2011-06-16 23:36:56 -0700".
var spacedZone = regexp.MustCompile(`\s+([Zz]|[+-]\d{2}:?\d{2})$`)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z0700",
}

// NormalizeDate converts a date value to epoch milliseconds. Values without a
// zone marker are read in defaultOffset (e.g. "+07:00"); date-only values start
// at midnight.
func NormalizeDate(value any, defaultOffset string) (int64, error) {
	switch v := value.(type) {
	case time.Time:
		return v.UnixMilli(), nil
	case string:
		return parseDate(v, defaultOffset)
	default:
		return 0, fmt.Errorf("unsupported date value %v (%T)", value, value)
	}
}

func parseDate(value, defaultOffset string) (int64, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, fmt.Errorf("empty date")
	}

	sep := strings.IndexAny(s, "Tt ")
	if sep < 0 {
		s += "T00:00:00"
	} else {
		s = s[:sep] + "T" + spacedZone.ReplaceAllString(s[sep+1:], "$1")
	}

	if !HasZone(s) {
		s += defaultOffset
	}
	if strings.HasSuffix(s, "z") {
		s = s[:len(s)-1] + "Z"
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, fmt.Errorf("unrecognized date %q", value)
}

// HasZone reports whether the time part of a date string carries an explicit
// zone. The date part is ignored so "2021-03-01" is not read as an offset.
func HasZone(value string) bool {
	sep := strings.IndexAny(value, "Tt ")
	if sep < 0 {
		return false
	}
	return zoneSuffix.MatchString(value[sep+1:])
}
