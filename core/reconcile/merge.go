package reconcile

import (
	"maps"

	"content-sync/core/cms"
	"content-sync/core/utils"
)

// Merge overlays incoming onto existing and returns a new field map. Values
// are overwritten per field and locale; fields absent from incoming keep their
// existing value. Neither argument is modified.
func Merge(existing, incoming cms.Fields) cms.Fields {
	out := existing.Clone()
	for id, byLocale := range incoming {
		if out[id] == nil {
			out[id] = maps.Clone(byLocale)
			continue
		}
		for locale, v := range byLocale {
			out[id][locale] = v
		}
	}
	return out
}

// ShouldPublish applies the publish policy: an explicit status publishes only
// when it equals "publish"; no status always publishes.
func ShouldPublish(frontMatter map[string]any) bool {
	status := utils.ToString(frontMatter[statusField])
	if status == "" {
		return true
	}
	return status == "publish"
}

// IdentityKey returns the value a record is matched by: the raw front-matter
// value of the unique field, or the transformed value when the front matter
// leaves it out (e.g. a slug taken from the directory name).
func IdentityKey(frontMatter map[string]any, fields cms.Fields, uniqueField, locale string) string {
	if key := utils.ToString(frontMatter[uniqueField]); key != "" {
		return key
	}
	v, _ := fields.Value(uniqueField, locale)
	return utils.ToString(v)
}
