package reconcile

import (
	"fmt"

	"content-sync/core/cms"
)

// FieldRole says how the transformer treats a front-matter key.
type FieldRole int

const (
	// RolePassThrough copies the value as is.
	RolePassThrough FieldRole = iota
	// RoleBody is the long-text field seeded from the document body.
	RoleBody
	// RoleSlug is the slug field, filled by slug precedence.
	RoleSlug
	// RoleDate is rewritten to an epoch-millisecond timestamp.
	RoleDate
	// RoleAsset is a single asset link built from a file name.
	RoleAsset
	// RoleAssetList is an ordered list of asset links.
	RoleAssetList
	// RoleAuthor is a single link to an author entry.
	RoleAuthor
	// RoleCategory is a list of links to category entries.
	RoleCategory
	// RoleLinks is a list of links to external link entries.
	RoleLinks
)

func (r FieldRole) String() string {
	switch r {
	case RolePassThrough:
		return "pass-through"
	case RoleBody:
		return "body"
	case RoleSlug:
		return "slug"
	case RoleDate:
		return "date"
	case RoleAsset:
		return "asset"
	case RoleAssetList:
		return "asset-list"
	case RoleAuthor:
		return "author"
	case RoleCategory:
		return "category"
	case RoleLinks:
		return "links"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Content types and field ids with fixed meaning.
const (
	AuthorType       = "author"
	CategoryType     = "category"
	ExternalLinkType = "externalLink"

	slugField   = "slug"
	statusField = "status"
)

// specialFields are the front-matter keys resolved into references.
var specialFields = map[string]FieldRole{
	"image":       RoleAsset,
	"cover":       RoleAsset,
	"attachments": RoleAssetList,
	"author":      RoleAuthor,
	"category":    RoleCategory,
	"links":       RoleLinks,
}

// identifierFields are raw identifiers replaced by the slug field.
var identifierFields = []string{"post_name", "post_id", "postId"}

// FieldMap is the schema-driven mapping table of a content type: every field
// the remote type declares gets a role, front-matter keys outside the table
// are dropped, and Ignored keys are never copied.
type FieldMap struct {
	ContentType string

	// Body is the id of the body field, empty when the type has none.
	Body string

	// Slug is the id of the slug field, empty when the type has none.
	Slug string

	// Roles holds the role of every declared field.
	Roles map[string]FieldRole

	// Ignored holds front-matter keys consumed elsewhere.
	Ignored map[string]struct{}
}

// Role returns the role of a front-matter key. ok is false when the key is
// ignored or not declared by the remote type.
func (m *FieldMap) Role(key string) (FieldRole, bool) {
	if _, ignored := m.Ignored[key]; ignored {
		return 0, false
	}
	role, ok := m.Roles[key]
	return role, ok
}

// IsSpecial reports whether the role produces reference links.
func (r FieldRole) IsSpecial() bool {
	return r >= RoleAsset
}

func buildFieldMap(s *Schema) (*FieldMap, error) {
	m := &FieldMap{
		ContentType: s.ID,
		Roles:       make(map[string]FieldRole, len(s.Fields)),
		Ignored:     map[string]struct{}{statusField: {}},
	}

	if body, ok := s.BodyField(); ok {
		m.Body = body.ID
	}

	for _, f := range s.Fields {
		if f.Disabled || f.Omitted {
			continue
		}

		role := RolePassThrough
		switch {
		case f.ID == m.Body:
			role = RoleBody
		case f.ID == slugField:
			role = RoleSlug
			m.Slug = f.ID
		case f.Type == cms.FieldDate:
			role = RoleDate
		}
		if special, ok := specialFields[f.ID]; ok {
			if err := checkSpecial(s.ID, f, special); err != nil {
				return nil, err
			}
			role = special
		}
		m.Roles[f.ID] = role
	}

	if m.Slug != "" {
		for _, id := range identifierFields {
			m.Ignored[id] = struct{}{}
		}
	}

	return m, nil
}

// checkSpecial validates that a reference field has the shape its role emits.
func checkSpecial(contentType string, f cms.Field, role FieldRole) error {
	var wantArray bool
	var linkType string
	switch role {
	case RoleAsset:
		linkType = cms.LinkTypeAsset
	case RoleAssetList:
		wantArray, linkType = true, cms.LinkTypeAsset
	case RoleAuthor:
		linkType = cms.LinkTypeEntry
	case RoleCategory, RoleLinks:
		wantArray, linkType = true, cms.LinkTypeEntry
	}

	gotType, gotLink := f.Type, f.LinkType
	if f.Type == cms.FieldArray && f.Items != nil {
		gotType, gotLink = f.Items.Type, f.Items.LinkType
	}

	if (f.Type == cms.FieldArray) != wantArray || gotType != cms.FieldLink || gotLink != linkType {
		shape := "Link<" + linkType + ">"
		if wantArray {
			shape = "Array<" + shape + ">"
		}
		return &SchemaError{
			ContentType: contentType,
			Reason:      fmt.Sprintf("field %q must be %s for %s references", f.ID, shape, role),
		}
	}
	return nil
}
