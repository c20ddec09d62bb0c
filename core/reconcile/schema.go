package reconcile

import (
	"context"
	"fmt"
	"sort"

	"content-sync/core/cms"
)

// Schema is one content type definition with its derived field table.
type Schema struct {
	ID     string
	Fields []cms.Field

	byID     map[string]cms.Field
	fieldMap *FieldMap
	mapErr   error
}

// NewSchema indexes a content type definition.
func NewSchema(ct cms.ContentType) *Schema {
	s := &Schema{
		ID:     ct.Sys.ID,
		Fields: ct.Fields,
		byID:   make(map[string]cms.Field, len(ct.Fields)),
	}
	for _, f := range ct.Fields {
		s.byID[f.ID] = f
	}
	s.fieldMap, s.mapErr = buildFieldMap(s)
	return s
}

// Field returns a field descriptor by id.
func (s *Schema) Field(id string) (cms.Field, bool) {
	f, ok := s.byID[id]
	return f, ok
}

// UniqueField returns the single field declaring a unique validation.
// Zero or several such fields is a SchemaError.
func (s *Schema) UniqueField() (cms.Field, error) {
	var found []cms.Field
	for _, f := range s.Fields {
		if f.Unique() {
			found = append(found, f)
		}
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return cms.Field{}, &SchemaError{ContentType: s.ID, Reason: "no field declares a unique validation"}
	default:
		ids := make([]string, len(found))
		for i, f := range found {
			ids[i] = f.ID
		}
		return cms.Field{}, &SchemaError{ContentType: s.ID, Reason: fmt.Sprintf("several fields declare a unique validation: %v", ids)}
	}
}

// BodyField returns the first long-text field. Types without one have no body.
func (s *Schema) BodyField() (cms.Field, bool) {
	for _, f := range s.Fields {
		if f.Type == cms.FieldText {
			return f, true
		}
	}
	return cms.Field{}, false
}

// FieldMap returns the field table used by the transformer, or the SchemaError
// found while validating it.
func (s *Schema) FieldMap() (*FieldMap, error) {
	return s.fieldMap, s.mapErr
}

// SchemaIndex holds every content type of the environment. It is read-only
// once loaded.
type SchemaIndex struct {
	schemas map[string]*Schema
}

// NewSchemaIndex builds an index from content type definitions.
func NewSchemaIndex(types []cms.ContentType) *SchemaIndex {
	idx := &SchemaIndex{schemas: make(map[string]*Schema, len(types))}
	for _, ct := range types {
		idx.schemas[ct.Sys.ID] = NewSchema(ct)
	}
	return idx
}

// LoadSchemas fetches all content type definitions.
func LoadSchemas(ctx context.Context, client cms.Client) (*SchemaIndex, error) {
	types, err := client.ContentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading content types: %w", err)
	}
	return NewSchemaIndex(types), nil
}

// Lookup returns the schema of a content type.
func (x *SchemaIndex) Lookup(contentType string) (*Schema, bool) {
	s, ok := x.schemas[contentType]
	return s, ok
}

// Schema returns the schema of a content type, or a SchemaError when the type
// is unknown to the remote store.
func (x *SchemaIndex) Schema(contentType string) (*Schema, error) {
	s, ok := x.schemas[contentType]
	if !ok {
		return nil, &SchemaError{ContentType: contentType, Reason: "unknown content type"}
	}
	return s, nil
}

// UniqueField returns the identity field of a content type.
func (x *SchemaIndex) UniqueField(contentType string) (cms.Field, error) {
	s, err := x.Schema(contentType)
	if err != nil {
		return cms.Field{}, err
	}
	return s.UniqueField()
}

// BodyField returns the body field of a content type, if any.
func (x *SchemaIndex) BodyField(contentType string) (cms.Field, bool) {
	s, ok := x.schemas[contentType]
	if !ok {
		return cms.Field{}, false
	}
	return s.BodyField()
}

// FieldMap returns the validated field table of a content type.
func (x *SchemaIndex) FieldMap(contentType string) (*FieldMap, error) {
	s, err := x.Schema(contentType)
	if err != nil {
		return nil, err
	}
	return s.FieldMap()
}

// Types returns the sorted content type ids.
func (x *SchemaIndex) Types() []string {
	ids := make([]string, 0, len(x.schemas))
	for id := range x.schemas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
