package cms

import "maps"

// Field value kinds used by content type definitions.
const (
	FieldSymbol   = "Symbol"
	FieldText     = "Text"
	FieldRichText = "RichText"
	FieldInteger  = "Integer"
	FieldNumber   = "Number"
	FieldDate     = "Date"
	FieldBoolean  = "Boolean"
	FieldObject   = "Object"
	FieldLink     = "Link"
	FieldArray    = "Array"
)

// Link target kinds.
const (
	LinkTypeAsset  = "Asset"
	LinkTypeEntry  = "Entry"
	LinkTypeUpload = "Upload"
)

// Fields is the remote field encoding: field id -> locale tag -> value.
type Fields map[string]map[string]any

// Value returns the value of a field under the given locale.
func (f Fields) Value(field, locale string) (any, bool) {
	byLocale, ok := f[field]
	if !ok {
		return nil, false
	}
	v, ok := byLocale[locale]
	return v, ok
}

// Clone returns a copy of the field map. Locale maps are copied one level deep;
// the values themselves are shared.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for id, byLocale := range f {
		out[id] = maps.Clone(byLocale)
	}
	return out
}

// Sys is the system metadata block attached to every remote object.
type Sys struct {
	ID               string `json:"id"`
	Type             string `json:"type,omitempty"`
	Version          int    `json:"version,omitempty"`
	PublishedVersion int    `json:"publishedVersion,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
	ContentType      *Link  `json:"contentType,omitempty"`
}

// LinkSys is the body of a typed link value.
type LinkSys struct {
	Type     string `json:"type"`
	LinkType string `json:"linkType"`
	ID       string `json:"id"`
}

// Link is a typed pointer to another remote object.
type Link struct {
	Sys LinkSys `json:"sys"`
}

// NewLink builds a link value of the given kind.
func NewLink(linkType, id string) Link {
	return Link{Sys: LinkSys{Type: "Link", LinkType: linkType, ID: id}}
}

// Entry is a remote record of a given content type.
type Entry struct {
	Sys    Sys    `json:"sys"`
	Fields Fields `json:"fields"`
}

// ContentTypeID returns the id of the entry's content type.
func (e *Entry) ContentTypeID() string {
	if e.Sys.ContentType == nil {
		return ""
	}
	return e.Sys.ContentType.Sys.ID
}

// Asset is a remote media object.
type Asset struct {
	Sys    Sys    `json:"sys"`
	Fields Fields `json:"fields"`
}

// AssetFile is the value of an asset's "file" field.
type AssetFile struct {
	ContentType string `json:"contentType"`
	FileName    string `json:"fileName"`
	UploadFrom  *Link  `json:"uploadFrom,omitempty"`
	Upload      string `json:"upload,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Upload is a staged binary accepted by the upload endpoint.
type Upload struct {
	Sys Sys `json:"sys"`
}

// Validation is a single validation rule of a field, e.g. {"unique": true}.
type Validation map[string]any

// Unique reports whether the rule demands unique values.
func (v Validation) Unique() bool {
	u, ok := v["unique"].(bool)
	return ok && u
}

// FieldItems describes the element type of an Array field.
type FieldItems struct {
	Type        string       `json:"type"`
	LinkType    string       `json:"linkType,omitempty"`
	Validations []Validation `json:"validations,omitempty"`
}

// Field is a field descriptor of a content type.
type Field struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	LinkType    string       `json:"linkType,omitempty"`
	Items       *FieldItems  `json:"items,omitempty"`
	Validations []Validation `json:"validations,omitempty"`
	Required    bool         `json:"required,omitempty"`
	Localized   bool         `json:"localized,omitempty"`
	Disabled    bool         `json:"disabled,omitempty"`
	Omitted     bool         `json:"omitted,omitempty"`
}

// Unique reports whether any of the field's validations demands unique values.
func (f Field) Unique() bool {
	for _, v := range f.Validations {
		if v.Unique() {
			return true
		}
	}
	return false
}

// ContentType is a content-type definition.
type ContentType struct {
	Sys          Sys     `json:"sys"`
	Name         string  `json:"name"`
	DisplayField string  `json:"displayField,omitempty"`
	Fields       []Field `json:"fields"`
}

// Query is a page request against a collection endpoint.
type Query struct {
	Skip  int
	Limit int
	// Order is a sort expression such as "sys.createdAt".
	Order string
}

// EntryCollection is one page of entries.
type EntryCollection struct {
	Total int     `json:"total"`
	Skip  int     `json:"skip"`
	Limit int     `json:"limit"`
	Items []Entry `json:"items"`
}

// AssetCollection is one page of assets.
type AssetCollection struct {
	Total int     `json:"total"`
	Skip  int     `json:"skip"`
	Limit int     `json:"limit"`
	Items []Asset `json:"items"`
}

// ContentTypeCollection is one page of content types.
type ContentTypeCollection struct {
	Total int           `json:"total"`
	Items []ContentType `json:"items"`
}
