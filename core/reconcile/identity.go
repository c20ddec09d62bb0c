package reconcile

import "content-sync/core/cms"

type identityKey struct {
	contentType string
	value       string
}

// IdentityIndex maps (content type, unique value) to the remote entry holding
// that value. It decides whether a record already exists remotely.
type IdentityIndex struct {
	entries map[identityKey]*cms.Entry
}

// NewIdentityIndex creates an empty index.
func NewIdentityIndex() *IdentityIndex {
	return &IdentityIndex{entries: make(map[identityKey]*cms.Entry)}
}

// Lookup returns the entry stored under the key.
func (x *IdentityIndex) Lookup(contentType, value string) (*cms.Entry, bool) {
	e, ok := x.entries[identityKey{contentType, value}]
	return e, ok
}

// Store records the latest known state of an entry under the key.
func (x *IdentityIndex) Store(contentType, value string, entry *cms.Entry) {
	x.entries[identityKey{contentType, value}] = entry
}

// Len returns the number of indexed entries.
func (x *IdentityIndex) Len() int {
	return len(x.entries)
}
