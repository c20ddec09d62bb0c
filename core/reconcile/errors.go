package reconcile

import (
	"errors"
	"fmt"

	"content-sync/core/cms"
)

var (
	// ErrSchema indicates a content type definition that cannot be synced.
	ErrSchema = errors.New("schema error")

	// ErrRemoteCreate indicates that creating a remote entry failed.
	ErrRemoteCreate = errors.New("remote create failed")

	// ErrRemoteUpdate indicates that updating or publishing a remote entry failed.
	ErrRemoteUpdate = errors.New("remote update failed")

	// ErrReference indicates that a reference could not be resolved.
	ErrReference = errors.New("reference resolution failed")

	// ErrDelete indicates that deleting a remote entry failed.
	ErrDelete = errors.New("remote delete failed")
)

// SchemaError reports a content type that lacks what reconciliation needs.
type SchemaError struct {
	ContentType string
	Reason      string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("content type %q: %s", e.ContentType, e.Reason)
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// RemoteCreateError wraps a failed entry creation with the field map that was sent.
type RemoteCreateError struct {
	ContentType string
	Key         string
	Fields      cms.Fields
	Err         error
}

func (e *RemoteCreateError) Error() string {
	return fmt.Sprintf("creating %s entry %q: %v", e.ContentType, e.Key, e.Err)
}

func (e *RemoteCreateError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RemoteCreateError) Is(target error) bool {
	return target == ErrRemoteCreate
}

// RemoteUpdateError wraps a failed update or publish call.
type RemoteUpdateError struct {
	ContentType string
	Key         string
	EntryID     string
	// Op is "update" or "publish".
	Op     string
	Fields cms.Fields
	Err    error
}

func (e *RemoteUpdateError) Error() string {
	return fmt.Sprintf("%s of %s entry %q (%s): %v", e.Op, e.ContentType, e.Key, e.EntryID, e.Err)
}

func (e *RemoteUpdateError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RemoteUpdateError) Is(target error) bool {
	return target == ErrRemoteUpdate
}

// ReferenceError wraps a failed get-or-create of a reference target.
type ReferenceError struct {
	// Kind is "asset", "link" or "related".
	Kind        string
	ContentType string
	Key         string
	Fields      map[string]any
	Err         error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("resolving %s %s %q: %v", e.Kind, e.ContentType, e.Key, e.Err)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// DeleteError wraps a failed entry deletion in delete-all mode.
type DeleteError struct {
	EntryID     string
	ContentType string
	Err         error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("deleting %s entry %s: %v", e.ContentType, e.EntryID, e.Err)
}

func (e *DeleteError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DeleteError) Is(target error) bool {
	return target == ErrDelete
}
