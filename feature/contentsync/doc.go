// Package contentsync orchestrates complete runs against the remote store.
//
// A sync run loads the remote state once, then walks the local content tree
// and reconciles every record in order, stopping at the first error. A
// delete-all run unpublishes and deletes every entry of the environment.
// Reconciled records are written to the journal when one is configured.
//
// # HTTP
//
// The Feature exposes the service on the server:
//
//	POST /sync[?dry_run=true]   run a sync and return its report
//	GET  /sync/runs/:id         list the journal entries of a run
//	GET  /schema                list content types with identity and body fields
//
// Concurrent POST /sync requests for the same mode are collapsed into a
// single run and share its report.
package contentsync
