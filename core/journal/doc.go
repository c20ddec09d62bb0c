// Package journal keeps an audit trail of sync runs.
//
// Every record the reconciler creates or updates is appended to the
// sync_journal table together with the run id, so operators can see what a
// run changed. The journal is optional: without a database the Nop journal
// is used and nothing is stored.
package journal
