// Package reconcile synchronizes local content records with the entries and
// assets of a remote content store.
//
// A sync run has two phases. The prefix phase is read-only: content type
// definitions are loaded into a SchemaIndex, then the full entry and asset
// listings are paged in and turned into an IdentityIndex and a seeded Cache.
// Both live on a Run, which is created once per sync and passed explicitly to
// every operation.
//
// The mutation phase processes one record at a time:
//
//  1. Transform turns a source.Record into a remote field map. It seeds the
//     body, copies front matter, applies slug precedence, strips transient keys,
//     normalizes dates and resolves references.
//  2. ResolveAsset, ResolveLink and ResolveRelated are get-or-create lookups.
//     Each cache key leads to at most one remote creation per run. Every
//     created reference target is published immediately.
//  3. Reconcile matches the record against the IdentityIndex through the
//     schema's unique field. A match is updated through Merge, otherwise the
//     entry is created. Publishing follows ShouldPublish.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(client, cfg.Sync, cfg.Contentful.Locale, logger)
//	run, err := engine.Prepare(ctx)
//	if err != nil {
//	    return err
//	}
//	for rec, err := range walker.Records(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    if _, err := engine.Sync(ctx, run, rec); err != nil {
//	        return err
//	    }
//	}
//	fmt.Println(run.Summary)
//
// With Config.DryRun set no mutation is issued. References receive
// placeholder ids of the form "dry-run:<kind>:<key>" and the Summary counts
// what would have happened.
package reconcile
