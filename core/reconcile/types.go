package reconcile

import "fmt"

// Config controls reconciliation behaviour.
type Config struct {
	// PageSize is the number of entries requested per listing page.
	PageSize int `mapstructure:"page_size" default:"100"`

	// DefaultOffset is appended to date values that carry no zone marker.
	DefaultOffset string `mapstructure:"default_offset" default:"+07:00"`

	// DryRun prevents every remote mutation if true.
	DryRun bool `mapstructure:"dry_run" default:"false"`

	// DeleteAll switches the run to bulk unpublish+delete of all entries.
	DeleteAll bool `mapstructure:"delete_all" default:"false"`

	// AssetPollAttempts bounds how often a processed asset is re-fetched
	// while waiting for its file URL.
	AssetPollAttempts int `mapstructure:"asset_poll_attempts" default:"10"`

	// AssetPollIntervalMS is the pause between two asset polls.
	AssetPollIntervalMS int `mapstructure:"asset_poll_interval_ms" default:"500"`
}

// Action is what the reconciler did with a record.
type Action string

const (
	// ActionCreated means no remote entry matched and one was created.
	ActionCreated Action = "created"
	// ActionUpdated means a matching remote entry was merged and updated.
	ActionUpdated Action = "updated"
)

// Result describes the outcome of reconciling one record.
type Result struct {
	// ContentType is the content type of the entry.
	ContentType string `json:"content_type"`

	// Key is the identity value the record was matched by.
	Key string `json:"key"`

	// EntryID is the remote id of the resulting entry.
	EntryID string `json:"entry_id"`

	// Action is either created or updated.
	Action Action `json:"action"`

	// Published reports whether the entry was published.
	Published bool `json:"published"`
}

// Summary provides aggregate counts for a run.
type Summary struct {
	// DryRun is set when no mutation was issued.
	DryRun bool `json:"dry_run"`

	// Records counts processed local records.
	Records int `json:"records"`

	// Created counts entries created for local records.
	Created int `json:"created"`

	// Updated counts entries updated for local records.
	Updated int `json:"updated"`

	// Published counts entries published for local records.
	Published int `json:"published"`

	// Drafts counts entries left unpublished by the publish policy.
	Drafts int `json:"drafts"`

	// AssetsCreated counts uploaded and published assets.
	AssetsCreated int `json:"assets_created"`

	// LinksCreated counts created external link entries.
	LinksCreated int `json:"links_created"`

	// RelatedCreated counts created related entries (authors, categories).
	RelatedCreated int `json:"related_created"`

	// ReferenceHits counts references answered from the cache or the identity index.
	ReferenceHits int `json:"reference_hits"`

	// Deleted counts entries removed in delete-all mode.
	Deleted int `json:"deleted"`

	// UnpublishIgnored counts unpublish failures skipped in delete-all mode.
	UnpublishIgnored int `json:"unpublish_ignored"`
}

func (s Summary) String() string {
	if s.Deleted > 0 || s.UnpublishIgnored > 0 {
		return fmt.Sprintf("deleted=%d unpublish_ignored=%d dry_run=%t", s.Deleted, s.UnpublishIgnored, s.DryRun)
	}
	return fmt.Sprintf(
		"records=%d created=%d updated=%d published=%d drafts=%d assets=%d links=%d related=%d reference_hits=%d dry_run=%t",
		s.Records, s.Created, s.Updated, s.Published, s.Drafts,
		s.AssetsCreated, s.LinksCreated, s.RelatedCreated, s.ReferenceHits, s.DryRun,
	)
}

// Run is the state of one sync run. It is built by Engine.Prepare and never
// shared between runs.
type Run struct {
	// Schemas holds the content type definitions.
	Schemas *SchemaIndex

	// Identity maps (content type, unique value) to remote entries.
	Identity *IdentityIndex

	// Cache holds the reference caches.
	Cache *Cache

	// Summary accumulates counters.
	Summary Summary
}

// NewRun creates a run around an already loaded schema and identity index.
func NewRun(schemas *SchemaIndex, identity *IdentityIndex) *Run {
	if identity == nil {
		identity = NewIdentityIndex()
	}
	return &Run{
		Schemas:  schemas,
		Identity: identity,
		Cache:    NewCache(),
	}
}
