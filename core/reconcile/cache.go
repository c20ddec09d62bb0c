package reconcile

import (
	"content-sync/core/cms"
	"content-sync/core/utils"
)

type relatedKey struct {
	contentType string
	value       string
}

// Cache holds the three reference caches of a run. Entries are added lazily
// and never invalidated while the run lasts.
type Cache struct {
	assets  map[string]string
	links   map[string]string
	related map[relatedKey]string
}

// NewCache creates empty caches.
func NewCache() *Cache {
	return &Cache{
		assets:  make(map[string]string),
		links:   make(map[string]string),
		related: make(map[relatedKey]string),
	}
}

// Asset returns the asset id stored for a file path.
func (c *Cache) Asset(path string) (string, bool) {
	id, ok := c.assets[path]
	return id, ok
}

// StoreAsset records the asset id of a file path.
func (c *Cache) StoreAsset(path, id string) {
	c.assets[path] = id
}

// Link returns the entry id stored for an external link URL.
func (c *Cache) Link(url string) (string, bool) {
	id, ok := c.links[url]
	return id, ok
}

// StoreLink records the entry id of an external link URL.
func (c *Cache) StoreLink(url, id string) {
	c.links[url] = id
}

// Related returns the entry id stored for (content type, unique value).
func (c *Cache) Related(contentType, value string) (string, bool) {
	id, ok := c.related[relatedKey{contentType, value}]
	return id, ok
}

// StoreRelated records the entry id of (content type, unique value).
func (c *Cache) StoreRelated(contentType, value, id string) {
	c.related[relatedKey{contentType, value}] = id
}

// SeedAssets fills the asset cache from remote assets. Assets are created with
// the local file path as title, so the title is the cache key. It returns the
// number of seeded paths.
func (c *Cache) SeedAssets(assets []cms.Asset, locale string) int {
	n := 0
	for _, a := range assets {
		raw, _ := a.Fields.Value("title", locale)
		title := utils.ToString(raw)
		if title == "" {
			continue
		}
		if _, ok := c.assets[title]; ok {
			continue
		}
		c.assets[title] = a.Sys.ID
		n++
	}
	return n
}

// Len returns the sizes of the asset, link and related caches.
func (c *Cache) Len() (assets, links, related int) {
	return len(c.assets), len(c.links), len(c.related)
}
