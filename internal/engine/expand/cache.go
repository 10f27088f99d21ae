// Package expand implements the expansion engine: a cache of loaded
// transformer plugins, a scoped call environment, and the dispatcher that
// ties them together.
package expand

import (
	"errors"
	"os"

	"go.mexp.dev/mexpd/internal/core/domain"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache maps artifact identities to loaded expander handles. An identity is
// the artifact path plus its modification time, so an external rebuild shows
// up as a new key and forces a fresh load without any invalidation protocol.
// Entries are never evicted; superseded identities stay for the process
// lifetime, which trades memory for not needing handle teardown.
//
// Cache is not safe for concurrent use. The dispatcher serializes access.
type Cache struct {
	loader  ports.ExpanderLoader
	handles map[domain.ArtifactID]ports.Expander
}

// NewCache creates a cache backed by the given loader.
func NewCache(loader ports.ExpanderLoader) *Cache {
	return &Cache{
		loader:  loader,
		handles: make(map[domain.ArtifactID]ports.Expander),
	}
}

// GetOrLoad returns the handle for the artifact at path, loading it if no
// handle exists for the current identity. A stat failure or a rejected load
// leaves the cache untouched.
func (c *Cache) GetOrLoad(path string) (ports.Expander, domain.ArtifactID, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, domain.ArtifactID{}, zerr.With(errors.Join(domain.ErrArtifactStat, err), "path", path)
	}

	id := domain.NewArtifactID(path, fi.ModTime())
	if handle, ok := c.handles[id]; ok {
		return handle, id, nil
	}

	handle, err := c.loader.Load(path)
	if err != nil {
		return nil, domain.ArtifactID{}, zerr.With(errors.Join(domain.ErrArtifactLoad, err), "path", path)
	}

	c.handles[id] = handle
	return handle, id, nil
}

// Len returns the number of loaded handles, counting superseded identities.
func (c *Cache) Len() int {
	return len(c.handles)
}
