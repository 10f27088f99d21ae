// Package domain contains the core types of the expansion service.
package domain

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ArtifactID identifies one on-disk transformer plugin build. A rebuild
// changes the modification time and therefore yields a distinct identity;
// identities are never mutated in place.
type ArtifactID struct {
	// Path is the absolute path of the artifact.
	Path string
	// ModTime is the artifact's modification time in UnixNano.
	ModTime int64
}

// NewArtifactID builds an identity from a path and its observed mtime.
func NewArtifactID(path string, mtime time.Time) ArtifactID {
	return ArtifactID{Path: path, ModTime: mtime.UnixNano()}
}

// Fingerprint returns a short stable digest of the identity, used to
// correlate log lines and status output across a daemon's lifetime.
func (id ArtifactID) Fingerprint() string {
	h := xxhash.New()
	_, _ = h.WriteString(id.Path)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id.ModTime))
	_, _ = h.Write(buf[:])
	return fmt.Sprintf("%016x", h.Sum64())
}
