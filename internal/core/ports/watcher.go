package ports

import (
	"context"
	"iter"
)

//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates an artifact appeared.
	OpCreate WatchOp = iota
	// OpWrite indicates an artifact was rewritten.
	OpWrite
	// OpRemove indicates an artifact was removed.
	OpRemove
	// OpRename indicates an artifact was renamed.
	OpRename
)

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the absolute path of the artifact that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher observes the configured plugin directories for rebuilt artifacts.
type Watcher interface {
	// Start begins watching the given directories. It returns an error if the
	// watcher fails to start.
	Start(ctx context.Context, dirs []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}
