package ports

import (
	"context"
	"time"

	"go.mexp.dev/mexpd/abi"
	"go.mexp.dev/mexpd/internal/core/domain"
	"go.mexp.dev/mexpd/tt"
)

//go:generate mockgen -source=daemon.go -destination=mocks/mock_daemon.go -package=mocks

// DaemonStatus represents the current state of the daemon.
type DaemonStatus struct {
	Running         bool
	PID             int
	Uptime          time.Duration
	LastActivity    time.Time
	IdleRemaining   time.Duration
	LoadedArtifacts int
	RestoreFailures uint64
}

// DaemonClient defines the interface for communicating with the daemon.
type DaemonClient interface {
	// Expand performs one expansion call in the daemon process.
	Expand(ctx context.Context, req domain.ExpandRequest) (*tt.Tree, error)

	// ListCapabilities returns the macros declared by the artifact at path.
	ListCapabilities(ctx context.Context, path string) ([]abi.Macro, error)

	// Ping checks if the daemon is alive and resets the inactivity timer.
	Ping(ctx context.Context) error

	// Status returns the current daemon status.
	Status(ctx context.Context) (*DaemonStatus, error)

	// Shutdown requests a graceful daemon shutdown.
	Shutdown(ctx context.Context) error

	// Close releases client resources.
	Close() error
}

// DaemonConnector manages daemon lifecycle from the CLI perspective.
type DaemonConnector interface {
	// Connect returns a client to the daemon, spawning it if necessary.
	Connect(ctx context.Context) (DaemonClient, error)

	// IsRunning checks if the daemon process is currently running.
	IsRunning() bool

	// Spawn starts a new daemon process in the background.
	Spawn(ctx context.Context) error
}
