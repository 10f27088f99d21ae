package domain

import "go.trai.ch/zerr"

var (
	// ErrArtifactStat is returned when an artifact path cannot be stat'ed.
	ErrArtifactStat = zerr.New("failed to stat artifact")

	// ErrArtifactLoad is returned when an artifact exists but the loader rejects it.
	ErrArtifactLoad = zerr.New("failed to load artifact")

	// ErrExpandFailed is returned when a transformer reports a failure or aborts.
	ErrExpandFailed = zerr.New("macro expansion failed")

	// ErrArtifactNotListed tags a load failure inside expand, where callers are
	// expected to have verified the artifact via a capability listing first.
	ErrArtifactNotListed = zerr.New("artifact must be listed before expansion")

	// ErrConfigInvalid is returned when mexpd.yaml exists but cannot be parsed.
	ErrConfigInvalid = zerr.New("invalid configuration file")

	// ErrDaemonNotRunning is returned when a command requires a running daemon.
	ErrDaemonNotRunning = zerr.New("daemon is not running")

	// ErrExpansionFailed marks a CLI invocation that produced a diagnostic, so
	// the entry point can exit non-zero without double-logging.
	ErrExpansionFailed = zerr.New("expansion returned a diagnostic")
)
