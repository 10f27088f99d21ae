// Package expandv1 defines the wire types for the mexpd expansion service.
//
// Messages travel as JSON over gRPC (see codec.go), so every field carries a
// json tag and token trees cross the wire in their flattened form.
package expandv1

import "go.mexp.dev/mexpd/tt"

// ExpandRequest asks the daemon to run one macro from a loaded artifact.
type ExpandRequest struct {
	// Path is the absolute path of the expander artifact. The daemon stats
	// the path itself, so a rebuilt artifact is picked up without any client
	// side bookkeeping.
	Path string `json:"path"`

	// Macro is the name of the macro to invoke.
	Macro string `json:"macro"`
	// Input is the token tree the macro is applied to.
	Input *tt.FlatTree `json:"input,omitempty"`
	// Attrs is the attribute token tree, set only for attribute macros.
	Attrs *tt.FlatTree `json:"attrs,omitempty"`

	// Env holds environment variables scoped to this single invocation.
	Env map[string]string `json:"env,omitempty"`
	// WorkDir is the working directory scoped to this single invocation.
	WorkDir string `json:"workDir,omitempty"`
}

// ExpandResponse carries the result of one expansion.
//
// Transport and loading failures surface as gRPC errors; a macro that ran but
// failed (including one that panicked) produces a response with Error set, so
// the caller can render the diagnostic without tearing down the connection.
type ExpandResponse struct {
	Expansion *tt.FlatTree `json:"expansion,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// ListRequest asks the daemon for the macros an artifact exports.
type ListRequest struct {
	Path string `json:"path"`
}

// Macro describes one exported macro.
type Macro struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// ListResponse lists the macros an artifact exports, in export order.
type ListResponse struct {
	Macros []Macro `json:"macros"`
}

// PingRequest checks daemon liveness and resets its idle timer.
type PingRequest struct{}

// PingResponse reports how long the daemon will stay up without activity.
type PingResponse struct {
	IdleRemainingSeconds int64 `json:"idleRemainingSeconds"`
}

// StatusRequest asks the daemon for its runtime status.
type StatusRequest struct{}

// StatusResponse reports daemon runtime status.
type StatusResponse struct {
	Running              bool   `json:"running"`
	Pid                  int32  `json:"pid"`
	UptimeSeconds        int64  `json:"uptimeSeconds"`
	LastActivityUnix     int64  `json:"lastActivityUnix"`
	IdleRemainingSeconds int64  `json:"idleRemainingSeconds"`
	LoadedArtifacts      int    `json:"loadedArtifacts"`
	RestoreFailures      uint64 `json:"restoreFailures"`
}

// ShutdownRequest asks the daemon to exit.
type ShutdownRequest struct {
	Graceful bool `json:"graceful"`
}

// ShutdownResponse acknowledges a shutdown request.
type ShutdownResponse struct {
	Success bool `json:"success"`
}
