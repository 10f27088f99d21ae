// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.mexp.dev/mexpd/internal/adapters/config"
	_ "go.mexp.dev/mexpd/internal/adapters/daemon"
	_ "go.mexp.dev/mexpd/internal/adapters/dylib"
	_ "go.mexp.dev/mexpd/internal/adapters/logger"
	_ "go.mexp.dev/mexpd/internal/adapters/telemetry"
	_ "go.mexp.dev/mexpd/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.mexp.dev/mexpd/internal/app"
	_ "go.mexp.dev/mexpd/internal/engine/expand"
)
