package app

import "go.mexp.dev/mexpd/internal/core/ports"

// Components bundles the fully wired application for the entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}
