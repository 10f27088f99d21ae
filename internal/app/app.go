// Package app implements the application layer for mexpd.
package app

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mexp.dev/mexpd/abi"
	"go.mexp.dev/mexpd/internal/adapters/daemon"
	"go.mexp.dev/mexpd/internal/adapters/logger"
	"go.mexp.dev/mexpd/internal/adapters/telemetry"
	"go.mexp.dev/mexpd/internal/adapters/watcher"
	"go.mexp.dev/mexpd/internal/core/domain"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.mexp.dev/mexpd/internal/engine/expand"
	"go.mexp.dev/mexpd/tt"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// debounceWindow is how long the daemon waits after the last file event
// before prewarming rebuilt artifacts. Linkers write in bursts.
const debounceWindow = 200 * time.Millisecond

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	connector    ports.DaemonConnector
	dispatcher   *expand.Dispatcher
	watcher      ports.Watcher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	connector ports.DaemonConnector,
	dispatcher *expand.Dispatcher,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		connector:    connector,
		dispatcher:   dispatcher,
		watcher:      w,
		logger:       log,
	}
}

// ExpandOptions configuration for the Expand method.
type ExpandOptions struct {
	Path    string
	Macro   string
	Input   *tt.Tree
	Attrs   *tt.Tree
	Env     map[string]string
	WorkDir string
	// NoDaemon runs the expansion in this process instead of the daemon.
	NoDaemon bool
}

// Expand runs one macro expansion, through the daemon by default.
func (a *App) Expand(ctx context.Context, opts ExpandOptions) (*tt.Tree, error) {
	req := domain.ExpandRequest{
		Artifact: opts.Path,
		Macro:    opts.Macro,
		Input:    opts.Input,
		Attrs:    opts.Attrs,
		Env:      opts.Env,
		WorkDir:  opts.WorkDir,
	}

	if opts.NoDaemon {
		return a.dispatcher.Expand(ctx, req)
	}

	client, err := a.connector.Connect(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to reach daemon")
	}
	defer func() { _ = client.Close() }()

	return client.Expand(ctx, req)
}

// List returns the macros exported by the artifact at path.
func (a *App) List(ctx context.Context, path string, noDaemon bool) ([]abi.Macro, error) {
	if noDaemon {
		return a.dispatcher.ListCapabilities(ctx, path)
	}

	client, err := a.connector.Connect(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to reach daemon")
	}
	defer func() { _ = client.Close() }()

	return client.ListCapabilities(ctx, path)
}

// ServeDaemon runs the daemon until the idle timeout fires, a shutdown is
// requested, or the context is cancelled. If plugin directories are
// configured, rebuilt artifacts are prewarmed as they change on disk.
func (a *App) ServeDaemon(ctx context.Context) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	shutdownTracing := telemetry.SetupProvider()
	defer func() { _ = shutdownTracing(context.Background()) }()

	// The daemon logs with the configured format; the pretty CLI logger is
	// wrong for a background process whose stream lands in a log file.
	dlog := logger.NewWithFormat(os.Stderr, cfg.LogFormat)

	lifecycle := daemon.NewLifecycle(cfg.IdleTimeout)
	server := daemon.NewServer(lifecycle, a.dispatcher, dlog, cfg)

	g, gctx := errgroup.WithContext(ctx)

	watching := len(cfg.PluginDirs) > 0
	if watching {
		deb := watcher.NewDebouncer(debounceWindow, func(paths []string) {
			a.prewarm(gctx, paths)
		})

		if err := a.watcher.Start(gctx, cfg.PluginDirs); err != nil {
			return zerr.Wrap(err, "failed to watch plugin directories")
		}

		g.Go(func() error {
			defer deb.Flush()
			for event := range a.watcher.Events() {
				switch event.Operation {
				case ports.OpCreate, ports.OpWrite:
					deb.Add(event.Path)
				case ports.OpRemove, ports.OpRename:
					// The stale handle stays cached until the path is next
					// requested; nothing to do proactively.
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		if watching {
			// Closing the watcher ends the event loop above.
			defer func() { _ = a.watcher.Stop() }()
		}
		err := server.Serve(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	return g.Wait()
}

// prewarm loads rebuilt artifacts so the next expansion request hits a warm
// cache. Failures are expected here: an artifact may be mid-rebuild or gone.
func (a *App) prewarm(ctx context.Context, paths []string) {
	for _, path := range paths {
		if _, err := a.dispatcher.ListCapabilities(ctx, path); err != nil {
			a.logger.Warn("prewarm skipped " + path + ": " + err.Error())
		} else {
			a.logger.Info("prewarmed " + path)
		}
	}
}

// DaemonStatus reports the daemon's runtime state without spawning it.
func (a *App) DaemonStatus(ctx context.Context) (*ports.DaemonStatus, error) {
	if !a.connector.IsRunning() {
		return &ports.DaemonStatus{Running: false}, nil
	}

	client, err := a.connector.Connect(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to reach daemon")
	}
	defer func() { _ = client.Close() }()

	return client.Status(ctx)
}

// StopDaemon asks a running daemon to shut down.
func (a *App) StopDaemon(ctx context.Context) error {
	if !a.connector.IsRunning() {
		return domain.ErrDaemonNotRunning
	}

	client, err := a.connector.Connect(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to reach daemon")
	}
	defer func() { _ = client.Close() }()

	return client.Shutdown(ctx)
}
