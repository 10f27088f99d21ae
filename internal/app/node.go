package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.mexp.dev/mexpd/internal/adapters/config"
	"go.mexp.dev/mexpd/internal/adapters/daemon"
	"go.mexp.dev/mexpd/internal/adapters/logger"
	"go.mexp.dev/mexpd/internal/adapters/watcher"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.mexp.dev/mexpd/internal/engine/expand"
)

// Node identifiers for the app layer Graft nodes.
const (
	NodeID           graft.ID = "app.main"
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			daemon.NodeID,
			expand.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			connector, err := graft.Dep[ports.DaemonConnector](ctx)
			if err != nil {
				return nil, err
			}

			dispatcher, err := graft.Dep[*expand.Dispatcher](ctx)
			if err != nil {
				return nil, err
			}

			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, connector, dispatcher, w, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}
