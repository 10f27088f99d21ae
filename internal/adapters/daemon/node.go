package daemon

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.mexp.dev/mexpd/internal/adapters/config"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the daemon connector Graft node.
const NodeID graft.ID = "adapter.daemon"

func init() {
	graft.Register(graft.Node[ports.DaemonConnector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.DaemonConnector, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to determine working directory")
			}

			cfg, err := loader.Load(cwd)
			if err != nil {
				return nil, err
			}

			return NewConnector(cfg)
		},
	})
}
