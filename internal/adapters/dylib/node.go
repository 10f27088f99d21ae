package dylib

import (
	"context"

	"github.com/grindlemire/graft"
	"go.mexp.dev/mexpd/internal/adapters/logger"
	"go.mexp.dev/mexpd/internal/core/ports"
)

// NodeID is the unique identifier for the dylib loader Graft node.
const NodeID graft.ID = "adapter.dylib"

func init() {
	graft.Register(graft.Node[ports.ExpanderLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ExpanderLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
