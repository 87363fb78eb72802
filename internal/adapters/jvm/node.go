package jvm

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/vividus-framework/vividus-cli/internal/adapters/logger"
	"github.com/vividus-framework/vividus-cli/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(log), nil
		},
	})
}
