package launch

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/vividus-framework/vividus-cli/internal/adapters/jvm"    //nolint:depguard // Wired in engine wiring
	"github.com/vividus-framework/vividus-cli/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/vividus-framework/vividus-cli/internal/core/ports"
)

// NodeID is the unique identifier for the launch engine Graft node.
const NodeID graft.ID = "engine.launch"

func init() {
	graft.Register(graft.Node[*Launcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			jvm.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Launcher, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewLauncher(runner, log), nil
		},
	})
}
