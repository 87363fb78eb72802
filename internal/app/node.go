package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/vividus-framework/vividus-cli/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/vividus-framework/vividus-cli/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/vividus-framework/vividus-cli/internal/adapters/repo"   //nolint:depguard // Wired in app layer
	"github.com/vividus-framework/vividus-cli/internal/core/ports"
	"github.com/vividus-framework/vividus-cli/internal/engine/launch"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			repo.ResolverNodeID,
			repo.StoreNodeID,
			launch.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ClasspathResolver](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ClasspathStore](ctx)
			if err != nil {
				return nil, err
			}

			launcher, err := graft.Dep[*launch.Launcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, resolver, store, launcher, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
