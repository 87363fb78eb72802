package repo

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/vividus-framework/vividus-cli/internal/adapters/logger"
	"github.com/vividus-framework/vividus-cli/internal/core/ports"
)

// ResolverNodeID is the unique identifier for the classpath resolver Graft node.
const ResolverNodeID graft.ID = "adapter.classpath_resolver"

// StoreNodeID is the unique identifier for the classpath store Graft node.
const StoreNodeID graft.ID = "adapter.classpath_store"

func init() {
	graft.Register(graft.Node[ports.ClasspathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ClasspathResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(log), nil
		},
	})

	graft.Register(graft.Node[ports.ClasspathStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ClasspathStore, error) {
			return NewStore()
		},
	})
}
