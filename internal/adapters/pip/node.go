package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envexport/internal/adapters/config"
	"go.trai.ch/envexport/internal/adapters/shell"
	"go.trai.ch/envexport/internal/core/ports"
)

// NodeID is the unique identifier for the pip lister Graft node.
const NodeID graft.ID = "adapter.pip"

func init() {
	graft.Register(graft.Node[ports.PackageLister]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.PackageLister, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewLister(runner, settings.Pip), nil
		},
	})
}
