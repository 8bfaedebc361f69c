package conda

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envexport/internal/adapters/config"
	"go.trai.ch/envexport/internal/adapters/shell"
	"go.trai.ch/envexport/internal/core/ports"
)

// NodeID is the unique identifier for the conda exporter Graft node.
const NodeID graft.ID = "adapter.conda"

func init() {
	graft.Register(graft.Node[ports.EnvironmentExporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentExporter, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewExporter(runner, settings.Conda), nil
		},
	})
}
