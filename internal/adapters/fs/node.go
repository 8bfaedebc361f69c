package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envexport/internal/core/ports"
)

// NodeID is the unique identifier for the output writer Graft node.
const NodeID graft.ID = "adapter.output_writer"

func init() {
	graft.Register(graft.Node[ports.OutputWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputWriter, error) {
			return NewWriter(), nil
		},
	})
}
