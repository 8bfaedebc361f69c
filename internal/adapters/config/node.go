package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the settings Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Settings, error) {
			paths := []string{"."}
			if home, err := os.UserHomeDir(); err == nil {
				paths = append(paths, home)
			}
			return Load(paths...)
		},
	})
}
