package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envexport/internal/adapters/conda"  //nolint:depguard // Wired in app layer
	"go.trai.ch/envexport/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/envexport/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/envexport/internal/adapters/pip"    //nolint:depguard // Wired in app layer
	"go.trai.ch/envexport/internal/adapters/python" //nolint:depguard // Wired in app layer
	"go.trai.ch/envexport/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the entry point needs from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			conda.NodeID,
			pip.NodeID,
			python.NodeID,
			fs.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	exporter, err := graft.Dep[ports.EnvironmentExporter](ctx)
	if err != nil {
		return nil, err
	}

	lister, err := graft.Dep[ports.PackageLister](ctx)
	if err != nil {
		return nil, err
	}

	runtime, err := graft.Dep[ports.RuntimeInspector](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.OutputWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(exporter, lister, runtime, writer, log), nil
}
