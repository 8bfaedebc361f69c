// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/envexport/internal/adapters/conda"
	_ "go.trai.ch/envexport/internal/adapters/config"
	_ "go.trai.ch/envexport/internal/adapters/fs"
	_ "go.trai.ch/envexport/internal/adapters/logger"
	_ "go.trai.ch/envexport/internal/adapters/pip"
	_ "go.trai.ch/envexport/internal/adapters/python"
	_ "go.trai.ch/envexport/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/envexport/internal/app"
)
