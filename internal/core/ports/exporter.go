package ports

import (
	"context"

	"go.trai.ch/envexport/internal/core/domain"
)

// EnvironmentExporter exports an environment from the environment manager.
//
//go:generate go run go.uber.org/mock/mockgen -source=exporter.go -destination=mocks/mock_exporter.go -package=mocks
type EnvironmentExporter interface {
	// Export returns the decoded export for the given options. Invalid option
	// combinations are rejected before any process is started.
	Export(ctx context.Context, opts domain.ExportOptions) (*domain.Environment, error)
}
