// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/envexport/internal/core/domain"
)

// CommandRunner runs external commands to completion.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and returns everything it wrote to stdout.
	//
	// A non-zero exit status is reported as an error carrying the exit code and
	// the tail of stderr. The command is never retried.
	Run(ctx context.Context, cmd domain.Command) ([]byte, error)
}
