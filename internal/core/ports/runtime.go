package ports

import (
	"context"

	"go.trai.ch/envexport/internal/core/domain"
)

// RuntimeInspector reports the interpreter version of an environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
type RuntimeInspector interface {
	// PythonVersion returns the version string of the target's interpreter, e.g. "3.11.4".
	PythonVersion(ctx context.Context, target domain.Target) (string, error)
}
