package ports

import (
	"context"

	"go.trai.ch/envexport/internal/core/domain"
)

// PackageLister lists packages installed in the user's local site directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=lister.go -destination=mocks/mock_lister.go -package=mocks
type PackageLister interface {
	// ListLocal returns the raw "name==version" lines reported for the target.
	ListLocal(ctx context.Context, target domain.Target) ([]string, error)
}
