// Package pip lists user-site packages through the pip CLI.
package pip

import (
	"context"
	"strings"

	"go.trai.ch/envexport/internal/core/domain"
	"go.trai.ch/envexport/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageLister = (*Lister)(nil)

// Lister implements ports.PackageLister with `pip freeze --user`.
type Lister struct {
	runner ports.CommandRunner
	binary string
}

// NewLister creates a Lister invoking binary through runner.
func NewLister(runner ports.CommandRunner, binary string) *Lister {
	if binary == "" {
		binary = "pip"
	}
	return &Lister{runner: runner, binary: binary}
}

// ListLocal returns the freeze lines of packages installed with --user.
// When the target has a prefix, the prefix's pip is preferred on PATH.
func (l *Lister) ListLocal(ctx context.Context, target domain.Target) ([]string, error) {
	cmd := domain.Command{
		Name: l.binary,
		Args: []string{"freeze", "--user"},
		Env:  target.Env(),
	}

	out, err := l.runner.Run(ctx, cmd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list local packages")
	}

	return strings.Split(strings.TrimRight(string(out), "\r\n"), "\n"), nil
}
