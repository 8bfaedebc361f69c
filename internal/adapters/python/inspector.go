// Package python reads the interpreter version of an environment.
package python

import (
	"context"
	"strings"

	"go.trai.ch/envexport/internal/core/domain"
	"go.trai.ch/envexport/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RuntimeInspector = (*Inspector)(nil)

// versionScript prints the leading token of sys.version, e.g. "3.11.4".
const versionScript = "import sys; print(sys.version.split()[0])"

// Inspector implements ports.RuntimeInspector by asking the interpreter.
type Inspector struct {
	runner ports.CommandRunner
	binary string
}

// NewInspector creates an Inspector invoking binary through runner.
func NewInspector(runner ports.CommandRunner, binary string) *Inspector {
	if binary == "" {
		binary = "python"
	}
	return &Inspector{runner: runner, binary: binary}
}

// PythonVersion runs the target's interpreter and returns its version.
func (i *Inspector) PythonVersion(ctx context.Context, target domain.Target) (string, error) {
	out, err := i.runner.Run(ctx, domain.Command{
		Name: i.binary,
		Args: []string{"-c", versionScript},
		Env:  target.Env(),
	})
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrRuntimeVersionFailed.Error())
	}

	version := strings.TrimSpace(string(out))
	if version == "" || strings.ContainsAny(version, " \t\n=") {
		return "", zerr.With(domain.ErrRuntimeVersionFailed, "output", version)
	}
	return version, nil
}
