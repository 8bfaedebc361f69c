// Package conda exports environments through the conda CLI.
package conda

import (
	"context"

	"go.trai.ch/envexport/internal/adapters/document"
	"go.trai.ch/envexport/internal/core/domain"
	"go.trai.ch/envexport/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EnvironmentExporter = (*Exporter)(nil)

// Exporter implements ports.EnvironmentExporter with `conda env export`.
type Exporter struct {
	runner ports.CommandRunner
	binary string
}

// NewExporter creates an Exporter invoking binary through runner.
func NewExporter(runner ports.CommandRunner, binary string) *Exporter {
	if binary == "" {
		binary = "conda"
	}
	return &Exporter{runner: runner, binary: binary}
}

// Export runs the export and decodes its YAML output.
func (e *Exporter) Export(ctx context.Context, opts domain.ExportOptions) (*domain.Environment, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cmd := e.command(opts)
	out, err := e.runner.Run(ctx, cmd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to export environment"), "history_only", opts.HistoryOnly)
	}

	env, err := document.Decode(out)
	if err != nil {
		return nil, zerr.With(err, "command", cmd.String())
	}
	return env, nil
}

// command builds the conda invocation for opts.
func (e *Exporter) command(opts domain.ExportOptions) domain.Command {
	args := []string{"env", "export"}
	switch {
	case opts.Name != "":
		args = append(args, "--name", opts.Name)
	case opts.Prefix != "":
		args = append(args, "--prefix", opts.Prefix)
	}
	if opts.HistoryOnly {
		args = append(args, "--from-history")
	}
	if !opts.IncludeBuilds {
		args = append(args, "--no-builds")
	}
	return domain.Command{Name: e.binary, Args: args}
}
