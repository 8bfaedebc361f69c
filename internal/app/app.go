// Package app implements the application layer for envexport.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/envexport/internal/adapters/document" //nolint:depguard // Wired in app layer
	"go.trai.ch/envexport/internal/core/domain"
	"go.trai.ch/envexport/internal/core/ports"
	"go.trai.ch/envexport/internal/engine/reconcile"
	"go.trai.ch/zerr"
)

// StdoutPath selects standard output as the export destination.
const StdoutPath = "-"

// App represents the main application logic.
type App struct {
	exporter ports.EnvironmentExporter
	lister   ports.PackageLister
	runtime  ports.RuntimeInspector
	writer   ports.OutputWriter
	logger   ports.Logger
	stdout   io.Writer
}

// New creates a new App instance.
func New(
	exporter ports.EnvironmentExporter,
	lister ports.PackageLister,
	runtime ports.RuntimeInspector,
	writer ports.OutputWriter,
	log ports.Logger,
) *App {
	return &App{
		exporter: exporter,
		lister:   lister,
		runtime:  runtime,
		writer:   writer,
		logger:   log,
		stdout:   os.Stdout,
	}
}

// WithStdout sets the destination used when exporting to standard output.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// ExportOptions configuration for the Export method.
type ExportOptions struct {
	// Target selects the environment; the zero value exports the active one.
	Target domain.Target
	// Output is the destination file. Empty or "-" writes to stdout.
	Output string
	// SkipLocal disables the user-site package overrides.
	SkipLocal bool
	// JSONLog switches the logger to JSON output.
	JSONLog bool
}

// jsonSwitcher is implemented by loggers that support JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// Export exports the target environment twice (full and history-only), lists the
// user-site packages, reconciles the three and writes the resulting document.
// Any failing step aborts the run; nothing is written in that case.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	if opts.JSONLog {
		if s, ok := a.logger.(jsonSwitcher); ok {
			s.SetJSON(true)
		}
	}

	if err := opts.Target.Validate(); err != nil {
		return err
	}

	full, err := a.exporter.Export(ctx, domain.ExportOptions{Target: opts.Target})
	if err != nil {
		return err
	}

	history, err := a.exporter.Export(ctx, domain.ExportOptions{Target: opts.Target, HistoryOnly: true})
	if err != nil {
		return err
	}

	// pip and python must resolve inside the exported environment, not the active one.
	target := interpreterTarget(opts.Target, full)

	var local *domain.LocalPackages
	if !opts.SkipLocal {
		lines, err := a.lister.ListLocal(ctx, target)
		if err != nil {
			return err
		}
		local = domain.ParseLocalPackages(lines)
	}

	env, err := reconcile.Combine(ctx, reconcile.Input{
		Full:    full,
		History: history,
		Local:   local,
		RuntimeVersion: func(ctx context.Context) (string, error) {
			return a.runtime.PythonVersion(ctx, target)
		},
	})
	if err != nil {
		return err
	}

	data, err := document.Encode(env)
	if err != nil {
		return err
	}

	return a.write(opts.Output, data, countPackages(env))
}

// interpreterTarget returns the target pip and python run against. A target named
// by environment name is resolved to the prefix reported by its export.
func interpreterTarget(t domain.Target, full *domain.Environment) domain.Target {
	if t.Name != "" && t.Prefix == "" && full != nil && full.Prefix != "" {
		return domain.Target{Prefix: full.Prefix}
	}
	return t
}

// countPackages counts plain specs and the specs inside pip groups.
func countPackages(env *domain.Environment) int {
	n := 0
	for _, d := range env.Dependencies {
		switch d.Kind {
		case domain.KindPlain:
			n++
		case domain.KindPip:
			if d.Pip != nil {
				n += len(d.Pip.Specs)
			}
		}
	}
	return n
}

func (a *App) write(path string, data []byte, packages int) error {
	if path == "" || path == StdoutPath {
		if _, err := a.stdout.Write(data); err != nil {
			return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
		return nil
	}

	changed, err := a.writer.WriteFile(path, data)
	if err != nil {
		return err
	}
	if !changed {
		a.logger.Info(fmt.Sprintf("%s is up to date", path))
		return nil
	}
	a.logger.Info(fmt.Sprintf("wrote %s (%d packages)", path, packages))
	return nil
}
