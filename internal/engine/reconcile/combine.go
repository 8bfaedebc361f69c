package reconcile

import (
	"context"

	"go.trai.ch/envexport/internal/core/domain"
	"go.trai.ch/zerr"
)

// VersionFunc reports the interpreter version to pin when no python spec survives.
type VersionFunc func(ctx context.Context) (string, error)

// Input holds the three exports to reconcile.
type Input struct {
	// Full is the complete resolved export.
	Full *domain.Environment
	// History is the export restricted to explicitly requested packages.
	History *domain.Environment
	// Local is the set of user-site packages. Nil or empty disables overrides.
	Local *domain.LocalPackages
	// RuntimeVersion is called at most once, and only when a python pin is missing.
	RuntimeVersion VersionFunc
}

// Combine reconciles the inputs into a minimal environment.
//
// The result keeps the full export's channels and, in order, the requested plain
// specs, a python pin if none was requested, and the pip group extended with any
// local packages that matched nothing. The inputs are not modified.
func Combine(ctx context.Context, in Input) (*domain.Environment, error) {
	full := in.Full
	if full == nil {
		full = &domain.Environment{}
	}

	base := requestedSpecs(full, NewHistorySet(in.History))

	if !hasPython(base) {
		if in.RuntimeVersion == nil {
			return nil, zerr.With(domain.ErrRuntimeVersionFailed, "reason", "no runtime version source")
		}
		version, err := in.RuntimeVersion(ctx)
		if err != nil {
			return nil, err
		}
		base = append(base, domain.NewSpec(domain.PythonPackage, domain.CondaSeparator, version))
	}

	pip := FindPipGroup(full.Dependencies).Clone()

	if in.Local.Len() > 0 {
		pip = applyLocal(base, pip, in.Local)
	}

	deps := make([]domain.Entry, 0, len(base)+1)
	for _, spec := range base {
		deps = append(deps, domain.PlainEntry(spec))
	}
	if pip != nil {
		deps = append(deps, domain.PipEntry(pip))
	}

	channels := make([]string, len(full.Channels))
	copy(channels, full.Channels)

	return &domain.Environment{
		Channels:     channels,
		Dependencies: deps,
	}, nil
}

// requestedSpecs returns the plain specs of full that the history asked for.
// A name appearing twice keeps its first spec.
func requestedSpecs(full *domain.Environment, history HistorySet) []domain.Spec {
	seen := make(NameSet)
	var specs []domain.Spec
	for _, entry := range full.Dependencies {
		if !IsHistoryDep(entry, history) {
			continue
		}
		name := entry.Spec.Name()
		if seen.Has(name) {
			continue
		}
		seen[name] = struct{}{}
		specs = append(specs, entry.Spec)
	}
	return specs
}

func hasPython(specs []domain.Spec) bool {
	for _, s := range specs {
		if s.Name() == domain.PythonPackage {
			return true
		}
	}
	return false
}

// applyLocal overrides base and pip in place and appends unmatched local packages to
// the pip group, creating it if needed. It returns the resulting group.
func applyLocal(base []domain.Spec, pip *domain.PipGroup, local *domain.LocalPackages) *domain.PipGroup {
	condaOverlap := OverrideWithLocal(base, local, domain.CondaSeparator)

	var pipOverlap NameSet
	if pip != nil {
		pipOverlap = OverrideWithLocal(pip.Specs, local, domain.PipSeparator)
	}

	for name, version := range local.All() {
		if condaOverlap.Has(name) || pipOverlap.Has(name) {
			continue
		}
		if pip == nil {
			pip = &domain.PipGroup{}
		}
		pip.Specs = append(pip.Specs, domain.NewSpec(name, domain.PipSeparator, version))
	}
	return pip
}
