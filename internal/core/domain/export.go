package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// Target selects the environment to export. The zero value means the active one.
type Target struct {
	Name   string
	Prefix string
}

// Validate reports whether the target is usable.
func (t Target) Validate() error {
	if t.Name != "" && t.Prefix != "" {
		err := zerr.With(ErrConflictingTarget, "name", t.Name)
		return zerr.With(err, "prefix", t.Prefix)
	}
	return nil
}

// Env returns the environment overrides that make the target's executables win the
// PATH lookup. It is empty unless a prefix is set.
func (t Target) Env() []string {
	if t.Prefix == "" {
		return nil
	}
	return []string{"PATH=" + filepath.Join(t.Prefix, "bin")}
}

// ExportOptions configures one environment export.
type ExportOptions struct {
	Target
	// HistoryOnly restricts the export to explicitly requested packages.
	HistoryOnly bool
	// IncludeBuilds keeps build strings in the exported specs.
	IncludeBuilds bool
}

// Validate rejects option combinations the environment manager cannot honor.
func (o ExportOptions) Validate() error {
	if o.HistoryOnly && o.IncludeBuilds {
		return ErrHistoryWithBuilds
	}
	return o.Target.Validate()
}
