// Package reconcile merges environment exports into a minimal descriptor.
//
// The full export provides resolved versions, the history export decides which
// top-level packages survive, and locally installed pip packages override both.
package reconcile

import "go.trai.ch/envexport/internal/core/domain"

// HistorySet holds the names of packages the user explicitly requested.
type HistorySet map[string]struct{}

// NewHistorySet collects the names of the plain entries of a history-only export.
// Versions are stripped at the first "=".
func NewHistorySet(history *domain.Environment) HistorySet {
	set := make(HistorySet)
	if history == nil {
		return set
	}
	for _, spec := range history.PlainSpecs() {
		set[spec.Name()] = struct{}{}
	}
	return set
}

// Contains reports whether name was explicitly requested.
func (h HistorySet) Contains(name string) bool {
	_, ok := h[name]
	return ok
}

// IsHistoryDep reports whether entry is a plain spec whose name is in the history set.
// Pip groups are never history deps; they are carried over separately.
func IsHistoryDep(entry domain.Entry, history HistorySet) bool {
	if entry.Kind != domain.KindPlain {
		return false
	}
	return history.Contains(entry.Spec.Name())
}

// FindPipGroup returns the first pip group in deps, or nil when there is none.
func FindPipGroup(deps []domain.Entry) *domain.PipGroup {
	for _, d := range deps {
		if d.Kind == domain.KindPip {
			if d.Pip == nil {
				return &domain.PipGroup{}
			}
			return d.Pip
		}
	}
	return nil
}
