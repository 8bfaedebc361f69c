package reconcile

import "go.trai.ch/envexport/internal/core/domain"

// NameSet is a set of package names.
type NameSet map[string]struct{}

// Has reports whether name is in the set. A nil set is empty.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// OverrideWithLocal pins every spec in target that has a local counterpart to the
// local version, joined with sep. Matching specs are rewritten in place; the caller
// owns target and must expect it to change.
//
// It returns the names that matched, whether or not their version differed.
func OverrideWithLocal(target []domain.Spec, local *domain.LocalPackages, sep string) NameSet {
	overlapping := make(NameSet)
	for i, spec := range target {
		name := spec.Name()
		localVersion, ok := local.Get(name)
		if !ok {
			continue
		}
		overlapping[name] = struct{}{}
		if spec.Version() != localVersion {
			target[i] = domain.NewSpec(name, sep, localVersion)
		}
	}
	return overlapping
}
