package domain

import (
	"iter"
	"strings"
)

// LocalPackages maps package names to the versions installed in the user's local
// site directory. Iteration follows first-insertion order.
type LocalPackages struct {
	names    []string
	versions map[string]string
}

// NewLocalPackages creates an empty set of local packages.
func NewLocalPackages() *LocalPackages {
	return &LocalPackages{versions: make(map[string]string)}
}

// ParseLocalPackages builds the map from freeze output lines ("name==version").
// Blank lines are ignored. A name seen twice keeps its first position and last version.
func ParseLocalPackages(lines []string) *LocalPackages {
	pkgs := NewLocalPackages()
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		s := Spec(line)
		pkgs.Set(s.Name(), s.Version())
	}
	return pkgs
}

// Set records version for name.
func (p *LocalPackages) Set(name, version string) {
	if _, ok := p.versions[name]; !ok {
		p.names = append(p.names, name)
	}
	p.versions[name] = version
}

// Get returns the local version of name.
func (p *LocalPackages) Get(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.versions[name]
	return v, ok
}

// Len returns the number of packages.
func (p *LocalPackages) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// All iterates over name/version pairs in insertion order.
func (p *LocalPackages) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if p == nil {
			return
		}
		for _, name := range p.names {
			if !yield(name, p.versions[name]) {
				return
			}
		}
	}
}
