package domain

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// pipKey is the mapping key that tags a nested pip dependency list.
const pipKey = "pip"

// EntryKind discriminates the shapes a dependency entry can take.
type EntryKind int

const (
	// KindPlain is a single dependency string.
	KindPlain EntryKind = iota
	// KindPip is the nested pip dependency list.
	KindPip
	// KindOther is any other mapping found in an export. It is kept so that decoding
	// does not fail, but it is never reconciled or emitted.
	KindOther
)

// String returns a readable name for the kind.
func (k EntryKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindPip:
		return "pip"
	default:
		return "other"
	}
}

// PipGroup holds the pip-style specs of an environment.
type PipGroup struct {
	Specs []Spec
}

// Clone returns a deep copy of the group.
func (g *PipGroup) Clone() *PipGroup {
	if g == nil {
		return nil
	}
	specs := make([]Spec, len(g.Specs))
	copy(specs, g.Specs)
	return &PipGroup{Specs: specs}
}

// Entry is one element of an environment's dependency list.
type Entry struct {
	Kind EntryKind
	Spec Spec
	Pip  *PipGroup
}

// PlainEntry creates a KindPlain entry.
func PlainEntry(s Spec) Entry {
	return Entry{Kind: KindPlain, Spec: s}
}

// PipEntry creates a KindPip entry for the given group.
func PipEntry(g *PipGroup) Entry {
	return Entry{Kind: KindPip, Pip: g}
}

// UnmarshalYAML decodes a scalar into a plain entry and a mapping with a "pip" key
// into a pip entry.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*e = PlainEntry(Spec(node.Value))
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value != pipKey {
				continue
			}
			var specs []Spec
			if err := node.Content[i+1].Decode(&specs); err != nil {
				return zerr.With(zerr.Wrap(err, "invalid pip dependency list"), "line", node.Line)
			}
			*e = PipEntry(&PipGroup{Specs: specs})
			return nil
		}
		*e = Entry{Kind: KindOther}
		return nil
	default:
		return zerr.With(ErrUnsupportedEntry, "line", node.Line)
	}
}

// MarshalYAML encodes plain entries as strings and pip entries as a single-key mapping.
func (e Entry) MarshalYAML() (any, error) {
	switch e.Kind {
	case KindPlain:
		return e.Spec.String(), nil
	case KindPip:
		specs := []string{}
		if e.Pip != nil {
			for _, s := range e.Pip.Specs {
				specs = append(specs, s.String())
			}
		}
		return map[string][]string{pipKey: specs}, nil
	default:
		return nil, zerr.With(ErrUnsupportedEntry, "kind", e.Kind.String())
	}
}
