package domain

// Environment is the descriptor produced by an environment export.
//
// Name and Prefix are read from exports but never written: the reconciled
// descriptor only carries channels and dependencies.
type Environment struct {
	Name         string   `yaml:"name,omitempty"`
	Prefix       string   `yaml:"prefix,omitempty"`
	Channels     []string `yaml:"channels"`
	Dependencies []Entry  `yaml:"dependencies"`
}

// Descriptor is the serialized shape of a reconciled environment.
type Descriptor struct {
	Channels     []string `yaml:"channels"`
	Dependencies []Entry  `yaml:"dependencies"`
}

// Descriptor returns the output shape of the environment.
func (e *Environment) Descriptor() Descriptor {
	channels := e.Channels
	if channels == nil {
		channels = []string{}
	}
	deps := make([]Entry, 0, len(e.Dependencies))
	for _, d := range e.Dependencies {
		if d.Kind == KindOther {
			continue
		}
		deps = append(deps, d)
	}
	return Descriptor{Channels: channels, Dependencies: deps}
}

// PlainSpecs returns the specs of all plain entries, in order.
func (e *Environment) PlainSpecs() []Spec {
	specs := make([]Spec, 0, len(e.Dependencies))
	for _, d := range e.Dependencies {
		if d.Kind == KindPlain {
			specs = append(specs, d.Spec)
		}
	}
	return specs
}
