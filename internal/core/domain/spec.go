package domain

import "strings"

const (
	// CondaSeparator joins name and version in conda-style specs ("numpy=1.26").
	CondaSeparator = "="
	// PipSeparator joins name and version in pip-style specs ("requests==2.31").
	PipSeparator = "=="

	// PythonPackage is the package name used for the interpreter pin.
	PythonPackage = "python"
)

// Spec is a plain dependency string of the form "name" or "name<sep>version".
//
// Parsing is positional: the name is the first token of splitting on "=" and the
// version is the last token. A bare "name" therefore reports itself as its own version,
// and "name=1.0=build" reports "build" as the version.
type Spec string

// NewSpec joins name and version with sep.
func NewSpec(name, sep, version string) Spec {
	return Spec(name + sep + version)
}

// Name returns the part of the spec before the first "=".
func (s Spec) Name() string {
	name, _, _ := strings.Cut(string(s), "=")
	return name
}

// Version returns the part of the spec after the last "=".
func (s Spec) Version() string {
	v := string(s)
	if i := strings.LastIndex(v, "="); i >= 0 {
		return v[i+1:]
	}
	return v
}

// String returns the spec as written.
func (s Spec) String() string {
	return string(s)
}
