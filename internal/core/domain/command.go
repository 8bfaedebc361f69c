package domain

import "strings"

// Command describes an external process invocation.
type Command struct {
	// Name is the executable, either a bare name looked up on PATH or a path.
	Name string
	// Args are the arguments passed after Name.
	Args []string
	// Env holds "KEY=VALUE" overrides applied on top of the system environment.
	// A PATH entry is prepended to the inherited PATH instead of replacing it.
	Env []string
}

// String renders the command line for logs and error metadata.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}
