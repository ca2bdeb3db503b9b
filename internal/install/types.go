package install

import (
	"strings"

	"github.com/VoxDroid/s4/internal/errors"
)

// Type selects the installation strategy.
type Type string

// Installation strategies, named by their CLI spelling.
const (
	// Copy duplicates the program bytes into the registry directory.
	Copy Type = "copy"
	// Shortcut writes a .lnk pointing at the program.
	Shortcut Type = "lnk"
	// Symlink creates a symbolic link to the program.
	Symlink Type = "sym"
	// PowerShellWrapper writes a .lnk that runs the program with pwsh.
	PowerShellWrapper Type = "pwsh"
)

// Types lists every strategy in CLI order.
func Types() []Type {
	return []Type{Copy, Shortcut, Symlink, PowerShellWrapper}
}

// String returns the CLI spelling of the type.
func (t Type) String() string {
	return string(t)
}

// ParseType parses the CLI spelling of a strategy.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown install type %q (want one of %s)", s, joinNames(Types()))
}

// Registry selects the integration point an entry is installed into.
type Registry string

// Registries
const (
	// Cli is the s4 scripts directory, meant to be on PATH.
	Cli Registry = "cli"
	// SendTo is the Explorer "Send To" folder.
	SendTo Registry = "sendto"
)

// Registries lists every registry in display order.
func Registries() []Registry {
	return []Registry{Cli, SendTo}
}

// String returns the CLI spelling of the registry.
func (r Registry) String() string {
	return string(r)
}

// ParseRegistry parses the CLI spelling of a registry.
func ParseRegistry(s string) (Registry, error) {
	for _, r := range Registries() {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown registry %q (want one of %s)", s, joinNames(Registries()))
}

func joinNames[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

// Request describes one install invocation.
type Request struct {
	Type     Type
	Registry Registry
	// Name overrides the destination file name. Empty means the source's own name.
	Name   string
	Source string
}

// Result describes a successful install.
type Result struct {
	Type        Type
	Registry    Registry
	Source      string
	Destination string
}
