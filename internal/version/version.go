// Package version provides version information.
package version

// Version is set at build time via -ldflags "-X github.com/VoxDroid/s4/internal/version.Version=<value>"
// The default is a development placeholder.
var Version = "0.1.0"
