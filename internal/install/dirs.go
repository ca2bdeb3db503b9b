package install

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/VoxDroid/s4/internal/errors"
)

// DirResolver maps a registry to the directory its entries live in.
type DirResolver interface {
	Dir(reg Registry) (string, error)
}

// HomeDirs resolves registry directories relative to the user's home,
// honoring explicit overrides from the config file.
type HomeDirs struct {
	// CLI and SendTo override the computed directory when non-empty.
	CLI    string
	SendTo string
	// Home returns the user's home directory. Defaults to homedir.Dir.
	Home func() (string, error)
}

// DefaultCLIDir returns the CLI registry directory below home.
func DefaultCLIDir(home string) string {
	return filepath.Join(home, "s4", "scripts")
}

// fallbackSendToDir is the per-user SendTo folder below home.
func fallbackSendToDir(home string) string {
	return filepath.Join(home, "AppData", "Roaming", "Microsoft", "Windows", "SendTo")
}

// Dir implements DirResolver.
func (d HomeDirs) Dir(reg Registry) (string, error) {
	switch reg {
	case Cli:
		if d.CLI != "" {
			return d.CLI, nil
		}
		home, err := d.home()
		if err != nil {
			return "", err
		}
		return DefaultCLIDir(home), nil
	case SendTo:
		if d.SendTo != "" {
			return d.SendTo, nil
		}
		if dir, ok := knownSendToDir(); ok {
			return dir, nil
		}
		home, err := d.home()
		if err != nil {
			return "", err
		}
		return fallbackSendToDir(home), nil
	default:
		return "", errors.Newf(errors.ErrAccessTargetDir, "unknown registry %q", string(reg))
	}
}

func (d HomeDirs) home() (string, error) {
	lookup := d.Home
	if lookup == nil {
		lookup = homedir.Dir
	}
	home, err := lookup()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrAccessTargetDir, "cannot determine the home directory")
	}
	if strings.TrimSpace(home) == "" {
		return "", errors.New(errors.ErrAccessTargetDir, "cannot determine the home directory")
	}
	return home, nil
}
