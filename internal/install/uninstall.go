package install

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/VoxDroid/s4/internal/errors"
	"github.com/VoxDroid/s4/internal/journal"
	"github.com/VoxDroid/s4/internal/lnk"
	"github.com/VoxDroid/s4/internal/logging"
	"github.com/VoxDroid/s4/internal/nameutil"
)

// UninstallResult lists what Uninstall removed.
type UninstallResult struct {
	Registry Registry
	Name     string
	Removed  []string
}

// Candidates returns the paths Uninstall would consider for name in dir:
// name itself, name.lnk, and the shortcut a lnk or pwsh install of name
// produced (build.ps1 -> build.lnk).
func Candidates(dir, name string) []string {
	paths := []string{filepath.Join(dir, name)}
	if strings.EqualFold(extOf(name), lnk.Ext) {
		return paths
	}
	paths = append(paths, filepath.Join(dir, name+"."+lnk.Ext))
	if shortcut := replaceExt(filepath.Join(dir, name), lnk.Ext); !containsPath(paths, shortcut) {
		paths = append(paths, shortcut)
	}
	return paths
}

func containsPath(paths []string, p string) bool {
	for _, q := range paths {
		if q == p {
			return true
		}
	}
	return false
}

// Uninstall removes the entry called name from reg, including a shortcut
// installed from it. Removing something that is not there succeeds.
func (in *Installer) Uninstall(reg Registry, name string) (*UninstallResult, error) {
	done := logging.LogOperationStart(in.log, "uninstall")
	defer done()

	if err := nameutil.ValidateName(name); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "bad entry name").WithDetail("name", name)
	}
	dir, err := in.Dir(reg)
	if err != nil {
		return nil, err
	}

	res := &UninstallResult{Registry: reg, Name: name}
	for _, p := range Candidates(dir, name) {
		info, err := os.Lstat(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return res, errors.Wrapf(err, errors.ErrFileIO, "inspect %s", p)
		}
		if info.IsDir() {
			in.log.Debug().Str("path", p).Msg("not removing a directory")
			continue
		}
		in.log.Info().Msgf("removing `%s`", p)
		if err := os.Remove(p); err != nil {
			return res, errors.Wrapf(err, errors.ErrFileIO, "remove %s", p)
		}
		res.Removed = append(res.Removed, p)
		in.record(journal.Event{
			Action:      journal.ActionUninstall,
			Registry:    reg.String(),
			Name:        filepath.Base(p),
			Destination: p,
		})
	}
	if len(res.Removed) == 0 {
		in.log.Info().Msgf("nothing named %q in %s", name, dir)
	}
	return res, nil
}
