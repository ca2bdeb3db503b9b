package install

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/VoxDroid/s4/internal/errors"
	"github.com/VoxDroid/s4/internal/lnk"
)

// DefaultPathExt is used when PATHEXT is unset.
const DefaultPathExt = ".COM;.EXE;.BAT;.CMD;.VBS;.VBE;.JS;.JSE;.WSF;.WSH;.MSC"

// EntryKind describes what an installed entry is on disk.
type EntryKind string

// Entry kinds
const (
	KindFile     EntryKind = "file"
	KindSymlink  EntryKind = "symlink"
	KindShortcut EntryKind = "shortcut"
)

// Entry is one installed program found in a registry directory.
type Entry struct {
	Name string
	Path string
	Kind EntryKind
	// Target is the resolved symlink or decoded shortcut target, if known.
	Target string
}

// List returns the programs installed in reg, sorted by name. A registry
// directory that does not exist yet holds no entries.
func (in *Installer) List(reg Registry) ([]Entry, error) {
	dir, err := in.Dir(reg)
	if err != nil {
		return nil, err
	}
	return in.listDir(dir)
}

// ProgramExts returns the lowercase extensions, without dots, that list
// treats as programs.
func (in *Installer) ProgramExts() map[string]bool {
	pathExt := in.env.PathExt
	if strings.TrimSpace(pathExt) == "" {
		pathExt = DefaultPathExt
	}
	exts := map[string]bool{"ps1": true, lnk.Ext: true}
	for _, e := range strings.Split(pathExt, ";") {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			exts[e] = true
		}
	}
	return exts
}

func (in *Installer) listDir(dir string) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileIO, "read directory %s", dir)
	}
	exts := in.ProgramExts()

	var entries []Entry
	for _, item := range items {
		p := filepath.Join(dir, item.Name())
		switch {
		case item.Type()&os.ModeSymlink != 0:
			resolved, err := filepath.EvalSymlinks(p)
			if err != nil {
				in.log.Debug().Str("path", p).Err(err).Msg("skipping broken symlink")
				continue
			}
			info, err := os.Stat(resolved)
			if err != nil || !info.Mode().IsRegular() || !exts[extOf(resolved)] {
				continue
			}
			entries = append(entries, Entry{Name: item.Name(), Path: p, Kind: KindSymlink, Target: resolved})
		case item.Type().IsRegular():
			ext := extOf(item.Name())
			if !exts[ext] {
				continue
			}
			e := Entry{Name: item.Name(), Path: p, Kind: KindFile}
			if ext == lnk.Ext {
				e.Kind = KindShortcut
				if l, err := lnk.ReadFile(p); err == nil {
					e.Target = l.Target
				} else {
					in.log.Debug().Str("path", p).Err(err).Msg("cannot decode shortcut")
				}
			}
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries, nil
}

func extOf(p string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(p), "."))
}
