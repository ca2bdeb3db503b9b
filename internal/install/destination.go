package install

import (
	"path/filepath"
	"strings"

	"github.com/VoxDroid/s4/internal/errors"
)

// ResolveDestination returns the path an entry is installed at.
//
// The base name is name when non-empty, otherwise the file name of source.
// When forcedExt is non-empty it replaces the extension of the joined path,
// whatever name or source implied. No I/O is performed.
func ResolveDestination(targetDir, name, source, forcedExt string) (string, error) {
	base := name
	if base == "" {
		var ok bool
		if base, ok = fileName(source); !ok {
			return "", errors.Newf(errors.ErrNoProgram, "cannot take a file name from %q", source).
				WithDetail("source", source)
		}
	}
	dest := filepath.Join(targetDir, base)
	if forcedExt != "" {
		dest = replaceExt(dest, forcedExt)
	}
	return dest, nil
}

// fileName returns the last path element of p, or false when p names a root,
// a parent reference or nothing at all.
func fileName(p string) (string, bool) {
	if p == "" {
		return "", false
	}
	p = strings.TrimPrefix(p, filepath.VolumeName(p))
	clean := filepath.Clean(p)
	base := filepath.Base(clean)
	switch base {
	case ".", "..", string(filepath.Separator):
		return "", false
	}
	return base, true
}

// replaceExt swaps the extension of the last element of p for ext. A leading
// dot does not start an extension, so ".profile" becomes ".profile.lnk".
func replaceExt(p, ext string) string {
	dir, base := filepath.Split(p)
	stem := base
	if i := strings.LastIndex(base, "."); i > 0 {
		stem = base[:i]
	}
	return dir + stem + "." + strings.TrimPrefix(ext, ".")
}
