package install

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/VoxDroid/s4/internal/errors"
	"github.com/VoxDroid/s4/internal/lnk"
	"github.com/VoxDroid/s4/internal/version"
)

// Description is stored in every shortcut s4 writes.
func Description() string {
	return fmt.Sprintf("Installed by s4 installer v%s", version.Version)
}

// PowerShellArguments returns the command line handed to pwsh for script.
func PowerShellArguments(script string) string {
	return fmt.Sprintf("-NoProfile -File \"%s\"", script)
}

// copyProgram copies program into dir. It never replaces an existing entry.
func (in *Installer) copyProgram(dir, name, program string) (string, error) {
	dest, err := ResolveDestination(dir, name, program, "")
	if err != nil {
		return "", err
	}
	if _, err := os.Lstat(dest); err == nil {
		return "", alreadyExists(dest)
	} else if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, errors.ErrFileIO, "inspect %s", dest)
	}
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	in.log.Info().Msgf("copying `%s` to `%s`", program, dest)
	if err := copyExclusive(program, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// copyExclusive copies src to a new file dst. An entry created at dst by
// someone else after the caller's check still makes the copy fail.
func copyExclusive(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileIO, "open source %s", src)
	}
	defer func() { _ = in.Close() }()
	info, err := in.Stat()
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileIO, "stat source %s", src)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if os.IsExist(err) {
			return alreadyExists(dst)
		}
		return errors.Wrapf(err, errors.ErrFileIO, "create %s", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, errors.ErrFileIO, "copy %s to %s", src, dst)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileIO, "close %s", dst)
	}
	return nil
}

// shortcut writes a .lnk in dir pointing at program. Existing links are replaced.
func (in *Installer) shortcut(dir, name, program string) (string, string, error) {
	abs, err := in.absolute(program)
	if err != nil {
		return "", "", err
	}
	link := lnk.New(abs)
	link.WorkingDir = filepath.Dir(abs)
	link.Description = Description()

	dest, err := ResolveDestination(dir, name, abs, lnk.Ext)
	if err != nil {
		return "", "", err
	}
	if err := ensureDir(dir); err != nil {
		return "", "", err
	}
	in.log.Info().Msgf("creating a shell link `%s`", dest)
	if err := link.WriteFile(dest); err != nil {
		return "", "", errors.Wrapf(err, errors.ErrFileIO, "write shell link %s", dest)
	}
	return abs, dest, nil
}

// symlink links dir/<name> to program. Existing entries are replaced.
func (in *Installer) symlink(dir, name, program string) (string, string, error) {
	abs, err := in.absolute(program)
	if err != nil {
		return "", "", err
	}
	dest, err := ResolveDestination(dir, name, abs, "")
	if err != nil {
		return "", "", err
	}
	if err := ensureDir(dir); err != nil {
		return "", "", err
	}
	in.log.Info().Msgf("creating symlink `%s` -> `%s`", dest, abs)

	tmp := filepath.Join(dir, fmt.Sprintf(".s4-sym-%d", time.Now().UnixNano()))
	if err := os.Symlink(abs, tmp); err != nil {
		return "", "", errors.Wrapf(err, errors.ErrFileIO, "create symlink %s", dest)
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return "", "", errors.Wrapf(err, errors.ErrFileIO, "replace %s", dest)
	}
	return abs, dest, nil
}

// powerShellWrapper writes a .lnk that starts the interpreter on program.
// Nothing is written when the interpreter cannot be found.
func (in *Installer) powerShellWrapper(dir, name, program string) (string, string, error) {
	abs, err := in.absolute(program)
	if err != nil {
		return "", "", err
	}
	interpreter, err := in.Interpreter()
	if err != nil {
		return "", "", err
	}
	link := lnk.New(interpreter)
	link.Arguments = PowerShellArguments(abs)
	link.WorkingDir = filepath.Dir(abs)
	link.Description = Description()
	link.ShowCommand = lnk.ShowMinNoActive

	dest, err := ResolveDestination(dir, name, abs, lnk.Ext)
	if err != nil {
		return "", "", err
	}
	if err := ensureDir(dir); err != nil {
		return "", "", err
	}
	in.log.Info().Msgf("creating a shell link `%s`", dest)
	if err := link.WriteFile(dest); err != nil {
		return "", "", errors.Wrapf(err, errors.ErrFileIO, "write shell link %s", dest)
	}
	return abs, dest, nil
}

func (in *Installer) absolute(p string) (string, error) {
	abs, err := in.env.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileIO, "absolutize %s", p)
	}
	return abs, nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrFileIO, "create directory %s", dir)
	}
	return nil
}

func alreadyExists(path string) error {
	return errors.Newf(errors.ErrAlreadyExists, "%s already exists", path).WithDetail("path", path)
}
