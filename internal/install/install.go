// Package install places programs into the s4 registries and removes them again.
package install

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/VoxDroid/s4/internal/config"
	"github.com/VoxDroid/s4/internal/errors"
	"github.com/VoxDroid/s4/internal/journal"
	"github.com/VoxDroid/s4/internal/logging"
	"github.com/VoxDroid/s4/internal/nameutil"
)

// Recorder receives one event per successful install or removal.
type Recorder interface {
	Record(e journal.Event) (int64, error)
}

// Env carries every ambient lookup the installer performs. Zero fields are
// filled from the process environment by New.
type Env struct {
	Dirs DirResolver
	// LookPath finds an executable on the search path.
	LookPath func(file string) (string, error)
	// Abs absolutizes a path against the working directory.
	Abs func(path string) (string, error)
	// Interpreter is the PowerShell executable looked up for pwsh installs.
	Interpreter string
	// PathExt and PathEnv are the PATHEXT and PATH values.
	PathExt string
	PathEnv string
	Logger  *zerolog.Logger
	// Journal is optional.
	Journal Recorder
}

// DefaultEnv builds an Env from the process environment and cfg.
func DefaultEnv(cfg config.Config) Env {
	return Env{
		Dirs:        HomeDirs{CLI: cfg.Dirs.CLI, SendTo: cfg.Dirs.SendTo},
		Interpreter: cfg.PowerShell.Executable,
		PathExt:     os.Getenv("PATHEXT"),
		PathEnv:     os.Getenv("PATH"),
	}
}

// Installer performs installs, listings and removals against the registries.
type Installer struct {
	env Env
	log zerolog.Logger
}

// New returns an Installer for env.
func New(env Env) *Installer {
	if env.Dirs == nil {
		env.Dirs = HomeDirs{}
	}
	if env.LookPath == nil {
		env.LookPath = exec.LookPath
	}
	if env.Abs == nil {
		env.Abs = filepath.Abs
	}
	if env.Interpreter == "" {
		env.Interpreter = config.DefaultInterpreter
	}
	in := &Installer{env: env}
	if env.Logger != nil {
		in.log = *env.Logger
	} else {
		in.log = logging.GetLogger("install")
	}
	return in
}

// Dir returns the directory backing reg.
func (in *Installer) Dir(reg Registry) (string, error) {
	dir, err := in.env.Dirs.Dir(reg)
	if err != nil {
		if !errors.IsErrorCode(err, errors.ErrAccessTargetDir) {
			err = errors.Wrapf(err, errors.ErrAccessTargetDir, "resolve %s directory", reg)
		}
		return "", err
	}
	return dir, nil
}

// OnPath reports whether dir is listed in PATH.
func (in *Installer) OnPath(dir string) bool {
	return ContainsPath(in.env.PathEnv, dir)
}

// Interpreter resolves the PowerShell executable on the search path.
func (in *Installer) Interpreter() (string, error) {
	p, err := in.env.LookPath(in.env.Interpreter)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNoInterpreter, "%s is not installed or not on PATH", in.env.Interpreter).
			WithDetail("interpreter", in.env.Interpreter)
	}
	if abs, aerr := in.env.Abs(p); aerr == nil {
		p = abs
	}
	return p, nil
}

// Install places req.Source into req.Registry using req.Type.
func (in *Installer) Install(req Request) (*Result, error) {
	done := logging.LogOperationStart(in.log, "install")
	defer done()

	info, err := os.Stat(req.Source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNoProgram, "program %s not found", req.Source).
			WithDetail("source", req.Source)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Newf(errors.ErrNoProgram, "program %s is not a regular file", req.Source).
			WithDetail("source", req.Source)
	}
	if req.Name != "" {
		if err := nameutil.ValidateName(req.Name); err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "bad entry name").WithDetail("name", req.Name)
		}
	}

	dir, err := in.Dir(req.Registry)
	if err != nil {
		return nil, err
	}
	if req.Registry == Cli && !in.OnPath(dir) {
		in.log.Warn().
			Str("hint", PathHint(dir)).
			Msgf("%s is not on PATH; add it manually to run installed programs by name", dir)
	}

	var (
		dest string
		src  = req.Source
	)
	switch req.Type {
	case Copy:
		dest, err = in.copyProgram(dir, req.Name, src)
	case Shortcut:
		src, dest, err = in.shortcut(dir, req.Name, src)
	case Symlink:
		src, dest, err = in.symlink(dir, req.Name, src)
	case PowerShellWrapper:
		src, dest, err = in.powerShellWrapper(dir, req.Name, src)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown install type %q", string(req.Type))
	}
	if err != nil {
		return nil, err
	}
	if abs, aerr := in.env.Abs(src); aerr == nil {
		src = abs
	}

	res := &Result{Type: req.Type, Registry: req.Registry, Source: src, Destination: dest}
	in.record(journal.Event{
		Action:      journal.ActionInstall,
		Registry:    req.Registry.String(),
		Type:        req.Type.String(),
		Name:        filepath.Base(dest),
		Source:      src,
		Destination: dest,
	})
	return res, nil
}

func (in *Installer) record(e journal.Event) {
	if in.env.Journal == nil {
		return
	}
	if _, err := in.env.Journal.Record(e); err != nil {
		in.log.Warn().Err(err).Str("action", string(e.Action)).Msg("could not write journal entry")
	}
}
