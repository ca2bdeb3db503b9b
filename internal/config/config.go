package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/VoxDroid/s4/internal/errors"
)

// DefaultInterpreter is the PowerShell-core executable looked up on PATH.
const DefaultInterpreter = "pwsh"

// Config is the content of config.toml.
type Config struct {
	Dirs       Dirs       `toml:"dirs"`
	PowerShell PowerShell `toml:"powershell"`
	Journal    Journal    `toml:"journal"`
	Log        Log        `toml:"log"`
}

// Dirs overrides the registry directories. Empty means the built-in default.
type Dirs struct {
	CLI    string `toml:"cli"`
	SendTo string `toml:"sendto"`
}

// PowerShell configures the wrapper interpreter.
type PowerShell struct {
	Executable string `toml:"executable"`
}

// Journal toggles the activity journal.
type Journal struct {
	Enabled *bool `toml:"enabled"`
}

// Log configures the optional log file.
type Log struct {
	File string `toml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{PowerShell: PowerShell{Executable: DefaultInterpreter}}
}

// JournalEnabled reports whether the journal should be written. Defaults to true.
func (c Config) JournalEnabled() bool {
	return c.Journal.Enabled == nil || *c.Journal.Enabled
}

// Load reads the config file at path. A missing file yields Default().
// Unknown keys are rejected so typos surface instead of being ignored.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "read config %s", path)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), errors.Wrapf(err, errors.ErrConfigParse, "parse config %s", path)
	}

	if strings.TrimSpace(cfg.PowerShell.Executable) == "" {
		cfg.PowerShell.Executable = DefaultInterpreter
	}
	if cfg.Dirs.CLI, err = expandPath(cfg.Dirs.CLI); err != nil {
		return Default(), errors.Wrapf(err, errors.ErrConfigParse, "expand dirs.cli")
	}
	if cfg.Dirs.SendTo, err = expandPath(cfg.Dirs.SendTo); err != nil {
		return Default(), errors.Wrapf(err, errors.ErrConfigParse, "expand dirs.sendto")
	}
	if cfg.Log.File, err = expandPath(cfg.Log.File); err != nil {
		return Default(), errors.Wrapf(err, errors.ErrConfigParse, "expand log.file")
	}
	return cfg, nil
}

// expandPath expands a leading ~ and environment variables.
func expandPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", nil
	}
	p, err := homedir.Expand(os.ExpandEnv(p))
	if err != nil {
		return "", err
	}
	return p, nil
}
