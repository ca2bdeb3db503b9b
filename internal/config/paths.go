// Package config resolves s4's own files and loads its configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment overrides
const (
	// EnvS4Home points every s4 file (config, journal) at a single directory.
	EnvS4Home = "S4_HOME"
	// EnvS4DB overrides the journal database path.
	EnvS4DB = "S4_DB"
	// EnvS4Config overrides the config file path.
	EnvS4Config = "S4_CONFIG"
)

const (
	appDirName     = "s4"
	dbFileName     = "s4.db"
	configFileName = "config.toml"
)

// DataDir returns the directory used to store s4 data.
func DataDir() (string, error) {
	if v := os.Getenv(EnvS4Home); v != "" {
		return v, nil
	}
	if xdg.DataHome == "" {
		return "", fmt.Errorf("cannot determine data directory")
	}
	return filepath.Join(xdg.DataHome, appDirName), nil
}

// EnsureDataDir returns DataDir after creating it.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return d, nil
}

// DBPath returns the full path to the journal database.
func DBPath() (string, error) {
	if v := os.Getenv(EnvS4DB); v != "" {
		return v, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, dbFileName), nil
}

// ConfigPath returns the path of the config file. The file may not exist.
func ConfigPath() (string, error) {
	if v := os.Getenv(EnvS4Config); v != "" {
		return v, nil
	}
	if v := os.Getenv(EnvS4Home); v != "" {
		return filepath.Join(v, configFileName), nil
	}
	if xdg.ConfigHome == "" {
		return "", fmt.Errorf("cannot determine config directory")
	}
	return filepath.Join(xdg.ConfigHome, appDirName, configFileName), nil
}
