package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvS4Home, tmp)

	d, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir(): %v", err)
	}
	if d != tmp {
		t.Fatalf("expected %s got %s", tmp, d)
	}
}

func TestDBPathEnvOverride(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv(EnvS4DB, tmp)

	p, err := DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}
	if p != tmp {
		t.Fatalf("expected %s got %s", tmp, p)
	}
}

func TestDBPathUnderHome(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvS4Home, tmp)
	t.Setenv(EnvS4DB, "")

	p, err := DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}
	if p != filepath.Join(tmp, "s4.db") {
		t.Fatalf("unexpected db path: %s", p)
	}
}

func TestConfigPathPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvS4Home, home)
	t.Setenv(EnvS4Config, "")

	p, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath(): %v", err)
	}
	if p != filepath.Join(home, "config.toml") {
		t.Fatalf("expected config under S4_HOME, got %s", p)
	}

	explicit := filepath.Join(t.TempDir(), "other.toml")
	t.Setenv(EnvS4Config, explicit)
	p, err = ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath(): %v", err)
	}
	if p != explicit {
		t.Fatalf("expected %s got %s", explicit, p)
	}
}

func TestEnsureDataDirCreatesDir(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "nested", "s4")
	t.Setenv(EnvS4Home, tmp)

	d, err := EnsureDataDir()
	if err != nil {
		t.Fatalf("EnsureDataDir(): %v", err)
	}
	if _, err := os.Stat(d); err != nil {
		t.Fatalf("expected dir %s to exist: %v", d, err)
	}
}
