package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoxDroid/s4/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultInterpreter, cfg.PowerShell.Executable)
	assert.True(t, cfg.JournalEnabled())
}

func TestLoadReadsAllSections(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("S4_TEST_DIR", tmp)
	p := writeConfig(t, `
[dirs]
cli = "$S4_TEST_DIR/scripts"
sendto = "$S4_TEST_DIR/sendto"

[powershell]
executable = "pwsh-preview"

[journal]
enabled = false

[log]
file = "$S4_TEST_DIR/s4.log"
`)

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmp, "scripts"), filepath.Clean(cfg.Dirs.CLI))
	assert.Equal(t, filepath.Join(tmp, "sendto"), filepath.Clean(cfg.Dirs.SendTo))
	assert.Equal(t, "pwsh-preview", cfg.PowerShell.Executable)
	assert.False(t, cfg.JournalEnabled())
	assert.Equal(t, filepath.Join(tmp, "s4.log"), filepath.Clean(cfg.Log.File))
}

func TestLoadExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	cfg, err := Load(writeConfig(t, "[dirs]\ncli = \"~/bin\"\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "bin"), cfg.Dirs.CLI)
}

func TestLoadEmptyExecutableFallsBack(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[powershell]\nexecutable = \"  \"\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultInterpreter, cfg.PowerShell.Executable)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "[dirs]\nclii = \"x\"\n"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	_, err := Load(writeConfig(t, "[dirs\n"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
