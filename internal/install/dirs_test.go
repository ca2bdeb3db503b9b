package install

import (
	stderrors "errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoxDroid/s4/internal/errors"
)

func fakeHome(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func TestHomeDirsCLI(t *testing.T) {
	home := t.TempDir()
	dir, err := HomeDirs{Home: fakeHome(home)}.Dir(Cli)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "s4", "scripts"), dir)
}

func TestHomeDirsSendToFallback(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the shell reports the SendTo folder on Windows")
	}
	home := t.TempDir()
	dir, err := HomeDirs{Home: fakeHome(home)}.Dir(SendTo)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "AppData", "Roaming", "Microsoft", "Windows", "SendTo"), dir)
}

func TestHomeDirsOverrides(t *testing.T) {
	failing := func() (string, error) { return "", stderrors.New("no home") }
	d := HomeDirs{CLI: "/opt/s4/bin", SendTo: "/opt/s4/sendto", Home: failing}

	dir, err := d.Dir(Cli)
	require.NoError(t, err)
	assert.Equal(t, "/opt/s4/bin", dir)
	dir, err = d.Dir(SendTo)
	require.NoError(t, err)
	assert.Equal(t, "/opt/s4/sendto", dir)
}

func TestHomeDirsWithoutHome(t *testing.T) {
	failing := func() (string, error) { return "", stderrors.New("no home") }
	_, err := HomeDirs{Home: failing}.Dir(Cli)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAccessTargetDir))

	_, err = HomeDirs{Home: fakeHome("  ")}.Dir(Cli)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAccessTargetDir))

	_, err = HomeDirs{Home: fakeHome("/h")}.Dir(Registry("desktop"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrAccessTargetDir))
}

func TestInstallReportsMissingHome(t *testing.T) {
	f := newFixture(t, func(env *Env) {
		env.Dirs = HomeDirs{Home: func() (string, error) { return "", stderrors.New("no home") }}
	})
	src := f.program(t, "run.exe", "x")
	_, err := f.in.Install(Request{Type: Copy, Registry: Cli, Source: src})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAccessTargetDir))
}
