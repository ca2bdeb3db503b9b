package install

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatus(t *testing.T) {
	pwsh := filepath.Join(t.TempDir(), "pwsh.exe")
	f := newFixture(t, withInterpreter(pwsh))
	f.in.env.PathEnv = f.cli
	require.NoError(t, os.MkdirAll(f.cli, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.cli, "a.exe"), nil, 0o644))

	st := f.in.GetStatus()
	require.Len(t, st.Registries, 2)

	cli := st.Registries[0]
	assert.Equal(t, Cli, cli.Registry)
	assert.True(t, cli.Exists)
	assert.True(t, cli.OnPath)
	assert.Equal(t, 1, cli.Entries)

	sendTo := st.Registries[1]
	assert.Equal(t, f.sendTo, sendTo.Dir)
	assert.False(t, sendTo.Exists)
	assert.NoError(t, sendTo.Err)

	assert.True(t, st.InterpreterFound)
	assert.Equal(t, pwsh, st.InterpreterPath)
}

func TestGetStatusWithoutInterpreter(t *testing.T) {
	st := newFixture(t).in.GetStatus()
	assert.False(t, st.InterpreterFound)
	assert.Equal(t, "pwsh", st.Interpreter)
}
