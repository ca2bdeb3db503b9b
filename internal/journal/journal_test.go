package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoxDroid/s4/internal/errors"
)

func openTemp(t *testing.T) *Repository {
	t.Helper()
	r, err := Open(filepath.Join(t.TempDir(), "s4.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRecordAndList(t *testing.T) {
	r := openTemp(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	r.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	id, err := r.Record(Event{Action: ActionInstall, Registry: "cli", Type: "copy", Name: "run.exe",
		Source: `C:\tools\run.exe`, Destination: `C:\Users\a\s4\scripts\run.exe`})
	require.NoError(t, err)
	assert.Positive(t, id)
	_, err = r.Record(Event{Action: ActionInstall, Registry: "sendto", Type: "lnk", Name: "build.lnk",
		Source: `C:\tools\build.ps1`, Destination: `C:\SendTo\build.lnk`})
	require.NoError(t, err)
	_, err = r.Record(Event{Action: ActionUninstall, Registry: "cli", Name: "run.exe",
		Destination: `C:\Users\a\s4\scripts\run.exe`})
	require.NoError(t, err)

	all, err := r.List(Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ActionUninstall, all[0].Action, "newest first")
	assert.Empty(t, all[0].Type)
	assert.Empty(t, all[0].Source)
	assert.Equal(t, base.Add(3*time.Minute), all[0].CreatedAt)
	assert.Equal(t, "copy", all[2].Type)
	assert.Equal(t, `C:\tools\run.exe`, all[2].Source)

	cli, err := r.List(Filter{Registry: "cli"})
	require.NoError(t, err)
	assert.Len(t, cli, 2)

	byName, err := r.List(Filter{Name: "BUILD.LNK"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "sendto", byName[0].Registry)

	limited, err := r.List(Filter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRecordRejectsEmptyName(t *testing.T) {
	r := openTemp(t)
	_, err := r.Record(Event{Action: ActionInstall, Registry: "cli", Destination: "x"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrJournal))
}

func TestRecordRejectsUnknownAction(t *testing.T) {
	r := openTemp(t)
	_, err := r.Record(Event{Action: Action("upgrade"), Registry: "cli", Name: "a", Destination: "x"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrJournal))
}

func TestOpenFailsOnDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(dir)
	assert.True(t, errors.IsErrorCode(err, errors.ErrJournal))
}

func TestCloseNil(t *testing.T) {
	assert.NoError(t, (&Repository{}).Close())
}
