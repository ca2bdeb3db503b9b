package install

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoxDroid/s4/internal/errors"
)

func TestResolveDestination(t *testing.T) {
	dir := filepath.Join("reg", "dir")
	tools := filepath.Join("tools")
	cases := []struct {
		name, display, source, ext, want string
	}{
		{"source name", "", filepath.Join(tools, "build.ps1"), "", "build.ps1"},
		{"display name verbatim", "quickrun", filepath.Join(tools, "run.exe"), "", "quickrun"},
		{"forced ext replaces", "", filepath.Join(tools, "build.ps1"), "lnk", "build.lnk"},
		{"forced ext appends when none", "quickrun", filepath.Join(tools, "run.exe"), "lnk", "quickrun.lnk"},
		{"forced ext on display name", "my.tool", filepath.Join(tools, "run.exe"), "lnk", "my.lnk"},
		{"leading dot is not an extension", ".profile", filepath.Join(tools, "run.exe"), "lnk", ".profile.lnk"},
		{"already lnk", "", filepath.Join(tools, "c.lnk"), "lnk", "c.lnk"},
		{"dotted ext argument", "", filepath.Join(tools, "a.exe"), ".lnk", "a.lnk"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveDestination(dir, tc.display, tc.source, tc.ext)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tc.want), got)
		})
	}
}

func TestResolveDestinationStaysInDir(t *testing.T) {
	dir := filepath.Join("reg", "dir")
	for _, src := range []string{"a.exe", filepath.Join("x", "y", "b.cmd"), filepath.Join("..", "c.ps1")} {
		for _, ext := range []string{"", "lnk"} {
			got, err := ResolveDestination(dir, "", src, ext)
			require.NoError(t, err)
			assert.Equal(t, dir, filepath.Dir(got), "%s/%s", src, ext)
		}
	}
}

func TestResolveDestinationWithoutFileName(t *testing.T) {
	for _, src := range []string{"", "..", string(filepath.Separator), "/", "."} {
		_, err := ResolveDestination("dir", "", src, "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoProgram), "%q", src)
	}
}
