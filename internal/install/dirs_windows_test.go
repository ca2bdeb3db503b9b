//go:build windows

package install

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownSendToDir(t *testing.T) {
	dir, ok := knownSendToDir()
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(strings.ToLower(dir), `\sendto`), dir)
}
