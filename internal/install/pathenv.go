package install

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ContainsPath checks if the given directory is in the PATH environment variable.
func ContainsPath(pathEnv, dir string) bool {
	if pathEnv == "" || dir == "" {
		return false
	}
	dirClean := filepath.Clean(os.ExpandEnv(strings.TrimSpace(dir)))
	for _, p := range filepath.SplitList(pathEnv) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		pClean := filepath.Clean(os.ExpandEnv(strings.TrimSpace(p)))
		if runtime.GOOS == "windows" {
			if strings.EqualFold(pClean, dirClean) {
				return true
			}
		} else if pClean == dirClean {
			return true
		}
	}
	return false
}

// PathHint returns a command the user can run to put dir on PATH.
func PathHint(dir string) string {
	if runtime.GOOS == "windows" {
		return fmt.Sprintf("setx PATH \"%%PATH%%;%s\"", dir)
	}
	return fmt.Sprintf("export PATH=\"%s:$PATH\"", dir)
}
