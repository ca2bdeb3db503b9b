package install

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestContainsPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "s4", "scripts")
	other := filepath.Join(t.TempDir(), "bin")
	sep := string(os.PathListSeparator)

	if !ContainsPath(other+sep+dir+sep, dir) {
		t.Fatalf("expected %s to be found", dir)
	}
	if !ContainsPath(dir+string(filepath.Separator), dir) {
		t.Fatalf("trailing separator should not matter")
	}
	if ContainsPath(other, dir) {
		t.Fatalf("unexpected match")
	}
	if ContainsPath("", dir) || ContainsPath(dir, "") {
		t.Fatalf("empty inputs never match")
	}
	if runtime.GOOS == "windows" && !ContainsPath(strings.ToUpper(dir), dir) {
		t.Fatalf("expected case-insensitive match on windows")
	}
}

func TestContainsPathExpandsEnv(t *testing.T) {
	base := t.TempDir()
	t.Setenv("S4_TEST_BASE", base)
	if !ContainsPath(filepath.Join("$S4_TEST_BASE", "scripts"), filepath.Join(base, "scripts")) {
		t.Fatalf("expected env-expanded match")
	}
}

func TestPathHint(t *testing.T) {
	h := PathHint(filepath.Join("x", "scripts"))
	if !strings.Contains(h, filepath.Join("x", "scripts")) {
		t.Fatalf("hint should name the directory: %s", h)
	}
	if runtime.GOOS == "windows" && !strings.HasPrefix(h, "setx PATH") {
		t.Fatalf("expected setx hint on windows: %s", h)
	}
}
