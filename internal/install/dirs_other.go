//go:build !windows

package install

// knownSendToDir has no shell to ask outside Windows; callers fall back to
// the home-relative folder.
func knownSendToDir() (string, bool) {
	return "", false
}
