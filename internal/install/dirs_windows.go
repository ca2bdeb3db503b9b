//go:build windows

package install

import "golang.org/x/sys/windows"

// knownSendToDir asks the shell for the SendTo known folder.
func knownSendToDir() (string, bool) {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_SendTo, windows.KF_FLAG_DEFAULT)
	if err != nil || dir == "" {
		return "", false
	}
	return dir, true
}
