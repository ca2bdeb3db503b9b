// Package nameutil checks names given for installed entries.
package nameutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// reservedChars cannot appear in a Windows file name.
const reservedChars = `<>:"/\|?*`

// ValidateName checks that name can be used as a single file name inside a
// registry directory. It does NOT mutate the input; use SanitizeName first to
// drop invisible characters picked up by copy/paste.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("invalid name: name cannot be empty")
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("invalid name: contains invalid encoding")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid name: %q is not a file name", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid name: contains control character U+%04X (%q)", r, r)
		}
		if strings.ContainsRune(reservedChars, r) {
			return fmt.Errorf("invalid name: contains reserved character %q", r)
		}
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return fmt.Errorf("invalid name: cannot end with a dot or space")
	}
	if isDeviceName(name) {
		return fmt.Errorf("invalid name: %q is a reserved device name", name)
	}
	return nil
}

// isDeviceName reports whether Windows maps name to a device. The extension
// does not matter: "nul.txt" is the NUL device too.
func isDeviceName(name string) bool {
	stem := name
	if i := strings.IndexByte(stem, '.'); i >= 0 {
		stem = stem[:i]
	}
	stem = strings.ToUpper(strings.TrimRight(stem, " "))
	switch stem {
	case "CON", "PRN", "AUX", "NUL":
		return true
	}
	if len(stem) == 4 && (strings.HasPrefix(stem, "COM") || strings.HasPrefix(stem, "LPT")) {
		return stem[3] >= '1' && stem[3] <= '9'
	}
	return false
}

// SanitizeName removes control and zero-width characters and trims
// surrounding whitespace. The boolean reports whether anything changed.
func SanitizeName(name string) (string, bool) {
	if name == "" {
		return name, false
	}
	out := make([]rune, 0, len(name))
	changed := false
	for _, r := range name {
		if unicode.IsControl(r) {
			changed = true
			continue
		}
		switch r {
		case '\u200B', '\u200C', '\u200D', '\uFEFF':
			changed = true
			continue
		}
		out = append(out, r)
	}
	res := strings.TrimSpace(string(out))
	if res != name {
		changed = true
	}
	return res, changed
}
