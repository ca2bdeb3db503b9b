// Package utils provides utility functions.
package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirm prompts the user with msg and expects y/n on stdin. Returns true for yes.
func Confirm(msg string) bool {
	return ConfirmReader(os.Stdout, os.Stdin, msg)
}

// ConfirmReader prompts on w and reads the answer from r (useful for tests).
// Anything other than y or yes, including EOF, is a no.
func ConfirmReader(w io.Writer, r io.Reader, msg string) bool {
	_, _ = fmt.Fprintf(w, "%s [y/N]: ", msg)
	line, _ := bufio.NewReader(r).ReadString('\n')
	resp := strings.TrimSpace(strings.ToLower(line))
	return resp == "y" || resp == "yes"
}

// IsInteractive reports whether stdin and stdout are both interactive terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
