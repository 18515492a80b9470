package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// promptPassword reads the login password from the controlling terminal,
// once per run. The password is held only in memory and is never accepted
// via flag or environment variable.
func promptPassword() (string, error) {
	_, _ = fmt.Fprint(os.Stderr, "Password: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	_, _ = fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
