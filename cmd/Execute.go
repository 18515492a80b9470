package cmd

import (
	"fmt"
	"os"
)

// Execute runs the root command and maps any returned error to exit code 1.
// Pre-flight failures (too few hosts, unreadable hosts file, unresolved
// hostname) surface here; per-host dispatch failures never do.
func Execute() {
	initLogging()
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
		return
	}
}
