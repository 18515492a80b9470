package cmd

import (
	"os"
	"strings"
)

// readHostsFile loads supplementary host identifiers from a newline-delimited
// file. Blank lines and surrounding whitespace are ignored.
func readHostsFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var hosts []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		hosts = append(hosts, line)
	}
	return hosts, nil
}
