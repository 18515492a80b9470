package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// dispatchAll configures every host concurrently, one worker per host, and
// prints each result as it completes. Successes go to stdout, failures to
// stderr. Printing happens only on the coordinator goroutine while it drains
// the completion channel, so lines never interleave. A failure on one host
// never cancels or delays the others.
func dispatchAll(hosts, ips []string, clearExisting bool, d dispatcher) []hostResult {
	resultCh := make(chan hostResult, len(hosts))
	for i := range hosts {
		go func(host, ip string) {
			peers := remoteVTEPs(ips, ip)
			commands := buildFloodCommands(peers, clearExisting)
			payload, err := d.sendCommands(host, commands)
			resultCh <- hostResult{Host: host, Payload: payload, Err: err}
		}(hosts[i], ips[i])
	}

	results := make([]hostResult, 0, len(hosts))
	for range hosts {
		r := <-resultCh
		if r.Err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%s: failed to send commands: %v\n", r.Host, r.Err)
		} else {
			_, _ = fmt.Fprintf(os.Stdout, "%s: %s\n", r.Host, r.Payload)
		}
		results = append(results, r)
	}
	log.Debug().Int("hosts", len(results)).Msg("all dispatches complete")
	return results
}
