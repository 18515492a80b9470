package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootCmd implements the end-to-end workflow: merge the host list, validate
// it before any network activity, read the password, resolve every host,
// then dispatch the flood-list update to all switches concurrently. Per-host
// dispatch failures are reported but never turn into a non-zero exit; only
// pre-flight failures do.
var rootCmd = &cobra.Command{
	Use:   "arista-vtep-update [hosts...]",
	Short: "Update the Vxlan1 flood list on multiple Arista switches",
	Long: "Resolves every target switch, computes the set of remote VTEP peers for each one " +
		"(all other switches in the run), and rewrites the Vxlan1 flood list over SSH or eAPI, " +
		"dispatching to all switches concurrently.",
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgUsername == "" {
			return errors.New("--username is required")
		}

		hosts := append([]string{}, args...)
		if cfgHostsFile != "" {
			fromFile, err := readHostsFile(cfgHostsFile)
			if err != nil {
				return fmt.Errorf("failed to read hosts file %s: %w", cfgHostsFile, err)
			}
			hosts = append(hosts, fromFile...)
		}
		if len(hosts) < 2 {
			return errors.New("at least two hosts must be specified")
		}

		if cfgDryRun {
			ips, err := resolveHosts(hosts)
			if err != nil {
				return err
			}
			printPlannedCommands(hosts, ips, !cfgUseEAPI)
			return nil
		}

		password, err := promptPasswordFunc()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		ips, err := resolveHosts(hosts)
		if err != nil {
			return err
		}

		d := newDispatcherFunc(cfgUsername, password)
		log.Info().Int("hosts", len(hosts)).Str("transport", transportName()).Msg("dispatching flood list updates")
		results := dispatchAll(hosts, ips, !cfgUseEAPI, d)

		if cfgReportPath != "" {
			if err := writeRunReport(cfgReportPath, transportName(), results); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
		}
		return nil
	},
}

// transportName labels the selected strategy for logs and reports.
func transportName() string {
	if cfgUseEAPI {
		return "eapi"
	}
	return "ssh"
}

// printPlannedCommands writes each host's generated command sequence to
// stdout without opening any connection to the switches.
func printPlannedCommands(hosts, ips []string, clearExisting bool) {
	for i, host := range hosts {
		commands := buildFloodCommands(remoteVTEPs(ips, ips[i]), clearExisting)
		_, _ = fmt.Fprintf(os.Stdout, "%s:\n", host)
		for _, c := range commands {
			_, _ = fmt.Fprintf(os.Stdout, "  %s\n", c)
		}
	}
}
