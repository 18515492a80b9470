package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init configures the root command's flags and binds them to environment
// variables via Viper. The password is deliberately absent from both flags
// and environment bindings: it is only ever read from the terminal.
func init() {
	rootCmd.Flags().StringVarP(&cfgUsername, "username", "u", "", "Login username (required)")
	rootCmd.Flags().StringVarP(&cfgHostsFile, "hosts-file", "f", "", "File containing hostnames or IP addresses, one per line")
	rootCmd.Flags().BoolVar(&cfgVerifySSL, "verify-ssl", false, "Verify SSL certificates when connecting via eAPI")
	rootCmd.Flags().BoolVar(&cfgUseEAPI, "use-eapi", false, "Use eAPI instead of SSH")
	rootCmd.Flags().IntVar(&cfgSSHPort, "ssh-port", 22, "SSH port on the switches")
	rootCmd.Flags().DurationVar(&cfgConnTimeout, "conn-timeout", 15*time.Second, "SSH connection timeout")
	rootCmd.Flags().StringVar(&cfgKeyPath, "key", "", "Path to SSH private key (PEM, OpenSSH); used in addition to the password")
	rootCmd.Flags().StringVar(&cfgPassphrase, "passphrase", "", "Private key passphrase (or set ARISTA_VTEP_PASSPHRASE)")
	rootCmd.Flags().StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	rootCmd.Flags().BoolVar(&cfgStrictHost, "strict-host-key", false, "Require host key verification (default accepts any host key)")
	rootCmd.Flags().StringVar(&cfgReportPath, "report", "", "Write a YAML run report to this path")
	rootCmd.Flags().BoolVar(&cfgDryRun, "dry-run", false, "Print planned command sequences without contacting any switch")

	// Bind env with Viper
	_ = viper.BindPFlag("username", rootCmd.Flags().Lookup("username"))
	_ = viper.BindPFlag("hosts-file", rootCmd.Flags().Lookup("hosts-file"))
	_ = viper.BindPFlag("key", rootCmd.Flags().Lookup("key"))
	_ = viper.BindPFlag("passphrase", rootCmd.Flags().Lookup("passphrase"))
	_ = viper.BindPFlag("known-hosts", rootCmd.Flags().Lookup("known-hosts"))
	_ = viper.BindPFlag("ssh-port", rootCmd.Flags().Lookup("ssh-port"))
	_ = viper.BindPFlag("conn-timeout", rootCmd.Flags().Lookup("conn-timeout"))

	viper.SetEnvPrefix("ARISTA_VTEP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("username"); v != "" {
			cfgUsername = v
		}
		if v := viper.GetString("hosts-file"); v != "" {
			cfgHostsFile = v
		}
		if v := viper.GetString("key"); v != "" {
			cfgKeyPath = v
		}
		if v := viper.GetString("passphrase"); v != "" {
			cfgPassphrase = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		if v := viper.GetInt("ssh-port"); v != 0 {
			cfgSSHPort = v
		}
		if v := viper.GetString("conn-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgConnTimeout = d
			}
		}
	})
}
