package cmd

import (
	"net"
	"time"
)

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

var (
	// Global configuration populated by flags and/or environment variables.
	// These are declared here so they are visible across the package.
	cfgUsername    string
	cfgHostsFile   string
	cfgUseEAPI     bool
	cfgVerifySSL   bool
	cfgKeyPath     string
	cfgPassphrase  string
	cfgKnownHosts  string
	cfgStrictHost  bool
	cfgSSHPort     int
	cfgConnTimeout time.Duration
	cfgReportPath  string
	cfgDryRun      bool
)

// Allow tests to stub resolution, dialing, dispatch and the password prompt
var (
	lookupIPFunc       = net.LookupIP
	dialSSHFunc        = dialSSH
	newDispatcherFunc  = newDispatcher
	promptPasswordFunc = promptPassword
)
