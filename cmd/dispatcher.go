package cmd

// dispatcher sends an ordered command sequence to a single switch and returns
// the raw success payload. Implementations are stateless across calls: every
// invocation opens its own connection and tears it down.
type dispatcher interface {
	sendCommands(host string, commands []string) (string, error)
}

// newDispatcher selects the transport strategy once at startup. Workers share
// the returned value and never branch on transport themselves.
func newDispatcher(username, password string) dispatcher {
	if cfgUseEAPI {
		return newEAPIDispatcher(username, password, cfgVerifySSL)
	}
	return newSSHDispatcher(username, password)
}
