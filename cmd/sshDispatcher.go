package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// sshDispatcher delivers commands through a one-shot SSH exec session using
// the EOS Cli binary in privileged mode. Each dispatch dials its own
// connection and closes it when done.
type sshDispatcher struct {
	username string
	password string
}

func newSSHDispatcher(username, password string) sshDispatcher {
	return sshDispatcher{username: username, password: password}
}

// cliInvocation wraps the command sequence into a single privileged Cli
// call. "configure terminal" is prepended so every generated command runs in
// configuration mode.
func cliInvocation(commands []string) string {
	joined := strings.Join(append([]string{"configure terminal"}, commands...), " ; ")
	return "Cli -p 15 -c " + shellQuote(joined)
}

func (d sshDispatcher) sendCommands(host string, commands []string) (string, error) {
	target := fmt.Sprintf("%s:%d", host, cfgSSHPort)
	client, err := dialSSHFunc(target, d.username, d.password, cfgKeyPath, cfgPassphrase, cfgKnownHosts, cfgStrictHost, cfgConnTimeout)
	if err != nil {
		return "", errors.Wrap(err, "ssh connection failed")
	}
	defer func() { _ = client.Close() }()
	return runCLISession(sshClientWrapper{client}, cliInvocation(commands))
}

// runCLISession executes the composite invocation on a fresh session. Any
// output on the remote error channel, even bare whitespace, marks the
// dispatch as failed carrying that text, regardless of the exit status.
func runCLISession(client sessionClient, invocation string) (string, error) {
	sess, err := client.NewSession()
	if err != nil {
		return "", errors.Wrap(err, "failed to open session")
	}
	defer func() { _ = sess.Close() }()

	stdout, stderr, err := sess.Run(invocation)
	trimmed := strings.TrimSpace(string(stderr))
	if err != nil {
		if trimmed != "" {
			return "", errors.Wrapf(err, "remote error: %s", trimmed)
		}
		return "", err
	}
	if len(stderr) > 0 {
		return "", errors.Errorf("remote error: %q", string(stderr))
	}
	return string(stdout), nil
}
