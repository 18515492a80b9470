package cmd

import "golang.org/x/crypto/ssh"

// sshClientWrapper adapts a dialed *ssh.Client to the sessionClient
// interface the dispatcher works against.
type sshClientWrapper struct {
	c *ssh.Client
}
