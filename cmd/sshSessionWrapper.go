package cmd

import "golang.org/x/crypto/ssh"

// sshSessionWrapper puts an *ssh.Session behind the session interface, which
// the stderr failure contract needs for separately captured streams.
type sshSessionWrapper struct {
	s *ssh.Session
}
