package cmd

// Close releases the wrapped ssh.Session.
func (w sshSessionWrapper) Close() error {
	return w.s.Close()
}
