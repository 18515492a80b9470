package cmd

import "bytes"

// Run executes cmd on the underlying ssh.Session with stdout and stderr
// captured into separate buffers, so callers can inspect the error channel
// on its own.
func (w sshSessionWrapper) Run(cmd string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	w.s.Stdout = &stdout
	w.s.Stderr = &stderr
	err := w.s.Run(cmd)
	return stdout.Bytes(), stderr.Bytes(), err
}
