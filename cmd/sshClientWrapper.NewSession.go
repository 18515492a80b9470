package cmd

import "fmt"

// NewSession opens an exec channel on the underlying client and returns it
// behind the session interface, keeping runCLISession testable with fakes.
func (w sshClientWrapper) NewSession() (session, error) {
	if w.c == nil {
		return nil, fmt.Errorf("nil ssh client")
	}
	s, err := w.c.NewSession()
	if err != nil {
		return nil, err
	}
	return sshSessionWrapper{s}, nil
}
