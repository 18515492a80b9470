package cmd

// session is a minimal interface for running a command with separately
// captured output streams and closing.
type session interface {
	Run(cmd string) (stdout, stderr []byte, err error)
	Close() error
}
