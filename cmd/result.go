package cmd

// hostResult holds the outcome of one host's dispatch. Results are
// uncorrelated across hosts: one host's failure never invalidates another's
// success.
type hostResult struct {
	Host    string
	Payload string
	Err     error
}
