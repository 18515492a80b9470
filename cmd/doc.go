// Package cmd implements the arista-vtep-update command-line interface.
//
// The tool rewrites the Vxlan1 flood list on a set of Arista switches so
// that each switch floods to the resolved addresses of all the other
// switches in the run. Commands are delivered either over SSH (default) or
// via the eAPI JSON-RPC endpoint, dispatched to all switches concurrently.
//
// New contributors should start by reading rootCmd.go for the end-to-end
// workflow, dispatcher.go for the transport strategy interface, and
// fanout.go for how per-host results are collected and printed.
package cmd
