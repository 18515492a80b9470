package cmd

import "os"

// exitFunc is the process exit hook. Tests swap it out to observe the exit
// code instead of terminating the test binary.
var exitFunc = os.Exit
