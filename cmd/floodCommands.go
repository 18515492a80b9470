package cmd

// buildFloodCommands produces the CLI sequence that rewrites the Vxlan1
// flood list with the given peers, in the given order. When clearExisting is
// set, "no vxlan flood vtep" removes all currently configured remote VTEP
// addresses before the new entries are added, so repeated runs converge on
// exactly the peer set instead of accumulating stale entries.
func buildFloodCommands(peers []string, clearExisting bool) []string {
	commands := []string{"interface Vxlan1"}
	if clearExisting {
		commands = append(commands, "no vxlan flood vtep")
	}
	for _, ip := range peers {
		commands = append(commands, "vxlan flood vtep "+ip)
	}
	commands = append(commands, "exit")
	return commands
}
