package main

import "github.com/Slacksarenice/arista-vtep-update/cmd"

func main() {
	cmd.Execute()
}
