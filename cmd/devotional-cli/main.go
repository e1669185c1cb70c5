package main

import "devotional/cmd/devotional-cli/cmd"

func main() {
	cmd.Execute()
}
