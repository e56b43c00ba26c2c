package main

import "github.com/brb-sh/brb/cmd"

func main() {
	cmd.Execute()
}
