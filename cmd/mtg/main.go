package main

import "github.com/torisaki/mtg/cmd/mtg/cmd"

func main() {
	cmd.Execute()
}
