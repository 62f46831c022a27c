package main

import (
	"os"

	"kozeni/cmd/kozeni/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
