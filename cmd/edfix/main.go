package main

import (
	"os"

	"edfix/cmd/edfix/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
