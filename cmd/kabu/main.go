package main

import (
	"os"

	"github.com/wonny/kabu/cmd/kabu/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
