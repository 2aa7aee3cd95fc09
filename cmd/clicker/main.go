package main

import (
	"os"

	"github.com/idilsaglam/clicker/cmd/clicker/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
