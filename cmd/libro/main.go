package main

import (
	"os"

	"github.com/libro-dev/libro/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
