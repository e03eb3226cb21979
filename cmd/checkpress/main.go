package main

import (
	"os"

	"github.com/checkpress-dev/checkpress/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
