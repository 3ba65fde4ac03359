package main

import (
	"os"

	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
