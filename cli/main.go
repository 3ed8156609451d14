package main

import (
	"os"

	"github.com/attrlang/asl-go/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
