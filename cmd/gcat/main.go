package main

import (
	"fmt"
	"os"

	"gcat/cmd/gcat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gcat: %v\n", err)
		os.Exit(1)
	}
}
