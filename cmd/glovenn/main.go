package main

import (
	"fmt"
	"os"

	"github.com/wordvec/glovenn/cmd/glovenn/commands"
)

// Version information (set by the release build)
var version = "dev"

func main() {
	if err := commands.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
