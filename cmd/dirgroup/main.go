package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirgroup/internal/cli"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

func main() {
	if err := cli.New(Version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
