package main

import (
	"fmt"
	"os"
)

// Version is reported by --version and overridden at build time via -ldflags.
var Version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "mdindex:", err)
		os.Exit(1)
	}
}
