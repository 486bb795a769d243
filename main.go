// Package main is the entry point for drivesize.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/drivesize/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Version is injected by the linker
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}
