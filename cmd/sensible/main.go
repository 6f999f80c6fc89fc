// Package main is the entrypoint for sensible, a terminal dashboard for
// hardware sensor readings.
package main

import "github.com/sensible-monitor/sensible/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
