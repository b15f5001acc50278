package main

import (
	"github.com/syromorph/syromorph/pkg/cli"
)

// set via -ldflags at release time
var version string

func main() {
	cli.Execute(version)
}
