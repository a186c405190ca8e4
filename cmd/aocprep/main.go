package main

import (
	"os"

	"github.com/raveheart1/aocprep/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCodeFor(err))
	}
}
