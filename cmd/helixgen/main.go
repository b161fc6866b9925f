package main

import (
	"os"

	"github.com/wilkerlucio/helix/cmd/helixgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
