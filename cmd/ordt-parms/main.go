package main

import (
	"os"

	"github.com/msto63/ordt/cmd/ordt-parms/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
