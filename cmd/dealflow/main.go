// Package main is the entry point for the dealflow server.
package main

import (
	"os"

	"github.com/mpoirier/dealflow/cmd/dealflow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
