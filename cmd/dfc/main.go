// Package main is the entry point for the dfc CLI client.
package main

import (
	"github.com/mpoirier/dealflow/cmd/dfc/cmd"
)

func main() {
	cmd.Execute()
}
