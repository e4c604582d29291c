// main is the entry point for the mediamath CLI.
package main

import (
	"github.com/adtools/mediamath/cmd"
	"github.com/adtools/mediamath/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run mediamath", err)
	}
}
