// Package main is the entry point for schemactl, which inspects settings
// schemas and declarative indexer definitions.
package main

import (
	"os"

	"github.com/ThiRaBrTNK/Radarr/cmd/schemactl/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
