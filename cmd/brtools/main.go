// Package main é o ponto de entrada da CLI brtools
package main

import (
	"os"

	"github.com/magnani/brtools/cmd/brtools/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
