// Package main is the entry point for the invoicer CLI.
package main

import (
	"os"

	"github.com/orderdesk/invoicer/cmd/invoicer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
