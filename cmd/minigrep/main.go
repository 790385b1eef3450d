// Package main provides the entry point for the minigrep CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/minigrep/cmd/minigrep/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
