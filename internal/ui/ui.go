// Package ui renders minigrep's stderr messages for humans.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY checks if w is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// ColorEnabled reports whether messages written to w may be colored:
// w must be a terminal and NO_COLOR must be unset.
func ColorEnabled(w io.Writer, lookupEnv func(string) (string, bool)) bool {
	if lookupEnv != nil {
		if _, set := lookupEnv("NO_COLOR"); set {
			return false
		}
	}
	return IsTTY(w)
}
