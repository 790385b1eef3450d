package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for stderr messages.
const (
	ColorRed  = "196" // Error prefix
	ColorGray = "245" // Hints
)

// Styles holds the styles used on stderr.
type Styles struct {
	Error lipgloss.Style
	Hint  lipgloss.Style
}

// DefaultStyles returns colored styles bound to a renderer for w, so the
// color profile follows w rather than stdout.
func DefaultStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Error: r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
		Hint:  r.NewStyle().Foreground(lipgloss.Color(ColorGray)),
	}
}

// NoColorStyles returns styles that render text unchanged.
func NoColorStyles() Styles {
	return Styles{
		Error: lipgloss.NewStyle(),
		Hint:  lipgloss.NewStyle(),
	}
}
