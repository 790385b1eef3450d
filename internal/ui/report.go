package ui

import (
	"fmt"
	"io"
	"strings"

	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
)

// ErrorReporter writes failures to stderr.
type ErrorReporter struct {
	out    io.Writer
	styles Styles
}

// NewErrorReporter creates a reporter for out. Color is used only when
// color is true.
func NewErrorReporter(out io.Writer, color bool) *ErrorReporter {
	styles := NoColorStyles()
	if color {
		styles = DefaultStyles(out)
	}
	return &ErrorReporter{out: out, styles: styles}
}

// Report writes err as rendered by errors.FormatForCLI, styling the
// "Error:" prefix and hint lines. A nil err writes nothing.
func (r *ErrorReporter) Report(err error) {
	text := mgerrors.FormatForCLI(err)
	if text == "" {
		return
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "Error:"):
			line = r.styles.Error.Render("Error:") + strings.TrimPrefix(line, "Error:")
		case strings.HasPrefix(line, "  Hint:"):
			line = r.styles.Hint.Render(strings.TrimSuffix(line, "\n")) + "\n"
		}
		_, _ = fmt.Fprint(r.out, line)
	}
}
