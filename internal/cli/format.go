package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// PrintError prints an error message to w, colored only when w is a terminal.
// fatih/color's own detection looks at stdout, not at w.
func PrintError(w io.Writer, err error) {
	errorColor := color.New(color.FgRed, color.Bold)
	if isTerminal(w) {
		errorColor.EnableColor()
	} else {
		errorColor.DisableColor()
	}
	_, _ = errorColor.Fprintf(w, "✗ %v\n", err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
