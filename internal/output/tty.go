package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal. Spinners and
// styled summaries are suppressed when output is redirected.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
