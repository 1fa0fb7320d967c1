package util

import (
	"os"

	"golang.org/x/term"
)

// DefaultTerminalWidth is used when stdout is not attached to a terminal.
const DefaultTerminalWidth = 80

// TerminalWidth returns the column width of the terminal attached to stdout,
// or DefaultTerminalWidth when stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}

	return DefaultTerminalWidth
}
