package coclash

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DetectWidth returns the terminal width for the given file descriptor. It
// falls back to the COLUMNS environment variable when the descriptor is not
// a terminal, and to 80 columns when that is unset or unusable.
func DetectWidth(fd uintptr) int {
	if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
		return w
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

// DetectColor reports whether ANSI styling should be used when writing to f.
// The NO_COLOR and CLICOLOR conventions are honored and non-terminal outputs
// stay plain.
func DetectColor(f *os.File) bool {
	if termenv.EnvNoColor() {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
