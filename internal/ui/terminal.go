package ui

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// MinWidth and MinHeight fit the map, the HUD and the legend below it.
const (
	MinWidth  = 80
	MinHeight = livesRow + legendGap + legendLines
)

// ErrNotTerminal is returned when stdin or stdout is not an interactive terminal.
var ErrNotTerminal = errors.New("lavamaze needs an interactive terminal")

// RequireTerminal checks that both stdin and stdout are terminals, since the
// game cannot run in raw mode otherwise.
func RequireTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	return nil
}

// TerminalSize returns the current terminal width and height.
// Falls back to the minimum size if it cannot be determined.
func TerminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinWidth, MinHeight
	}
	return width, height
}

// FitsTerminal reports whether a width×height terminal shows the whole layout.
func FitsTerminal(width, height int) bool {
	return width >= MinWidth && height >= MinHeight
}
