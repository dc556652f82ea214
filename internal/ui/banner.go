package ui

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/lavamaze/internal/gamedata"
)

var (
	bannerWon  = color.Style{color.FgGreen, color.OpBold}
	bannerLost = color.Style{color.FgRed, color.OpBold}
)

// PrintOutcome writes the final win or loss message to w. It is meant for
// the plain terminal, after the screen has been closed.
func PrintOutcome(w io.Writer, catalog *gamedata.Catalog, won bool) error {
	var err error
	if won {
		_, err = fmt.Fprintln(w, bannerWon.Sprint(catalog.Get("NOTICE_WON")))
	} else {
		_, err = fmt.Fprintln(w, bannerLost.Sprint(catalog.Get("NOTICE_LOST")))
	}
	return err
}
