package term

import (
	"fmt"
	"io"

	"github.com/battlesnakeio/termsnake/game"
	"github.com/pkg/errors"
)

// Setup sets the window title and asks the terminal emulator to resize to
// the board. Terminals that do not support the sequences ignore them.
func Setup(w io.Writer, b game.Bounds, title string) error {
	if _, err := fmt.Fprintf(w, "\x1b]0;%s\x07", title); err != nil {
		return errors.Wrap(err, "set title")
	}
	if _, err := fmt.Fprintf(w, "\x1b[8;%d;%dt", b.Height, b.Width); err != nil {
		return errors.Wrap(err, "set size")
	}
	return nil
}
