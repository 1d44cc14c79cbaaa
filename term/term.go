package term

import (
	"time"

	"github.com/battlesnakeio/termsnake/game"
)

// Key is a decoded key press.
type Key int

// Keys the game reacts to. Anything else decodes to KeyOther.
const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

// Event is a single key event from the input source.
type Event struct {
	Key Key
}

// Direction maps an arrow key to a heading.
func (k Key) Direction() (game.Direction, bool) {
	switch k {
	case KeyUp:
		return game.Up, true
	case KeyDown:
		return game.Down, true
	case KeyLeft:
		return game.Left, true
	case KeyRight:
		return game.Right, true
	}
	return game.Up, false
}

// Color is a backend independent cell color.
type Color int

// Palette.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
)

// Renderer draws one frame at a time. Nothing is visible until Present.
type Renderer interface {
	Clear()
	DrawBorder(b game.Bounds, c Color)
	DrawCell(p game.Point, glyph rune, fg, bg Color)
	DrawText(p game.Point, text string, fg, bg Color)
	Present() error
}

// InputSource yields key events. A zero timeout never blocks.
type InputSource interface {
	Poll(timeout time.Duration) (Event, bool)
}

// Screen is a terminal session: drawing, input and teardown.
type Screen interface {
	Renderer
	InputSource
	Close() error
}
