package term

import (
	"github.com/battlesnakeio/termsnake/game"
	"github.com/mattn/go-runewidth"
)

const (
	borderHorizontal  = '━'
	borderVertical    = '┃'
	borderTopLeft     = '┏'
	borderTopRight    = '┓'
	borderBottomLeft  = '┗'
	borderBottomRight = '┛'
)

// drawer implements the shape drawing of Renderer on top of a single cell
// setter supplied by the backend.
type drawer struct {
	set func(x, y int, ch rune, fg, bg Color)
}

// DrawBorder draws the wall ring of b.
func (d drawer) DrawBorder(b game.Bounds, c Color) {
	right, bottom := b.Width-1, b.Height-1
	if right < 1 || bottom < 1 {
		return
	}
	for x := 1; x < right; x++ {
		d.set(x, 0, borderHorizontal, c, ColorDefault)
		d.set(x, bottom, borderHorizontal, c, ColorDefault)
	}
	for y := 1; y < bottom; y++ {
		d.set(0, y, borderVertical, c, ColorDefault)
		d.set(right, y, borderVertical, c, ColorDefault)
	}
	d.set(0, 0, borderTopLeft, c, ColorDefault)
	d.set(right, 0, borderTopRight, c, ColorDefault)
	d.set(0, bottom, borderBottomLeft, c, ColorDefault)
	d.set(right, bottom, borderBottomRight, c, ColorDefault)
}

// DrawCell sets a single cell.
func (d drawer) DrawCell(p game.Point, glyph rune, fg, bg Color) {
	d.set(p.X, p.Y, glyph, fg, bg)
}

// DrawText writes text left to right starting at p.
func (d drawer) DrawText(p game.Point, text string, fg, bg Color) {
	x := p.X
	for _, c := range text {
		d.set(x, p.Y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}

// TextWidth returns the number of cells text occupies.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}
