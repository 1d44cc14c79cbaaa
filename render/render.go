// Package render composes game frames out of Renderer primitives.
package render

import (
	"strconv"

	"github.com/battlesnakeio/termsnake/game"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/term"
)

const (
	snakeGlyph = '#'
	foodGlyph  = '*'

	borderColor = term.ColorRed
	snakeColor  = term.ColorGreen
	foodColor   = term.ColorYellow
	textColor   = term.ColorWhite
	bgColor     = term.ColorBlack

	// StatusText is shown on the bottom row of every frame.
	StatusText   = "Press 'q' to quit"
	gameOverText = "GAME OVER"
)

// Frame draws the board, the snake, the food and the counters, then
// presents the frame.
func Frame(r term.Renderer, g *rules.Game) error {
	r.Clear()
	r.DrawBorder(g.Bounds, borderColor)
	renderSnake(r, g.Snake)
	renderFood(r, g.Food)
	renderText(r, g)
	if rules.CheckForGameOver(g) && g.Cause == rules.DeathCauseWallCollision {
		renderGameOver(r, g.Bounds)
	}
	return r.Present()
}

func renderSnake(r term.Renderer, s *game.Snake) {
	for _, b := range s.Body() {
		r.DrawCell(b, snakeGlyph, snakeColor, bgColor)
	}
}

func renderFood(r term.Renderer, f game.Food) {
	if !f.Active {
		return
	}
	r.DrawCell(f.Position, foodGlyph, foodColor, bgColor)
}

func renderText(r term.Renderer, g *rules.Game) {
	count := strconv.FormatUint(g.Snake.FoodCount(), 10)
	r.DrawText(game.Point{X: 0, Y: 0}, count, textColor, bgColor)
	r.DrawText(game.Point{X: 0, Y: g.Bounds.Height - 1}, StatusText, textColor, bgColor)
}

func renderGameOver(r term.Renderer, b game.Bounds) {
	x := (b.Width - term.TextWidth(gameOverText)) / 2
	if x < 0 {
		x = 0
	}
	r.DrawText(game.Point{X: x, Y: b.Height / 2}, gameOverText, textColor, borderColor)
}
