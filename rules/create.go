package rules

import (
	"github.com/battlesnakeio/termsnake/game"
	uuid "github.com/satori/go.uuid"
)

// Game is the whole simulation state of one session.
type Game struct {
	ID     string
	Bounds game.Bounds
	Snake  *game.Snake
	Food   game.Food
	Turn   int64
	Status GameStatus
	Cause  string
}

// NewGame creates a running game with the starting snake and food.
func NewGame(bounds game.Bounds) *Game {
	return &Game{
		ID:     uuid.NewV4().String(),
		Bounds: bounds,
		Snake:  game.NewSnake(),
		Food:   game.NewFood(),
		Status: GameStatusRunning,
	}
}
