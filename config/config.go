package config

import (
	"time"

	"github.com/battlesnakeio/termsnake/game"
	"golang.org/x/time/rate"
)

// Configuration variables. These are compiled in and not user facing; the
// board size and the game speed are fixed.
var (
	Bounds          = game.DefaultBounds()
	Title           = "Snake"
	TickInterval    = 500 * time.Millisecond
	MaxCatchUpTicks = 3
	FrameRate       = rate.Limit(30)
	FrameBurst      = 1
	GameOverHold    = 2 * time.Second
)
