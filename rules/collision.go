package rules

import "github.com/battlesnakeio/termsnake/game"

// Outcome is the result of evaluating one tick.
type Outcome int

// Tick outcomes, in the order the collision rules are checked.
const (
	Continue Outcome = iota
	Grow
	GameOver
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Grow:
		return "grow"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// Evaluate checks a candidate body against the wall and the food. A wall hit
// by any segment wins over eating. The snake may overlap itself freely.
func Evaluate(bounds game.Bounds, body []game.Point, food game.Food) Outcome {
	if deathByWallCollision(bounds, body) {
		return GameOver
	}
	if ateFood(body, food) {
		return Grow
	}
	return Continue
}
