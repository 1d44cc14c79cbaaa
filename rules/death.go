package rules

import "github.com/battlesnakeio/termsnake/game"

// deathByWallCollision scans the whole body, not just the head.
func deathByWallCollision(bounds game.Bounds, body []game.Point) bool {
	for _, p := range body {
		if bounds.OnBorder(p) {
			return true
		}
	}
	return false
}

func ateFood(body []game.Point, food game.Food) bool {
	if !food.Active {
		return false
	}
	for _, p := range body {
		if p.Equal(food.Position) {
			return true
		}
	}
	return false
}
