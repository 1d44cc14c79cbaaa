package rules

import (
	"github.com/battlesnakeio/termsnake/game"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// GameTick runs the game one tick and updates the state. The heading must
// already reflect this tick's input. Nothing is committed until the candidate
// body has been evaluated: a Grow commits GrowForward in place of
// MoveForward and relocates the food.
func GameTick(g *Game, rng game.Rand) (Outcome, error) {
	if g == nil {
		return Continue, errors.New("rules: invalid state, game is nil")
	}
	if CheckForGameOver(g) {
		return GameOver, errors.Errorf("rules: game %s is not running", g.ID)
	}

	g.Turn++
	candidate := g.Snake.Advanced()
	outcome := Evaluate(g.Bounds, candidate, g.Food)

	switch outcome {
	case Grow:
		eaten := g.Food.Position
		g.Snake.GrowForward()
		g.Food.Active = false
		g.Food.Relocate(g.Bounds, rng)
		log.WithFields(log.Fields{
			"GameID":    g.ID,
			"Turn":      g.Turn,
			"Food":      eaten,
			"NextFood":  g.Food.Position,
			"FoodCount": g.Snake.FoodCount(),
		}).Info("snake ate")
	case GameOver:
		g.Snake.MoveForward()
		EndGame(g, DeathCauseWallCollision)
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   g.Turn,
			"Head":   g.Snake.Head(),
		}).Info("wall collision")
	default:
		g.Snake.MoveForward()
	}

	log.WithFields(log.Fields{
		"GameID":    g.ID,
		"Turn":      g.Turn,
		"Direction": g.Snake.Direction(),
		"Head":      g.Snake.Head(),
		"Length":    g.Snake.Len(),
		"Outcome":   outcome,
	}).Debug("tick")
	return outcome, nil
}
