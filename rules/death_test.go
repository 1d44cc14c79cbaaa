package rules

import (
	"testing"

	"github.com/battlesnakeio/termsnake/game"
	"github.com/stretchr/testify/require"
)

func TestEvaluateWallCollision(t *testing.T) {
	bounds := game.DefaultBounds()
	points := []game.Point{
		{X: 0, Y: 10},
		{X: 74, Y: 10},
		{X: 10, Y: 0},
		{X: 10, Y: 34},
	}
	for _, p := range points {
		body := []game.Point{{X: 10, Y: 10}, {X: 11, Y: 10}, p}
		require.Equal(t, GameOver, Evaluate(bounds, body, game.NewFood()), "point %s", p)
	}
}

func TestEvaluateWallCollisionAnySegment(t *testing.T) {
	body := []game.Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}
	require.Equal(t, GameOver, Evaluate(game.DefaultBounds(), body, game.NewFood()))
}

func TestEvaluateHeadOnWall(t *testing.T) {
	body := []game.Point{{X: 1, Y: 10}, {X: 0, Y: 10}}
	require.Equal(t, GameOver, Evaluate(game.DefaultBounds(), body, game.NewFood()))
}

func TestEvaluateWallBeatsFood(t *testing.T) {
	body := []game.Point{{X: 1, Y: 10}, {X: 0, Y: 10}}
	food := game.Food{Position: game.Point{X: 1, Y: 10}, Active: true}
	require.Equal(t, GameOver, Evaluate(game.DefaultBounds(), body, food))
}

func TestEvaluateFood(t *testing.T) {
	body := []game.Point{{X: 5, Y: 6}, {X: 5, Y: 7}, {X: 5, Y: 8}}

	head := game.Food{Position: game.Point{X: 5, Y: 8}, Active: true}
	require.Equal(t, Grow, Evaluate(game.DefaultBounds(), body, head))

	under := game.Food{Position: game.Point{X: 5, Y: 6}, Active: true}
	require.Equal(t, Grow, Evaluate(game.DefaultBounds(), body, under))

	inactive := game.Food{Position: game.Point{X: 5, Y: 8}}
	require.Equal(t, Continue, Evaluate(game.DefaultBounds(), body, inactive))
}

func TestEvaluateSelfOverlapContinues(t *testing.T) {
	body := []game.Point{
		{X: 10, Y: 10},
		{X: 11, Y: 10},
		{X: 11, Y: 11},
		{X: 10, Y: 11},
		{X: 10, Y: 10},
	}
	require.Equal(t, Continue, Evaluate(game.DefaultBounds(), body, game.NewFood()))
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "continue", Continue.String())
	require.Equal(t, "grow", Grow.String())
	require.Equal(t, "game-over", GameOver.String())
}
