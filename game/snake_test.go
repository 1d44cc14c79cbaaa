package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake()
	require.Equal(t, []Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}, s.Body())
	require.Equal(t, Down, s.Direction())
	require.Equal(t, Point{X: 5, Y: 7}, s.Head())
	require.Equal(t, Point{X: 5, Y: 5}, s.Tail())
	require.Equal(t, uint64(0), s.FoodCount())
}

func TestSnake_MoveForward(t *testing.T) {
	tests := []struct {
		Direction Direction
		Expected  Point
	}{
		{
			Direction: Up,
			Expected:  Point{X: 5, Y: 4},
		},
		{
			Direction: Down,
			Expected:  Point{X: 5, Y: 6},
		},
		{
			Direction: Left,
			Expected:  Point{X: 4, Y: 5},
		},
		{
			Direction: Right,
			Expected:  Point{X: 6, Y: 5},
		},
	}

	for _, test := range tests {
		s := NewSnakeWithBody(test.Direction, []Point{{X: 5, Y: 5}})
		s.MoveForward()
		require.Equal(t, test.Expected, s.Head(), "Direction: %s", test.Direction)
		require.Equal(t, 1, s.Len())
	}
}

func TestSnake_MoveForwardDropsTail(t *testing.T) {
	s := NewSnake()
	s.MoveForward()
	require.Equal(t, []Point{{X: 5, Y: 6}, {X: 5, Y: 7}, {X: 5, Y: 8}}, s.Body())
	require.Equal(t, uint64(0), s.FoodCount())
}

func TestSnake_GrowForward(t *testing.T) {
	s := NewSnake()
	s.GrowForward()
	require.Equal(t, []Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}, {X: 5, Y: 8}}, s.Body())
	require.Equal(t, uint64(1), s.FoodCount())

	s.SetDirection(Right)
	s.GrowForward()
	require.Equal(t, Point{X: 6, Y: 8}, s.Head())
	require.Equal(t, 5, s.Len())
	require.Equal(t, uint64(2), s.FoodCount())
}

func TestSnake_AdvancedDoesNotMutate(t *testing.T) {
	s := NewSnake()
	candidate := s.Advanced()
	require.Equal(t, []Point{{X: 5, Y: 6}, {X: 5, Y: 7}, {X: 5, Y: 8}}, candidate)
	require.Equal(t, []Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}, s.Body())
}

func TestSnake_BodyIsSnapshot(t *testing.T) {
	s := NewSnake()
	body := s.Body()
	body[0] = Point{X: 40, Y: 40}
	require.Equal(t, Point{X: 5, Y: 5}, s.Tail())
}

func TestSnake_Adjacency(t *testing.T) {
	s := NewSnake()
	turns := []Direction{Down, Right, Right, Up, Up, Left, Down, Left}
	for i, d := range turns {
		s.SetDirection(d)
		before := s.Head()
		if i%3 == 0 {
			s.GrowForward()
		} else {
			s.MoveForward()
		}
		require.Equal(t, before.Step(s.Direction()), s.Head())
		dx, dy := s.Head().X-before.X, s.Head().Y-before.Y
		require.Equal(t, 1, abs(dx)+abs(dy))
	}
}

func TestSnake_SetDirection(t *testing.T) {
	tests := []struct {
		Current   Direction
		Requested Direction
		Expected  Direction
		Accepted  bool
	}{
		{Up, Down, Up, false},
		{Down, Up, Down, false},
		{Left, Right, Left, false},
		{Right, Left, Right, false},
		{Up, Left, Left, true},
		{Up, Right, Right, true},
		{Up, Up, Up, true},
		{Down, Left, Left, true},
		{Left, Up, Up, true},
		{Right, Down, Down, true},
	}

	for _, test := range tests {
		s := NewSnakeWithBody(test.Current, []Point{{X: 5, Y: 5}})
		accepted := s.SetDirection(test.Requested)
		require.Equal(t, test.Accepted, accepted, "%s -> %s", test.Current, test.Requested)
		require.Equal(t, test.Expected, s.Direction(), "%s -> %s", test.Current, test.Requested)
	}
}

func TestSnake_SetDirectionInvalid(t *testing.T) {
	s := NewSnake()
	require.PanicsWithValue(t, "game: invalid direction 9", func() { s.SetDirection(Direction(9)) })
	require.PanicsWithValue(t, "game: invalid direction -1", func() { s.SetDirection(Direction(-1)) })
	require.Equal(t, Down, s.Direction())
}

func TestSnake_EmptyBodyPanics(t *testing.T) {
	require.Panics(t, func() { NewSnakeWithBody(Up, nil) })

	s := &Snake{}
	require.Panics(t, func() { s.MoveForward() })
	require.Panics(t, func() { s.GrowForward() })
	require.Panics(t, func() { s.Head() })
	require.Panics(t, func() { s.Tail() })
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
