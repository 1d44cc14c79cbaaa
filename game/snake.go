package game

import "fmt"

// Snake owns the ordered body of the snake. Body[0] is the tail and the last
// element is the head; moves append at the head end.
type Snake struct {
	body      []Point
	direction Direction
	foodCount uint64
}

// NewSnake returns the three segment snake every game starts with, heading
// down.
func NewSnake() *Snake {
	return NewSnakeWithBody(Down, []Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 5, Y: 7},
	})
}

// NewSnakeWithBody builds a snake from tail-first segments. It panics on an
// empty body.
func NewSnakeWithBody(d Direction, body []Point) *Snake {
	if len(body) == 0 {
		panic("game: snake body must not be empty")
	}
	b := make([]Point, len(body))
	copy(b, body)
	return &Snake{body: b, direction: d}
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// SetDirection changes the heading unless d points straight back. Reversal
// requests are ignored and reported as false. An unknown heading panics.
func (s *Snake) SetDirection(d Direction) bool {
	if !d.valid() {
		panic(fmt.Sprintf("game: invalid direction %d", int(d)))
	}
	if d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// MoveForward advances the head one cell and drops the tail.
func (s *Snake) MoveForward() {
	head := s.nextHead()
	s.body = append(s.body[1:], head)
}

// GrowForward advances the head one cell and keeps the tail, then counts the
// food eaten.
func (s *Snake) GrowForward() {
	head := s.nextHead()
	s.body = append(s.body, head)
	s.foodCount++
}

// Advanced returns the body as it would look after MoveForward, without
// changing the snake.
func (s *Snake) Advanced() []Point {
	head := s.nextHead()
	out := make([]Point, 0, len(s.body))
	out = append(out, s.body[1:]...)
	return append(out, head)
}

// Body returns a copy of the segments, tail first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the most recently added segment.
func (s *Snake) Head() Point {
	s.mustHaveBody()
	return s.body[len(s.body)-1]
}

// Tail returns the oldest segment.
func (s *Snake) Tail() Point {
	s.mustHaveBody()
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// FoodCount returns how many times the snake has grown.
func (s *Snake) FoodCount() uint64 {
	return s.foodCount
}

func (s *Snake) nextHead() Point {
	return s.Head().Step(s.direction)
}

func (s *Snake) mustHaveBody() {
	if len(s.body) == 0 {
		panic("game: snake has no segments")
	}
}
