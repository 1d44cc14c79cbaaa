package game

// Direction is the heading of the snake. There is no "none" heading.
type Direction int

// Headings. Y grows downwards, as it does on a terminal.
const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

func (d Direction) valid() bool {
	_, ok := directionNames[d]
	return ok
}

// Opposite returns the heading that would turn the snake back onto itself.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	panic("game: invalid direction")
}

// Delta returns the x,y offset of a single step in this direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic("game: invalid direction")
}
