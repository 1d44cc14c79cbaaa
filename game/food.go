package game

// foodMargin keeps food away from the wall on every side.
const foodMargin = 5

// Rand is the source of randomness used to place food. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Food is the single food item on the board.
type Food struct {
	Position Point
	Active   bool
}

// NewFood returns the food at its starting position.
func NewFood() Food {
	return Food{
		Position: Point{X: 3, Y: 3},
		Active:   true,
	}
}

// Relocate moves the food to a random cell inside the inset rectangle
// [5, width-5) x [5, height-5). Snake occupancy is not considered, food may
// land under the body.
func (f *Food) Relocate(b Bounds, rng Rand) {
	f.Position = Point{
		X: insetCoord(b.Width, rng),
		Y: insetCoord(b.Height, rng),
	}
	f.Active = true
}

func insetCoord(size int, rng Rand) int {
	span := size - 2*foodMargin
	if span <= 0 {
		return size / 2
	}
	return foodMargin + rng.Intn(span)
}
