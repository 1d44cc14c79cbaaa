package game

// Default board dimensions.
const (
	DefaultWidth  = 75
	DefaultHeight = 35
)

// Bounds is the play area. The outermost ring of cells is the wall.
type Bounds struct {
	Width  int
	Height int
}

// DefaultBounds returns the fixed 75x35 board.
func DefaultBounds() Bounds {
	return Bounds{Width: DefaultWidth, Height: DefaultHeight}
}

// OnBorder reports whether p lies on the wall ring.
func (b Bounds) OnBorder(p Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == b.Width-1 || p.Y == b.Height-1
}

// Contains reports whether p is on the board, wall included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.Width && p.Y < b.Height
}
