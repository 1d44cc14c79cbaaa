package term

import (
	"strings"
	"time"

	"github.com/battlesnakeio/termsnake/game"
)

// TextScreen renders into memory and replays a fixed list of key events, one
// per poll. It backs headless runs and tests.
type TextScreen struct {
	drawer

	width  int
	height int
	cells  [][]rune
	frame  string
	script []Event
	frames int
}

// NewTextScreen returns a blank width x height screen that will yield script
// in order.
func NewTextScreen(width, height int, script []Event) *TextScreen {
	s := &TextScreen{
		width:  width,
		height: height,
		script: script,
	}
	s.drawer = drawer{set: s.setCell}
	s.Clear()
	return s
}

func (s *TextScreen) setCell(x, y int, ch rune, _, _ Color) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.cells[y][x] = ch
}

// Clear blanks the back buffer.
func (s *TextScreen) Clear() {
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		row := make([]rune, s.width)
		for x := range row {
			row[x] = ' '
		}
		s.cells[y] = row
	}
}

// Present snapshots the back buffer as the current frame.
func (s *TextScreen) Present() error {
	lines := make([]string, len(s.cells))
	for y, row := range s.cells {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	s.frame = strings.Join(lines, "\n")
	s.frames++
	return nil
}

// Poll pops the next scripted event. It never waits.
func (s *TextScreen) Poll(time.Duration) (Event, bool) {
	if len(s.script) == 0 {
		return Event{}, false
	}
	ev := s.script[0]
	s.script = s.script[1:]
	return ev, true
}

// Frame returns the last presented frame.
func (s *TextScreen) Frame() string {
	return s.frame
}

// Frames returns how many frames were presented.
func (s *TextScreen) Frames() int {
	return s.frames
}

// CellAt returns the rune in the back buffer at p.
func (s *TextScreen) CellAt(p game.Point) rune {
	if p.X < 0 || p.Y < 0 || p.X >= s.width || p.Y >= s.height {
		return 0
	}
	return s.cells[p.Y][p.X]
}

// Close is a no-op.
func (s *TextScreen) Close() error {
	return nil
}

// ParseScript decodes a move string, one rune per tick: u, d, l, r for the
// arrows, q to quit. Any other rune, such as '.', decodes to KeyOther and
// leaves the heading alone for that tick. Whitespace is skipped.
func ParseScript(moves string) []Event {
	events := make([]Event, 0, len(moves))
	for _, c := range strings.ToLower(moves) {
		switch c {
		case 'u':
			events = append(events, Event{Key: KeyUp})
		case 'd':
			events = append(events, Event{Key: KeyDown})
		case 'l':
			events = append(events, Event{Key: KeyLeft})
		case 'r':
			events = append(events, Event{Key: KeyRight})
		case 'q':
			events = append(events, Event{Key: KeyQuit})
		case ' ', '\n', '\t':
		default:
			events = append(events, Event{Key: KeyOther})
		}
	}
	return events
}
