package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

var tcellColors = map[Color]tcell.Color{
	ColorDefault: tcell.ColorDefault,
	ColorBlack:   tcell.ColorBlack,
	ColorRed:     tcell.ColorRed,
	ColorGreen:   tcell.ColorGreen,
	ColorYellow:  tcell.ColorYellow,
	ColorWhite:   tcell.ColorWhite,
}

// TcellScreen is a Screen backed by tcell.
type TcellScreen struct {
	drawer
	eventQueue

	screen  tcell.Screen
	stopped chan struct{}
}

// NewTcellScreen opens the terminal through tcell.
func NewTcellScreen() (*TcellScreen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "tcell new screen")
	}
	return newTcellScreen(screen)
}

func newTcellScreen(screen tcell.Screen) (*TcellScreen, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "tcell init")
	}
	screen.HideCursor()

	s := &TcellScreen{
		eventQueue: newEventQueue(),
		screen:     screen,
		stopped:    make(chan struct{}),
	}
	s.drawer = drawer{set: s.setCell}
	go s.readEvents()
	return s, nil
}

func (s *TcellScreen) readEvents() {
	defer close(s.stopped)
	for {
		// PollEvent returns nil once the screen is finalized.
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			s.push(Event{Key: tcellKey(key)})
		}
	}
}

func tcellKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return KeyQuit
		}
	}
	return KeyOther
}

func (s *TcellScreen) setCell(x, y int, ch rune, fg, bg Color) {
	style := tcell.StyleDefault.Foreground(tcellColors[fg]).Background(tcellColors[bg])
	s.screen.SetContent(x, y, ch, nil, style)
}

// Clear blanks the back buffer.
func (s *TcellScreen) Clear() {
	s.screen.Clear()
}

// Present shows the back buffer.
func (s *TcellScreen) Present() error {
	s.screen.Show()
	return nil
}

// Close finalizes the screen and waits for the event reader to exit.
func (s *TcellScreen) Close() error {
	s.eventQueue.close()
	s.screen.Fini()
	<-s.stopped
	return nil
}
