package term

import (
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

var termboxColors = map[Color]termbox.Attribute{
	ColorDefault: termbox.ColorDefault,
	ColorBlack:   termbox.ColorBlack,
	ColorRed:     termbox.ColorRed,
	ColorGreen:   termbox.ColorGreen,
	ColorYellow:  termbox.ColorYellow,
	ColorWhite:   termbox.ColorWhite,
}

// TermboxScreen is a Screen backed by termbox-go.
type TermboxScreen struct {
	drawer
	eventQueue

	stopped chan struct{}
	err     error
}

// NewTermboxScreen puts the terminal in raw mode, hides the cursor and starts
// reading key events.
func NewTermboxScreen() (*TermboxScreen, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "termbox init")
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()

	s := &TermboxScreen{
		eventQueue: newEventQueue(),
		stopped:    make(chan struct{}),
	}
	s.drawer = drawer{set: s.setCell}
	go s.readEvents()
	return s, nil
}

func (s *TermboxScreen) readEvents() {
	defer close(s.stopped)
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt, termbox.EventError:
			return
		case termbox.EventKey:
			s.push(Event{Key: termboxKey(ev)})
		}
	}
}

func termboxKey(ev termbox.Event) Key {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return KeyUp
	case termbox.KeyArrowDown:
		return KeyDown
	case termbox.KeyArrowLeft:
		return KeyLeft
	case termbox.KeyArrowRight:
		return KeyRight
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return KeyQuit
	}
	if ev.Ch == 'q' {
		return KeyQuit
	}
	return KeyOther
}

func (s *TermboxScreen) setCell(x, y int, ch rune, fg, bg Color) {
	termbox.SetCell(x, y, ch, termboxColors[fg], termboxColors[bg])
}

// Clear blanks the back buffer.
func (s *TermboxScreen) Clear() {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil && s.err == nil {
		s.err = err
	}
}

// Present flushes the back buffer to the terminal.
func (s *TermboxScreen) Present() error {
	if s.err != nil {
		err := s.err
		s.err = nil
		return errors.Wrap(err, "termbox clear")
	}
	return errors.Wrap(termbox.Flush(), "termbox flush")
}

// Close stops the event reader and restores the terminal.
func (s *TermboxScreen) Close() error {
	s.eventQueue.close()
	select {
	case <-s.stopped:
	default:
		termbox.Interrupt()
		<-s.stopped
	}
	termbox.Close()
	return nil
}
