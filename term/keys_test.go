package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

func TestTermboxKey(t *testing.T) {
	tests := []struct {
		Name     string
		Event    termbox.Event
		Expected Key
	}{
		{"up", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, KeyUp},
		{"down", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowDown}, KeyDown},
		{"left", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, KeyLeft},
		{"right", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}, KeyRight},
		{"q", termbox.Event{Type: termbox.EventKey, Ch: 'q'}, KeyQuit},
		{"esc", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, KeyQuit},
		{"ctrl-c", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, KeyQuit},
		{"x", termbox.Event{Type: termbox.EventKey, Ch: 'x'}, KeyOther},
		{"enter", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, KeyOther},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, termboxKey(test.Event), "Key: %s", test.Name)
	}
}

func TestTcellKey(t *testing.T) {
	tests := []struct {
		Name     string
		Event    *tcell.EventKey
		Expected Key
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), KeyDown},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyRight},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), KeyQuit},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyQuit},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), KeyOther},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyOther},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, tcellKey(test.Event), "Key: %s", test.Name)
	}
}
