package term

import "time"

const queueSize = 16

// eventQueue buffers key events read by a backend goroutine so the game loop
// can receive them without blocking.
type eventQueue struct {
	events chan Event
	done   chan struct{}
}

func newEventQueue() eventQueue {
	return eventQueue{
		events: make(chan Event, queueSize),
		done:   make(chan struct{}),
	}
}

// push blocks while the queue is full, until the session is closed.
func (q eventQueue) push(ev Event) {
	select {
	case q.events <- ev:
	case <-q.done:
	}
}

func (q eventQueue) close() {
	select {
	case <-q.done:
	default:
		close(q.done)
	}
}

// Poll returns the next queued event, waiting at most timeout.
func (q eventQueue) Poll(timeout time.Duration) (Event, bool) {
	if timeout <= 0 {
		select {
		case ev := <-q.events:
			return ev, true
		default:
			return Event{}, false
		}
	}

	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case ev := <-q.events:
		return ev, true
	case <-t.C:
		return Event{}, false
	case <-q.done:
		return Event{}, false
	}
}
