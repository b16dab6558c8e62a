package term

import (
	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

const inputBuffer = 64

// Input pumps tcell events on a background goroutine and queues the key
// presses the game understands. The game loop collects them with Drain.
type Input struct {
	bindings game.Bindings
	events   chan game.Event
	closed   bool
}

// NewInput starts reading events from screen. The pump stops once the screen
// is finalized.
func NewInput(screen tcell.Screen, bindings game.Bindings) *Input {
	if bindings == nil {
		bindings = game.DefaultBindings()
	}
	in := &Input{bindings: bindings, events: make(chan game.Event, inputBuffer)}
	go in.pump(screen)
	return in
}

func (in *Input) pump(screen tcell.Screen) {
	defer close(in.events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			key := in.translate(ev)
			if key == game.KeyNone {
				continue
			}
			select {
			case in.events <- game.Press(key):
			default:
				// The loop is behind by a full buffer; older turns win.
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func (in *Input) translate(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.KeyQuit
	case tcell.KeyRune:
		return in.bindings.Lookup(ev.Rune())
	}
	return game.KeyNone
}

// Drain implements game.EventSource. Once the screen is gone it reports a
// quit so the loop ends.
func (in *Input) Drain() []game.Event {
	if in.closed {
		return []game.Event{game.Press(game.KeyQuit)}
	}
	var out []game.Event
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				in.closed = true
				return append(out, game.Press(game.KeyQuit))
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}
