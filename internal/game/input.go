package game

import "unicode"

// Key is the semantic value carried by an input event.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

// Direction maps a directional key to its direction. ok is false for
// KeyNone and KeyQuit.
func (k Key) Direction() (d Direction, ok bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	}
	return 0, false
}

// Event is one queued key event. The zero Released value is a key press.
type Event struct {
	Key      Key
	Released bool
}

// Press builds a key-press event.
func Press(k Key) Event { return Event{Key: k} }

// Bindings maps raw runes to semantic keys.
type Bindings map[rune]Key

// DefaultBindings binds W/A/S/D to movement and Q to quit.
func DefaultBindings() Bindings {
	return Bindings{'w': KeyUp, 'a': KeyLeft, 's': KeyDown, 'd': KeyRight, 'q': KeyQuit}
}

// Lookup resolves r case-insensitively; unbound runes yield KeyNone.
func (b Bindings) Lookup(r rune) Key {
	if k, ok := b[r]; ok {
		return k
	}
	return b[unicode.ToLower(r)]
}

// Mapper tracks the current direction of travel and applies requested
// turns, rejecting any that would reverse onto the snake's own neck.
type Mapper struct {
	current Direction
}

// NewMapper returns a Mapper travelling in d.
func NewMapper(d Direction) *Mapper { return &Mapper{current: d} }

// Current returns the accepted direction.
func (m *Mapper) Current() Direction { return m.current }

// Request turns to d unless d is the exact opposite of the current direction.
// It reports whether the turn was accepted.
func (m *Mapper) Request(d Direction) bool {
	if d == m.current.Opposite() {
		return false
	}
	m.current = d
	return true
}

// Apply feeds a single event through the mapper. Releases and
// non-directional keys are ignored.
func (m *Mapper) Apply(ev Event) bool {
	if ev.Released {
		return false
	}
	d, ok := ev.Key.Direction()
	if !ok {
		return false
	}
	return m.Request(d)
}

// ApplyAll processes a tick's queue in order; the last accepted event wins.
func (m *Mapper) ApplyAll(events []Event) {
	for _, ev := range events {
		m.Apply(ev)
	}
}
