package game

import "testing"

func TestMapperRejectsOnlyOpposite(t *testing.T) {
	all := []Direction{Up, Down, Left, Right}
	for _, cur := range all {
		for _, req := range all {
			m := NewMapper(cur)
			accepted := m.Request(req)
			if req == cur.Opposite() {
				if accepted || m.Current() != cur {
					t.Fatalf("%s -> %s should be ignored, current=%s", cur, req, m.Current())
				}
				continue
			}
			if !accepted || m.Current() != req {
				t.Fatalf("%s -> %s should be accepted, current=%s", cur, req, m.Current())
			}
		}
	}
}

func TestMapperIgnoresReleasesAndOtherKeys(t *testing.T) {
	m := NewMapper(Right)
	m.Apply(Event{Key: KeyUp, Released: true})
	m.Apply(Press(KeyNone))
	m.Apply(Press(KeyQuit))
	if m.Current() != Right {
		t.Fatalf("expected direction to stay right, got %s", m.Current())
	}
}

func TestApplyAllLastAcceptedWins(t *testing.T) {
	cases := []struct {
		name   string
		events []Event
		want   Direction
	}{
		{"turn then reverse of turn", []Event{Press(KeyUp), Press(KeyDown)}, Up},
		{"two turns", []Event{Press(KeyUp), Press(KeyLeft)}, Left},
		{"reverse only", []Event{Press(KeyLeft)}, Right},
		{"empty", nil, Right},
	}
	for _, tc := range cases {
		m := NewMapper(Right)
		m.ApplyAll(tc.events)
		if m.Current() != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, m.Current())
		}
	}
}

func TestBindingsLookup(t *testing.T) {
	b := DefaultBindings()
	cases := map[rune]Key{
		'w': KeyUp, 'A': KeyLeft, 's': KeyDown, 'D': KeyRight, 'q': KeyQuit, 'x': KeyNone,
	}
	for r, want := range cases {
		if got := b.Lookup(r); got != want {
			t.Fatalf("Lookup(%q)=%d, expected %d", r, got, want)
		}
	}
}

func TestDirectionDeltaMatchesOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Fatalf("%s and its opposite do not cancel out", d)
		}
		if dx*dx+dy*dy != 1 {
			t.Fatalf("%s delta is not a unit step", d)
		}
	}
}
