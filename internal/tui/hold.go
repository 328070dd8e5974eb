package tui

import (
	"time"

	"github.com/san-kum/wavesim/internal/input"
)

// DefaultHold covers a terminal's initial key-repeat delay so a held key
// reads as one continuous press.
const DefaultHold = 550 * time.Millisecond

// keyHold synthesises key-up events, which terminals do not report. A key
// counts as held until window elapses without it repeating.
type keyHold struct {
	window   time.Duration
	deadline map[input.Action]time.Time
}

func newKeyHold(window time.Duration) *keyHold {
	return &keyHold{window: window, deadline: make(map[input.Action]time.Time)}
}

// press records a key-down for key and applies it to st. It reports whether
// the key is bound to an action.
func (h *keyHold) press(key string, st *input.State, now time.Time) bool {
	a, ok := input.Translate(key)
	if !ok {
		return false
	}
	st.Press(a)
	h.deadline[a] = now.Add(h.window)
	return true
}

// expire releases every action whose window has run out.
func (h *keyHold) expire(st *input.State, now time.Time) {
	for a, d := range h.deadline {
		if !now.Before(d) {
			st.Release(a)
			delete(h.deadline, a)
		}
	}
}

// releaseAll drops every held action.
func (h *keyHold) releaseAll(st *input.State) {
	for a := range h.deadline {
		st.Release(a)
		delete(h.deadline, a)
	}
}
