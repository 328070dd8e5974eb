package input

import "sort"

// Event is a scheduled press or release, used to drive headless runs.
type Event struct {
	At      float64 `yaml:"at"`
	Action  Action  `yaml:"action"`
	Pressed bool    `yaml:"pressed"`
}

// Script replays events against a State in time order.
type Script struct {
	events []Event
	next   int
}

// NewScript sorts events by time. Events sharing a timestamp keep their
// given order.
func NewScript(events []Event) *Script {
	ev := make([]Event, len(events))
	copy(ev, events)
	sort.SliceStable(ev, func(i, j int) bool { return ev[i].At < ev[j].At })
	return &Script{events: ev}
}

// Advance applies every event with At <= t and returns how many fired.
func (s *Script) Advance(t float64, st *State) int {
	fired := 0
	for s.next < len(s.events) && s.events[s.next].At <= t {
		e := s.events[s.next]
		st.Set(e.Action, e.Pressed)
		s.next++
		fired++
	}
	return fired
}

// Done reports whether every event has fired.
func (s *Script) Done() bool { return s.next >= len(s.events) }

// Rewind restarts the script from the first event.
func (s *Script) Rewind() { s.next = 0 }
