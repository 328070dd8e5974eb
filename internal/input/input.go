// Package input holds the directional control flags read by the boat
// controller each frame.
package input

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

// ErrUnknownAction is returned when an action name is not recognized.
var ErrUnknownAction = errors.New("input: unknown action")

// Action is one of the recognized control actions.
type Action int

const (
	Forward Action = iota
	Backward
	TurnLeft
	TurnRight

	numActions
)

var actionNames = [numActions]string{
	Forward:   "forward",
	Backward:  "backward",
	TurnLeft:  "turn_left",
	TurnRight: "turn_right",
}

// Actions lists every action in declaration order.
func Actions() []Action {
	return []Action{Forward, Backward, TurnLeft, TurnRight}
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps an action name to its Action.
func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range actionNames {
		if s == n {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAction)
}

func (a Action) MarshalText() ([]byte, error) {
	if a < 0 || a >= numActions {
		return nil, fmt.Errorf("%d: %w", int(a), ErrUnknownAction)
	}
	return []byte(actionNames[a]), nil
}

func (a *Action) UnmarshalText(b []byte) error {
	v, err := ParseAction(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// State is the pressed/released flag of every action. The zero value has
// everything released. Reads and writes are atomic per flag so an input
// goroutine may update it while the frame loop reads.
type State struct {
	pressed [numActions]atomic.Bool
}

func NewState() *State { return &State{} }

// Set records a press or release. Out-of-range actions are ignored.
func (s *State) Set(a Action, pressed bool) {
	if a < 0 || a >= numActions {
		return
	}
	s.pressed[a].Store(pressed)
}

func (s *State) Press(a Action)   { s.Set(a, true) }
func (s *State) Release(a Action) { s.Set(a, false) }

// Pressed reports whether a is currently held.
func (s *State) Pressed(a Action) bool {
	if a < 0 || a >= numActions {
		return false
	}
	return s.pressed[a].Load()
}

// Snapshot returns the current flags as a plain array.
func (s *State) Snapshot() [numActions]bool {
	var out [numActions]bool
	for i := range out {
		out[i] = s.pressed[i].Load()
	}
	return out
}

// ActiveCount returns how many actions are held.
func (s *State) ActiveCount() int {
	n := 0
	for i := range s.pressed {
		if s.pressed[i].Load() {
			n++
		}
	}
	return n
}

// Reset releases every action.
func (s *State) Reset() {
	for i := range s.pressed {
		s.pressed[i].Store(false)
	}
}
