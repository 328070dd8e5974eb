package input

// keyBindings maps raw key names from terminals and browsers to actions.
var keyBindings = map[string]Action{
	"up":         Forward,
	"w":          Forward,
	"ArrowUp":    Forward,
	"down":       Backward,
	"s":          Backward,
	"ArrowDown":  Backward,
	"left":       TurnLeft,
	"a":          TurnLeft,
	"ArrowLeft":  TurnLeft,
	"right":      TurnRight,
	"d":          TurnRight,
	"ArrowRight": TurnRight,
}

// Translate maps a key name to its action. Unrecognized keys report false
// and must be dropped by the caller.
func Translate(key string) (Action, bool) {
	a, ok := keyBindings[key]
	return a, ok
}

// HandleKey applies a key-down or key-up event to s. It reports whether the
// key was recognized.
func (s *State) HandleKey(key string, down bool) bool {
	a, ok := Translate(key)
	if !ok {
		return false
	}
	s.Set(a, down)
	return true
}
