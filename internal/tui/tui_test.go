package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/wavesim/internal/input"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/waves"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestModel() (Model, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewModel(sim.New(sim.DefaultScenario()), DefaultOptions())
	m.now = clock.now
	return m, clock
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestKeyHold(t *testing.T) {
	st := input.NewState()
	h := newKeyHold(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	if !h.press("up", st, t0) {
		t.Fatal("expected up to be bound")
	}
	if h.press("x", st, t0) {
		t.Error("expected x to be dropped")
	}

	h.expire(st, t0.Add(50*time.Millisecond))
	if !st.Pressed(input.Forward) {
		t.Error("expected forward held inside the window")
	}

	// A repeat extends the window.
	h.press("w", st, t0.Add(80*time.Millisecond))
	h.expire(st, t0.Add(150*time.Millisecond))
	if !st.Pressed(input.Forward) {
		t.Error("expected repeat to extend the hold")
	}

	h.expire(st, t0.Add(180*time.Millisecond))
	if st.Pressed(input.Forward) {
		t.Error("expected forward released after the window")
	}
}

func TestKeyHoldReleaseAll(t *testing.T) {
	st := input.NewState()
	h := newKeyHold(time.Second)
	now := time.Unix(0, 0)
	h.press("left", st, now)
	h.press("down", st, now)

	h.releaseAll(st)
	if st.ActiveCount() != 0 {
		t.Errorf("expected nothing held, got %d", st.ActiveCount())
	}
}

func TestModelSteering(t *testing.T) {
	m, clock := newTestModel()

	m = update(m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	in := m.sim.Input()
	if !in.Pressed(input.Forward) || !in.Pressed(input.TurnLeft) {
		t.Fatal("expected forward and turn left pressed")
	}

	m = update(m, TickMsg(clock.t))
	if !m.last.Actions[input.Forward] {
		t.Error("expected the frame to see forward held")
	}

	clock.t = clock.t.Add(DefaultHold)
	m = update(m, TickMsg(clock.t))
	if in.ActiveCount() != 0 {
		t.Errorf("expected keys released after hold window, got %d", in.ActiveCount())
	}
}

func TestModelPauseAndStep(t *testing.T) {
	m, clock := newTestModel()

	m = update(m, TickMsg(clock.t))
	t1 := m.sim.Time()
	if t1 <= 0 {
		t.Fatal("expected tick to advance time")
	}

	m = update(m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(m, TickMsg(clock.t))
	if m.sim.Time() != t1 {
		t.Error("expected paused model not to advance")
	}
	if len(m.heave) != 1 {
		t.Errorf("expected one heave sample, got %d", len(m.heave))
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.sim.Time() != 0 || len(m.heave) != 0 {
		t.Error("expected reset to clear time and history")
	}
}

func TestModelTuning(t *testing.T) {
	m, _ := newTestModel()
	before := m.sim.Field().Params()

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	after := m.sim.Field().Params()
	if math.Abs(after.Amplitude-before.Amplitude*1.1) > 1e-12 {
		t.Errorf("expected amplitude x1.1, got %f", after.Amplitude)
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if math.Abs(m.sim.Field().Params().Frequency-before.Frequency/1.1) > 1e-12 {
		t.Errorf("expected frequency /1.1, got %f", m.sim.Field().Params().Frequency)
	}

	for i := 0; i < 20; i++ {
		m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	}
	if m.sim.Field().Params().Iterations != 0 {
		t.Errorf("expected iterations clamped at 0, got %d", m.sim.Field().Params().Iterations)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModelView(t *testing.T) {
	m, clock := newTestModel()
	m = update(m, TickMsg(clock.t))
	m = update(m, TickMsg(clock.t))

	out := m.View()
	for _, want := range []string{"WAVESIM", "amplitude", "forward", "Heave"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestViewHull(t *testing.T) {
	v := NewView(9, 9, 0.5)
	v.Sample(waves.NewField(waves.DefaultParameters(), mgl64.Vec3{}), 0)
	v.MarkHull(mgl64.Vec3{}, mgl64.QuatIdent(), mgl64.Vec3{1, 0.5, 2})

	// Centre column, top of the hull footprint is bow, bottom is hull.
	if v.Kinds[2*9+4] != cellBow {
		t.Errorf("expected bow above centre, got %d", v.Kinds[2*9+4])
	}
	if v.Kinds[6*9+4] != cellHull {
		t.Errorf("expected hull below centre, got %d", v.Kinds[6*9+4])
	}
	if v.Kinds[4*9+0] != cellWater {
		t.Errorf("expected water beside the hull, got %d", v.Kinds[4*9+0])
	}

	out := v.Render(newStyles(ThemeOcean), -0.03, 0.03)
	if strings.Count(out, "\n") != 9 {
		t.Errorf("expected 9 rows, got %d", strings.Count(out, "\n"))
	}
	if !strings.Contains(out, "▲") {
		t.Error("expected bow marker in render")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		h    float64
		want int
	}{
		{-1, 0},
		{-0.5, 0},
		{0, 4},
		{0.49, 7},
		{2, 7},
		{math.NaN(), 4},
	}
	for _, tt := range tests {
		if got := level(tt.h, -0.5, 0.5, 8); got != tt.want {
			t.Errorf("level(%f) = %d, want %d", tt.h, got, tt.want)
		}
	}
	if level(1, 0, 0, 8) != 4 {
		t.Error("expected mid band for an empty range")
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("retro").Name != "retro" {
		t.Error("expected retro theme")
	}
	if GetTheme("nope").Name != ThemeOcean.Name {
		t.Error("expected fallback to ocean")
	}
	for _, th := range Themes {
		if len(th.Water) != len(ramp) {
			t.Errorf("theme %s has %d water colours, want %d", th.Name, len(th.Water), len(ramp))
		}
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames should list every theme")
	}
}
