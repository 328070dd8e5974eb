package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/wavesim/internal/input"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/waves"
)

const (
	fps             = 60
	defaultCols     = 64
	defaultRows     = 22
	historyCapacity = 240
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Options configure the live view.
type Options struct {
	Theme string
	Hold  time.Duration
	Scale float64 // world units per column
}

func DefaultOptions() Options {
	return Options{Theme: ThemeOcean.Name, Hold: DefaultHold, Scale: 0.25}
}

// tunable is a wave parameter bound to the tuning keys.
type tunable struct {
	name string
	get  func(waves.Parameters) float64
	set  func(*waves.Parameters, float64)
}

var tunables = []tunable{
	{"amplitude", func(p waves.Parameters) float64 { return p.Amplitude }, func(p *waves.Parameters, v float64) { p.Amplitude = v }},
	{"frequency", func(p waves.Parameters) float64 { return p.Frequency }, func(p *waves.Parameters, v float64) { p.Frequency = v }},
	{"speed", func(p waves.Parameters) float64 { return p.Speed }, func(p *waves.Parameters, v float64) { p.Speed = v }},
	{"persistence", func(p waves.Parameters) float64 { return p.Persistence }, func(p *waves.Parameters, v float64) { p.Persistence = v }},
	{"lacunarity", func(p waves.Parameters) float64 { return p.Lacunarity }, func(p *waves.Parameters, v float64) { p.Lacunarity = v }},
}

// Model drives a simulator from terminal input and draws the water around
// the hull.
type Model struct {
	sim     *sim.Simulator
	hold    *keyHold
	now     func() time.Time
	view    *View
	theme   int
	styles  styles
	running bool
	help    bool

	spring       harmonica.Spring
	camX, camZ   float64
	camVX, camVZ float64

	selected int
	heave    []float64
	last     sim.Frame
}

func NewModel(s *sim.Simulator, opts Options) Model {
	if opts.Hold <= 0 {
		opts.Hold = DefaultHold
	}
	if opts.Scale <= 0 {
		opts.Scale = 0.25
	}

	theme := 0
	for i, t := range Themes {
		if t.Name == opts.Theme {
			theme = i
		}
	}

	pos := s.Body().Position()
	return Model{
		sim:     s,
		hold:    newKeyHold(opts.Hold),
		now:     time.Now,
		view:    NewView(defaultCols, defaultRows, opts.Scale),
		theme:   theme,
		styles:  newStyles(Themes[theme]),
		running: true,
		spring:  harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
		camX:    pos.X(),
		camZ:    pos.Z(),
		heave:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if m.hold.press(key, m.sim.Input(), m.now()) {
			return m, nil
		}
		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.hold.releaseAll(m.sim.Input())
			m.sim.Reset()
			m.heave = m.heave[:0]
			pos := m.sim.Body().Position()
			m.camX, m.camZ, m.camVX, m.camVZ = pos.X(), pos.Z(), 0, 0
		case "tab":
			m.selected = (m.selected + 1) % len(tunables)
		case "+", "=":
			m.adjust(1.1)
		case "-", "_":
			m.adjust(1 / 1.1)
		case "]":
			m.adjustIterations(1)
		case "[":
			m.adjustIterations(-1)
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
			m.styles = newStyles(Themes[m.theme])
		case "?":
			m.help = !m.help
		}
	case tea.WindowSizeMsg:
		cols := max(16, msg.Width-46)
		rows := max(8, msg.Height-4)
		m.view = NewView(cols, rows, m.view.Scale)
	case TickMsg:
		m.hold.expire(m.sim.Input(), m.now())
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	f := m.sim.Advance(m.sim.Scenario().Timing.FrameDt)
	m.last = f

	m.heave = append(m.heave, f.Heave())
	if len(m.heave) > historyCapacity {
		m.heave = m.heave[1:]
	}

	m.camX, m.camVX = m.spring.Update(m.camX, m.camVX, f.Position.X())
	m.camZ, m.camVZ = m.spring.Update(m.camZ, m.camVZ, f.Position.Z())
}

func (m *Model) adjust(factor float64) {
	field := m.sim.Field()
	p := field.Params()
	tn := tunables[m.selected]
	tn.set(&p, tn.get(p)*factor)
	field.SetParams(p)
}

func (m *Model) adjustIterations(delta int) {
	field := m.sim.Field()
	p := field.Params()
	p.Iterations = max(0, p.Iterations+delta)
	field.SetParams(p)
}

func (m Model) View() string {
	field := m.sim.Field()
	p := field.Params()
	t := m.sim.Time()
	st := m.styles

	m.view.Center = [3]float64{m.camX, 0, m.camZ}
	m.view.Sample(field, t)
	body := m.sim.Body()
	m.view.MarkHull(body.Position(), body.Orientation(), m.sim.Scenario().Body.HalfExtents)

	// Shade against the span the octave sum can reach at this amplitude.
	span := math.Max(math.Abs(p.Amplitude), 1e-6)
	lo, hi := field.Origin().Y()-span, field.Origin().Y()+span
	water := m.view.Render(st, lo, hi)

	var s strings.Builder
	s.WriteString(st.header.Render("WAVESIM "+strings.ToUpper(m.sim.Scenario().Name)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.heave) > 1 {
		chart := asciigraph.Plot(m.heave, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Heave"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	f := m.last
	row("Time", fmt.Sprintf("%.2fs", t))
	row("Position", fmt.Sprintf("%.1f %.1f %.1f", f.Position.X(), f.Position.Y(), f.Position.Z()))
	row("Heading", fmt.Sprintf("%.0f°", f.Heading*180/math.Pi))
	row("Tilt", fmt.Sprintf("%.1f°", f.Tilt*180/math.Pi))
	row("Speed", fmt.Sprintf("%.2f", f.Velocity.Len()))
	row("Submerged", fmt.Sprintf("%d/%d", f.Submerged, len(m.sim.Scenario().Boat.Corners)))

	keys := make([]string, 0, len(input.Actions()))
	for _, a := range input.Actions() {
		if f.Actions[a] {
			keys = append(keys, st.on.Render(a.String()))
		} else {
			keys = append(keys, st.off.Render(a.String()))
		}
	}
	s.WriteString("\n" + strings.Join(keys, " ") + "\n")

	s.WriteString("\nWAVES\n")
	for i, tn := range tunables {
		line := fmt.Sprintf("%-12s %.3f", tn.name, tn.get(p))
		if i == m.selected {
			s.WriteString(st.active.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + st.label.Render(line) + "\n")
		}
	}
	s.WriteString("  " + st.label.Render(fmt.Sprintf("%-12s %d", "iterations", p.Iterations)) + "\n")

	if m.help {
		s.WriteString(st.help.Render("\nArrows/WASD: steer\nTab: select  +/-: tune\n[ ]: octaves  T: theme\nSP: pause  R: reset  Q: quit"))
	} else {
		s.WriteString(st.help.Render("\n?: help  Q: quit"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, water, st.stats.Render(s.String()))
}

// Run opens the live view on the terminal until the user quits.
func Run(s *sim.Simulator, opts Options) error {
	_, err := tea.NewProgram(NewModel(s, opts), tea.WithAltScreen()).Run()
	return err
}
