package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/johnxnguyen/newton/internal/body"
	"github.com/johnxnguyen/newton/internal/field"
	"github.com/johnxnguyen/newton/internal/geometry"
)

const (
	liveWidth       = 64
	liveHeight      = 28
	historyCapacity = 600
	trailCapacity   = 240
	maxStepsPerTick = 4096
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the terminal view of a live field. It owns the field it
// renders; keystrokes advance, pause, and reset the run.
type Model struct {
	field         *field.Field
	rebuild       func() (*field.Field, error)
	name          string
	stepsPerTick  int
	running       bool
	showTrails    bool
	canvas        *Canvas
	trails        map[uint32][]geometry.Vec
	radiusHistory []float64
	energyHistory []float64
	err           error
}

// NewModel wraps f for live viewing. rebuild produces a fresh field for
// the reset key and may be nil, in which case reset does nothing.
func NewModel(f *field.Field, rebuild func() (*field.Field, error), name string, stepsPerTick int) Model {
	if stepsPerTick < 1 {
		stepsPerTick = 1
	}
	return Model{
		field:         f,
		rebuild:       rebuild,
		name:          name,
		stepsPerTick:  stepsPerTick,
		running:       true,
		showTrails:    true,
		canvas:        NewCanvas(liveWidth, liveHeight),
		trails:        make(map[uint32][]geometry.Vec),
		radiusHistory: make([]float64, 0, historyCapacity),
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input events and steps the field.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			m.showTrails = !m.showTrails
			if !m.showTrails {
				m.trails = make(map[uint32][]geometry.Vec)
			}
		case "+", "=":
			if m.stepsPerTick < maxStepsPerTick {
				m.stepsPerTick *= 2
			}
		case "-", "_":
			if m.stepsPerTick > 1 {
				m.stepsPerTick /= 2
			}
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	for i := 0; i < m.stepsPerTick; i++ {
		m.field.Step()
	}
	m.record()
}

// record samples trails and the history series once per tick, not per
// field step, so speeding up the clock does not flood the buffers.
func (m *Model) record() {
	var sum float64
	n := 0
	m.field.Each(func(b body.Body) {
		sum += b.Pos.Len()
		n++
		if m.showTrails {
			trail := append(m.trails[b.ID], b.Pos)
			if len(trail) > trailCapacity {
				trail = trail[1:]
			}
			m.trails[b.ID] = trail
		}
	})
	if n == 0 {
		return
	}

	m.radiusHistory = append(m.radiusHistory, sum/float64(n))
	if len(m.radiusHistory) > historyCapacity {
		m.radiusHistory = m.radiusHistory[1:]
	}
	m.energyHistory = append(m.energyHistory, m.field.TotalEnergy())
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// reset swaps in a freshly built field and drops accumulated history.
func (m *Model) reset() {
	if m.rebuild == nil {
		return
	}
	f, err := m.rebuild()
	if err != nil {
		m.err = err
		return
	}
	m.field = f
	m.err = nil
	m.trails = make(map[uint32][]geometry.Vec)
	m.radiusHistory = m.radiusHistory[:0]
	m.energyHistory = m.energyHistory[:0]
}

// draw renders trails, bodies, and the central mass onto the canvas.
func (m *Model) draw() {
	m.canvas.Clear()

	points := []geometry.Vec{{X: 0, Y: 0}}
	m.field.Each(func(b body.Body) {
		points = append(points, b.Pos)
	})
	if m.showTrails {
		for _, trail := range m.trails {
			points = append(points, trail...)
		}
	}
	vp := FitViewport(m.canvas, points, 0.15)

	if m.showTrails {
		m.field.Each(func(b body.Body) {
			trail := m.trails[b.ID]
			for i := 1; i < len(trail); i++ {
				vp.Line(trail[i-1], trail[i])
			}
		})
	}
	m.field.Each(func(b body.Body) {
		vp.Plot(b.Pos)
	})
	vp.Mark(geometry.Vec{X: 0, Y: 0})
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	if m.running {
		s.WriteString(runningStyle.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(pausedStyle.Render("PAUSED") + "\n\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render("reset failed: "+m.err.Error()) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f", m.field.Time())) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", m.field.Steps())) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", m.field.Len())) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4g", m.field.TotalEnergy())) + "\n")
	s.WriteString(labelStyle.Render("Ang. mom.") + valueStyle.Render(fmt.Sprintf("%.4g", m.field.AngularMomentum())) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%d step/tick", m.stepsPerTick)) + "\n")

	if len(m.radiusHistory) > 1 {
		chart := asciigraph.Plot(m.radiusHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Mean radius"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Total energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause R:Reset T:Trails\n+/-:Speed Q:Quit"))
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
