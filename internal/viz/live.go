// Package viz is the terminal rendering collaborator: a bubbletea
// program that drives one playback controller and draws the three
// projection walls (A-access heat, B-access heat, C output) plus the
// locality panel. It consumes only the public engine surface; pacing
// is its responsibility, correctness the engine's.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/matcube/internal/experiment"
	"github.com/san-kum/matcube/internal/playback"
	"github.com/san-kum/matcube/internal/space"
)

const (
	frameRate       = 30
	historyCapacity = 600
	maxSpeed        = 4096
)

type TickMsg time.Time

// Model owns the playback controller and the render state.
type Model struct {
	ctrl    *playback.Controller
	obs     *experiment.MetricObserver
	speed   int
	history []float64 // working-set samples for the sparkline
}

func NewModel(ctrl *playback.Controller, obs *experiment.MetricObserver, speed int) Model {
	if speed < 1 {
		speed = 1
	}
	return Model{
		ctrl:    ctrl,
		obs:     obs,
		speed:   speed,
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and advances the playback.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			switch m.ctrl.State() {
			case playback.Idle:
				_ = m.ctrl.Start()
			case playback.Running:
				_ = m.ctrl.Pause()
			case playback.Paused:
				_ = m.ctrl.Resume()
			}
		case "s":
			if st := m.ctrl.State(); st == playback.Idle || st == playback.Paused {
				_ = m.ctrl.SingleStep()
				m.sample()
			}
		case "r":
			_ = m.ctrl.Reset()
			m.obs.Reset()
			m.history = m.history[:0]
		case "+", "=":
			if m.speed*2 <= maxSpeed {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		}
	case TickMsg:
		if m.ctrl.State() == playback.Running {
			_ = m.ctrl.Tick(m.speed)
			m.sample()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) sample() {
	for _, metric := range m.obs.Metrics {
		if metric.Name() == "working_set" {
			m.history = append(m.history, metric.Value())
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
			return
		}
	}
}

// View renders the walls and the stats panel.
func (m Model) View() string {
	d := m.ctrl.Dims()
	t, total := m.ctrl.Progress()
	next, hasNext := m.ctrl.Peek()

	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("MATCUBE  %s  %s", m.ctrl.AlgorithmName(), d)) + "\n")
	s.WriteString(statusStyle.Render(fmt.Sprintf("%s  step %d/%d  speed %d/frame", strings.ToUpper(m.ctrl.State().String()), t, total, m.speed)) + "\n")
	s.WriteString(progressBar(t, total, 40) + "\n\n")

	if hasNext {
		s.WriteString(labelStyle.Render("next  ") + valueStyle.Render(next.String()) + "\n\n")
	} else {
		s.WriteString(labelStyle.Render("next  ") + valueStyle.Render("(done)") + "\n\n")
	}

	walls := lipgloss.JoinHorizontal(lipgloss.Top,
		wallStyle.Render(m.wallA(next, hasNext)),
		wallStyle.Render(m.wallB(next, hasNext)),
		wallStyle.Render(m.wallC(next, hasNext)),
	)
	s.WriteString(walls + "\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("working set"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	for _, metric := range m.obs.Metrics {
		s.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", metric.Name())) + valueStyle.Render(fmt.Sprintf("%.0f", metric.Value())) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Play/Pause  S:Step  R:Reset  +/-:Speed  Q:Quit"))
	return s.String()
}

func (m Model) wallA(next space.MacStep, hasNext bool) string {
	hits := m.ctrl.Accum().AHits()
	max := hits.Max()
	var b strings.Builder
	b.WriteString(labelStyle.Render("A reads (M x K)") + "\n")
	for r := 0; r < hits.Rows; r++ {
		for c := 0; c < hits.Cols; c++ {
			active := hasNext && next.A() == (space.Coord{Row: r, Col: c})
			b.WriteString(heatCell(ratio(float64(hits.At(r, c)), float64(max)), active))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) wallB(next space.MacStep, hasNext bool) string {
	hits := m.ctrl.Accum().BHits()
	max := hits.Max()
	var b strings.Builder
	b.WriteString(labelStyle.Render("B reads (K x N)") + "\n")
	for r := 0; r < hits.Rows; r++ {
		for c := 0; c < hits.Cols; c++ {
			active := hasNext && next.B() == (space.Coord{Row: r, Col: c})
			b.WriteString(heatCell(ratio(float64(hits.At(r, c)), float64(max)), active))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) wallC(next space.MacStep, hasNext bool) string {
	c := m.ctrl.Accum().C()
	max := c.MaxAbs()
	var b strings.Builder
	b.WriteString(labelStyle.Render("C output (M x N)") + "\n")
	for r := 0; r < c.Rows; r++ {
		for col := 0; col < c.Cols; col++ {
			active := hasNext && next.C() == (space.Coord{Row: r, Col: col})
			b.WriteString(heatCell(ratio(math.Abs(c.At(r, col)), max), active))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func ratio(v, max float64) float64 {
	if max == 0 {
		return 0
	}
	return v / max
}

func progressBar(t, total, width int) string {
	if total == 0 {
		return ""
	}
	filled := t * width / total
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}
