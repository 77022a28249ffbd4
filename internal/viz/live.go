package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vitor-souza-ime/foucault/internal/diffusion"
	"github.com/vitor-souza-ime/foucault/internal/field"
	"github.com/vitor-souza-ime/foucault/internal/material"
	"github.com/vitor-souza-ime/foucault/internal/solver"
)

const (
	canvasWidth  = 72
	canvasHeight = 20
	framesPerSec = 30
	histCapacity = 120

	minSpeed = 0.25
	maxSpeed = 16
)

type TickMsg time.Time

// Model steps an explicit diffusion simulation live and draws the
// field profile inside its running envelope.
type Model struct {
	mats []material.Properties
	sel  int
	exc  field.Excitation
	dom  field.Domain
	dt   float64

	sim  *solver.Sim
	diff *diffusion.Model

	canvas         *Canvas
	envMax, envMin []float64
	surface        []float64

	stepsPerTick int
	speed        float64
	running      bool
	showHelp     bool
	err          error
}

// NewModel builds the live view over a material set. A non-positive
// dt derives the step from the stability limit.
func NewModel(mats []material.Properties, exc field.Excitation, dom field.Domain, dt float64) (Model, error) {
	if len(mats) == 0 {
		return Model{}, fmt.Errorf("no materials to simulate")
	}

	m := Model{
		mats:    mats,
		exc:     exc,
		dom:     dom,
		dt:      dt,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		speed:   1,
		running: true,
	}
	if err := m.build(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// build starts a fresh simulation for the selected material.
func (m *Model) build() error {
	mat := m.mats[m.sel]

	sim, err := solver.NewSim(mat, m.exc, m.dom, m.dt)
	if err != nil {
		return err
	}
	diff, err := diffusion.NewModel(mat, m.exc)
	if err != nil {
		return err
	}

	m.sim = sim
	m.diff = diff
	m.envMax = make([]float64, m.dom.Points)
	m.envMin = make([]float64, m.dom.Points)
	m.surface = m.surface[:0]
	m.retime()
	return nil
}

// retime sizes the per-frame step batch so one excitation period
// plays back in about two seconds at speed 1.
func (m *Model) retime() {
	stepsPerPeriod := m.exc.Period() / m.sim.Dt()
	base := stepsPerPeriod / (2 * framesPerSec)
	n := int(base*m.speed + 1)
	if n < 1 {
		n = 1
	}
	m.stepsPerTick = n
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/framesPerSec, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.err = m.build()
		case "tab", "n":
			m.sel = (m.sel + 1) % len(m.mats)
			m.err = m.build()
		case "+", "=":
			if m.speed < maxSpeed {
				m.speed *= 2
				m.retime()
			}
		case "-", "_":
			if m.speed > minSpeed {
				m.speed /= 2
				m.retime()
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.sim.Step(m.stepsPerTick)
			m.observe()
		}
		return m, tea.Tick(time.Second/framesPerSec, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// observe folds the current field into the running envelope and the
// surface history.
func (m *Model) observe() {
	f := m.sim.Field()
	for i, v := range f {
		if v > m.envMax[i] {
			m.envMax[i] = v
		}
		if v < m.envMin[i] {
			m.envMin[i] = v
		}
	}

	m.surface = append(m.surface, f[0])
	if len(m.surface) > histCapacity {
		m.surface = m.surface[1:]
	}
}

// draw renders the field profile, its envelope, and the skin-depth
// marker onto the canvas.
func (m *Model) draw() {
	m.canvas.Clear()

	span := m.exc.Amplitude * 1.1
	if span <= 0 {
		span = 1
	}

	delta := m.sim.SkinDepth()
	if delta <= m.dom.Length {
		px := int(delta / m.dom.Length * float64(canvasWidth*2-1))
		m.canvas.DrawVerticalMarker(px)
	}

	m.canvas.DrawSeries(m.envMax, -span, span)
	m.canvas.DrawSeries(m.envMin, -span, span)
	m.canvas.DrawSeries(m.sim.Field(), -span, span)
}

// View renders the TUI interface.
func (m Model) View() string {
	if m.err != nil {
		return canvasStyle.Render(
			statusPaused.Render("simulation error") + "\n\n" +
				valueStyle.Render(m.err.Error()) + "\n\n" +
				helpStyle.Render("R:Retry Tab:Material Q:Quit"))
	}

	m.draw()
	canvasView := canvasStyle.Render(graphStyle.Render(m.canvas.String()))

	mat := m.mats[m.sel]
	period := m.exc.Period()
	t := m.sim.Time()

	status := statusRunning.Render("RUNNING")
	if !m.running {
		status = statusPaused.Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(mat.Name)) + "\n")
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("sigma") + valueStyle.Render(fmt.Sprintf("%.1f MS/m", mat.Sigma/1e6)) + "\n")
	s.WriteString(labelStyle.Render("mu_r") + valueStyle.Render(fmt.Sprintf("%g", mat.MuR)) + "\n")
	s.WriteString(labelStyle.Render("freq") + valueStyle.Render(fmt.Sprintf("%g Hz", m.exc.Frequency)) + "\n")
	s.WriteString(labelStyle.Render("delta") + valueStyle.Render(fmt.Sprintf("%.3f mm", m.sim.SkinDepth()*1e3)) + "\n\n")

	dx := m.dom.Spacing()
	r := m.sim.Dt() * m.diff.Alpha() / (dx * dx)
	s.WriteString(labelStyle.Render("grid") + valueStyle.Render(fmt.Sprintf("%d x %.3f mm", m.dom.Points, dx*1e3)) + "\n")
	s.WriteString(labelStyle.Render("dt") + valueStyle.Render(fmt.Sprintf("%.3g us (r=%.2f)", m.sim.Dt()*1e6, r)) + "\n")
	s.WriteString(labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.2f ms", t*1e3)) + "\n")
	s.WriteString(labelStyle.Render("periods") + valueStyle.Render(fmt.Sprintf("%.2f", t/period)) + "\n")
	s.WriteString(labelStyle.Render("speed") + activeStyle.Render(fmt.Sprintf("x%g", m.speed)) + "\n\n")

	s.WriteString(separator(34) + "\n\n")
	s.WriteString(labelStyle.Render("phase") + progressBar(math.Mod(t, period)/period, 16) + "\n")
	s.WriteString(labelStyle.Render("B(0,t)") + sparkline(m.surface, 24) + "\n")

	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset Tab:Material\n+/-:Speed ?:Help Q:Quit"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume stepping    ║
║  R        - Restart the simulation   ║
║  Tab/N    - Cycle materials          ║
║  +/-      - Speed up / slow down     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
