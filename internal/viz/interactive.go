package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitor-souza-ime/foucault/internal/field"
	"github.com/vitor-souza-ime/foucault/internal/material"
)

const (
	stateMenu = iota
	stateConfig
	stateSim
)

// App wraps the live view in a material menu and a parameter editor.
type App struct {
	state, cursor int
	mats          []material.Properties

	paramNames  []string
	params      map[string]float64
	paramSteps  map[string]float64
	paramCursor int
	editing     bool
	editBuf     string
	status      string

	live Model
}

func NewApp(exc field.Excitation, dom field.Domain) *App {
	return &App{
		state:      stateMenu,
		mats:       material.Registry(),
		paramNames: []string{"frequency", "amplitude", "length_mm", "points"},
		params: map[string]float64{
			"frequency": exc.Frequency,
			"amplitude": exc.Amplitude,
			"length_mm": dom.Length * 1e3,
			"points":    float64(dom.Points),
		},
		paramSteps: map[string]float64{
			"frequency": 5,
			"amplitude": 0.01,
			"length_mm": 5,
			"points":    10,
		},
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	default:
		if a.state == stateSim {
			newLive, cmd := a.live.Update(msg)
			a.live = newLive.(Model)
			return a, cmd
		}
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateConfig:
		return a.configKey(msg)
	case stateSim:
		if msg.String() == "esc" {
			a.state = stateMenu
			return a, nil
		}
		newLive, cmd := a.live.Update(msg)
		a.live = newLive.(Model)
		return a, cmd
	}
	return a, nil
}

func (a App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.mats)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.state, a.paramCursor, a.status = stateConfig, 0, ""
	}
	return a, nil
}

func (a App) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(a.editBuf, "%f", &val)
			a.params[a.paramNames[a.paramCursor]] = val
			a.editing, a.editBuf = false, ""
		case "escape", "esc":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					a.editBuf += string(c)
				}
			}
		}
		return a, nil
	}
	switch msg.String() {
	case "q", "escape", "esc":
		a.state = stateMenu
	case "up", "k":
		if a.paramCursor > 0 {
			a.paramCursor--
		}
	case "down", "j":
		if a.paramCursor < len(a.paramNames)-1 {
			a.paramCursor++
		}
	case "enter":
		a.editing = true
		a.editBuf = fmt.Sprintf("%g", a.params[a.paramNames[a.paramCursor]])
	case "left", "h":
		name := a.paramNames[a.paramCursor]
		a.params[name] -= a.paramSteps[name]
	case "right", "l":
		name := a.paramNames[a.paramCursor]
		a.params[name] += a.paramSteps[name]
	case "s":
		return a.start()
	}
	return a, nil
}

// start spins up the live view with the edited parameters.
func (a App) start() (tea.Model, tea.Cmd) {
	exc := field.Excitation{
		Frequency: a.params["frequency"],
		Amplitude: a.params["amplitude"],
	}
	dom := field.Domain{
		Length: a.params["length_mm"] / 1e3,
		Points: int(a.params["points"]),
	}

	live, err := NewModel(a.mats, exc, dom, 0)
	if err != nil {
		a.status = err.Error()
		return a, nil
	}
	live.sel = a.cursor
	if err := live.build(); err != nil {
		a.status = err.Error()
		return a, nil
	}

	a.live = live
	a.state, a.status = stateSim, ""
	return a, a.live.Init()
}

func (a App) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateConfig:
		return a.viewConfig()
	case stateSim:
		return a.live.View()
	}
	return ""
}

func (a App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle.Render("FOUCAULT") + "\n")
	b.WriteString("    " + subtleStyle.Render("eddy-current diffusion explorer") + "\n")
	b.WriteString("    " + subtleStyle.Render("───────────────────────────────") + "\n\n")

	for i, mat := range a.mats {
		desc := fmt.Sprintf("%.1f MS/m  mu_r %g", mat.Sigma/1e6, mat.MuR)
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				activeStyle.Render("▸"),
				materialStyle(mat.Color).Render(fmt.Sprintf("%-12s", mat.Name)),
				valueStyle.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				subtleStyle.Render(fmt.Sprintf("%-12s", mat.Name)),
				subtleStyle.Render(desc)))
		}
	}

	b.WriteString("\n    " + helpStyle.Render("j/k navigate · enter select · q quit") + "\n")
	return b.String()
}

func (a App) viewConfig() string {
	mat := a.mats[a.cursor]

	var b strings.Builder
	b.WriteString("\n\n    " + materialStyle(mat.Color).Render(strings.ToUpper(mat.Name)) + "\n")
	b.WriteString("    " + subtleStyle.Render("slab and excitation parameters") + "\n")
	b.WriteString("    " + subtleStyle.Render("───────────────────────────────") + "\n\n")

	for i, name := range a.paramNames {
		valStr := fmt.Sprintf("%10g", a.params[name])
		if a.editing && i == a.paramCursor {
			valStr = fmt.Sprintf("%10s", a.editBuf+"_")
		}
		if i == a.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				activeStyle.Render("▸"),
				valueStyle.Render(fmt.Sprintf("%-10s", name)),
				activeStyle.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				subtleStyle.Render(fmt.Sprintf("%-10s", name)),
				subtleStyle.Render(valStr)))
		}
	}

	if a.status != "" {
		b.WriteString("\n    " + statusPaused.Render(a.status) + "\n")
	}

	b.WriteString("\n    " + helpStyle.Render("j/k select · h/l adjust · enter edit · s start · esc back") + "\n")
	return b.String()
}

// RunInteractive opens the full-screen explorer.
func RunInteractive(exc field.Excitation, dom field.Domain) error {
	_, err := tea.NewProgram(NewApp(exc, dom), tea.WithAltScreen()).Run()
	return err
}

// RunLive opens the live view directly, skipping the menu.
func RunLive(mats []material.Properties, exc field.Excitation, dom field.Domain, dt float64) error {
	m, err := NewModel(mats, exc, dom, dt)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
