// Package tui runs the page on Bubble Tea's event loop: one thread, one
// message at a time, state update and re-render as a single step.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/clicker/internal/counter"
	"github.com/idilsaglam/clicker/internal/ui"
	"github.com/idilsaglam/clicker/internal/vdom"
)

type keymap struct {
	Click key.Binding
	Quit  key.Binding
}

func newKeymap() keymap {
	return keymap{
		Click: key.NewBinding(key.WithKeys("enter", " ", "c"), key.WithHelp("enter/space", "click")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model implements tea.Model around a counter view.
type Model struct {
	view   *counter.View
	render *vdom.Renderer
	keys   keymap
	help   help.Model
	width  int
}

func New(v *counter.View) Model {
	return Model{
		view:   v,
		render: vdom.NewRenderer(ui.Current()),
		keys:   newKeymap(),
		help:   help.New(),
	}
}

// Run starts the interactive page. Mouse reporting is on so button clicks
// arrive as mouse events.
func Run(v *counter.View) error {
	p := tea.NewProgram(New(v), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		// The button is the only control on the page, so any left click
		// activates it.
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			vdom.Activate(m.view.Render(), "add-button")
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Click):
			// Dispatch through the tree so the button's own handler runs.
			vdom.Activate(m.view.Render(), "add-button")
			return m, nil
		}
	}
	return m, nil
}

func (m Model) View() string {
	page := m.render.Render(m.view.Render())
	footer := m.help.ShortHelpView([]key.Binding{m.keys.Click, m.keys.Quit})
	return ui.Panel(page + "\n\n" + footer)
}
