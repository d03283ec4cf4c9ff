package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/handyops/proserve/internal/cli/formatter"
)

// appModel is the root bubbletea Model for the TUI. It manages a view
// stack with the dashboard as the home view.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	return appModel{
		state:     state,
		viewStack: []View{newDashboardView(state)},
	}
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	v := m.activeView()
	if v == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("proserve") + formatter.Dim(" · "+m.breadcrumb()) + "\n\n")
	b.WriteString(v.View())
	b.WriteString("\n\n" + m.helpBar(v))
	return b.String()
}

func (m appModel) breadcrumb() string {
	parts := make([]string, 0, len(m.viewStack))
	for _, v := range m.viewStack {
		parts = append(parts, v.Title())
	}
	return strings.Join(parts, " › ")
}

func (m appModel) helpBar(v View) string {
	bindings := append(v.ShortHelp(),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")))

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim("  ·  "))
}
