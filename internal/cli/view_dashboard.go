package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/handyops/proserve/internal/cli/formatter"
	"github.com/handyops/proserve/internal/metrics"
)

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	summary *metrics.Summary
	err     error
}

// jobAdvancedMsg signals the outcome of advancing a job from the dashboard.
type jobAdvancedMsg struct {
	err error
}

// dashboardView is the home screen of the TUI: metric cards, today's
// schedule, and recent payments. The cursor selects one of today's
// jobs for advancing.
type dashboardView struct {
	state   *SharedState
	summary *metrics.Summary
	loading bool
	err     error
	cursor  int
	notice  string
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select job")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "advance status")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "calendar")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		summary, err := app.Reports.Dashboard(context.Background(), time.Now())
		return dashboardLoadedMsg{summary: summary, err: err}
	}
}

func (v *dashboardView) advanceSelected() tea.Cmd {
	if v.summary == nil || v.cursor >= len(v.summary.TodaysJobs) {
		return nil
	}
	jobID := v.summary.TodaysJobs[v.cursor].ID
	app := v.state.App
	return func() tea.Msg {
		_, err := app.Jobs.Advance(context.Background(), jobID)
		return jobAdvancedMsg{err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case dashboardLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.summary = msg.summary
		if v.summary != nil && v.cursor >= len(v.summary.TodaysJobs) {
			v.cursor = 0
		}
		return v, nil

	case jobAdvancedMsg:
		if msg.err != nil {
			v.notice = msg.err.Error()
			return v, nil
		}
		v.notice = ""
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.summary != nil && v.cursor < len(v.summary.TodaysJobs)-1 {
				v.cursor++
			}
		case "a":
			return v, v.advanceSelected()
		case "c":
			return v, pushView(newCalendarView(v.state))
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	if v.loading {
		return formatter.Dim("Loading…")
	}
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}
	if v.summary == nil {
		return ""
	}

	out := formatter.FormatDashboard(v.summary)
	if len(v.summary.TodaysJobs) > 0 && v.cursor < len(v.summary.TodaysJobs) {
		selected := v.summary.TodaysJobs[v.cursor]
		out += "\n\n" + formatter.Dim(fmt.Sprintf("Selected: %s (press a to advance)", selected.ClientName))
	}
	if v.notice != "" {
		out += "\n" + formatter.StyleRed.Render(v.notice)
	}
	return out
}
