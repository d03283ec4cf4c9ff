package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/handyops/proserve/internal/calendar"
	"github.com/handyops/proserve/internal/cli/formatter"
	"github.com/handyops/proserve/internal/domain"
)

// calendarLoadedMsg carries the jobs for the visible range.
type calendarLoadedMsg struct {
	jobs []*domain.Job
	err  error
}

// moveResolvedMsg signals the outcome of confirming a move.
type moveResolvedMsg struct {
	err error
}

// calendarView shows the month, week, or day grid and drives
// rescheduling as a pick-up-and-drop interaction: m picks up the
// selected job, arrows hover it over new slots, enter confirms, esc
// drops it back where it started.
type calendarView struct {
	state *SharedState
	view  calendar.ViewState
	jobs  []*domain.Job

	selected time.Time // selected day, midnight
	hour     int       // selected hour in week/day modes
	jobIdx   int       // index into jobs on the selected day

	move    *calendar.Move
	loading bool
	err     error
	notice  string
}

func newCalendarView(state *SharedState) *calendarView {
	now := time.Now()
	return &calendarView{
		state:    state,
		view:     calendar.NewViewState(now),
		selected: calendar.StartOfDay(now),
		hour:     calendar.DefaultDropHour,
		loading:  true,
	}
}

func (v *calendarView) ID() ViewID    { return ViewCalendar }
func (v *calendarView) Title() string { return "Calendar" }

func (v *calendarView) ShortHelp() []key.Binding {
	if v.move != nil {
		return []key.Binding{
			key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("arrows", "hover slot")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop here")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel move")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "cycle view")),
		key.NewBinding(key.WithKeys("h", "l"), key.WithHelp("h/l", "prev/next")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "select day")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next job")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move job")),
	}
}

func (v *calendarView) Init() tea.Cmd {
	return v.loadJobs()
}

func (v *calendarView) loadJobs() tea.Cmd {
	from, to := v.view.Range()
	app := v.state.App
	return func() tea.Msg {
		jobs, err := app.Jobs.ListBetween(context.Background(), from, to)
		return calendarLoadedMsg{jobs: jobs, err: err}
	}
}

func (v *calendarView) jobsOnSelectedDay() []*domain.Job {
	var out []*domain.Job
	for _, j := range v.jobs {
		if calendar.SameDay(j.ScheduledDate, v.selected) {
			out = append(out, j)
		}
	}
	return out
}

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case calendarLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.jobs = msg.jobs
		}
		v.jobIdx = 0
		return v, nil

	case moveResolvedMsg:
		if msg.err != nil {
			v.notice = fmt.Sprintf("Reschedule failed, job returned to its original slot: %v", msg.err)
		} else {
			v.notice = ""
		}
		v.move = nil
		return v, v.loadJobs()

	case tea.KeyMsg:
		if v.move != nil {
			return v.updateMoving(msg)
		}
		return v.updateBrowsing(msg)
	}
	return v, nil
}

func (v *calendarView) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "v":
		switch v.view.Mode {
		case calendar.ModeMonth:
			v.view = v.view.WithMode(calendar.ModeWeek)
		case calendar.ModeWeek:
			v.view = v.view.WithMode(calendar.ModeDay)
		default:
			v.view = v.view.WithMode(calendar.ModeMonth)
		}
		return v, v.loadJobs()
	case "h":
		v.view = v.view.Previous()
		v.selected = calendar.StartOfDay(v.view.Current)
		return v, v.loadJobs()
	case "l":
		v.view = v.view.Next()
		v.selected = calendar.StartOfDay(v.view.Current)
		return v, v.loadJobs()
	case "t":
		v.view = v.view.Today(time.Now())
		v.selected = calendar.StartOfDay(time.Now())
		return v, v.loadJobs()
	case "left":
		v.selected = v.selected.AddDate(0, 0, -1)
		v.jobIdx = 0
	case "right":
		v.selected = v.selected.AddDate(0, 0, 1)
		v.jobIdx = 0
	case "up":
		v.selected = v.selected.AddDate(0, 0, -7)
		v.jobIdx = 0
	case "down":
		v.selected = v.selected.AddDate(0, 0, 7)
		v.jobIdx = 0
	case "tab":
		if day := v.jobsOnSelectedDay(); len(day) > 0 {
			v.jobIdx = (v.jobIdx + 1) % len(day)
		}
	case "esc":
		return v, popView
	case "m":
		day := v.jobsOnSelectedDay()
		if len(day) == 0 {
			v.notice = "No job on the selected day to move."
			return v, nil
		}
		if v.jobIdx >= len(day) {
			v.jobIdx = 0
		}
		job := day[v.jobIdx]
		v.move = calendar.StartMove(job)
		v.hour = job.ScheduledDate.Hour()
		v.notice = ""
	}
	return v, nil
}

func (v *calendarView) updateMoving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	hourly := v.view.Mode != calendar.ModeMonth

	switch msg.String() {
	case "left":
		v.selected = v.selected.AddDate(0, 0, -1)
	case "right":
		v.selected = v.selected.AddDate(0, 0, 1)
	case "up":
		if hourly {
			if v.hour > calendar.DayStartHour {
				v.hour--
			}
		} else {
			v.selected = v.selected.AddDate(0, 0, -7)
		}
	case "down":
		if hourly {
			if v.hour < calendar.DayEndHour {
				v.hour++
			}
		} else {
			v.selected = v.selected.AddDate(0, 0, 7)
		}
	case "enter":
		move := v.move
		app := v.state.App
		return v, func() tea.Msg {
			return moveResolvedMsg{err: move.Confirm(context.Background(), app.Jobs)}
		}
	case "esc":
		v.move.Cancel()
		v.move = nil
		return v, nil
	default:
		return v, nil
	}

	// Hover the picked-up job over the new slot.
	if hourly {
		v.move.Apply(calendar.DropOnSlot(v.selected, v.hour))
	} else {
		v.move.Apply(calendar.DropOnDay(v.selected))
	}
	return v, nil
}

func (v *calendarView) View() string {
	if v.loading {
		return formatter.Dim("Loading…")
	}
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}

	var grid string
	switch v.view.Mode {
	case calendar.ModeWeek:
		grid = formatter.FormatWeekGrid(calendar.WeekGrid(v.view.Current, v.jobs))
	case calendar.ModeDay:
		grid = formatter.FormatDayGrid(calendar.DayGrid(v.selected, v.jobs))
	default:
		grid = formatter.FormatMonthGrid(calendar.MonthGrid(v.view.Current, v.jobs), v.view.Current, v.selected)
	}

	out := grid
	if v.move != nil {
		out += "\n\n" + formatter.StyleYellow.Render(fmt.Sprintf(
			"Moving %s → %s", v.move.Job().ClientName, v.move.Job().ScheduledDate.Format("Mon Jan 2 15:04")))
	} else if day := v.jobsOnSelectedDay(); len(day) > 0 && v.jobIdx < len(day) {
		j := day[v.jobIdx]
		out += "\n\n" + formatter.Dim(fmt.Sprintf("Selected: %s at %s (press m to move)",
			j.ClientName, j.ScheduledDate.Format("15:04")))
	}
	if v.notice != "" {
		out += "\n" + formatter.StyleRed.Render(v.notice)
	}
	return out
}
