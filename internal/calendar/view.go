// Package calendar maps jobs onto month, week, and day grids and
// implements drag-and-drop rescheduling as an optimistic two-phase
// move. The grid math is pure; only Move.Confirm talks to the store.
package calendar

import "time"

// ViewMode selects the active grid.
type ViewMode string

const (
	ModeMonth ViewMode = "month"
	ModeWeek  ViewMode = "week"
	ModeDay   ViewMode = "day"
)

// Working hours shown as rows in week and day views.
const (
	DayStartHour = 7  // 07:00
	DayEndHour   = 18 // 18:00, inclusive top-of-hour row
)

// DefaultDropHour is the time of day assigned when a job is dropped on
// a whole-day cell (month view).
const DefaultDropHour = 9

// ViewState tracks what the calendar is looking at.
type ViewState struct {
	Current time.Time
	Mode    ViewMode
}

// NewViewState starts at the given date in month mode.
func NewViewState(now time.Time) ViewState {
	return ViewState{Current: now, Mode: ModeMonth}
}

// Previous shifts back one unit of the active view.
func (v ViewState) Previous() ViewState {
	switch v.Mode {
	case ModeMonth:
		v.Current = v.Current.AddDate(0, -1, 0)
	case ModeWeek:
		v.Current = v.Current.AddDate(0, 0, -7)
	case ModeDay:
		v.Current = v.Current.AddDate(0, 0, -1)
	}
	return v
}

// Next shifts forward one unit of the active view.
func (v ViewState) Next() ViewState {
	switch v.Mode {
	case ModeMonth:
		v.Current = v.Current.AddDate(0, 1, 0)
	case ModeWeek:
		v.Current = v.Current.AddDate(0, 0, 7)
	case ModeDay:
		v.Current = v.Current.AddDate(0, 0, 1)
	}
	return v
}

// Today resets to now without changing the view mode.
func (v ViewState) Today(now time.Time) ViewState {
	v.Current = now
	return v
}

// WithMode switches the view mode, keeping the current date.
func (v ViewState) WithMode(m ViewMode) ViewState {
	v.Mode = m
	return v
}

// Range returns the half-open [from, to) interval of dates the active
// view displays, suitable for a ranged job fetch.
func (v ViewState) Range() (time.Time, time.Time) {
	switch v.Mode {
	case ModeWeek:
		start := StartOfWeek(v.Current)
		return start, start.AddDate(0, 0, 7)
	case ModeDay:
		start := StartOfDay(v.Current)
		return start, start.AddDate(0, 0, 1)
	default:
		start := monthGridStart(v.Current)
		return start, start.AddDate(0, 0, 42)
	}
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Sunday on or before t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// monthGridStart returns the first cell of the 6-week month grid: the
// Sunday on or before the 1st of t's month.
func monthGridStart(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 0, -int(first.Weekday()))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
