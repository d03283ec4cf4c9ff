package calendar

import (
	"time"

	"github.com/handyops/proserve/internal/domain"
)

// MaxVisiblePerDayCell caps how many jobs a month cell lists before
// collapsing the rest into a "+N more" indicator.
const MaxVisiblePerDayCell = 3

// DayCell is one day in the month grid.
type DayCell struct {
	Date    time.Time
	InMonth bool
	Jobs    []*domain.Job
}

// Visible returns the jobs shown in the cell, capped at
// MaxVisiblePerDayCell.
func (c DayCell) Visible() []*domain.Job {
	if len(c.Jobs) <= MaxVisiblePerDayCell {
		return c.Jobs
	}
	return c.Jobs[:MaxVisiblePerDayCell]
}

// Overflow returns how many jobs the cell hides behind "+N more".
func (c DayCell) Overflow() int {
	if len(c.Jobs) <= MaxVisiblePerDayCell {
		return 0
	}
	return len(c.Jobs) - MaxVisiblePerDayCell
}

// HourSlot is one top-of-hour row within a day column.
type HourSlot struct {
	Date time.Time // midnight of the column's day
	Hour int
	Jobs []*domain.Job
}

// DayColumn is one day of hourly slots in the week or day grid.
type DayColumn struct {
	Date  time.Time
	Slots []HourSlot
}

// MonthGrid lays the month containing current onto a fixed 6-week
// span, including the leading and trailing days of adjacent months. A
// job lands in the cell matching its scheduled date.
func MonthGrid(current time.Time, jobs []*domain.Job) [][]DayCell {
	start := monthGridStart(current)
	month := current.Month()

	grid := make([][]DayCell, 6)
	for w := 0; w < 6; w++ {
		grid[w] = make([]DayCell, 7)
		for d := 0; d < 7; d++ {
			date := start.AddDate(0, 0, w*7+d)
			grid[w][d] = DayCell{
				Date:    date,
				InMonth: date.Month() == month,
				Jobs:    jobsOnDay(jobs, date),
			}
		}
	}
	return grid
}

// WeekGrid lays the week containing current onto 7 day columns of
// hourly slots.
func WeekGrid(current time.Time, jobs []*domain.Job) []DayColumn {
	start := StartOfWeek(current)
	cols := make([]DayColumn, 7)
	for d := 0; d < 7; d++ {
		cols[d] = dayColumn(start.AddDate(0, 0, d), jobs)
	}
	return cols
}

// DayGrid lays a single day onto one column of hourly slots.
func DayGrid(current time.Time, jobs []*domain.Job) DayColumn {
	return dayColumn(StartOfDay(current), jobs)
}

func dayColumn(date time.Time, jobs []*domain.Job) DayColumn {
	col := DayColumn{Date: date}
	for h := DayStartHour; h <= DayEndHour; h++ {
		slot := HourSlot{Date: date, Hour: h}
		for _, j := range jobs {
			if SameDay(j.ScheduledDate, date) && j.ScheduledDate.Hour() == h {
				slot.Jobs = append(slot.Jobs, j)
			}
		}
		col.Slots = append(col.Slots, slot)
	}
	return col
}

func jobsOnDay(jobs []*domain.Job, date time.Time) []*domain.Job {
	var out []*domain.Job
	for _, j := range jobs {
		if SameDay(j.ScheduledDate, date) {
			out = append(out, j)
		}
	}
	return out
}

// DropOnDay returns the scheduled time for a job dropped on a
// whole-day cell: the target date at the default drop hour.
func DropOnDay(target time.Time) time.Time {
	return time.Date(target.Year(), target.Month(), target.Day(),
		DefaultDropHour, 0, 0, 0, target.Location())
}

// DropOnSlot returns the scheduled time for a job dropped on an hourly
// slot: the target date at that hour with minutes zeroed.
func DropOnSlot(target time.Time, hour int) time.Time {
	return time.Date(target.Year(), target.Month(), target.Day(),
		hour, 0, 0, 0, target.Location())
}
