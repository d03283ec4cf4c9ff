package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/handyops/proserve/internal/calendar"
)

const monthCellWidth = 16

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatMonthGrid renders the 6-week month grid. selected highlights
// one cell; pass a zero time for none.
func FormatMonthGrid(grid [][]calendar.DayCell, current, selected time.Time) string {
	cell := lipgloss.NewStyle().Width(monthCellWidth).Height(calendar.MaxVisiblePerDayCell + 2).
		Border(lipgloss.NormalBorder()).BorderForeground(ColorDim)
	selectedCell := cell.BorderForeground(ColorHeader)

	var b strings.Builder
	b.WriteString(StyleHeader.Render(current.Format("January 2006")) + "\n")

	var head []string
	for _, d := range weekdayNames {
		head = append(head, lipgloss.NewStyle().Width(monthCellWidth+2).Align(lipgloss.Center).Render(Dim(d)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, head...) + "\n")

	for _, week := range grid {
		var cells []string
		for _, day := range week {
			style := cell
			if !selected.IsZero() && calendar.SameDay(day.Date, selected) {
				style = selectedCell
			}
			cells = append(cells, style.Render(renderDayCell(day)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderDayCell(day calendar.DayCell) string {
	num := fmt.Sprintf("%d", day.Date.Day())
	if day.InMonth {
		num = Bold(num)
	} else {
		num = Dim(num)
	}

	lines := []string{num}
	for _, j := range day.Visible() {
		label := j.ClientName
		if len(label) > monthCellWidth-2 {
			label = label[:monthCellWidth-2]
		}
		lines = append(lines, JobStatusStyle(j.Status).Render(label))
	}
	if over := day.Overflow(); over > 0 {
		lines = append(lines, Dim(fmt.Sprintf("+%d more", over)))
	}
	return strings.Join(lines, "\n")
}

// FormatWeekGrid renders hourly rows across 7 day columns.
func FormatWeekGrid(cols []calendar.DayColumn) string {
	var b strings.Builder

	b.WriteString(strings.Repeat(" ", 7))
	for _, col := range cols {
		label := col.Date.Format("Mon 2")
		b.WriteString(lipgloss.NewStyle().Width(monthCellWidth).Render(Dim(label)))
	}
	b.WriteString("\n")

	for h := calendar.DayStartHour; h <= calendar.DayEndHour; h++ {
		b.WriteString(Dim(fmt.Sprintf("%02d:00  ", h)))
		for _, col := range cols {
			slot := col.Slots[h-calendar.DayStartHour]
			b.WriteString(lipgloss.NewStyle().Width(monthCellWidth).Render(renderSlot(slot)))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatDayGrid renders one day as a single column of hourly rows.
func FormatDayGrid(col calendar.DayColumn) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(col.Date.Format("Monday, January 2 2006")) + "\n")

	for _, slot := range col.Slots {
		b.WriteString(Dim(fmt.Sprintf("%02d:00  ", slot.Hour)))
		if len(slot.Jobs) == 0 {
			b.WriteString("\n")
			continue
		}
		var labels []string
		for _, j := range slot.Jobs {
			labels = append(labels, JobStatusStyle(j.Status).Render(j.ClientName)+" "+Dim(j.ServiceType))
		}
		b.WriteString(strings.Join(labels, Dim(" | ")) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSlot(slot calendar.HourSlot) string {
	if len(slot.Jobs) == 0 {
		return ""
	}
	label := slot.Jobs[0].ClientName
	if len(slot.Jobs) > 1 {
		label = fmt.Sprintf("%s +%d", label, len(slot.Jobs)-1)
	}
	if len(label) > monthCellWidth-1 {
		label = label[:monthCellWidth-1]
	}
	return JobStatusStyle(slot.Jobs[0].Status).Render(label)
}
