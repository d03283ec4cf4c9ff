package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handyops/proserve/internal/metrics"
)

// metricCard renders one labeled figure with a colored value.
func metricCard(label, value string, style lipgloss.Style) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 2)
	return card.Render(style.Bold(true).Render(value) + "\n" + Dim(label))
}

// FormatDashboard renders the metric cards plus today's schedule.
func FormatDashboard(s *metrics.Summary) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Jobs today", fmt.Sprintf("%d", len(s.TodaysJobs)), StyleBlue),
		" ",
		metricCard("Pending estimates", fmt.Sprintf("%d", len(s.PendingEstimates)), StyleYellow),
		" ",
		metricCard("Earnings", FormatUSD(s.MonthlyEarnings), StyleGreen),
		" ",
		metricCard("Avg job value", FormatUSD(s.AverageJobValue), StylePurple),
	)

	var b strings.Builder
	b.WriteString(cards + "\n")

	if len(s.TodaysJobs) > 0 {
		b.WriteString("\n" + Header("Today's Schedule") + "\n")
		for _, j := range s.TodaysJobs {
			b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
				j.ScheduledDate.Format("15:04"),
				Bold(j.ClientName),
				j.ServiceType,
				JobStatusPill(j.Status)))
		}
	} else {
		b.WriteString("\n" + Dim("No jobs scheduled today.") + "\n")
	}

	if len(s.RecentPayments) > 0 {
		b.WriteString("\n" + Header("Payments This Month") + "\n")
		for _, j := range s.RecentPayments {
			b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
				Dim(j.PaidAt.Format("Jan 2")),
				j.ClientName,
				StyleGreen.Render(FormatOptionalUSD(j.Price))))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
