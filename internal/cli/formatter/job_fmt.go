package formatter

import (
	"fmt"
	"strings"

	"github.com/handyops/proserve/internal/domain"
)

// FormatJobList renders jobs as a boxed table.
func FormatJobList(jobs []*domain.Job) string {
	headers := []string{"ID", "CLIENT", "SERVICE", "SCHEDULED", "PRICE", "STATUS"}
	rows := make([][]string, 0, len(jobs))

	for _, j := range jobs {
		rows = append(rows, []string{
			TruncID(j.ID),
			Bold(j.ClientName),
			j.ServiceType,
			j.ScheduledDate.Format("Mon Jan 2 15:04"),
			FormatOptionalUSD(j.Price),
			JobStatusPill(j.Status),
		})
	}

	return RenderBox("Jobs", RenderTable(headers, rows))
}

// FormatJobInspect renders the full job aggregate as a card.
func FormatJobInspect(j *domain.Job) string {
	var b strings.Builder

	b.WriteString(Bold(j.ClientName) + "  " + JobStatusPill(j.Status) + "\n\n")

	write := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(label+":"), value))
	}
	write("Service", j.ServiceType)
	write("Scheduled", j.ScheduledDate.Format("Mon Jan 2 2006 15:04"))
	write("Address", j.Address)
	write("Phone", j.Phone)
	write("Price", FormatOptionalUSD(j.Price))
	if j.EstimatedCost > 0 {
		write("Estimated", FormatUSD(j.EstimatedCost))
	}
	if j.EstimatedDurationHours > 0 {
		write("Duration", FormatHours(j.EstimatedDurationHours))
	}
	if j.CompletedAt != nil {
		write("Completed", j.CompletedAt.Format("Jan 2 2006"))
	}
	if j.PaidAt != nil {
		write("Paid", j.PaidAt.Format("Jan 2 2006"))
	}

	if j.Description != "" {
		b.WriteString("\n" + Header("Description") + "\n" + j.Description + "\n")
	}

	if len(j.Services) > 0 {
		b.WriteString("\n" + Header("Line Items") + "\n")
		for _, line := range j.Services {
			b.WriteString(fmt.Sprintf("  %s ×%d  %s\n",
				line.ServiceName, line.Quantity, Dim(describeLineRate(line))))
		}
	}

	if len(j.Notes) > 0 {
		b.WriteString("\n" + Header("Notes") + "\n")
		for _, n := range j.Notes {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim(n.CreatedAt.Format("Jan 2")), n.Text))
		}
	}

	if len(j.Photos) > 0 {
		b.WriteString("\n" + Header("Photos") + "\n")
		for _, p := range j.Photos {
			b.WriteString(fmt.Sprintf("  %s %s\n", p.Name, Dim(fmt.Sprintf("(%d KB)", p.Size/1024))))
		}
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

func describeLineRate(line domain.ServiceLine) string {
	if line.PricingType == domain.PricingHourly {
		return fmt.Sprintf("%s/hr × %s", FormatUSD(line.Rate), FormatHours(line.EstimatedDurationHours))
	}
	return FormatUSD(line.Rate) + " flat"
}

// TruncID shortens a UUID to its first 8 characters for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
