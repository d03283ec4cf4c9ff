package formatter

import (
	"fmt"
	"strings"

	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/service"
)

// FormatClientList renders clients as a boxed table.
func FormatClientList(clients []*domain.Client) string {
	headers := []string{"ID", "NAME", "PHONE", "STATUS", "JOBS", "SPENT", "LAST CONTACT"}
	rows := make([][]string, 0, len(clients))

	for _, c := range clients {
		rows = append(rows, []string{
			TruncID(c.ID),
			Bold(c.Name),
			c.Phone,
			ClientStatusPill(c.Status),
			fmt.Sprintf("%d", c.TotalJobs),
			FormatUSD(c.TotalSpent),
			c.LastContact.Format("Jan 2 2006"),
		})
	}

	return RenderBox("Clients", RenderTable(headers, rows))
}

// FormatClientStats renders the client roll-up line.
func FormatClientStats(s *service.ClientStats) string {
	return fmt.Sprintf("%s total  %s active  %s revenue  %s avg jobs/client",
		Bold(fmt.Sprintf("%d", s.TotalClients)),
		StyleGreen.Render(fmt.Sprintf("%d", s.ActiveClients)),
		StyleGreen.Render(FormatUSD(s.TotalRevenue)),
		Bold(fmt.Sprintf("%.1f", s.AvgJobsPerClient)))
}

// FormatClientInspect renders a single client card.
func FormatClientInspect(c *domain.Client, comms []*domain.Communication) string {
	var b strings.Builder

	b.WriteString(Bold(c.Name) + "  " + ClientStatusPill(c.Status) + "\n\n")
	write := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(label+":"), value))
	}
	write("Company", c.Company)
	write("Email", c.Email)
	write("Phone", c.Phone)
	write("Address", c.Address)
	write("Client since", c.ClientSince.Format("Jan 2006"))
	write("Last contact", c.LastContact.Format("Jan 2 2006"))
	write("Jobs", fmt.Sprintf("%d", c.TotalJobs))
	write("Total spent", FormatUSD(c.TotalSpent))

	if len(comms) > 0 {
		b.WriteString("\n" + Header("Communications") + "\n")
		for _, cm := range comms {
			arrow := "→"
			if cm.Direction == domain.DirectionInbound {
				arrow = "←"
			}
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				Dim(cm.Date.Format("Jan 2")), arrow, string(cm.Type), cm.Subject))
		}
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}
