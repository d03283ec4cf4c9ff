package formatter

import (
	"fmt"
	"strings"

	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/service"
)

// FormatServiceList renders catalog entries as a boxed table.
func FormatServiceList(services []*domain.Service) string {
	headers := []string{"ID", "NAME", "CATEGORY", "RATE", "DURATION", "ACTIVE"}
	rows := make([][]string, 0, len(services))

	for _, s := range services {
		active := StyleGreen.Render("yes")
		if !s.IsActive {
			active = Dim("no")
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(s.Name),
			s.Category,
			describeRate(s),
			FormatHours(s.EstimatedDurationHours),
			active,
		})
	}

	return RenderBox("Service Catalog", RenderTable(headers, rows))
}

// FormatCatalogByCategory renders active services grouped under their
// category headers.
func FormatCatalogByCategory(groups []service.CategoryGroup) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(g.Category) + "\n")
		for _, s := range g.Services {
			b.WriteString(fmt.Sprintf("  %s  %s\n", Bold(s.Name), Dim(describeRate(s))))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func describeRate(s *domain.Service) string {
	if s.PricingType == domain.PricingHourly && s.HourlyRate != nil {
		return FormatUSD(*s.HourlyRate) + "/hr"
	}
	if s.FlatRate != nil {
		return FormatUSD(*s.FlatRate) + " flat"
	}
	return "--"
}
