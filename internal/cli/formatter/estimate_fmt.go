package formatter

import (
	"fmt"
	"strings"

	"github.com/handyops/proserve/internal/pricing"
)

// FormatEstimate renders the current selection with per-line and
// aggregate figures.
func FormatEstimate(lines []pricing.LineItem, totals pricing.Totals) string {
	var b strings.Builder

	b.WriteString(Header("Estimate") + "\n")
	for _, line := range lines {
		amount := "--"
		if total, err := pricing.LineTotal(line); err == nil {
			amount = FormatUSD(total)
		}
		b.WriteString(fmt.Sprintf("  %s ×%d  %s\n",
			Bold(line.Service.Name),
			line.Quantity,
			StyleGreen.Render(amount)))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Labor:"), FormatUSD(totals.LaborCost)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Duration:"), FormatHours(totals.DurationHours)))
	b.WriteString(fmt.Sprintf("  %s %s %s\n",
		Dim("Suggested:"),
		StyleGreen.Bold(true).Render(FormatUSD(totals.SuggestedTotal)),
		Dim(fmt.Sprintf("(includes %.0f%% overhead)", pricing.OverheadMarkup*100))))

	return strings.TrimRight(b.String(), "\n")
}
