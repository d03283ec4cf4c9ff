package estimate

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/handyops/proserve/internal/pricing"
)

// Email is a rendered estimate ready to hand to a mail client.
type Email struct {
	Subject string
	Body    string
}

// RenderPrintable produces a self-contained HTML document for the
// current selection. The print and email renderings share the same
// aggregate figures, so both documents always show identical dollar
// amounts.
func (b *Builder) RenderPrintable(generatedAt time.Time) (string, error) {
	if err := b.begin(StatePrinting); err != nil {
		return "", err
	}
	defer b.end()

	totals, err := pricing.Aggregate(b.lines)
	if err != nil {
		return "", err
	}

	var rows strings.Builder
	for _, l := range b.lines {
		lineTotal, err := pricing.LineTotal(l)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&rows, "      <tr><td>%s</td><td>%d</td><td>%s</td><td>$%.2f</td></tr>\n",
			html.EscapeString(l.Service.Name), l.Quantity,
			html.EscapeString(describeRate(l.Service)), lineTotal)
	}

	doc := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Estimate</title>
  <style>
    body { font-family: sans-serif; margin: 2rem; }
    table { border-collapse: collapse; width: 100%%; }
    th, td { border: 1px solid #ccc; padding: 0.5rem; text-align: left; }
    .totals td { font-weight: bold; }
    .fineprint { color: #666; font-size: 0.8rem; }
  </style>
</head>
<body>
  <h1>Estimate</h1>
  <p>Generated %s</p>
  <table>
    <thead>
      <tr><th>Service</th><th>Qty</th><th>Rate</th><th>Total</th></tr>
    </thead>
    <tbody>
%s    </tbody>
  </table>
  <p>Labor Cost: $%.2f<br>
  Estimated Duration: %.1f hrs<br>
  <strong>Suggested Total: $%.2f</strong></p>
  <p class="fineprint">Includes 15%% markup for materials/overhead.</p>
</body>
</html>
`, generatedAt.Format("January 2, 2006"), rows.String(),
		totals.LaborCost, totals.DurationHours, totals.SuggestedTotal)

	return doc, nil
}

// RenderEmail produces a plain-text estimate for a mail client.
func (b *Builder) RenderEmail(generatedAt time.Time) (Email, error) {
	if err := b.begin(StateEmailing); err != nil {
		return Email{}, err
	}
	defer b.end()

	totals, err := pricing.Aggregate(b.lines)
	if err != nil {
		return Email{}, err
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Estimate - %s\n\n", generatedAt.Format("January 2, 2006"))
	for _, l := range b.lines {
		lineTotal, err := pricing.LineTotal(l)
		if err != nil {
			return Email{}, err
		}
		fmt.Fprintf(&body, "  %s - Qty %d - %s = $%.2f\n",
			l.Service.Name, l.Quantity, describeRate(l.Service), lineTotal)
	}
	fmt.Fprintf(&body, "\nLabor Cost: $%.2f\n", totals.LaborCost)
	fmt.Fprintf(&body, "Estimated Duration: %.1f hrs\n", totals.DurationHours)
	fmt.Fprintf(&body, "Suggested Total: $%.2f\n", totals.SuggestedTotal)
	body.WriteString("\nIncludes 15% markup for materials/overhead.\n")

	return Email{
		Subject: fmt.Sprintf("Estimate: $%.2f", totals.SuggestedTotal),
		Body:    body.String(),
	}, nil
}
