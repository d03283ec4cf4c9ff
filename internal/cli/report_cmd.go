package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/handyops/proserve/internal/cli/formatter"
	"github.com/handyops/proserve/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var months int
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show revenue breakdowns for a trailing window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if months != 3 && months != 6 && months != 12 {
				return fmt.Errorf("window must be 3, 6, or 12 months")
			}
			ctx := context.Background()
			now := time.Now()

			buckets, err := app.Reports.MonthlyRevenue(ctx, now, months)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(buckets))
			for _, b := range buckets {
				rows = append(rows, []string{
					b.Month.Format("Jan 2006"),
					formatter.FormatUSD(b.Revenue),
					fmt.Sprintf("%d", b.Paid),
				})
			}
			fmt.Println(formatter.RenderBox(
				fmt.Sprintf("Revenue, last %d months", months),
				formatter.RenderTable([]string{"MONTH", "REVENUE", "JOBS PAID"}, rows)))

			byService, err := app.Reports.RevenueByService(ctx)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(byService))
			for name := range byService {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool { return byService[names[i]] > byService[names[j]] })
			svcRows := make([][]string, 0, len(names))
			for _, name := range names {
				svcRows = append(svcRows, []string{name, formatter.FormatUSD(byService[name])})
			}
			fmt.Println(formatter.RenderBox("Revenue by Service",
				formatter.RenderTable([]string{"SERVICE", "REVENUE"}, svcRows)))

			statuses, err := app.Reports.StatusDistribution(ctx)
			if err != nil {
				return err
			}
			statusRows := make([][]string, 0, 4)
			for _, s := range []domain.JobStatus{domain.JobScheduled, domain.JobInProgress, domain.JobCompleted, domain.JobPaid} {
				statusRows = append(statusRows, []string{
					formatter.JobStatusPill(s),
					fmt.Sprintf("%d", statuses[s]),
				})
			}
			fmt.Println(formatter.RenderBox("Jobs by Status",
				formatter.RenderTable([]string{"STATUS", "COUNT"}, statusRows)))

			if out != "" {
				if err := app.Reports.Export(ctx, out, now, months); err != nil {
					return err
				}
				fmt.Printf("Exported %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 3, "Trailing window: 3, 6, or 12")
	cmd.Flags().StringVar(&out, "out", "", "Also export the report as an xlsx workbook")

	return cmd
}
