package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/handyops/proserve/internal/calendar"
	"github.com/handyops/proserve/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var mode, date string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show scheduled jobs on a month, week, or day grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch mode {
			case "month", "week", "day":
			default:
				return fmt.Errorf("invalid view %q (want month, week, or day)", mode)
			}

			current := time.Now()
			if date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", date, err)
				}
				current = parsed
			}

			view := calendar.NewViewState(current).WithMode(calendar.ViewMode(mode))
			from, to := view.Range()
			jobs, err := app.Jobs.ListBetween(context.Background(), from, to)
			if err != nil {
				return err
			}

			switch view.Mode {
			case calendar.ModeWeek:
				fmt.Println(formatter.FormatWeekGrid(calendar.WeekGrid(current, jobs)))
			case calendar.ModeDay:
				fmt.Println(formatter.FormatDayGrid(calendar.DayGrid(current, jobs)))
			default:
				fmt.Println(formatter.FormatMonthGrid(calendar.MonthGrid(current, jobs), current, time.Time{}))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "view", "month", "Grid: month, week, or day")
	cmd.Flags().StringVar(&date, "date", "", "Anchor date (YYYY-MM-DD, default today)")

	return cmd
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's jobs, pending estimates, and earnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Reports.Dashboard(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDashboard(summary))
			return nil
		},
	}
}
