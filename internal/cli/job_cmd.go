package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/handyops/proserve/internal/cli/formatter"
	"github.com/handyops/proserve/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const scheduleLayout = "2006-01-02 15:04"

// parseSchedule reads schedule input as local wall-clock time. Stored
// stamps then carry the local offset, so the calendar's day and hour
// ranges place the job on the day the user typed.
func parseSchedule(s string) (time.Time, error) {
	t, err := time.ParseInLocation(scheduleLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q (want YYYY-MM-DD HH:MM): %w", s, err)
	}
	return t, nil
}

// statusFlag validates --status against the known job statuses at parse time.
type statusFlag struct {
	value domain.JobStatus
}

var _ pflag.Value = (*statusFlag)(nil)

func (f *statusFlag) String() string { return string(f.value) }

func (f *statusFlag) Set(s string) error {
	st := domain.JobStatus(s)
	if domain.StatusRank(st) < 0 {
		return fmt.Errorf("unknown status %q (expected Scheduled, In Progress, Completed or Paid)", s)
	}
	f.value = st
	return nil
}

func (f *statusFlag) Type() string { return "status" }

func resolveJobID(ctx context.Context, app *App, input string) (string, error) {
	jobs, err := app.Jobs.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return resolveID(input, ids, "job")
}

func newJobCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Manage jobs",
	}

	cmd.AddCommand(
		newJobAddCmd(app),
		newJobListCmd(app),
		newJobInspectCmd(app),
		newJobUpdateCmd(app),
		newJobAdvanceCmd(app),
		newJobRescheduleCmd(app),
		newJobPriceCmd(app),
		newJobNoteCmd(app),
		newJobPhotoCmd(app),
		newJobRemoveCmd(app),
	)

	return cmd
}

func newJobAddCmd(app *App) *cobra.Command {
	var client, phone, address, serviceType, when, description string
	var price float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a new job",
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduled, err := parseSchedule(when)
			if err != nil {
				return err
			}

			j := &domain.Job{
				ClientName:    client,
				Phone:         phone,
				Address:       address,
				ServiceType:   serviceType,
				Description:   description,
				ScheduledDate: scheduled,
			}
			if cmd.Flags().Changed("price") {
				j.Price = &price
			}

			if err := app.Jobs.Create(context.Background(), j); err != nil {
				return err
			}
			fmt.Printf("Scheduled job for %s on %s [%s]\n",
				j.ClientName, scheduled.Format("Mon Jan 2 15:04"), formatter.TruncID(j.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&phone, "phone", "", "Client phone")
	cmd.Flags().StringVar(&address, "address", "", "Job address")
	cmd.Flags().StringVar(&serviceType, "service", "", "Service type label")
	cmd.Flags().StringVar(&when, "at", "", "Scheduled date and time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&description, "description", "", "Job description")
	cmd.Flags().Float64Var(&price, "price", 0, "Committed price (omit to leave TBD)")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newJobListCmd(app *App) *cobra.Command {
	var status statusFlag

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := app.Jobs.List(context.Background())
			if err != nil {
				return err
			}
			if status.value != "" {
				filtered := jobs[:0]
				for _, j := range jobs {
					if j.Status == status.value {
						filtered = append(filtered, j)
					}
				}
				jobs = filtered
			}
			if len(jobs) == 0 {
				fmt.Println("No jobs found.")
				return nil
			}
			fmt.Println(formatter.FormatJobList(jobs))
			return nil
		},
	}

	cmd.Flags().Var(&status, "status", "Filter by status (Scheduled, In Progress, Completed, Paid)")

	return cmd
}

func newJobInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Show a job with its notes, photos, and line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			j, err := app.Jobs.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatJobInspect(j))
			return nil
		},
	}
}

func newJobUpdateCmd(app *App) *cobra.Command {
	var (
		client      string
		phone       string
		address     string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update job details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			j, err := app.Jobs.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("client") {
				j.ClientName = client
			}
			if cmd.Flags().Changed("phone") {
				j.Phone = phone
			}
			if cmd.Flags().Changed("address") {
				j.Address = address
			}
			if cmd.Flags().Changed("description") {
				j.Description = description
			}
			if err := app.Jobs.Update(ctx, j); err != nil {
				return err
			}
			fmt.Printf("Updated job %s\n", formatter.TruncID(j.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&phone, "phone", "", "Client phone")
	cmd.Flags().StringVar(&address, "address", "", "Job site address")
	cmd.Flags().StringVar(&description, "description", "", "Job description")

	return cmd
}

func newJobAdvanceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "advance <id>",
		Short: "Move a job to its next status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			j, err := app.Jobs.Advance(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Job for %s is now %s\n", j.ClientName, formatter.JobStatusPill(j.Status))

			// A job entering Paid feeds the client ledger when the client
			// record exists under the same name.
			if j.Status == domain.JobPaid && j.Price != nil {
				if clientID := findClientByName(ctx, app, j.ClientName); clientID != "" {
					if err := app.Clients.RecordJobPayment(ctx, clientID, *j.Price); err != nil {
						fmt.Printf("Warning: could not update client totals: %v\n", err)
					}
				}
			}
			return nil
		},
	}
}

func findClientByName(ctx context.Context, app *App, name string) string {
	clients, err := app.Clients.List(ctx)
	if err != nil {
		return ""
	}
	for _, c := range clients {
		if c.Name == name {
			return c.ID
		}
	}
	return ""
}

func newJobRescheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reschedule <id> <datetime>",
		Short: "Move a job to a new date and time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			when, err := parseSchedule(args[1])
			if err != nil {
				return err
			}
			j, err := app.Jobs.Reschedule(ctx, id, when)
			if err != nil {
				return err
			}
			fmt.Printf("Rescheduled %s to %s\n", j.ClientName, when.Format("Mon Jan 2 15:04"))
			return nil
		},
	}
}

func newJobPriceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "price <id> <amount>",
		Short: "Set the committed price on a job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			var amount float64
			if _, err := fmt.Sscanf(args[1], "%f", &amount); err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			j, err := app.Jobs.GetByID(ctx, id)
			if err != nil {
				return err
			}
			j.Price = &amount
			if err := app.Jobs.Update(ctx, j); err != nil {
				return err
			}
			fmt.Printf("Priced job for %s at %s\n", j.ClientName, formatter.FormatUSD(amount))
			return nil
		},
	}
}

func newJobNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage job notes",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <job-id> <text>",
			Short: "Add a note to a job",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				id, err := resolveJobID(ctx, app, args[0])
				if err != nil {
					return err
				}
				if _, err := app.Jobs.AddNote(ctx, id, args[1]); err != nil {
					return err
				}
				fmt.Println("Note added.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "update <job-id> <note-id> <text>",
			Short: "Rewrite a note",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				id, err := resolveJobID(ctx, app, args[0])
				if err != nil {
					return err
				}
				if err := app.Jobs.UpdateNote(ctx, id, args[1], args[2]); err != nil {
					return err
				}
				fmt.Println("Note updated.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <job-id> <note-id>",
			Short: "Remove a note",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				id, err := resolveJobID(ctx, app, args[0])
				if err != nil {
					return err
				}
				if err := app.Jobs.DeleteNote(ctx, id, args[1]); err != nil {
					return err
				}
				fmt.Println("Note removed.")
				return nil
			},
		},
	)

	return cmd
}

func newJobPhotoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photo",
		Short: "Manage job photos",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <job-id> <file>",
			Short: "Attach an image file to a job",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				id, err := resolveJobID(ctx, app, args[0])
				if err != nil {
					return err
				}

				data, err := os.ReadFile(args[1])
				if err != nil {
					return fmt.Errorf("reading photo: %w", err)
				}
				name := filepath.Base(args[1])
				mimeType := mime.TypeByExtension(filepath.Ext(name))

				p, err := app.Jobs.AddPhoto(ctx, id, name, mimeType, data)
				if err != nil {
					return err
				}
				fmt.Printf("Attached %s (%d KB)\n", p.Name, p.Size/1024)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <job-id> <photo-id>",
			Short: "Remove a photo",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				id, err := resolveJobID(ctx, app, args[0])
				if err != nil {
					return err
				}
				if err := app.Jobs.DeletePhoto(ctx, id, args[1]); err != nil {
					return err
				}
				fmt.Println("Photo removed.")
				return nil
			},
		},
	)

	return cmd
}

func newJobRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a job and its notes and photos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Jobs.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Job removed.")
			return nil
		},
	}
}
