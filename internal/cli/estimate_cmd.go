package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/handyops/proserve/internal/cli/formatter"
	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/estimate"
	"github.com/spf13/cobra"
)

// proserveHuhTheme returns a custom huh theme using the Gruvbox palette.
func proserveHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newEstimateCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Build an estimate from the catalog and convert it to a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimateWizard(app, out)
		},
	}

	cmd.Flags().StringVar(&out, "out", "estimate.html", "Output file for the printable estimate")

	return cmd
}

func runEstimateWizard(app *App, printPath string) error {
	ctx := context.Background()

	services, err := app.Catalog.List(ctx, true)
	if err != nil {
		return err
	}
	if len(services) == 0 {
		fmt.Println("The catalog is empty. Add services first with 'proserve service add'.")
		return nil
	}

	byID := make(map[string]*domain.Service, len(services))
	options := make([]huh.Option[string], 0, len(services))
	for _, s := range services {
		byID[s.ID] = s
		label := fmt.Sprintf("%s (%s)", s.Name, s.Category)
		options = append(options, huh.NewOption(label, s.ID))
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which services?").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(proserveHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Println("Nothing selected.")
		return nil
	}

	builder := estimate.NewBuilder()
	for _, id := range selected {
		if err := builder.Toggle(*byID[id]); err != nil {
			return err
		}
	}

	for _, id := range selected {
		svc := byID[id]
		qtyStr := "1"
		qtyForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Quantity for %s", svc.Name)).
					Placeholder("1").
					Value(&qtyStr).
					Validate(func(s string) error {
						if s == "" {
							return nil
						}
						v, err := strconv.Atoi(s)
						if err != nil || v < 1 {
							return fmt.Errorf("enter a positive number")
						}
						return nil
					}),
			),
		).WithTheme(proserveHuhTheme()).WithShowHelp(false)
		if err := qtyForm.Run(); err != nil {
			return err
		}
		if qty, err := strconv.Atoi(qtyStr); err == nil {
			if err := builder.SetQuantity(svc.ID, qty); err != nil {
				return err
			}
		}
	}

	totals, err := builder.Totals()
	if err != nil {
		return err
	}
	fmt.Println(formatter.FormatEstimate(builder.Lines(), totals))

	var action string
	actionForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What next?").
				Options(
					huh.NewOption("Convert to a scheduled job", "convert"),
					huh.NewOption("Write printable estimate", "print"),
					huh.NewOption("Draft estimate email", "email"),
					huh.NewOption("Discard", "discard"),
				).
				Value(&action),
		),
	).WithTheme(proserveHuhTheme()).WithShowHelp(false)
	if err := actionForm.Run(); err != nil {
		return err
	}

	switch action {
	case "convert":
		return convertEstimate(ctx, app, builder)
	case "print":
		html, err := builder.RenderPrintable(time.Now())
		if err != nil {
			return err
		}
		if err := os.WriteFile(printPath, []byte(html), 0o644); err != nil {
			return fmt.Errorf("writing estimate: %w", err)
		}
		fmt.Printf("Wrote %s\n", printPath)
		return nil
	case "email":
		email, err := builder.RenderEmail(time.Now())
		if err != nil {
			return err
		}
		fmt.Println(formatter.Header("Subject") + "\n" + email.Subject)
		fmt.Println("\n" + formatter.Header("Body") + "\n" + email.Body)
		return nil
	default:
		fmt.Println("Estimate discarded.")
		return nil
	}
}

func convertEstimate(ctx context.Context, app *App, builder *estimate.Builder) error {
	var client, phone, address, when string
	detailsForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Client name").Value(&client).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("client name is required")
					}
					return nil
				}),
			huh.NewInput().Title("Phone").Value(&phone),
			huh.NewInput().Title("Address").Value(&address),
			huh.NewInput().Title("Scheduled (YYYY-MM-DD HH:MM)").Value(&when).
				Validate(func(s string) error {
					if _, err := parseSchedule(s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD HH:MM format")
					}
					return nil
				}),
		),
	).WithTheme(proserveHuhTheme()).WithShowHelp(false)
	if err := detailsForm.Run(); err != nil {
		return err
	}

	scheduled, err := parseSchedule(when)
	if err != nil {
		return err
	}

	job, err := builder.BeginConvert(time.Now().UTC())
	if err != nil {
		return err
	}
	job.ClientName = client
	job.Phone = phone
	job.Address = address
	job.ScheduledDate = scheduled

	if err := app.Jobs.Create(ctx, job); err != nil {
		builder.FinishConvert(false)
		return err
	}
	builder.FinishConvert(true)

	fmt.Printf("Created job for %s on %s [%s]\n",
		client, scheduled.Format("Mon Jan 2 15:04"), formatter.TruncID(job.ID))
	return nil
}
