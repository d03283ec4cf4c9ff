package cli

import (
	"context"
	"fmt"

	"github.com/handyops/proserve/internal/cli/formatter"
	"github.com/handyops/proserve/internal/domain"
	"github.com/spf13/cobra"
)

func resolveServiceID(ctx context.Context, app *App, input string) (string, error) {
	services, err := app.Catalog.List(ctx, false)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(services))
	for _, s := range services {
		ids = append(ids, s.ID)
	}
	return resolveID(input, ids, "service")
}

func newServiceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Manage the service catalog",
	}

	cmd.AddCommand(
		newServiceAddCmd(app),
		newServiceListCmd(app),
		newServiceSearchCmd(app),
		newServiceUpdateCmd(app),
		newServiceRemoveCmd(app),
	)

	return cmd
}

func newServiceAddCmd(app *App) *cobra.Command {
	var name, category, description, pricing string
	var rate, duration float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a catalog service",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.Service{
				Name:                   name,
				Category:               category,
				Description:            description,
				PricingType:            domain.PricingType(pricing),
				EstimatedDurationHours: duration,
				IsActive:               true,
			}
			switch s.PricingType {
			case domain.PricingHourly:
				s.HourlyRate = &rate
			case domain.PricingFlat:
				s.FlatRate = &rate
			}

			if err := app.Catalog.Create(context.Background(), s); err != nil {
				return err
			}
			fmt.Printf("Added service %s [%s]\n", s.Name, formatter.TruncID(s.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Service name")
	cmd.Flags().StringVar(&category, "category", "", "Category (e.g. Plumbing, Electrical)")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().StringVar(&pricing, "pricing", "hourly", "Pricing type: hourly or flat")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly or flat rate in dollars")
	cmd.Flags().Float64Var(&duration, "duration", 1, "Estimated duration in hours")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}

func newServiceListCmd(app *App) *cobra.Command {
	var all, grouped bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog services",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if grouped {
				groups, err := app.Catalog.ListByCategory(ctx)
				if err != nil {
					return err
				}
				if len(groups) == 0 {
					fmt.Println("No active services.")
					return nil
				}
				fmt.Println(formatter.FormatCatalogByCategory(groups))
				return nil
			}

			services, err := app.Catalog.List(ctx, !all)
			if err != nil {
				return err
			}
			if len(services) == 0 {
				fmt.Println("No services found.")
				return nil
			}
			fmt.Println(formatter.FormatServiceList(services))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive services")
	cmd.Flags().BoolVar(&grouped, "by-category", false, "Group active services by category")

	return cmd
}

func newServiceSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search services by name, description, or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := app.Catalog.Search(context.Background(), args[0])
			if err != nil {
				return err
			}
			if len(services) == 0 {
				fmt.Println("No matching services.")
				return nil
			}
			fmt.Println(formatter.FormatServiceList(services))
			return nil
		},
	}
}

func newServiceUpdateCmd(app *App) *cobra.Command {
	var name, description string
	var rate, duration float64
	var deactivate, activate bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a catalog service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveServiceID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Catalog.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				s.Name = name
			}
			if cmd.Flags().Changed("description") {
				s.Description = description
			}
			if cmd.Flags().Changed("rate") {
				if s.PricingType == domain.PricingHourly {
					s.HourlyRate = &rate
				} else {
					s.FlatRate = &rate
				}
			}
			if cmd.Flags().Changed("duration") {
				s.EstimatedDurationHours = duration
			}
			if deactivate {
				s.IsActive = false
			}
			if activate {
				s.IsActive = true
			}

			if err := app.Catalog.Update(ctx, s); err != nil {
				return err
			}
			fmt.Printf("Updated service %s\n", s.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().Float64Var(&rate, "rate", 0, "New rate")
	cmd.Flags().Float64Var(&duration, "duration", 0, "New estimated duration in hours")
	cmd.Flags().BoolVar(&deactivate, "deactivate", false, "Hide from the active catalog")
	cmd.Flags().BoolVar(&activate, "activate", false, "Restore to the active catalog")

	return cmd
}

func newServiceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a catalog service (existing jobs keep their snapshot)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveServiceID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Catalog.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Service removed.")
			return nil
		},
	}
}
