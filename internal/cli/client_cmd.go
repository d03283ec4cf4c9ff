package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/handyops/proserve/internal/cli/formatter"
	"github.com/handyops/proserve/internal/domain"
	"github.com/spf13/cobra"
)

func resolveClientID(ctx context.Context, app *App, input string) (string, error) {
	clients, err := app.Clients.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	return resolveID(input, ids, "client")
}

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients and communications",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientInspectCmd(app),
		newClientUpdateCmd(app),
		newClientLogCmd(app),
		newClientStatsCmd(app),
		newClientRemoveCmd(app),
	)

	return cmd
}

func newClientAddCmd(app *App) *cobra.Command {
	var name, company, email, phone, address, status string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Client{
				Name:    name,
				Company: company,
				Email:   email,
				Phone:   phone,
				Address: address,
				Status:  domain.ClientStatus(status),
			}
			if err := app.Clients.Create(context.Background(), c); err != nil {
				return err
			}
			fmt.Printf("Added client %s [%s]\n", c.Name, formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&address, "address", "", "Street address")
	cmd.Flags().StringVar(&status, "status", "", "Status: Active, Inactive, or Lead (default Active)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients with roll-up stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clients, err := app.Clients.List(ctx)
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Println("No clients found.")
				return nil
			}
			stats, err := app.Clients.Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatClientStats(stats))
			fmt.Println(formatter.FormatClientList(clients))
			return nil
		},
	}
}

func newClientInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Show a client with their communication log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.GetByID(ctx, id)
			if err != nil {
				return err
			}
			comms, err := app.Comms.ListByClient(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatClientInspect(c, comms))
			return nil
		},
	}
}

func newClientUpdateCmd(app *App) *cobra.Command {
	var name, company, email, phone, address, status string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("company") {
				c.Company = company
			}
			if cmd.Flags().Changed("email") {
				c.Email = email
			}
			if cmd.Flags().Changed("phone") {
				c.Phone = phone
			}
			if cmd.Flags().Changed("address") {
				c.Address = address
			}
			if cmd.Flags().Changed("status") {
				c.Status = domain.ClientStatus(status)
			}

			if err := app.Clients.Update(ctx, c); err != nil {
				return err
			}
			fmt.Printf("Updated client %s\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&company, "company", "", "New company")
	cmd.Flags().StringVar(&email, "email", "", "New email")
	cmd.Flags().StringVar(&phone, "phone", "", "New phone")
	cmd.Flags().StringVar(&address, "address", "", "New address")
	cmd.Flags().StringVar(&status, "status", "", "New status")

	return cmd
}

func newClientLogCmd(app *App) *cobra.Command {
	var commType, direction, subject, message string

	cmd := &cobra.Command{
		Use:   "log <id>",
		Short: "Log a communication with a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}

			comm := &domain.Communication{
				ClientID:  id,
				Type:      domain.CommunicationType(commType),
				Direction: domain.CommunicationDirection(direction),
				Subject:   subject,
				Message:   message,
				Date:      time.Now().UTC(),
			}
			if err := app.Clients.LogCommunication(ctx, comm); err != nil {
				return err
			}
			fmt.Println("Communication logged.")
			return nil
		},
	}

	cmd.Flags().StringVar(&commType, "type", "phone", "Type: email, phone, meeting, or text")
	cmd.Flags().StringVar(&direction, "direction", "outbound", "Direction: outbound or inbound")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject line")
	cmd.Flags().StringVar(&message, "message", "", "Message body")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newClientStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show client roll-up figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Clients.Stats(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatClientStats(stats))
			return nil
		},
	}
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a client and their communication log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Client removed.")
			return nil
		},
	}
}
