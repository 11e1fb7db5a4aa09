package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/ux"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse and register for council events",
}

var (
	eventsListFlags listFlags
	eventsTab       string
)

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events",
	RunE:  runEventsList,
}

var eventsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsShow,
}

var eventsRegisterCmd = &cobra.Command{
	Use:   "register <id>",
	Short: "Register for an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsRegister,
}

var eventsUnregisterCmd = &cobra.Command{
	Use:   "unregister <id>",
	Short: "Cancel an event registration",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsUnregister,
}

func init() {
	eventsListFlags.register(eventsListCmd)
	eventsListCmd.Flags().StringVar(&eventsTab, "tab", "", "filter: upcoming or past")

	eventsCmd.AddCommand(eventsListCmd, eventsShowCmd, eventsRegisterCmd, eventsUnregisterCmd)
	rootCmd.AddCommand(eventsCmd)
}

func runEventsList(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	params := eventsListFlags.params().WithFilter(api.FilterTab, eventsTab)
	page, err := app.client.ListEvents(cmd.Context(), params)
	if err != nil {
		return err
	}

	return emitList(page, func(items []api.Event) *ux.Table {
		t := ux.NewTable("ID", "Title", "Category", "Location", "Starts")
		for _, e := range items {
			starts := ""
			if !e.StartsAt.IsZero() {
				starts = e.StartsAt.Format("2006-01-02 15:04")
			}
			t.AddRow(e.ID, e.Title, e.Category, e.Location, starts)
		}
		return t
	})
}

func runEventsShow(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	event, err := app.client.GetEvent(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if flagOutput != "text" {
		return emit(event)
	}

	fmt.Printf("%s\n\n", event.Title)
	if event.Description != "" {
		fmt.Printf("%s\n\n", event.Description)
	}
	if !event.StartsAt.IsZero() {
		fmt.Printf("Starts:   %s\n", event.StartsAt.Format("2006-01-02 15:04"))
	}
	if !event.EndsAt.IsZero() {
		fmt.Printf("Ends:     %s\n", event.EndsAt.Format("2006-01-02 15:04"))
	}
	if event.Location != "" {
		fmt.Printf("Location: %s\n", event.Location)
	}
	if event.Registered {
		fmt.Println("You are registered for this event.")
	}
	return nil
}

func runEventsRegister(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	if err := app.client.RegisterForEvent(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("Registered.")
	return nil
}

func runEventsUnregister(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	if err := app.client.UnregisterFromEvent(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("Registration cancelled.")
	return nil
}
