package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/errors"
	"github.com/airiskcouncil/arcctl/internal/notify"
	"github.com/airiskcouncil/arcctl/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the council interactively",
	Long: `Browse opens a full-screen terminal UI over the same API the
subcommands use. Navigation, pagination, and voting all happen in
place; the session persists across runs via the saved cookie jar.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}

	toasts := notify.NewCenter()
	model := tui.New(cmd.Context(), app.client, app.session, toasts)

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := program.Run(); err != nil {
		if cmd.Context().Err() != nil {
			return cmd.Context().Err()
		}
		return errors.Wrap(errors.ErrCodeRequestFailed, "terminal UI exited", err)
	}
	return nil
}
