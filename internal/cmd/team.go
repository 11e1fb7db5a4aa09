package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/ux"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "View the council team",
}

var teamListFlags listFlags

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List team members",
	RunE:  runTeamList,
}

func init() {
	teamListFlags.register(teamListCmd)
	teamCmd.AddCommand(teamListCmd)
	rootCmd.AddCommand(teamCmd)
}

func runTeamList(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}

	page, err := app.client.ListTeam(cmd.Context(), teamListFlags.params())
	if err != nil {
		return err
	}

	return emitList(page, func(items []api.TeamMember) *ux.Table {
		t := ux.NewTable("ID", "Name", "Title", "Order")
		for _, m := range items {
			t.AddRow(m.ID, m.Name, m.Title, strconv.Itoa(m.Order))
		}
		return t
	})
}
