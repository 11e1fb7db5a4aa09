package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/api"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your member profile",
}

var (
	profileName         string
	profileOrganisation string
)

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE:  runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	RunE:  runProfileUpdate,
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileUpdateCmd.Flags().StringVar(&profileOrganisation, "organisation", "", "organisation")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	user, err := app.client.GetProfile(cmd.Context())
	if err != nil {
		return err
	}
	if flagOutput != "text" {
		return emit(user)
	}

	printProfile(user)
	return nil
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	current, err := app.client.GetProfile(cmd.Context())
	if err != nil {
		return err
	}

	in := api.ProfileInput{
		Name:         current.Name,
		Organisation: current.Organisation,
	}
	if cmd.Flags().Changed("name") {
		in.Name = profileName
	}
	if cmd.Flags().Changed("organisation") {
		in.Organisation = profileOrganisation
	}

	user, err := app.client.UpdateProfile(cmd.Context(), in)
	if err != nil {
		return err
	}

	fmt.Println("Profile updated.")
	printProfile(user)
	return nil
}

func printProfile(user *api.User) {
	fmt.Printf("Name:         %s\n", user.Name)
	fmt.Printf("Email:        %s\n", user.Email)
	fmt.Printf("Role:         %s\n", user.Role)
	if user.Organisation != "" {
		fmt.Printf("Organisation: %s\n", user.Organisation)
	}
	fmt.Printf("Member since: %s\n", user.CreatedAt.Format(time.DateOnly))
}
