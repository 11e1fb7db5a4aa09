package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/ux"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sign in, register, and inspect the session",
}

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with your council account",
	Long: `Sign in with your council account. The session cookie is stored in
~/.arcctl and reused by later commands until it expires or you log out.

Without --password the password is read from the terminal with echo off.`,
	RunE: runLogin,
}

var registerInput api.RegisterInput

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Apply for council membership",
	Long: `Submit a membership application. New accounts wait for administrator
approval before they can sign in.`,
	RunE: runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE:  runLogout,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show who is signed in",
	RunE:  runStatus,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted when omitted)")

	registerCmd.Flags().StringVar(&registerInput.Name, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerInput.Email, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerInput.Password, "password", "", "account password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerInput.Organisation, "organisation", "", "organisation name")
	registerCmd.Flags().StringVar(&registerInput.Role, "role", "free_member",
		"membership type: free_member, paid_member, executive, product_company, university")

	authCmd.AddCommand(loginCmd, registerCmd, logoutCmd, statusCmd)
	rootCmd.AddCommand(authCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	email := loginEmail
	if email == "" {
		email = ux.PromptForString("Email", "")
	}
	password := loginPassword
	if password == "" {
		password, err = ux.PromptForPassword("Password")
		if err != nil {
			return err
		}
	}

	user, err := app.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	app.session.Login(user)

	fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	in := registerInput
	if in.Name == "" {
		in.Name = ux.PromptForString("Name", "")
	}
	if in.Email == "" {
		in.Email = ux.PromptForString("Email", "")
	}
	if in.Password == "" {
		in.Password, err = ux.PromptForPassword("Password (min 8 characters)")
		if err != nil {
			return err
		}
	}

	user, err := app.client.Register(ctx, in)
	if err != nil {
		return err
	}

	fmt.Printf("Application submitted for %s.\n", user.Email)
	fmt.Println("You can sign in once an administrator approves your membership.")
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}

	app.session.Logout(cmd.Context())
	fmt.Println("Signed out.")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	app.session.Restore(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	state := app.session.State()
	if !state.Authenticated() {
		fmt.Println("Not signed in.")
		return nil
	}

	if flagOutput != "text" && flagOutput != "" {
		return emit(state.User)
	}

	u := state.User
	fmt.Printf("Signed in as %s <%s>\n", u.Name, u.Email)
	fmt.Printf("Role: %s\n", u.Role)
	if u.Organisation != "" {
		fmt.Printf("Organisation: %s\n", u.Organisation)
	}
	fmt.Printf("Can download frameworks: %v\n", app.session.CanDownloadFramework())
	fmt.Printf("Can upload whitepapers:  %v\n", app.session.CanUploadWhitepaper())
	fmt.Printf("Can upload products:     %v\n", app.session.CanUploadProduct())
	return nil
}
