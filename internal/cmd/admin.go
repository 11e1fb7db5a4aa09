package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/authz"
	"github.com/airiskcouncil/arcctl/internal/errors"
	"github.com/airiskcouncil/arcctl/internal/ux"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer members and content (admin only)",
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage member accounts",
}

var adminEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Manage events",
}

var adminNewsCmd = &cobra.Command{
	Use:   "news",
	Short: "Manage news articles",
}

var adminResourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Manage resources",
}

var adminTeamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage the team page",
}

var (
	adminUsersListFlags listFlags
	adminUsersStatus    string
	adminUsersRole      string

	adminSetRole string

	adminEventInput api.EventInput
	adminNewsInput  api.NewsInput

	adminTeamName  string
	adminTeamTitle string
	adminTeamBio   string
	adminTeamOrder string
	adminTeamPhoto string
)

var adminUsersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List member accounts",
	RunE:  runAdminUsersList,
}

var adminUsersApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a pending member",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminUsersApprove,
}

var adminUsersRoleCmd = &cobra.Command{
	Use:   "role <id>",
	Short: "Change a member's role",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminUsersRole,
}

var adminUsersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a member account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminUsersDelete,
}

var adminEventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an event",
	RunE:  runAdminEventsCreate,
}

var adminEventsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminEventsUpdate,
}

var adminEventsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminEventsDelete,
}

var adminNewsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a news article",
	RunE:  runAdminNewsCreate,
}

var adminNewsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a news article",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminNewsUpdate,
}

var adminNewsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a news article",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminNewsDelete,
}

var adminResourcesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a resource",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminResourcesDelete,
}

var adminTeamAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a team member",
	RunE:  runAdminTeamAdd,
}

var adminTeamUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a team member",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminTeamUpdate,
}

var adminTeamRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a team member",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminTeamRemove,
}

func init() {
	adminUsersListFlags.register(adminUsersListCmd)
	adminUsersListCmd.Flags().StringVar(&adminUsersStatus, "status", "", "filter by status (pending, approved)")
	adminUsersListCmd.Flags().StringVar(&adminUsersRole, "role", "", "filter by role")

	adminUsersRoleCmd.Flags().StringVar(&adminSetRole, "role", "", "new role")
	adminUsersRoleCmd.MarkFlagRequired("role")

	registerEventFlags(adminEventsCreateCmd)
	registerEventFlags(adminEventsUpdateCmd)

	registerNewsFlags(adminNewsCreateCmd)
	registerNewsFlags(adminNewsUpdateCmd)

	registerTeamFlags(adminTeamAddCmd)
	registerTeamFlags(adminTeamUpdateCmd)

	adminUsersCmd.AddCommand(adminUsersListCmd, adminUsersApproveCmd, adminUsersRoleCmd, adminUsersDeleteCmd)
	adminEventsCmd.AddCommand(adminEventsCreateCmd, adminEventsUpdateCmd, adminEventsDeleteCmd)
	adminNewsCmd.AddCommand(adminNewsCreateCmd, adminNewsUpdateCmd, adminNewsDeleteCmd)
	adminResourcesCmd.AddCommand(adminResourcesDeleteCmd)
	adminTeamCmd.AddCommand(adminTeamAddCmd, adminTeamUpdateCmd, adminTeamRemoveCmd)

	adminCmd.AddCommand(adminUsersCmd, adminEventsCmd, adminNewsCmd, adminResourcesCmd, adminTeamCmd)
	rootCmd.AddCommand(adminCmd)
}

func registerEventFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&adminEventInput.Title, "title", "", "event title")
	cmd.Flags().StringVar(&adminEventInput.Description, "description", "", "event description")
	cmd.Flags().StringVar(&adminEventInput.Category, "category", "", "event category")
	cmd.Flags().StringVar(&adminEventInput.Location, "location", "", "event location")
	cmd.Flags().StringVar(&adminEventInput.StartsAt, "starts", "", "start time (RFC 3339)")
	cmd.Flags().StringVar(&adminEventInput.EndsAt, "ends", "", "end time (RFC 3339)")
	cmd.Flags().IntVar(&adminEventInput.Capacity, "capacity", 0, "attendee capacity (0 for unlimited)")
}

func registerNewsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&adminNewsInput.Title, "title", "", "article title")
	cmd.Flags().StringVar(&adminNewsInput.Summary, "summary", "", "article summary")
	cmd.Flags().StringVar(&adminNewsInput.Body, "body", "", "article body")
	cmd.Flags().StringVar(&adminNewsInput.Category, "category", "", "article category")
}

func registerTeamFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&adminTeamName, "name", "", "member name")
	cmd.Flags().StringVar(&adminTeamTitle, "title", "", "member title")
	cmd.Flags().StringVar(&adminTeamBio, "bio", "", "member biography")
	cmd.Flags().StringVar(&adminTeamOrder, "order", "", "display order")
	cmd.Flags().StringVar(&adminTeamPhoto, "photo", "", "path to a photo file")
}

func runAdminUsersList(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	params := adminUsersListFlags.params().
		WithFilter(api.FilterStatus, adminUsersStatus).
		WithFilter(api.FilterRole, adminUsersRole)
	page, err := app.client.ListUsers(cmd.Context(), params)
	if err != nil {
		return err
	}

	return emitList(page, func(items []api.User) *ux.Table {
		t := ux.NewTable("ID", "Name", "Email", "Role", "Approved", "Joined")
		for _, u := range items {
			t.AddRow(u.ID, u.Name, u.Email, u.Role.String(), strconv.FormatBool(u.Approved), u.CreatedAt.Format(time.DateOnly))
		}
		return t
	})
}

func runAdminUsersApprove(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	if err := app.client.ApproveUser(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Approved %s\n", args[0])
	return nil
}

func runAdminUsersRole(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	role := authz.Role(adminSetRole)
	if !role.Valid() {
		return errors.NewValidationError("role", fmt.Sprintf("Unknown role %q.", adminSetRole))
	}

	if err := app.client.SetUserRole(cmd.Context(), args[0], role); err != nil {
		return err
	}
	fmt.Printf("Set role of %s to %s\n", args[0], role)
	return nil
}

func runAdminUsersDelete(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	if !ux.Confirm(fmt.Sprintf("Delete member %s?", args[0]), false) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := app.client.DeleteUser(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

func runAdminEventsCreate(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	event, err := app.client.CreateEvent(cmd.Context(), adminEventInput)
	if err != nil {
		return err
	}
	fmt.Printf("Created event %s\n", event.ID)
	return nil
}

func runAdminEventsUpdate(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	event, err := app.client.UpdateEvent(cmd.Context(), args[0], adminEventInput)
	if err != nil {
		return err
	}
	fmt.Printf("Updated event %s\n", event.ID)
	return nil
}

func runAdminEventsDelete(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	if err := app.client.DeleteEvent(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted event %s\n", args[0])
	return nil
}

func runAdminNewsCreate(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	item, err := app.client.CreateNews(cmd.Context(), adminNewsInput)
	if err != nil {
		return err
	}
	fmt.Printf("Published %s\n", item.ID)
	return nil
}

func runAdminNewsUpdate(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	item, err := app.client.UpdateNews(cmd.Context(), args[0], adminNewsInput)
	if err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", item.ID)
	return nil
}

func runAdminNewsDelete(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	if err := app.client.DeleteNews(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

func runAdminResourcesDelete(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	if err := app.client.DeleteResource(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

func teamInput() (api.TeamMemberInput, func(), error) {
	in := api.TeamMemberInput{
		Name:  adminTeamName,
		Title: adminTeamTitle,
		Bio:   adminTeamBio,
		Order: adminTeamOrder,
	}
	cleanup := func() {}
	if adminTeamPhoto != "" {
		file, err := os.Open(adminTeamPhoto)
		if err != nil {
			return in, cleanup, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to open %s", adminTeamPhoto), err)
		}
		in.Photo = file
		in.PhotoName = filepath.Base(adminTeamPhoto)
		cleanup = func() { file.Close() }
	}
	return in, cleanup, nil
}

func runAdminTeamAdd(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	in, cleanup, err := teamInput()
	if err != nil {
		return err
	}
	defer cleanup()

	member, err := app.client.CreateTeamMember(cmd.Context(), in)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s (%s)\n", member.Name, member.ID)
	return nil
}

func runAdminTeamUpdate(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	in, cleanup, err := teamInput()
	if err != nil {
		return err
	}
	defer cleanup()

	member, err := app.client.UpdateTeamMember(cmd.Context(), args[0], in)
	if err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", member.ID)
	return nil
}

func runAdminTeamRemove(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireAdmin(cmd.Context()); err != nil {
		return err
	}

	if err := app.client.DeleteTeamMember(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", args[0])
	return nil
}
