package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/errors"
	"github.com/airiskcouncil/arcctl/internal/ux"
)

var resourcesCmd = &cobra.Command{
	Use:     "resources",
	Aliases: []string{"resource"},
	Short:   "Browse and download council resources",
}

var (
	resourcesListFlags listFlags
	resourcesType      string

	uploadTitle       string
	uploadDescription string
	uploadType        string

	downloadOut string
)

var resourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources",
	RunE:  runResourcesList,
}

var resourcesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show resource details",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourcesShow,
}

var resourcesUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a resource",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourcesUpload,
}

var resourcesDownloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download a resource's file",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourcesDownload,
}

func init() {
	resourcesListFlags.register(resourcesListCmd)
	resourcesListCmd.Flags().StringVar(&resourcesType, "type", "", "filter by type (framework, whitepaper, product)")

	resourcesUploadCmd.Flags().StringVar(&uploadTitle, "title", "", "resource title")
	resourcesUploadCmd.Flags().StringVar(&uploadDescription, "description", "", "resource description")
	resourcesUploadCmd.Flags().StringVar(&uploadType, "type", api.ResourceTypeWhitepaper, "resource type (framework, whitepaper, product)")

	resourcesDownloadCmd.Flags().StringVar(&downloadOut, "dest", "", "destination path (defaults to the download directory)")

	resourcesCmd.AddCommand(resourcesListCmd, resourcesShowCmd, resourcesUploadCmd, resourcesDownloadCmd)
	rootCmd.AddCommand(resourcesCmd)
}

func runResourcesList(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	params := resourcesListFlags.params().WithFilter(api.FilterType, resourcesType)
	page, err := app.client.ListResources(cmd.Context(), params)
	if err != nil {
		return err
	}

	return emitList(page, func(items []api.Resource) *ux.Table {
		t := ux.NewTable("ID", "Title", "Type", "File", "Size")
		for _, r := range items {
			t.AddRow(r.ID, r.Title, r.Type, r.FileName, formatSize(r.FileSize))
		}
		return t
	})
}

func runResourcesShow(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	resource, err := app.client.GetResource(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if flagOutput != "text" {
		return emit(resource)
	}

	fmt.Printf("%s\n", resource.Title)
	fmt.Printf("Type:        %s\n", resource.Type)
	fmt.Printf("File:        %s (%s)\n", resource.FileName, formatSize(resource.FileSize))
	fmt.Printf("Uploaded by: %s on %s\n", resource.UploadedBy, resource.CreatedAt.Format(time.DateOnly))
	if resource.Description != "" {
		fmt.Printf("\n%s\n", resource.Description)
	}
	return nil
}

func runResourcesUpload(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to open %s", args[0]), err)
	}
	defer file.Close()

	title := uploadTitle
	if title == "" {
		title = filepath.Base(args[0])
	}

	resource, err := app.client.UploadResource(cmd.Context(), api.UploadResourceInput{
		Title:       title,
		Description: uploadDescription,
		Type:        uploadType,
		FileName:    filepath.Base(args[0]),
		File:        file,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Uploaded %s as %s\n", resource.FileName, resource.ID)
	return nil
}

func runResourcesDownload(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	if err := app.requireSession(cmd.Context()); err != nil {
		return err
	}

	resource, err := app.client.GetResource(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	dest := downloadOut
	if dest == "" {
		dest = filepath.Join(app.cfg.DownloadDir, resource.FileName)
	}

	out, err := os.Create(dest)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("failed to create %s", dest), err)
	}
	defer out.Close()

	info, err := app.client.DownloadResource(cmd.Context(), args[0], out)
	if err != nil {
		os.Remove(dest)
		return err
	}

	fmt.Printf("Saved %s (%s)\n", dest, formatSize(info.Size))
	fmt.Printf("BLAKE3: %s\n", info.Digest)
	return nil
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return strconv.FormatInt(n, 10) + " B"
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
