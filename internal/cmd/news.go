package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/ux"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Read council news",
}

var (
	newsListFlags listFlags
	newsCategory  string
)

var newsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List news articles",
	RunE:  runNewsList,
}

var newsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Read one article",
	Args:  cobra.ExactArgs(1),
	RunE:  runNewsShow,
}

func init() {
	newsListFlags.register(newsListCmd)
	newsListCmd.Flags().StringVar(&newsCategory, "category", "", "filter by category")

	newsCmd.AddCommand(newsListCmd, newsShowCmd)
	rootCmd.AddCommand(newsCmd)
}

func runNewsList(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}

	params := newsListFlags.params().WithFilter(api.FilterCategory, newsCategory)
	page, err := app.client.ListNews(cmd.Context(), params)
	if err != nil {
		return err
	}

	return emitList(page, func(items []api.NewsItem) *ux.Table {
		t := ux.NewTable("ID", "Title", "Category", "Published")
		for _, n := range items {
			published := ""
			if !n.PublishedAt.IsZero() {
				published = n.PublishedAt.Format("2006-01-02")
			}
			t.AddRow(n.ID, n.Title, n.Category, published)
		}
		return t
	})
}

func runNewsShow(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}

	item, err := app.client.GetNews(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if flagOutput != "text" {
		return emit(item)
	}

	fmt.Printf("%s\n", item.Title)
	if item.Author != "" || !item.PublishedAt.IsZero() {
		fmt.Printf("%s  %s\n", item.Author, item.PublishedAt.Format("2006-01-02"))
	}
	fmt.Printf("\n%s\n", item.Body)
	return nil
}
