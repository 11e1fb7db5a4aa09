// Package cmd defines the arcctl command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "arcctl",
	Short: "AI Risk Council membership client",
	Long: `arcctl is the command-line client for the AI Risk Council membership
platform. It signs in with your council account, browses events, news,
the Q&A forum and the resource library, and gives administrators member
and content management from the terminal.

Run 'arcctl browse' for the interactive screen, or use the subcommands
directly for scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagAPIURL  string
	flagVerbose bool
	flagOutput  string
	flagNoColor bool
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context. The context
// reaches every API call, so a signal cancels in-flight requests.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "council API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetDefaultLogger(log.New(log.VerboseConfig()))
		}
	}
}
