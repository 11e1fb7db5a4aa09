package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or edit arcctl configuration",
	Long: `Manage arcctl configuration stored at ~/.arcctl/config.yaml

Keys:
  api_url       API endpoint
  log_level     debug, info, warn, or error
  timeout       request timeout (e.g. 15s)
  download_dir  where 'resources download' saves files

Examples:
  # View current configuration
  arcctl config list

  # Get a specific value
  arcctl config get api_url

  # Set a specific value
  arcctl config set log_level debug

  # Show configuration file path
  arcctl config path
`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display current configuration",
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagOutput != "text" {
		return emit(cfg)
	}

	for _, key := range config.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", key, value)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	value, err := cfg.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
