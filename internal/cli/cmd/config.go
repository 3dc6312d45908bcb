package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/infrastructure/config"
)

var configShowJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), app.Manager.GetConfigFile())
		return err
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		if configShowJSON {
			return writeJSON(cmd.OutOrStdout(), app.Config)
		}
		return config.EncodeTOML(cmd.OutOrStdout(), app.Config)
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "write-schema",
	Short: "Write config.schema.json next to config.toml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		path, err := app.Manager.WriteSchemaFile()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Generated JSON schema: %s\n", path)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output as JSON")
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd)
}
