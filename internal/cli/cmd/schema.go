package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/infrastructure/config"
)

var schemaCmd = &cobra.Command{
	Use:       "schema [config|layout]",
	Short:     "Print a JSON schema",
	Long:      `Print the JSON schema of config.toml (default) or of a saved layout document.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"config", "layout"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	kind := "config"
	if len(args) == 1 {
		kind = args[0]
	}

	var (
		data []byte
		err  error
	)
	switch kind {
	case "layout":
		data, err = config.LayoutSchema()
	default:
		data, err = config.ConfigSchema()
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
